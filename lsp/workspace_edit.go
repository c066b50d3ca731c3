package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#workspaceEdit

// TextOrAnnotatedEdit is TextEdit | AnnotatedTextEdit.
type TextOrAnnotatedEdit struct {
	Value any
}

var textOrAnnotatedEditShapes = union(
	shapeOf[TextEdit]("TextEdit"),
	shapeOf[AnnotatedTextEdit]("AnnotatedTextEdit"),
)

func (e *TextOrAnnotatedEdit) UnmarshalJSON(data []byte) error {
	v, err := textOrAnnotatedEditShapes.decode("TextEdit | AnnotatedTextEdit", data)
	if err != nil {
		return err
	}
	e.Value = v
	return nil
}

func (e TextOrAnnotatedEdit) MarshalJSON() ([]byte, error) {
	return textOrAnnotatedEditShapes.encode("TextEdit | AnnotatedTextEdit", e.Value)
}

// Edit returns the plain edit, dropping the annotation if there is one.
func (e TextOrAnnotatedEdit) Edit() TextEdit {
	switch v := e.Value.(type) {
	case TextEdit:
		return v
	case AnnotatedTextEdit:
		return TextEdit{Range: v.Range, NewText: v.NewText}
	}
	return TextEdit{}
}

type TextDocumentEdit struct {
	TextDocument OptionalVersionedTextDocumentIdentifier `json:"textDocument"`
	Edits        []TextOrAnnotatedEdit                   `json:"edits"`
}

type CreateFileOptions struct {
	Overwrite      *bool `json:"overwrite,omitempty"`
	IgnoreIfExists *bool `json:"ignoreIfExists,omitempty"`
}

type CreateFile struct {
	Kind         string             `json:"kind"`
	URI          DocumentURI        `json:"uri"`
	Options      *CreateFileOptions `json:"options,omitempty"`
	AnnotationID *string            `json:"annotationId,omitempty"`
}

type RenameFileOptions struct {
	Overwrite      *bool `json:"overwrite,omitempty"`
	IgnoreIfExists *bool `json:"ignoreIfExists,omitempty"`
}

type RenameFile struct {
	Kind         string             `json:"kind"`
	OldURI       DocumentURI        `json:"oldUri"`
	NewURI       DocumentURI        `json:"newUri"`
	Options      *RenameFileOptions `json:"options,omitempty"`
	AnnotationID *string            `json:"annotationId,omitempty"`
}

type DeleteFileOptions struct {
	Recursive         *bool `json:"recursive,omitempty"`
	IgnoreIfNotExists *bool `json:"ignoreIfNotExists,omitempty"`
}

type DeleteFile struct {
	Kind         string             `json:"kind"`
	URI          DocumentURI        `json:"uri"`
	Options      *DeleteFileOptions `json:"options,omitempty"`
	AnnotationID *string            `json:"annotationId,omitempty"`
}

func NewCreateFile(uri DocumentURI) CreateFile { return CreateFile{Kind: "create", URI: uri} }

func NewRenameFile(oldURI, newURI DocumentURI) RenameFile {
	return RenameFile{Kind: "rename", OldURI: oldURI, NewURI: newURI}
}

func NewDeleteFile(uri DocumentURI) DeleteFile { return DeleteFile{Kind: "delete", URI: uri} }

// DocumentChange is TextDocumentEdit | CreateFile | RenameFile | DeleteFile.
// Resource operations carry a kind; text document edits carry none.
type DocumentChange struct {
	Value any
}

var textDocumentEditShape = shapeOf[TextDocumentEdit]("TextDocumentEdit")

var documentChangeVariants = tagged{
	key: "kind",
	variants: map[string]shape{
		"create": shapeOf[CreateFile]("CreateFile"),
		"rename": shapeOf[RenameFile]("RenameFile"),
		"delete": shapeOf[DeleteFile]("DeleteFile"),
	},
	fallback: &textDocumentEditShape,
}

func (c *DocumentChange) UnmarshalJSON(data []byte) error {
	v, err := documentChangeVariants.decode("DocumentChange", data)
	if err != nil {
		return err
	}
	c.Value = v
	return nil
}

func (c DocumentChange) MarshalJSON() ([]byte, error) {
	return documentChangeVariants.encode("DocumentChange", c.Value)
}

func (c DocumentChange) TextDocumentEdit() (TextDocumentEdit, bool) {
	return variant[TextDocumentEdit](c.Value)
}

type WorkspaceEdit struct {
	Changes           map[DocumentURI][]TextEdit  `json:"changes,omitempty"`
	DocumentChanges   []DocumentChange            `json:"documentChanges,omitempty"`
	ChangeAnnotations map[string]ChangeAnnotation `json:"changeAnnotations,omitempty"`
}

type ResourceOperationKind string

const (
	ResourceCreate ResourceOperationKind = "create"
	ResourceRename ResourceOperationKind = "rename"
	ResourceDelete ResourceOperationKind = "delete"
)

func (k *ResourceOperationKind) UnmarshalJSON(data []byte) error {
	v, err := decodeStringEnum("ResourceOperationKind", data,
		[]ResourceOperationKind{ResourceCreate, ResourceRename, ResourceDelete})
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type FailureHandlingKind string

const (
	FailureAbort                 FailureHandlingKind = "abort"
	FailureTransactional         FailureHandlingKind = "transactional"
	FailureTextOnlyTransactional FailureHandlingKind = "textOnlyTransactional"
	FailureUndo                  FailureHandlingKind = "undo"
)

func (k *FailureHandlingKind) UnmarshalJSON(data []byte) error {
	v, err := decodeStringEnum("FailureHandlingKind", data,
		[]FailureHandlingKind{FailureAbort, FailureTransactional, FailureTextOnlyTransactional, FailureUndo})
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type ApplyWorkspaceEditParams struct {
	Label *string       `json:"label,omitempty"`
	Edit  WorkspaceEdit `json:"edit"`
}

type ApplyWorkspaceEditResult struct {
	Applied       bool    `json:"applied"`
	FailureReason *string `json:"failureReason,omitempty"`
	FailedChange  *uint32 `json:"failedChange,omitempty"`
}
