package lsp

// TextDocumentFilter narrows a selector by language, scheme or glob. At least
// one of the three is set.
type TextDocumentFilter struct {
	Language *string `json:"language,omitempty"`
	Scheme   *string `json:"scheme,omitempty"`
	Pattern  *string `json:"pattern,omitempty"`
}

type NotebookDocumentFilter struct {
	NotebookType *string `json:"notebookType,omitempty"`
	Scheme       *string `json:"scheme,omitempty"`
	Pattern      *string `json:"pattern,omitempty"`
}

// NotebookDocumentFilterRef is string | NotebookDocumentFilter, the string
// being a notebook type.
type NotebookDocumentFilterRef struct {
	Value any
}

var notebookFilterRefShapes = union(
	shapeOf[string]("string"),
	shapeOf[NotebookDocumentFilter]("NotebookDocumentFilter"),
)

func (r *NotebookDocumentFilterRef) UnmarshalJSON(data []byte) error {
	v, err := notebookFilterRefShapes.decode("string | NotebookDocumentFilter", data)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

func (r NotebookDocumentFilterRef) MarshalJSON() ([]byte, error) {
	return notebookFilterRefShapes.encode("string | NotebookDocumentFilter", r.Value)
}

type NotebookCellTextDocumentFilter struct {
	Notebook NotebookDocumentFilterRef `json:"notebook"`
	Language *string                   `json:"language,omitempty"`
}

// DocumentFilter is TextDocumentFilter | NotebookCellTextDocumentFilter.
type DocumentFilter struct {
	Value any
}

var documentFilterShapes = union(
	shapeOf[TextDocumentFilter]("TextDocumentFilter"),
	shapeOf[NotebookCellTextDocumentFilter]("NotebookCellTextDocumentFilter"),
)

func NewLanguageFilter(language string) DocumentFilter {
	return DocumentFilter{Value: TextDocumentFilter{Language: &language}}
}

func (f *DocumentFilter) UnmarshalJSON(data []byte) error {
	v, err := documentFilterShapes.decode("DocumentFilter", data)
	if err != nil {
		return err
	}
	f.Value = v
	return nil
}

func (f DocumentFilter) MarshalJSON() ([]byte, error) {
	return documentFilterShapes.encode("DocumentFilter", f.Value)
}

func (f DocumentFilter) TextDocument() (TextDocumentFilter, bool) {
	return variant[TextDocumentFilter](f.Value)
}

func (f DocumentFilter) NotebookCell() (NotebookCellTextDocumentFilter, bool) {
	return variant[NotebookCellTextDocumentFilter](f.Value)
}

type DocumentSelector []DocumentFilter

// RelativePatternBase is WorkspaceFolder | URI.
type RelativePatternBase struct {
	Value any
}

var relativePatternBaseShapes = union(
	shapeOf[WorkspaceFolder]("WorkspaceFolder"),
	shapeOf[URI]("URI"),
)

func (b *RelativePatternBase) UnmarshalJSON(data []byte) error {
	v, err := relativePatternBaseShapes.decode("WorkspaceFolder | URI", data)
	if err != nil {
		return err
	}
	b.Value = v
	return nil
}

func (b RelativePatternBase) MarshalJSON() ([]byte, error) {
	return relativePatternBaseShapes.encode("WorkspaceFolder | URI", b.Value)
}

type RelativePattern struct {
	BaseURI RelativePatternBase `json:"baseUri"`
	Pattern string              `json:"pattern"`
}

// GlobPattern is Pattern | RelativePattern.
type GlobPattern struct {
	Value any
}

var globPatternShapes = union(
	shapeOf[string]("Pattern"),
	shapeOf[RelativePattern]("RelativePattern"),
)

func (g *GlobPattern) UnmarshalJSON(data []byte) error {
	v, err := globPatternShapes.decode("GlobPattern", data)
	if err != nil {
		return err
	}
	g.Value = v
	return nil
}

func (g GlobPattern) MarshalJSON() ([]byte, error) {
	return globPatternShapes.encode("GlobPattern", g.Value)
}

func (g GlobPattern) Pattern() (string, bool) { return variant[string](g.Value) }

func (g GlobPattern) Relative() (RelativePattern, bool) {
	return variant[RelativePattern](g.Value)
}
