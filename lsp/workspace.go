package lsp

import "encoding/json"

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#workspace_workspaceFolders
type DidChangeWorkspaceFoldersParams struct {
	Event WorkspaceFoldersChangeEvent `json:"event"`
}

type WorkspaceFoldersChangeEvent struct {
	Added   []WorkspaceFolder `json:"added"`
	Removed []WorkspaceFolder `json:"removed"`
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#workspace_configuration
type ConfigurationParams struct {
	Items []ConfigurationItem `json:"items"`
}

type ConfigurationItem struct {
	ScopeURI *URI    `json:"scopeUri,omitempty"`
	Section  *string `json:"section,omitempty"`
}

type DidChangeConfigurationParams struct {
	Settings json.RawMessage `json:"settings"`
}

type DidChangeConfigurationRegistrationOptions struct {
	Section []string `json:"section,omitempty"`
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#workspace_didChangeWatchedFiles
type DidChangeWatchedFilesParams struct {
	Changes []FileEvent `json:"changes"`
}

type FileEvent struct {
	URI  DocumentURI    `json:"uri"`
	Type FileChangeType `json:"type"`
}

type FileChangeType uint32

const (
	FileCreated FileChangeType = iota + 1
	FileChanged
	FileDeleted
)

var fileChangeTypeNames = map[FileChangeType]string{
	FileCreated: "Created",
	FileChanged: "Changed",
	FileDeleted: "Deleted",
}

func (t FileChangeType) String() string {
	return enumString("FileChangeType", t, fileChangeTypeNames)
}

func (t *FileChangeType) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("FileChangeType", data, fileChangeTypeNames)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// WatchKind is a bit set of WatchCreate, WatchChange and WatchDelete.
type WatchKind uint32

const (
	WatchCreate WatchKind = 1 << iota
	WatchChange
	WatchDelete
)

type FileSystemWatcher struct {
	GlobPattern GlobPattern `json:"globPattern"`
	Kind        *WatchKind  `json:"kind,omitempty"`
}

type DidChangeWatchedFilesRegistrationOptions struct {
	Watchers []FileSystemWatcher `json:"watchers"`
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#workspace_willCreateFiles
type FileOperationPatternKind string

const (
	FileOperationFile   FileOperationPatternKind = "file"
	FileOperationFolder FileOperationPatternKind = "folder"
)

func (k *FileOperationPatternKind) UnmarshalJSON(data []byte) error {
	v, err := decodeStringEnum("FileOperationPatternKind", data, []FileOperationPatternKind{FileOperationFile, FileOperationFolder})
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type FileOperationPatternOptions struct {
	IgnoreCase *bool `json:"ignoreCase,omitempty"`
}

type FileOperationPattern struct {
	Glob    string                       `json:"glob"`
	Matches *FileOperationPatternKind    `json:"matches,omitempty"`
	Options *FileOperationPatternOptions `json:"options,omitempty"`
}

type FileOperationFilter struct {
	Scheme  *string              `json:"scheme,omitempty"`
	Pattern FileOperationPattern `json:"pattern"`
}

type FileOperationRegistrationOptions struct {
	Filters []FileOperationFilter `json:"filters"`
}

type FileOperationOptions struct {
	DidCreate  *FileOperationRegistrationOptions `json:"didCreate,omitempty"`
	WillCreate *FileOperationRegistrationOptions `json:"willCreate,omitempty"`
	DidRename  *FileOperationRegistrationOptions `json:"didRename,omitempty"`
	WillRename *FileOperationRegistrationOptions `json:"willRename,omitempty"`
	DidDelete  *FileOperationRegistrationOptions `json:"didDelete,omitempty"`
	WillDelete *FileOperationRegistrationOptions `json:"willDelete,omitempty"`
}

type FileCreate struct {
	URI string `json:"uri"`
}

type CreateFilesParams struct {
	Files []FileCreate `json:"files"`
}

type FileRename struct {
	OldURI string `json:"oldUri"`
	NewURI string `json:"newUri"`
}

type RenameFilesParams struct {
	Files []FileRename `json:"files"`
}

type FileDelete struct {
	URI string `json:"uri"`
}

type DeleteFilesParams struct {
	Files []FileDelete `json:"files"`
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#workspace_executeCommand
type ExecuteCommandParams struct {
	WorkDoneProgressParams
	Command   string            `json:"command"`
	Arguments []json.RawMessage `json:"arguments,omitempty"`
}

type ExecuteCommandOptions struct {
	WorkDoneProgressOptions
	Commands []string `json:"commands"`
}

type ExecuteCommandRegistrationOptions struct {
	ExecuteCommandOptions
}
