package lsp

import "encoding/json"

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#diagnostic

type DiagnosticSeverity uint32

const (
	DiagnosticError DiagnosticSeverity = iota + 1
	DiagnosticWarning
	DiagnosticInformation
	DiagnosticHint
)

var diagnosticSeverityNames = map[DiagnosticSeverity]string{
	DiagnosticError:       "Error",
	DiagnosticWarning:     "Warning",
	DiagnosticInformation: "Information",
	DiagnosticHint:        "Hint",
}

func (s DiagnosticSeverity) String() string {
	return enumString("DiagnosticSeverity", s, diagnosticSeverityNames)
}

func (s *DiagnosticSeverity) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("DiagnosticSeverity", data, diagnosticSeverityNames)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type DiagnosticTag uint32

const (
	TagUnnecessary DiagnosticTag = iota + 1
	TagDeprecated
)

var diagnosticTagNames = map[DiagnosticTag]string{
	TagUnnecessary: "Unnecessary",
	TagDeprecated:  "Deprecated",
}

func (t DiagnosticTag) String() string {
	return enumString("DiagnosticTag", t, diagnosticTagNames)
}

func (t *DiagnosticTag) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("DiagnosticTag", data, diagnosticTagNames)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type CodeDescription struct {
	Href URI `json:"href"`
}

type DiagnosticRelatedInformation struct {
	Location Location `json:"location"`
	Message  string   `json:"message"`
}

type Diagnostic struct {
	Range              Range                          `json:"range"`
	Severity           *DiagnosticSeverity            `json:"severity,omitempty"`
	Code               *IntegerOrString               `json:"code,omitempty"`
	CodeDescription    *CodeDescription               `json:"codeDescription,omitempty"`
	Source             *string                        `json:"source,omitempty"`
	Message            string                         `json:"message"`
	Tags               []DiagnosticTag                `json:"tags,omitempty"`
	RelatedInformation []DiagnosticRelatedInformation `json:"relatedInformation,omitempty"`
	Data               json.RawMessage                `json:"data,omitempty"`
}

type PublishDiagnosticsParams struct {
	URI         DocumentURI  `json:"uri"`
	Version     *int32       `json:"version,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

func NewPublishDiagnosticsParams(uri DocumentURI, diagnostics []Diagnostic) PublishDiagnosticsParams {
	if diagnostics == nil {
		diagnostics = []Diagnostic{}
	}
	return PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	}
}

// Pull diagnostics, 3.17.

type DiagnosticOptions struct {
	WorkDoneProgressOptions
	Identifier            *string `json:"identifier,omitempty"`
	InterFileDependencies bool    `json:"interFileDependencies"`
	WorkspaceDiagnostics  bool    `json:"workspaceDiagnostics"`
}

type DiagnosticRegistrationOptions struct {
	TextDocumentRegistrationOptions
	DiagnosticOptions
	StaticRegistrationOptions
}

// DiagnosticProvider is DiagnosticOptions | DiagnosticRegistrationOptions.
type DiagnosticProvider struct {
	Value any
}

var diagnosticProviderShapes = union(
	shapeOf[DiagnosticOptions]("DiagnosticOptions"),
	shapeOf[DiagnosticRegistrationOptions]("DiagnosticRegistrationOptions"),
)

func (p *DiagnosticProvider) UnmarshalJSON(data []byte) error {
	v, err := diagnosticProviderShapes.decode("DiagnosticProvider", data)
	if err != nil {
		return err
	}
	p.Value = v
	return nil
}

func (p DiagnosticProvider) MarshalJSON() ([]byte, error) {
	return diagnosticProviderShapes.encode("DiagnosticProvider", p.Value)
}

type DocumentDiagnosticParams struct {
	WorkDoneProgressParams
	PartialResultParams
	TextDocument     TextDocumentIdentifier `json:"textDocument"`
	Identifier       *string                `json:"identifier,omitempty"`
	PreviousResultID *string                `json:"previousResultId,omitempty"`
}

type DocumentDiagnosticReportKind string

const (
	ReportFull      DocumentDiagnosticReportKind = "full"
	ReportUnchanged DocumentDiagnosticReportKind = "unchanged"
)

func (k *DocumentDiagnosticReportKind) UnmarshalJSON(data []byte) error {
	v, err := decodeStringEnum("DocumentDiagnosticReportKind", data,
		[]DocumentDiagnosticReportKind{ReportFull, ReportUnchanged})
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type FullDocumentDiagnosticReport struct {
	Kind     DocumentDiagnosticReportKind `json:"kind"`
	ResultID *string                      `json:"resultId,omitempty"`
	Items    []Diagnostic                 `json:"items"`
}

type UnchangedDocumentDiagnosticReport struct {
	Kind     DocumentDiagnosticReportKind `json:"kind"`
	ResultID string                       `json:"resultId"`
}

// SingleDocumentDiagnosticReport is a full or unchanged report, told apart by kind.
type SingleDocumentDiagnosticReport struct {
	Value any
}

var singleReportVariants = tagged{
	key: "kind",
	variants: map[string]shape{
		"full":      shapeOf[FullDocumentDiagnosticReport]("FullDocumentDiagnosticReport"),
		"unchanged": shapeOf[UnchangedDocumentDiagnosticReport]("UnchangedDocumentDiagnosticReport"),
	},
}

func (r *SingleDocumentDiagnosticReport) UnmarshalJSON(data []byte) error {
	v, err := singleReportVariants.decode("SingleDocumentDiagnosticReport", data)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

func (r SingleDocumentDiagnosticReport) MarshalJSON() ([]byte, error) {
	return singleReportVariants.encode("SingleDocumentDiagnosticReport", r.Value)
}

type RelatedFullDocumentDiagnosticReport struct {
	FullDocumentDiagnosticReport
	RelatedDocuments map[DocumentURI]SingleDocumentDiagnosticReport `json:"relatedDocuments,omitempty"`
}

type RelatedUnchangedDocumentDiagnosticReport struct {
	UnchangedDocumentDiagnosticReport
	RelatedDocuments map[DocumentURI]SingleDocumentDiagnosticReport `json:"relatedDocuments,omitempty"`
}

// DocumentDiagnosticReport is the result of textDocument/diagnostic.
type DocumentDiagnosticReport struct {
	Value any
}

var documentReportVariants = tagged{
	key: "kind",
	variants: map[string]shape{
		"full":      shapeOf[RelatedFullDocumentDiagnosticReport]("RelatedFullDocumentDiagnosticReport"),
		"unchanged": shapeOf[RelatedUnchangedDocumentDiagnosticReport]("RelatedUnchangedDocumentDiagnosticReport"),
	},
}

func NewFullReport(resultID string, items []Diagnostic) DocumentDiagnosticReport {
	if items == nil {
		items = []Diagnostic{}
	}
	report := FullDocumentDiagnosticReport{Kind: ReportFull, Items: items}
	if resultID != "" {
		report.ResultID = &resultID
	}
	return DocumentDiagnosticReport{Value: RelatedFullDocumentDiagnosticReport{FullDocumentDiagnosticReport: report}}
}

func NewUnchangedReport(resultID string) DocumentDiagnosticReport {
	return DocumentDiagnosticReport{Value: RelatedUnchangedDocumentDiagnosticReport{
		UnchangedDocumentDiagnosticReport: UnchangedDocumentDiagnosticReport{Kind: ReportUnchanged, ResultID: resultID},
	}}
}

func (r *DocumentDiagnosticReport) UnmarshalJSON(data []byte) error {
	v, err := documentReportVariants.decode("DocumentDiagnosticReport", data)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

func (r DocumentDiagnosticReport) MarshalJSON() ([]byte, error) {
	return documentReportVariants.encode("DocumentDiagnosticReport", r.Value)
}

func (r DocumentDiagnosticReport) Full() (RelatedFullDocumentDiagnosticReport, bool) {
	return variant[RelatedFullDocumentDiagnosticReport](r.Value)
}

func (r DocumentDiagnosticReport) Unchanged() (RelatedUnchangedDocumentDiagnosticReport, bool) {
	return variant[RelatedUnchangedDocumentDiagnosticReport](r.Value)
}

type DiagnosticServerCancellationData struct {
	RetriggerRequest bool `json:"retriggerRequest"`
}

type PreviousResultID struct {
	URI   DocumentURI `json:"uri"`
	Value string      `json:"value"`
}

type WorkspaceDiagnosticParams struct {
	WorkDoneProgressParams
	PartialResultParams
	Identifier        *string            `json:"identifier,omitempty"`
	PreviousResultIDs []PreviousResultID `json:"previousResultIds"`
}

type WorkspaceFullDocumentDiagnosticReport struct {
	FullDocumentDiagnosticReport
	URI     DocumentURI `json:"uri"`
	Version *int32      `json:"version"`
}

type WorkspaceUnchangedDocumentDiagnosticReport struct {
	UnchangedDocumentDiagnosticReport
	URI     DocumentURI `json:"uri"`
	Version *int32      `json:"version"`
}

// WorkspaceDocumentDiagnosticReport is one entry of a workspace report.
type WorkspaceDocumentDiagnosticReport struct {
	Value any
}

var workspaceReportVariants = tagged{
	key: "kind",
	variants: map[string]shape{
		"full":      shapeOf[WorkspaceFullDocumentDiagnosticReport]("WorkspaceFullDocumentDiagnosticReport"),
		"unchanged": shapeOf[WorkspaceUnchangedDocumentDiagnosticReport]("WorkspaceUnchangedDocumentDiagnosticReport"),
	},
}

func (r *WorkspaceDocumentDiagnosticReport) UnmarshalJSON(data []byte) error {
	v, err := workspaceReportVariants.decode("WorkspaceDocumentDiagnosticReport", data)
	if err != nil {
		return err
	}
	r.Value = v
	return nil
}

func (r WorkspaceDocumentDiagnosticReport) MarshalJSON() ([]byte, error) {
	return workspaceReportVariants.encode("WorkspaceDocumentDiagnosticReport", r.Value)
}

type WorkspaceDiagnosticReport struct {
	Items []WorkspaceDocumentDiagnosticReport `json:"items"`
}
