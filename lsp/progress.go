package lsp

import "encoding/json"

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#progress
type ProgressParams struct {
	Token ProgressToken   `json:"token"`
	Value json.RawMessage `json:"value"`
}

// WorkDone decodes Value as a work done progress notification.
func (p ProgressParams) WorkDone() (WorkDoneProgress, error) {
	var v WorkDoneProgress
	if err := Unmarshal(p.Value, &v); err != nil {
		return WorkDoneProgress{}, err
	}
	return v, nil
}

type WorkDoneProgressBegin struct {
	Kind        string  `json:"kind"`
	Title       string  `json:"title"`
	Cancellable *bool   `json:"cancellable,omitempty"`
	Message     *string `json:"message,omitempty"`
	Percentage  *uint32 `json:"percentage,omitempty"`
}

type WorkDoneProgressReport struct {
	Kind        string  `json:"kind"`
	Cancellable *bool   `json:"cancellable,omitempty"`
	Message     *string `json:"message,omitempty"`
	Percentage  *uint32 `json:"percentage,omitempty"`
}

type WorkDoneProgressEnd struct {
	Kind    string  `json:"kind"`
	Message *string `json:"message,omitempty"`
}

// WorkDoneProgress is begin | report | end, told apart by kind.
type WorkDoneProgress struct {
	Value any
}

var workDoneProgressVariants = tagged{
	key: "kind",
	variants: map[string]shape{
		"begin":  shapeOf[WorkDoneProgressBegin]("WorkDoneProgressBegin"),
		"report": shapeOf[WorkDoneProgressReport]("WorkDoneProgressReport"),
		"end":    shapeOf[WorkDoneProgressEnd]("WorkDoneProgressEnd"),
	},
}

func NewProgressBegin(title string) WorkDoneProgress {
	return WorkDoneProgress{Value: WorkDoneProgressBegin{Kind: "begin", Title: title}}
}

func NewProgressReport(message string, percentage uint32) WorkDoneProgress {
	return WorkDoneProgress{Value: WorkDoneProgressReport{Kind: "report", Message: &message, Percentage: &percentage}}
}

func NewProgressEnd(message string) WorkDoneProgress {
	end := WorkDoneProgressEnd{Kind: "end"}
	if message != "" {
		end.Message = &message
	}
	return WorkDoneProgress{Value: end}
}

func (p *WorkDoneProgress) UnmarshalJSON(data []byte) error {
	v, err := workDoneProgressVariants.decode("WorkDoneProgress", data)
	if err != nil {
		return err
	}
	p.Value = v
	return nil
}

func (p WorkDoneProgress) MarshalJSON() ([]byte, error) {
	return workDoneProgressVariants.encode("WorkDoneProgress", p.Value)
}

func (p WorkDoneProgress) Begin() (WorkDoneProgressBegin, bool) {
	return variant[WorkDoneProgressBegin](p.Value)
}

func (p WorkDoneProgress) Report() (WorkDoneProgressReport, bool) {
	return variant[WorkDoneProgressReport](p.Value)
}

func (p WorkDoneProgress) End() (WorkDoneProgressEnd, bool) {
	return variant[WorkDoneProgressEnd](p.Value)
}

type WorkDoneProgressCreateParams struct {
	Token ProgressToken `json:"token"`
}

type WorkDoneProgressCancelParams struct {
	Token ProgressToken `json:"token"`
}
