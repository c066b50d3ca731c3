package lsp

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#window_showMessage
type MessageType uint32

const (
	MessageError MessageType = iota + 1
	MessageWarning
	MessageInfo
	MessageLog
)

var messageTypeNames = map[MessageType]string{
	MessageError:   "Error",
	MessageWarning: "Warning",
	MessageInfo:    "Info",
	MessageLog:     "Log",
}

func (t MessageType) String() string {
	return enumString("MessageType", t, messageTypeNames)
}

func (t *MessageType) UnmarshalJSON(data []byte) error {
	v, err := decodeUintEnum("MessageType", data, messageTypeNames)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type ShowMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

type MessageActionItem struct {
	Title string `json:"title"`
}

type ShowMessageRequestParams struct {
	Type    MessageType         `json:"type"`
	Message string              `json:"message"`
	Actions []MessageActionItem `json:"actions,omitempty"`
}

type LogMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#window_showDocument
type ShowDocumentParams struct {
	URI       URI    `json:"uri"`
	External  *bool  `json:"external,omitempty"`
	TakeFocus *bool  `json:"takeFocus,omitempty"`
	Selection *Range `json:"selection,omitempty"`
}

type ShowDocumentResult struct {
	Success bool `json:"success"`
}
