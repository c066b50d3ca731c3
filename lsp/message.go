package lsp

import (
	"encoding/json"
	"fmt"
)

const JSONRPCVersion = "2.0"

type MessageKind int

const (
	RequestMessage MessageKind = iota + 1
	NotificationMessage
	ResponseMessage
)

func (k MessageKind) String() string {
	switch k {
	case RequestMessage:
		return "request"
	case NotificationMessage:
		return "notification"
	case ResponseMessage:
		return "response"
	}
	return fmt.Sprintf("MessageKind(%d)", int(k))
}

// Message is the union of the three JSON-RPC message shapes. Params and Result
// stay raw until they are decoded against the method table.
type Message struct {
	RPC    string           `json:"jsonrpc"`
	ID     *IntegerOrString `json:"id,omitempty"`
	Method string           `json:"method,omitempty"`
	Params json.RawMessage  `json:"params,omitempty"`
	Result json.RawMessage  `json:"result,omitempty"`
	Error  *ResponseError   `json:"error,omitempty"`
}

func (m Message) Kind() MessageKind {
	switch {
	case m.Method != "" && m.ID != nil:
		return RequestMessage
	case m.Method != "":
		return NotificationMessage
	}
	return ResponseMessage
}

// ParseMessage decodes one JSON-RPC message and checks that it is well formed.
func ParseMessage(data []byte) (Message, error) {
	var m Message
	if err := Unmarshal(data, &m); err != nil {
		return Message{}, err
	}
	if m.RPC != JSONRPCVersion {
		return Message{}, &DecodeError{Kind: KindInvalidEnum, Type: "Message", Field: "jsonrpc", Detail: fmt.Sprintf("%q is not %q", m.RPC, JSONRPCVersion)}
	}
	if m.Method == "" {
		if (m.Result == nil) == (m.Error == nil) {
			return Message{}, mismatch("Message", "", "response must carry exactly one of result and error")
		}
		if m.ID == nil && m.Error == nil {
			return Message{}, &DecodeError{Kind: KindMissingKey, Type: "Message", Field: "id"}
		}
	}
	return m, nil
}

func NewRequest(id IntegerOrString, method string, params any) (Message, error) {
	raw, err := marshalPayload(params)
	if err != nil {
		return Message{}, err
	}
	return Message{RPC: JSONRPCVersion, ID: &id, Method: method, Params: raw}, nil
}

func NewNotification(method string, params any) (Message, error) {
	raw, err := marshalPayload(params)
	if err != nil {
		return Message{}, err
	}
	return Message{RPC: JSONRPCVersion, Method: method, Params: raw}, nil
}

// NewResponse builds a successful response. A nil result is encoded as null.
func NewResponse(id IntegerOrString, result any) (Message, error) {
	raw, err := marshalPayload(result)
	if err != nil {
		return Message{}, err
	}
	if raw == nil {
		raw = json.RawMessage("null")
	}
	return Message{RPC: JSONRPCVersion, ID: &id, Result: raw}, nil
}

func NewErrorResponse(id *IntegerOrString, rerr *ResponseError) Message {
	return Message{RPC: JSONRPCVersion, ID: id, Error: rerr}
}

func marshalPayload(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	return Marshal(v)
}

// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#responseMessage
type ResponseError struct {
	Code    ErrorCode       `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, int32(e.Code), e.Message)
}

// ErrorCode is an open set; these are the codes reserved by JSON-RPC and LSP.
type ErrorCode int32

const (
	ParseError     ErrorCode = -32700
	InvalidRequest ErrorCode = -32600
	MethodNotFound ErrorCode = -32601
	InvalidParams  ErrorCode = -32602
	InternalError  ErrorCode = -32603

	ServerNotInitialized ErrorCode = -32002
	UnknownErrorCode     ErrorCode = -32001

	RequestFailed    ErrorCode = -32803
	ServerCancelled  ErrorCode = -32802
	ContentModified  ErrorCode = -32801
	RequestCancelled ErrorCode = -32800
)

var errorCodeNames = map[ErrorCode]string{
	ParseError:           "ParseError",
	InvalidRequest:       "InvalidRequest",
	MethodNotFound:       "MethodNotFound",
	InvalidParams:        "InvalidParams",
	InternalError:        "InternalError",
	ServerNotInitialized: "ServerNotInitialized",
	UnknownErrorCode:     "UnknownErrorCode",
	RequestFailed:        "RequestFailed",
	ServerCancelled:      "ServerCancelled",
	ContentModified:      "ContentModified",
	RequestCancelled:     "RequestCancelled",
}

func (c ErrorCode) String() string {
	if s, ok := errorCodeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int32(c))
}
