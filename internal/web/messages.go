package web

// MessageType identifies WebSocket message kinds.
type MessageType string

const (
	// MessageTypeInput carries one calculator input line from the browser.
	MessageTypeInput MessageType = "input"
	// MessageTypeResult carries a formatted evaluation result.
	MessageTypeResult MessageType = "result"
	// MessageTypeError carries an evaluation failure.
	MessageTypeError MessageType = "error"
	// MessageTypeNotice carries informational text, such as recall hints.
	MessageTypeNotice MessageType = "notice"
	// MessageTypeReset clears the session's variable bindings.
	MessageTypeReset MessageType = "reset"
)

// Message is the WebSocket wire format, shared by both directions.
type Message struct {
	Type      MessageType `json:"type"`
	Input     string      `json:"input,omitempty"`
	Parsed    string      `json:"parsed,omitempty"`
	SI        string      `json:"si,omitempty"`
	CGS       string      `json:"cgs,omitempty"`
	Converted string      `json:"converted,omitempty"`
	Text      string      `json:"text,omitempty"`
}

// CalculateRequest is the JSON body of POST /api/calculate.
type CalculateRequest struct {
	Input string `json:"input"`
}

// CalculateResponse is the JSON reply of POST /api/calculate.
type CalculateResponse struct {
	Input     string `json:"input"`
	Parsed    string `json:"parsed,omitempty"`
	SI        string `json:"si,omitempty"`
	CGS       string `json:"cgs,omitempty"`
	Converted string `json:"converted,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
	Notice    string `json:"notice,omitempty"`
}
