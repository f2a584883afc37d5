// Package live carries page updates and user events between a browser tab
// and its server-side session over a WebSocket.
package live

// Event types sent by the browser.
const (
	EventNavigate = "navigate"
	EventInput    = "input"
	EventAction   = "action"
)

// Event is a user interaction reported by the browser shim.
type Event struct {
	Type  string `json:"type"`
	Path  string `json:"path,omitempty"`  // navigate
	Field string `json:"field,omitempty"` // input
	Value string `json:"value,omitempty"` // input
	Name  string `json:"name,omitempty"`  // action
}

// Message types sent to the browser.
const (
	MsgRender = "render"
	MsgAttr   = "attr"
	MsgValue  = "value"
	MsgClear  = "clear"
	MsgTitle  = "title"
)

// Message is one DOM update for the browser shim to apply.
type Message struct {
	Type   string `json:"type"`
	Target string `json:"target,omitempty"`
	HTML   string `json:"html,omitempty"`
	Name   string `json:"name,omitempty"`
	Value  string `json:"value,omitempty"`
	Remove bool   `json:"remove,omitempty"`
	Notice string `json:"notice,omitempty"`
}

// Render replaces the contents of the element with id target.
func Render(target, html string) Message {
	return Message{Type: MsgRender, Target: target, HTML: html}
}

// SetAttr sets attribute name on the element with id target.
func SetAttr(target, name, value string) Message {
	return Message{Type: MsgAttr, Target: target, Name: name, Value: value}
}

// RemoveAttr removes attribute name from the element with id target.
func RemoveAttr(target, name string) Message {
	return Message{Type: MsgAttr, Target: target, Name: name, Remove: true}
}

// Disabled toggles the disabled attribute of the element with id target.
func Disabled(target string, disabled bool) Message {
	if disabled {
		return SetAttr(target, "disabled", "disabled")
	}
	return RemoveAttr(target, "disabled")
}

// SetValue sets the value of the input with id target.
func SetValue(target, value string) Message {
	return Message{Type: MsgValue, Target: target, Value: value}
}

// Clear empties the element with id target if it still shows notice.
func Clear(target, notice string) Message {
	return Message{Type: MsgClear, Target: target, Notice: notice}
}

// Title sets the document title.
func Title(title string) Message {
	return Message{Type: MsgTitle, Value: title}
}

// Sink receives messages for one browser tab. Implementations must be safe
// for concurrent use.
type Sink interface {
	Send(Message) error
}

// Session is the server-side state of one browser tab.
type Session interface {
	Handle(Event)
	Close()
}
