package host

// EventType enumerates the host notifications the engine subscribes to.
type EventType int

const (
	DocEntered EventType = iota
	DocLeft
	DocClosed
	DocWiped
	SessionSavePoint
	SessionRestored
	FocusRegained
	ColorSchemeChanged
)

func (t EventType) String() string {
	switch t {
	case DocEntered:
		return "doc-entered"
	case DocLeft:
		return "doc-left"
	case DocClosed:
		return "doc-closed"
	case DocWiped:
		return "doc-wiped"
	case SessionSavePoint:
		return "session-save-point"
	case SessionRestored:
		return "session-restored"
	case FocusRegained:
		return "focus-regained"
	case ColorSchemeChanged:
		return "color-scheme-changed"
	}
	return "unknown"
}

// Event is a single host notification. Doc is NoHandle for events that do
// not concern a specific document.
type Event struct {
	Type EventType
	Doc  Handle
}

// Handler consumes one event. Handlers run synchronously on the caller's
// goroutine; a handler returns before the next event is dispatched.
type Handler func(Event)

// Dispatcher routes events to registered handlers in registration order.
type Dispatcher struct {
	handlers map[EventType][]Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[EventType][]Handler)}
}

// Subscribe registers a handler for one event type.
func (d *Dispatcher) Subscribe(t EventType, h Handler) {
	d.handlers[t] = append(d.handlers[t], h)
}

// SubscribeAll registers a handler for every listed event type.
func (d *Dispatcher) SubscribeAll(types []EventType, h Handler) {
	for _, t := range types {
		d.Subscribe(t, h)
	}
}

// Emit delivers the event to all handlers registered for its type.
func (d *Dispatcher) Emit(e Event) {
	for _, h := range d.handlers[e.Type] {
		h(e)
	}
}
