package obj

// Event is one discrete keyboard event, e.g. "PRESS left". The player
// receives at most one per tick; anything outside the known set is a no-op.
type Event string

const (
	None         Event = ""
	PressLeft    Event = "PRESS left"
	PressRight   Event = "PRESS right"
	PressUp      Event = "PRESS up"
	PressDown    Event = "PRESS down"
	ReleaseLeft  Event = "RELEASE left"
	ReleaseRight Event = "RELEASE right"
	ReleaseDown  Event = "RELEASE down"
)

var knownEvents = map[Event]struct{}{
	PressLeft:    {},
	PressRight:   {},
	PressUp:      {},
	PressDown:    {},
	ReleaseLeft:  {},
	ReleaseRight: {},
	ReleaseDown:  {},
}

// Known reports whether e belongs to the input vocabulary.
func (e Event) Known() bool {
	_, ok := knownEvents[e]
	return ok
}

// ParseEvent converts s into an Event. ok is false for strings outside the
// vocabulary; the returned Event still carries s so callers can show it.
func ParseEvent(s string) (Event, bool) {
	e := Event(s)
	return e, e.Known()
}
