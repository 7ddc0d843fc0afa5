package rescue

// EventKind identifies a side effect announced by the session.
type EventKind int

const (
	EventMissionStart EventKind = iota
	EventFormChanged
	EventEntityRescued
	EventWin
	EventLoss
	EventSupport
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMissionStart:
		return "MissionStart"
	case EventFormChanged:
		return "FormChanged"
	case EventEntityRescued:
		return "EntityRescued"
	case EventWin:
		return "Win"
	case EventLoss:
		return "Loss"
	case EventSupport:
		return "Support"
	default:
		return "Unknown"
	}
}

// Event is passed to the Announcer on state transitions.
type Event struct {
	Kind EventKind
	Form Form // Hero form at the time of the event
}

// Announcer receives session events for audio/voice playback.
// Implementations must not block and may drop events silently.
type Announcer interface {
	Announce(e Event)
}

// AnnouncerFunc adapts a function to the Announcer interface.
type AnnouncerFunc func(e Event)

// Announce calls f(e).
func (f AnnouncerFunc) Announce(e Event) {
	f(e)
}

// NopAnnouncer discards every event.
type NopAnnouncer struct{}

// Announce does nothing.
func (NopAnnouncer) Announce(Event) {}

// Recorder collects announced events, mainly for tests and replays.
type Recorder struct {
	Events []Event
}

// Announce appends e.
func (r *Recorder) Announce(e Event) {
	r.Events = append(r.Events, e)
}

// Kinds returns the kinds of all recorded events in order.
func (r *Recorder) Kinds() []EventKind {
	kinds := make([]EventKind, len(r.Events))
	for i, e := range r.Events {
		kinds[i] = e.Kind
	}
	return kinds
}

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
