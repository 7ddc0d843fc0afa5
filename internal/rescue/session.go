// Package rescue implements the game-state core shared by the rescue games:
// the session state machine, the entity registry, proximity resolution,
// deferred respawns and hero movement. It has no rendering, audio or input
// dependencies; those are collaborators driven through small interfaces.
package rescue

// Status is the lifecycle state of a play session.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusPaused
	StatusEnded
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "NotStarted"
	case StatusRunning:
		return "Running"
	case StatusPaused:
		return "Paused"
	case StatusEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Outcome describes how an ended session finished.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// SessionConfig holds the constants of a session.
type SessionConfig struct {
	TargetRescues int // Rescues needed to win
	RescueReward  int // Score added per rescue
}

// Session tracks status, score and rescue progress of one play-through.
//
// Every transition method returns whether it had an effect. Calling a
// transition from a state that does not permit it is a no-op.
type Session struct {
	cfg        SessionConfig
	announcer  Announcer
	form       func() Form
	status     Status
	outcome    Outcome
	score      int
	rescues    int
	generation uint64
}

// NewSession creates a session in the NotStarted state.
// A nil announcer is replaced by NopAnnouncer.
func NewSession(cfg SessionConfig, a Announcer) *Session {
	if a == nil {
		a = NopAnnouncer{}
	}
	if cfg.TargetRescues < 1 {
		cfg.TargetRescues = 1
	}
	return &Session{cfg: cfg, announcer: a}
}

// Start begins the mission. Allowed only from NotStarted.
func (s *Session) Start() bool {
	if s.status != StatusNotStarted {
		return false
	}
	s.status = StatusRunning
	s.announce(EventMissionStart)
	return true
}

// Pause suspends a running session.
func (s *Session) Pause() bool {
	if s.status != StatusRunning {
		return false
	}
	s.status = StatusPaused
	return true
}

// Resume continues a paused session.
func (s *Session) Resume() bool {
	if s.status != StatusPaused {
		return false
	}
	s.status = StatusRunning
	return true
}

// TogglePause switches between Running and Paused.
func (s *Session) TogglePause() bool {
	if s.status == StatusPaused {
		return s.Resume()
	}
	return s.Pause()
}

// RecordCollision ends a running session with a loss.
func (s *Session) RecordCollision() bool {
	if s.status != StatusRunning {
		return false
	}
	s.end(OutcomeLoss)
	return true
}

// RecordRescue credits one rescue. Reaching the target ends the session
// with a win.
func (s *Session) RecordRescue() bool {
	if s.status != StatusRunning {
		return false
	}
	s.rescues++
	s.score += s.cfg.RescueReward
	s.announce(EventEntityRescued)
	if s.rescues >= s.cfg.TargetRescues {
		s.end(OutcomeWin)
	}
	return true
}

// AddScore adds distance or bonus points while running.
func (s *Session) AddScore(points int) bool {
	if s.status != StatusRunning || points <= 0 {
		return false
	}
	s.score += points
	return true
}

// Reset returns the session to NotStarted with zeroed counters and
// invalidates everything scheduled against the previous generation.
func (s *Session) Reset() {
	s.status = StatusNotStarted
	s.outcome = OutcomeNone
	s.score = 0
	s.rescues = 0
	s.generation++
}

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Outcome returns the outcome of an ended session (OutcomeNone otherwise).
func (s *Session) Outcome() Outcome { return s.outcome }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Rescues returns the number of rescues in this session.
func (s *Session) Rescues() int { return s.rescues }

// Target returns the rescues needed to win.
func (s *Session) Target() int { return s.cfg.TargetRescues }

// Generation identifies the current session instance; it changes on Reset.
func (s *Session) Generation() uint64 { return s.generation }

// Running reports whether the session is in the Running state.
func (s *Session) Running() bool { return s.status == StatusRunning }

// Ended reports whether the session is in the Ended state.
func (s *Session) Ended() bool { return s.status == StatusEnded }

// Announce forwards an out-of-band event (form change, support call).
func (s *Session) Announce(kind EventKind) {
	s.announce(kind)
}

func (s *Session) end(o Outcome) {
	s.status = StatusEnded
	s.outcome = o
	if o == OutcomeWin {
		s.announce(EventWin)
	} else {
		s.announce(EventLoss)
	}
}

func (s *Session) announce(kind EventKind) {
	e := Event{Kind: kind}
	if s.form != nil {
		e.Form = s.form()
	}
	s.announcer.Announce(e)
}
