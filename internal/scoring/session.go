package scoring

import "errors"

// SessionState is the lifecycle phase of one pass through the quiz.
type SessionState int

const (
	StateNotStarted SessionState = iota
	StateInProgress
	StateSubmitting
	StateCompleted
	StateFailed
)

func (s SessionState) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateSubmitting:
		return "submitting"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	ErrEmptyCatalog       = errors.New("question catalog is empty")
	ErrSessionNotStarted  = errors.New("session already started")
	ErrSessionNotActive   = errors.New("session is not in progress")
	ErrAnswerOutOfOrder   = errors.New("answer does not target the current question")
	ErrSessionNotComplete = errors.New("session has unanswered questions")
)

// Session tracks one user's pass through the quiz. It has value semantics:
// every transition returns a new Session, so concurrent sessions never share
// mutable state. A failed session cannot resume; the caller starts over.
type Session struct {
	state     SessionState
	questions []Question
	answers   []Answer
	index     int
}

func NewSession() Session {
	return Session{state: StateNotStarted}
}

func (s Session) State() SessionState { return s.state }

// QuestionIndex is the zero-based position of the question awaiting an
// answer. Meaningful only while in progress.
func (s Session) QuestionIndex() int { return s.index }

// Answers returns a copy of the recorded answers in catalog order.
func (s Session) Answers() []Answer {
	out := make([]Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Start transitions NotStarted -> InProgress with a freshly fetched catalog.
// The catalog must already be sorted by order index; it is immutable for the
// life of the session. An empty catalog fails the session.
func (s Session) Start(questions []Question) (Session, error) {
	if s.state != StateNotStarted {
		return s, ErrSessionNotStarted
	}
	if len(questions) == 0 {
		s.state = StateFailed
		return s, ErrEmptyCatalog
	}
	s.state = StateInProgress
	s.questions = questions
	s.answers = make([]Answer, 0, len(questions))
	s.index = 0
	return s, nil
}

// Record accepts the answer for the current question. Answering the final
// question moves the session to Submitting; the scoring pipeline runs then.
func (s Session) Record(a Answer) (Session, error) {
	if s.state != StateInProgress {
		return s, ErrSessionNotActive
	}
	if a.QuestionID != s.questions[s.index].ID {
		return s, ErrAnswerOutOfOrder
	}
	s.answers = append(s.answers[:s.index:s.index], a)
	s.index++
	if s.index == len(s.questions) {
		s.state = StateSubmitting
	}
	return s, nil
}

// Complete marks a successful persistence of the computed result.
func (s Session) Complete() (Session, error) {
	if s.state != StateSubmitting {
		return s, ErrSessionNotComplete
	}
	s.state = StateCompleted
	return s, nil
}

// Fail terminates the session and discards the in-memory answers. There is
// no recovery transition from here.
func (s Session) Fail() Session {
	s.state = StateFailed
	s.answers = nil
	return s
}
