// Package quiz runs a single quiz session: the question queue, answer checking,
// the repeat policy and the timed advance between questions.
package quiz

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/verte-zerg/kanaquiz/internal/model"
	"github.com/verte-zerg/kanaquiz/internal/stats"
)

// State is the engine's position in the session lifecycle.
type State int

const (
	StateIdle            State = iota // No session
	StateActive                       // Current question awaits an answer
	StateAwaitingAdvance              // Result shown, advance pending
	StateComplete                     // Queue exhausted
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateAwaitingAdvance:
		return "awaiting-advance"
	case StateComplete:
		return "complete"
	default:
		return "idle"
	}
}

// Outcome is the judgement of the last submission.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

// Precondition failures. None of them mutate engine state.
var (
	ErrEmptyPool          = errors.New("cannot start a quiz with no questions")
	ErrNotActive          = errors.New("no question is waiting for an answer")
	ErrBlankAnswer        = errors.New("answer is blank")
	ErrNotAwaitingAdvance = errors.New("no answered question to advance from")
)

// Shuffler permutes questions in place.
type Shuffler interface {
	Shuffle(questions []model.Question)
}

// Status is the engine's outbound view for presentation.
type Status struct {
	SessionID string
	State     State
	// Current is nil outside Active and AwaitingAdvance.
	Current   *model.Question
	Last      Outcome
	Remaining int
	Stats     stats.Snapshot
}

// Engine owns the session queue and statistics.
type Engine struct {
	behavior model.Behavior
	shuffler Shuffler

	sessionID string
	state     State
	queue     []model.Question
	last      Outcome
	stats     *stats.Aggregator
}

// NewEngine returns an idle engine using the given repeat policy.
func NewEngine(behavior model.Behavior, shuffler Shuffler) *Engine {
	return &Engine{
		behavior: behavior,
		shuffler: shuffler,
		stats:    stats.NewAggregator(),
	}
}

// SetBehavior changes the repeat policy for the next session.
func (e *Engine) SetBehavior(behavior model.Behavior) {
	e.behavior = behavior
}

// Start begins a session over a shuffled copy of pool.
func (e *Engine) Start(pool []model.Question) error {
	if len(pool) == 0 {
		return ErrEmptyPool
	}
	queue := make([]model.Question, len(pool))
	copy(queue, pool)
	for i := range queue {
		queue[i].Attempts = 0
	}
	if e.shuffler != nil {
		e.shuffler.Shuffle(queue)
	}
	e.sessionID = uuid.NewString()
	e.queue = queue
	e.last = OutcomeNone
	e.stats.Reset(len(queue))
	e.state = StateActive
	return nil
}

// Submit judges rawAnswer against the current question. Comparison ignores case
// and surrounding whitespace. The queue is not changed until Advance.
func (e *Engine) Submit(rawAnswer string) (Outcome, error) {
	if e.state != StateActive {
		return OutcomeNone, ErrNotActive
	}
	answer := strings.TrimSpace(rawAnswer)
	if answer == "" {
		return OutcomeNone, ErrBlankAnswer
	}
	head := &e.queue[0]
	head.Attempts++
	correct := CheckAnswer(answer, head.Answer)
	e.stats.Record(*head, answer, correct)

	e.last = OutcomeIncorrect
	if correct {
		e.last = OutcomeCorrect
	}
	e.state = StateAwaitingAdvance
	return e.last, nil
}

// Advance applies the repeat policy to the answered question and moves to the
// next one, or completes the session when the queue is empty.
func (e *Engine) Advance() error {
	if e.state != StateAwaitingAdvance {
		return ErrNotAwaitingAdvance
	}
	head := e.queue[0]
	rest := e.queue[1:]
	next := make([]model.Question, len(rest), len(rest)+1)
	copy(next, rest)
	if e.last == OutcomeIncorrect && e.behavior == model.BehaviorRepeatUntilCorrect {
		next = append(next, head)
	}
	e.queue = next
	e.last = OutcomeNone
	if len(e.queue) == 0 {
		e.state = StateComplete
		return nil
	}
	e.state = StateActive
	return nil
}

// Reset discards the session and returns to Idle.
func (e *Engine) Reset() {
	e.sessionID = ""
	e.state = StateIdle
	e.queue = nil
	e.last = OutcomeNone
	e.stats.Reset(0)
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Status returns a copy of the engine's observable state.
func (e *Engine) Status() Status {
	st := Status{
		SessionID: e.sessionID,
		State:     e.state,
		Last:      e.last,
		Remaining: len(e.queue),
		Stats:     e.stats.Snapshot(),
	}
	if (e.state == StateActive || e.state == StateAwaitingAdvance) && len(e.queue) > 0 {
		current := e.queue[0]
		st.Current = &current
	}
	return st
}

// CheckAnswer reports whether answer matches expected, ignoring case and
// surrounding whitespace. No other normalisation is applied.
func CheckAnswer(answer, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), expected)
}
