package quiz

import "time"

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// DefaultDelays dismisses correct answers faster than incorrect ones, which stay
// up long enough to read the expected answer.
var DefaultDelays = Delays{
	Correct:   1500 * time.Millisecond,
	Incorrect: 2000 * time.Millisecond,
}

// Delays holds the display time before an automatic advance.
type Delays struct {
	Correct   time.Duration
	Incorrect time.Duration
}

func (d Delays) forOutcome(o Outcome) time.Duration {
	if o == OutcomeCorrect {
		return d.Correct
	}
	return d.Incorrect
}
