// Package stats aggregates quiz outcomes and renders session reports.
package stats

import (
	"math"
	"strings"

	"github.com/verte-zerg/kanaquiz/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Aggregator accumulates per-submission outcomes for one session.
type Aggregator struct {
	total      int
	firstTry   int
	mistakes   int
	byQuestion map[string]int
	results    []model.Result
}

// Snapshot is a read-only copy of session statistics.
type Snapshot struct {
	TotalQuestions  int
	CorrectFirstTry int
	TotalMistakes   int
	// Mistakes counts incorrect submissions per question ID.
	Mistakes map[string]int
	Results  []model.Result
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	a := &Aggregator{}
	a.Reset(0)
	return a
}

// Reset clears all counts and fixes the session size.
func (a *Aggregator) Reset(total int) {
	a.total = total
	a.firstTry = 0
	a.mistakes = 0
	a.byQuestion = map[string]int{}
	a.results = nil
}

// Record accumulates one submission. q.Attempts must already include this attempt.
func (a *Aggregator) Record(q model.Question, answer string, correct bool) {
	a.results = append(a.results, model.Result{
		Question:   q,
		UserAnswer: strings.TrimSpace(answer),
		Correct:    correct,
		Attempt:    q.Attempts,
	})
	if correct {
		if q.Attempts == 1 {
			a.firstTry++
		}
		return
	}
	a.mistakes++
	a.byQuestion[q.ID]++
}

// Snapshot returns a copy that later submissions do not affect.
func (a *Aggregator) Snapshot() Snapshot {
	mistakes := make(map[string]int, len(a.byQuestion))
	for id, n := range a.byQuestion {
		mistakes[id] = n
	}
	results := make([]model.Result, len(a.results))
	copy(results, a.results)
	return Snapshot{
		TotalQuestions:  a.total,
		CorrectFirstTry: a.firstTry,
		TotalMistakes:   a.mistakes,
		Mistakes:        mistakes,
		Results:         results,
	}
}

// Accuracy is first-try correct answers over the session size, 0 for an empty session.
func (s Snapshot) Accuracy() float64 {
	if s.TotalQuestions <= 0 {
		return 0
	}
	return float64(s.CorrectFirstTry) / float64(s.TotalQuestions)
}

// AccuracyPercent is Accuracy rounded to a whole percent.
func (s Snapshot) AccuracyPercent() int {
	return int(math.Round(s.Accuracy() * 100))
}

// RunningAccuracy returns the cumulative share of correct submissions after each result.
func RunningAccuracy(results []model.Result) []float64 {
	out := make([]float64, len(results))
	correct := 0
	for i, r := range results {
		if r.Correct {
			correct++
		}
		out[i] = float64(correct) / float64(i+1)
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
