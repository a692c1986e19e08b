package stats

import (
	"sort"

	"github.com/verte-zerg/kanaquiz/internal/model"
)

// Mistake is a per-question mistake count with display fields.
type Mistake struct {
	ID        string
	Character string
	Answer    string
	Count     int
}

// TopMistakes returns the n most-missed questions. n <= 0 returns all of them.
func TopMistakes(s Snapshot, n int) []Mistake {
	if len(s.Mistakes) == 0 {
		return nil
	}
	questions := map[string]model.Question{}
	for _, r := range s.Results {
		questions[r.Question.ID] = r.Question
	}
	items := make([]Mistake, 0, len(s.Mistakes))
	for id, count := range s.Mistakes {
		q, ok := questions[id]
		if !ok {
			q = model.Question{ID: id, Character: id}
		}
		items = append(items, Mistake{
			ID:        id,
			Character: q.Character,
			Answer:    q.Answer,
			Count:     count,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].ID < items[j].ID
		}
		return items[i].Count > items[j].Count
	})
	if n > 0 && n < len(items) {
		items = items[:n]
	}
	return items
}
