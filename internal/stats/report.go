package stats

import (
	"fmt"
	"io"
	"strconv"
)

// RenderSummary prints the headline numbers of a session.
func RenderSummary(w io.Writer, s Snapshot) error {
	lines := []string{
		fmt.Sprintf("Total Questions: %d", s.TotalQuestions),
		fmt.Sprintf("Correct First Try: %d", s.CorrectFirstTry),
		fmt.Sprintf("Accuracy: %d%%", s.AccuracyPercent()),
		fmt.Sprintf("Mistakes: %d", s.TotalMistakes),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(s.Results) > 1 {
		if _, err := fmt.Fprintf(w, "Trend: %s\n", Sparkline(RunningAccuracy(s.Results))); err != nil {
			return err
		}
	}
	return nil
}

// RenderMistakeTable prints the characters to review, most-missed first.
func RenderMistakeTable(w io.Writer, s Snapshot) error {
	mistakes := TopMistakes(s, 0)
	if len(mistakes) == 0 {
		_, err := fmt.Fprintln(w, "Perfect Score! No mistakes this session.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Characters to Review (%d total mistakes)\n", s.TotalMistakes); err != nil {
		return err
	}
	rows := make([][]string, 0, len(mistakes))
	for _, m := range mistakes {
		rows = append(rows, []string{m.Character, m.Answer, mistakeLabel(m.Count)})
	}
	return WriteTable(w, []string{"Char", "Answer", "Mistakes"}, rows, map[int]bool{2: true})
}

// RenderResultLog prints every submission in order.
func RenderResultLog(w io.Writer, s Snapshot) error {
	if len(s.Results) == 0 {
		_, err := fmt.Fprintln(w, "No answers recorded.")
		return err
	}
	rows := make([][]string, 0, len(s.Results))
	for i, r := range s.Results {
		verdict := "wrong"
		if r.Correct {
			verdict = "ok"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Question.Character,
			r.UserAnswer,
			r.Question.Answer,
			strconv.Itoa(r.Attempt),
			verdict,
		})
	}
	headers := []string{"#", "Char", "Answer", "Expected", "Attempt", "Result"}
	return WriteTable(w, headers, rows, map[int]bool{0: true, 4: true})
}

func mistakeLabel(count int) string {
	if count == 1 {
		return "1 mistake"
	}
	return fmt.Sprintf("%d mistakes", count)
}
