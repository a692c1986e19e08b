package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/kanaquiz/internal/generator"
	"github.com/verte-zerg/kanaquiz/internal/model"
)

type keepOrder struct{}

func (keepOrder) Shuffle([]model.Question) {}

type reverseOrder struct{}

func (reverseOrder) Shuffle(q []model.Question) {
	for i, j := 0, len(q)-1; i < j; i, j = i+1, j-1 {
		q[i], q[j] = q[j], q[i]
	}
}

func rowAPool(t *testing.T) []model.Question {
	t.Helper()
	pool, err := generator.NewWithSeed(1).BuildPool(model.Config{
		QuizType:     model.QuizKana,
		KanaMode:     model.KanaHiragana,
		SelectedRows: []model.Row{"a"},
	})
	require.NoError(t, err)
	return pool
}

func startedEngine(t *testing.T, behavior model.Behavior) *Engine {
	t.Helper()
	e := NewEngine(behavior, keepOrder{})
	require.NoError(t, e.Start(rowAPool(t)))
	return e
}

func current(t *testing.T, e *Engine) model.Question {
	t.Helper()
	st := e.Status()
	require.NotNil(t, st.Current)
	return *st.Current
}

func answerCurrent(t *testing.T, e *Engine, correct bool) Outcome {
	t.Helper()
	q := current(t, e)
	answer := q.Answer
	if !correct {
		answer = "xx"
	}
	outcome, err := e.Submit(answer)
	require.NoError(t, err)
	require.NoError(t, e.Advance())
	return outcome
}

func TestStartInitialisesSession(t *testing.T) {
	e := startedEngine(t, model.BehaviorOneTry)
	st := e.Status()

	assert.Equal(t, StateActive, st.State)
	assert.Equal(t, 5, st.Remaining)
	assert.Equal(t, 5, st.Stats.TotalQuestions)
	assert.Equal(t, OutcomeNone, st.Last)
	assert.NotEmpty(t, st.SessionID)
	require.NotNil(t, st.Current)
	assert.Equal(t, "あ", st.Current.Character)
}

func TestStartShufflesCopy(t *testing.T) {
	pool := rowAPool(t)
	e := NewEngine(model.BehaviorOneTry, reverseOrder{})
	require.NoError(t, e.Start(pool))

	assert.Equal(t, "お", current(t, e).Character)
	assert.Equal(t, "あ", pool[0].Character, "caller's pool must not be reordered")
}

func TestStartEmptyPoolRefused(t *testing.T) {
	e := NewEngine(model.BehaviorOneTry, keepOrder{})
	err := e.Start(nil)
	require.ErrorIs(t, err, ErrEmptyPool)
	assert.Equal(t, StateIdle, e.State())
	assert.Nil(t, e.Status().Current)
}

func TestStartWithNoRowsRefused(t *testing.T) {
	pool, err := generator.NewWithSeed(1).BuildPool(model.Config{QuizType: model.QuizKana, KanaMode: model.KanaHiragana})
	require.ErrorIs(t, err, generator.ErrNoQuestions)

	e := NewEngine(model.BehaviorOneTry, keepOrder{})
	require.ErrorIs(t, e.Start(pool), ErrEmptyPool)
	assert.NotEqual(t, StateActive, e.State())
}

func TestSessionIDChangesPerStart(t *testing.T) {
	e := startedEngine(t, model.BehaviorOneTry)
	first := e.Status().SessionID
	require.NoError(t, e.Start(rowAPool(t)))
	assert.NotEqual(t, first, e.Status().SessionID)
}

func TestCheckAnswer(t *testing.T) {
	assert.True(t, CheckAnswer("KA", "ka"))
	assert.True(t, CheckAnswer(" ka ", "ka"))
	assert.True(t, CheckAnswer("Person", "person"))
	assert.True(t, CheckAnswer("HITO ", "hito"))
	assert.True(t, CheckAnswer("ひと", "ひと"))
	assert.False(t, CheckAnswer("k a", "ka"))
	assert.False(t, CheckAnswer("ga", "ka"))
	assert.False(t, CheckAnswer("day", "day, sun"))
}

func TestSubmitCaseInsensitive(t *testing.T) {
	e := startedEngine(t, model.BehaviorOneTry)
	outcome, err := e.Submit("  A ")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCorrect, outcome)

	st := e.Status()
	assert.Equal(t, StateAwaitingAdvance, st.State)
	assert.Equal(t, OutcomeCorrect, st.Last)
	assert.Equal(t, 5, st.Remaining, "queue changes only on advance")
	require.Len(t, st.Stats.Results, 1)
	assert.Equal(t, "A", st.Stats.Results[0].UserAnswer)
}

func TestSubmitBlankIsNoop(t *testing.T) {
	e := startedEngine(t, model.BehaviorOneTry)
	for _, blank := range []string{"", "   ", "\t\n"} {
		_, err := e.Submit(blank)
		require.ErrorIs(t, err, ErrBlankAnswer)
	}
	st := e.Status()
	assert.Equal(t, StateActive, st.State)
	assert.Zero(t, st.Current.Attempts)
	assert.Empty(t, st.Stats.Results)
}

func TestSubmitOutsideActiveRejected(t *testing.T) {
	e := NewEngine(model.BehaviorOneTry, keepOrder{})
	_, err := e.Submit("a")
	require.ErrorIs(t, err, ErrNotActive)

	require.NoError(t, e.Start(rowAPool(t)))
	_, err = e.Submit("a")
	require.NoError(t, err)
	_, err = e.Submit("a")
	require.ErrorIs(t, err, ErrNotActive)
	assert.Len(t, e.Status().Stats.Results, 1)
}

func TestAdvanceWhileActiveDoesNotMutate(t *testing.T) {
	e := startedEngine(t, model.BehaviorRepeatUntilCorrect)
	before := e.Status()

	require.ErrorIs(t, e.Advance(), ErrNotAwaitingAdvance)

	after := e.Status()
	assert.Equal(t, before.Remaining, after.Remaining)
	assert.Equal(t, *before.Current, *after.Current)
	assert.Equal(t, StateActive, after.State)
}

func TestScenarioOneTry(t *testing.T) {
	e := startedEngine(t, model.BehaviorOneTry)

	assert.Equal(t, OutcomeIncorrect, answerCurrent(t, e, false))
	st := e.Status()
	assert.Equal(t, 4, st.Remaining)
	assert.Equal(t, 1, st.Stats.TotalMistakes)

	for e.State() == StateActive {
		answerCurrent(t, e, true)
	}
	st = e.Status()
	assert.Equal(t, StateComplete, st.State)
	assert.Nil(t, st.Current)
	assert.Zero(t, st.Remaining)
	assert.Equal(t, 4, st.Stats.CorrectFirstTry)
	assert.Equal(t, 5, st.Stats.TotalQuestions)
	assert.Equal(t, 80, st.Stats.AccuracyPercent())
}

func TestScenarioRepeatUntilCorrect(t *testing.T) {
	e := startedEngine(t, model.BehaviorRepeatUntilCorrect)
	missed := current(t, e)

	answerCurrent(t, e, false)
	st := e.Status()
	assert.Equal(t, 5, st.Remaining)
	assert.Equal(t, 1, st.Stats.TotalMistakes)
	assert.NotEqual(t, missed.ID, st.Current.ID)

	for i := 0; i < 4; i++ {
		answerCurrent(t, e, true)
	}
	requeued := current(t, e)
	assert.Equal(t, missed.ID, requeued.ID)
	assert.Equal(t, missed.Character, requeued.Character)
	assert.Equal(t, 1, requeued.Attempts)

	answerCurrent(t, e, false)
	answerCurrent(t, e, true)

	st = e.Status()
	assert.Equal(t, StateComplete, st.State)
	assert.Equal(t, 4, st.Stats.CorrectFirstTry)
	assert.Equal(t, 2, st.Stats.TotalMistakes)
	assert.Equal(t, map[string]int{missed.ID: 2}, st.Stats.Mistakes)
	last := st.Stats.Results[len(st.Stats.Results)-1]
	assert.Equal(t, 3, last.Attempt)
	assert.True(t, last.Correct)
}

func TestScenarioKanjiPoolSize(t *testing.T) {
	pool, err := generator.NewWithSeed(1).BuildPool(model.Config{
		QuizType:     model.QuizKanji,
		KanaMode:     model.KanaMixed,
		SelectedRows: []model.Row{"a", "ka", "sa"},
		KanjiMode:    model.KanjiMeaning,
		KanjiCount:   10,
	})
	require.NoError(t, err)
	e := NewEngine(model.BehaviorOneTry, generator.NewWithSeed(2))
	require.NoError(t, e.Start(pool))
	assert.Equal(t, 10, e.Status().Stats.TotalQuestions)
	assert.Equal(t, 10, e.Status().Remaining)
}

func TestQueueNeverGrowsUnderOneTry(t *testing.T) {
	e := NewEngine(model.BehaviorOneTry, generator.NewWithSeed(5))
	pool, err := generator.NewWithSeed(5).BuildPool(model.Config{
		QuizType:     model.QuizKana,
		KanaMode:     model.KanaMixed,
		SelectedRows: []model.Row{"a", "ka", "sa", "ta"},
	})
	require.NoError(t, err)
	require.NoError(t, e.Start(pool))

	prev := e.Status().Remaining
	for i := 0; e.State() == StateActive; i++ {
		answerCurrent(t, e, i%3 == 0)
		st := e.Status()
		assert.Less(t, st.Remaining, prev)
		assert.Equal(t, len(pool), st.Stats.TotalQuestions)
		prev = st.Remaining
	}
	assert.Equal(t, StateComplete, e.State())
}

func TestRepeatDistinctCountOnlyDropsOnCorrect(t *testing.T) {
	e := startedEngine(t, model.BehaviorRepeatUntilCorrect)
	distinct := func() int {
		ids := map[string]struct{}{}
		for _, r := range e.queue {
			ids[r.ID] = struct{}{}
		}
		return len(ids)
	}

	for i := 0; e.State() == StateActive; i++ {
		before := distinct()
		correct := i%2 == 1
		answerCurrent(t, e, correct)
		if correct {
			assert.Equal(t, before-1, distinct())
		} else {
			assert.Equal(t, before, distinct())
		}
		require.Less(t, i, 100)
	}
	assert.Equal(t, 5, e.Status().Stats.TotalQuestions)
}

func TestResetReturnsToIdle(t *testing.T) {
	e := startedEngine(t, model.BehaviorOneTry)
	_, err := e.Submit("x")
	require.NoError(t, err)

	e.Reset()
	st := e.Status()
	assert.Equal(t, StateIdle, st.State)
	assert.Nil(t, st.Current)
	assert.Zero(t, st.Remaining)
	assert.Empty(t, st.SessionID)
	assert.Zero(t, st.Stats.TotalMistakes)
	require.ErrorIs(t, e.Advance(), ErrNotAwaitingAdvance)
}

func TestStatusCurrentIsCopy(t *testing.T) {
	e := startedEngine(t, model.BehaviorOneTry)
	st := e.Status()
	st.Current.Answer = "tampered"
	assert.Equal(t, "a", current(t, e).Answer)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "awaiting-advance", StateAwaitingAdvance.String())
	assert.Equal(t, "complete", StateComplete.String())
}
