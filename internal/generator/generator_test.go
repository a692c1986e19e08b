package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/kanaquiz/internal/model"
)

func kanaConfig(mode model.KanaMode, rows ...model.Row) model.Config {
	return model.Config{
		QuizType:     model.QuizKana,
		KanaMode:     mode,
		SelectedRows: rows,
		KanjiMode:    model.KanjiMeaning,
		KanjiCount:   10,
		Behavior:     model.BehaviorOneTry,
	}
}

func TestBuildPoolKanaHiragana(t *testing.T) {
	g := NewWithSeed(1)
	pool, err := g.BuildPool(kanaConfig(model.KanaHiragana, "a"))
	require.NoError(t, err)
	require.Len(t, pool, 5)

	chars := make([]string, 0, len(pool))
	for _, q := range pool {
		chars = append(chars, q.Character)
		assert.Equal(t, model.QuizKana, q.Type)
		assert.Equal(t, "hiragana", q.Dimension)
		assert.Zero(t, q.Attempts)
	}
	assert.Equal(t, []string{"あ", "い", "う", "え", "お"}, chars)
	assert.Equal(t, "あ-a", pool[0].ID)
	assert.Equal(t, "a", pool[0].Answer)
}

func TestBuildPoolKanaKatakanaMultipleRows(t *testing.T) {
	g := NewWithSeed(1)
	pool, err := g.BuildPool(kanaConfig(model.KanaKatakana, "ka", "wa"))
	require.NoError(t, err)
	require.Len(t, pool, 8)
	assert.Equal(t, "カ", pool[0].Character)
	assert.Equal(t, "ン", pool[7].Character)
	assert.Equal(t, "n", pool[7].Answer)
}

func TestBuildPoolNoRows(t *testing.T) {
	g := NewWithSeed(1)
	pool, err := g.BuildPool(kanaConfig(model.KanaHiragana))
	require.ErrorIs(t, err, ErrNoQuestions)
	assert.Nil(t, pool)
}

func TestBuildPoolKanjiIgnoresKanaSettings(t *testing.T) {
	cfg := kanaConfig(model.KanaMixed)
	cfg.QuizType = model.QuizKanji
	cfg.KanjiCount = 10
	cfg.KanjiMode = model.KanjiMeaning

	pool, err := NewWithSeed(1).BuildPool(cfg)
	require.NoError(t, err)
	require.Len(t, pool, 10)
	assert.Equal(t, "人", pool[0].Character)
	assert.Equal(t, "person", pool[0].Answer)
	assert.Equal(t, "人-meaning", pool[0].ID)
	assert.Equal(t, model.QuizKanji, pool[0].Type)
}

func TestBuildPoolKanjiDimensions(t *testing.T) {
	cases := map[model.KanjiMode]string{
		model.KanjiMeaning: "person",
		model.KanjiKana:    "ひと",
		model.KanjiRomaji:  "hito",
	}
	for mode, want := range cases {
		cfg := model.Config{QuizType: model.QuizKanji, KanjiMode: mode, KanjiCount: 20}
		pool, err := NewWithSeed(1).BuildPool(cfg)
		require.NoError(t, err)
		require.Len(t, pool, 20)
		assert.Equal(t, want, pool[0].Answer, "mode %s", mode)
		assert.Equal(t, "人-"+string(mode), pool[0].ID)
	}
}

func TestBuildPoolMixedIsBalanced(t *testing.T) {
	g := NewWithSeed(42)
	hiragana := 0
	const runs = 1000
	for i := 0; i < runs; i++ {
		pool, err := g.BuildPool(kanaConfig(model.KanaMixed, "a"))
		require.NoError(t, err)
		switch pool[0].Character {
		case "あ":
			hiragana++
		case "ア":
		default:
			require.Failf(t, "unexpected character", "%q", pool[0].Character)
		}
	}
	assert.InDelta(t, runs/2, hiragana, 80)
}

func TestBuildPoolMixedIDFollowsScript(t *testing.T) {
	pool, err := NewWithSeed(3).BuildPool(kanaConfig(model.KanaMixed, "a", "ka"))
	require.NoError(t, err)
	for _, q := range pool {
		assert.Equal(t, q.Character+"-"+q.Answer, q.ID)
		assert.Contains(t, []string{"hiragana", "katakana"}, q.Dimension)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	g := NewWithSeed(7)
	pool, err := g.BuildPool(kanaConfig(model.KanaHiragana, "a", "ka", "sa"))
	require.NoError(t, err)
	shuffled := append([]model.Question(nil), pool...)
	g.Shuffle(shuffled)

	assert.ElementsMatch(t, pool, shuffled)
}

func TestShuffleVariesOrder(t *testing.T) {
	g := NewWithSeed(9)
	pool, err := g.BuildPool(kanaConfig(model.KanaHiragana, "a", "ka", "sa", "ta"))
	require.NoError(t, err)

	first := append([]model.Question(nil), pool...)
	g.Shuffle(first)
	different := false
	for i := 0; i < 10 && !different; i++ {
		next := append([]model.Question(nil), pool...)
		g.Shuffle(next)
		for j := range next {
			if next[j].ID != first[j].ID {
				different = true
				break
			}
		}
	}
	assert.True(t, different, "expected shuffles to produce different orders")
}

func TestShuffleCoversAllPositions(t *testing.T) {
	g := NewWithSeed(11)
	pool := []model.Question{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	counts := map[string]int{}
	for i := 0; i < 600; i++ {
		q := append([]model.Question(nil), pool...)
		g.Shuffle(q)
		counts[q[0].ID+q[1].ID+q[2].ID]++
	}
	require.Len(t, counts, 6)
	for perm, n := range counts {
		assert.InDelta(t, 100, n, 40, "permutation %s", perm)
	}
}
