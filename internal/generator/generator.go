// Package generator builds quiz question pools.
package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/verte-zerg/kanaquiz/internal/catalog"
	"github.com/verte-zerg/kanaquiz/internal/model"
)

// ErrNoQuestions is returned when the configuration selects nothing.
var ErrNoQuestions = errors.New("no questions match the selected settings")

// Generator produces question pools and shuffles them.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// BuildPool derives the questions for a session from cfg. Pool order follows the
// catalog; mixed kana mode picks the displayed script once per question here.
func (g *Generator) BuildPool(cfg model.Config) ([]model.Question, error) {
	var pool []model.Question
	switch cfg.QuizType {
	case model.QuizKanji:
		pool = g.kanjiPool(cfg)
	default:
		pool = g.kanaPool(cfg)
	}
	if len(pool) == 0 {
		return nil, ErrNoQuestions
	}
	return pool, nil
}

// Shuffle permutes questions in place (Fisher-Yates).
func (g *Generator) Shuffle(questions []model.Question) {
	for i := len(questions) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		questions[i], questions[j] = questions[j], questions[i]
	}
}

func (g *Generator) kanaPool(cfg model.Config) []model.Question {
	selected := make(map[model.Row]struct{}, len(cfg.SelectedRows))
	for _, row := range cfg.SelectedRows {
		selected[row] = struct{}{}
	}
	var pool []model.Question
	for _, k := range catalog.Kana() {
		if _, ok := selected[k.Row]; !ok {
			continue
		}
		char, script := g.pickScript(k, cfg.KanaMode)
		pool = append(pool, model.Question{
			ID:        char + "-" + k.Romaji,
			Character: char,
			Answer:    k.Romaji,
			Type:      model.QuizKana,
			Dimension: string(script),
		})
	}
	return pool
}

func (g *Generator) pickScript(k model.Kana, mode model.KanaMode) (string, model.KanaMode) {
	switch mode {
	case model.KanaKatakana:
		return k.Katakana, model.KanaKatakana
	case model.KanaMixed:
		if g.rnd.Intn(2) == 0 {
			return k.Hiragana, model.KanaHiragana
		}
		return k.Katakana, model.KanaKatakana
	default:
		return k.Hiragana, model.KanaHiragana
	}
}

func (g *Generator) kanjiPool(cfg model.Config) []model.Question {
	mode := cfg.KanjiMode
	switch mode {
	case model.KanjiMeaning, model.KanjiKana, model.KanjiRomaji:
	default:
		mode = model.KanjiMeaning
	}
	entries := catalog.KanjiByCount(cfg.KanjiCount)
	pool := make([]model.Question, 0, len(entries))
	for _, k := range entries {
		pool = append(pool, model.Question{
			ID:        k.Glyph + "-" + string(mode),
			Character: k.Glyph,
			Answer:    kanjiAnswer(k, mode),
			Type:      model.QuizKanji,
			Dimension: string(mode),
		})
	}
	return pool
}

func kanjiAnswer(k model.Kanji, mode model.KanjiMode) string {
	switch mode {
	case model.KanjiKana:
		return k.Kana
	case model.KanjiRomaji:
		return k.Romaji
	default:
		return k.Meaning
	}
}
