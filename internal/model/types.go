// Package model defines shared data structures.
package model

// QuizType selects which catalog a session draws from.
type QuizType string

const (
	QuizKana  QuizType = "kana"
	QuizKanji QuizType = "kanji"
)

// KanaMode selects the script shown for kana questions.
type KanaMode string

const (
	KanaHiragana KanaMode = "hiragana"
	KanaKatakana KanaMode = "katakana"
	KanaMixed    KanaMode = "mixed"
)

// KanjiMode selects which kanji field the learner must answer with.
type KanjiMode string

const (
	KanjiMeaning KanjiMode = "meaning"
	KanjiKana    KanjiMode = "kana"
	KanjiRomaji  KanjiMode = "romaji"
)

// Behavior is the repeat policy for incorrectly answered questions.
type Behavior string

const (
	BehaviorOneTry             Behavior = "one-try"
	BehaviorRepeatUntilCorrect Behavior = "repeat-until-correct"
)

// AdvanceMode selects how the quiz moves past a displayed result.
type AdvanceMode string

const (
	AdvanceAuto   AdvanceMode = "auto"
	AdvanceManual AdvanceMode = "manual"
)

// Row identifies a kana row (the consonant line).
type Row string

// Config defines quiz session settings.
type Config struct {
	QuizType     QuizType    `json:"quizType" validate:"oneof=kana kanji"`
	KanaMode     KanaMode    `json:"kanaMode" validate:"oneof=hiragana katakana mixed"`
	SelectedRows []Row       `json:"selectedRows"`
	KanjiMode    KanjiMode   `json:"kanjiMode" validate:"oneof=meaning kana romaji"`
	KanjiCount   int         `json:"kanjiCount" validate:"oneof=10 20 40 50"`
	Behavior     Behavior    `json:"behavior" validate:"oneof=one-try repeat-until-correct"`
	Advance      AdvanceMode `json:"advance" validate:"oneof=auto manual"`
}

// Kana is a catalog entry for one kana syllable.
type Kana struct {
	Hiragana string
	Katakana string
	Romaji   string
	Row      Row
}

// Kanji is a catalog entry for one kanji. Rank 1 is the most common.
type Kanji struct {
	Glyph   string
	Meaning string
	Kana    string
	Romaji  string
	Rank    int
}

// Question is a single prompt in a session.
type Question struct {
	// ID is stable across requeues and keys per-question mistake counts.
	ID        string
	Character string
	Answer    string
	Type      QuizType
	// Dimension names what the answer represents (script for kana, kanji mode for kanji).
	Dimension string
	Attempts  int
}

// Result records one submission.
type Result struct {
	Question   Question
	UserAnswer string
	Correct    bool
	Attempt    int
}
