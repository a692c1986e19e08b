// Package catalog holds the static kana and kanji reference data.
package catalog

import "github.com/verte-zerg/kanaquiz/internal/model"

// Kana rows in syllabary order.
const (
	RowA  model.Row = "a"
	RowKa model.Row = "ka"
	RowSa model.Row = "sa"
	RowTa model.Row = "ta"
	RowNa model.Row = "na"
	RowHa model.Row = "ha"
	RowMa model.Row = "ma"
	RowYa model.Row = "ya"
	RowRa model.Row = "ra"
	RowWa model.Row = "wa"
)

var rows = []model.Row{RowA, RowKa, RowSa, RowTa, RowNa, RowHa, RowMa, RowYa, RowRa, RowWa}

var rowLabels = map[model.Row]string{
	RowA:  "A-line (あ・い・う・え・お)",
	RowKa: "KA-line (か・き・く・け・こ)",
	RowSa: "SA-line (さ・し・す・せ・そ)",
	RowTa: "TA-line (た・ち・つ・て・と)",
	RowNa: "NA-line (な・に・ぬ・ね・の)",
	RowHa: "HA-line (は・ひ・ふ・へ・ほ)",
	RowMa: "MA-line (ま・み・む・め・も)",
	RowYa: "YA-line (や・ゆ・よ)",
	RowRa: "RA-line (ら・り・る・れ・ろ)",
	RowWa: "WA-line (わ・を・ん)",
}

var kana = []model.Kana{
	{Hiragana: "あ", Katakana: "ア", Romaji: "a", Row: RowA},
	{Hiragana: "い", Katakana: "イ", Romaji: "i", Row: RowA},
	{Hiragana: "う", Katakana: "ウ", Romaji: "u", Row: RowA},
	{Hiragana: "え", Katakana: "エ", Romaji: "e", Row: RowA},
	{Hiragana: "お", Katakana: "オ", Romaji: "o", Row: RowA},

	{Hiragana: "か", Katakana: "カ", Romaji: "ka", Row: RowKa},
	{Hiragana: "き", Katakana: "キ", Romaji: "ki", Row: RowKa},
	{Hiragana: "く", Katakana: "ク", Romaji: "ku", Row: RowKa},
	{Hiragana: "け", Katakana: "ケ", Romaji: "ke", Row: RowKa},
	{Hiragana: "こ", Katakana: "コ", Romaji: "ko", Row: RowKa},

	{Hiragana: "さ", Katakana: "サ", Romaji: "sa", Row: RowSa},
	{Hiragana: "し", Katakana: "シ", Romaji: "shi", Row: RowSa},
	{Hiragana: "す", Katakana: "ス", Romaji: "su", Row: RowSa},
	{Hiragana: "せ", Katakana: "セ", Romaji: "se", Row: RowSa},
	{Hiragana: "そ", Katakana: "ソ", Romaji: "so", Row: RowSa},

	{Hiragana: "た", Katakana: "タ", Romaji: "ta", Row: RowTa},
	{Hiragana: "ち", Katakana: "チ", Romaji: "chi", Row: RowTa},
	{Hiragana: "つ", Katakana: "ツ", Romaji: "tsu", Row: RowTa},
	{Hiragana: "て", Katakana: "テ", Romaji: "te", Row: RowTa},
	{Hiragana: "と", Katakana: "ト", Romaji: "to", Row: RowTa},

	{Hiragana: "な", Katakana: "ナ", Romaji: "na", Row: RowNa},
	{Hiragana: "に", Katakana: "ニ", Romaji: "ni", Row: RowNa},
	{Hiragana: "ぬ", Katakana: "ヌ", Romaji: "nu", Row: RowNa},
	{Hiragana: "ね", Katakana: "ネ", Romaji: "ne", Row: RowNa},
	{Hiragana: "の", Katakana: "ノ", Romaji: "no", Row: RowNa},

	{Hiragana: "は", Katakana: "ハ", Romaji: "ha", Row: RowHa},
	{Hiragana: "ひ", Katakana: "ヒ", Romaji: "hi", Row: RowHa},
	{Hiragana: "ふ", Katakana: "フ", Romaji: "fu", Row: RowHa},
	{Hiragana: "へ", Katakana: "ヘ", Romaji: "he", Row: RowHa},
	{Hiragana: "ほ", Katakana: "ホ", Romaji: "ho", Row: RowHa},

	{Hiragana: "ま", Katakana: "マ", Romaji: "ma", Row: RowMa},
	{Hiragana: "み", Katakana: "ミ", Romaji: "mi", Row: RowMa},
	{Hiragana: "む", Katakana: "ム", Romaji: "mu", Row: RowMa},
	{Hiragana: "め", Katakana: "メ", Romaji: "me", Row: RowMa},
	{Hiragana: "も", Katakana: "モ", Romaji: "mo", Row: RowMa},

	{Hiragana: "や", Katakana: "ヤ", Romaji: "ya", Row: RowYa},
	{Hiragana: "ゆ", Katakana: "ユ", Romaji: "yu", Row: RowYa},
	{Hiragana: "よ", Katakana: "ヨ", Romaji: "yo", Row: RowYa},

	{Hiragana: "ら", Katakana: "ラ", Romaji: "ra", Row: RowRa},
	{Hiragana: "り", Katakana: "リ", Romaji: "ri", Row: RowRa},
	{Hiragana: "る", Katakana: "ル", Romaji: "ru", Row: RowRa},
	{Hiragana: "れ", Katakana: "レ", Romaji: "re", Row: RowRa},
	{Hiragana: "ろ", Katakana: "ロ", Romaji: "ro", Row: RowRa},

	{Hiragana: "わ", Katakana: "ワ", Romaji: "wa", Row: RowWa},
	{Hiragana: "を", Katakana: "ヲ", Romaji: "wo", Row: RowWa},
	{Hiragana: "ん", Katakana: "ン", Romaji: "n", Row: RowWa},
}

// Kana returns a copy of the kana catalog in syllabary order.
func Kana() []model.Kana {
	out := make([]model.Kana, len(kana))
	copy(out, kana)
	return out
}

// Rows returns all row identifiers in syllabary order.
func Rows() []model.Row {
	return append([]model.Row(nil), rows...)
}

// ValidRow reports whether row is a known kana row.
func ValidRow(row model.Row) bool {
	_, ok := rowLabels[row]
	return ok
}

// RowLabel returns the display label for a row, or the raw identifier if unknown.
func RowLabel(row model.Row) string {
	if label, ok := rowLabels[row]; ok {
		return label
	}
	return string(row)
}
