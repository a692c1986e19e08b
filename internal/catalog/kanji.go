package catalog

import "github.com/verte-zerg/kanaquiz/internal/model"

// KanjiCounts are the supported kanji session sizes.
var KanjiCounts = []int{10, 20, 40, 50}

// kanji is ordered by rank ascending.
var kanji = []model.Kanji{
	{Glyph: "人", Meaning: "person", Kana: "ひと", Romaji: "hito", Rank: 1},
	{Glyph: "日", Meaning: "day, sun", Kana: "ひ", Romaji: "hi", Rank: 2},
	{Glyph: "国", Meaning: "country", Kana: "くに", Romaji: "kuni", Rank: 3},
	{Glyph: "年", Meaning: "year", Kana: "とし", Romaji: "toshi", Rank: 4},
	{Glyph: "大", Meaning: "big", Kana: "おおきい", Romaji: "ookii", Rank: 5},
	{Glyph: "十", Meaning: "ten", Kana: "じゅう", Romaji: "juu", Rank: 6},
	{Glyph: "二", Meaning: "two", Kana: "に", Romaji: "ni", Rank: 7},
	{Glyph: "本", Meaning: "book, origin", Kana: "ほん", Romaji: "hon", Rank: 8},
	{Glyph: "中", Meaning: "inside, middle", Kana: "なか", Romaji: "naka", Rank: 9},
	{Glyph: "長", Meaning: "long", Kana: "ながい", Romaji: "nagai", Rank: 10},
	{Glyph: "出", Meaning: "exit, go out", Kana: "でる", Romaji: "deru", Rank: 11},
	{Glyph: "三", Meaning: "three", Kana: "さん", Romaji: "san", Rank: 12},
	{Glyph: "同", Meaning: "same", Kana: "おなじ", Romaji: "onaji", Rank: 13},
	{Glyph: "時", Meaning: "time", Kana: "とき", Romaji: "toki", Rank: 14},
	{Glyph: "政", Meaning: "politics", Kana: "せい", Romaji: "sei", Rank: 15},
	{Glyph: "事", Meaning: "thing, matter", Kana: "こと", Romaji: "koto", Rank: 16},
	{Glyph: "自", Meaning: "self", Kana: "じ", Romaji: "ji", Rank: 17},
	{Glyph: "社", Meaning: "company", Kana: "しゃ", Romaji: "sha", Rank: 18},
	{Glyph: "一", Meaning: "one", Kana: "いち", Romaji: "ichi", Rank: 19},
	{Glyph: "方", Meaning: "direction, way", Kana: "ほう", Romaji: "hou", Rank: 20},
	{Glyph: "学", Meaning: "study", Kana: "がく", Romaji: "gaku", Rank: 21},
	{Glyph: "生", Meaning: "life, student", Kana: "せい", Romaji: "sei", Rank: 22},
	{Glyph: "地", Meaning: "earth, land", Kana: "ち", Romaji: "chi", Rank: 23},
	{Glyph: "市", Meaning: "city", Kana: "し", Romaji: "shi", Rank: 24},
	{Glyph: "業", Meaning: "business", Kana: "ぎょう", Romaji: "gyou", Rank: 25},
	{Glyph: "新", Meaning: "new", Kana: "あたらしい", Romaji: "atarashii", Rank: 26},
	{Glyph: "場", Meaning: "place", Kana: "ば", Romaji: "ba", Rank: 27},
	{Glyph: "問", Meaning: "question", Kana: "もん", Romaji: "mon", Rank: 28},
	{Glyph: "手", Meaning: "hand", Kana: "て", Romaji: "te", Rank: 29},
	{Glyph: "力", Meaning: "power", Kana: "ちから", Romaji: "chikara", Rank: 30},
	{Glyph: "言", Meaning: "say, word", Kana: "いう", Romaji: "iu", Rank: 31},
	{Glyph: "高", Meaning: "high", Kana: "たかい", Romaji: "takai", Rank: 32},
	{Glyph: "体", Meaning: "body", Kana: "からだ", Romaji: "karada", Rank: 33},
	{Glyph: "世", Meaning: "world", Kana: "よ", Romaji: "yo", Rank: 34},
	{Glyph: "見", Meaning: "see", Kana: "みる", Romaji: "miru", Rank: 35},
	{Glyph: "今", Meaning: "now", Kana: "いま", Romaji: "ima", Rank: 36},
	{Glyph: "家", Meaning: "house", Kana: "いえ", Romaji: "ie", Rank: 37},
	{Glyph: "間", Meaning: "interval, between", Kana: "あいだ", Romaji: "aida", Rank: 38},
	{Glyph: "子", Meaning: "child", Kana: "こ", Romaji: "ko", Rank: 39},
	{Glyph: "分", Meaning: "minute, divide", Kana: "ぶん", Romaji: "bun", Rank: 40},
	{Glyph: "何", Meaning: "what", Kana: "なに", Romaji: "nani", Rank: 41},
	{Glyph: "小", Meaning: "small", Kana: "ちいさい", Romaji: "chiisai", Rank: 42},
	{Glyph: "前", Meaning: "before, front", Kana: "まえ", Romaji: "mae", Rank: 43},
	{Glyph: "後", Meaning: "after, behind", Kana: "あと", Romaji: "ato", Rank: 44},
	{Glyph: "女", Meaning: "woman", Kana: "おんな", Romaji: "onna", Rank: 45},
	{Glyph: "男", Meaning: "man", Kana: "おとこ", Romaji: "otoko", Rank: 46},
	{Glyph: "水", Meaning: "water", Kana: "みず", Romaji: "mizu", Rank: 47},
	{Glyph: "火", Meaning: "fire", Kana: "ひ", Romaji: "hi", Rank: 48},
	{Glyph: "木", Meaning: "tree, wood", Kana: "き", Romaji: "ki", Rank: 49},
	{Glyph: "金", Meaning: "money, gold", Kana: "きん", Romaji: "kin", Rank: 50},
}

// Kanji returns a copy of the kanji catalog ordered by rank.
func Kanji() []model.Kanji {
	out := make([]model.Kanji, len(kanji))
	copy(out, kanji)
	return out
}

// KanjiByCount returns the n most common kanji. n is clamped to the catalog size.
func KanjiByCount(n int) []model.Kanji {
	if n <= 0 {
		return nil
	}
	if n > len(kanji) {
		n = len(kanji)
	}
	out := make([]model.Kanji, n)
	copy(out, kanji[:n])
	return out
}
