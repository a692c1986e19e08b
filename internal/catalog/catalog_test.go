package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKanaCatalogShape(t *testing.T) {
	entries := Kana()
	require.Len(t, entries, 46)
	perRow := map[string]int{}
	for _, k := range entries {
		require.Truef(t, ValidRow(k.Row), "kana %s has unknown row %q", k.Hiragana, k.Row)
		perRow[string(k.Row)]++
	}
	assert.Len(t, perRow, len(Rows()))
	assert.Equal(t, 5, perRow["a"])
	assert.Equal(t, 3, perRow["ya"])
	assert.Equal(t, 3, perRow["wa"])
}

func TestKanaReturnsCopy(t *testing.T) {
	entries := Kana()
	entries[0].Romaji = "zz"
	assert.Equal(t, "a", Kana()[0].Romaji)
}

func TestKanjiRankOrdered(t *testing.T) {
	entries := Kanji()
	require.Len(t, entries, 50)
	for i, k := range entries {
		assert.Equalf(t, i+1, k.Rank, "kanji %s at index %d", k.Glyph, i)
	}
}

func TestKanjiByCount(t *testing.T) {
	for _, n := range KanjiCounts {
		assert.Len(t, KanjiByCount(n), n)
	}
	assert.Len(t, KanjiByCount(500), 50)
	assert.Nil(t, KanjiByCount(0))
	assert.Equal(t, "人", KanjiByCount(10)[0].Glyph)
}

func TestRowLabel(t *testing.T) {
	assert.Equal(t, "KA-line (か・き・く・け・こ)", RowLabel(RowKa))
	assert.Equal(t, "xx", RowLabel("xx"))
}
