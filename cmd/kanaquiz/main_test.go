package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/kanaquiz/internal/config"
	"github.com/verte-zerg/kanaquiz/internal/generator"
	"github.com/verte-zerg/kanaquiz/internal/model"
	"github.com/verte-zerg/kanaquiz/internal/quiz"
	"github.com/verte-zerg/kanaquiz/internal/settings"
)

type memKV map[string]string

func (m memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memKV) Put(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func (m memKV) Delete(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

func TestValidateDelays(t *testing.T) {
	assert.NoError(t, validateDelays(quiz.DefaultDelays))
	assert.Error(t, validateDelays(quiz.Delays{Correct: 0, Incorrect: time.Second}))
	assert.Error(t, validateDelays(quiz.Delays{Correct: 2 * time.Second, Incorrect: time.Second}))
}

func TestParseRows(t *testing.T) {
	assert.Equal(t, []model.Row{"a", "ka"}, parseRows([]string{" A", "", "ka "}))
	got := parseRows(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCheckAndSaveRefusesEmptySelectionWithoutSaving(t *testing.T) {
	kv := memKV{}
	ctx := context.Background()
	cfg := settings.Defaults()
	cfg.SelectedRows = []model.Row{}

	err := checkAndSave(ctx, kv, generator.NewWithSeed(1), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--rows")
	_, found, err := settings.Load(ctx, kv)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCheckAndSaveSavesPlayableSettings(t *testing.T) {
	kv := memKV{}
	ctx := context.Background()
	cfg := settings.Defaults()
	cfg.KanaMode = model.KanaKatakana

	require.NoError(t, checkAndSave(ctx, kv, generator.NewWithSeed(1), cfg))
	saved, found, err := settings.Load(ctx, kv)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cfg, saved)
}

func TestCheckAndSaveWithoutStore(t *testing.T) {
	assert.NoError(t, checkAndSave(context.Background(), nil, generator.NewWithSeed(1), settings.Defaults()))
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var lines []string
	for _, line := range strings.Split(defaultConfigTemplate(), "\n") {
		lines = append(lines, strings.TrimPrefix(line, "# "))
	}
	uncommented := strings.Join(lines[3:], "\n")
	var cfg config.FileConfig
	_, err := toml.Decode(uncommented, &cfg)
	require.NoError(t, err, uncommented)

	require.NotNil(t, cfg.Quiz.Type)
	assert.Equal(t, "kana", *cfg.Quiz.Type)
	require.NotNil(t, cfg.Quiz.Rows)
	assert.Len(t, *cfg.Quiz.Rows, 2)
	require.NotNil(t, cfg.Quiz.IncorrectDelayMS)
	assert.Equal(t, 2000, *cfg.Quiz.IncorrectDelayMS)
}

func TestWriteKanjiCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeKanjiCatalog(&buf, 3))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Rank"))
}

func TestWriteKanaCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeKanaCatalog(&buf))
	for _, want := range []string{"KA-line", "[wa]", "shi", "ン"} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestWriteSettings(t *testing.T) {
	var buf bytes.Buffer
	cfg := model.Config{QuizType: model.QuizKana, SelectedRows: []model.Row{"a", "sa"}, KanjiCount: 10}
	require.NoError(t, writeSettings(&buf, cfg))
	assert.Contains(t, buf.String(), "a,sa")
}
