// Package settings restores, sanitises and saves quiz settings.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/kanaquiz/internal/catalog"
	"github.com/verte-zerg/kanaquiz/internal/model"
)

// Key is the store key the settings are saved under.
const Key = "kana-quiz-settings"

// KV is the key-value storage the settings are persisted in.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var validate = validator.New()

// Defaults returns the built-in settings.
func Defaults() model.Config {
	return model.Config{
		QuizType:     model.QuizKana,
		KanaMode:     model.KanaHiragana,
		SelectedRows: []model.Row{catalog.RowA, catalog.RowKa},
		KanjiMode:    model.KanjiMeaning,
		KanjiCount:   10,
		Behavior:     model.BehaviorOneTry,
		Advance:      model.AdvanceAuto,
	}
}

// Normalize replaces every unrecognised field with its default and returns the
// names of the fields it replaced. Unknown rows are dropped; an explicitly empty
// row selection is kept (the quiz then refuses to start).
func Normalize(cfg model.Config) (model.Config, []string) {
	def := Defaults()
	var reset []string

	if cfg.SelectedRows != nil {
		rows := make([]model.Row, 0, len(cfg.SelectedRows))
		seen := map[model.Row]struct{}{}
		for _, row := range cfg.SelectedRows {
			if _, dup := seen[row]; dup || !catalog.ValidRow(row) {
				continue
			}
			seen[row] = struct{}{}
			rows = append(rows, row)
		}
		if len(rows) != len(cfg.SelectedRows) {
			reset = append(reset, "SelectedRows")
			if len(rows) == 0 {
				rows = def.SelectedRows
			}
		}
		cfg.SelectedRows = rows
	} else {
		cfg.SelectedRows = []model.Row{}
	}

	err := validate.Struct(cfg)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return cfg, reset
	}
	for _, fe := range verrs {
		switch fe.StructField() {
		case "QuizType":
			cfg.QuizType = def.QuizType
		case "KanaMode":
			cfg.KanaMode = def.KanaMode
		case "KanjiMode":
			cfg.KanjiMode = def.KanjiMode
		case "KanjiCount":
			cfg.KanjiCount = def.KanjiCount
		case "Behavior":
			cfg.Behavior = def.Behavior
		case "Advance":
			cfg.Advance = def.Advance
		default:
			continue
		}
		reset = append(reset, fe.StructField())
	}
	return cfg, reset
}

// ErrFieldReset reports a saved field whose JSON type no longer matches; the
// field was reset to its default and the other fields were kept.
var ErrFieldReset = errors.New("saved setting has an unexpected type")

// Decode merges saved JSON over the defaults; fields absent from the JSON keep
// their default value. A field with the wrong JSON type is reset to its default
// and reported with ErrFieldReset. JSON that does not parse yields the defaults.
func Decode(data string) (model.Config, error) {
	cfg := Defaults()
	err := json.Unmarshal([]byte(data), &cfg)
	if err == nil {
		return cfg, nil
	}
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return Defaults(), fmt.Errorf("failed to decode settings: %w", err)
	}
	field := strings.SplitN(typeErr.Field, ".", 2)[0]
	resetJSONField(&cfg, field)
	return cfg, fmt.Errorf("%w: %s reset to default", ErrFieldReset, field)
}

// resetJSONField restores the default for the field with the given JSON name.
// json.Unmarshal reports only the first mistyped field; later mistyped fields
// are skipped and so already hold their defaults.
func resetJSONField(cfg *model.Config, name string) {
	def := Defaults()
	switch name {
	case "quizType":
		cfg.QuizType = def.QuizType
	case "kanaMode":
		cfg.KanaMode = def.KanaMode
	case "selectedRows":
		cfg.SelectedRows = def.SelectedRows
	case "kanjiMode":
		cfg.KanjiMode = def.KanjiMode
	case "kanjiCount":
		cfg.KanjiCount = def.KanjiCount
	case "behavior":
		cfg.Behavior = def.Behavior
	case "advance":
		cfg.Advance = def.Advance
	}
}

// Load restores saved settings. found is false when nothing was saved. A decode
// error is returned alongside the best config Decode could recover.
func Load(ctx context.Context, kv KV) (cfg model.Config, found bool, err error) {
	raw, ok, err := kv.Get(ctx, Key)
	if err != nil {
		return Defaults(), false, fmt.Errorf("failed to read settings: %w", err)
	}
	if !ok {
		return Defaults(), false, nil
	}
	cfg, err = Decode(raw)
	if err != nil {
		return cfg, true, err
	}
	return cfg, true, nil
}

// Save stores cfg as JSON. An empty row selection is stored as the default
// rows so a later run without --rows can still start.
func Save(ctx context.Context, kv KV, cfg model.Config) error {
	if len(cfg.SelectedRows) == 0 {
		cfg.SelectedRows = Defaults().SelectedRows
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := kv.Put(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Clear removes saved settings.
func Clear(ctx context.Context, kv KV) error {
	if err := kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}
	return nil
}
