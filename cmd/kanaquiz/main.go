// Package main provides the CLI entrypoint for kanaquiz.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/kanaquiz/internal/catalog"
	"github.com/verte-zerg/kanaquiz/internal/config"
	"github.com/verte-zerg/kanaquiz/internal/generator"
	"github.com/verte-zerg/kanaquiz/internal/lineui"
	"github.com/verte-zerg/kanaquiz/internal/model"
	"github.com/verte-zerg/kanaquiz/internal/quiz"
	"github.com/verte-zerg/kanaquiz/internal/settings"
	"github.com/verte-zerg/kanaquiz/internal/stats"
	"github.com/verte-zerg/kanaquiz/internal/store"
	"github.com/verte-zerg/kanaquiz/internal/tui"
)

var (
	practiceType           string
	practiceKanaMode       string
	practiceRows           []string
	practiceKanjiMode      string
	practiceKanjiCount     int
	practiceBehavior       string
	practiceAdvance        string
	practiceCorrectDelay   time.Duration
	practiceIncorrectDelay time.Duration
	practicePlain          bool

	catalogCount int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	def := settings.Defaults()
	rootCmd := &cobra.Command{
		Use:           "kanaquiz",
		Short:         "Kana and kanji recognition quiz",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceType, "type", string(def.QuizType), "quiz type: kana or kanji")
	rootCmd.Flags().StringVar(&practiceKanaMode, "kana-mode", string(def.KanaMode), "kana script: hiragana, katakana or mixed")
	rootCmd.Flags().StringSliceVar(&practiceRows, "rows", rowStrings(def.SelectedRows), "kana rows to include (a,ka,sa,ta,na,ha,ma,ya,ra,wa)")
	rootCmd.Flags().StringVar(&practiceKanjiMode, "kanji-mode", string(def.KanjiMode), "kanji answer: meaning, kana or romaji")
	rootCmd.Flags().IntVar(&practiceKanjiCount, "kanji-count", def.KanjiCount, "number of most frequent kanji (10, 20, 40 or 50)")
	rootCmd.Flags().StringVar(&practiceBehavior, "behavior", string(def.Behavior), "on a wrong answer: one-try or repeat-until-correct")
	rootCmd.Flags().StringVar(&practiceAdvance, "advance", string(def.Advance), "advance after a result: auto or manual")
	rootCmd.Flags().DurationVar(&practiceCorrectDelay, "correct-delay", quiz.DefaultDelays.Correct, "auto-advance delay after a correct answer")
	rootCmd.Flags().DurationVar(&practiceIncorrectDelay, "incorrect-delay", quiz.DefaultDelays.Incorrect, "auto-advance delay after an incorrect answer")
	rootCmd.Flags().BoolVar(&practicePlain, "plain", false, "use line mode instead of the full-screen UI")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newCatalogCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open settings db, settings will not be saved: %v\n", err)
		st = nil
	} else {
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	if st != nil {
		saved, found, err := settings.Load(ctx, st)
		if err != nil {
			logErrf("failed to load settings: %v\n", err)
		}
		if found {
			applySavedSettings(cmd, saved)
		}
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFileConfig(cmd, fileCfg.Quiz)

	cfg := model.Config{
		QuizType:     model.QuizType(practiceType),
		KanaMode:     model.KanaMode(practiceKanaMode),
		SelectedRows: parseRows(practiceRows),
		KanjiMode:    model.KanjiMode(practiceKanjiMode),
		KanjiCount:   practiceKanjiCount,
		Behavior:     model.Behavior(practiceBehavior),
		Advance:      model.AdvanceMode(practiceAdvance),
	}
	delays := quiz.Delays{Correct: practiceCorrectDelay, Incorrect: practiceIncorrectDelay}
	if err := validateDelays(delays); err != nil {
		return err
	}
	cfg, reset := settings.Normalize(cfg)
	if len(reset) > 0 {
		logErrf("invalid settings replaced with defaults: %s\n", strings.Join(reset, ", "))
	}

	plain := practicePlain || !isTerminal(os.Stdin) || !isTerminal(os.Stdout)
	mode := cfg.Advance
	if plain {
		mode = model.AdvanceManual
	}

	gen := generator.New()
	engine := quiz.NewEngine(cfg.Behavior, gen)
	ctrl := quiz.NewController(engine, quiz.WithDelays(delays), quiz.WithAdvanceMode(mode))
	defer ctrl.Close()

	var kv settings.KV
	if st != nil {
		kv = st
	}
	if err := checkAndSave(ctx, kv, gen, cfg); err != nil {
		return err
	}

	if plain {
		runner := lineui.NewRunner(cfg, ctrl, gen, os.Stdin, os.Stdout)
		if err := runner.Run(ctx); err != nil {
			return fmt.Errorf("failed to run quiz: %w", err)
		}
		return nil
	}

	m := tui.NewModel(cfg, ctrl, gen)
	program := tea.NewProgram(m, tea.WithAltScreen())
	ctrl.OnAutoAdvance(func(sessionID string) {
		program.Send(tui.AdvanceMsg{SessionID: sessionID})
	})
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show saved quiz settings",
		Args:  cobra.NoArgs,
		RunE:  runSettingsCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget saved quiz settings",
		Args:  cobra.NoArgs,
		RunE:  runSettingsResetCmd,
	})
	return cmd
}

func runSettingsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	cfg, found, err := settings.Load(cmd.Context(), st)
	if err != nil {
		logErrf("%v\n", err)
	}
	cfg, _ = settings.Normalize(cfg)
	out := cmd.OutOrStdout()
	if !found {
		if _, err := fmt.Fprintln(out, "No saved settings; defaults apply."); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return writeSettings(out, cfg)
}

func runSettingsResetCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if err := settings.Clear(cmd.Context(), st); err != nil {
		return err
	}
	logErrln("Saved settings cleared.")
	return nil
}

func writeSettings(w io.Writer, cfg model.Config) error {
	rows := [][]string{
		{"type", string(cfg.QuizType)},
		{"kana-mode", string(cfg.KanaMode)},
		{"rows", strings.Join(rowStrings(cfg.SelectedRows), ",")},
		{"kanji-mode", string(cfg.KanjiMode)},
		{"kanji-count", strconv.Itoa(cfg.KanjiCount)},
		{"behavior", string(cfg.Behavior)},
		{"advance", string(cfg.Advance)},
	}
	return stats.WriteTable(w, []string{"Setting", "Value"}, rows, nil)
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "catalog kana|kanji",
		Short:     "Print the kana or kanji reference table",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"kana", "kanji"},
		RunE:      runCatalogCmd,
	}
	cmd.Flags().IntVar(&catalogCount, "count", len(catalog.Kanji()), "number of most frequent kanji to list")
	return cmd
}

func runCatalogCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch args[0] {
	case "kana":
		return writeKanaCatalog(out)
	case "kanji":
		if catalogCount <= 0 {
			return fmt.Errorf("--count must be > 0")
		}
		return writeKanjiCatalog(out, catalogCount)
	default:
		return fmt.Errorf("unknown catalog %q (use kana or kanji)", args[0])
	}
}

func writeKanaCatalog(w io.Writer) error {
	byRow := map[model.Row][]model.Kana{}
	for _, k := range catalog.Kana() {
		byRow[k.Row] = append(byRow[k.Row], k)
	}
	for i, row := range catalog.Rows() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if _, err := fmt.Fprintf(w, "%s [%s]\n", catalog.RowLabel(row), row); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		rows := make([][]string, 0, len(byRow[row]))
		for _, k := range byRow[row] {
			rows = append(rows, []string{k.Hiragana, k.Katakana, k.Romaji})
		}
		if err := stats.WriteTable(w, []string{"Hiragana", "Katakana", "Romaji"}, rows, nil); err != nil {
			return err
		}
	}
	return nil
}

func writeKanjiCatalog(w io.Writer, count int) error {
	kanji := catalog.KanjiByCount(count)
	rows := make([][]string, 0, len(kanji))
	for _, k := range kanji {
		rows = append(rows, []string{strconv.Itoa(k.Rank), k.Glyph, k.Meaning, k.Kana, k.Romaji})
	}
	return stats.WriteTable(w, []string{"Rank", "Kanji", "Meaning", "Kana", "Romaji"}, rows, map[int]bool{0: true})
}

// applySavedSettings fills flags that were not set on the command line from
// the settings saved by the previous run.
func applySavedSettings(cmd *cobra.Command, saved model.Config) {
	quizType := string(saved.QuizType)
	kanaMode := string(saved.KanaMode)
	rows := rowStrings(saved.SelectedRows)
	kanjiMode := string(saved.KanjiMode)
	behavior := string(saved.Behavior)
	advance := string(saved.Advance)
	applyStringConfig(cmd, "type", &practiceType, &quizType)
	applyStringConfig(cmd, "kana-mode", &practiceKanaMode, &kanaMode)
	applyStringSliceConfig(cmd, "rows", &practiceRows, &rows)
	applyStringConfig(cmd, "kanji-mode", &practiceKanjiMode, &kanjiMode)
	applyIntConfig(cmd, "kanji-count", &practiceKanjiCount, &saved.KanjiCount)
	applyStringConfig(cmd, "behavior", &practiceBehavior, &behavior)
	applyStringConfig(cmd, "advance", &practiceAdvance, &advance)
}

func applyFileConfig(cmd *cobra.Command, q config.QuizConfig) {
	applyStringConfig(cmd, "type", &practiceType, q.Type)
	applyStringConfig(cmd, "kana-mode", &practiceKanaMode, q.KanaMode)
	applyStringSliceConfig(cmd, "rows", &practiceRows, q.Rows)
	applyStringConfig(cmd, "kanji-mode", &practiceKanjiMode, q.KanjiMode)
	applyIntConfig(cmd, "kanji-count", &practiceKanjiCount, q.KanjiCount)
	applyStringConfig(cmd, "behavior", &practiceBehavior, q.Behavior)
	applyStringConfig(cmd, "advance", &practiceAdvance, q.Advance)
	applyMillisConfig(cmd, "correct-delay", &practiceCorrectDelay, q.CorrectDelayMS)
	applyMillisConfig(cmd, "incorrect-delay", &practiceIncorrectDelay, q.IncorrectDelayMS)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyStringSliceConfig(cmd *cobra.Command, name string, target, value *[]string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = append([]string(nil), (*value)...)
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyMillisConfig(cmd *cobra.Command, name string, target *time.Duration, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = time.Duration(*value) * time.Millisecond
}

func defaultConfigTemplate() string {
	def := settings.Defaults()
	return fmt.Sprintf(`# kanaquiz configuration
# Uncomment a value to enable it. CLI flags override config values,
# config values override the settings saved by the last run.

[quiz]
# type = %q                  # kana or kanji
# kana-mode = %q         # hiragana, katakana or mixed
# rows = [%s]              # a, ka, sa, ta, na, ha, ma, ya, ra, wa
# kanji-mode = %q         # meaning, kana or romaji
# kanji-count = %d              # 10, 20, 40 or 50
# behavior = %q          # one-try or repeat-until-correct
# advance = %q               # auto or manual
# correct-delay-ms = %d       # Auto-advance delay after a correct answer
# incorrect-delay-ms = %d     # Auto-advance delay after an incorrect answer
`,
		def.QuizType,
		def.KanaMode,
		quotedRows(def.SelectedRows),
		def.KanjiMode,
		def.KanjiCount,
		def.Behavior,
		def.Advance,
		quiz.DefaultDelays.Correct.Milliseconds(),
		quiz.DefaultDelays.Incorrect.Milliseconds(),
	)
}

// checkAndSave refuses settings that select no questions and only then saves
// them, so a refused run never becomes the next run's starting point.
func checkAndSave(ctx context.Context, kv settings.KV, builder tui.PoolBuilder, cfg model.Config) error {
	if _, err := builder.BuildPool(cfg); err != nil {
		if errors.Is(err, generator.ErrNoQuestions) {
			return fmt.Errorf("no questions to practice: select at least one kana row with --rows")
		}
		return err
	}
	if kv == nil {
		return nil
	}
	if err := settings.Save(ctx, kv, cfg); err != nil {
		logErrf("%v\n", err)
	}
	return nil
}

func validateDelays(d quiz.Delays) error {
	if d.Correct <= 0 {
		return fmt.Errorf("--correct-delay must be > 0")
	}
	if d.Incorrect < d.Correct {
		return fmt.Errorf("--incorrect-delay must be >= --correct-delay")
	}
	return nil
}

func parseRows(values []string) []model.Row {
	rows := make([]model.Row, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		rows = append(rows, model.Row(v))
	}
	return rows
}

func rowStrings(rows []model.Row) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = string(row)
	}
	return out
}

func quotedRows(rows []model.Row) string {
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = strconv.Quote(string(row))
	}
	return strings.Join(parts, ", ")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
