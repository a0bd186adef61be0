// Package main provides the CLI entrypoint for recite.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/recite/internal/config"
	"github.com/verte-zerg/recite/internal/i18n"
	"github.com/verte-zerg/recite/internal/model"
	"github.com/verte-zerg/recite/internal/reftext"
	"github.com/verte-zerg/recite/internal/session"
	"github.com/verte-zerg/recite/internal/stats"
	"github.com/verte-zerg/recite/internal/store"
	"github.com/verte-zerg/recite/internal/tui"
)

const defaultCurveWindow = 10

var (
	practiceLang        string
	practiceIgnoreCase  bool
	practiceIgnorePunct bool
	practiceMaskWords   bool
	practiceFile        string

	statsLang        string
	statsSince       string
	statsLast        int
	statsCurveWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "recite",
		Short:         "TUI memorization trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLang, "lang", i18n.DefaultLang, "interface language code")
	rootCmd.Flags().BoolVar(&practiceIgnoreCase, "ignore-case", false, "compare without case")
	rootCmd.Flags().BoolVar(&practiceIgnorePunct, "ignore-punct", false, "compare without punctuation and symbols")
	rootCmd.Flags().BoolVar(&practiceMaskWords, "mask-words", false, "hide reference words behind placeholders")
	rootCmd.Flags().StringVar(&practiceFile, "file", "", "load the reference text from a file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &practiceLang, fileCfg.Practice.Lang)
	applyBoolConfig(cmd, "ignore-case", &practiceIgnoreCase, fileCfg.Practice.IgnoreCase)
	applyBoolConfig(cmd, "ignore-punct", &practiceIgnorePunct, fileCfg.Practice.IgnorePunct)
	applyBoolConfig(cmd, "mask-words", &practiceMaskWords, fileCfg.Practice.MaskWords)

	storePath := config.DefaultDBPath()
	st, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()

	// Stored values win only when neither flag nor config set one.
	if !cmd.Flags().Changed("lang") && fileCfg.Practice.Lang == nil {
		if lang, ok, err := st.GetValue(ctx, store.KeyLang); err == nil && ok && i18n.Supported(lang) {
			practiceLang = lang
		}
	}
	restoreBoolValue(ctx, cmd, st, "ignore-case", store.KeyIgnoreCase, &practiceIgnoreCase, fileCfg.Practice.IgnoreCase)
	restoreBoolValue(ctx, cmd, st, "ignore-punct", store.KeyIgnorePunct, &practiceIgnorePunct, fileCfg.Practice.IgnorePunct)
	restoreBoolValue(ctx, cmd, st, "mask-words", store.KeyMaskWords, &practiceMaskWords, fileCfg.Practice.MaskWords)

	cfg := model.Config{
		Lang:        practiceLang,
		IgnoreCase:  practiceIgnoreCase,
		IgnorePunct: practiceIgnorePunct,
		MaskWords:   practiceMaskWords,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	reference, err := resolveReference(ctx, st, cfg.Lang)
	if err != nil {
		return err
	}
	attempt := ""
	if value, ok, err := st.GetValue(ctx, store.KeyAttempt); err == nil && ok {
		attempt = value
	}

	opts := model.Options{
		IgnoreCase:        cfg.IgnoreCase,
		IgnorePunctuation: cfg.IgnorePunct,
	}
	sess := session.New(reference, opts)
	sess.SetAttempt(attempt)

	if err := st.SetValue(ctx, store.KeyReference, reference); err != nil {
		logErrf("failed to persist reference: %v\n", err)
	}
	if err := st.SetValue(ctx, store.KeyLang, cfg.Lang); err != nil {
		logErrf("failed to persist language: %v\n", err)
	}
	if err := st.SetValue(ctx, store.KeyIgnoreCase, strconv.FormatBool(cfg.IgnoreCase)); err != nil {
		logErrf("failed to persist options: %v\n", err)
	}
	if err := st.SetValue(ctx, store.KeyIgnorePunct, strconv.FormatBool(cfg.IgnorePunct)); err != nil {
		logErrf("failed to persist options: %v\n", err)
	}
	if err := st.SetValue(ctx, store.KeyMaskWords, strconv.FormatBool(cfg.MaskWords)); err != nil {
		logErrf("failed to persist options: %v\n", err)
	}

	program := tea.NewProgram(tui.NewModel(cfg, st, sess), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func resolveReference(ctx context.Context, st *store.Store, lang string) (string, error) {
	if practiceFile != "" {
		text, err := reftext.LoadFile(practiceFile)
		if err != nil {
			return "", fmt.Errorf("failed to load reference file: %w", err)
		}
		return text, nil
	}
	if value, ok, err := st.GetValue(ctx, store.KeyReference); err == nil && ok && value != "" {
		return value, nil
	}
	return i18n.DefaultReference(lang), nil
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

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List supported interface languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	for _, lang := range i18n.Languages() {
		line := lang
		if lang == i18n.DefaultLang {
			line += " (default)"
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show practice history",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsLang, "lang", "", "language filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Lang:        statsLang,
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}

	storePath := config.DefaultDBPath()
	st, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	return stats.RenderReport(cmd.OutOrStdout(), report, cfg)
}

// restoreBoolValue fills target from the kv store when neither the flag nor
// the config file set a value.
func restoreBoolValue(ctx context.Context, cmd *cobra.Command, st *store.Store, name, key string, target, cfgValue *bool) {
	if cmd.Flags().Changed(name) || cfgValue != nil {
		return
	}
	value, ok, err := st.GetValue(ctx, key)
	if err != nil || !ok {
		return
	}
	if parsed, perr := strconv.ParseBool(value); perr == nil {
		*target = parsed
	}
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

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# recite configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lang = %q           # Interface language (%s)
# ignore-case = false    # Compare without case
# ignore-punct = false   # Compare without punctuation and symbols
# mask-words = false     # Hide reference words behind placeholders
`,
		i18n.DefaultLang,
		strings.Join(i18n.Languages(), ", "),
	)
}

func validateConfig(cfg model.Config) error {
	if !i18n.Supported(cfg.Lang) {
		return fmt.Errorf("unknown language %q (available: %s)", cfg.Lang, strings.Join(i18n.Languages(), ", "))
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
