// Package main provides the CLI entrypoint for kanafall.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/kanafall/internal/audio"
	"github.com/verte-zerg/kanafall/internal/config"
	"github.com/verte-zerg/kanafall/internal/kana"
	"github.com/verte-zerg/kanafall/internal/model"
	"github.com/verte-zerg/kanafall/internal/recordsui"
	"github.com/verte-zerg/kanafall/internal/stats"
	"github.com/verte-zerg/kanafall/internal/store"
	"github.com/verte-zerg/kanafall/internal/tui"
	"github.com/verte-zerg/kanafall/internal/wordbank"
)

var (
	playInput       string
	playLevel       int
	playList        string
	playCategory    string
	playMinDiff     int
	playMaxDiff     int
	playSound       bool
	playShowReading bool
	playShowMeaning bool

	drillSets  string
	drillInput string
	drillSound bool

	statsMode  string
	statsSince string
	statsLast  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := model.DefaultSettings()
	rootCmd := &cobra.Command{
		Use:           "kanafall",
		Short:         "Falling-word Japanese typing game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playInput, "input", string(defaults.InputMode), "input mode: romaji, hiragana, katakana")
	rootCmd.Flags().IntVar(&playLevel, "level", defaults.Level, "difficulty level (1-5)")
	rootCmd.Flags().StringVar(&playList, "list", defaults.ListID, "word list id")
	rootCmd.Flags().StringVar(&playCategory, "category", "", "restrict to one word category")
	rootCmd.Flags().IntVar(&playMinDiff, "min-difficulty", 0, "minimum word difficulty (0 = no bound)")
	rootCmd.Flags().IntVar(&playMaxDiff, "max-difficulty", 0, "maximum word difficulty (0 = no bound)")
	rootCmd.Flags().BoolVar(&playSound, "sound", defaults.SoundEnabled, "play feedback sounds")
	rootCmd.Flags().BoolVar(&playShowReading, "reading", defaults.ShowReading, "show readings next to words")
	rootCmd.Flags().BoolVar(&playShowMeaning, "meaning", defaults.ShowMeaning, "show meanings in the summary")

	rootCmd.AddCommand(newDrillCmd())
	rootCmd.AddCommand(newChartCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newRecordsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordbankCmd())

	return rootCmd
}

// resolveSettings layers defaults, the TOML config, and explicit flags.
// Flags the user set on the command line always win.
func resolveSettings(cmd *cobra.Command) (model.Settings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	settings := fileCfg.Apply(model.DefaultSettings())

	if cmd.Flags().Changed("input") {
		settings.InputMode = model.InputMode(playInput)
	}
	if cmd.Flags().Changed("level") {
		settings.Level = playLevel
	}
	if cmd.Flags().Changed("list") {
		settings.ListID = playList
	}
	if cmd.Flags().Changed("sound") {
		settings.SoundEnabled = playSound
	}
	if cmd.Flags().Changed("reading") {
		settings.ShowReading = playShowReading
	}
	if cmd.Flags().Changed("meaning") {
		settings.ShowMeaning = playShowMeaning
	}
	return settings, validateSettings(settings)
}

func validateSettings(s model.Settings) error {
	switch s.InputMode {
	case model.InputRomaji, model.InputHiragana, model.InputKatakana:
	default:
		return fmt.Errorf("--input must be romaji, hiragana, or katakana")
	}
	if s.Level < 1 || s.Level > 5 {
		return fmt.Errorf("--level must be between 1 and 5")
	}
	if s.ListID == "" {
		return fmt.Errorf("--list must not be empty")
	}
	return nil
}

func openStore() (*store.Store, func(), error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	closer := func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}
	return st, closer, nil
}

func newSoundManager(enabled bool) *audio.Manager {
	sound := audio.NewManager(enabled)
	if err := sound.Initialize(); err != nil {
		logErrf("audio unavailable, continuing silent: %v\n", err)
	}
	return sound
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	source := wordbank.NewSource(st)
	words, err := source.Select(context.Background(), model.Selection{
		ListID:        settings.ListID,
		Category:      playCategory,
		MinDifficulty: playMinDiff,
		MaxDifficulty: playMaxDiff,
	})
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return fmt.Errorf("word list %q has no words matching the filters", settings.ListID)
	}

	sound := newSoundManager(settings.SoundEnabled)
	defer sound.Cleanup()

	gameModel := tui.NewModel(settings, words, st, sound)
	program := tea.NewProgram(gameModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newDrillCmd() *cobra.Command {
	defaults := model.DefaultSettings()
	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Practice single kana recall",
		Args:  cobra.NoArgs,
		RunE:  runDrillCmd,
	}
	cmd.Flags().StringVar(&drillSets, "sets", "all", "comma-separated kana sets: seion, dakuten, handakuten, youon, all")
	cmd.Flags().StringVar(&drillInput, "input", string(defaults.InputMode), "prompt script: romaji shows hiragana, katakana shows katakana")
	cmd.Flags().BoolVar(&drillSound, "sound", defaults.SoundEnabled, "play feedback sounds")
	return cmd
}

func runDrillCmd(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettingsForDrill(cmd)
	if err != nil {
		return err
	}

	var sets []kana.SetName
	for _, part := range strings.Split(drillSets, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		sets = append(sets, kana.ParseSetName(part))
	}
	if len(sets) == 0 {
		sets = []kana.SetName{kana.SetAll}
	}

	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	sound := newSoundManager(settings.SoundEnabled)
	defer sound.Cleanup()

	drillModel := tui.NewDrillModel(settings, sets, st, sound)
	program := tea.NewProgram(drillModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run drill TUI: %w", err)
	}
	return nil
}

func resolveSettingsForDrill(cmd *cobra.Command) (model.Settings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	settings := fileCfg.Apply(model.DefaultSettings())
	if cmd.Flags().Changed("input") {
		settings.InputMode = model.InputMode(drillInput)
	}
	if cmd.Flags().Changed("sound") {
		settings.SoundEnabled = drillSound
	}
	return settings, validateSettings(settings)
}

func newChartCmd() *cobra.Command {
	var chartSet string
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print a kana chart with romaji spellings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printChart(cmd, kana.ParseSetName(chartSet))
		},
	}
	cmd.Flags().StringVar(&chartSet, "set", "seion", "kana set: seion, dakuten, handakuten, youon, all")
	return cmd
}

func printChart(cmd *cobra.Command, set kana.SetName) error {
	out := cmd.OutOrStdout()
	header := make([]string, 0, len(kana.ColLabels)+1)
	header = append(header, "")
	header = append(header, kana.ColLabels...)
	if _, err := fmt.Fprintln(out, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	entries := kana.Set(set)
	grid := map[int]map[int]kana.Kana{}
	maxRow := 0
	for _, k := range entries {
		if grid[k.Row] == nil {
			grid[k.Row] = map[int]kana.Kana{}
		}
		grid[k.Row][k.Col] = k
		if k.Row > maxRow {
			maxRow = k.Row
		}
	}
	for row := 0; row <= maxRow; row++ {
		cols := grid[row]
		if len(cols) == 0 {
			continue
		}
		label := ""
		if set == kana.SetSeion && row < len(kana.RowLabels) {
			label = kana.RowLabels[row]
		}
		cells := []string{label}
		for col := 0; col < len(kana.ColLabels); col++ {
			k, ok := cols[col]
			if !ok {
				cells = append(cells, "")
				continue
			}
			spelling := k.Romaji
			if k.AltRomaji != "" {
				spelling += "/" + k.AltRomaji
			}
			cells = append(cells, fmt.Sprintf("%s %s", k.Kana, spelling))
		}
		if _, err := fmt.Fprintln(out, strings.Join(cells, "\t")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print session history and best records",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsMode, "mode", "", "filter by mode: falling or drill")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
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
	if statsMode != "" && statsMode != string(model.ModeFalling) && statsMode != string(model.ModeDrill) {
		return fmt.Errorf("--mode must be falling or drill")
	}

	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()
	sessions, err := st.ListSessions(ctx, model.SessionFilter{
		Mode:  model.GameMode(statsMode),
		Since: sinceTime,
		Last:  statsLast,
	})
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderSessions(out, sessions); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	records, err := st.GetBestRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to load best records: %w", err)
	}
	if err := stats.RenderBestRecords(out, records); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newRecordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "Browse sessions and records interactively",
		Args:  cobra.NoArgs,
		RunE:  runRecordsCmd,
	}
}

func runRecordsCmd(_ *cobra.Command, _ []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	recordsModel := recordsui.NewModel(st)
	program := tea.NewProgram(recordsModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run records TUI: %w", err)
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

func newWordbankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordbank",
		Short: "Manage word lists",
	}
	cmd.AddCommand(newWordbankListCmd())
	cmd.AddCommand(newWordbankShowCmd())
	cmd.AddCommand(newWordbankImportCmd())
	cmd.AddCommand(newWordbankDeleteCmd())
	return cmd
}

func newWordbankListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available word lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, closeStore, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			lists, err := wordbank.NewSource(st).Lists(context.Background())
			if err != nil {
				return err
			}
			for _, l := range lists {
				kind := "custom"
				if l.BuiltIn {
					kind = "built-in"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-9s %s\n", l.ID, kind, l.Name); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}

func newWordbankShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <list-id>",
		Short: "Show the words of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, closeStore, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			list, err := wordbank.NewSource(st).Resolve(context.Background(), args[0])
			if err != nil {
				return err
			}
			for _, w := range list.Words {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", w.Japanese, w.Reading, w.Romaji, w.Meaning); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}

// wordListFile is the TOML import format for custom lists.
type wordListFile struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Words       []struct {
		ID         string   `toml:"id"`
		Japanese   string   `toml:"japanese"`
		Reading    string   `toml:"reading"`
		Romaji     string   `toml:"romaji"`
		Meaning    string   `toml:"meaning"`
		Category   string   `toml:"category"`
		Difficulty int      `toml:"difficulty"`
		Tags       []string `toml:"tags"`
	} `toml:"words"`
}

func newWordbankImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.toml>",
		Short: "Import a custom word list from TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file wordListFile
			if _, err := toml.DecodeFile(args[0], &file); err != nil {
				return fmt.Errorf("failed to decode word list: %w", err)
			}
			if file.ID == "" || file.Name == "" {
				return fmt.Errorf("word list file must set id and name")
			}
			if len(file.Words) == 0 {
				return fmt.Errorf("word list file has no words")
			}
			list := model.WordList{
				ID:          file.ID,
				Name:        file.Name,
				Description: file.Description,
				CreatedAt:   time.Now().UTC(),
			}
			for i, w := range file.Words {
				if w.Japanese == "" || w.Reading == "" || w.Romaji == "" {
					return fmt.Errorf("word %d must set japanese, reading, and romaji", i+1)
				}
				id := w.ID
				if id == "" {
					id = fmt.Sprintf("%s-%03d", file.ID, i+1)
				}
				list.Words = append(list.Words, model.Word{
					ID:         id,
					Japanese:   w.Japanese,
					Reading:    w.Reading,
					Romaji:     w.Romaji,
					Meaning:    w.Meaning,
					Category:   w.Category,
					Difficulty: w.Difficulty,
					Tags:       w.Tags,
				})
			}

			st, closeStore, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			if err := st.SaveWordList(context.Background(), list); err != nil {
				return fmt.Errorf("failed to save word list: %w", err)
			}
			logErrf("Imported %q with %d words\n", list.ID, len(list.Words))
			return nil
		},
	}
}

func newWordbankDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <list-id>",
		Short: "Delete a custom word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, l := range wordbank.BuiltinLists() {
				if l.ID == args[0] {
					return fmt.Errorf("cannot delete built-in list %q", args[0])
				}
			}
			st, closeStore, err := openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			if err := st.DeleteWordList(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete word list: %w", err)
			}
			return nil
		},
	}
}

func defaultConfigTemplate() string {
	defaults := model.DefaultSettings()
	return fmt.Sprintf(`# kanafall configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# input-mode = %q      # Input mode: romaji, hiragana, katakana
# level = %d                # Difficulty level (1-5)
# list = %q           # Word list id

[audio]
# enabled = %t             # Play feedback sounds

[display]
# show-reading = %t        # Show readings next to falling words
# show-meaning = %t        # Show meanings in the round summary
`,
		defaults.InputMode,
		defaults.Level,
		defaults.ListID,
		defaults.SoundEnabled,
		defaults.ShowReading,
		defaults.ShowMeaning,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
