package root

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/JohanGylseth/SAMI/internal/config"
	"github.com/JohanGylseth/SAMI/internal/ui"
)

const Version = "0.4.0"

type globalFlags struct {
	configPath string
	dbPath     string
	ruleset    string
	logLevel   string
	ephemeral  bool
}

var (
	flags  globalFlags
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "sami",
	Short:         "Sámi Adventure: learn Sámi culture through quests",
	Long:          "Sámi Adventure is a terminal game about Sámi language, crafts and history. Build a village, finish objectives and follow the story chapter by chapter.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&flags.dbPath, "db", "", "path to the save database (default ~/.sami.db)")
	pf.StringVar(&flags.ruleset, "ruleset", "", "rule set: classic, village or story")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&flags.ephemeral, "ephemeral", false, "keep the game in memory only")
}

// setup resolves configuration as file, then environment, then flags.
func setup() error {
	var c *config.Config
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		loaded.ApplyEnv()
		c = loaded
	} else {
		c = config.FromEnv()
	}
	if flags.dbPath != "" {
		c.DBPath = flags.dbPath
	}
	if flags.ruleset != "" {
		c.Ruleset = flags.ruleset
	}
	if flags.logLevel != "" {
		c.LogLevel = flags.logLevel
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	cfg = c
	return nil
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newListCmd(),
		newProgressCmd(),
		newStartCmd(),
		newCompleteCmd(),
		newBuildCmd(),
		newDecorateCmd(),
		newVisitCmd(),
		newMeetCmd(),
		newUseCmd(),
		newResetCmd(),
		newExportCmd(),
		newImportCmd(),
		newJournalCmd(),
		newBoardCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
