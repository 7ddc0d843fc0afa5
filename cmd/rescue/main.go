// rescue is a city rescue game for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	rescue list              - List available games
//	rescue play <game>       - Play a game
//	rescue menu              - Start menu to pick games interactively
//	rescue serve             - Start SSH server for remote play
//	rescue scores <game>     - Show high scores for a game
//	rescue runs [game]       - Show recent missions
//	rescue settings          - Show or change saved settings
//
// Global flags (also RESCUE_* environment variables and ~/.rescue/rescue.yaml):
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.rescue/rescue.db)
//	--voices <dir>      - Directory with voice clips (default: ~/.rescue/voices)
//	--config <path>     - Custom game config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	// Import games to register them
	_ "github.com/vovakirdan/tui-rescue/internal/games/patrol"
	_ "github.com/vovakirdan/tui-rescue/internal/games/runner"

	"github.com/vovakirdan/tui-rescue/internal/storage"
)

// options are the global settings after flags, environment and the
// config file have been merged.
type options struct {
	FPS        int
	Seed       int64
	DBPath     string
	Voices     string
	Config     string
	Difficulty string
	Verbose    bool
}

var (
	opts   options
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rescue",
	})
)

func main() {
	log.SetDefault(logger)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rescue",
	Short: "City Rescue - save the city from your terminal",
	Long: `City Rescue is a small rescue game you can play in the terminal,
in a desktop window, or over SSH.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  runs      - View recent missions
  settings  - Show or change saved settings

Examples:
  rescue list
  rescue play runner
  rescue play patrol --window
  rescue menu
  rescue serve --ssh :2222
  rescue scores runner`,
	SilenceUsage:      true,
	PersistentPreRunE: loadOptions,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 60, "Tick rate (frames per second)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("db", storage.DefaultPath, "Path to scores database")
	flags.String("voices", "~/.rescue/voices", "Directory with voice clips (<name>.mp3)")
	flags.String("config", "", "Path to custom game config YAML")
	flags.String("difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.BoolP("verbose", "v", false, "Log debug messages to stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(settingsCmd)
}

// loadOptions merges flags, RESCUE_* environment variables and the
// optional ~/.rescue/rescue.yaml, in that order of precedence.
func loadOptions(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	v.SetConfigName("rescue")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".rescue"))
	}
	v.SetEnvPrefix("RESCUE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("rescue: bind flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("rescue: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	opts = options{
		FPS:        v.GetInt("fps"),
		Seed:       v.GetInt64("seed"),
		DBPath:     v.GetString("db"),
		Voices:     expandHome(v.GetString("voices")),
		Config:     v.GetString("config"),
		Difficulty: v.GetString("difficulty"),
		Verbose:    v.GetBool("verbose"),
	}

	// Anything written to stderr during a TUI session breaks the screen.
	logger.SetLevel(log.WarnLevel)
	if opts.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if f := v.ConfigFileUsed(); f != "" {
		logger.Debug("Loaded config file", "path", f)
	}
	return nil
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
