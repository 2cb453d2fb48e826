// roadrush is a terminal arcade driving game: dodge or shoot falling
// obstacles, grab fuel and shields, and chase the high score.
//
// Usage:
//
//	roadrush                 - Start the main menu
//	roadrush play            - Start a run right away
//	roadrush scores          - Show the leaderboard
//	roadrush settings        - Show or change player settings
//	roadrush serve           - Start SSH server for remote play
//	roadrush list            - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.roadrush/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Override the difficulty from settings
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadrush/internal/audio"
	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/games/road"
	"github.com/vovakirdan/roadrush/internal/storage"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagConfig       string
	flagDifficulty   string
	flagSettingsPath string
	flagLogPath      string
	flagDebug        bool
	flagMute         bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadrush",
	Short: "Road Rush - arcade driving in your terminal",
	Long: `Road Rush is a vertically scrolling arcade driving game for the terminal.
Steer around falling obstacles or shoot them, collect fuel to repair,
and grab shields for a few seconds of invincibility.

Available commands:
  play      - Start a run right away
  menu      - Main menu (default)
  scores    - View the leaderboard
  settings  - Show or change player settings
  serve     - Start SSH server for remote play
  list      - Show registered games

Examples:
  roadrush
  roadrush play --difficulty hard
  roadrush scores --limit 5
  roadrush serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty override: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagSettingsPath, "settings", "", "Path to settings file (default ~/.roadrush/settings.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file (default ~/.roadrush/roadrush.log)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}

// app holds what a local play session needs. Every field may be nil when
// its resource could not be opened; the game still runs without it.
type app struct {
	logger      *log.Logger
	logFile     *os.File
	settings    *config.Settings
	store       *storage.Store
	leaderboard *storage.Leaderboard
	sound       *audio.Player
}

// newApp opens logging, settings, scores and sound, then configures the road
// game package with them.
func newApp() *app {
	a := &app{}
	a.logger, a.logFile = openLogger()

	settings, err := config.LoadSettings(flagSettingsPath)
	if err != nil {
		a.logger.Warn("using default settings", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	a.settings = settings

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		a.logger.Warn("scores disabled", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		a.store = store
		a.leaderboard = storage.NewLeaderboard(store, a.logger)
	}

	road.SetLogger(a.logger)
	road.SetSettings(a.settings)
	road.SetConfigPath(flagConfig)
	road.SetDifficultyPreset(flagDifficulty)

	if !flagMute {
		a.sound = audio.NewPlayer(a.logger)
		//nolint:errcheck // Init logs the failure and stays silent
		a.sound.Init()
		road.SetAudioSink(a.sound)
	}
	return a
}

// Close flushes pending scores and releases everything newApp opened.
func (a *app) Close() {
	a.leaderboard.Wait()
	if a.store != nil {
		a.store.Close()
	}
	if a.sound != nil {
		a.sound.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openLogger logs to a file since the alternate screen owns stdout. Falls
// back to discarding output when the file cannot be opened.
func openLogger() (*log.Logger, *os.File) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "roadrush",
		Level:           log.InfoLevel,
	}
	if flagDebug {
		opts.Level = log.DebugLevel
	}

	path := flagLogPath
	if path == "" {
		path = config.UserPath("roadrush.log")
	}
	path, err := config.ExpandHome(path)
	if err != nil || path == "" {
		return log.NewWithOptions(io.Discard, opts), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.NewWithOptions(io.Discard, opts), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.NewWithOptions(io.Discard, opts), nil
	}
	return log.NewWithOptions(f, opts), f
}
