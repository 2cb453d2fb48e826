package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change player settings",
	Long: `Show the saved player settings, or change them with a subcommand.
Settings are also editable from the Settings entry of the main menu.

Keys:
  name        - Player name recorded on the leaderboard
  volume      - Sound effect volume, 0-100
  difficulty  - easy, normal or hard
  fps         - Show frame rate in the HUD: on or off

Examples:
  roadrush settings
  roadrush settings set name Ana
  roadrush settings set volume 40
  roadrush settings reset`,
	Args: cobra.NoArgs,
	Run:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	Run:   runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	Run:   runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func loadSettingsOrExit() *config.Settings {
	s, err := config.LoadSettings(flagSettingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return s
}

func saveSettingsOrExit(s *config.Settings) {
	if err := s.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSettingsShow(_ *cobra.Command, _ []string) {
	printSettings(loadSettingsOrExit())
}

func printSettings(s *config.Settings) {
	fps := "off"
	if s.ShowFPS {
		fps = "on"
	}
	fmt.Printf("Settings (%s)\n\n", s.Path())
	fmt.Printf("  %-11s %s\n", "name", s.PlayerName)
	fmt.Printf("  %-11s %d%%\n", "volume", int(s.SoundVolume*100+0.5))
	fmt.Printf("  %-11s %s\n", "difficulty", s.Difficulty)
	fmt.Printf("  %-11s %s\n", "fps", fps)
}

func runSettingsSet(_ *cobra.Command, args []string) {
	s := loadSettingsOrExit()
	if err := applySetting(s, args[0], args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	saveSettingsOrExit(s)
	printSettings(s)
}

// applySetting parses value for key and stores it on s.
func applySetting(s *config.Settings, key, value string) error {
	switch strings.ToLower(key) {
	case "name":
		s.SetPlayerName(value)
	case "volume":
		v, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil {
			return fmt.Errorf("invalid volume %q: %w", value, err)
		}
		s.SetSoundVolume(v / 100)
	case "difficulty":
		d := config.ParseDifficulty(value)
		if string(d) != strings.ToLower(strings.TrimSpace(value)) {
			return fmt.Errorf("unknown difficulty %q (easy, normal, hard)", value)
		}
		s.Difficulty = d
	case "fps":
		on, err := parseOnOff(value)
		if err != nil {
			return err
		}
		s.ShowFPS = on
	default:
		return fmt.Errorf("unknown setting %q (name, volume, difficulty, fps)", key)
	}
	return nil
}

func parseOnOff(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", value)
}

func runSettingsReset(_ *cobra.Command, _ []string) {
	s := loadSettingsOrExit()
	s.ResetToDefaults()
	saveSettingsOrExit(s)
	printSettings(s)
}
