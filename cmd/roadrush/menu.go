package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/games/road"
	"github.com/vovakirdan/roadrush/internal/platform/tui"
	"github.com/vovakirdan/roadrush/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start Road Rush in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a run ends you can restart, open the leaderboard or return here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  roadrush menu
  roadrush menu --fps 30
  roadrush menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a := newApp()
	defer a.Close()

	if err := menuLoop(a, runtimeConfig(), tui.MenuNone); err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// menuLoop shows the menu and the screens it leads to until the player
// quits. A first choice other than MenuNone skips the initial menu.
func menuLoop(a *app, cfg core.RuntimeConfig, first tui.MenuChoice) error {
	choice := first
	for {
		if choice == tui.MenuNone {
			res, err := tui.RunMenu(a.store, cfg, tui.MenuOptions{
				GameID:     road.GameID,
				PlayerName: a.settings.PlayerName,
			})
			if err != nil {
				return err
			}
			cfg = res.Config
			choice = res.Choice
		}

		switch choice {
		case tui.MenuPlay:
			exit, err := playOnce(a, cfg)
			if err != nil {
				return err
			}
			switch exit {
			case tui.ExitQuit:
				return nil
			case tui.ExitScoreboard:
				choice = tui.MenuLeaderboard
				continue
			}

		case tui.MenuLeaderboard:
			// Show the run that just ended.
			a.leaderboard.Wait()
			goBack, err := tui.RunScoreboard(a.store, cfg.ScreenW, cfg.ScreenH, tui.ScoreboardOptions{GameID: road.GameID})
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.MenuSettings:
			goBack, err := tui.RunSettings(a.settings, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		default:
			return nil
		}
		choice = tui.MenuNone
	}
}

// playOnce runs one game screen, which may span several restarts.
func playOnce(a *app, cfg core.RuntimeConfig) (tui.Exit, error) {
	game, err := registry.Create(road.GameID)
	if err != nil {
		return tui.ExitQuit, fmt.Errorf("cannot create game: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var submitter registry.ScoreSubmitter
	if a.leaderboard != nil {
		submitter = a.leaderboard
	}
	return tui.Run(game, submitter, cfg)
}
