package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run right away",
	Long: `Skip the menu and start driving.

Controls:
  A/Left       - Steer left
  D/Right      - Steer right
  Space/W/Up   - Fire
  P/Esc        - Pause
  R            - Restart (after game over)
  L            - Leaderboard (after game over)
  B/Esc        - Back to menu (paused or game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower traffic, fewer obstacles
  normal - Default pacing
  hard   - Faster traffic, more obstacles

Examples:
  roadrush play
  roadrush play --difficulty hard
  roadrush play --seed 42
  roadrush play --config ./my-road.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	a := newApp()
	defer a.Close()

	if err := menuLoop(a, runtimeConfig(), tui.MenuPlay); err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
