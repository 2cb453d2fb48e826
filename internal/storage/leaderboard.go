package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrush/internal/registry"
)

// Leaderboard writes finished runs to the store in the background so the
// game loop never waits on the database.
type Leaderboard struct {
	store  *Store
	logger *log.Logger
	wg     sync.WaitGroup
	parent *Leaderboard
}

// Ensure Leaderboard implements registry.ScoreSubmitter
var _ registry.ScoreSubmitter = (*Leaderboard)(nil)

// NewLeaderboard wraps store. A nil logger discards output.
func NewLeaderboard(store *Store, logger *log.Logger) *Leaderboard {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Leaderboard{store: store, logger: logger}
}

// Fork returns a leaderboard on the same store whose Wait covers only the
// scores submitted through it. Those scores still count toward l.Wait.
// Each SSH session forks its own, so Add and Wait on the fork's counter stay
// on one goroutine while other sessions keep submitting.
func (l *Leaderboard) Fork() *Leaderboard {
	if l == nil {
		return nil
	}
	return &Leaderboard{store: l.store, logger: l.logger, parent: l}
}

// SubmitScore queues the score for saving and returns immediately. Save
// failures are logged, not returned.
func (l *Leaderboard) SubmitScore(gameID, player string, score int, difficulty string) error {
	if l == nil || l.store == nil {
		return nil
	}
	l.wg.Add(1)
	if l.parent != nil {
		l.parent.wg.Add(1)
	}
	go func() {
		defer l.wg.Done()
		if l.parent != nil {
			defer l.parent.wg.Done()
		}
		id, err := l.store.SaveScore(gameID, player, score, difficulty)
		if err != nil {
			l.logger.Error("cannot save score", "game", gameID, "player", player, "score", score, "err", err)
			return
		}
		l.logger.Info("score saved", "id", id, "game", gameID, "player", player, "score", score, "difficulty", difficulty)
	}()
	return nil
}

// Wait blocks until every score queued through l, or through any of its
// forks, has been written. Calls must not overlap with SubmitScore on l.
func (l *Leaderboard) Wait() {
	if l == nil {
		return
	}
	l.wg.Wait()
}
