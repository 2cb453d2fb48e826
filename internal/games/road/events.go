package road

// Sound identifies a discrete audio event raised by the engine.
type Sound int

const (
	SoundCrash Sound = iota
	SoundCollect
	SoundPowerUp
	SoundShoot
)

// String returns the event name.
func (s Sound) String() string {
	switch s {
	case SoundCrash:
		return "crash"
	case SoundCollect:
		return "collect"
	case SoundPowerUp:
		return "powerup"
	case SoundShoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// Gain is the per-event loudness applied on top of the player's sound volume.
func (s Sound) Gain() float64 {
	if s == SoundShoot {
		return 0.3
	}
	return 0.5
}

// AudioSink plays sound events. Play must not block the caller.
type AudioSink interface {
	Play(s Sound, volume float64)
}

// Leaderboard receives the final score of a run, exactly once per run.
type Leaderboard interface {
	Submit(player string, score int) error
}

type nopAudio struct{}

func (nopAudio) Play(Sound, float64) {}

type nopLeaderboard struct{}

func (nopLeaderboard) Submit(string, int) error { return nil }

// LeaderboardFunc adapts a function to the Leaderboard interface.
type LeaderboardFunc func(player string, score int) error

// Submit calls f(player, score).
func (f LeaderboardFunc) Submit(player string, score int) error {
	return f(player, score)
}
