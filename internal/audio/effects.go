package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/roadrush/internal/games/road"
)

// Effect durations.
const (
	crashDuration   = 350 * time.Millisecond
	collectNote     = 70 * time.Millisecond
	powerUpNote     = 80 * time.Millisecond
	shootDuration   = 90 * time.Millisecond
	crashRumbleFreq = 140.0
)

// crashSound is a noise burst over a falling low rumble.
func crashSound(rate beep.SampleRate) beep.Streamer {
	noise := newEnvelope(newOscillator(0, crashDuration, waveNoise, rate), crashDuration, 2*time.Millisecond, 300*time.Millisecond, rate)
	rumble := newEnvelope(
		newOscillator(crashRumbleFreq, crashDuration, waveSaw, rate).withSweep(-200),
		crashDuration, 2*time.Millisecond, 250*time.Millisecond, rate,
	)
	return beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4))
}

// collectSound is a rising two-note chime.
func collectSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(659.25, collectNote, waveSine, rate), // E5
		tone(987.77, collectNote, waveSine, rate), // B5
	)
}

// powerUpSound is a three-note square arpeggio.
func powerUpSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(523.25, powerUpNote, waveSquare, rate), // C5
		tone(659.25, powerUpNote, waveSquare, rate), // E5
		tone(783.99, powerUpNote, waveSquare, rate), // G5
	)
}

// shootSound is a short downward zap.
func shootSound(rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(1400, shootDuration, waveSquare, rate).withSweep(-9000)
	return newEnvelope(osc, shootDuration, time.Millisecond, 60*time.Millisecond, rate)
}

// Effect returns a finite streamer for the sound at the given linear volume,
// or nil for an unknown sound.
func Effect(s road.Sound, volume float64, rate beep.SampleRate) beep.Streamer {
	var st beep.Streamer
	switch s {
	case road.SoundCrash:
		st = crashSound(rate)
	case road.SoundCollect:
		st = collectSound(rate)
	case road.SoundPowerUp:
		st = powerUpSound(rate)
	case road.SoundShoot:
		st = shootSound(rate)
	default:
		return nil
	}
	return newVolume(st, volume)
}
