package core

// Clip identifies one of the independent audio clips a game can trigger.
type Clip int

const (
	ClipEat Clip = iota
	ClipGameOver
	ClipMusic
)

// String returns the clip name used in logs.
func (c Clip) String() string {
	switch c {
	case ClipEat:
		return "eat"
	case ClipGameOver:
		return "gameover"
	case ClipMusic:
		return "music"
	default:
		return "unknown"
	}
}

// Sound is the audio collaborator. Playback is fire-and-forget: Play
// returns as soon as the clip is queued, and callers are free to ignore
// the error.
type Sound interface {
	Play(c Clip) error
	Pause(c Clip)
	SetLoop(c Clip, loop bool)
	SetVolume(c Clip, v float64)
	Volume(c Clip) float64
}

// HUD receives display strings for status shown outside the game canvas.
// It is a pure sink.
type HUD interface {
	SetScore(text string)
	SetWrap(text string)
	SetMusic(text string)
}

// NopSound discards every request. Volumes read back as zero.
type NopSound struct{}

func (NopSound) Play(Clip) error { return nil }
func (NopSound) Pause(Clip) {}
func (NopSound) SetLoop(Clip, bool) {}
func (NopSound) SetVolume(Clip, float64) {}
func (NopSound) Volume(Clip) float64 { return 0 }

// NopHUD discards every update.
type NopHUD struct{}

func (NopHUD) SetScore(string) {}
func (NopHUD) SetWrap(string) {}
func (NopHUD) SetMusic(string) {}
