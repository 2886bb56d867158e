// Package audio plays the game's procedurally synthesized clips through
// the system audio device.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNotReady is returned by Play while the device is still starting.
var ErrNotReady = errors.New("audio: device not ready")

// readyTimeout bounds how long Open waits for the device to come up.
const readyTimeout = 2 * time.Second

// Device implements core.Sound on top of an oto context. Sound effects are
// rendered once at Open and replayed from memory; the music is streamed.
// All methods are safe for concurrent use.
type Device struct {
	ctx    *oto.Context
	ready  chan struct{}
	logger *log.Logger

	mu      sync.Mutex
	clips   map[core.Clip][]byte
	players map[core.Clip]oto.Player
	volumes map[core.Clip]float64
	loops   map[core.Clip]bool
	music   *musicReader
}

var _ core.Sound = (*Device)(nil)

// Open creates the process-wide audio context and waits until the device
// is ready. oto allows one context per process, so Open must be called at
// most once.
func Open(logger *log.Logger) (*Device, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	select {
	case <-ready:
	case <-time.After(readyTimeout):
		return nil, ErrNotReady
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Device{
		ctx:    ctx,
		ready:  ready,
		logger: logger,
		clips: map[core.Clip][]byte{
			core.ClipEat:      genEat(),
			core.ClipGameOver: genGameOver(),
		},
		players: make(map[core.Clip]oto.Player),
		volumes: map[core.Clip]float64{
			core.ClipEat:      1,
			core.ClipGameOver: 1,
			core.ClipMusic:    1,
		},
		loops: make(map[core.Clip]bool),
	}, nil
}

func (d *Device) isReady() bool {
	select {
	case <-d.ready:
		return true
	default:
		return false
	}
}

// Play starts clip c. A sound effect that is already playing restarts from
// the beginning; paused music resumes where it stopped.
func (d *Device) Play(c core.Clip) error {
	if !d.isReady() {
		return ErrNotReady
	}
	if err := d.ctx.Err(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if c == core.ClipMusic {
		return d.playMusic()
	}

	data, ok := d.clips[c]
	if !ok {
		return fmt.Errorf("audio: unknown clip %v", c)
	}
	if old := d.players[c]; old != nil {
		old.Pause() // its goroutine sees it stop and closes it
	}

	p := d.ctx.NewPlayer(bytes.NewReader(data))
	p.SetVolume(d.volumes[c])
	p.Play()
	d.players[c] = p
	go d.reap(c, p)
	return nil
}

// playMusic must be called with d.mu held.
func (d *Device) playMusic() error {
	p := d.players[core.ClipMusic]
	if p != nil && d.music.done() {
		p.Close()
		p = nil
	}
	if p == nil {
		d.music = newMusicReader(d.loops[core.ClipMusic])
		p = d.ctx.NewPlayer(d.music)
		p.SetVolume(d.volumes[core.ClipMusic])
		d.players[core.ClipMusic] = p
	}
	p.Play()
	return p.Err()
}

// reap closes a sound-effect player once it stops.
func (d *Device) reap(c core.Clip, p oto.Player) {
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := p.Err(); err != nil {
		d.logger.Debug("clip playback failed", "clip", c, "err", err)
	}
	if err := p.Close(); err != nil {
		d.logger.Debug("closing clip player", "clip", c, "err", err)
	}

	d.mu.Lock()
	if d.players[c] == p {
		delete(d.players, c)
	}
	d.mu.Unlock()
}

// Pause stops clip c if it is playing.
func (d *Device) Pause(c core.Clip) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p := d.players[c]; p != nil {
		p.Pause()
	}
}

// SetLoop controls whether clip c repeats. Only the music can loop.
func (d *Device) SetLoop(c core.Clip, loop bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loops[c] = loop
	if c == core.ClipMusic && d.music != nil {
		d.music.loop.Store(loop)
	}
}

// SetVolume sets the volume of clip c, clamped to [0, 1].
func (d *Device) SetVolume(c core.Clip, v float64) {
	v = core.ClampF(v, 0, 1)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.volumes[c] = v
	if p := d.players[c]; p != nil {
		p.SetVolume(v)
	}
}

// Volume returns the volume of clip c.
func (d *Device) Volume(c core.Clip) float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.volumes[c]
}

// Close stops and releases the music stream.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	p := d.players[core.ClipMusic]
	if p == nil {
		return nil
	}
	delete(d.players, core.ClipMusic)
	p.Pause()
	return p.Close()
}
