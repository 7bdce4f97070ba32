// Package audio plays the synthesized sound effects and the opening melody.
//
// Sound is optional: when no output device is available Init returns an
// error and every Play call becomes a no-op, so games run the same with or
// without it.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cozy-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies a sound effect.
type Sound int

const (
	SoundJump Sound = iota
	SoundCollect
	SoundReward
	SoundCollision
	SoundFire
	SoundHit
	SoundLose
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundCollect:
		return "collect"
	case SoundReward:
		return "reward"
	case SoundCollision:
		return "collision"
	case SoundFire:
		return "fire"
	case SoundHit:
		return "hit"
	case SoundLose:
		return "lose"
	default:
		return "unknown"
	}
}

// toneSpec describes a one-note effect.
type toneSpec struct {
	freq     float64
	duration time.Duration
	gain     float64
}

var effectTones = map[Sound]toneSpec{
	SoundJump:      {440, 100 * time.Millisecond, 0.1},
	SoundCollect:   {880, 200 * time.Millisecond, 0.2},
	SoundReward:    {660, 300 * time.Millisecond, 0.3},
	SoundCollision: {220, 200 * time.Millisecond, 0.2},
	SoundFire:      {520, 80 * time.Millisecond, 0.1},
	SoundHit:       {330, 120 * time.Millisecond, 0.15},
	SoundLose:      {165, 400 * time.Millisecond, 0.2},
}

// NewEffect returns the streamer for s.
func NewEffect(s Sound, rate beep.SampleRate) beep.Streamer {
	spec, ok := effectTones[s]
	if !ok {
		return nil
	}
	return NewTone(spec.freq, spec.duration, spec.gain, WaveSine, rate)
}

// SoundFor maps a game event to its sound effect. ok is false for events
// without one. Win and Start events play the melody instead.
func SoundFor(kind core.EventKind) (s Sound, ok bool) {
	switch kind {
	case core.EventJump:
		return SoundJump, true
	case core.EventCollect:
		return SoundCollect, true
	case core.EventReward:
		return SoundReward, true
	case core.EventCollision:
		return SoundCollision, true
	case core.EventFire:
		return SoundFire, true
	case core.EventHit:
		return SoundHit, true
	case core.EventLose:
		return SoundLose, true
	}
	return 0, false
}

// Player mixes effects onto the speaker. The zero value is not usable; call
// NewPlayer.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume *effects.Volume
	ready  bool
	muted  bool
}

// NewPlayer creates a player. Nothing is audible until Init succeeds.
func NewPlayer() *Player {
	mixer := &beep.Mixer{}
	return &Player{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Init opens the speaker. It is safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.volume)
	p.ready = true
	return nil
}

// Ready reports whether the speaker is open.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Play starts a sound effect.
func (p *Player) Play(s Sound) {
	if st := NewEffect(s, sampleRate); st != nil {
		p.add(st)
	}
}

// PlayMelody starts the opening tune.
func (p *Player) PlayMelody() {
	p.add(NewMelody(melody, sampleRate))
}

// PlayEvent plays whatever belongs to a game event.
func (p *Player) PlayEvent(e core.Event) {
	switch e.Kind {
	case core.EventStart, core.EventWin:
		p.PlayMelody()
		return
	}
	if s, ok := SoundFor(e.Kind); ok {
		p.Play(s)
	}
}

func (p *Player) add(st beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.muted {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// SetMuted silences or restores output. Muting drops anything still playing.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	if !p.ready {
		p.volume.Silent = muted
		return
	}
	speaker.Lock()
	p.volume.Silent = muted
	if muted {
		p.mixer.Clear()
	}
	speaker.Unlock()
}

// Muted reports whether output is silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// ToggleMute flips mute and returns the new state.
func (p *Player) ToggleMute() bool {
	muted := !p.Muted()
	p.SetMuted(muted)
	return muted
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.ready = false
}
