// Package sound plays short sine tones for tick events.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/plus3/scavenger/internal/world"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a tone played for one event kind.
type Cue struct {
	Freq     float64
	Duration time.Duration
}

var cues = map[world.EventKind]Cue{
	world.EventStruck:        {Freq: 220, Duration: 40 * time.Millisecond},
	world.EventEnemyKilled:   {Freq: 660, Duration: 80 * time.Millisecond},
	world.EventWallDestroyed: {Freq: 330, Duration: 60 * time.Millisecond},
	world.EventFoodConsumed:  {Freq: 880, Duration: 50 * time.Millisecond},
	world.EventPlayerDied:    {Freq: 110, Duration: 400 * time.Millisecond},
	world.EventEscaped:       {Freq: 1320, Duration: 300 * time.Millisecond},
}

// Cues returns the tones for a tick's events, one per event kind, in event
// order.
func Cues(events []world.Event) []Cue {
	var (
		out  []Cue
		seen = make(map[world.EventKind]bool, len(events))
	)
	for _, ev := range events {
		cue, ok := cues[ev.Kind]
		if !ok || seen[ev.Kind] {
			continue
		}
		seen[ev.Kind] = true
		out = append(out, cue)
	}
	return out
}

// Player turns snapshots into tones. A Player whose speaker failed to open
// stays silent.
type Player struct {
	enabled bool
	log     *zap.Logger
}

// New opens the speaker. Failure is logged, not returned; the game runs
// without sound.
func New(log *zap.Logger) *Player {
	p := &Player{log: log}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Warn("audio initialization failed", zap.Error(err))
		return p
	}
	p.enabled = true
	return p
}

// Silent returns a Player that never opens the speaker.
func Silent() *Player {
	return &Player{log: zap.NewNop()}
}

// Enabled reports whether the speaker is open.
func (p *Player) Enabled() bool {
	return p.enabled
}

// Present plays the cues of snap's events.
func (p *Player) Present(snap world.Snapshot) {
	if !p.enabled {
		return
	}
	var tones []beep.Streamer
	for _, cue := range Cues(snap.Events) {
		sine, err := generators.SineTone(sampleRate, cue.Freq)
		if err != nil {
			p.log.Debug("sine tone", zap.Float64("freq", cue.Freq), zap.Error(err))
			continue
		}
		tones = append(tones, beep.Take(sampleRate.N(cue.Duration), sine))
	}
	if len(tones) > 0 {
		speaker.Play(beep.Seq(tones...))
	}
}

// Close stops playback.
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}
