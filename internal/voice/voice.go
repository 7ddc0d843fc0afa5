// Package voice plays short voice lines for session events.
package voice

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"github.com/vovakirdan/tui-rescue/internal/rescue"
)

// SampleRate is used when this package creates the audio context.
const SampleRate = 48000

// Clip names, also the file names (without .mp3) in the voice directory.
const (
	ClipMissionStart     = "mission-start"
	ClipTransformVehicle = "transform-vehicle"
	ClipTransformRobot   = "transform-robot"
	ClipSupportCall      = "support-call"
	ClipCitizenSaved     = "citizen-saved"
	ClipMissionWin       = "mission-win"
	ClipMissionRetry     = "mission-retry"
)

// Clips lists every voice line preloaded by Load.
var Clips = []string{
	ClipMissionStart,
	ClipTransformVehicle,
	ClipTransformRobot,
	ClipSupportCall,
	ClipCitizenSaved,
	ClipMissionWin,
	ClipMissionRetry,
}

// Player is the part of *audio.Player the announcer needs.
type Player interface {
	Rewind() error
	Play()
	SetVolume(v float64)
}

// ClipFor returns the clip announced for e, or "" when e has none.
func ClipFor(e rescue.Event) string {
	switch e.Kind {
	case rescue.EventMissionStart:
		return ClipMissionStart
	case rescue.EventFormChanged:
		if e.Form == rescue.FormAlternate {
			return ClipTransformVehicle
		}
		return ClipTransformRobot
	case rescue.EventEntityRescued:
		return ClipCitizenSaved
	case rescue.EventWin:
		return ClipMissionWin
	case rescue.EventLoss:
		return ClipMissionRetry
	case rescue.EventSupport:
		return ClipSupportCall
	default:
		return ""
	}
}

// Voice is a rescue.Announcer backed by a set of preloaded clips.
// It is safe for concurrent use.
type Voice struct {
	mu      sync.Mutex
	players map[string]Player
	enabled bool
	volume  float64
}

// New creates an empty, enabled announcer at full volume.
func New() *Voice {
	return &Voice{
		players: make(map[string]Player),
		enabled: true,
		volume:  1,
	}
}

// Context returns the process audio context, creating it on first use.
// Ebiten allows only one context per process.
func Context() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(SampleRate)
}

// Load preloads every clip from dir. Clips that are missing or fail to
// decode are skipped, so an empty dir yields a silent announcer.
func Load(ctx *audio.Context, dir string) *Voice {
	v := New()
	if ctx == nil || dir == "" {
		return v
	}
	for _, name := range Clips {
		p, err := loadClip(ctx, filepath.Join(dir, name+".mp3"))
		if err != nil {
			log.Debug("Voice clip unavailable", "clip", name, "err", err)
			continue
		}
		v.Add(name, p)
	}
	log.Debug("Voice loaded", "dir", dir, "clips", v.Len())
	return v
}

func loadClip(ctx *audio.Context, path string) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("voice: read %s: %w", path, err)
	}
	stream, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("voice: decode %s: %w", path, err)
	}
	p, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("voice: player %s: %w", path, err)
	}
	return p, nil
}

// Add registers p under name, replacing any previous clip.
func (v *Voice) Add(name string, p Player) {
	v.mu.Lock()
	defer v.mu.Unlock()
	p.SetVolume(v.volume)
	v.players[name] = p
}

// Len returns the number of loaded clips.
func (v *Voice) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.players)
}

// SetEnabled turns playback on or off.
func (v *Voice) SetEnabled(enabled bool) {
	v.mu.Lock()
	v.enabled = enabled
	v.mu.Unlock()
}

// SetVolume sets the volume of every clip, clamped to [0, 1].
func (v *Voice) SetVolume(volume float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.volume = min(max(volume, 0), 1)
	for _, p := range v.players {
		p.SetVolume(v.volume)
	}
}

// Play restarts the named clip. Unknown clips are ignored.
func (v *Voice) Play(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.enabled {
		return
	}
	p, ok := v.players[name]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Debug("Voice rewind failed", "clip", name, "err", err)
		return
	}
	p.Play()
}

// Announce plays the clip mapped to e.
func (v *Voice) Announce(e rescue.Event) {
	if name := ClipFor(e); name != "" {
		v.Play(name)
	}
}
