package main

import (
	"os"

	"github.com/vovakirdan/tui-rescue/internal/config"
	"github.com/vovakirdan/tui-rescue/internal/games/patrol"
	"github.com/vovakirdan/tui-rescue/internal/games/runner"
	"github.com/vovakirdan/tui-rescue/internal/rescue"
	"github.com/vovakirdan/tui-rescue/internal/settings"
	"github.com/vovakirdan/tui-rescue/internal/storage"
	"github.com/vovakirdan/tui-rescue/internal/voice"
)

// playEnv holds what a play session needs besides the game.
type playEnv struct {
	store    *storage.Store // nil when the database cannot be opened
	settings *settings.Manager
	voice    *voice.Voice // nil when sound is off or no clips exist
}

// openPlayEnv opens storage and settings. Voice clips are loaded only when
// withVoice is set, sound is enabled and the voice directory exists.
func openPlayEnv(withVoice bool) *playEnv {
	env := &playEnv{}

	store, err := storage.Open(opts.DBPath)
	if err != nil {
		logger.Warn("Could not open scores database", "err", err)
	} else {
		env.store = store
	}

	env.settings, err = settings.Open(settings.AppName)
	if err != nil {
		logger.Debug("Settings are not persistent", "err", err)
	}

	s := env.settings.Get()
	if withVoice && s.SoundEnabled && opts.Voices != "" {
		if info, statErr := os.Stat(opts.Voices); statErr == nil && info.IsDir() {
			env.voice = voice.Load(voice.Context(), opts.Voices)
			env.voice.SetVolume(s.VoiceVolume)
		} else {
			logger.Debug("No voice directory", "path", opts.Voices)
		}
	}

	return env
}

// announcer returns the voice as an announcer, or nil for silence.
func (e *playEnv) announcer() rescue.Announcer {
	if e.voice == nil {
		return nil
	}
	return e.voice
}

// difficulty returns the preset from the command line, falling back to
// the saved settings.
func (e *playEnv) difficulty() string {
	return presetFor(e.settings)
}

// configureGame sets the config path and difficulty for gameID before it
// is created, and remembers it as the last game played.
func (e *playEnv) configureGame(gameID string) {
	applyGameConfig(e.difficulty())

	e.settings.SetLastGame(gameID)
	//nolint:errcheck // Best-effort save, game continues regardless
	e.settings.Save()
}

// presetFor returns the --difficulty preset, or the one saved in m.
func presetFor(m *settings.Manager) string {
	if opts.Difficulty != "" {
		return opts.Difficulty
	}
	return m.Get().Difficulty
}

// applyGameConfig hands the --config path and preset to every game, so
// instances created afterwards pick them up.
func applyGameConfig(preset string) {
	if preset != "" && config.ParsePreset(preset) == "" {
		logger.Warn("Unknown difficulty preset, using config file", "preset", preset)
	}

	runner.SetConfigPath(opts.Config)
	runner.SetDifficultyPreset(preset)
	patrol.SetConfigPath(opts.Config)
	patrol.SetDifficultyPreset(preset)
}

func (e *playEnv) Close() {
	if e.store != nil {
		e.store.Close()
	}
}
