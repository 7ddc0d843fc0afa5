// Package settings persists player preferences between runs using the
// platform data directory.
package settings

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application name; data lives under the platform
// data directory (for example ~/.local/share/rescue on Linux).
const AppName = "rescue"

const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// Settings are the player preferences shared by all games.
type Settings struct {
	SoundEnabled bool    `yaml:"sound_enabled"`
	VoiceVolume  float64 `yaml:"voice_volume"` // 0.0 to 1.0
	Difficulty   string  `yaml:"difficulty"`   // Preset name, empty for the config file
	LastGame     string  `yaml:"last_game"`
}

// Defaults returns the settings used before anything is saved.
func Defaults() Settings {
	return Settings{
		SoundEnabled: true,
		VoiceVolume:  0.8,
	}
}

// Manager loads and saves Settings. A Manager without storage keeps
// settings in memory only.
type Manager struct {
	store    *gdata.Manager // nil means in-memory only
	settings Settings
}

// Open creates a manager backed by the gdata store for appName.
// When the store cannot be opened the returned manager is in-memory and
// the error explains why.
func Open(appName string) (*Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewManager(nil), fmt.Errorf("settings: open store: %w", err)
	}
	return NewManager(store), nil
}

// NewManager wraps store (which may be nil) and loads the saved settings.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, settings: Defaults()}
	if err := m.Load(); err != nil {
		log.Warn("Using default settings", "err", err)
	}
	return m
}

// Persistent reports whether settings survive a restart.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Load reads the saved settings, falling back to defaults.
func (m *Manager) Load() error {
	m.settings = Defaults()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: decode: %w", err)
	}
	loaded.VoiceVolume = clampVolume(loaded.VoiceVolume)
	m.settings = loaded
	return nil
}

// Save writes the current settings. A manager without storage does nothing.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	log.Debug("Settings saved")
	return nil
}

// Reset restores the defaults in memory. Call Save to persist them.
func (m *Manager) Reset() {
	m.settings = Defaults()
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	return m.settings
}

// SetSoundEnabled turns voice playback on or off.
func (m *Manager) SetSoundEnabled(enabled bool) {
	m.settings.SoundEnabled = enabled
}

// SetVoiceVolume sets the voice volume, clamped to [0, 1].
func (m *Manager) SetVoiceVolume(v float64) {
	m.settings.VoiceVolume = clampVolume(v)
}

// SetDifficulty stores a difficulty preset name.
func (m *Manager) SetDifficulty(preset string) {
	m.settings.Difficulty = preset
}

// SetLastGame remembers the most recently played game.
func (m *Manager) SetLastGame(id string) {
	m.settings.LastGame = id
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
