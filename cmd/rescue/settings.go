package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rescue/internal/config"
	"github.com/vovakirdan/tui-rescue/internal/settings"
)

var (
	flagSound  string
	flagVolume float64
	flagPreset string
	flagReset  bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved settings",
	Long: `Show the saved player settings, or change them with flags.

Settings are kept in the platform data directory and apply to every
game. A --difficulty flag on play or menu overrides the saved preset.

Examples:
  rescue settings
  rescue settings --sound off
  rescue settings --volume 0.5 --preset hard
  rescue settings --reset`,
	Run: runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&flagSound, "sound", "", "Voice lines: on or off")
	settingsCmd.Flags().Float64Var(&flagVolume, "volume", -1, "Voice volume from 0 to 1")
	settingsCmd.Flags().StringVar(&flagPreset, "preset", "", "Saved difficulty: easy, normal, hard, fixed, or none")
	settingsCmd.Flags().BoolVar(&flagReset, "reset", false, "Restore default settings")
}

func runSettings(cmd *cobra.Command, _ []string) {
	m, err := settings.Open(settings.AppName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	changed := false
	if flagReset {
		m.Reset()
		changed = true
	}

	switch flagSound {
	case "":
	case "on":
		m.SetSoundEnabled(true)
		changed = true
	case "off":
		m.SetSoundEnabled(false)
		changed = true
	default:
		fmt.Fprintf(os.Stderr, "Error: --sound must be on or off, got %q\n", flagSound)
		os.Exit(1)
	}

	if cmd.Flags().Changed("volume") {
		m.SetVoiceVolume(flagVolume)
		changed = true
	}

	if cmd.Flags().Changed("preset") {
		preset := flagPreset
		if preset == "none" {
			preset = ""
		} else if config.ParsePreset(preset) == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty preset %q\n", preset)
			os.Exit(1)
		}
		m.SetDifficulty(preset)
		changed = true
	}

	if changed {
		if err := m.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			os.Exit(1)
		}
	}

	s := m.Get()
	sound := "off"
	if s.SoundEnabled {
		sound = "on"
	}
	difficulty := s.Difficulty
	if difficulty == "" {
		difficulty = "from config file"
	}

	fmt.Println("Settings:")
	fmt.Printf("  Sound:       %s\n", sound)
	fmt.Printf("  Volume:      %.0f%%\n", s.VoiceVolume*100)
	fmt.Printf("  Difficulty:  %s\n", difficulty)
	if s.LastGame != "" {
		fmt.Printf("  Last game:   %s\n", s.LastGame)
	}
	if !m.Persistent() {
		fmt.Println()
		fmt.Println("Settings are not saved on this system.")
	}
}
