package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rescue/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	SprintLeft  key.Binding
	SprintRight key.Binding
	SprintUp    key.Binding
	SprintDown  key.Binding
	Form        key.Binding
	Interact    key.Binding
	Pause       key.Binding
	Confirm     key.Binding
	Restart     key.Binding
	Back        key.Binding
	Quit        key.Binding
	Screenshot  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Form, k.Interact, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.SprintLeft, k.SprintRight, k.SprintUp, k.SprintDown},
		{k.Form, k.Interact, k.Confirm, k.Pause},
		{k.Restart, k.Back, k.Quit, k.Screenshot},
	}
}

// DefaultGameKeyMap returns default in-game key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		SprintLeft: key.NewBinding(
			key.WithKeys("shift+left", "A"),
			key.WithHelp("S-←", "sprint left"),
		),
		SprintRight: key.NewBinding(
			key.WithKeys("shift+right", "D"),
			key.WithHelp("S-→", "sprint right"),
		),
		SprintUp: key.NewBinding(
			key.WithKeys("shift+up", "W"),
			key.WithHelp("S-↑", "sprint up"),
		),
		SprintDown: key.NewBinding(
			key.WithKeys("shift+down", "S"),
			key.WithHelp("S-↓", "sprint down"),
		),
		Form: key.NewBinding(
			key.WithKeys(" ", "t"),
			key.WithHelp("space/t", "transform"),
		),
		Interact: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "help citizen"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to the actions it triggers.
// A sprint key yields both the direction and ActionSprint.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Action {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return []core.Action{core.ActionQuit}
	case key.Matches(msg, k.SprintLeft):
		return []core.Action{core.ActionMoveLeft, core.ActionSprint}
	case key.Matches(msg, k.SprintRight):
		return []core.Action{core.ActionMoveRight, core.ActionSprint}
	case key.Matches(msg, k.SprintUp):
		return []core.Action{core.ActionMoveUp, core.ActionSprint}
	case key.Matches(msg, k.SprintDown):
		return []core.Action{core.ActionMoveDown, core.ActionSprint}
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionMoveLeft}
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionMoveRight}
	case key.Matches(msg, k.Up):
		return []core.Action{core.ActionMoveUp}
	case key.Matches(msg, k.Down):
		return []core.Action{core.ActionMoveDown}
	case key.Matches(msg, k.Form):
		return []core.Action{core.ActionToggleForm}
	case key.Matches(msg, k.Interact):
		return []core.Action{core.ActionInteract}
	case key.Matches(msg, k.Pause):
		return []core.Action{core.ActionPause}
	case key.Matches(msg, k.Confirm):
		return []core.Action{core.ActionConfirm}
	case key.Matches(msg, k.Restart):
		return []core.Action{core.ActionRestart}
	case key.Matches(msg, k.Back):
		return []core.Action{core.ActionBack}
	}
	return nil
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	for _, a := range km.MapKey(msg) {
		if a == core.ActionQuit {
			return true
		}
		frame.Set(a)
	}
	return false
}

// MapMouseToFrame records a left-button press as pointer input.
// Returns true if the event was a press.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.PointerDownAt(msg.X, msg.Y)
	return true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
