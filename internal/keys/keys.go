package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down      key.Binding
	Up        key.Binding
	NextScene key.Binding
	PrevScene key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Shot actions
	AddShot   key.Binding
	Delete    key.Binding
	Duplicate key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Check     key.Binding
	Color     key.Binding

	// Scene actions
	AddScene      key.Binding
	EditScene     key.Binding
	DeleteScene   key.Binding
	CycleIntExt   key.Binding
	CycleDayNight key.Binding

	// File actions
	Save   key.Binding
	Open   key.Binding
	Export key.Binding

	// Help toggle
	Help key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		NextScene: key.NewBinding(
			key.WithKeys("l", "right", "tab"),
			key.WithHelp("l/→", "next scene"),
		),
		PrevScene: key.NewBinding(
			key.WithKeys("h", "left", "shift+tab"),
			key.WithHelp("h/←", "prev scene"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit shot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		AddShot: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add shot"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete shot"),
		),
		Duplicate: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "duplicate shot"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move shot up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move shot down"),
		),
		Check: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle done"),
		),
		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle color"),
		),
		AddScene: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "add scene"),
		),
		EditScene: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit scene"),
		),
		DeleteScene: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "delete scene"),
		),
		CycleIntExt: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "int/ext"),
		),
		CycleDayNight: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "day/night"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s", "s"),
			key.WithHelp("s", "save"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open"),
		),
		Export: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "export"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.AddShot, k.Select,
		k.Save, k.Help, k.Quit,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevScene, k.NextScene, k.Select, k.Back, k.Quit},
		{k.AddShot, k.Delete, k.Duplicate, k.MoveUp, k.MoveDown},
		{k.Check, k.Color, k.AddScene, k.EditScene, k.DeleteScene},
		{k.CycleIntExt, k.CycleDayNight},
		{k.Save, k.Open, k.Export, k.Help},
	}
}
