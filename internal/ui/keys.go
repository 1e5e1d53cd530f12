package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding
	Switch                key.Binding
	Grab                  key.Binding
	Cancel                key.Binding
	Check                 key.Binding
	Mode                  key.Binding
	PrevChapter           key.Binding
	NextChapter           key.Binding
	Reload                key.Binding
	Theme                 key.Binding
	PageUp, PageDown      key.Binding
	Quit                  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left pane")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right pane")),
		Switch:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Grab:        key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pick up/put down")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "put down")),
		Check:       key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter", "check order")),
		Mode:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "game/study")),
		PrevChapter: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev chapter")),
		NextChapter: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next chapter")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Check, k.Mode, k.PrevChapter, k.NextChapter, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Switch},
		{k.Grab, k.Cancel, k.Check},
		{k.Mode, k.PrevChapter, k.NextChapter, k.Reload, k.Theme},
		{k.PageUp, k.PageDown, k.Quit},
	}
}
