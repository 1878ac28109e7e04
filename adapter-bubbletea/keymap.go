package bubble_adapter

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the chord bindings of the editor commands. Plain typing,
// navigation and prompt editing are not remappable; they are translated
// directly from the terminal key events.
type KeyMap struct {
	NewTab       key.Binding
	Open         key.Binding
	Save         key.Binding
	CloseTab     key.Binding
	Quit         key.Binding
	Find         key.Binding
	FindNext     key.Binding
	GotoLine     key.Binding
	ToggleTheme  key.Binding
	ToggleSyntax key.Binding
	NextTab      key.Binding
	PrevTab      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NewTab: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new tab"),
		),
		Open: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open file"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Find: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "find"),
		),
		FindNext: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "find next"),
		),
		GotoLine: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "go to line"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "cycle theme"),
		),
		ToggleSyntax: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "toggle syntax"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+right"),
			key.WithHelp("ctrl+→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+left", "shift+tab"),
			key.WithHelp("ctrl+←", "previous tab"),
		),
	}
}

// ShortHelp implements the bubbles help.KeyMap interface.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Open, k.Find, k.Quit}
}

// FullHelp implements the bubbles help.KeyMap interface.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewTab, k.Open, k.Save, k.CloseTab},
		{k.Find, k.FindNext, k.GotoLine},
		{k.NextTab, k.PrevTab, k.ToggleTheme, k.ToggleSyntax},
		{k.Quit},
	}
}
