package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding of the program. Form bindings apply while a modal or
// the destination editor has focus; the rest apply in browse mode.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Settings   key.Binding
	Theme      key.Binding
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	AddLine    key.Binding
	RemoveLine key.Binding
	NextItem   key.Binding
	PrevItem   key.Binding
	Packaging  key.Binding
	Express    key.Binding
	Submit     key.Binding
	Help       key.Binding
	Quit       key.Binding

	NextField key.Binding
	PrevField key.Binding
	Save      key.Binding
	Cancel    key.Binding
	FormTheme key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "qty -1")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "qty +1")),
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Settings:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		AddLine:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "add line")),
		RemoveLine: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "remove line")),
		NextItem:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next item")),
		PrevItem:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev item")),
		Packaging:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "packaging")),
		Express:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "express")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "quote")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Save:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		FormTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Add, k.Edit, k.Delete, k.Submit, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Add, k.Edit, k.Delete, k.Settings, k.Theme},
		{k.AddLine, k.RemoveLine, k.PrevItem, k.NextItem, k.Left, k.Right},
		{k.Packaging, k.Express, k.Submit, k.Help, k.Quit},
	}
}

// formKeyMap is the help shown while a form has focus.
type formKeyMap struct {
	keys keyMap
}

func (f formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{f.keys.NextField, f.keys.PrevField, f.keys.Save, f.keys.Cancel, f.keys.FormTheme}
}

func (f formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{f.ShortHelp()}
}
