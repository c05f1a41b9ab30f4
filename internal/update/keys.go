package update

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the global bindings of the checker screen
type KeyMap struct {
	Submit key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "verify authenticity"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp is rendered in the status bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.Quit}
}
