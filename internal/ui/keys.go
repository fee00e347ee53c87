package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"todolist/internal/config"
)

// KeyMap is the set of bindings built from the configured keymap.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Add        key.Binding
	Edit       key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	StatusNext key.Binding
	StatusPrev key.Binding
	FilterNext key.Binding
	FilterPrev key.Binding
	FilterJump key.Binding
	Yank       key.Binding
	Help       key.Binding
	Quit       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
}

func NewKeyMap(k config.Keymap) KeyMap {
	return KeyMap{
		Up:         binding("up", k.Up, "up"),
		Down:       binding("down", k.Down, "down"),
		Add:        binding("add", k.Add),
		Edit:       binding("edit", k.Edit),
		Toggle:     binding("toggle done", k.Toggle),
		Delete:     binding("delete", k.Delete),
		StatusNext: binding("next status", k.StatusNext),
		StatusPrev: binding("prev status", k.StatusPrev),
		FilterNext: binding("next filter", k.FilterNext),
		FilterPrev: binding("prev filter", k.FilterPrev),
		FilterJump: key.NewBinding(
			key.WithKeys("0", "1", "2", "3"),
			key.WithHelp("0-3", "pick filter"),
		),
		Yank:    binding("copy text", k.Yank),
		Help:    binding("help", k.Help),
		Quit:    binding("quit", k.Quit, "ctrl+c"),
		Confirm: binding("confirm", k.Confirm),
		Cancel:  binding("cancel", k.Cancel),
	}
}

// binding uses the first key as the help label.
func binding(desc string, keys ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(displayKey(keys[0]), desc),
	)
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.StatusNext, k.FilterNext, k.Delete, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Edit, k.Toggle, k.Delete, k.Yank},
		{k.StatusNext, k.StatusPrev},
		{k.FilterNext, k.FilterPrev, k.FilterJump},
		{k.Confirm, k.Cancel, k.Help, k.Quit},
	}
}
