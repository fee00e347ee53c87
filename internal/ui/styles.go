package ui

import (
	"github.com/charmbracelet/lipgloss"

	"todolist/internal/todo"
)

// Palette is the color scheme behind a theme.
type Palette struct {
	Name       string
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Primary    lipgloss.Color
	Highlight  lipgloss.Color
	Error      lipgloss.Color

	NotStarted lipgloss.Color
	InProgress lipgloss.Color
	Done       lipgloss.Color
}

// Nord palette, https://www.nordtheme.com/
var Nord = Palette{
	Name:       "nord",
	Foreground: lipgloss.Color("#ECEFF4"),
	Subtle:     lipgloss.Color("#4C566A"),
	Primary:    lipgloss.Color("#88C0D0"),
	Highlight:  lipgloss.Color("#3B4252"),
	Error:      lipgloss.Color("#BF616A"),
	NotStarted: lipgloss.Color("#EBCB8B"),
	InProgress: lipgloss.Color("#88C0D0"),
	Done:       lipgloss.Color("#A3BE8C"),
}

// Plain has no colors at all.
var Plain = Palette{Name: "plain"}

type Styles struct {
	Title        lipgloss.Style
	Filter       lipgloss.Style
	FilterActive lipgloss.Style
	Row          lipgloss.Style
	RowSelected  lipgloss.Style
	RowDone      lipgloss.Style
	Status       map[todo.Status]lipgloss.Style
	StatusLine   lipgloss.Style
	Error        lipgloss.Style
	Panel        lipgloss.Style
	// GlamourStyle is the markdown style used for the help overlay.
	GlamourStyle string
}

func PaletteByName(name string) Palette {
	if name == Plain.Name {
		return Plain
	}
	return Nord
}

func NewStyles(p Palette) Styles {
	s := Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Filter:       lipgloss.NewStyle().Foreground(p.Subtle).Padding(0, 1),
		FilterActive: lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Underline(true).Padding(0, 1),
		Row:          lipgloss.NewStyle().Foreground(p.Foreground),
		RowSelected:  lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Background(p.Highlight),
		RowDone:      lipgloss.NewStyle().Foreground(p.Subtle).Strikethrough(true),
		Status: map[todo.Status]lipgloss.Style{
			todo.StatusNotStarted: lipgloss.NewStyle().Foreground(p.NotStarted),
			todo.StatusInProgress: lipgloss.NewStyle().Foreground(p.InProgress),
			todo.StatusDone:       lipgloss.NewStyle().Foreground(p.Done),
		},
		StatusLine:   lipgloss.NewStyle().Foreground(p.Subtle),
		Error:        lipgloss.NewStyle().Foreground(p.Error),
		Panel:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Subtle).Padding(0, 1),
		GlamourStyle: "dark",
	}
	if p.Name == Plain.Name {
		s.FilterActive = lipgloss.NewStyle().Bold(true).Padding(0, 1)
		s.RowDone = lipgloss.NewStyle()
		s.GlamourStyle = "notty"
	}
	return s
}
