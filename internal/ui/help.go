package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
)

// helpMarkdown lists every binding of the full help as a markdown table.
func helpMarkdown(k KeyMap) string {
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	b.WriteString("| key | action |\n")
	b.WriteString("| --- | --- |\n")
	for _, group := range k.FullHelp() {
		for _, kb := range group {
			writeHelpRow(&b, kb)
		}
	}
	b.WriteString("\nFilters: 0 all, 1 not started, 2 in progress, 3 done.\n")
	b.WriteString("Completed tasks cannot be edited until they are unchecked.\n")
	return b.String()
}

func writeHelpRow(b *strings.Builder, kb key.Binding) {
	h := kb.Help()
	if h.Key == "" {
		return
	}
	fmt.Fprintf(b, "| `%s` | %s |\n", h.Key, h.Desc)
}

// renderHelp falls back to the raw markdown when glamour fails.
func renderHelp(k KeyMap, style string) string {
	md := helpMarkdown(k)
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
