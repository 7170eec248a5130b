package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// itemColors maps catalog color tags to ANSI bright colors.
var itemColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("9"),
	"yellow": lipgloss.Color("11"),
	"blue":   lipgloss.Color("12"),
}

type styles struct {
	heading lipgloss.Style
	failure lipgloss.Style
	items   map[string]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	s := styles{
		heading: r.NewStyle().Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		items:   make(map[string]lipgloss.Style, len(itemColors)),
	}
	for tag, color := range itemColors {
		s.items[tag] = r.NewStyle().Foreground(color)
	}
	return s
}

func (s styles) item(tag string) (lipgloss.Style, bool) {
	style, ok := s.items[strings.ToLower(tag)]
	return style, ok
}
