package banner

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/seclab/labstatus/internal/model"
)

var namedColors = map[string]lipgloss.Color{
	"green":  lipgloss.Color("10"),
	"red":    lipgloss.Color("9"),
	"orange": lipgloss.Color("208"),
	"brown":  lipgloss.Color("130"),
	"purple": lipgloss.Color("129"),
	"yellow": lipgloss.Color("11"),
	"blue":   lipgloss.Color("12"),
	"cyan":   lipgloss.Color("14"),
	"pink":   lipgloss.Color("205"),
	"white":  lipgloss.Color("15"),
}

// ColorFor maps a status color name or #rrggbb value to a terminal color,
// falling back to purple.
func ColorFor(name string) lipgloss.Color {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := namedColors[name]; ok {
		return c
	}
	if isHexColor(name) {
		return lipgloss.Color(name)
	}
	return namedColors[model.DefaultColor]
}

func StyleFor(color string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ColorFor(color))
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return false
		}
	}
	return true
}

const legendMarkdown = "**any key** toggle · **f** fire · **c** coffee · **|** custom · **ctrl+c** quit"

// Legend renders the key help shown under the banner.
func Legend() (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(legendMarkdown)
	if err != nil {
		return "", fmt.Errorf("rendering legend: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
