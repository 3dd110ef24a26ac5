package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// colorStyles maps core.Color to lipgloss styles for renderer r.
func colorStyles(r *lipgloss.Renderer) map[core.Color]lipgloss.Style {
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return map[core.Color]lipgloss.Style{
		core.ColorDefault:       r.NewStyle(),
		core.ColorRed:           fg("1"),
		core.ColorGreen:         fg("2"),
		core.ColorYellow:        fg("3"),
		core.ColorBlue:          fg("4"),
		core.ColorMagenta:       fg("5"),
		core.ColorCyan:          fg("6"),
		core.ColorWhite:         fg("7"),
		core.ColorBrightRed:     fg("9"),
		core.ColorBrightGreen:   fg("10"),
		core.ColorBrightYellow:  fg("11"),
		core.ColorBrightBlue:    fg("12"),
		core.ColorBrightMagenta: fg("13"),
		core.ColorBrightCyan:    fg("14"),
		core.ColorBrightWhite:   fg("15"),
		core.ColorOrange:        fg("208"),
		core.ColorGray:          fg("245"),
		core.ColorDarkGray:      fg("237"),
	}
}

// Renderer converts Screen buffers to styled strings.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
}

// NewRenderer creates a renderer bound to a lipgloss renderer, so SSH
// sessions get color detection for their own terminal.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Renderer{styles: colorStyles(r)}
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := r.styles[startColor]
			if !ok {
				style = r.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
