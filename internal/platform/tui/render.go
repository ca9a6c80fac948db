package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// cellColors are the terminal color codes behind each board color.
// An empty code keeps the terminal's default foreground.
var cellColors = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightCyan:    "14",
	core.ColorBrightMagenta: "13",
	core.ColorGray:          "245",
}

// Palette holds the styles for one output. Styles come from a renderer so an
// SSH session renders with its client's color profile, not the server's.
type Palette struct {
	cells  [len(cellColors)]lipgloss.Style
	status lipgloss.Style
	alert  lipgloss.Style
}

// NewPalette builds a palette on the given renderer.
func NewPalette(r *lipgloss.Renderer) *Palette {
	p := &Palette{
		status: r.NewStyle().Foreground(lipgloss.Color("241")),
		alert:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
	for c, code := range cellColors {
		st := r.NewStyle()
		if code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		p.cells[c] = st
	}
	p.cells[core.ColorBrightCyan] = p.cells[core.ColorBrightCyan].Bold(true)
	return p
}

var defaultPalette = NewPalette(lipgloss.DefaultRenderer())

// DefaultPalette returns the palette for the local terminal.
func DefaultPalette() *Palette {
	return defaultPalette
}

func (p *Palette) cell(c core.Color) lipgloss.Style {
	if int(c) < len(p.cells) {
		return p.cells[c]
	}
	return p.cells[core.ColorDefault]
}

// Screen renders a screen buffer row by row. Each span of equally colored
// cells is styled once, so a row costs one escape sequence per color change.
func (p *Palette) Screen(s *core.Screen) string {
	rows := make([]string, s.Height())
	span := make([]rune, 0, s.Width())

	for y := range rows {
		var row strings.Builder
		color := core.ColorDefault
		span = span[:0]

		for x := range s.Width() {
			c := s.GetCell(x, y)
			if c.Color != color && len(span) > 0 {
				row.WriteString(p.cell(color).Render(string(span)))
				span = span[:0]
			}
			color = c.Color
			span = append(span, c.Rune)
		}
		if len(span) > 0 {
			row.WriteString(p.cell(color).Render(string(span)))
		}
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n")
}
