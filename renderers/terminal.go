package renderers

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	maze "github.com/yalue/gradient_maze"
)

// Prints a maze to a terminal, two character columns per cell, using the
// same colors as a Plain renderer.
type Terminal struct {
	PathStart color.RGBA
	PathEnd   color.RGBA
	Wall      color.RGBA
	// Styles are cached by shade, so there are at most gradientSteps + 1 of
	// them.
	styles map[string]lipgloss.Style
}

func (t *Terminal) style(c color.RGBA) lipgloss.Style {
	key := HexColor(c)
	if s, ok := t.styles[key]; ok {
		return s
	}
	if t.styles == nil {
		t.styles = make(map[string]lipgloss.Style)
	}
	s := lipgloss.NewStyle().Background(lipgloss.Color(key))
	t.styles[key] = s
	return s
}

// Returns the color for a cell, with path distances rounded to the nearest
// of gradientSteps shades.
func (t *Terminal) cellColor(kind maze.CellKind) color.RGBA {
	if !kind.IsPath() {
		return t.Wall
	}
	d := kind.Distance
	if !math.IsNaN(d) {
		d = math.Round(d*(gradientSteps-1)) / (gradientSteps - 1)
	}
	return Lerp(t.PathStart, t.PathEnd, d)
}

// Writes the whole maze, one line per row.
func (t *Terminal) Write(w io.Writer, m *maze.Maze) error {
	out := bufio.NewWriter(w)
	g := m.Geometry()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			kind := m.CellKind(maze.Coordinate{X: x, Y: y})
			_, e := out.WriteString(t.style(t.cellColor(kind)).Render("  "))
			if e != nil {
				return fmt.Errorf("Error writing maze preview: %w", e)
			}
		}
		if e := out.WriteByte('\n'); e != nil {
			return fmt.Errorf("Error writing maze preview: %w", e)
		}
	}
	return out.Flush()
}
