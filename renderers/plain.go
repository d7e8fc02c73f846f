package renderers

import (
	"image"
	"image/color"
	"image/draw"

	maze "github.com/yalue/gradient_maze"
)

// The number of shades between the start and end path colors in a Plain
// renderer's animation palette.
const gradientSteps = 32

// Draws every cell as a solid square. Path cells are shaded between PathStart
// and PathEnd by their distance, everything else uses Wall.
type Plain struct {
	PathStart color.RGBA
	PathEnd   color.RGBA
	Wall      color.RGBA
}

func (p *Plain) TileSize() int {
	return 4
}

func (p *Plain) DrawCell(dst *image.RGBA, m *maze.Maze, c maze.Coordinate,
	kind maze.CellKind) {
	fill := p.Wall
	if kind.IsPath() {
		fill = Lerp(p.PathStart, p.PathEnd, kind.Distance)
	}
	fillTile(dst, c, p.TileSize(), fill)
}

func (p *Plain) Palette() color.Palette {
	if p.PathStart == p.PathEnd {
		return color.Palette{p.Wall, p.PathStart}
	}
	toReturn := make(color.Palette, 0, gradientSteps+1)
	toReturn = append(toReturn, p.Wall)
	for i := 0; i < gradientSteps; i++ {
		t := float64(i) / float64(gradientSteps-1)
		toReturn = append(toReturn, Lerp(p.PathStart, p.PathEnd, t))
	}
	return toReturn
}

// Fills the entire tile for the cell at c with a single color.
func fillTile(dst *image.RGBA, c maze.Coordinate, tileSize int,
	fill color.RGBA) {
	draw.Draw(dst, maze.TileBounds(c, tileSize), &image.Uniform{fill},
		image.Point{}, draw.Src)
}
