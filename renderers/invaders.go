package renderers

import (
	"image"
	"image/color"

	maze "github.com/yalue/gradient_maze"
)

const invaderTileSize = 7

// Draws each path cell as a small, randomly generated, mirror-symmetric
// "space invader" on the wall color. Walls are drawn as solid tiles.
type Invaders struct {
	Invader color.RGBA
	Wall    color.RGBA
	// Picks the shape of each invader.
	Random maze.RandomSource
	// The shape picked for each cell, so that redrawing a maze (as in an
	// animation) keeps every invader the same.
	patterns map[maze.Coordinate]uint16
}

func (v *Invaders) TileSize() int {
	return invaderTileSize
}

// Draws a random invader into the tile at c. Bit i*j of the random pattern
// decides whether the pixel at column i, row j (and its mirror image at
// column 6-i) is set.
func (v *Invaders) drawInvader(dst *image.RGBA, c maze.Coordinate) {
	fillTile(dst, c, invaderTileSize, v.Wall)
	pattern, ok := v.patterns[c]
	if !ok {
		if v.patterns == nil {
			v.patterns = make(map[maze.Coordinate]uint16)
		}
		pattern = uint16(v.Random.Intn(1 << 16))
		v.patterns[c] = pattern
	}
	left := c.X * invaderTileSize
	top := c.Y * invaderTileSize
	for i := 1; i < 4; i++ {
		for j := 1; j < 6; j++ {
			if (pattern & (1 << uint(i*j))) == 0 {
				continue
			}
			dst.SetRGBA(left+i, top+j, v.Invader)
			dst.SetRGBA(left+(invaderTileSize-1-i), top+j, v.Invader)
		}
	}
}

func (v *Invaders) DrawCell(dst *image.RGBA, m *maze.Maze, c maze.Coordinate,
	kind maze.CellKind) {
	if kind.IsPath() {
		v.drawInvader(dst, c)
		return
	}
	fillTile(dst, c, invaderTileSize, v.Wall)
}

func (v *Invaders) Palette() color.Palette {
	return color.Palette{v.Wall, v.Invader}
}
