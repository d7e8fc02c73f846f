package renderers

import (
	"image"
	"image/color"

	maze "github.com/yalue/gradient_maze"
)

const mosaicTileSize = 5

// Each tile is drawn with a top and left edge color and a fill color for the
// rest. The third shade is only part of the animation palette.
type mosaicTile [3]color.RGBA

func gray(v uint8) color.RGBA {
	return color.RGBA{v, v, v, 255}
}

var darkTiles = [5]mosaicTile{
	{gray(31), color.RGBA{112, 112, 122, 255}, gray(92)},
	{gray(31), gray(95), gray(79)},
	{gray(31), gray(85), gray(71)},
	{gray(31), gray(63), gray(55)},
	{gray(31), gray(49), gray(44)},
}

var lightTiles = [5]mosaicTile{
	{gray(254), gray(199), gray(210)},
	{gray(254), gray(206), gray(220)},
	{gray(254), gray(216), gray(230)},
	{gray(254), gray(225), gray(240)},
	{gray(254), gray(240), gray(245)},
}

// Draws the maze as a mosaic of beveled gray tiles, each shade picked at
// random from a light set for paths and a dark set for walls. Inverted swaps
// the two sets.
type Mosaic struct {
	Inverted bool
	Random   maze.RandomSource
	// The shade picked for each cell. A cell keeps its shade when redrawn,
	// even if it changes from a wall to a path.
	shades map[maze.Coordinate]int
}

func (s *Mosaic) TileSize() int {
	return mosaicTileSize
}

func drawMosaicTile(dst *image.RGBA, c maze.Coordinate, t *mosaicTile) {
	left := c.X * mosaicTileSize
	top := c.Y * mosaicTileSize
	for j := 0; j < mosaicTileSize; j++ {
		for i := 0; i < mosaicTileSize; i++ {
			shade := t[1]
			if (i == 0) || (j == 0) {
				shade = t[0]
			}
			dst.SetRGBA(left+i, top+j, shade)
		}
	}
}

func (s *Mosaic) DrawCell(dst *image.RGBA, m *maze.Maze, c maze.Coordinate,
	kind maze.CellKind) {
	tiles := &darkTiles
	if kind.IsPath() != s.Inverted {
		tiles = &lightTiles
	}
	shade, ok := s.shades[c]
	if !ok {
		if s.shades == nil {
			s.shades = make(map[maze.Coordinate]int)
		}
		shade = s.Random.Intn(len(tiles))
		s.shades[c] = shade
	}
	drawMosaicTile(dst, c, &(tiles[shade]))
}

func (s *Mosaic) Palette() color.Palette {
	toReturn := make(color.Palette, 0, 3*(len(darkTiles)+len(lightTiles)))
	for _, set := range [][5]mosaicTile{darkTiles, lightTiles} {
		for _, t := range set {
			for _, shade := range t {
				toReturn = append(toReturn, shade)
			}
		}
	}
	return toReturn
}
