package maze

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/yalue/image_utils"
)

// Draws the cells of a maze. Implementations only see a maze through the
// cell kinds they are given, and each cell occupies a square tile of
// TileSize() pixels.
type Renderer interface {
	// The width and height of a single cell, in pixels.
	TileSize() int
	// Draws the tile for the cell at c into dst. The tile's top-left pixel
	// is at (c.X * TileSize(), c.Y * TileSize()).
	DrawCell(dst *image.RGBA, m *Maze, c Coordinate, kind CellKind)
	// The colors used when drawing animation frames. Must not be empty.
	Palette() color.Palette
}

// Returns the bounds of an image holding the entire maze.
func ImageBounds(m *Maze, r Renderer) image.Rectangle {
	tile := r.TileSize()
	return image.Rect(0, 0, m.geometry.Width*tile, m.geometry.Height*tile)
}

// Returns the pixel rectangle covered by the cell at c.
func TileBounds(c Coordinate, tileSize int) image.Rectangle {
	return image.Rect(c.X*tileSize, c.Y*tileSize, (c.X+1)*tileSize,
		(c.Y+1)*tileSize)
}

// Rasterizes the maze, asking the renderer to draw each cell in turn.
func Draw(m *Maze, r Renderer) *image.RGBA {
	toReturn := image.NewRGBA(ImageBounds(m, r))
	for y := 0; y < m.geometry.Height; y++ {
		for x := 0; x < m.geometry.Width; x++ {
			c := Coordinate{X: x, Y: y}
			r.DrawCell(toReturn, m, c, m.CellKind(c))
		}
	}
	return toReturn
}

// Rasterizes the maze like Draw, then maps every pixel to the closest color
// in the renderer's palette, for use as an animation frame.
func DrawFrame(m *Maze, r Renderer) *image.Paletted {
	pic := Draw(m, r)
	bounds := pic.Bounds()
	toReturn := image.NewPaletted(bounds, r.Palette())
	draw.Draw(toReturn, bounds, pic, bounds.Min, draw.Src)
	return toReturn
}

// Returns a new image, consisting of the given image surrounded by a border
// with the given width in pixels and the given color. Returns pic unchanged
// if width isn't positive.
func AddImageBorder(pic image.Image, width int, fill color.Color) image.Image {
	if width <= 0 {
		return pic
	}
	return image_utils.AddImageBorder(pic, fill, width)
}
