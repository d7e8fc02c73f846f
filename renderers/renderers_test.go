package renderers

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	maze "github.com/yalue/gradient_maze"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func generatedMaze(t *testing.T, w, h int) *maze.Maze {
	t.Helper()
	m, e := maze.NewMaze(maze.Geometry{Width: w, Height: h}, 0.5,
		maze.Origin{})
	if e != nil {
		t.Fatalf("Failed creating maze: %s", e)
	}
	_, e = maze.Generate(maze.Backtracker, m, maze.NewRandomSource(21))
	if e != nil {
		t.Fatalf("Failed generating maze: %s", e)
	}
	return m
}

func TestLerp(t *testing.T) {
	if got := Lerp(black, white, 0); got != black {
		t.Errorf("expected the start color at 0, got %v", got)
	}
	if got := Lerp(black, white, 1); got != white {
		t.Errorf("expected the end color at 1, got %v", got)
	}
	if got := Lerp(black, white, 0.5); got.R != 128 {
		t.Errorf("expected a mid gray at 0.5, got %v", got)
	}
	if got := Lerp(red, blue, 7); got != blue {
		t.Errorf("expected values above 1 to clamp, got %v", got)
	}
	if got := Lerp(red, blue, -1); got != red {
		t.Errorf("expected values below 0 to clamp, got %v", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0000", red},
		{"0000ff", blue},
		{"#FFF", white},
		{" #000000 ", black},
	}
	for _, tc := range tests {
		got, e := ParseHexColor(tc.in)
		if (e != nil) || (got != tc.want) {
			t.Errorf("%q: expected %v, got %v (%v)", tc.in, tc.want, got, e)
		}
	}
	for _, bad := range []string{"", "#12345", "#gggggg", "red"} {
		if _, e := ParseHexColor(bad); e == nil {
			t.Errorf("expected an error for %q", bad)
		}
	}
	if HexColor(red) != "#ff0000" {
		t.Errorf("unexpected hex string %s", HexColor(red))
	}
}

func TestPlainDrawsGradient(t *testing.T) {
	m := generatedMaze(t, 9, 9)
	p := &Plain{PathStart: white, PathEnd: red, Wall: black}
	pic := maze.Draw(m, p)
	if pic.Bounds() != image.Rect(0, 0, 36, 36) {
		t.Fatalf("unexpected bounds %s", pic.Bounds())
	}
	origin := m.Origin()
	if got := pic.RGBAAt(origin.X*4+2, origin.Y*4+2); got != white {
		t.Errorf("expected the origin in the start color, got %v", got)
	}
	end := m.End()
	if got := pic.RGBAAt(end.X*4+2, end.Y*4+2); got != red {
		t.Errorf("expected the end in the end color, got %v", got)
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if !m.CellKind(maze.Coordinate{X: x, Y: y}).IsWall() {
				continue
			}
			if got := pic.RGBAAt(x*4, y*4); got != black {
				t.Fatalf("expected a wall at (%d, %d), got %v", x, y, got)
			}
		}
	}
}

func TestPlainPalette(t *testing.T) {
	p := &Plain{PathStart: white, PathEnd: white, Wall: black}
	if len(p.Palette()) != 2 {
		t.Errorf("expected a two-color palette, got %d", len(p.Palette()))
	}
	p.PathEnd = red
	palette := p.Palette()
	if len(palette) != gradientSteps+1 {
		t.Fatalf("expected %d colors, got %d", gradientSteps+1, len(palette))
	}
	if (palette[0] != color.Color(black)) ||
		(palette[len(palette)-1] != color.Color(red)) {
		t.Errorf("unexpected palette ends: %v, %v", palette[0],
			palette[len(palette)-1])
	}
}

func TestInvadersAreSymmetric(t *testing.T) {
	m := generatedMaze(t, 5, 5)
	v := &Invaders{Invader: white, Wall: black,
		Random: maze.NewRandomSource(3)}
	pic := maze.Draw(m, v)
	origin := m.Origin()
	left := origin.X * invaderTileSize
	top := origin.Y * invaderTileSize
	for j := 0; j < invaderTileSize; j++ {
		for i := 0; i < invaderTileSize; i++ {
			a := pic.RGBAAt(left+i, top+j)
			b := pic.RGBAAt(left+invaderTileSize-1-i, top+j)
			if a != b {
				t.Fatalf("invader not symmetric at (%d, %d)", i, j)
			}
			edge := (i == 0) || (j == 0) || (i == invaderTileSize-1) ||
				(j == invaderTileSize-1)
			if edge && (a != black) {
				t.Fatalf("expected the invader's frame in the wall color")
			}
		}
	}
}

func TestMosaicUsesItsTiles(t *testing.T) {
	m := generatedMaze(t, 5, 5)
	s := &Mosaic{Random: maze.NewRandomSource(4)}
	pic := maze.Draw(m, s)
	origin := m.Origin()
	corner := pic.RGBAAt(origin.X*mosaicTileSize, origin.Y*mosaicTileSize)
	if corner != gray(254) {
		t.Errorf("expected a light tile for a path, got %v", corner)
	}
	// Everything below and right of the edge uses the tile's fill shade,
	// including the center.
	left := origin.X * mosaicTileSize
	top := origin.Y * mosaicTileSize
	fill := pic.RGBAAt(left+1, top+1)
	isFill := false
	for _, tile := range lightTiles {
		if tile[1] == fill {
			isFill = true
		}
	}
	if !isFill {
		t.Errorf("expected a light fill shade, got %v", fill)
	}
	for j := 1; j < mosaicTileSize; j++ {
		for i := 1; i < mosaicTileSize; i++ {
			if got := pic.RGBAAt(left+i, top+j); got != fill {
				t.Fatalf("pixel (%d, %d) of the tile is %v, expected %v", i,
					j, got, fill)
			}
		}
	}
	s.Inverted = true
	pic = maze.Draw(m, s)
	corner = pic.RGBAAt(origin.X*mosaicTileSize, origin.Y*mosaicTileSize)
	if corner != gray(31) {
		t.Errorf("expected a dark tile for an inverted path, got %v", corner)
	}
	if len(s.Palette()) != 30 {
		t.Errorf("expected 30 palette entries, got %d", len(s.Palette()))
	}
}

func TestNewStyle(t *testing.T) {
	options := StyleOptions{
		PathStart: white,
		PathEnd:   red,
		Wall:      black,
		Random:    maze.NewRandomSource(1),
	}
	for _, name := range StyleNames() {
		r, e := NewStyle(strings.ToUpper(name), options)
		if e != nil {
			t.Fatalf("Failed creating style %s: %s", name, e)
		}
		if r.TileSize() <= 0 {
			t.Errorf("style %s has tile size %d", name, r.TileSize())
		}
	}
	if _, e := NewStyle("cubist", options); e == nil {
		t.Errorf("expected an error for an unknown style")
	}
	options.Random = nil
	if _, e := NewStyle("mosaic", options); e == nil {
		t.Errorf("expected an error for mosaic without a random source")
	}
}

func TestTerminalWritesEveryRow(t *testing.T) {
	m := generatedMaze(t, 7, 5)
	term := &Terminal{PathStart: white, PathEnd: red, Wall: black}
	var out bytes.Buffer
	if e := term.Write(&out, m); e != nil {
		t.Fatalf("Failed writing preview: %s", e)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if len(term.styles) > gradientSteps+1 {
		t.Errorf("expected at most %d cached styles, got %d",
			gradientSteps+1, len(term.styles))
	}
}

func TestRandomStylesRedrawTheSame(t *testing.T) {
	m := generatedMaze(t, 9, 7)
	styles := []maze.Renderer{
		&Invaders{Invader: white, Wall: black,
			Random: maze.NewRandomSource(8)},
		&Mosaic{Random: maze.NewRandomSource(9)},
	}
	for _, r := range styles {
		first := maze.Draw(m, r)
		second := maze.Draw(m, r)
		if !bytes.Equal(first.Pix, second.Pix) {
			t.Errorf("%T drew a different image the second time", r)
		}
	}
}
