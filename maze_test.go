package maze

import (
	"math"
	"testing"
)

func mustMaze(t *testing.T, w, h int, bias float64, origin Origin) *Maze {
	t.Helper()
	m, e := NewMaze(Geometry{Width: w, Height: h}, bias, origin)
	if e != nil {
		t.Fatalf("Failed creating %dx%d maze: %s", w, h, e)
	}
	return m
}

func TestNewMazeRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		g      Geometry
		bias   float64
		origin Origin
	}{
		{"zero width", Geometry{0, 5}, 0.5, Origin{}},
		{"zero height", Geometry{5, 0}, 0.5, Origin{}},
		{"negative width", Geometry{-3, 5}, 0.5, Origin{}},
		{"overflow", Geometry{math.MaxInt, 3}, 0.5, Origin{}},
		{"bias zero", Geometry{5, 5}, 0, Origin{}},
		{"bias one", Geometry{5, 5}, 1, Origin{}},
		{"bias NaN", Geometry{5, 5}, math.NaN(), Origin{}},
		{"origin x one", Geometry{5, 5}, 0.5, Origin{X: 1}},
		{"origin y negative", Geometry{5, 5}, 0.5, Origin{Y: -0.1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, e := NewMaze(tc.g, tc.bias, tc.origin)
			if e == nil {
				t.Fatalf("expected an error, got maze %s", m.GetInfo())
			}
		})
	}
}

func TestNewMazeStartsUndefined(t *testing.T) {
	m := mustMaze(t, 7, 4, 0.5, Origin{})
	for y := 0; y < 4; y++ {
		for x := 0; x < 7; x++ {
			kind := m.CellKind(Coordinate{x, y})
			if !kind.IsUndefined() {
				t.Fatalf("expected (%d, %d) to be undefined, got %s", x, y,
					kind)
			}
		}
	}
	if m.Generated() {
		t.Fatalf("a new maze must not be marked as generated")
	}
	if m.Solution() != nil {
		t.Fatalf("a new maze must not have a solution")
	}
}

func TestOriginRoundsDownToEven(t *testing.T) {
	tests := []struct {
		w, h   int
		origin Origin
		want   Coordinate
	}{
		{5, 5, Origin{0, 0}, Coordinate{0, 0}},
		{10, 10, Origin{0.35, 0.55}, Coordinate{2, 4}},
		{11, 9, Origin{0.99, 0.99}, Coordinate{10, 8}},
		{1, 1, Origin{0.9, 0.9}, Coordinate{0, 0}},
		{4, 4, Origin{0.5, 0.74}, Coordinate{2, 2}},
	}
	for _, tc := range tests {
		m := mustMaze(t, tc.w, tc.h, 0.5, tc.origin)
		if m.Origin() != tc.want {
			t.Errorf("%dx%d origin %v: expected %s, got %s", tc.w, tc.h,
				tc.origin, tc.want, m.Origin())
		}
		if m.End() != m.Origin() {
			t.Errorf("expected the end to start at the origin, got %s",
				m.End())
		}
	}
}

func TestCellKindOutOfBounds(t *testing.T) {
	m := mustMaze(t, 3, 3, 0.5, Origin{})
	for i := range m.grid {
		m.grid[i] = WallKind
	}
	outside := []Coordinate{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}}
	for _, c := range outside {
		if !m.CellKind(c).IsUndefined() {
			t.Fatalf("expected %s to be undefined, got %s", c, m.CellKind(c))
		}
	}
}

func TestCellKindIdempotent(t *testing.T) {
	m := mustMaze(t, 9, 9, 0.5, Origin{})
	if _, e := Generate(Prim, m, NewRandomSource(3)); e != nil {
		t.Fatalf("Failed generating maze: %s", e)
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			c := Coordinate{x, y}
			if m.CellKind(c) != m.CellKind(c) {
				t.Fatalf("cell kind of %s changed between calls", c)
			}
		}
	}
}

func TestNeighbors(t *testing.T) {
	m := mustMaze(t, 3, 2, 0.5, Origin{})
	corner := Coordinate{0, 0}
	if _, ok := m.next(corner, Up); ok {
		t.Errorf("expected no neighbor above the top-left corner")
	}
	if _, ok := m.next(corner, Left); ok {
		t.Errorf("expected no neighbor left of the top-left corner")
	}
	if n, ok := m.next(corner, Right); !ok || (n != Coordinate{1, 0}) {
		t.Errorf("expected (1, 0) to the right, got %s, %v", n, ok)
	}
	if n, ok := m.next(corner, Down); !ok || (n != Coordinate{0, 1}) {
		t.Errorf("expected (0, 1) below, got %s, %v", n, ok)
	}
	if n, ok := m.nextTwice(corner, Right); !ok || (n != Coordinate{2, 0}) {
		t.Errorf("expected (2, 0) two cells right, got %s, %v", n, ok)
	}
	if _, ok := m.nextTwice(corner, Down); ok {
		t.Errorf("expected nothing two cells below in a 2-high grid")
	}
	m.setPath(Coordinate{1, 0}, 0)
	around := m.undefinedAround(Coordinate{1, 1})
	if len(around) != 2 {
		t.Fatalf("expected 2 undefined neighbors, got %v", around)
	}
}

func TestSetWallAndPath(t *testing.T) {
	m := mustMaze(t, 2, 2, 0.5, Origin{})
	c := Coordinate{1, 1}
	m.setWall(c)
	m.setWall(c)
	if !m.CellKind(c).IsWall() {
		t.Fatalf("expected a wall, got %s", m.CellKind(c))
	}
	m.setPath(Coordinate{0, 1}, 3)
	m.setPath(Coordinate{0, 1}, 4)
	if got := m.CellKind(Coordinate{0, 1}); got != PathKind(4) {
		t.Fatalf("expected path(4), got %s", got)
	}
}

func TestIndexPanicsOutOfBounds(t *testing.T) {
	m := mustMaze(t, 2, 2, 0.5, Origin{})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected writing outside the grid to panic")
		}
	}()
	m.setPath(Coordinate{2, 0}, 1)
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range allDirections {
		if d.Opposite().Opposite() != d {
			t.Errorf("opposite of opposite of %s isn't %s", d, d)
		}
		if d.Opposite() == d {
			t.Errorf("%s is its own opposite", d)
		}
	}
}

func TestNormalizeSingleCell(t *testing.T) {
	m := mustMaze(t, 1, 1, 0.5, Origin{})
	m.setPath(m.origin, 0)
	m.finish(0)
	if got := m.CellKind(m.origin); got != PathKind(0) {
		t.Fatalf("expected the only cell to stay at path(0), got %s", got)
	}
}
