// This defines a library for generating 2D mazes on a doubled grid lattice,
// where cells with two even coordinates are "rooms" and every other cell is a
// potential wall between rooms. Mazes are built one step at a time by one of
// the algorithms in this package, and the finished grid can be rasterized by
// any Renderer.
package maze

import (
	"fmt"
	"math"
	"time"
)

// The logical dimensions of a maze grid, in cells (not pixels).
type Geometry struct {
	Width  int
	Height int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// A zero-based position in the maze grid.
type Coordinate struct {
	X int
	Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// A relative position in the maze, where both X and Y must be in [0, 1). It
// is scaled to the grid size when creating a maze.
type Origin struct {
	X float64
	Y float64
}

// One of the four orthogonal directions.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// The order in which every walk over the grid visits neighbors.
var allDirections = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Unknown direction: %d", uint8(d))
}

// Returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	panic(fmt.Sprintf("Bad direction: %d", uint8(d)))
}

// Differentiates between cells that haven't been reached yet, cells that are
// permanently blocked, and cells that are part of the maze.
type CellType uint8

const (
	UndefinedCell CellType = iota
	WallCell
	PathCell
)

func (t CellType) String() string {
	switch t {
	case UndefinedCell:
		return "undefined"
	case WallCell:
		return "wall"
	case PathCell:
		return "path"
	}
	return fmt.Sprintf("Unknown CellType: %d", uint8(t))
}

// The state of a single grid cell. Distance is only meaningful for path
// cells. During generation it holds a raw step count (or, for Kruskal's
// algorithm, a component label). Once generation completes it is normalized
// to [0, 1].
type CellKind struct {
	Type     CellType
	Distance float64
}

var (
	UndefinedKind = CellKind{Type: UndefinedCell}
	WallKind      = CellKind{Type: WallCell}
)

// Returns a path CellKind with the given distance.
func PathKind(distance float64) CellKind {
	return CellKind{
		Type:     PathCell,
		Distance: distance,
	}
}

func (k CellKind) IsPath() bool {
	return k.Type == PathCell
}

func (k CellKind) IsWall() bool {
	return k.Type == WallCell
}

func (k CellKind) IsUndefined() bool {
	return k.Type == UndefinedCell
}

func (k CellKind) String() string {
	if k.Type == PathCell {
		return fmt.Sprintf("path(%g)", k.Distance)
	}
	return k.Type.String()
}

// Distance value used to mark path cells that a walk hasn't reached yet.
const unvisited = -1.0

// Holds the grid along with the metrics discovered while generating it. Create
// using NewMaze, then generate it using Generate or NewAlgorithm.
type Maze struct {
	geometry     Geometry
	grid         []CellKind
	verticalBias float64
	// The starting cell of the generation, always on an even coordinate.
	origin Coordinate
	// The cell holding the greatest distance found so far, and that distance.
	end    Coordinate
	length float64
	// Set once an algorithm has been bound to this maze, and once the maze
	// has been completed.
	bound     bool
	generated bool
	// The path from origin to end, if ComputeSolution has been called.
	solution []Coordinate
	// Used for GetInfo.
	algorithm      AlgorithmKind
	steps          int
	startTime      time.Time
	generationTime float64
}

// Allocates a new maze with every cell undefined. Returns an error if the
// geometry is empty or too large, if the bias isn't strictly between 0 and 1,
// or if the origin isn't in [0, 1) on both axes.
func NewMaze(g Geometry, verticalBias float64, origin Origin) (*Maze, error) {
	if (g.Width < 1) || (g.Height < 1) {
		return nil, fmt.Errorf("Width and height must be at least 1, got %s",
			g)
	}
	cellCount := g.Width * g.Height
	// Check for overflow.
	if (cellCount <= 0) || (cellCount/g.Width != g.Height) {
		return nil, fmt.Errorf("The maze's size was too big")
	}
	if math.IsNaN(verticalBias) || (verticalBias <= 0) ||
		(verticalBias >= 1) {
		return nil, fmt.Errorf("The vertical bias must be strictly between "+
			"0 and 1, got %f", verticalBias)
	}
	if !validOriginComponent(origin.X) || !validOriginComponent(origin.Y) {
		return nil, fmt.Errorf("The origin must be in [0, 1), got (%f, %f)",
			origin.X, origin.Y)
	}
	toReturn := &Maze{
		geometry:     g,
		grid:         make([]CellKind, cellCount),
		verticalBias: verticalBias,
	}
	toReturn.origin = toReturn.originToCoordinate(origin)
	toReturn.end = toReturn.origin
	return toReturn, nil
}

func validOriginComponent(v float64) bool {
	return !math.IsNaN(v) && (v >= 0) && (v < 1)
}

// Scales the relative origin to the grid, and rounds it down to an even
// coordinate so that it always lands on a room.
func (m *Maze) originToCoordinate(o Origin) Coordinate {
	x := int(o.X * float64(m.geometry.Width))
	y := int(o.Y * float64(m.geometry.Height))
	// Guards against rounding up to the size itself.
	x = min(x, m.geometry.Width-1)
	y = min(y, m.geometry.Height-1)
	return Coordinate{
		X: x &^ 1,
		Y: y &^ 1,
	}
}

func (m *Maze) Geometry() Geometry {
	return m.geometry
}

func (m *Maze) VerticalBias() float64 {
	return m.verticalBias
}

func (m *Maze) Origin() Coordinate {
	return m.origin
}

// Returns the path cell farthest from the origin.
func (m *Maze) End() Coordinate {
	return m.end
}

// Returns the distance from the origin to End(), in cells. This is the raw
// count, and is not affected by normalization.
func (m *Maze) Length() float64 {
	return m.length
}

// Returns true once an algorithm has run to completion on this maze.
func (m *Maze) Generated() bool {
	return m.generated
}

// Returns the path from the origin to the end, both included, computed by the
// last call to ComputeSolution. Returns nil if it was never computed.
func (m *Maze) Solution() []Coordinate {
	if m.solution == nil {
		return nil
	}
	toReturn := make([]Coordinate, len(m.solution))
	copy(toReturn, m.solution)
	return toReturn
}

// Returns true if the coordinate lies within the grid.
func (m *Maze) InBounds(c Coordinate) bool {
	return (c.X >= 0) && (c.Y >= 0) && (c.X < m.geometry.Width) &&
		(c.Y < m.geometry.Height)
}

// Returns the kind of the cell at c. Coordinates outside of the grid are
// reported as undefined, since they are never part of the maze.
func (m *Maze) CellKind(c Coordinate) CellKind {
	if !m.InBounds(c) {
		return UndefinedKind
	}
	return m.grid[m.index(c)]
}

// Returns the index of c in the grid. Panics if c is out of bounds, as
// writing outside the grid is always an internal error.
func (m *Maze) index(c Coordinate) int {
	if !m.InBounds(c) {
		panic(fmt.Sprintf("Internal error: coordinate %s outside of %s grid",
			c, m.geometry))
	}
	return c.Y*m.geometry.Width + c.X
}

// Returns the coordinate stored at the given grid index.
func (m *Maze) coordinate(index int) Coordinate {
	return Coordinate{
		X: index % m.geometry.Width,
		Y: index / m.geometry.Width,
	}
}

// Marks the cell as a wall. Does nothing if it already is one.
func (m *Maze) setWall(c Coordinate) {
	i := m.index(c)
	if m.grid[i].Type == WallCell {
		return
	}
	m.grid[i] = WallKind
}

// Marks the cell as a path with the given distance, overwriting any previous
// distance.
func (m *Maze) setPath(c Coordinate, distance float64) {
	m.grid[m.index(c)] = PathKind(distance)
}

// Returns the neighbor of c in the given direction. Returns false if the
// neighbor would be outside of the grid.
func (m *Maze) next(c Coordinate, d Direction) (Coordinate, bool) {
	switch d {
	case Up:
		c.Y--
	case Down:
		c.Y++
	case Left:
		c.X--
	case Right:
		c.X++
	default:
		panic(fmt.Sprintf("Bad direction: %d", uint8(d)))
	}
	if !m.InBounds(c) {
		return c, false
	}
	return c, true
}

// Like next, but jumps two cells, skipping over the wall slot between two
// rooms.
func (m *Maze) nextTwice(c Coordinate, d Direction) (Coordinate, bool) {
	n, ok := m.next(c, d)
	if !ok {
		return n, false
	}
	return m.next(n, d)
}

// Returns every in-bounds undefined neighbor of c.
func (m *Maze) undefinedAround(c Coordinate) []Coordinate {
	toReturn := make([]Coordinate, 0, 4)
	for _, d := range allDirections {
		n, ok := m.next(c, d)
		if !ok {
			continue
		}
		if m.grid[m.index(n)].Type == UndefinedCell {
			toReturn = append(toReturn, n)
		}
	}
	return toReturn
}

// Records the distance if it's the longest one seen so far.
func (m *Maze) observe(c Coordinate, distance float64) {
	if distance > m.length {
		m.length = distance
		m.end = c
	}
}

// Sets the distance of every path cell to unvisited.
func (m *Maze) clearPaths() {
	for i := range m.grid {
		if m.grid[i].Type == PathCell {
			m.grid[i].Distance = unvisited
		}
	}
}

// Converts every remaining undefined cell into a wall.
func (m *Maze) wallUpUndefined() {
	for i := range m.grid {
		if m.grid[i].Type == UndefinedCell {
			m.grid[i] = WallKind
		}
	}
}

// Sweeps the entire grid for the greatest distance, in case incremental
// tracking missed one. Ties keep the cell that was found first.
func (m *Maze) measure() {
	for i := range m.grid {
		if m.grid[i].Type != PathCell {
			continue
		}
		m.observe(m.coordinate(i), m.grid[i].Distance)
	}
}

// Divides every path distance by the maze's length, mapping them to [0, 1].
// A maze with zero length (a single cell) is left as-is.
func (m *Maze) normalize() {
	if m.length <= 0 {
		return
	}
	for i := range m.grid {
		if m.grid[i].Type == PathCell {
			m.grid[i].Distance /= m.length
		}
	}
}

// Shared by all algorithms once they run out of work.
func (m *Maze) finish(steps int) {
	m.wallUpUndefined()
	m.measure()
	m.normalize()
	m.generated = true
	m.steps = steps
	m.generationTime = time.Since(m.startTime).Seconds()
}

// Returns a human-readable string about the maze, for debugging.
func (m *Maze) GetInfo() string {
	if !m.generated {
		return fmt.Sprintf("%s grid maze, not generated, origin %s",
			m.geometry, m.origin)
	}
	return fmt.Sprintf("%s grid maze from %s to %s (length %.0f), generated "+
		"by %s in %d steps and %.03f seconds", m.geometry, m.origin, m.end,
		math.Ceil(m.length), m.algorithm, m.steps, m.generationTime)
}
