package maze

import (
	"fmt"
	"math"
	"strings"
)

// Selects what the distances of a finished maze's path cells represent.
type Gradient uint8

const (
	// Distance from the origin, divided by the maze's length.
	LengthGradient Gradient = iota
	// Logarithmic distance from the solution path. Set by ComputeSolution.
	SolutionGradient
)

func (g Gradient) String() string {
	switch g {
	case LengthGradient:
		return "length"
	case SolutionGradient:
		return "solution"
	}
	return fmt.Sprintf("Unknown Gradient: %d", uint8(g))
}

// Returns the gradient with the given name, ignoring case.
func ParseGradient(name string) (Gradient, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "length":
		return LengthGradient, nil
	case "solution":
		return SolutionGradient, nil
	}
	return LengthGradient, fmt.Errorf("Unknown gradient %q", name)
}

// Walks breadth-first from the origin until reaching the end, and returns
// the path between them, origin first. Marks every path cell it reaches with
// a distance of 0. All path cells must be unvisited beforehand.
func (m *Maze) findSolutionPath() ([]Coordinate, error) {
	// These will be -1 to indicate either uninitialized or the start of the
	// path.
	parentIndices := make([]int, len(m.grid))
	for i := range parentIndices {
		parentIndices[i] = -1
	}
	endIndex := m.index(m.end)
	queue := make([]int, 0, len(m.grid)/2)
	queue = append(queue, m.index(m.origin))
	m.grid[queue[0]].Distance = 0
	found := false
	for len(queue) != 0 {
		currentIndex := queue[0]
		queue = queue[1:]
		if currentIndex == endIndex {
			found = true
			break
		}
		current := m.coordinate(currentIndex)
		for _, d := range allDirections {
			n, ok := m.next(current, d)
			if !ok {
				continue
			}
			i := m.index(n)
			if (m.grid[i].Type != PathCell) ||
				(m.grid[i].Distance != unvisited) {
				continue
			}
			m.grid[i].Distance = 0
			parentIndices[i] = currentIndex
			queue = append(queue, i)
		}
	}
	if !found {
		return nil, fmt.Errorf("Internal error: failed to solve maze")
	}

	// Follow the chain of parent indices back from the end.
	var reversed []Coordinate
	for index := endIndex; index >= 0; index = parentIndices[index] {
		reversed = append(reversed, m.coordinate(index))
	}
	toReturn := make([]Coordinate, len(reversed))
	for i, c := range reversed {
		toReturn[len(reversed)-1-i] = c
	}
	return toReturn, nil
}

// Sets the distance of every unvisited path cell to its distance from the
// nearest cell with a distance of 0. Returns the greatest distance set.
func (m *Maze) measureBranches(sources []Coordinate) float64 {
	queue := make([]Coordinate, len(sources))
	copy(queue, sources)
	longest := 0.0
	for len(queue) != 0 {
		c := queue[0]
		queue = queue[1:]
		distance := m.CellKind(c).Distance + 1
		for _, d := range allDirections {
			n, ok := m.next(c, d)
			if !ok {
				continue
			}
			i := m.index(n)
			if (m.grid[i].Type != PathCell) ||
				(m.grid[i].Distance != unvisited) {
				continue
			}
			m.grid[i].Distance = distance
			if distance > longest {
				longest = distance
			}
			queue = append(queue, n)
		}
	}
	return longest
}

// Finds the path from the origin to the end of a generated maze, then
// rewrites every path distance as a gradient based on how far each cell is
// from that path. Cells on the path get a distance of 0, and the rest get
// log10(d) / log10(longest branch), so cells close to the solution stand out.
// Returns the solution path, origin first.
func (m *Maze) ComputeSolution() ([]Coordinate, error) {
	if !m.generated {
		return nil, fmt.Errorf("The maze must be generated before solving it")
	}
	saved := make([]CellKind, len(m.grid))
	copy(saved, m.grid)
	m.clearPaths()
	path, e := m.findSolutionPath()
	if e != nil {
		copy(m.grid, saved)
		return nil, e
	}
	m.clearPaths()
	for _, c := range path {
		m.setPath(c, 0)
	}
	longest := m.measureBranches(path)
	scale := math.Log10(longest)
	for i := range m.grid {
		cell := &(m.grid[i])
		if cell.Type != PathCell {
			continue
		}
		switch {
		case cell.Distance == unvisited:
			// Not connected to the solution at all, which only happens in a
			// malformed maze. Treat it as being as far away as possible.
			cell.Distance = 1
		case cell.Distance == 0:
			// On the solution itself. log10(0) is undefined, so leave it.
		case longest <= 1:
			cell.Distance = 1
		default:
			cell.Distance = math.Log10(cell.Distance) / scale
		}
	}
	m.solution = path
	return m.Solution(), nil
}
