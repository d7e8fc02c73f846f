package maze

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// Returns the number of path cells in the maze.
func (m *Maze) PathCount() int {
	count := 0
	for i := range m.grid {
		if m.grid[i].Type == PathCell {
			count++
		}
	}
	return count
}

// Returns the number of pairs of orthogonally adjacent path cells. In a
// perfect maze this is exactly one less than PathCount.
func (m *Maze) Openings() int {
	count := 0
	for i := range m.grid {
		if m.grid[i].Type != PathCell {
			continue
		}
		c := m.coordinate(i)
		// Only look right and down so that every pair is counted once.
		for _, d := range []Direction{Right, Down} {
			n, ok := m.next(c, d)
			if ok && m.CellKind(n).IsPath() {
				count++
			}
		}
	}
	return count
}

// Checks that the maze is a perfect maze: no undefined cells remain, the
// origin is part of the maze, every path cell can be reached from every other
// one, and there is exactly one way to do so. Returns nil if all of these
// hold.
func (m *Maze) Validate() error {
	for i := range m.grid {
		if m.grid[i].Type == UndefinedCell {
			return fmt.Errorf("Cell %s is still undefined", m.coordinate(i))
		}
	}
	if !m.CellKind(m.origin).IsPath() {
		return fmt.Errorf("The origin %s is not part of the maze", m.origin)
	}
	// Each path cell starts in its own set, and every opening joins two sets.
	// An opening between two cells already in the same set closes a cycle.
	elements := make([]*disjoint.Element, len(m.grid))
	for i := range m.grid {
		if m.grid[i].Type == PathCell {
			elements[i] = disjoint.NewElement()
		}
	}
	for i := range m.grid {
		if elements[i] == nil {
			continue
		}
		c := m.coordinate(i)
		for _, d := range []Direction{Right, Down} {
			n, ok := m.next(c, d)
			if !ok {
				continue
			}
			other := elements[m.index(n)]
			if other == nil {
				continue
			}
			if elements[i].Find() == other.Find() {
				return fmt.Errorf("The maze contains a cycle through %s and "+
					"%s", c, n)
			}
			disjoint.Union(elements[i], other)
		}
	}
	root := elements[m.index(m.origin)].Find()
	for i := range elements {
		if (elements[i] != nil) && (elements[i].Find() != root) {
			return fmt.Errorf("Cell %s can't be reached from the origin",
				m.coordinate(i))
		}
	}
	return nil
}
