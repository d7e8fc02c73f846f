package maze

import (
	"fmt"
	"strings"
	"time"
)

// Selects which algorithm builds a maze.
type AlgorithmKind uint8

const (
	Prim AlgorithmKind = iota
	Kruskal
	Backtracker
)

func (k AlgorithmKind) String() string {
	switch k {
	case Prim:
		return "prim"
	case Kruskal:
		return "kruskal"
	case Backtracker:
		return "backtracker"
	}
	return fmt.Sprintf("Unknown AlgorithmKind: %d", uint8(k))
}

// Returns every supported algorithm.
func AlgorithmKinds() []AlgorithmKind {
	return []AlgorithmKind{Prim, Kruskal, Backtracker}
}

// Returns the algorithm with the given name, ignoring case.
func ParseAlgorithmKind(name string) (AlgorithmKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range AlgorithmKinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return Prim, fmt.Errorf("Unknown algorithm %q", name)
}

// A maze generation algorithm, advanced one step at a time. The algorithm has
// exclusive use of its maze until Step returns true.
type Algorithm interface {
	// Advances the generation by one step. Returns true once the maze is
	// complete, after which further calls do nothing and return true.
	Step() bool
	// Returns the number of steps taken so far, not counting the final call
	// that completed the maze.
	Steps() int
	Kind() AlgorithmKind
}

// Creates an algorithm of the given kind, bound to the maze. The maze must be
// freshly allocated; a maze can only be generated once.
func NewAlgorithm(kind AlgorithmKind, m *Maze, rng RandomSource) (Algorithm,
	error) {
	if m == nil {
		return nil, fmt.Errorf("A maze is required")
	}
	if rng == nil {
		return nil, fmt.Errorf("A random source is required")
	}
	if m.bound {
		return nil, fmt.Errorf("The maze has already been generated")
	}
	var toReturn Algorithm
	switch kind {
	case Prim:
		toReturn = newPrim(m, rng)
	case Kruskal:
		toReturn = newKruskal(m, rng)
	case Backtracker:
		toReturn = newBacktracker(m, rng)
	default:
		return nil, fmt.Errorf("Invalid algorithm (%s)", kind)
	}
	m.bound = true
	m.algorithm = kind
	m.startTime = time.Now()
	return toReturn, nil
}

// Runs the given algorithm on the maze until it is complete. Returns the
// number of steps taken.
func Generate(kind AlgorithmKind, m *Maze, rng RandomSource) (int, error) {
	a, e := NewAlgorithm(kind, m, rng)
	if e != nil {
		return 0, fmt.Errorf("Error initializing maze state: %w", e)
	}
	for !a.Step() {
	}
	return a.Steps(), nil
}
