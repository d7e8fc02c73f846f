package maze

// The recursive backtracker, using an explicit stack in place of recursion.
//
// From the current room, a random undefined room two cells away is chosen,
// the slot between them is opened and the new room becomes current. When the
// current room has no such neighbor, the stack is popped until a room with
// one is found. The maze is complete when the stack is empty.
type backtrackerState struct {
	maze    *Maze
	rng     RandomSource
	current Coordinate
	// Every room on the way from the origin to the current room, including
	// both.
	stack []Coordinate
	// The distance of the current room from the origin.
	distance float64
	steps    int
	done     bool
}

func newBacktracker(m *Maze, rng RandomSource) *backtrackerState {
	toReturn := &backtrackerState{
		maze:    m,
		rng:     rng,
		current: m.origin,
		stack:   make([]Coordinate, 0, 64),
	}
	m.setPath(m.origin, 0)
	m.length = 0
	m.end = m.origin
	toReturn.stack = append(toReturn.stack, m.origin)
	return toReturn
}

func (b *backtrackerState) Kind() AlgorithmKind {
	return Backtracker
}

func (b *backtrackerState) Steps() int {
	return b.steps
}

// Returns a random undefined room two cells away from the current one.
// Returns false if there isn't one.
func (b *backtrackerState) randomUndefinedNeighbor() (Coordinate, bool) {
	var candidates [4]Coordinate
	count := 0
	for _, d := range allDirections {
		n, ok := b.maze.nextTwice(b.current, d)
		if !ok {
			continue
		}
		if b.maze.CellKind(n).IsUndefined() {
			candidates[count] = n
			count++
		}
	}
	if count == 0 {
		return b.current, false
	}
	return candidates[b.rng.Intn(count)], true
}

// Each step either carves a passage to a new room, or backtracks until there
// is nothing left to carve.
func (b *backtrackerState) Step() bool {
	if b.done {
		return true
	}
	m := b.maze
	for {
		n, ok := b.randomUndefinedNeighbor()
		if ok {
			b.steps++
			wall := Coordinate{
				X: (n.X + b.current.X) / 2,
				Y: (n.Y + b.current.Y) / 2,
			}
			b.distance++
			m.setPath(wall, b.distance)
			b.distance++
			m.setPath(n, b.distance)
			m.observe(n, b.distance)
			b.stack = append(b.stack, n)
			b.current = n
			return false
		}
		// The current room is at the top of the stack and is a dead end.
		b.stack = b.stack[:len(b.stack)-1]
		if len(b.stack) == 0 {
			b.done = true
			m.finish(b.steps)
			return true
		}
		b.current = b.stack[len(b.stack)-1]
		b.distance = m.CellKind(b.current).Distance
	}
}
