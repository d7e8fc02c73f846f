package maze

// Randomized Prim's algorithm, working on wall slots.
//
// Starting from the origin room, every undefined slot around a reached room
// joins the frontier. Each step takes a random slot from the frontier and
// looks at the rooms on both sides of it. If exactly one side is part of the
// maze, the slot is opened and the other room joins the maze. If both sides
// are already part of the maze the slot stays closed, which is what keeps the
// result free of cycles. Slots on the grid's edge with only one room next to
// them are opened as dead ends.
type primState struct {
	maze     *Maze
	rng      RandomSource
	frontier *frontier
	// Marks slots that have already been added to the frontier, so that a
	// slot between two rooms is only examined once.
	queued []bool
	steps  int
	done   bool
}

func newPrim(m *Maze, rng RandomSource) *primState {
	toReturn := &primState{
		maze:     m,
		rng:      rng,
		frontier: newFrontier(m.verticalBias, 64),
		queued:   make([]bool, len(m.grid)),
	}
	m.setPath(m.origin, 0)
	toReturn.enqueueAround(m.origin)
	return toReturn
}

func (p *primState) Kind() AlgorithmKind {
	return Prim
}

func (p *primState) Steps() int {
	return p.steps
}

// Adds every undefined slot around c to the frontier, unless it's already
// been added.
func (p *primState) enqueueAround(c Coordinate) {
	for _, n := range p.maze.undefinedAround(c) {
		i := p.maze.index(n)
		if p.queued[i] {
			continue
		}
		p.queued[i] = true
		p.frontier.add(n)
	}
}

// Opens the wall slot w, reached from a room at the given distance. If the
// room on the other side hasn't been reached, it joins the maze.
func (p *primState) open(w Coordinate, distance float64, other Coordinate,
	hasOther bool) {
	m := p.maze
	m.setPath(w, distance+1)
	m.observe(w, distance+1)
	if hasOther && m.CellKind(other).IsUndefined() {
		m.setPath(other, distance+2)
		m.observe(other, distance+2)
		p.enqueueAround(other)
	}
	// Whatever still surrounds an open slot sits diagonally between rooms, so
	// it can never become part of the maze.
	for _, n := range m.undefinedAround(w) {
		m.setWall(n)
	}
}

func (p *primState) Step() bool {
	if p.done {
		return true
	}
	m := p.maze
	if p.frontier.empty() {
		p.done = true
		m.finish(p.steps)
		return true
	}
	p.steps++
	w := p.frontier.pop(p.rng)
	d := mustWallDirection(w, m.verticalBias, p.rng)
	c1, ok1 := m.next(w, d)
	c2, ok2 := m.next(w, d.Opposite())
	var k1, k2 CellKind
	if ok1 {
		k1 = m.CellKind(c1)
	}
	if ok2 {
		k2 = m.CellKind(c2)
	}
	switch {
	case k1.IsPath() && k2.IsPath():
		// Both rooms are already connected, so opening this would create a
		// cycle.
		return false
	case k1.IsPath():
		p.open(w, k1.Distance, c2, ok2)
	case k2.IsPath():
		p.open(w, k2.Distance, c1, ok1)
	}
	return false
}
