package maze

// Randomized Kruskal's algorithm.
//
// Every wall slot between two rooms is listed up front. Each step removes a
// random slot, and opens it if the rooms on either side belong to different
// components. While generating, path distances are component labels rather
// than distances: two components are merged by relabeling every cell of one
// of them. True distances are computed from the origin once all slots have
// been examined.
type kruskalState struct {
	maze     *Maze
	rng      RandomSource
	frontier *frontier
	// The most recently assigned component label. The origin's component is
	// labeled 0.
	label float64
	steps int
	done  bool
}

func newKruskal(m *Maze, rng RandomSource) *kruskalState {
	g := m.geometry
	capacity := ((g.Width+1)/2)*((g.Height+1)/2)/2 + 1
	toReturn := &kruskalState{
		maze:     m,
		rng:      rng,
		frontier: newFrontier(m.verticalBias, capacity),
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			// Only slots with exactly one odd coordinate separate two rooms.
			if ((x ^ y) & 1) == 1 {
				toReturn.frontier.add(Coordinate{X: x, Y: y})
			}
		}
	}
	m.setPath(m.origin, 0)
	return toReturn
}

func (k *kruskalState) Kind() AlgorithmKind {
	return Kruskal
}

func (k *kruskalState) Steps() int {
	return k.steps
}

// Returns a label that hasn't been used by any component yet.
func (k *kruskalState) newLabel() float64 {
	k.label++
	return k.label
}

// Gives every cell in the component containing start the given label. The
// component is found by a depth-first walk over path cells that don't have
// the label yet.
func (k *kruskalState) relabel(start Coordinate, label float64) {
	m := k.maze
	stack := make([]Coordinate, 0, 64)
	stack = append(stack, start)
	m.setPath(start, label)
	for len(stack) != 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range allDirections {
			n, ok := m.next(c, d)
			if !ok {
				continue
			}
			kind := m.CellKind(n)
			if !kind.IsPath() || (kind.Distance == label) {
				continue
			}
			m.setPath(n, label)
			stack = append(stack, n)
		}
	}
}

// Replaces the component labels with the distance of every path cell from
// the origin, using a breadth-first walk. Sets the maze's end and length.
func (k *kruskalState) findEnd() {
	m := k.maze
	m.clearPaths()
	m.length = 0
	m.end = m.origin
	queue := make([]Coordinate, 0, 64)
	queue = append(queue, m.origin)
	m.setPath(m.origin, 0)
	for len(queue) != 0 {
		c := queue[0]
		queue = queue[1:]
		distance := m.CellKind(c).Distance + 1
		for _, d := range allDirections {
			n, ok := m.next(c, d)
			if !ok {
				continue
			}
			kind := m.CellKind(n)
			if !kind.IsPath() || (kind.Distance != unvisited) {
				continue
			}
			m.setPath(n, distance)
			m.observe(n, distance)
			queue = append(queue, n)
		}
	}
}

func (k *kruskalState) Step() bool {
	if k.done {
		return true
	}
	m := k.maze
	if k.frontier.empty() {
		k.done = true
		k.findEnd()
		m.finish(k.steps)
		return true
	}
	k.steps++
	w := k.frontier.pop(k.rng)
	d := mustWallDirection(w, m.verticalBias, k.rng)
	c1, ok1 := m.next(w, d)
	c2, ok2 := m.next(w, d.Opposite())
	if !ok1 && !ok2 {
		return false
	}
	if ok1 != ok2 {
		// A slot on the edge of the grid, with a room on one side only.
		c := c1
		if ok2 {
			c = c2
		}
		kind := m.CellKind(c)
		if kind.IsPath() {
			m.setPath(w, kind.Distance)
		} else if kind.IsUndefined() {
			label := k.newLabel()
			m.setPath(w, label)
			m.setPath(c, label)
		}
		return false
	}
	k1 := m.CellKind(c1)
	k2 := m.CellKind(c2)
	switch {
	case k1.IsPath() && k2.IsPath():
		if k1.Distance == k2.Distance {
			// Already in the same component.
			return false
		}
		m.setPath(w, k1.Distance)
		k.relabel(c2, k1.Distance)
	case k1.IsPath() && k2.IsUndefined():
		m.setPath(w, k1.Distance)
		m.setPath(c2, k1.Distance)
	case k1.IsUndefined() && k2.IsPath():
		m.setPath(w, k2.Distance)
		m.setPath(c1, k2.Distance)
	case k1.IsUndefined() && k2.IsUndefined():
		label := k.newLabel()
		m.setPath(w, label)
		m.setPath(c1, label)
		m.setPath(c2, label)
	}
	return false
}
