package world

// Graph links every floor cell to its floor neighbours in Ways order.
type Graph struct {
	edges map[Cell][]Cell
}

func NewGraph(grid *Grid) *Graph {
	g := &Graph{edges: make(map[Cell][]Cell)}

	for _, c := range grid.Floors() {
		next := make([]Cell, 0, len(Ways))
		for _, way := range Ways {
			n := c.Add(way)
			if grid.At(n) == Floor {
				next = append(next, n)
			}
		}
		g.edges[c] = next
	}

	return g
}

func (g *Graph) Neighbors(c Cell) []Cell {
	return g.edges[c]
}

func (g *Graph) Len() int {
	return len(g.edges)
}

// PathFinder runs breadth first searches over a shared Graph.
type PathFinder struct {
	graph *Graph
}

func NewPathFinder(graph *Graph) *PathFinder {
	return &PathFinder{graph: graph}
}

// Next returns the first cell after start on a shortest path to goal that
// avoids the occupied cells. An occupied goal may still end the search, but
// the returned step never lands on an occupied cell.
func (p *PathFinder) Next(start, goal Cell, occupied []Cell) (Cell, bool) {
	if start == goal {
		return Cell{}, false
	}

	blocked := make(map[Cell]struct{}, len(occupied))
	for _, c := range occupied {
		blocked[c] = struct{}{}
	}

	prev := map[Cell]Cell{start: start}
	queue := []Cell{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == goal {
			break
		}

		for _, next := range p.graph.Neighbors(cur) {
			if _, seen := prev[next]; seen {
				continue
			}
			if _, taken := blocked[next]; taken && next != goal {
				continue
			}
			prev[next] = cur
			queue = append(queue, next)
		}
	}

	if _, reached := prev[goal]; !reached {
		return Cell{}, false
	}

	step := goal
	for prev[step] != start {
		step = prev[step]
	}

	if _, taken := blocked[step]; taken {
		return Cell{}, false
	}
	return step, true
}
