package model

// Path returns the cells from start to end following open passages,
// both ends included. It returns nil when either end is off the grid or no
// route exists.
func (g *Grid) Path(start, end Pos) []Pos {
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil
	}

	queue := []Pos{start}
	cameFrom := make(map[Pos]Pos)
	visited := make([]bool, len(g.Cells))
	visited[g.Index(start.I, start.J)] = true

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []Pos{}
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
				path[l], path[r] = path[r], path[l]
			}
			return path
		}

		for _, d := range Dirs {
			if !g.CanMove(curr, d) {
				continue
			}
			next := curr.Step(d)
			idx := g.Index(next.I, next.J)
			if idx == -1 || visited[idx] {
				continue
			}
			visited[idx] = true
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}
	return nil
}

// Reachable counts the cells reachable from start through open passages.
func (g *Grid) Reachable(start Pos) int {
	if !g.InBounds(start) {
		return 0
	}
	visited := make([]bool, len(g.Cells))
	stack := []Pos{start}
	visited[g.Index(start.I, start.J)] = true
	n := 0
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		for _, d := range Dirs {
			if !g.CanMove(curr, d) {
				continue
			}
			next := curr.Step(d)
			idx := g.Index(next.I, next.J)
			if idx == -1 || visited[idx] {
				continue
			}
			visited[idx] = true
			stack = append(stack, next)
		}
	}
	return n
}

// DirTo returns the direction of the single step from a to an adjacent b.
func DirTo(a, b Pos) (Dir, bool) {
	for _, d := range Dirs {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}
