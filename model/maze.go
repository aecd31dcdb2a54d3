package model

import (
	"math/rand"
	"time"
)

// NewRand returns a seeded source; seed 0 picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Generate carves a perfect maze with a randomized depth-first backtracker
// starting at (0,0). Every cell ends up visited and the open passages form a
// spanning tree.
func Generate(cols, rows int, rng *rand.Rand) *Grid {
	g := NewGrid(cols, rows)
	if len(g.Cells) == 0 {
		return g
	}

	current := &g.Cells[0]
	current.Visited = true
	stack := make([]*Cell, 0, len(g.Cells))

	for {
		if next := g.unvisitedNeighbor(current, rng); next != nil {
			next.Visited = true
			stack = append(stack, current)
			RemoveWalls(current, next)
			current = next
		} else if len(stack) > 0 {
			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		} else {
			break
		}
	}
	return g
}

func (g *Grid) unvisitedNeighbor(c *Cell, rng *rand.Rand) *Cell {
	var candidates [4]*Cell
	n := 0
	for _, d := range Dirs {
		if nb := g.Neighbor(c, d); nb != nil && !nb.Visited {
			candidates[n] = nb
			n++
		}
	}
	if n == 0 {
		return nil
	}
	return candidates[rng.Intn(n)]
}
