package model

import "math/rand"

const DefaultFallSpeed = 0.02

// Shapes are the falling piece templates as (dx, dy) offsets.
var Shapes = [][]Pos{
	{{0, 0}},                 // single
	{{0, 0}, {1, 0}},         // horizontal pair
	{{0, 0}, {0, 1}},         // vertical pair
	{{0, 0}, {1, 0}, {0, 1}}, // L
	{{0, 0}, {1, 0}, {1, 1}}, // mirrored L
}

type Block struct {
	X, Y      int
	Shape     []Pos
	FallSpeed float64
	Offset    float64
}

func NewBlock(x, y int, shape []Pos, fallSpeed float64) *Block {
	return &Block{X: x, Y: y, Shape: shape, FallSpeed: fallSpeed}
}

// Update advances the fall. The fractional remainder is dropped when a row
// is entered.
func (b *Block) Update() {
	b.Offset += b.FallSpeed
	if b.Offset >= 1 {
		b.Y++
		b.Offset = 0
	}
}

func (b *Block) Cells() []Pos {
	cells := make([]Pos, 0, len(b.Shape))
	for _, s := range b.Shape {
		cells = append(cells, Pos{I: b.X + s.I, J: b.Y + s.J})
	}
	return cells
}

func (b *Block) Hits(p Pos) bool {
	for _, s := range b.Shape {
		if b.X+s.I == p.I && b.Y+s.J == p.J {
			return true
		}
	}
	return false
}

type Obstacles struct {
	Blocks    []*Block
	FallSpeed float64
	Interval  int64
	lastSpawn int64
	rng       *rand.Rand
}

func NewObstacles(rng *rand.Rand, fallSpeed float64, intervalMs int64) *Obstacles {
	return &Obstacles{
		Blocks:    make([]*Block, 0),
		FallSpeed: fallSpeed,
		Interval:  intervalMs,
		rng:       rng,
	}
}

// Spawn drops a random shape at the top row.
func (o *Obstacles) Spawn(cols int) *Block {
	shape := Shapes[o.rng.Intn(len(Shapes))]
	span := cols - 2
	if span < 1 {
		span = 1
	}
	b := NewBlock(o.rng.Intn(span), 0, shape, o.FallSpeed)
	o.Blocks = append(o.Blocks, b)
	return b
}

// SpawnDue spawns a block when the interval has passed since the last timed
// spawn.
func (o *Obstacles) SpawnDue(cols int, now int64) bool {
	if now-o.lastSpawn <= o.Interval {
		return false
	}
	o.Spawn(cols)
	o.lastSpawn = now
	return true
}

// Prune drops blocks that have fallen past the last row.
func (o *Obstacles) Prune(rows int) {
	kept := o.Blocks[:0]
	for _, b := range o.Blocks {
		if b.Y < rows {
			kept = append(kept, b)
		}
	}
	for k := len(kept); k < len(o.Blocks); k++ {
		o.Blocks[k] = nil
	}
	o.Blocks = kept
}

func (o *Obstacles) Clear() {
	o.Blocks = o.Blocks[:0]
}
