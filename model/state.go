package model

import (
	"errors"
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrInvalidTiming     = errors.New("invalid timing")
)

const (
	DefaultCols          = 20
	DefaultRows          = 20
	DefaultCellSize      = 20
	DefaultCanvas        = 600
	DefaultMaxDim        = 80
	DefaultGrowth        = 5
	DefaultMoveCooldown  = 100
	DefaultSpawnInterval = 3000
)

type Config struct {
	Cols, Rows    int
	CellSize      int
	Canvas        int
	MaxDim        int
	Growth        int
	MoveCooldown  int64
	SpawnInterval int64
	FallSpeed     float64
	Seed          int64
}

func DefaultConfig() Config {
	return Config{
		Cols:          DefaultCols,
		Rows:          DefaultRows,
		CellSize:      DefaultCellSize,
		Canvas:        DefaultCanvas,
		MaxDim:        DefaultMaxDim,
		Growth:        DefaultGrowth,
		MoveCooldown:  DefaultMoveCooldown,
		SpawnInterval: DefaultSpawnInterval,
		FallSpeed:     DefaultFallSpeed,
	}
}

func (c Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Cols, c.Rows)
	}
	if c.MaxDim <= 0 || c.Cols > c.MaxDim || c.Rows > c.MaxDim {
		return fmt.Errorf("%w: %dx%d exceeds cap %d", ErrInvalidDimensions, c.Cols, c.Rows, c.MaxDim)
	}
	if c.CellSize <= 0 || c.Canvas <= 0 || c.Growth < 0 {
		return fmt.Errorf("%w: cell size %d canvas %d growth %d", ErrInvalidDimensions, c.CellSize, c.Canvas, c.Growth)
	}
	if c.MoveCooldown <= 0 || c.SpawnInterval <= 0 || c.FallSpeed <= 0 {
		return fmt.Errorf("%w: cooldown %dms interval %dms fall speed %v",
			ErrInvalidTiming, c.MoveCooldown, c.SpawnInterval, c.FallSpeed)
	}
	return nil
}

// Input is the held state of the four logical directions for one tick.
type Input struct {
	Up, Down, Left, Right bool
}

func (in Input) Held(d Dir) bool {
	switch d {
	case Top:
		return in.Up
	case Bottom:
		return in.Down
	case Left:
		return in.Left
	case Right:
		return in.Right
	default:
		return false
	}
}

// movePriority is the order held directions are tried in.
var movePriority = [4]Dir{Top, Bottom, Left, Right}

type StageChange struct {
	Stage      int
	Cols, Rows int
	CellSize   int
}

// Events summarises what happened during one tick.
type Events struct {
	Resets int
	Moved  bool
	Stage  *StageChange
}

type GameState struct {
	Config Config

	Grid      *Grid
	Player    Pos
	Goal      Pos
	Trail     *Trail
	Obstacles *Obstacles
	Stage     int
	Cols      int
	Rows      int
	CellSize  int

	lastMove int64
	rng      *rand.Rand
	Log      *log.Entry
}

func NewGameState(cfg Config) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := NewRand(cfg.Seed)
	g := &GameState{
		Config:    cfg,
		Stage:     1,
		Cols:      cfg.Cols,
		Rows:      cfg.Rows,
		CellSize:  cfg.CellSize,
		rng:       rng,
		Obstacles: NewObstacles(rng, cfg.FallSpeed, cfg.SpawnInterval),
		Log:       log.NewEntry(log.StandardLogger()),
	}
	g.setupStage()
	g.Log.WithFields(log.Fields{"cols": g.Cols, "rows": g.Rows}).Info("maze ready")
	return g, nil
}

func (g *GameState) setupStage() {
	g.Grid = Generate(g.Cols, g.Rows, g.rng)
	g.Player = Pos{}
	g.Goal = Pos{I: g.Cols - 1, J: g.Rows - 1}
	g.Trail = NewTrail(g.Cols, g.Rows)
	g.Trail.Mark(g.Player)
	g.Obstacles.Clear()
	g.Obstacles.Spawn(g.Cols)
}

// Tick advances the game by one frame. now is the frame clock in
// milliseconds. Obstacles move and are checked against the player's position
// before any movement input is applied.
func (g *GameState) Tick(in Input, now int64) Events {
	var ev Events

	for _, b := range g.Obstacles.Blocks {
		b.Update()
		if b.Hits(g.Player) {
			g.resetPlayer()
			ev.Resets++
		}
	}
	g.Obstacles.Prune(g.Rows)
	g.Obstacles.SpawnDue(g.Cols, now)

	if now-g.lastMove > g.Config.MoveCooldown {
		ev.Moved = g.move(in, now)
		g.Trail.Mark(g.Player)
	}

	if g.Player == g.Goal {
		ev.Stage = g.advanceStage()
	}
	return ev
}

func (g *GameState) move(in Input, now int64) bool {
	for _, d := range movePriority {
		if in.Held(d) && g.Grid.CanMove(g.Player, d) {
			g.Player = g.clamp(g.Player.Step(d))
			g.lastMove = now
			return true
		}
	}
	return false
}

func (g *GameState) clamp(p Pos) Pos {
	p.I = clampInt(p.I, 0, g.Cols-1)
	p.J = clampInt(p.J, 0, g.Rows-1)
	return p
}

func (g *GameState) resetPlayer() {
	g.Log.WithFields(log.Fields{"stage": g.Stage, "i": g.Player.I, "j": g.Player.J}).Debug("hit by block")
	g.Player = Pos{}
	g.Trail.Reset(g.Player)
}

func (g *GameState) advanceStage() *StageChange {
	g.Stage++
	g.Cols = minInt(g.Config.MaxDim, g.Cols+g.Config.Growth)
	g.Rows = minInt(g.Config.MaxDim, g.Rows+g.Config.Growth)
	g.CellSize = maxInt(1, minInt(g.Config.Canvas/g.Cols, g.Config.Canvas/g.Rows))
	g.setupStage()

	g.Log.WithFields(log.Fields{
		"stage": g.Stage,
		"cols":  g.Cols,
		"rows":  g.Rows,
		"cell":  g.CellSize,
	}).Info("stage cleared")

	return &StageChange{Stage: g.Stage, Cols: g.Cols, Rows: g.Rows, CellSize: g.CellSize}
}

// Snapshot is the read-only view a renderer draws from. Grid is shared and
// must not be mutated.
type Snapshot struct {
	Grid       *Grid
	Player     Pos
	Goal       Pos
	Trail      []Pos
	Blocks     []Block
	Stage      int
	Cols, Rows int
	CellSize   int
}

func (g *GameState) Snapshot() Snapshot {
	blocks := make([]Block, 0, len(g.Obstacles.Blocks))
	for _, b := range g.Obstacles.Blocks {
		blocks = append(blocks, *b)
	}
	return Snapshot{
		Grid:     g.Grid,
		Player:   g.Player,
		Goal:     g.Goal,
		Trail:    g.Trail.Positions(),
		Blocks:   blocks,
		Stage:    g.Stage,
		Cols:     g.Cols,
		Rows:     g.Rows,
		CellSize: g.CellSize,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
