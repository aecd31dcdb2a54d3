package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazefall/config"
	"github.com/zucenko/mazefall/model"
)

type Game struct {
	screen tcell.Screen
	state  *model.GameState
	clock  model.Clock
	keys   *KeyState
	sound  *Sound
	hint   bool
	log    *log.Entry
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, ch := ev.Key(), ev.Rune()
		if isQuit(key, ch) {
			return false
		}
		if key == tcell.KeyRune && (ch == 'h' || ch == 'H') {
			g.hint = !g.hint
			return true
		}
		if d, ok := dirForKey(key, ch); ok {
			g.keys.Press(d, g.clock.Now())
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) step() {
	now := g.clock.Now()
	ev := g.state.Tick(g.keys.Input(now), now)
	if ev.Resets > 0 {
		g.sound.Hit()
	}
	if ev.Stage != nil {
		g.log.WithFields(log.Fields{"stage": ev.Stage.Stage, "cols": ev.Stage.Cols, "rows": ev.Stage.Rows}).Info("next stage")
		g.sound.StageClear()
		g.screen.Clear()
	}

	// drawn after the whole tick, so a reset player is never shown under its block
	var hint []model.Pos
	if g.hint {
		hint = g.state.Grid.Path(g.state.Player, g.state.Goal)
	}
	drawFrame(g.screen, g.state.Snapshot(), hint)
}

func (g *Game) run(tickRate int) {
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.step()
		}
	}
}

func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

// exit is swapped out in tests.
var exit = os.Exit

// fail reports a startup error on w and exits. Logs may be discarded at this
// point, so w is the only place the user sees it.
func fail(w io.Writer, what string, err error, code int) {
	fmt.Fprintf(w, "%s: %v\n", what, err)
	exit(code)
}

func main() {
	dump := flag.Bool("dump", false, "print the first maze as text and exit")
	hint := flag.Bool("hint", false, "overlay the shortest path to the goal (toggle with h)")
	logFile := flag.String("logfile", "", "write logs to this file")
	cfg, err := config.FromArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		fail(os.Stderr, "config", err, 2)
	}

	if *dump {
		g := model.Generate(cfg.Cols, cfg.Rows, model.NewRand(cfg.Seed))
		fmt.Printf("seed %d\n%s", cfg.Seed, g.Layout())
		return
	}

	closer, err := setupLogging(*logFile)
	if err != nil {
		fail(os.Stderr, "log file", err, 1)
	}
	defer closer.Close()
	cfg.ConfigureLogging()

	entry := log.WithFields(log.Fields{"run": uuid.New().String(), "seed": cfg.Seed})
	state, err := model.NewGameState(cfg.GameConfig())
	if err != nil {
		entry.Error(err)
		fail(os.Stderr, "game", err, 1)
	}
	state.Log = entry

	screen, err := tcell.NewScreen()
	if err != nil {
		fail(os.Stderr, "screen", err, 1)
	}
	if err := screen.Init(); err != nil {
		fail(os.Stderr, "screen", err, 1)
	}

	game := &Game{
		screen: screen,
		state:  state,
		clock:  model.NewMonotonicClock(),
		keys:   NewKeyState(),
		sound:  NewSound(cfg.Sound),
		hint:   *hint,
		log:    entry,
	}
	defer func() {
		game.sound.Close()
		screen.Fini()
	}()

	entry.Infof("starting %dx%d maze", state.Cols, state.Rows)
	game.run(cfg.TickRate)
}
