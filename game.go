package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"golang.org/x/image/font"

	"github.com/zucenko/mazefall/config"
	"github.com/zucenko/mazefall/model"
	"github.com/zucenko/mazefall/render"
)

const (
	discSize   = 64
	bannerSize = 32
)

var errQuit = errors.New("quit")

type Phase int

const (
	PLAYING Phase = iota + 1
	BANNER
)

func (s Phase) Name() string {
	switch s {
	case PLAYING:
		return "PLAYING"
	case BANNER:
		return "BANNER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type cellPos struct {
	x, y float64
}

type Game struct {
	Phase  Phase
	Model  *model.GameState
	Clock  model.Clock
	Tweens map[*gween.Tween]*Action

	faces map[float64]font.Face
	disc  *ebiten.Image
	panel *Nine

	slide      float32
	slideFrom  cellPos
	slideTo    cellPos
	slideTween *gween.Tween

	bannerText  string
	bannerAlpha float64

	log *log.Entry
}

func NewGame(state *model.GameState, clock model.Clock, entry *log.Entry) (*Game, error) {
	faces := make(map[float64]font.Face)
	for _, size := range []float64{render.TextSize, bannerSize} {
		face, err := loadFace(size)
		if err != nil {
			return nil, err
		}
		faces[size] = face
	}
	disc, err := newDisc(discSize)
	if err != nil {
		return nil, err
	}
	panel, err := newPanelNine(0.15, 0.15, 0.3)
	if err != nil {
		return nil, err
	}
	return &Game{
		Phase:  PLAYING,
		Model:  state,
		Clock:  clock,
		Tweens: make(map[*gween.Tween]*Action),
		faces:  faces,
		disc:   disc,
		panel:  panel,
		slide:  1,
		log:    entry,
	}, nil
}

func newDisc(size int) (*ebiten.Image, error) {
	src := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				src.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
			}
		}
	}
	return ebiten.NewImageFromImage(src, ebiten.FilterLinear)
}

// face returns the font face for size, loading it on first use.
func (g *Game) face(size float64) font.Face {
	if f, ok := g.faces[size]; ok {
		return f
	}
	f, err := loadFace(size)
	if err != nil {
		g.log.Warnf("font size %v: %v", size, err)
		return g.faces[render.TextSize]
	}
	g.faces[size] = f
	return f
}

func (g *Game) update(screen *ebiten.Image) error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return errQuit
	}

	g.updateTweens()

	before := g.Model.Player
	ev := g.Model.Tick(pollInput(), g.Clock.Now())
	switch {
	case ev.Stage != nil:
		g.onStage(*ev.Stage)
	case ev.Resets > 0:
		g.log.WithField("resets", ev.Resets).Debug("player reset")
		g.snapPlayer()
	case ev.Moved:
		seconds := float32(g.Model.Config.MoveCooldown) / 1000
		g.slidePlayer(toCellPos(before), toCellPos(g.Model.Player), seconds)
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	// drawn after the whole tick, so a reset player is never shown under its block
	g.draw(screen)
	return nil
}

func toCellPos(p model.Pos) cellPos {
	return cellPos{x: float64(p.I), y: float64(p.J)}
}

func (g *Game) snapPlayer() {
	if g.slideTween != nil {
		delete(g.Tweens, g.slideTween)
		g.slideTween = nil
	}
	g.slide = 1
}

func (g *Game) onStage(sc model.StageChange) {
	g.snapPlayer()
	w, h := render.Size(g.Model.Snapshot())
	ebiten.SetScreenSize(w, h)
	g.log.WithFields(log.Fields{"stage": sc.Stage, "width": w, "height": h}).Info("resized surface")
	g.showBanner(render.StageLabel(sc.Stage))
}

func (g *Game) draw(screen *ebiten.Image) {
	snap := g.Model.Snapshot()
	cs := float64(snap.CellSize)

	for _, c := range render.Frame(snap) {
		switch c.Kind {
		case render.Clear:
			if err := screen.Fill(c.Color); err != nil {
				g.log.Warnf("fill: %v", err)
			}
		case render.Rect:
			ebitenutil.DrawRect(screen, c.X, c.Y, c.W, c.H, c.Color)
		case render.Line:
			ebitenutil.DrawLine(screen, c.X, c.Y, c.X2, c.Y2, c.Color)
		case render.Ellipse:
			x, y := c.X, c.Y
			if g.slide < 1 {
				// ease from the previous cell towards the logical one
				back := 1 - float64(g.slide)
				x += (g.slideFrom.x - g.slideTo.x) * back * cs
				y += (g.slideFrom.y - g.slideTo.y) * back * cs
			}
			g.drawEllipse(screen, x, y, c.W, c.H, c.Color)
		case render.Text:
			text.Draw(screen, c.Text, g.face(c.TextSize), int(c.X), int(c.Y), c.Color)
		}
	}

	if g.Phase == BANNER {
		g.drawBanner(screen, snap)
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		ebitenutil.DebugPrintAt(screen, g.Phase.Name(), 0, 0)
	}
}

func (g *Game) drawEllipse(screen *ebiten.Image, x, y, w, h float64, clr color.NRGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/discSize, h/discSize)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(clr.R)/255, float64(clr.G)/255, float64(clr.B)/255, float64(clr.A)/255)
	screen.DrawImage(g.disc, op)
}

func (g *Game) drawBanner(screen *ebiten.Image, snap model.Snapshot) {
	w, h := render.Size(snap)
	bw, bh := 220, 70
	g.panel.SetPosition((w-bw)/2, (h-bh)/2)
	g.panel.SetSize(bw, bh)
	g.panel.SetAlpha(g.bannerAlpha)
	g.panel.Draw(screen)

	big := g.face(bannerSize)
	bounds, _ := font.BoundString(big, g.bannerText)
	tw := (bounds.Max.X - bounds.Min.X).Ceil()
	a := uint8(255 * g.bannerAlpha)
	text.Draw(screen, g.bannerText, big, (w-tw)/2, h/2+12, color.NRGBA{255, 255, 255, a})
}

func main() {
	cfg, err := config.FromArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	cfg.ConfigureLogging()

	entry := log.WithFields(log.Fields{"run": uuid.New().String(), "seed": cfg.Seed})
	state, err := model.NewGameState(cfg.GameConfig())
	if err != nil {
		entry.Fatal(err)
	}
	state.Log = entry

	game, err := NewGame(state, model.NewMonotonicClock(), entry)
	if err != nil {
		entry.Fatal(err)
	}

	ebiten.SetMaxTPS(cfg.TickRate)
	w, h := render.Size(state.Snapshot())
	entry.Infof("starting %dx%d maze on a %dx%d surface", state.Cols, state.Rows, w, h)
	if err := ebiten.Run(game.update, w, h, 1, "mazefall"); err != nil && !errors.Is(err, errQuit) {
		entry.Fatal(err)
	}
}
