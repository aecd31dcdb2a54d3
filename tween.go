package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const tweenStep = float32(1) / 60

// Action is what happens while a tween runs and after it finishes.
type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// next schedules t to start once a's tween has finished.
func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	if a.nexts == nil {
		a.nexts = make([]func(g *Game), 0)
	}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = action
		})
	return action
}

func (g *Game) startTween(t *gween.Tween) *Action {
	action := &Action{}
	g.Tweens[t] = action
	return action
}

func (g *Game) updateTweens() {
	for t, a := range g.Tweens {
		curr, finished := t.Update(tweenStep)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}

// slidePlayer eases the drawn player from its previous cell to the new one
// over one move cooldown.
func (g *Game) slidePlayer(from, to cellPos, seconds float32) {
	if g.slideTween != nil {
		delete(g.Tweens, g.slideTween)
	}
	g.slideFrom, g.slideTo = from, to
	g.slide = 0
	g.slideTween = gween.New(0, 1, seconds, ease.OutQuad)
	a := g.startTween(g.slideTween)
	a.onChange = func(v float32) { g.slide = v }
	a.addOnFinish(func() {
		g.slide = 1
		g.slideTween = nil
	})
}

// showBanner holds the stage banner, then fades it out.
func (g *Game) showBanner(label string) {
	g.bannerText = label
	g.bannerAlpha = 1
	g.Phase = BANNER

	hold := g.startTween(gween.New(1, 1, 0.6, ease.Linear))
	fade := hold.next(gween.New(1, 0, 0.9, ease.InQuad))
	fade.onChange = func(v float32) { g.bannerAlpha = float64(v) }
	fade.addOnFinish(func() {
		g.bannerAlpha = 0
		g.Phase = PLAYING
	})
}
