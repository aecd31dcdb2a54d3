package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays short tones for game events. A zero Sound is silent.
type Sound struct {
	enabled bool
}

func NewSound(enabled bool) *Sound {
	if !enabled {
		return &Sound{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// the game runs fine without audio
		log.Warnf("audio init failed: %v", err)
		return &Sound{}
	}
	return &Sound{enabled: true}
}

func (s *Sound) tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Debugf("tone %v: %v", freq, err)
		return nil
	}
	return beep.Take(sampleRate.N(d), sine)
}

func (s *Sound) play(parts ...beep.Streamer) {
	if !s.enabled {
		return
	}
	seq := make([]beep.Streamer, 0, len(parts))
	for _, p := range parts {
		if p != nil {
			seq = append(seq, p)
		}
	}
	if len(seq) == 0 {
		return
	}
	speaker.Play(beep.Seq(seq...))
}

func (s *Sound) Hit() {
	if !s.enabled {
		return
	}
	s.play(s.tone(220, 120*time.Millisecond))
}

func (s *Sound) StageClear() {
	if !s.enabled {
		return
	}
	s.play(
		s.tone(660, 80*time.Millisecond),
		s.tone(880, 160*time.Millisecond),
	)
}

func (s *Sound) Close() {
	if s.enabled {
		speaker.Close()
	}
}
