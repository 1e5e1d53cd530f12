// Package audio plays the short sound cues that accompany the exercise.
// Playback is best effort: a missing or broken clip is reported to the
// diagnostic sink and otherwise ignored.
package audio

import (
	"log/slog"
	"path/filepath"
)

// Cue names a sound effect.
type Cue string

const (
	CueLoad      Cue = "load"
	CueMove      Cue = "move"
	CueCorrect   Cue = "correct"
	CueIncorrect Cue = "incorrect"
)

// Cues lists every cue the player loads.
var Cues = []Cue{CueLoad, CueMove, CueCorrect, CueIncorrect}

// Volume is the playback volume for a cue.
func (c Cue) Volume() float64 {
	if c == CueMove {
		return 0.4
	}
	return 0.8
}

// Clip is a loaded sound that can be restarted.
type Clip interface {
	Rewind() error
	Play()
}

// Backend turns a sound file into a Clip.
type Backend interface {
	Load(path string, volume float64) (Clip, error)
}

// Sink receives every audio failure.
type Sink func(cue Cue, err error)

// LogSink reports failures as warnings on log.
func LogSink(log *slog.Logger) Sink {
	return func(cue Cue, err error) {
		log.Warn("sound cue failed", "cue", string(cue), "error", err)
	}
}

// Player holds one clip per cue. The zero value and a nil *Player are
// silent.
type Player struct {
	clips map[Cue]Clip
	sink  Sink
}

// NewPlayer loads <dir>/<cue>.mp3 for every cue. Clips that fail to load
// are reported to sink once and stay silent. A nil backend gives a silent
// player.
func NewPlayer(backend Backend, dir string, sink Sink) *Player {
	if sink == nil {
		sink = func(Cue, error) {}
	}
	p := &Player{clips: make(map[Cue]Clip), sink: sink}
	if backend == nil {
		return p
	}

	for _, cue := range Cues {
		clip, err := backend.Load(filepath.Join(dir, string(cue)+".mp3"), cue.Volume())
		if err != nil {
			sink(cue, err)
			continue
		}
		p.clips[cue] = clip
	}
	return p
}

// Play restarts cue from the beginning. It never blocks on playback and
// never returns an error.
func (p *Player) Play(cue Cue) {
	if p == nil {
		return
	}
	clip, ok := p.clips[cue]
	if !ok {
		return
	}
	if err := clip.Rewind(); err != nil {
		p.sink(cue, err)
		return
	}
	clip.Play()
}
