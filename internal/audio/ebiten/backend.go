// Package ebiten plays sound cues through ebiten's audio stack. It lives
// apart from package audio so only the binary links the platform audio
// driver.
package ebiten

import (
	"bytes"
	"fmt"
	"os"
	"time"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"verse-order/internal/audio"
)

// Backend decodes mp3 files into ebiten audio players. Only one
// backend may exist per process.
type Backend struct {
	ctx        *eaudio.Context
	sampleRate int
}

func NewBackend(sampleRate int) *Backend {
	return &Backend{
		ctx:        eaudio.NewContext(sampleRate),
		sampleRate: sampleRate,
	}
}

func (b *Backend) Load(path string, volume float64) (audio.Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	stream, err := mp3.DecodeWithSampleRate(b.sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	player, err := b.ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", path, err)
	}
	player.SetVolume(volume)
	return ebitenClip{player}, nil
}

type ebitenClip struct {
	p *eaudio.Player
}

func (c ebitenClip) Rewind() error {
	return c.p.SetPosition(time.Duration(0))
}

func (c ebitenClip) Play() {
	c.p.Play()
}
