package sonify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

var (
	otoCtx     *oto.Context
	otoOnce    sync.Once
	otoInitErr error
)

// oto allows a single context per process.
func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return otoCtx, otoInitErr
}

// Output plays a PCM source on the default audio device.
type Output struct {
	player *oto.Player
}

// Open starts playing src.
func Open(src io.Reader) (*Output, error) {
	ctx, err := initOto()
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	p := ctx.NewPlayer(src)
	p.Play()
	return &Output{player: p}, nil
}

// Close stops playback.
func (o *Output) Close() error {
	if o == nil || o.player == nil {
		return nil
	}
	return o.player.Close()
}
