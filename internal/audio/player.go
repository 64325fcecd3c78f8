package audio

import (
	"encoding/binary"
	"fmt"

	"github.com/gordonklaus/portaudio"

	"lingua/backend/internal/logger"
)

// Player plays raw 16-bit mono PCM on the default output device.
// Play is fire-and-forget: it returns once the stream is open and does
// not prevent overlapping invocations; concurrent plays sound on top of
// each other. That matches the product behavior.
type Player struct{}

// NewPlayer creates a Player.
func NewPlayer() *Player {
	return &Player{}
}

// Play starts playback of pcm at the given sample rate.
func (p *Player) Play(pcm []byte, sampleRate int) error {
	if len(pcm)%2 != 0 {
		return fmt.Errorf("pcm length %d is not sample-aligned", len(pcm))
	}
	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceAccess, err)
	}

	const framesPerBuf = 1024
	buf := make([]int16, framesPerBuf)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), framesPerBuf, buf)
	if err != nil {
		_ = portaudio.Terminate()
		return fmt.Errorf("%w: %v", ErrDeviceAccess, err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return fmt.Errorf("%w: %v", ErrDeviceAccess, err)
	}

	go func() {
		defer func() {
			_ = stream.Stop()
			_ = stream.Close()
			_ = portaudio.Terminate()
		}()

		for off := 0; off < len(samples); off += framesPerBuf {
			end := off + framesPerBuf
			if end > len(samples) {
				end = len(samples)
			}
			n := copy(buf, samples[off:end])
			for i := n; i < framesPerBuf; i++ {
				buf[i] = 0
			}
			if err := stream.Write(); err != nil {
				logger.Debug("playback write failed", "module", "audio", "action", "play", "resource", "speaker", "result", "failed", "error", err)
				return
			}
		}
	}()

	logger.Info("playback started", "module", "audio", "action", "play", "resource", "speaker", "result", "ok", "sample_rate", sampleRate, "samples", len(samples))
	return nil
}
