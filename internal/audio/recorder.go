package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"lingua/backend/internal/logger"
)

var (
	// ErrDeviceAccess reports that the microphone could not be acquired
	// (missing device or denied permission). Fatal to the capture action.
	ErrDeviceAccess = errors.New("microphone unavailable")
	// ErrAlreadyRecording reports a start while a session is open. The
	// microphone is exclusive: one session at a time.
	ErrAlreadyRecording = errors.New("capture already in progress")
	// ErrNotRecording reports a stop without an open session.
	ErrNotRecording = errors.New("no capture in progress")
)

// State is the capture lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRecording
	StateFinalizing
)

func (s State) String() string {
	switch s {
	case StateRecording:
		return "recording"
	case StateFinalizing:
		return "finalizing"
	default:
		return "idle"
	}
}

// captureStream abstracts the portaudio input stream so the lifecycle is
// testable without a device.
type captureStream interface {
	Read() error
	Stop() error
	Close() error
}

// openStreamFunc acquires the default input device and returns a stream
// that fills buf on every Read.
type openStreamFunc func(sampleRate, framesPerBuf int, buf []int16) (captureStream, error)

func openPortaudioStream(sampleRate, framesPerBuf int, buf []int16) (captureStream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(sampleRate), framesPerBuf, buf)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, err
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return nil, err
	}
	return &portaudioStream{stream: stream}, nil
}

type portaudioStream struct {
	stream *portaudio.Stream
}

func (p *portaudioStream) Read() error { return p.stream.Read() }
func (p *portaudioStream) Stop() error { return p.stream.Stop() }
func (p *portaudioStream) Close() error {
	err := p.stream.Close()
	_ = portaudio.Terminate()
	return err
}

// Recorder is the microphone capture state machine
// {Idle, Recording, Finalizing}. One session may be open at a time;
// Stop always releases the device, even when downstream encoding or
// transcription fails, so the pipeline cannot wedge outside Idle.
type Recorder struct {
	mu         sync.Mutex
	state      State
	stream     captureStream
	doneCh     chan struct{}
	chunks     [][]int16
	sampleRate int
	openStream openStreamFunc
}

// NewRecorder creates a recorder capturing mono 16-bit PCM at the given
// sample rate.
func NewRecorder(sampleRate int) *Recorder {
	if sampleRate <= 0 {
		sampleRate = CaptureSampleRate
	}
	return &Recorder{
		state:      StateIdle,
		sampleRate: sampleRate,
		openStream: openPortaudioStream,
	}
}

// State returns the current lifecycle state.
func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// SampleRate returns the capture sample rate.
func (r *Recorder) SampleRate() int { return r.sampleRate }

// Start transitions Idle -> Recording, acquires the exclusive microphone
// resource and begins accumulating chunks. Starting while a session is
// open is rejected without touching the device.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateIdle {
		return ErrAlreadyRecording
	}

	const framesPerBuf = 1024
	buf := make([]int16, framesPerBuf)
	stream, err := r.openStream(r.sampleRate, framesPerBuf, buf)
	if err != nil {
		logger.Warn("microphone acquire failed", "module", "audio", "action", "capture", "resource", "microphone", "result", "failed", "error", err)
		return fmt.Errorf("%w: %v", ErrDeviceAccess, err)
	}

	r.stream = stream
	r.chunks = nil
	r.doneCh = make(chan struct{})
	r.state = StateRecording

	go r.captureLoop(stream, buf, r.doneCh)

	logger.Info("capture started", "module", "audio", "action", "capture", "resource", "microphone", "result", "ok", "sample_rate", r.sampleRate)
	return nil
}

func (r *Recorder) captureLoop(stream captureStream, buf []int16, done chan struct{}) {
	defer close(done)
	for {
		if err := stream.Read(); err != nil {
			// Stream stopped, either by Stop() or a device error.
			return
		}

		chunk := append([]int16(nil), buf...)

		r.mu.Lock()
		if r.state != StateRecording {
			r.mu.Unlock()
			return
		}
		r.chunks = append(r.chunks, chunk)
		r.mu.Unlock()
	}
}

// Stop transitions Recording -> Finalizing -> Idle. The device is
// released on entry to Finalizing unconditionally; the accumulated
// chunks are concatenated and returned as a WAV blob. Stopping without
// an open session reports ErrNotRecording.
func (r *Recorder) Stop() ([]byte, error) {
	r.mu.Lock()
	if r.state != StateRecording {
		r.mu.Unlock()
		return nil, ErrNotRecording
	}
	r.state = StateFinalizing
	stream := r.stream
	done := r.doneCh
	r.stream = nil
	r.mu.Unlock()

	// Scoped release: stop and close before any encoding can fail.
	_ = stream.Stop()
	<-done
	_ = stream.Close()

	r.mu.Lock()
	chunks := r.chunks
	r.chunks = nil
	r.state = StateIdle
	r.mu.Unlock()

	var samples []int16
	for _, c := range chunks {
		samples = append(samples, c...)
	}

	wav := EncodeWAV(int16ToBytes(samples), r.sampleRate, 1)
	logger.Info("capture finalized", "module", "audio", "action", "capture", "resource", "microphone", "result", "ok", "frames", len(samples))
	return wav, nil
}
