package transport

import (
	"io"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ledcor/ledcor/pkg/protocol"
)

// FrameReader turns a raw byte stream into complete protocol frames.
// Bytes accumulate until the frame delimiter; an over-long frame is
// discarded so a stream that never terminates a frame cannot grow the
// buffer, and frames are delivered on a bounded channel so a stalled
// consumer cannot block the read loop.
type FrameReader struct {
	r        io.Reader
	frames   chan []byte
	stopChan chan struct{}
	stopped  bool
	stopMu   sync.Mutex
}

// NewFrameReader creates a frame reader over r.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{
		r:        r,
		frames:   make(chan []byte, 16),
		stopChan: make(chan struct{}),
	}
}

// Frames returns the channel of complete frames, without the trailing
// delimiter. The channel is closed when the underlying reader fails.
func (f *FrameReader) Frames() <-chan []byte {
	return f.frames
}

// Start launches the read loop.
func (f *FrameReader) Start() {
	go f.readLoop()
}

// Close stops the read loop.
func (f *FrameReader) Close() {
	f.stopMu.Lock()
	defer f.stopMu.Unlock()
	if !f.stopped {
		f.stopped = true
		close(f.stopChan)
	}
}

func (f *FrameReader) readLoop() {
	defer close(f.frames)

	buf := make([]byte, 0, protocol.MaxFrameSize)
	oversized := false
	one := make([]byte, 1)

	for {
		select {
		case <-f.stopChan:
			return
		default:
		}

		if _, err := io.ReadFull(f.r, one); err != nil {
			if err != io.EOF {
				log.Error().Err(err).Msg("Transport read error")
			}
			return
		}
		b := one[0]

		switch b {
		case '\r', '\n':
			// frames may be newline-suffixed
			continue
		case byte(protocol.FrameDelimiter):
			if oversized {
				oversized = false
				buf = buf[:0]
				continue
			}
			if len(buf) == 0 {
				continue
			}
			frame := make([]byte, len(buf))
			copy(frame, buf)
			buf = buf[:0]
			select {
			case f.frames <- frame:
			default:
				log.Warn().Msg("Frame channel full, dropping frame")
			}
		default:
			if oversized {
				continue
			}
			buf = append(buf, b)
			if len(buf) > protocol.MaxFrameSize {
				log.Debug().Msg("Oversized frame, discarding")
				buf = buf[:0]
				oversized = true
			}
		}
	}
}
