package capture

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/model"
)

// WedgeSource treats an external USB/Bluetooth scanner as a line-oriented
// text device. Each line is one decoded payload, handled exactly as if the
// operator had typed it into the manual search field.
type WedgeSource struct {
	events    chan model.ScanEvent
	closer    io.Closer
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

func NewWedgeSource(r io.ReadCloser) *WedgeSource {
	s := &WedgeSource{
		events: make(chan model.ScanEvent, 8),
		closer: r,
		done:   make(chan struct{}),
	}
	go s.run(r)
	return s
}

func (s *WedgeSource) run(r io.Reader) {
	defer close(s.events)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		ev := model.ScanEvent{
			Payload:   line,
			Symbology: "keyboard-wedge",
			Timestamp: time.Now(),
		}

		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

func (s *WedgeSource) Events() <-chan model.ScanEvent {
	return s.events
}

// Close releases the underlying reader. The reader's Close unblocks the
// scanner goroutine when it is parked on a read.
func (s *WedgeSource) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.closeErr = s.closer.Close()
	})
	return s.closeErr
}
