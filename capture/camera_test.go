package capture

import (
	"sync"
	"testing"
	"time"

	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/model"
)

func newDetachedCameraSource() *CameraSource {
	// No browser attached; only the delivery path is under test.
	return &CameraSource{events: make(chan model.ScanEvent, 1)}
}

func TestCameraDeliverAfterShutdownIsDropped(t *testing.T) {
	s := newDetachedCameraSource()

	s.deliver(model.ScanEvent{Payload: "4006381333931", Timestamp: time.Now()})
	ev, ok := <-s.Events()
	if !ok || ev.Payload != "4006381333931" {
		t.Fatalf("expected delivered event, got %+v ok=%v", ev, ok)
	}

	s.closeEvents()

	// A decode that raced with shutdown must be dropped, not panic.
	s.deliver(model.ScanEvent{Payload: "A-200", Timestamp: time.Now()})

	if _, ok := <-s.Events(); ok {
		t.Fatalf("expected events channel to be closed")
	}
}

func TestCameraDeliverConcurrentWithShutdown(t *testing.T) {
	s := newDetachedCameraSource()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.deliver(model.ScanEvent{Payload: "X", Timestamp: time.Now()})
		}
	}()

	s.closeEvents()
	wg.Wait()

	// Drain: the channel must end closed with no send having fired after
	// shutdown.
	for range s.events {
	}
}

func TestCameraCloseEventsIsIdempotent(t *testing.T) {
	s := newDetachedCameraSource()

	s.closeEvents()
	s.closeEvents()

	if _, ok := <-s.Events(); ok {
		t.Fatalf("expected events channel to be closed")
	}
}

func TestCameraDeliverDropsWhenFull(t *testing.T) {
	s := newDetachedCameraSource()

	s.deliver(model.ScanEvent{Payload: "first", Timestamp: time.Now()})
	// Buffer of one is full; the re-decode of the code still in frame is
	// dropped rather than blocking rod's event handler.
	s.deliver(model.ScanEvent{Payload: "second", Timestamp: time.Now()})

	ev := <-s.Events()
	if ev.Payload != "first" {
		t.Fatalf("expected first event kept, got %q", ev.Payload)
	}
	select {
	case ev := <-s.Events():
		t.Fatalf("expected overflow decode to be dropped, got %q", ev.Payload)
	default:
	}
}
