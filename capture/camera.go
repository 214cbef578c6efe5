package capture

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/model"
)

// startCameraJS acquires the camera, keeps the stream on window.__scanStream
// and pushes every detection to the exposed onScanDecode binding. The decode
// loop runs until __scanActive is cleared.
const startCameraJS = `async () => {
	const stream = await navigator.mediaDevices.getUserMedia({ video: { facingMode: 'environment' } });
	window.__scanStream = stream;
	window.__scanActive = true;

	const video = document.createElement('video');
	video.srcObject = stream;
	await video.play();

	const detector = new BarcodeDetector();
	const tick = async () => {
		if (!window.__scanActive) return;
		try {
			const codes = await detector.detect(video);
			for (const c of codes) {
				window.onScanDecode({ payload: c.rawValue, format: c.format });
			}
		} catch (e) {}
		requestAnimationFrame(tick);
	};
	tick();
	return true;
}`

// stopTracksJS stops every track of the held stream and returns how many are
// still live afterwards. The expected return value is always 0.
const stopTracksJS = `() => {
	window.__scanActive = false;
	const stream = window.__scanStream;
	if (!stream) return 0;
	for (const t of stream.getTracks()) t.stop();
	window.__scanStream = null;
	return stream.getTracks().filter(t => t.readyState === 'live').length;
}`

// CameraSource drives a browser page that decodes the camera stream with the
// BarcodeDetector API and delivers each decode back over a page binding.
type CameraSource struct {
	browser *rod.Browser
	page    *rod.Page

	// mu makes delivery and channel shutdown mutually exclusive: the decode
	// binding fires from rod's websocket handler while Close runs on the
	// station goroutine.
	mu     sync.Mutex
	events chan model.ScanEvent
	closed bool

	closeOnce sync.Once
	closeErr  error
}

// NewCameraSource launches the capture browser and starts the camera. Any
// failure here is a hardware failure from the operator's point of view
// (camera missing or permission denied); the source is fully torn down
// before the error is returned, so no track is left running.
func NewCameraSource(headless bool) (*CameraSource, error) {
	controlURL, err := launcher.New().
		Headless(headless).
		Leakless(false).
		Launch()
	if err != nil {
		return nil, fmt.Errorf("camera browser launch failed: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("camera browser connect failed: %w", err)
	}

	s := &CameraSource{
		browser: browser,
		events:  make(chan model.ScanEvent, 8),
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("camera page open failed: %w", err)
	}
	s.page = page

	_, err = page.Expose("onScanDecode", func(j gson.JSON) (interface{}, error) {
		s.deliver(model.ScanEvent{
			Payload:   j.Get("payload").Str(),
			Symbology: j.Get("format").Str(),
			Timestamp: time.Now(),
		})
		return nil, nil
	})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("camera decode binding failed: %w", err)
	}

	if _, err := page.Eval(startCameraJS); err != nil {
		s.Close()
		return nil, fmt.Errorf("camera unavailable: %w", err)
	}

	return s, nil
}

func (s *CameraSource) Events() <-chan model.ScanEvent {
	return s.events
}

// deliver hands a decode to the events channel. The check and the send sit
// under one lock so a concurrent closeEvents can never close the channel
// between them; after shutdown decodes are silently dropped.
func (s *CameraSource) deliver(ev model.ScanEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	select {
	case s.events <- ev:
	default:
		// Drop when the station is not keeping up; the code is still in
		// frame and will be decoded again.
	}
}

func (s *CameraSource) closeEvents() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.events)
	}
}

// Close stops every media track before the browser goes away. Closing only
// the browser can leave the camera held on some platforms, so the tracks are
// stopped explicitly first and the live count is verified.
func (s *CameraSource) Close() error {
	s.closeOnce.Do(func() {
		s.closeEvents()

		if s.page != nil {
			res, err := s.page.Eval(stopTracksJS)
			if err != nil {
				s.closeErr = fmt.Errorf("stopping camera tracks: %w", err)
			} else if live := res.Value.Int(); live != 0 {
				log.Printf("WARN: %d camera track(s) still live after stop", live)
			}
		}

		if err := s.browser.Close(); err != nil && s.closeErr == nil {
			s.closeErr = fmt.Errorf("closing capture browser: %w", err)
		}
	})
	return s.closeErr
}
