package station

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/capture"
	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/config"
)

type submitRequest struct {
	Payload   string `json:"payload"`
	Symbology string `json:"symbology"`
}

// SubmitScanHandler accepts a manually entered or wedge-scanned code.
// POST /api/scan/submit
func SubmitScanHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		res, ok := s.Submit(r.Context(), req.Payload, req.Symbology, "manual")
		if !ok {
			// Empty input, debounced duplicate or superseded lookup: nothing
			// to present, nothing was changed.
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	}
}

// StateHandler exposes the current view state for polling clients.
// GET /api/scan/state
func StateHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := struct {
			State         State   `json:"state"`
			CaptureActive bool    `json:"captureActive"`
			Result        *Result `json:"result,omitempty"`
		}{
			State:         s.State(),
			CaptureActive: s.CaptureActive(),
			Result:        s.Latest(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

// StartCaptureHandler starts a one-shot camera capture.
// POST /api/capture/start
func StartCaptureHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := config.GetConfig()

		src, err := capture.NewCameraSource(cfg.CameraHeadless)
		if err != nil {
			// Hardware failure: camera missing or permission denied. Surface
			// it to the operator; scanning is not started.
			log.Printf("Camera capture unavailable: %v", err)
			http.Error(w, "Camera unavailable: "+err.Error(), http.StatusServiceUnavailable)
			return
		}

		if err := s.StartCapture(src, "camera"); err != nil {
			src.Close()
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}

// StopCaptureHandler releases the active capture source.
// POST /api/capture/stop
func StopCaptureHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.StopCapture(); err != nil {
			log.Printf("Error stopping capture: %v", err)
			http.Error(w, "Failed to stop capture: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
