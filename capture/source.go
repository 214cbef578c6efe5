// Package capture provides the scan input sources feeding the station.
package capture

import (
	"github.com/SimonPlays15/LagerVerwaltungsSystem-sub001/model"
)

// A Source delivers decoded scan payloads until closed. The events channel
// is closed when the source ends, either on Close or on input exhaustion.
//
// Close must release every underlying device handle. For camera sources that
// means stopping all media tracks; a track left live after Close is a held
// camera. Close is idempotent.
type Source interface {
	Events() <-chan model.ScanEvent
	Close() error
}
