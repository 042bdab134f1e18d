// Package processing registers flight loop callbacks: plugin code the host
// runs once per simulation cycle, with the next firing renegotiated by each
// callback's own return value.
package processing

import (
	"log/slog"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
	"github.com/simbridge-dev/simbridge-sdk/internal/refcon"
)

// FlightLoopHandler receives flight loop firings. The timing arguments come
// from the host and are coarse; track your own timing through data refs if
// you need precision.
type FlightLoopHandler interface {
	// FlightLoop is called at each scheduled firing. sinceCall is seconds
	// since this callback last ran, sinceLoop seconds since any flight
	// loop last ran, counter a monotonically increasing cycle count. The
	// returned interval controls the next firing.
	FlightLoop(sinceCall, sinceLoop float32, counter int32) entities.FlightLoopInterval
}

// FlightLoopHandlerFunc adapts a plain function to FlightLoopHandler.
type FlightLoopHandlerFunc func(sinceCall, sinceLoop float32, counter int32) entities.FlightLoopInterval

// FlightLoop calls the wrapped function.
func (f FlightLoopHandlerFunc) FlightLoop(sinceCall, sinceLoop float32, counter int32) entities.FlightLoopInterval {
	return f(sinceCall, sinceLoop, counter)
}

// loops maps live correlation tokens to registration records. The host's
// callback model is single threaded, so the table is driven only from the
// host's thread.
var loops = refcon.NewTable()

type flightLoopRecord struct {
	handler FlightLoopHandler
}

// dispatchFlightLoop is the one trampoline shared by every flight loop
// registration; the host tells them apart purely by the correlation token.
// It must never let a panic escape into the host.
func dispatchFlightLoop(sinceCall, sinceLoop float32, counter int32, token entities.Token) (next float32) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("flight loop handler panicked", "token", uint64(token), "panic", r)
			next = 0
		}
	}()

	record, ok := loops.Get(token)
	if !ok {
		slog.Warn("flight loop callback with unknown token", "token", uint64(token))
		return 0
	}
	// The handler may destroy its own registration; the record must not be
	// touched after this call.
	interval := record.(*flightLoopRecord).handler.FlightLoop(sinceCall, sinceLoop, counter)
	return interval.Seconds
}

// FlightLoop owns one flight loop registration. It is created deactivated;
// arm it with Schedule. Close destroys the registration exactly once.
type FlightLoop struct {
	host  ports.FlightLoopScheduler
	id    entities.FlightLoopID
	token entities.Token
}

// CreateFlightLoop registers handler to run in the given phase. The loop
// starts deactivated.
func CreateFlightLoop(host ports.FlightLoopScheduler, phase entities.FlightLoopPhase, handler FlightLoopHandler) (*FlightLoop, error) {
	token := loops.Put(&flightLoopRecord{handler: handler})
	raw := host.CreateFlightLoop(phase.Raw(), dispatchFlightLoop, token)
	id, err := entities.WrapFlightLoopID(raw)
	if err != nil {
		loops.Release(token)
		return nil, err
	}
	return &FlightLoop{host: host, id: id, token: token}, nil
}

// ID returns the wrapped flight loop handle.
func (f *FlightLoop) ID() entities.FlightLoopID { return f.id }

// Schedule arms or rearms the loop.
func (f *FlightLoop) Schedule(interval entities.FlightLoopInterval) {
	if f.token == 0 {
		return
	}
	f.host.ScheduleFlightLoop(f.id.Raw(), interval.Seconds, interval.RelativeToNow)
}

// Close destroys the registration and releases its token. The first call
// tears down; later calls are no-ops. Calling Close from inside the loop's
// own callback is legal: the record is released here, and the trampoline
// does not touch it after dispatching.
func (f *FlightLoop) Close() {
	if f.token == 0 {
		return
	}
	f.host.DestroyFlightLoop(f.id.Raw())
	loops.Release(f.token)
	f.token = 0
}

// ElapsedTime returns wall seconds since the host started. It keeps
// counting while the simulation is paused, and is not precise enough for
// timing-critical work.
func ElapsedTime(host ports.FlightLoopScheduler) float32 {
	return host.ElapsedTime()
}

// CycleNumber returns a counter bumped once per simulation frame.
func CycleNumber(host ports.FlightLoopScheduler) int32 {
	return host.CycleNumber()
}
