package ports

import "github.com/simbridge-dev/simbridge-sdk/domain/entities"

// FlightLoopFunc is the fixed-signature callback the host invokes once per
// scheduled firing. The token is returned verbatim from registration. The
// return value renegotiates the next firing: positive seconds, negative
// frame count, zero to deactivate.
type FlightLoopFunc func(sinceLastCall, sinceLastLoop float32, counter int32, token entities.Token) float32

// FlightLoopScheduler is the host's cooperative scheduling surface.
type FlightLoopScheduler interface {
	// CreateFlightLoop registers a flight loop callback and returns its
	// raw id, or 0 on failure. The loop starts deactivated.
	CreateFlightLoop(phase int32, fn FlightLoopFunc, token entities.Token) entities.RawHandle

	// DestroyFlightLoop destroys a flight loop created by CreateFlightLoop.
	DestroyFlightLoop(id entities.RawHandle)

	// ScheduleFlightLoop arms the loop. Positive interval is seconds,
	// negative is a frame count, zero deactivates. relativeToNow anchors
	// the interval at the call instead of the previous firing.
	ScheduleFlightLoop(id entities.RawHandle, interval float32, relativeToNow bool)

	// ElapsedTime returns wall seconds since the host started. It keeps
	// counting while the simulation is paused.
	ElapsedTime() float32

	// CycleNumber returns a counter bumped once per simulation frame.
	CycleNumber() int32
}
