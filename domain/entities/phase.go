package entities

import "fmt"

// FlightLoopPhase selects when, relative to the host integrating its own
// simulation step, a flight loop callback runs.
type FlightLoopPhase int32

const (
	// BeforeSimStep runs the callback before the host integrates the
	// simulation model for the cycle.
	BeforeSimStep FlightLoopPhase = 0
	// AfterSimStep runs the callback after the host integrates the
	// simulation model for the cycle.
	AfterSimStep FlightLoopPhase = 1
)

// Raw returns the host's code for the phase.
func (p FlightLoopPhase) Raw() int32 { return int32(p) }

// FlightLoopInterval describes when a flight loop callback should next
// fire. A positive Seconds value is a duration in seconds; a negative value
// requests that many simulation frames instead; zero deactivates the loop.
type FlightLoopInterval struct {
	Seconds float32
	// RelativeToNow anchors the interval at the moment of the scheduling
	// call rather than at the previous firing time.
	RelativeToNow bool
}

// NextAfterSeconds schedules a firing the given number of seconds from now.
func NextAfterSeconds(seconds float32) FlightLoopInterval {
	return FlightLoopInterval{Seconds: seconds, RelativeToNow: true}
}

// NextAfterFrames schedules a firing the given number of frames from now.
func NextAfterFrames(frames int32) FlightLoopInterval {
	return FlightLoopInterval{Seconds: float32(-frames), RelativeToNow: true}
}

// Deactivated stops the loop from firing until it is rescheduled.
func Deactivated() FlightLoopInterval {
	return FlightLoopInterval{}
}

// CommandPhase is the stage of a command gesture as reported by the host.
type CommandPhase int32

// Command phases as delivered by the host.
const (
	CommandBegin    CommandPhase = 0
	CommandContinue CommandPhase = 1
	CommandEnd      CommandPhase = 2
)

// CommandPhaseFromRaw converts the host's raw command phase code.
// Unknown codes are rejected so trampolines can log and propagate.
func CommandPhaseFromRaw(raw int32) (CommandPhase, error) {
	switch p := CommandPhase(raw); p {
	case CommandBegin, CommandContinue, CommandEnd:
		return p, nil
	default:
		return 0, fmt.Errorf("unknown command phase %d", raw)
	}
}

// CommandExecutionTime selects whether a command handler runs before or
// after the host's own handling of the command.
type CommandExecutionTime int32

const (
	// AfterHost runs the handler after the host handles the command.
	AfterHost CommandExecutionTime = 0
	// BeforeHost runs the handler before the host handles the command.
	BeforeHost CommandExecutionTime = 1
)

// Raw returns the host's code for the execution time.
func (t CommandExecutionTime) Raw() int32 { return int32(t) }
