package ports

// ErrorFunc receives host-detected API misuse reports after installation
// through Diagnostics.SetErrorCallback.
type ErrorFunc func(message string)

// Diagnostics is the host's logging and error reporting surface.
type Diagnostics interface {
	// DebugString appends a line to the host's log file. The host flushes
	// immediately, so this is not cheap.
	DebugString(message string)

	// SpeakString shows the message as an overlay and speaks it if
	// text-to-speech is enabled.
	SpeakString(message string)

	// SetErrorCallback installs an error reporting callback. Installing it
	// may activate host-side checking that normally stays off, so shipping
	// plugins should leave it uninstalled.
	SetErrorCallback(fn ErrorFunc)
}
