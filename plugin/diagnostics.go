package plugin

import (
	stderrors "errors"
	"log/slog"

	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
)

// ErrCallbackInstalled reports a second InstallErrorCallback call. The
// host holds exactly one callback slot for the plugin's whole life, so
// the first installation wins.
var ErrCallbackInstalled = stderrors.New("error callback already installed")

var errorCallbackInstalled bool

// InstallErrorCallback installs fn as the host's error reporting callback.
// Installing a callback may switch the host into a slower checking mode,
// so shipping plugins should not call this. It can be called at most once.
func InstallErrorCallback(host ports.Diagnostics, fn func(message string)) error {
	if errorCallbackInstalled {
		return ErrCallbackInstalled
	}
	errorCallbackInstalled = true
	host.SetErrorCallback(func(message string) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("error callback panicked", "panic", r)
			}
		}()
		fn(message)
	})
	return nil
}

// Speak shows the message as an overlay and speaks it if the host has
// text-to-speech enabled.
func Speak(host ports.Diagnostics, message string) {
	host.SpeakString(message)
}
