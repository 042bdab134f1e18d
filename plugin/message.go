package plugin

// MessageCode identifies an inter-plugin or host message. Codes below 100
// are reserved by the host; plugins picking their own codes should stay
// well above the host range.
type MessageCode int32

// Host message codes.
const (
	MsgPlaneCrashed         MessageCode = 101
	MsgPlaneLoaded          MessageCode = 102
	MsgAirportLoaded        MessageCode = 103
	MsgSceneryLoaded        MessageCode = 104
	MsgAirplaneCountChanged MessageCode = 105
	MsgPlaneUnloaded        MessageCode = 106
	MsgWillWritePrefs       MessageCode = 107
	MsgLiveryLoaded         MessageCode = 108
	MsgEnteredVR            MessageCode = 109
	MsgExitingVR            MessageCode = 110
	MsgReleasePlanes        MessageCode = 111
	MsgFmodBankLoaded       MessageCode = 112
	MsgFmodBankUnloading    MessageCode = 113
	MsgDataRefsAdded        MessageCode = 114
)

// Message is one decoded host or inter-plugin message. The set of
// implementations is closed; messages with codes this package does not
// know decode to CustomMessage.
type Message interface {
	message()
}

// PlaneCrashed reports that the user's aircraft crashed.
type PlaneCrashed struct{}

// PlaneLoaded reports that an aircraft finished loading.
type PlaneLoaded struct {
	// Aircraft is the loaded aircraft's index; zero is the user's.
	Aircraft int32
}

// AirportLoaded reports that the user's aircraft was repositioned at an
// airport.
type AirportLoaded struct{}

// SceneryLoaded reports that new scenery finished loading.
type SceneryLoaded struct{}

// AirplaneCountChanged reports that the number of active aircraft changed.
type AirplaneCountChanged struct{}

// PlaneUnloaded reports that an aircraft was unloaded.
type PlaneUnloaded struct {
	Aircraft int32
}

// WillWritePrefs reports that the host is about to write its preferences
// file, typically right before shutdown.
type WillWritePrefs struct{}

// LiveryLoaded reports that an aircraft's livery finished loading.
type LiveryLoaded struct {
	Aircraft int32
}

// EnteredVR reports that the host switched into a VR headset.
type EnteredVR struct{}

// ExitingVR reports that the host is about to leave VR.
type ExitingVR struct{}

// ReleasePlanes asks this plugin to release its hold on aircraft control
// so another plugin can take over.
type ReleasePlanes struct{}

// FmodBankLoaded reports that a sound bank finished loading.
type FmodBankLoaded struct {
	Bank int32
}

// FmodBankUnloading reports that a sound bank is about to unload.
type FmodBankUnloading struct {
	Bank int32
}

// DataRefsAdded reports that plugins registered new data refs; Total is
// the new total count.
type DataRefsAdded struct {
	Total int32
}

// CustomMessage is any message whose code this package does not know. It
// preserves the sender, code, and parameter exactly as received.
type CustomMessage struct {
	Sender int32
	Code   int32
	Param  uintptr
}

func (PlaneCrashed) message()         {}
func (PlaneLoaded) message()          {}
func (AirportLoaded) message()        {}
func (SceneryLoaded) message()        {}
func (AirplaneCountChanged) message() {}
func (PlaneUnloaded) message()        {}
func (WillWritePrefs) message()       {}
func (LiveryLoaded) message()         {}
func (EnteredVR) message()            {}
func (ExitingVR) message()            {}
func (ReleasePlanes) message()        {}
func (FmodBankLoaded) message()       {}
func (FmodBankUnloading) message()    {}
func (DataRefsAdded) message()        {}
func (CustomMessage) message()        {}

// DecodeMessage converts a raw (sender, code, param) triple into a typed
// Message. It is total: unknown codes decode to CustomMessage rather than
// failing, so a newer host never breaks an older plugin.
func DecodeMessage(sender, code int32, param uintptr) Message {
	switch MessageCode(code) {
	case MsgPlaneCrashed:
		return PlaneCrashed{}
	case MsgPlaneLoaded:
		return PlaneLoaded{Aircraft: int32(param)}
	case MsgAirportLoaded:
		return AirportLoaded{}
	case MsgSceneryLoaded:
		return SceneryLoaded{}
	case MsgAirplaneCountChanged:
		return AirplaneCountChanged{}
	case MsgPlaneUnloaded:
		return PlaneUnloaded{Aircraft: int32(param)}
	case MsgWillWritePrefs:
		return WillWritePrefs{}
	case MsgLiveryLoaded:
		return LiveryLoaded{Aircraft: int32(param)}
	case MsgEnteredVR:
		return EnteredVR{}
	case MsgExitingVR:
		return ExitingVR{}
	case MsgReleasePlanes:
		return ReleasePlanes{}
	case MsgFmodBankLoaded:
		return FmodBankLoaded{Bank: int32(param)}
	case MsgFmodBankUnloading:
		return FmodBankUnloading{Bank: int32(param)}
	case MsgDataRefsAdded:
		return DataRefsAdded{Total: int32(param)}
	default:
		return CustomMessage{Sender: sender, Code: code, Param: param}
	}
}
