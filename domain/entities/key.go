package entities

import "fmt"

// VirtualKey is a layout-independent key code as delivered by the host.
type VirtualKey byte

// Virtual key codes defined by the host ABI.
const (
	VKeyBack     VirtualKey = 0x08
	VKeyTab      VirtualKey = 0x09
	VKeyClear    VirtualKey = 0x0C
	VKeyReturn   VirtualKey = 0x0D
	VKeyEscape   VirtualKey = 0x1B
	VKeySpace    VirtualKey = 0x20
	VKeyPrior    VirtualKey = 0x21
	VKeyNext     VirtualKey = 0x22
	VKeyEnd      VirtualKey = 0x23
	VKeyHome     VirtualKey = 0x24
	VKeyLeft     VirtualKey = 0x25
	VKeyUp       VirtualKey = 0x26
	VKeyRight    VirtualKey = 0x27
	VKeyDown     VirtualKey = 0x28
	VKeySelect   VirtualKey = 0x29
	VKeyPrint    VirtualKey = 0x2A
	VKeyExecute  VirtualKey = 0x2B
	VKeySnapshot VirtualKey = 0x2C
	VKeyInsert   VirtualKey = 0x2D
	VKeyDelete   VirtualKey = 0x2E
	VKeyHelp     VirtualKey = 0x2F
	VKey0        VirtualKey = 0x30
	VKey1        VirtualKey = 0x31
	VKey2        VirtualKey = 0x32
	VKey3        VirtualKey = 0x33
	VKey4        VirtualKey = 0x34
	VKey5        VirtualKey = 0x35
	VKey6        VirtualKey = 0x36
	VKey7        VirtualKey = 0x37
	VKey8        VirtualKey = 0x38
	VKey9        VirtualKey = 0x39
	VKeyA        VirtualKey = 0x41
	VKeyB        VirtualKey = 0x42
	VKeyC        VirtualKey = 0x43
	VKeyD        VirtualKey = 0x44
	VKeyE        VirtualKey = 0x45
	VKeyF        VirtualKey = 0x46
	VKeyG        VirtualKey = 0x47
	VKeyH        VirtualKey = 0x48
	VKeyI        VirtualKey = 0x49
	VKeyJ        VirtualKey = 0x4A
	VKeyK        VirtualKey = 0x4B
	VKeyL        VirtualKey = 0x4C
	VKeyM        VirtualKey = 0x4D
	VKeyN        VirtualKey = 0x4E
	VKeyO        VirtualKey = 0x4F
	VKeyP        VirtualKey = 0x50
	VKeyQ        VirtualKey = 0x51
	VKeyR        VirtualKey = 0x52
	VKeyS        VirtualKey = 0x53
	VKeyT        VirtualKey = 0x54
	VKeyU        VirtualKey = 0x55
	VKeyV        VirtualKey = 0x56
	VKeyW        VirtualKey = 0x57
	VKeyX        VirtualKey = 0x58
	VKeyY        VirtualKey = 0x59
	VKeyZ        VirtualKey = 0x5A
	VKeyNumpad0  VirtualKey = 0x60
	VKeyNumpad1  VirtualKey = 0x61
	VKeyNumpad2  VirtualKey = 0x62
	VKeyNumpad3  VirtualKey = 0x63
	VKeyNumpad4  VirtualKey = 0x64
	VKeyNumpad5  VirtualKey = 0x65
	VKeyNumpad6  VirtualKey = 0x66
	VKeyNumpad7  VirtualKey = 0x67
	VKeyNumpad8  VirtualKey = 0x68
	VKeyNumpad9  VirtualKey = 0x69
	VKeyMultiply VirtualKey = 0x6A
	VKeyAdd      VirtualKey = 0x6B
	VKeySubtract VirtualKey = 0x6D
	VKeyDecimal  VirtualKey = 0x6E
	VKeyDivide   VirtualKey = 0x6F
	VKeyF1       VirtualKey = 0x70
	VKeyF2       VirtualKey = 0x71
	VKeyF3       VirtualKey = 0x72
	VKeyF4       VirtualKey = 0x73
	VKeyF5       VirtualKey = 0x74
	VKeyF6       VirtualKey = 0x75
	VKeyF7       VirtualKey = 0x76
	VKeyF8       VirtualKey = 0x77
	VKeyF9       VirtualKey = 0x78
	VKeyF10      VirtualKey = 0x79
	VKeyF11      VirtualKey = 0x7A
	VKeyF12      VirtualKey = 0x7B
)

var virtualKeyNames = map[VirtualKey]string{
	VKeyBack: "backspace", VKeyTab: "tab", VKeyClear: "clear",
	VKeyReturn: "return", VKeyEscape: "escape", VKeySpace: "space",
	VKeyPrior: "page up", VKeyNext: "page down", VKeyEnd: "end",
	VKeyHome: "home", VKeyLeft: "left", VKeyUp: "up", VKeyRight: "right",
	VKeyDown: "down", VKeySelect: "select", VKeyPrint: "print",
	VKeyExecute: "execute", VKeySnapshot: "snapshot", VKeyInsert: "insert",
	VKeyDelete: "delete", VKeyHelp: "help",
	VKeyMultiply: "numpad *", VKeyAdd: "numpad +",
	VKeySubtract: "numpad -", VKeyDecimal: "numpad .", VKeyDivide: "numpad /",
}

// VirtualKeyFromRaw converts the host's raw virtual key code.
// Unknown codes are rejected so trampolines can log and continue.
func VirtualKeyFromRaw(raw byte) (VirtualKey, error) {
	k := VirtualKey(raw)
	if _, ok := virtualKeyNames[k]; ok {
		return k, nil
	}
	switch {
	case k >= VKey0 && k <= VKey9,
		k >= VKeyA && k <= VKeyZ,
		k >= VKeyNumpad0 && k <= VKeyNumpad9,
		k >= VKeyF1 && k <= VKeyF12:
		return k, nil
	}
	return 0, fmt.Errorf("unknown virtual key %#x", raw)
}

// String returns a human readable description of the key.
func (k VirtualKey) String() string {
	if name, ok := virtualKeyNames[k]; ok {
		return name
	}
	switch {
	case k >= VKey0 && k <= VKey9, k >= VKeyA && k <= VKeyZ:
		return string(rune(k))
	case k >= VKeyNumpad0 && k <= VKeyNumpad9:
		return fmt.Sprintf("numpad %c", rune('0'+k-VKeyNumpad0))
	case k >= VKeyF1 && k <= VKeyF12:
		return fmt.Sprintf("F%d", int(k-VKeyF1)+1)
	default:
		return fmt.Sprintf("virtual key %#x", byte(k))
	}
}
