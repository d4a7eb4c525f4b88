package inputsettings

import "fmt"

type DeviceClass int

const (
	Keyboard DeviceClass = iota
	Pointer
	Touchpad
)

func DeviceClassFor(touchpad bool) DeviceClass {
	if touchpad {
		return Touchpad
	}
	return Pointer
}

func (d DeviceClass) String() string {
	switch d {
	case Keyboard:
		return "keyboard"
	case Pointer:
		return "pointer"
	case Touchpad:
		return "touchpad"
	}
	return fmt.Sprintf("DeviceClass(%d)", int(d))
}

// selector renders the sway input selector for the class, e.g. "type:touchpad".
func (d DeviceClass) selector() string {
	return "type:" + d.String()
}

type ClickMethod int

const (
	ClickMethodUnset ClickMethod = iota
	ClickMethodButtonAreas
	ClickMethodClickfinger
)

var clickMethodNames = map[string]ClickMethod{
	"":             ClickMethodUnset,
	"button_areas": ClickMethodButtonAreas,
	"clickfinger":  ClickMethodClickfinger,
}

// swayToken maps the method to its click_method argument. Anything unknown
// disables click emulation.
func (m ClickMethod) swayToken() string {
	switch m {
	case ClickMethodButtonAreas:
		return "button_areas"
	case ClickMethodClickfinger:
		return "clickfinger"
	default:
		return "none"
	}
}

// UnmarshalText never fails; unrecognized names decode as ClickMethodUnset.
func (m *ClickMethod) UnmarshalText(text []byte) error {
	*m = clickMethodNames[string(text)]
	return nil
}

type ScrollMethod int

const (
	ScrollMethodUnset ScrollMethod = iota
	ScrollMethodNoScroll
	ScrollMethodTwoFinger
	ScrollMethodEdge
	ScrollMethodOnButtonDown
)

var scrollMethodNames = map[string]ScrollMethod{
	"":               ScrollMethodUnset,
	"none":           ScrollMethodNoScroll,
	"two_finger":     ScrollMethodTwoFinger,
	"edge":           ScrollMethodEdge,
	"on_button_down": ScrollMethodOnButtonDown,
}

func (m ScrollMethod) swayToken() string {
	switch m {
	case ScrollMethodTwoFinger:
		return "two_finger"
	case ScrollMethodEdge:
		return "edge"
	case ScrollMethodOnButtonDown:
		return "on_button_down"
	default:
		return "none"
	}
}

// UnmarshalText never fails; unrecognized names decode as ScrollMethodUnset.
func (m *ScrollMethod) UnmarshalText(text []byte) error {
	*m = scrollMethodNames[string(text)]
	return nil
}

type NumlockState int

const (
	NumlockLastBoot NumlockState = iota
	NumlockBootOn
	NumlockBootOff
)

var numlockNames = map[string]NumlockState{
	"last_boot": NumlockLastBoot,
	"boot_on":   NumlockBootOn,
	"boot_off":  NumlockBootOff,
}

func (n *NumlockState) UnmarshalText(text []byte) error {
	v, ok := numlockNames[string(text)]
	if !ok {
		return errUnknownName("numlock state", text)
	}
	*n = v
	return nil
}

// SpecialKey is a category of xkb options, identified by its option prefix.
type SpecialKey int

const (
	SpecialKeyAlternateCharacters SpecialKey = iota
	SpecialKeyCompose
	SpecialKeyCapsLock
)

var specialKeyNames = map[string]SpecialKey{
	"alternate_characters": SpecialKeyAlternateCharacters,
	"compose":              SpecialKeyCompose,
	"caps_lock":            SpecialKeyCapsLock,
}

func (k SpecialKey) Prefix() string {
	switch k {
	case SpecialKeyAlternateCharacters:
		return "lv3:"
	case SpecialKeyCompose:
		return "compose:"
	case SpecialKeyCapsLock:
		return "caps:"
	}
	return ""
}

func (k *SpecialKey) UnmarshalText(text []byte) error {
	v, ok := specialKeyNames[string(text)]
	if !ok {
		return errUnknownName("special key", text)
	}
	*k = v
	return nil
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
