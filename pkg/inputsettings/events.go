package inputsettings

// Event is a single settings change coming from the settings UI.
type Event interface {
	isEvent()
}

// Keyboard events.

type SetRepeatDelay struct {
	Delay uint32 `json:"delay"`
}

type SetRepeatRate struct {
	Rate uint32 `json:"rate"`
}

type SetNumlockState struct {
	State NumlockState `json:"state"`
}

// SpecialCharacterSelect replaces the option of the given category. An empty
// Option clears the category.
type SpecialCharacterSelect struct {
	Key    SpecialKey `json:"key"`
	Option string     `json:"option"`
}

type SourceAdd struct {
	ID LayoutID `json:"id"`
}

type SourceAction int

const (
	SourceRemove SourceAction = iota
	SourceMoveUp
	SourceMoveDown
	SourceSettings
	SourceViewLayout
)

var sourceActionNames = map[string]SourceAction{
	"remove":      SourceRemove,
	"move_up":     SourceMoveUp,
	"move_down":   SourceMoveDown,
	"settings":    SourceSettings,
	"view_layout": SourceViewLayout,
}

func (a *SourceAction) UnmarshalText(text []byte) error {
	v, ok := sourceActionNames[string(text)]
	if !ok {
		return errUnknownName("source action", text)
	}
	*a = v
	return nil
}

type SourceContext struct {
	Action SourceAction `json:"action"`
	ID     LayoutID     `json:"id"`
}

// UIOnly covers popover, search and context toggles that have no sway
// counterpart.
type UIOnly struct {
	Name string `json:"name"`
}

// Pointer and touchpad events. Touchpad selects the device class.

type DisableWhileTyping struct {
	Enabled  bool `json:"enabled"`
	Touchpad bool `json:"touchpad"`
}

type PrimaryButtonSelected struct {
	Entity   Entity `json:"entity"`
	Touchpad bool   `json:"touchpad"`
}

type SetAcceleration struct {
	Enabled  bool `json:"enabled"`
	Touchpad bool `json:"touchpad"`
}

type SetPointerSpeed struct {
	Speed    float64 `json:"speed"`
	Touchpad bool    `json:"touchpad"`
}

type SetNaturalScroll struct {
	Enabled  bool `json:"enabled"`
	Touchpad bool `json:"touchpad"`
}

type SetSecondaryClickBehavior struct {
	Method   ClickMethod `json:"method"`
	Touchpad bool        `json:"touchpad"`
}

type SetScrollFactor struct {
	Factor   float64 `json:"factor"`
	Touchpad bool    `json:"touchpad"`
}

type SetScrollMethod struct {
	Method   ScrollMethod `json:"method"`
	Touchpad bool         `json:"touchpad"`
}

type TapToClick struct {
	Enabled bool `json:"enabled"`
}

func (SetRepeatDelay) isEvent()            {}
func (SetRepeatRate) isEvent()             {}
func (SetNumlockState) isEvent()           {}
func (SpecialCharacterSelect) isEvent()    {}
func (SourceAdd) isEvent()                 {}
func (SourceContext) isEvent()             {}
func (UIOnly) isEvent()                    {}
func (DisableWhileTyping) isEvent()        {}
func (PrimaryButtonSelected) isEvent()     {}
func (SetAcceleration) isEvent()           {}
func (SetPointerSpeed) isEvent()           {}
func (SetNaturalScroll) isEvent()          {}
func (SetSecondaryClickBehavior) isEvent() {}
func (SetScrollFactor) isEvent()           {}
func (SetScrollMethod) isEvent()           {}
func (TapToClick) isEvent()                {}
