package inputsettings

import (
	"encoding/json"
	"fmt"
)

type envelope struct {
	Type string `json:"type"`
}

var eventDecoders = map[string]func([]byte) (Event, error){
	"repeat_delay":             decode[SetRepeatDelay],
	"repeat_rate":              decode[SetRepeatRate],
	"numlock_state":            decode[SetNumlockState],
	"special_character_select": decode[SpecialCharacterSelect],
	"source_add":               decode[SourceAdd],
	"source_context":           decode[SourceContext],
	"ui":                       decode[UIOnly],
	"disable_while_typing":     decode[DisableWhileTyping],
	"primary_button_selected":  decode[PrimaryButtonSelected],
	"acceleration":             decode[SetAcceleration],
	"pointer_speed":            decode[SetPointerSpeed],
	"natural_scroll":           decode[SetNaturalScroll],
	"secondary_click_behavior": decode[SetSecondaryClickBehavior],
	"scroll_factor":            decode[SetScrollFactor],
	"scroll_method":            decode[SetScrollMethod],
	"tap_to_click":             decode[TapToClick],
}

// DecodeEvent parses one JSON event of the form {"type": "...", ...fields}.
func DecodeEvent(data []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}

	dec, ok := eventDecoders[env.Type]
	if !ok {
		return nil, fmt.Errorf("unknown event type %q", env.Type)
	}

	ev, err := dec(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", env.Type, err)
	}

	return ev, nil
}

func decode[T Event](data []byte) (Event, error) {
	var ev T
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	return ev, nil
}
