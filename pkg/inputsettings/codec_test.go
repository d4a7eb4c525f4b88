package inputsettings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		in   string
		want Event
	}{
		{`{"type":"repeat_delay","delay":250}`, SetRepeatDelay{Delay: 250}},
		{`{"type":"numlock_state","state":"boot_on"}`, SetNumlockState{State: NumlockBootOn}},
		{`{"type":"special_character_select","key":"compose","option":"compose:ralt"}`, SpecialCharacterSelect{Key: SpecialKeyCompose, Option: "compose:ralt"}},
		{`{"type":"source_context","action":"move_down","id":"us"}`, SourceContext{Action: SourceMoveDown, ID: "us"}},
		{`{"type":"primary_button_selected","entity":2,"touchpad":true}`, PrimaryButtonSelected{Entity: 2, Touchpad: true}},
		{`{"type":"pointer_speed","speed":0.5}`, SetPointerSpeed{Speed: 0.5}},
		{`{"type":"scroll_method","method":"edge","touchpad":true}`, SetScrollMethod{Method: ScrollMethodEdge, Touchpad: true}},
		{`{"type":"scroll_method","method":"sideways"}`, SetScrollMethod{Method: ScrollMethodUnset}},
		{`{"type":"secondary_click_behavior","method":"clickfinger"}`, SetSecondaryClickBehavior{Method: ClickMethodClickfinger}},
		{`{"type":"tap_to_click","enabled":true}`, TapToClick{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := DecodeEvent([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeEventErrors(t *testing.T) {
	for _, in := range []string{
		`not json`,
		`{"type":"warp_drive"}`,
		`{"type":"special_character_select","key":"hyper"}`,
		`{"type":"repeat_rate","rate":"fast"}`,
	} {
		_, err := DecodeEvent([]byte(in))
		assert.Error(t, err, in)
	}
}
