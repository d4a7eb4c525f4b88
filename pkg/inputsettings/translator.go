package inputsettings

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

// leftHandedSlot is the position in a primary button model whose activation
// means the device is used left-handed.
const leftHandedSlot = 1

type Translator struct {
	channel Channel
	log     *zap.SugaredLogger
}

func NewTranslator(channel Channel, log *zap.SugaredLogger) *Translator {
	return &Translator{
		channel: channel,
		log:     log,
	}
}

// Apply translates ev and sends the resulting commands in order. It stops at
// the first failing command; commands already sent stay in effect.
func (t *Translator) Apply(ev Event, st *DeviceState) ([]string, error) {
	cmds, err := Translate(ev, st)
	if err != nil {
		return nil, fmt.Errorf("translate %T: %w", ev, err)
	}

	for i, cmd := range cmds {
		if err := Send(t.channel, cmd); err != nil {
			return cmds[:i], err
		}
		t.log.Infow("applied sway command", "command", cmd)
	}

	return cmds, nil
}

// Translate maps a settings change to the sway commands that apply it. Events
// without a runtime counterpart yield no commands.
func Translate(ev Event, st *DeviceState) ([]string, error) {
	switch ev := ev.(type) {
	case SetRepeatDelay:
		return one("input type:keyboard repeat_delay %d", ev.Delay), nil

	case SetRepeatRate:
		return one("input type:keyboard repeat_rate %d", ev.Rate), nil

	case SetNumlockState:
		// xkb_numlock is only read from the config at startup
		return nil, nil

	case SpecialCharacterSelect:
		prefix := ev.Key.Prefix()
		if prefix == "" {
			return nil, fmt.Errorf("unknown special key %d", ev.Key)
		}
		options := MergeOptions(st.Keyboard.XkbOptions, prefix, ev.Option)
		return one("input type:keyboard xkb_options %s", quote(options)), nil

	case SourceAdd:
		return layoutCommands(st), nil

	case SourceContext:
		switch ev.Action {
		case SourceRemove, SourceMoveUp, SourceMoveDown:
			return layoutCommands(st), nil
		}
		return nil, nil

	case UIOnly:
		return nil, nil

	case DisableWhileTyping:
		return one("input %s dwt %s", DeviceClassFor(ev.Touchpad).selector(), enabled(ev.Enabled)), nil

	case PrimaryButtonSelected:
		return primaryButtonCommands(ev, st)

	case SetAcceleration:
		profile := "flat"
		if ev.Enabled {
			profile = "adaptive"
		}
		return one("input %s accel_profile %s", DeviceClassFor(ev.Touchpad).selector(), profile), nil

	case SetPointerSpeed:
		return one("input %s pointer_accel %s", DeviceClassFor(ev.Touchpad).selector(), formatFloat(ev.Speed)), nil

	case SetNaturalScroll:
		return one("input %s natural_scroll %s", DeviceClassFor(ev.Touchpad).selector(), enabled(ev.Enabled)), nil

	case SetSecondaryClickBehavior:
		return one("input %s click_method %s", DeviceClassFor(ev.Touchpad).selector(), ev.Method.swayToken()), nil

	case SetScrollFactor:
		return one("input %s scroll_factor %s", DeviceClassFor(ev.Touchpad).selector(), formatFloat(ev.Factor)), nil

	case SetScrollMethod:
		return one("input %s scroll_method %s", DeviceClassFor(ev.Touchpad).selector(), ev.Method.swayToken()), nil

	case TapToClick:
		return one("input %s tap %s", Touchpad.selector(), enabled(ev.Enabled)), nil
	}

	return nil, fmt.Errorf("unsupported event %T", ev)
}

func layoutCommands(st *DeviceState) []string {
	agg := AggregateLayouts(st.Keyboard.ActiveLayouts, st.Layouts)
	if agg.Layouts == "" {
		return nil
	}

	cmds := []string{"input type:keyboard xkb_layout " + quote(agg.Layouts)}
	if agg.HasVariants {
		cmds = append(cmds, "input type:keyboard xkb_variant "+quote(agg.Variants))
	}
	return cmds
}

func primaryButtonCommands(ev PrimaryButtonSelected, st *DeviceState) ([]string, error) {
	class := DeviceClassFor(ev.Touchpad)
	model := st.PrimaryButton
	if ev.Touchpad {
		model = st.TouchpadPrimaryButton
	}
	if model == nil {
		return nil, fmt.Errorf("%s primary button model: %w", class, ErrLookupMiss)
	}

	model.Activate(ev.Entity)
	left, ok := model.EntityAt(leftHandedSlot)
	if !ok {
		return nil, fmt.Errorf("%s primary button left entity: %w", class, ErrLookupMiss)
	}

	return one("input %s left_handed %s", class.selector(), enabled(model.Active() == left)), nil
}

func one(format string, args ...any) []string {
	return []string{fmt.Sprintf(format, args...)}
}

// quote wraps s in double quotes as-is; sway does not understand Go escapes.
func quote(s string) string {
	return "\"" + s + "\""
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
