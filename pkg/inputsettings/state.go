package inputsettings

import (
	"fmt"
	"slices"
	"strings"
)

const (
	DefaultRepeatDelay uint32 = 600
	DefaultRepeatRate  uint32 = 25
)

type KeyboardState struct {
	ActiveLayouts []LayoutID
	XkbOptions    string
	RepeatDelay   uint32
	RepeatRate    uint32
	Numlock       NumlockState
}

func DefaultKeyboardState() KeyboardState {
	return KeyboardState{
		ActiveLayouts: []LayoutID{"us"},
		RepeatDelay:   DefaultRepeatDelay,
		RepeatRate:    DefaultRepeatRate,
		Numlock:       NumlockLastBoot,
	}
}

// AddSource appends id unless it is already active.
func (k *KeyboardState) AddSource(id LayoutID) {
	if slices.Contains(k.ActiveLayouts, id) {
		return
	}
	k.ActiveLayouts = append(k.ActiveLayouts, id)
}

func (k *KeyboardState) RemoveSource(id LayoutID) {
	k.ActiveLayouts = slices.DeleteFunc(k.ActiveLayouts, func(l LayoutID) bool {
		return l == id
	})
}

// MoveSource swaps id with its neighbour; delta is -1 for up and 1 for down.
// Moves past either end are ignored.
func (k *KeyboardState) MoveSource(id LayoutID, delta int) {
	idx := slices.Index(k.ActiveLayouts, id)
	if idx < 0 {
		return
	}
	target := idx + delta
	if target < 0 || target >= len(k.ActiveLayouts) {
		return
	}
	k.ActiveLayouts[idx], k.ActiveLayouts[target] = k.ActiveLayouts[target], k.ActiveLayouts[idx]
}

// Update applies the state side of an event: source list edits, the merged
// xkb options and the repeat and numlock values. Events without keyboard
// state are ignored.
func (k *KeyboardState) Update(ev Event) {
	switch ev := ev.(type) {
	case SetRepeatDelay:
		k.RepeatDelay = ev.Delay
	case SetRepeatRate:
		k.RepeatRate = ev.Rate
	case SetNumlockState:
		k.Numlock = ev.State
	case SpecialCharacterSelect:
		if prefix := ev.Key.Prefix(); prefix != "" {
			k.XkbOptions = MergeOptions(k.XkbOptions, prefix, ev.Option)
		}
	case SourceAdd:
		k.AddSource(ev.ID)
	case SourceContext:
		switch ev.Action {
		case SourceRemove:
			k.RemoveSource(ev.ID)
		case SourceMoveUp:
			k.MoveSource(ev.ID, -1)
		case SourceMoveDown:
			k.MoveSource(ev.ID, 1)
		}
	}
}

// Fragment renders the keyboard state as a sway config block. Numlock is only
// settable here since sway ignores xkb_numlock at runtime.
func (k KeyboardState) Fragment(registry LayoutRegistry) string {
	var b strings.Builder
	b.WriteString("input type:keyboard {\n")

	agg := AggregateLayouts(k.ActiveLayouts, registry)
	if agg.Layouts != "" {
		fmt.Fprintf(&b, "    xkb_layout %s\n", quote(agg.Layouts))
		if agg.HasVariants {
			fmt.Fprintf(&b, "    xkb_variant %s\n", quote(agg.Variants))
		}
	}
	if k.XkbOptions != "" {
		fmt.Fprintf(&b, "    xkb_options %s\n", quote(k.XkbOptions))
	}
	switch k.Numlock {
	case NumlockBootOn:
		b.WriteString("    xkb_numlock enabled\n")
	case NumlockBootOff:
		b.WriteString("    xkb_numlock disabled\n")
	}
	if k.RepeatDelay != 0 {
		fmt.Fprintf(&b, "    repeat_delay %d\n", k.RepeatDelay)
	}
	if k.RepeatRate != 0 {
		fmt.Fprintf(&b, "    repeat_rate %d\n", k.RepeatRate)
	}

	b.WriteString("}\n")
	return b.String()
}
