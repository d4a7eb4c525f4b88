package inputsettings

import "strings"

type LayoutAggregate struct {
	Layouts  string
	Variants string
	// HasVariants is false when every variant slot is empty; sway then gets
	// no xkb_variant command at all.
	HasVariants bool
}

// AggregateLayouts flattens the active layouts into the comma separated layout
// and variant lists sway expects. Position i of both lists refers to the same
// layout. Ids missing from the registry are skipped.
func AggregateLayouts(active []LayoutID, registry LayoutRegistry) LayoutAggregate {
	layouts := make([]string, 0, len(active))
	variants := make([]string, 0, len(active))
	hasVariants := false

	for _, id := range active {
		entry, ok := registry.Lookup(id)
		if !ok {
			continue
		}

		layouts = append(layouts, entry.Locale)
		variants = append(variants, entry.Variant)
		if entry.Variant != "" {
			hasVariants = true
		}
	}

	return LayoutAggregate{
		Layouts:     strings.Join(layouts, ","),
		Variants:    strings.Join(variants, ","),
		HasVariants: hasVariants,
	}
}
