package xkblayouts

import (
	"encoding/xml"
	"fmt"
	"os"
	"slices"
	"strings"

	"codeberg.org/miketth/swayinput/pkg/inputsettings"
)

func ParseLayouts(path string) (*XkbConfigRegistry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	registry := &XkbConfigRegistry{}
	err = xml.NewDecoder(file).Decode(registry)
	if err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}

	return registry, nil
}

// ID returns the layout id in xkb notation, e.g. "us" or "de(nodeadkeys)".
func ID(layout, variant string) inputsettings.LayoutID {
	if variant == "" {
		return inputsettings.LayoutID(layout)
	}
	return inputsettings.LayoutID(layout + "(" + variant + ")")
}

// Registry indexes the layouts of one or more xkb rule files by id.
type Registry struct {
	entries map[inputsettings.LayoutID]inputsettings.LayoutEntry
	options []string
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[inputsettings.LayoutID]inputsettings.LayoutEntry)}
}

// Load parses path and adds its layouts. Entries already present are kept, so
// base rules should be loaded before extras.
func (r *Registry) Load(path string, source inputsettings.LayoutSource) error {
	parsed, err := ParseLayouts(path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	r.Add(parsed, source)
	return nil
}

func (r *Registry) Add(parsed *XkbConfigRegistry, source inputsettings.LayoutSource) {
	for _, l := range parsed.LayoutList.Layout {
		r.add(l.ConfigItem.Name, "", l.ConfigItem.Description, source)

		for _, v := range l.VariantList.Variant {
			r.add(l.ConfigItem.Name, v.ConfigItem.Name, v.ConfigItem.Description, source)
		}
	}

	for _, g := range parsed.OptionList.Group {
		for _, o := range g.Option {
			if !slices.Contains(r.options, o.ConfigItem.Name) {
				r.options = append(r.options, o.ConfigItem.Name)
			}
		}
	}
}

func (r *Registry) add(layout, variant, description string, source inputsettings.LayoutSource) {
	id := ID(layout, variant)
	if _, ok := r.entries[id]; ok {
		return
	}

	r.entries[id] = inputsettings.LayoutEntry{
		Locale:      layout,
		Variant:     variant,
		Description: description,
		Source:      source,
	}
}

func (r *Registry) Lookup(id inputsettings.LayoutID) (inputsettings.LayoutEntry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// OptionsWithPrefix lists the known xkb options of one category, e.g.
// "compose:" for the compose key choices.
func (r *Registry) OptionsWithPrefix(prefix string) []string {
	var out []string
	for _, o := range r.options {
		if strings.HasPrefix(o, prefix) {
			out = append(out, o)
		}
	}
	return out
}
