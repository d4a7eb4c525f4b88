package xkblayouts

import (
	"testing"

	"codeberg.org/miketth/swayinput/pkg/inputsettings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Load("testdata/evdev.xml", inputsettings.LayoutSourceBase))
	require.NoError(t, r.Load("testdata/evdev.extras.xml", inputsettings.LayoutSourceExtra))

	assert.Equal(t, 5, r.Len())

	us, ok := r.Lookup("us")
	require.True(t, ok)
	assert.Equal(t, inputsettings.LayoutEntry{
		Locale:      "us",
		Description: "English (US)",
		Source:      inputsettings.LayoutSourceBase,
	}, us)

	de, ok := r.Lookup("de(nodeadkeys)")
	require.True(t, ok)
	assert.Equal(t, "de", de.Locale)
	assert.Equal(t, "nodeadkeys", de.Variant)

	drix, ok := r.Lookup("us(drix)")
	require.True(t, ok)
	assert.Equal(t, inputsettings.LayoutSourceExtra, drix.Source)

	_, ok = r.Lookup("fr")
	assert.False(t, ok)
}

func TestRegistryLoadMissingFile(t *testing.T) {
	assert.Error(t, NewRegistry().Load("testdata/nope.xml", inputsettings.LayoutSourceBase))
}

func TestOptionsWithPrefix(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Load("testdata/evdev.xml", inputsettings.LayoutSourceBase))

	assert.Equal(t, []string{"compose:ralt", "compose:menu"}, r.OptionsWithPrefix("compose:"))
	assert.Equal(t, []string{"lv3:ralt_switch"}, r.OptionsWithPrefix("lv3:"))
	assert.Empty(t, r.OptionsWithPrefix("caps:"))
}

func TestID(t *testing.T) {
	assert.Equal(t, inputsettings.LayoutID("us"), ID("us", ""))
	assert.Equal(t, inputsettings.LayoutID("de(nodeadkeys)"), ID("de", "nodeadkeys"))
}
