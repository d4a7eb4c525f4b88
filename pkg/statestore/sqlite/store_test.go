package sqlite

import (
	"path/filepath"
	"testing"

	"codeberg.org/miketth/swayinput/pkg/inputsettings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T, path string) *StateStore {
	t.Helper()
	s, err := NewStateStore(path, zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStateStoreEmpty(t *testing.T) {
	s := newTestStore(t, filepath.Join(t.TempDir(), "state.db"))

	_, found, err := s.LoadKeyboard()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStateStoreRoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	state := inputsettings.KeyboardState{
		ActiveLayouts: []inputsettings.LayoutID{"de(nodeadkeys)", "us"},
		XkbOptions:    "compose:ralt",
		RepeatDelay:   250,
		RepeatRate:    40,
		Numlock:       inputsettings.NumlockBootOff,
	}

	first, err := NewStateStore(path, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.NoError(t, first.SaveKeyboard(state))
	require.NoError(t, first.Close())

	// reopening runs the migrations again, which must be a no-op
	s := newTestStore(t, path)
	loaded, found, err := s.LoadKeyboard()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, state, loaded)
}

func TestStateStoreReplacesLayouts(t *testing.T) {
	s := newTestStore(t, filepath.Join(t.TempDir(), "state.db"))

	state := inputsettings.DefaultKeyboardState()
	state.ActiveLayouts = []inputsettings.LayoutID{"us", "de", "fr"}
	require.NoError(t, s.SaveKeyboard(state))

	state.ActiveLayouts = []inputsettings.LayoutID{"fr", "us"}
	require.NoError(t, s.SaveKeyboard(state))

	loaded, _, err := s.LoadKeyboard()
	require.NoError(t, err)
	assert.Equal(t, []inputsettings.LayoutID{"fr", "us"}, loaded.ActiveLayouts)
}
