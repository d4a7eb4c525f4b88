package memory

import (
	"slices"
	"sync"

	"codeberg.org/miketth/swayinput/pkg/inputsettings"
)

type StateStore struct {
	keyboard *inputsettings.KeyboardState
	lock     sync.Mutex
}

func NewStateStore() *StateStore {
	return &StateStore{}
}

func (s *StateStore) LoadKeyboard() (inputsettings.KeyboardState, bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.keyboard == nil {
		return inputsettings.KeyboardState{}, false, nil
	}
	return clone(*s.keyboard), true, nil
}

func (s *StateStore) SaveKeyboard(state inputsettings.KeyboardState) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	c := clone(state)
	s.keyboard = &c
	return nil
}

func clone(state inputsettings.KeyboardState) inputsettings.KeyboardState {
	state.ActiveLayouts = slices.Clone(state.ActiveLayouts)
	return state
}
