package swayinput

import "codeberg.org/miketth/swayinput/pkg/inputsettings"

type EventListener interface {
	ReadLine() (string, error)
}

type Registry interface {
	inputsettings.LayoutRegistry
	OptionsWithPrefix(prefix string) []string
}

type StateStore interface {
	LoadKeyboard() (inputsettings.KeyboardState, bool, error)
	SaveKeyboard(state inputsettings.KeyboardState) error
}

type FragmentWriter interface {
	Save(name, contents string) error
}
