package inputsettings

// Channel executes a single sway command. Implementations are synchronous and
// handle one command at a time.
type Channel interface {
	RunCommand(command string) error
}

type LayoutRegistry interface {
	Lookup(id LayoutID) (LayoutEntry, bool)
}

type SelectionModel interface {
	Activate(entity Entity)
	Active() Entity
	EntityAt(position int) (Entity, bool)
}

type LayoutID string

type LayoutEntry struct {
	Locale      string
	Variant     string
	Description string
	Source      LayoutSource
}

type LayoutSource int

const (
	LayoutSourceBase LayoutSource = iota
	LayoutSourceExtra
)

// DeviceState is the snapshot the translator reads from. Only the primary
// button models are mutated during translation.
type DeviceState struct {
	Layouts               LayoutRegistry
	Keyboard              KeyboardState
	PrimaryButton         SelectionModel
	TouchpadPrimaryButton SelectionModel
}
