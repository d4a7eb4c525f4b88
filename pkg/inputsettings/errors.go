package inputsettings

import (
	"errors"
	"fmt"
)

// ErrLookupMiss is returned when a selection model has no entity at the
// position the translator needs.
var ErrLookupMiss = errors.New("lookup miss")

type ChannelError struct {
	Command string
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("run %q: %v", e.Command, e.Err)
}

func (e *ChannelError) Unwrap() error {
	return e.Err
}

// Send runs one command on the channel. Logging is left to the caller.
func Send(ch Channel, command string) error {
	if err := ch.RunCommand(command); err != nil {
		return &ChannelError{Command: command, Err: err}
	}
	return nil
}

func errUnknownName(kind string, text []byte) error {
	return fmt.Errorf("unknown %s %q", kind, text)
}
