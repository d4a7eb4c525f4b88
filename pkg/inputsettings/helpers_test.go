package inputsettings

import "errors"

type mapRegistry map[LayoutID]LayoutEntry

func (r mapRegistry) Lookup(id LayoutID) (LayoutEntry, bool) {
	e, ok := r[id]
	return e, ok
}

type recordingChannel struct {
	commands []string
	failOn   string
	err      error
}

func (c *recordingChannel) RunCommand(command string) error {
	if c.failOn != "" && command == c.failOn {
		return c.err
	}
	c.commands = append(c.commands, command)
	return nil
}

var errBoom = errors.New("boom")

func testRegistry() mapRegistry {
	return mapRegistry{
		"us":             {Locale: "us"},
		"de(nodeadkeys)": {Locale: "de", Variant: "nodeadkeys", Description: "German (no dead keys)"},
		"fr":             {Locale: "fr"},
	}
}
