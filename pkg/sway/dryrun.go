package sway

import "go.uber.org/zap"

// DryRun logs commands instead of sending them.
type DryRun struct {
	Log *zap.SugaredLogger
}

func (d DryRun) RunCommand(command string) error {
	d.Log.Infow("dry run, not sending", "command", command)
	return nil
}
