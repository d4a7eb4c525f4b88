package sway

import (
	"errors"
	"fmt"
	"os"
)

var ErrNotRunning = errors.New("sway might not be running")

func GetSocketPath() (string, error) {
	path := os.Getenv("SWAYSOCK")
	if path == "" {
		return "", fmt.Errorf("SWAYSOCK is not set, %w", ErrNotRunning)
	}

	return path, nil
}
