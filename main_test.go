package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "STATUS=Applied 0 input settings changes", statusLine(0))
	assert.Equal(t, "STATUS=Applied 12 input settings changes", statusLine(12))
}

func TestSystemdNotifyLoopOutsideSystemd(t *testing.T) {
	t.Setenv("NOTIFY_SOCKET", "")

	called := false
	err := systemdNotifyLoop(context.Background(), func() int64 {
		called = true
		return 0
	})
	assert.NoError(t, err)
	assert.False(t, called)
}
