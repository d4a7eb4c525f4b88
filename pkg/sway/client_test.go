package sway

import (
	"context"
	"errors"
	"testing"

	gosway "github.com/joshuarubin/go-sway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeIPC struct {
	commands []string
	replies  []gosway.RunCommandReply
	err      error
	version  *gosway.Version
}

func (f *fakeIPC) RunCommand(_ context.Context, command string) ([]gosway.RunCommandReply, error) {
	f.commands = append(f.commands, command)
	return f.replies, f.err
}

func (f *fakeIPC) GetVersion(context.Context) (*gosway.Version, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.version, nil
}

func newFakeClient(t *testing.T, fake *fakeIPC) *Client {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	c := newClient(ctx, cancel, fake)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRunCommandSuccess(t *testing.T) {
	fake := &fakeIPC{replies: []gosway.RunCommandReply{{Success: true}}}
	c := newFakeClient(t, fake)

	require.NoError(t, c.RunCommand("input type:keyboard repeat_rate 25"))
	assert.Equal(t, []string{"input type:keyboard repeat_rate 25"}, fake.commands)
}

func TestRunCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		replies []gosway.RunCommandReply
		want    error
	}{
		{"expected token", []gosway.RunCommandReply{{Error: "Expected 'enabled' or 'disabled'"}}, ErrParse},
		{"invalid command", []gosway.RunCommandReply{{Error: "Unknown/invalid command 'inptu'"}}, ErrParse},
		{"no device", []gosway.RunCommandReply{{Error: "No matching input device found"}}, ErrNoDevice},
		{"other", []gosway.RunCommandReply{{Success: true}, {Error: "something else"}}, ErrCommandFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newFakeClient(t, &fakeIPC{replies: tt.replies})
			err := c.RunCommand("input type:pointer dwt maybe")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRunCommandFailedReplyWinsOverTransportError(t *testing.T) {
	c := newFakeClient(t, &fakeIPC{
		replies: []gosway.RunCommandReply{{Error: "No matching input device found"}},
		err:     errors.New("command failed"),
	})

	assert.ErrorIs(t, c.RunCommand("input type:touchpad tap enabled"), ErrNoDevice)
}

func TestRunCommandTransportError(t *testing.T) {
	connErr := errors.New("broken pipe")
	c := newFakeClient(t, &fakeIPC{err: connErr})

	err := c.RunCommand("nop")
	assert.ErrorIs(t, err, connErr)
	assert.NotErrorIs(t, err, ErrCommandFailed)
}

func TestGetVersion(t *testing.T) {
	c := newFakeClient(t, &fakeIPC{version: &gosway.Version{HumanReadable: "1.9", Major: 1, Minor: 9}})

	v, err := c.GetVersion()
	require.NoError(t, err)
	assert.Equal(t, Version{HumanReadable: "1.9", Major: 1, Minor: 9}, v)
}

func TestConnectWithoutSocket(t *testing.T) {
	t.Setenv("SWAYSOCK", "")
	_, err := Connect()
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestGetSocketPath(t *testing.T) {
	t.Setenv("SWAYSOCK", "")
	_, err := GetSocketPath()
	assert.ErrorIs(t, err, ErrNotRunning)

	t.Setenv("SWAYSOCK", "/run/user/1000/sway-ipc.sock")
	path, err := GetSocketPath()
	require.NoError(t, err)
	assert.Equal(t, "/run/user/1000/sway-ipc.sock", path)
}

func TestDryRun(t *testing.T) {
	assert.NoError(t, DryRun{Log: zap.NewNop().Sugar()}.RunCommand("input type:touchpad tap enabled"))
}
