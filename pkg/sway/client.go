package sway

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	gosway "github.com/joshuarubin/go-sway"
)

var (
	ErrCommandFailed = errors.New("command failed")
	ErrParse         = errors.New("command parse error")
	ErrNoDevice      = errors.New("no matching input device")
)

var errorMapper = map[*regexp.Regexp]error{
	regexp.MustCompile(`(?i)unknown/invalid command`): ErrParse,
	regexp.MustCompile(`(?i)^expected `):               ErrParse,
	regexp.MustCompile(`(?i)no matching input`):        ErrNoDevice,
}

type Version struct {
	HumanReadable string
	Major         int
	Minor         int
	Patch         int
}

// ipc is the part of the go-sway client used here.
type ipc interface {
	RunCommand(ctx context.Context, command string) ([]gosway.RunCommandReply, error)
	GetVersion(ctx context.Context) (*gosway.Version, error)
}

// Client sends commands to sway over its IPC socket. The connection lives
// until Close.
type Client struct {
	ctx    context.Context
	cancel context.CancelFunc
	conn   ipc
}

func Connect() (*Client, error) {
	socketPath, err := GetSocketPath()
	if err != nil {
		return nil, fmt.Errorf("get socket path: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	conn, err := gosway.New(ctx, gosway.WithSocketPath(socketPath))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("dial: %w", err)
	}

	return newClient(ctx, cancel, conn), nil
}

func newClient(ctx context.Context, cancel context.CancelFunc, conn ipc) *Client {
	return &Client{
		ctx:    ctx,
		cancel: cancel,
		conn:   conn,
	}
}

func (c *Client) Close() error {
	c.cancel()
	return nil
}

func (c *Client) RunCommand(command string) error {
	replies, err := c.conn.RunCommand(c.ctx, command)

	for _, r := range replies {
		if !r.Success {
			return mapError(r.Error)
		}
	}
	if err != nil {
		return fmt.Errorf("run command: %w", err)
	}

	return nil
}

func (c *Client) GetVersion() (Version, error) {
	v, err := c.conn.GetVersion(c.ctx)
	if err != nil {
		return Version{}, fmt.Errorf("get version: %w", err)
	}

	return Version{
		HumanReadable: v.HumanReadable,
		Major:         int(v.Major),
		Minor:         int(v.Minor),
		Patch:         int(v.Patch),
	}, nil
}

func mapError(msg string) error {
	msg = strings.TrimSpace(msg)
	for re, mappedErr := range errorMapper {
		if re.MatchString(msg) {
			return fmt.Errorf("%w: %s", mappedErr, msg)
		}
	}

	return fmt.Errorf("%w: %s", ErrCommandFailed, msg)
}
