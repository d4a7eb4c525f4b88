package configd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	DefaultDirectory = "~/.config/sway/config.d"
	Extension        = ".conf"
)

var ErrNoHome = errors.New("could not find home directory")

// PersistError is the single error kind returned by Persister.
type PersistError struct {
	Name string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Name, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// Persister writes named config fragments into one directory. Every Save
// replaces the whole file; writes are not atomic.
type Persister struct {
	dir  string
	home func() string
}

func New(dir string) *Persister {
	if dir == "" {
		dir = DefaultDirectory
	}
	return &Persister{
		dir:  dir,
		home: func() string { return xdg.Home },
	}
}

// Save writes contents to <dir>/<name>.conf, creating dir as needed.
func (p *Persister) Save(name, contents string) error {
	path, err := p.Path(name)
	if err != nil {
		return &PersistError{Name: name, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &PersistError{Name: name, Err: fmt.Errorf("create config dir: %w", err)}
	}

	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return &PersistError{Name: name, Err: fmt.Errorf("write file: %w", err)}
	}

	return nil
}

// Path returns the file a fragment called name is written to.
func (p *Persister) Path(name string) (string, error) {
	dir, err := p.resolveDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+Extension), nil
}

func (p *Persister) resolveDir() (string, error) {
	if p.dir != "~" && !strings.HasPrefix(p.dir, "~/") {
		return p.dir, nil
	}

	home := p.home()
	if home == "" {
		return "", ErrNoHome
	}

	return filepath.Join(home, strings.TrimPrefix(p.dir, "~")), nil
}
