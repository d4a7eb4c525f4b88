package swayinput

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"

	"codeberg.org/miketth/swayinput/pkg/inputsettings"
	"go.uber.org/zap"
)

const KeyboardFragment = "10-keyboard"

type Daemon struct {
	state   inputsettings.DeviceState
	applied atomic.Int64

	listener   EventListener
	translator *inputsettings.Translator
	registry   Registry
	store      StateStore
	fragments  FragmentWriter
	log        *zap.SugaredLogger
}

func NewDaemon(
	listener EventListener,
	channel inputsettings.Channel,
	registry Registry,
	store StateStore,
	fragments FragmentWriter,
	log *zap.SugaredLogger,
) (*Daemon, error) {
	keyboard, found, err := store.LoadKeyboard()
	if err != nil {
		return nil, fmt.Errorf("load keyboard state: %w", err)
	}
	if !found {
		keyboard = inputsettings.DefaultKeyboardState()
	}

	return &Daemon{
		state: inputsettings.DeviceState{
			Layouts:               registry,
			Keyboard:              keyboard,
			PrimaryButton:         inputsettings.NewPrimaryButtonModel(),
			TouchpadPrimaryButton: inputsettings.NewPrimaryButtonModel(),
		},
		listener:   listener,
		translator: inputsettings.NewTranslator(channel, log),
		registry:   registry,
		store:      store,
		fragments:  fragments,
		log:        log,
	}, nil
}

// Applied returns how many events were fully applied. Safe for concurrent use.
func (d *Daemon) Applied() int64 {
	return d.applied.Load()
}

func (d *Daemon) Keyboard() inputsettings.KeyboardState {
	return d.state.Keyboard
}

// ProcessLines handles events until the listener fails or ctx is done. Bad or
// failing events are logged and skipped.
func (d *Daemon) ProcessLines(ctx context.Context) error {
	for {
		resultCh := make(chan string, 1)
		errCh := make(chan error, 1)
		go func() {
			line, err := d.listener.ReadLine()
			if err != nil {
				errCh <- err
				return
			}
			resultCh <- line
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line := <-resultCh:
			if err := d.processLine(line); err != nil {
				d.log.Errorw("failed to process event", "line", line, "error", err)
			}
		case err := <-errCh:
			return fmt.Errorf("get line: %w", err)
		}
	}
}

func (d *Daemon) processLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	ev, err := inputsettings.DecodeEvent([]byte(line))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return d.Handle(ev)
}

// Handle applies one event. The keyboard state is committed only when every
// command was accepted; a changed state is stored and snapshotted to the
// keyboard fragment.
func (d *Daemon) Handle(ev inputsettings.Event) error {
	next := d.state
	next.Keyboard.ActiveLayouts = slices.Clone(d.state.Keyboard.ActiveLayouts)
	next.Keyboard.Update(ev)

	d.checkOption(ev)

	// the translator merges options itself, so it has to see the options
	// from before the event
	translated := next
	translated.Keyboard.XkbOptions = d.state.Keyboard.XkbOptions

	sent, err := d.translator.Apply(ev, &translated)
	if err != nil {
		var chErr *inputsettings.ChannelError
		if errors.As(err, &chErr) && len(sent) > 0 {
			d.log.Warnw("event partially applied", "sent", sent)
		}
		return err
	}

	d.applied.Add(1)

	changed := !keyboardEqual(d.state.Keyboard, next.Keyboard)
	d.state = next
	if !changed {
		return nil
	}

	if err := d.store.SaveKeyboard(d.state.Keyboard); err != nil {
		return fmt.Errorf("save keyboard state: %w", err)
	}

	if err := d.fragments.Save(KeyboardFragment, d.state.Keyboard.Fragment(d.registry)); err != nil {
		return fmt.Errorf("save keyboard fragment: %w", err)
	}
	d.log.Debugw("saved keyboard fragment", "name", KeyboardFragment)

	return nil
}

func (d *Daemon) checkOption(ev inputsettings.Event) {
	sel, ok := ev.(inputsettings.SpecialCharacterSelect)
	if !ok || sel.Option == "" {
		return
	}

	prefix := sel.Key.Prefix()
	if !strings.HasPrefix(sel.Option, prefix) {
		d.log.Warnw("option does not belong to its category", "option", sel.Option, "prefix", prefix)
		return
	}
	if !slices.Contains(d.registry.OptionsWithPrefix(prefix), sel.Option) {
		d.log.Warnw("option not found in xkb registry", "option", sel.Option)
	}
}

func keyboardEqual(a, b inputsettings.KeyboardState) bool {
	return slices.Equal(a.ActiveLayouts, b.ActiveLayouts) &&
		a.XkbOptions == b.XkbOptions &&
		a.RepeatDelay == b.RepeatDelay &&
		a.RepeatRate == b.RepeatRate &&
		a.Numlock == b.Numlock
}
