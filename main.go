package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"codeberg.org/miketth/swayinput/pkg/configd"
	"codeberg.org/miketth/swayinput/pkg/inputsettings"
	"codeberg.org/miketth/swayinput/pkg/statestore/sqlite"
	"codeberg.org/miketth/swayinput/pkg/sway"
	"codeberg.org/miketth/swayinput/pkg/swayinput"
	"codeberg.org/miketth/swayinput/pkg/xkblayouts"
	"github.com/adrg/xdg"
	"github.com/coreos/go-systemd/v22/daemon"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const statusInterval = 30 * time.Second

func main() {
	err := run()
	if err != nil {
		log.Fatalf("error: %+v", err)
	}
}

func run() error {
	evdevXmlPath := flag.String("evdev-xml-path", "/usr/share/X11/xkb/rules/evdev.xml", "path to evdev.xml")
	evdevExtrasXmlPath := flag.String("evdev-extras-xml-path", "/usr/share/X11/xkb/rules/evdev.extras.xml", "path to evdev.extras.xml, skipped if missing")
	eventsPath := flag.String("events", "-", "file to read JSON events from, - for stdin")
	stateDbPath := flag.String("state-db", "", "path to the state database (default in the user config dir)")
	configDir := flag.String("config-dir", configd.DefaultDirectory, "directory for sway config fragments")
	dryRun := flag.Bool("dry-run", false, "log sway commands instead of sending them")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := xkblayouts.NewRegistry()
	if err := registry.Load(*evdevXmlPath, inputsettings.LayoutSourceBase); err != nil {
		return fmt.Errorf("load layouts: %w", err)
	}
	if err := registry.Load(*evdevExtrasXmlPath, inputsettings.LayoutSourceExtra); err != nil {
		log.Warnw("skipping extra layouts", "error", err)
	}
	log.Debugw("loaded xkb registry", "layouts", registry.Len())

	channel, closeChannel, err := newChannel(*dryRun, log)
	if err != nil {
		return fmt.Errorf("connect sway: %w", err)
	}
	defer closeChannel()

	if *stateDbPath == "" {
		*stateDbPath, err = defaultStateDbPath()
		if err != nil {
			return fmt.Errorf("get state db path: %w", err)
		}
	}
	store, err := sqlite.NewStateStore(*stateDbPath, log)
	if err != nil {
		return fmt.Errorf("create state store: %w", err)
	}
	defer store.Close()

	events, err := openEvents(*eventsPath)
	if err != nil {
		return fmt.Errorf("open events: %w", err)
	}
	defer events.Close()

	d, err := swayinput.NewDaemon(
		swayinput.NewLineReader(events),
		channel,
		registry,
		store,
		configd.New(*configDir),
		log,
	)
	if err != nil {
		return fmt.Errorf("create daemon: %w", err)
	}

	log.Info("started swayinput")

	errChan := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		err := d.ProcessLines(ctx)
		if err != nil {
			errChan <- fmt.Errorf("process lines: %w", err)
		}
	}()

	go func() {
		defer wg.Done()
		err := systemdNotifyLoop(ctx, d.Applied)
		if err != nil {
			errChan <- fmt.Errorf("systemd notify: %w", err)
		}
	}()

	err = <-errChan
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
		log.Info("shutting down")
		stop()
		wg.Wait()
		return nil
	case err != nil:
		return err
	}

	return nil
}

func newChannel(dryRun bool, log *zap.SugaredLogger) (inputsettings.Channel, func(), error) {
	if dryRun {
		return sway.DryRun{Log: log}, func() {}, nil
	}

	client, err := sway.Connect()
	if err != nil {
		return nil, nil, err
	}

	version, err := client.GetVersion()
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("get version: %w", err)
	}
	log.Infow("connected to sway", "version", version.HumanReadable)

	return client, func() { client.Close() }, nil
}

func openEvents(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// systemdNotifyLoop reports readiness, then keeps the watchdog fed and the unit
// status current with the number of applied events.
func systemdNotifyLoop(ctx context.Context, applied func() int64) error {
	supported, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		return fmt.Errorf("notify systemd: %w", err)
	}
	if !supported {
		return nil
	}

	interval, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		return fmt.Errorf("check watchdog: %w", err)
	}

	state := daemon.SdNotifyWatchdog
	if interval == 0 {
		// no watchdog, only the status needs refreshing
		interval = statusInterval * 2
		state = ""
	}

	ticker := time.NewTicker(interval / 2)
	defer ticker.Stop()

	for {
		status := statusLine(applied())
		if state != "" {
			status = state + "\n" + status
		}
		if _, err := daemon.SdNotify(false, status); err != nil {
			return fmt.Errorf("notify status: %w", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func statusLine(applied int64) string {
	return fmt.Sprintf("STATUS=Applied %d input settings changes", applied)
}

func defaultStateDbPath() (string, error) {
	dir := filepath.Join(xdg.ConfigHome, "swayinput")
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return "", fmt.Errorf("create swayinput config dir: %w", err)
	}

	return filepath.Join(dir, "state.db"), nil
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{"stdout"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
