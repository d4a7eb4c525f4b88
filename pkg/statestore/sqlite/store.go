package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"codeberg.org/miketth/swayinput/pkg/inputsettings"
	"codeberg.org/miketth/swayinput/pkg/statestore/sqlite/migrations"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type StateStore struct {
	db      *sql.DB
	querier *Queries
}

func NewStateStore(filename string, log *zap.SugaredLogger) (*StateStore, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := migrations.Migrate(db, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &StateStore{
		db:      db,
		querier: New(db),
	}, nil
}

func (s *StateStore) Close() error {
	return s.db.Close()
}

func (s *StateStore) LoadKeyboard() (inputsettings.KeyboardState, bool, error) {
	ctx := context.Background()

	row, err := s.querier.GetKeyboardState(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return inputsettings.KeyboardState{}, false, nil
	}
	if err != nil {
		return inputsettings.KeyboardState{}, false, fmt.Errorf("sqlite select keyboard state: %w", err)
	}

	layouts, err := s.querier.GetActiveLayouts(ctx)
	if err != nil {
		return inputsettings.KeyboardState{}, false, fmt.Errorf("sqlite select active layouts: %w", err)
	}

	state := inputsettings.KeyboardState{
		XkbOptions:  row.XkbOptions,
		RepeatDelay: uint32(row.RepeatDelay),
		RepeatRate:  uint32(row.RepeatRate),
		Numlock:     inputsettings.NumlockState(row.Numlock),
	}
	for _, l := range layouts {
		state.ActiveLayouts = append(state.ActiveLayouts, inputsettings.LayoutID(l))
	}

	return state, true, nil
}

func (s *StateStore) SaveKeyboard(state inputsettings.KeyboardState) error {
	ctx := context.Background()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	q := s.querier.WithTx(tx)

	if err := q.SetKeyboardState(ctx, KeyboardState{
		XkbOptions:  state.XkbOptions,
		RepeatDelay: int64(state.RepeatDelay),
		RepeatRate:  int64(state.RepeatRate),
		Numlock:     int64(state.Numlock),
	}); err != nil {
		return fmt.Errorf("sqlite upsert keyboard state: %w", err)
	}

	if err := q.ClearActiveLayouts(ctx); err != nil {
		return fmt.Errorf("sqlite clear active layouts: %w", err)
	}

	for i, id := range state.ActiveLayouts {
		if err := q.AddActiveLayout(ctx, AddActiveLayoutParams{
			Position: int64(i),
			LayoutID: string(id),
		}); err != nil {
			return fmt.Errorf("sqlite insert active layout: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}
