package sqlite

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type KeyboardState struct {
	XkbOptions  string
	RepeatDelay int64
	RepeatRate  int64
	Numlock     int64
}

const getKeyboardState = `-- name: GetKeyboardState :one
select xkb_options, repeat_delay, repeat_rate, numlock
from keyboard_state
where id = 1
`

func (q *Queries) GetKeyboardState(ctx context.Context) (KeyboardState, error) {
	row := q.db.QueryRowContext(ctx, getKeyboardState)
	var i KeyboardState
	err := row.Scan(&i.XkbOptions, &i.RepeatDelay, &i.RepeatRate, &i.Numlock)
	return i, err
}

const setKeyboardState = `-- name: SetKeyboardState :exec
insert into keyboard_state (id, xkb_options, repeat_delay, repeat_rate, numlock)
values (1, ?, ?, ?, ?)
on conflict (id) do update set xkb_options  = excluded.xkb_options,
                               repeat_delay = excluded.repeat_delay,
                               repeat_rate  = excluded.repeat_rate,
                               numlock      = excluded.numlock
`

func (q *Queries) SetKeyboardState(ctx context.Context, arg KeyboardState) error {
	_, err := q.db.ExecContext(ctx, setKeyboardState,
		arg.XkbOptions,
		arg.RepeatDelay,
		arg.RepeatRate,
		arg.Numlock,
	)
	return err
}

const getActiveLayouts = `-- name: GetActiveLayouts :many
select layout_id
from active_layouts
order by position
`

func (q *Queries) GetActiveLayouts(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, getActiveLayouts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var layoutID string
		if err := rows.Scan(&layoutID); err != nil {
			return nil, err
		}
		items = append(items, layoutID)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const clearActiveLayouts = `-- name: ClearActiveLayouts :exec
delete from active_layouts
`

func (q *Queries) ClearActiveLayouts(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, clearActiveLayouts)
	return err
}

const addActiveLayout = `-- name: AddActiveLayout :exec
insert into active_layouts (position, layout_id)
values (?, ?)
`

type AddActiveLayoutParams struct {
	Position int64
	LayoutID string
}

func (q *Queries) AddActiveLayout(ctx context.Context, arg AddActiveLayoutParams) error {
	_, err := q.db.ExecContext(ctx, addActiveLayout, arg.Position, arg.LayoutID)
	return err
}
