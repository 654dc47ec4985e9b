package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/charcreate/internal/model"
)

// SlotRepository выделяет слоты персонажей в PostgreSQL.
// Thread-safe: строка аккаунта блокируется через SELECT ... FOR UPDATE, поэтому
// параллельные запросы одного аккаунта выполняются по очереди.
type SlotRepository struct {
	pool       *pgxpool.Pool
	charLimit  int
	autoCreate bool
}

// NewSlotRepository создаёт repository.
// With autoCreate, an unknown login gets a young player account with charLimit slots.
func NewSlotRepository(pool *pgxpool.Pool, charLimit int, autoCreate bool) *SlotRepository {
	if charLimit <= 0 {
		charLimit = model.DefaultCharLimit
	}
	return &SlotRepository{pool: pool, charLimit: charLimit, autoCreate: autoCreate}
}

// AllocateSlot reserves the next free slot of login for serial in one transaction.
// Returns model.ErrAccountFull when every slot is taken and
// model.ErrUnknownAccount for a missing login without auto-creation.
func (r *SlotRepository) AllocateSlot(ctx context.Context, login string, serial uint32) (model.Slot, error) {
	login = strings.ToLower(login)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return model.Slot{}, fmt.Errorf("begin transaction for %q: %w", login, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "login", login, "error", err)
		}
	}()

	if r.autoCreate {
		// ON CONFLICT защищает от гонки двух первых запросов одного логина
		if _, err := tx.Exec(ctx,
			`INSERT INTO accounts (login, char_limit) VALUES ($1, $2)
			 ON CONFLICT (login) DO NOTHING`,
			login, r.charLimit,
		); err != nil {
			return model.Slot{}, fmt.Errorf("inserting account %q: %w", login, err)
		}
	}

	acc := model.Account{Login: login}
	var accessLevel int32
	var created int
	err = tx.QueryRow(ctx,
		`SELECT access_level, young, char_limit, characters_created
		 FROM accounts WHERE login = $1 FOR UPDATE`, login,
	).Scan(&accessLevel, &acc.Young, &acc.CharLimit, &created)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Slot{}, fmt.Errorf("allocating slot for %q: %w", login, model.ErrUnknownAccount)
	}
	if err != nil {
		return model.Slot{}, fmt.Errorf("locking account %q: %w", login, err)
	}
	acc.AccessLevel = model.AccessLevel(accessLevel)

	var existing int
	if err := tx.QueryRow(ctx,
		`SELECT count(*) FROM character_slots WHERE login = $1`, login,
	).Scan(&existing); err != nil {
		return model.Slot{}, fmt.Errorf("counting characters of %q: %w", login, err)
	}
	if existing >= acc.CharLimit {
		return model.Slot{}, model.ErrAccountFull
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO character_slots (login, slot_index, serial) VALUES ($1, $2, $3)`,
		login, existing, int64(serial),
	); err != nil {
		return model.Slot{}, fmt.Errorf("inserting slot for %q: %w", login, err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE accounts SET characters_created = characters_created + 1 WHERE login = $1`, login,
	); err != nil {
		return model.Slot{}, fmt.Errorf("counting new character of %q: %w", login, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Slot{}, fmt.Errorf("commit transaction for %q: %w", login, err)
	}

	return model.Slot{Account: acc, Index: existing, Existing: existing, Created: created}, nil
}

// Characters returns the serials stored on login, in slot order.
func (r *SlotRepository) Characters(ctx context.Context, login string) ([]uint32, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT serial FROM character_slots WHERE login = $1 ORDER BY slot_index`,
		strings.ToLower(login),
	)
	if err != nil {
		return nil, fmt.Errorf("querying characters of %q: %w", login, err)
	}
	serials, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (uint32, error) {
		var s int64
		err := row.Scan(&s)
		return uint32(s), err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning characters of %q: %w", login, err)
	}
	return serials, nil
}

// Release frees the slot holding serial. Later slots move up by one.
// The character still counts as created on the account.
// Returns false if login has no such character.
func (r *SlotRepository) Release(ctx context.Context, login string, serial uint32) (bool, error) {
	return r.freeSlot(ctx, login, serial, false)
}

// CancelSlot undoes an AllocateSlot whose character never entered the world:
// the slot is freed and the character is not counted as created.
// Returns false if login has no such slot.
func (r *SlotRepository) CancelSlot(ctx context.Context, login string, serial uint32) (bool, error) {
	return r.freeSlot(ctx, login, serial, true)
}

func (r *SlotRepository) freeSlot(ctx context.Context, login string, serial uint32, uncount bool) (bool, error) {
	login = strings.ToLower(login)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin transaction for %q: %w", login, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "login", login, "error", err)
		}
	}()

	var index int
	err = tx.QueryRow(ctx,
		`DELETE FROM character_slots WHERE login = $1 AND serial = $2 RETURNING slot_index`,
		login, int64(serial),
	).Scan(&index)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("deleting slot of %q: %w", login, err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE character_slots SET slot_index = slot_index - 1 WHERE login = $1 AND slot_index > $2`,
		login, index,
	); err != nil {
		return false, fmt.Errorf("compacting slots of %q: %w", login, err)
	}

	if uncount {
		if _, err := tx.Exec(ctx,
			`UPDATE accounts SET characters_created = GREATEST(characters_created - 1, 0) WHERE login = $1`,
			login,
		); err != nil {
			return false, fmt.Errorf("uncounting character of %q: %w", login, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit transaction for %q: %w", login, err)
	}
	return true, nil
}
