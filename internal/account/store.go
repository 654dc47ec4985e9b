// Package account keeps accounts and their character slots in memory.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/udisondev/charcreate/internal/model"
)

// ErrUnknownAccount is returned for a login that is not registered
// when auto-creation is disabled.
var ErrUnknownAccount = model.ErrUnknownAccount

type record struct {
	account    model.Account
	characters []uint32 // serials, in slot order
	created    int      // characters ever created, deletions included
}

// Store - in-memory хранилище аккаунтов и слотов персонажей.
// Thread-safe: все операции под одним mutex, поэтому выделение слота атомарно.
type Store struct {
	mu         sync.Mutex
	accounts   map[string]*record
	charLimit  int
	autoCreate bool
}

// NewStore creates an empty store.
//
// Parameters:
//   - charLimit: slots of accounts registered without their own limit
//   - autoCreate: unknown logins get a fresh young player account on first allocation
func NewStore(charLimit int, autoCreate bool) *Store {
	if charLimit <= 0 {
		charLimit = model.DefaultCharLimit
	}
	return &Store{
		accounts:   make(map[string]*record),
		charLimit:  charLimit,
		autoCreate: autoCreate,
	}
}

// Register adds an account. Login is case-insensitive.
func (s *Store) Register(acc model.Account) error {
	login := strings.ToLower(acc.Login)
	if login == "" {
		return fmt.Errorf("login cannot be empty")
	}
	acc.Login = login
	if acc.CharLimit <= 0 {
		acc.CharLimit = s.charLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[login]; ok {
		return fmt.Errorf("account %q already exists", login)
	}
	s.accounts[login] = &record{account: acc}
	return nil
}

// Account returns a copy of the account (false если не найден).
func (s *Store) Account(login string) (model.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.accounts[strings.ToLower(login)]
	if !ok {
		return model.Account{}, false
	}
	return rec.account, true
}

// AllocateSlot reserves the next free slot of login for serial.
// Returns model.ErrAccountFull when every slot is taken.
func (s *Store) AllocateSlot(ctx context.Context, login string, serial uint32) (model.Slot, error) {
	if err := ctx.Err(); err != nil {
		return model.Slot{}, err
	}
	login = strings.ToLower(login)

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.accounts[login]
	if !ok {
		if !s.autoCreate {
			return model.Slot{}, fmt.Errorf("allocating slot for %q: %w", login, ErrUnknownAccount)
		}
		rec = &record{account: model.Account{Login: login, Young: true, CharLimit: s.charLimit}}
		s.accounts[login] = rec
		slog.Info("auto-created account", "login", login)
	}

	existing := len(rec.characters)
	if existing >= rec.account.CharLimit {
		return model.Slot{}, model.ErrAccountFull
	}
	rec.characters = append(rec.characters, serial)
	created := rec.created
	rec.created++

	return model.Slot{Account: rec.account, Index: existing, Existing: existing, Created: created}, nil
}

// Characters returns the serials stored on login, in slot order.
func (s *Store) Characters(login string) []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.accounts[strings.ToLower(login)]
	if !ok {
		return nil
	}
	out := make([]uint32, len(rec.characters))
	copy(out, rec.characters)
	return out
}

// Release frees the slot holding serial. Later slots move up by one.
// The character still counts as created on the account.
// Returns false if login has no such character.
func (s *Store) Release(login string, serial uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.remove(login, serial)
	return ok
}

// CancelSlot undoes an AllocateSlot whose character never entered the world:
// the slot is freed and the character is not counted as created.
// Returns false if login has no such slot.
func (s *Store) CancelSlot(_ context.Context, login string, serial uint32) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.remove(login, serial)
	if ok && rec.created > 0 {
		rec.created--
	}
	return ok, nil
}

// remove drops serial from the slot list. Caller holds s.mu.
func (s *Store) remove(login string, serial uint32) (*record, bool) {
	rec, ok := s.accounts[strings.ToLower(login)]
	if !ok {
		return nil, false
	}
	for i, c := range rec.characters {
		if c == serial {
			rec.characters = append(rec.characters[:i], rec.characters[i+1:]...)
			return rec, true
		}
	}
	return rec, false
}
