package db

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/charcreate/internal/model"
)

func TestDB_Accounts(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	d := &DB{pool: pool}

	acc, err := d.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, acc)

	require.NoError(t, d.CreateAccount(ctx, model.Account{Login: "Alice", AccessLevel: model.AccessSeer, CharLimit: 3}))
	assert.Error(t, d.CreateAccount(ctx, model.Account{Login: "alice"}))

	acc, err = d.GetAccount(ctx, "ALICE")
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, "alice", acc.Login)
	assert.Equal(t, model.AccessSeer, acc.AccessLevel)
	assert.False(t, acc.Young)
	assert.Equal(t, 3, acc.CharLimit)
}

func TestSlotRepository_AllocateSlot(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewSlotRepository(pool, 2, true)

	first, err := repo.AllocateSlot(ctx, "Bob", 101)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Existing)
	assert.Equal(t, "bob", first.Account.Login)
	assert.True(t, first.Account.Young)
	assert.Equal(t, 2, first.Account.CharLimit)

	second, err := repo.AllocateSlot(ctx, "bob", 102)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Index)

	_, err = repo.AllocateSlot(ctx, "bob", 103)
	assert.ErrorIs(t, err, model.ErrAccountFull)

	serials, err := repo.Characters(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []uint32{101, 102}, serials)
}

func TestSlotRepository_UnknownAccount(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewSlotRepository(pool, 0, false)

	_, err := repo.AllocateSlot(context.Background(), "ghost", 1)
	assert.ErrorIs(t, err, model.ErrUnknownAccount)
}

func TestSlotRepository_Release(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewSlotRepository(pool, 3, true)

	for _, serial := range []uint32{1, 2, 3} {
		_, err := repo.AllocateSlot(ctx, "carol", serial)
		require.NoError(t, err)
	}

	ok, err := repo.Release(ctx, "carol", 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Release(ctx, "carol", 2)
	require.NoError(t, err)
	assert.False(t, ok)

	slot, err := repo.AllocateSlot(ctx, "carol", 4)
	require.NoError(t, err)
	assert.Equal(t, 2, slot.Index)
	assert.Equal(t, 3, slot.Created, "deleted characters still count as created")

	serials, err := repo.Characters(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 3, 4}, serials)
}

func TestSlotRepository_CancelSlot(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewSlotRepository(pool, 1, true)

	first, err := repo.AllocateSlot(ctx, "fay", 11)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Created)

	ok, err := repo.CancelSlot(ctx, "fay", 11)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CancelSlot(ctx, "fay", 11)
	require.NoError(t, err)
	assert.False(t, ok)

	again, err := repo.AllocateSlot(ctx, "fay", 12)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Index)
	assert.Equal(t, 0, again.Created, "a canceled slot is not counted")

	serials, err := repo.Characters(ctx, "fay")
	require.NoError(t, err)
	assert.Equal(t, []uint32{12}, serials)
}

// Parallel allocations for one account never exceed its limit.
func TestSlotRepository_ConcurrentAllocation(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewSlotRepository(pool, 4, true)

	const workers = 16
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		ok   int
		full int
	)
	for i := range workers {
		wg.Add(1)
		go func(serial uint32) {
			defer wg.Done()
			_, err := repo.AllocateSlot(ctx, "dave", serial)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, model.ErrAccountFull):
				full++
			}
		}(uint32(i + 1))
	}
	wg.Wait()

	assert.Equal(t, 4, ok)
	assert.Equal(t, workers-4, full)

	serials, err := repo.Characters(ctx, "dave")
	require.NoError(t, err)
	assert.Len(t, serials, 4)
}
