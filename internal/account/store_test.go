package account

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/charcreate/internal/model"
)

func TestStore_AllocateSlot(t *testing.T) {
	s := NewStore(2, false)
	require.NoError(t, s.Register(model.Account{Login: "Alice", Young: true}))

	first, err := s.AllocateSlot(context.Background(), "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 0, first.Existing)
	assert.Equal(t, "alice", first.Account.Login)
	assert.True(t, first.Account.Young)
	assert.Equal(t, 2, first.Account.CharLimit)

	second, err := s.AllocateSlot(context.Background(), "ALICE", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Index)
	assert.Equal(t, 1, second.Existing)
	assert.Equal(t, 1, second.Created)

	_, err = s.AllocateSlot(context.Background(), "alice", 3)
	assert.ErrorIs(t, err, model.ErrAccountFull)
	assert.Equal(t, []uint32{1, 2}, s.Characters("alice"))
}

func TestStore_UnknownAccount(t *testing.T) {
	s := NewStore(0, false)

	_, err := s.AllocateSlot(context.Background(), "ghost", 1)
	assert.ErrorIs(t, err, ErrUnknownAccount)
}

func TestStore_AutoCreate(t *testing.T) {
	s := NewStore(0, true)

	slot, err := s.AllocateSlot(context.Background(), "newbie", 1)
	require.NoError(t, err)
	assert.True(t, slot.Account.Young)
	assert.Equal(t, model.DefaultCharLimit, slot.Account.CharLimit)
	assert.Equal(t, model.AccessPlayer, slot.Account.AccessLevel)

	acc, ok := s.Account("NEWBIE")
	require.True(t, ok)
	assert.Equal(t, "newbie", acc.Login)
}

func TestStore_Register(t *testing.T) {
	s := NewStore(0, false)

	require.NoError(t, s.Register(model.Account{Login: "bob", CharLimit: 1}))
	assert.Error(t, s.Register(model.Account{Login: "BOB"}))
	assert.Error(t, s.Register(model.Account{}))
}

func TestStore_Release(t *testing.T) {
	s := NewStore(1, true)

	_, err := s.AllocateSlot(context.Background(), "carol", 7)
	require.NoError(t, err)
	_, err = s.AllocateSlot(context.Background(), "carol", 8)
	require.ErrorIs(t, err, model.ErrAccountFull)

	assert.True(t, s.Release("carol", 7))
	assert.False(t, s.Release("carol", 7))

	slot, err := s.AllocateSlot(context.Background(), "carol", 8)
	require.NoError(t, err)
	assert.Equal(t, 0, slot.Existing)
	assert.Equal(t, 1, slot.Created, "deleted characters still count as created")
}

func TestStore_CancelSlot(t *testing.T) {
	s := NewStore(1, true)
	ctx := context.Background()

	first, err := s.AllocateSlot(ctx, "fay", 7)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Created)

	ok, err := s.CancelSlot(ctx, "fay", 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, s.Characters("fay"))

	ok, err = s.CancelSlot(ctx, "fay", 7)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.CancelSlot(ctx, "nobody", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	again, err := s.AllocateSlot(ctx, "fay", 8)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Index)
	assert.Equal(t, 0, again.Created, "a canceled slot is not counted")
}

func TestStore_CanceledContext(t *testing.T) {
	s := NewStore(0, true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.AllocateSlot(ctx, "dave", 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.Characters("dave"))
}

// Concurrent allocations never hand out the same slot and never exceed the limit.
func TestStore_ConcurrentAllocation(t *testing.T) {
	const (
		limit   = 5
		workers = 50
	)
	s := NewStore(limit, true)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		slots = map[int]int{}
		full  int
	)
	for i := range workers {
		wg.Add(1)
		go func(serial uint32) {
			defer wg.Done()
			slot, err := s.AllocateSlot(context.Background(), "erin", serial)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				full++
				return
			}
			slots[slot.Index]++
		}(uint32(i + 1))
	}
	wg.Wait()

	assert.Len(t, slots, limit)
	for idx, n := range slots {
		assert.Equal(t, 1, n, "slot %d handed out %d times", idx, n)
	}
	assert.Equal(t, workers-limit, full)
	assert.Len(t, s.Characters("erin"), limit)
}
