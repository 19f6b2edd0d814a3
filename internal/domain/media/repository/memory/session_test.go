package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSessionStore_SetGet(t *testing.T) {
	store := NewSessionStore(zerolog.Nop())

	_, ok := store.Get(1)
	assert.False(t, ok, "fresh store must be empty")

	store.Set(1, "https://youtu.be/a")
	url, ok := store.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "https://youtu.be/a", url)

	// Get is not destructive
	url, ok = store.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "https://youtu.be/a", url)

	store.Set(1, "https://youtu.be/b")
	url, _ = store.Get(1)
	assert.Equal(t, "https://youtu.be/b", url, "Set overwrites")

	other, ok := store.Get(2)
	assert.False(t, ok)
	assert.Empty(t, other)
}

func TestSessionStore_Take(t *testing.T) {
	store := NewSessionStore(zerolog.Nop())

	store.Set(7, "https://youtu.be/x")
	url, ok := store.Take(7)
	assert.True(t, ok)
	assert.Equal(t, "https://youtu.be/x", url)

	_, ok = store.Take(7)
	assert.False(t, ok, "a taken URL must not be returned again")
	_, ok = store.Get(7)
	assert.False(t, ok)
}

func TestSessionStore_TakeIsExclusive(t *testing.T) {
	store := NewSessionStore(zerolog.Nop())
	store.Set(1, "https://youtu.be/x")

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		taken int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := store.Take(1); ok {
				mu.Lock()
				taken++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, taken)
}

func TestSessionStore_UsersAreIndependent(t *testing.T) {
	store := NewSessionStore(zerolog.Nop())

	store.Set(1, "one")
	store.Set(2, "two")
	_, _ = store.Take(1)

	_, ok := store.Get(1)
	assert.False(t, ok)
	url, ok := store.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "two", url)
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	store := NewSessionStore(zerolog.Nop())

	const users = 50
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Set(userID, fmt.Sprintf("url-%d-%d", userID, j))
				_, _ = store.Get(userID)
			}
		}(int64(i))
	}
	wg.Wait()

	for i := 0; i < users; i++ {
		url, ok := store.Get(int64(i))
		assert.True(t, ok)
		assert.Equal(t, fmt.Sprintf("url-%d-99", i), url)
	}
}
