package local

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSet(t *testing.T) {
	store := New()

	_, ok, err := store.Get("paper:123")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Set("paper:123", []byte("record")))

	data, ok, err := store.Get("paper:123")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("record"), data)

	assert.True(t, store.Ready())
}

func TestConcurrentAccess(t *testing.T) {
	store := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Set("shared", []byte("value")))
			_, _, err := store.Get("shared")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
