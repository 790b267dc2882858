package cache

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryMutexGetSet(t *testing.T) {
	c := NewMemory[[]byte]("test")

	calls := 0
	load := func() ([]byte, error) {
		calls++
		return []byte("png"), nil
	}

	v, err := c.MutexGetSet("https://example.com/a.png", load)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), v)

	v, err = c.MutexGetSet("https://example.com/a.png", load)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), v)
	assert.Equal(t, 1, calls, "second lookup should hit the cache")
	assert.Equal(t, 1, c.Len())
}

func TestMemoryDoesNotCacheFailures(t *testing.T) {
	c := NewMemory[[]byte]("test")
	boom := errors.New("boom")

	_, err := c.MutexGetSet("k", func() ([]byte, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	_, err = c.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)

	v, err := c.MutexGetSet("k", func() ([]byte, error) { return []byte{1}, nil })
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, v)
}
