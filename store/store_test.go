package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "kicks.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	return c, path
}

// exercise runs the same contract against every DB implementation.
func exercise(t *testing.T, db DB) {
	t.Helper()

	v, err := db.Get("tally")
	require.NoError(t, err)
	assert.Nil(t, v, "absent keys must read as nil")

	require.NoError(t, db.Set("tally", []byte("2")))
	require.NoError(t, db.Set("date", []byte("Saturday, March 9, 2024")))
	require.NoError(t, db.Set("tally", []byte("3")))

	v, err = db.Get("tally")
	require.NoError(t, err)
	assert.Equal(t, "3", string(v))

	require.NoError(t, db.Clear())

	v, err = db.Get("date")
	require.NoError(t, err)
	assert.Nil(t, v)

	// the store is still writable after a clear
	require.NoError(t, db.Set("date", []byte("Sunday, March 10, 2024")))

	v, err = db.Get("date")
	require.NoError(t, err)
	assert.Equal(t, "Sunday, March 10, 2024", string(v))
}

func TestClientContract(t *testing.T) {
	c, _ := newTestClient(t)
	defer c.Close()

	exercise(t, c)
}

func TestMemoryContract(t *testing.T) {
	exercise(t, NewMemory())
}

func TestClientPersistsAcrossReopen(t *testing.T) {
	c, path := newTestClient(t)

	require.NoError(t, c.Set("baby-counter", []byte(`[]`)))
	require.NoError(t, c.Close())

	c2, err := NewClient(path)
	require.NoError(t, err)
	defer c2.Close()

	v, err := c2.Get("baby-counter")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(v))

	keys, err := c2.keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"baby-counter"}, keys)
}

func TestClientSingleInstance(t *testing.T) {
	c, path := newTestClient(t)
	defer c.Close()

	_, err := NewClient(path)
	assert.ErrorIs(t, err, errKicksRunning)
}

func TestMemoryReturnsCopies(t *testing.T) {
	m := NewMemory()

	value := []byte("abc")
	require.NoError(t, m.Set("k", value))

	value[0] = 'z'

	v, _ := m.Get("k")
	assert.Equal(t, "abc", string(v))
	assert.Len(t, m.Dump(), 1)
}
