package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetAbsentKey(t *testing.T) {
	m := NewMemory()
	payload, ok, err := m.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, payload)
}

func TestMemory_SetThenGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "fuel-data", []byte(`[{"id":"a"}]`)))
	payload, ok, err := m.Get(ctx, "fuel-data")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, string(payload))
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("abc")))
	payload, _, _ := m.Get(ctx, "k")
	payload[0] = 'z'

	again, _, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestSQLite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garage.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	_, ok, err := s.Get(ctx, "maintenance-data")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "maintenance-data", []byte(`[]`)))
	payload, ok, err := s.Get(ctx, "maintenance-data")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(payload))

	// Writes replace wholesale.
	require.NoError(t, s.Set(ctx, "maintenance-data", []byte(`[{"id":"x"}]`)))
	payload, _, _ = s.Get(ctx, "maintenance-data")
	assert.Equal(t, `[{"id":"x"}]`, string(payload))
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garage.db")
	ctx := context.Background()

	first, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "car-profile", []byte(`{"vin":"WVWZZZ3CZ8P123456"}`)))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	payload, ok, err := second.Get(ctx, "car-profile")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(payload), "WVWZZZ3CZ8P123456")
}

func TestOpen_UnknownBackend(t *testing.T) {
	t.Setenv("GARAGE_STORAGE", "etcd")
	_, err := Open(context.Background())
	assert.Error(t, err)
}

func TestOpen_MemoryBackend(t *testing.T) {
	t.Setenv("GARAGE_STORAGE", "memory")
	adapter, err := Open(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, adapter)
}

func TestOpen_SQLiteDefault(t *testing.T) {
	t.Setenv("GARAGE_STORAGE", "")
	t.Setenv("GARAGE_DB", filepath.Join(t.TempDir(), "garage.db"))
	adapter, err := Open(context.Background())
	require.NoError(t, err)
	s, ok := adapter.(*SQLite)
	require.True(t, ok)
	s.Close()
}
