package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealedLocalStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	inner, err := NewFileLocalStorage(MemoryDSN)
	require.NoError(t, err)

	s, err := NewSealedLocalStorage(ctx, inner, "passphrase")
	require.NoError(t, err)

	require.NoError(t, s.SetItem(ctx, KeyAccessToken, "secret-token"))

	raw, ok, err := inner.GetItem(ctx, KeyAccessToken)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, "secret-token", raw)

	v, ok, err := s.GetItem(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "secret-token", v)
}

func TestSealedLocalStorage_ReusesSalt(t *testing.T) {
	ctx := context.Background()
	inner, err := NewFileLocalStorage(MemoryDSN)
	require.NoError(t, err)

	first, err := NewSealedLocalStorage(ctx, inner, "passphrase")
	require.NoError(t, err)
	require.NoError(t, first.SetItem(ctx, KeyUser, `{"id":"1"}`))

	second, err := NewSealedLocalStorage(ctx, inner, "passphrase")
	require.NoError(t, err)
	v, ok, err := second.GetItem(ctx, KeyUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, v)
}

func TestSealedLocalStorage_WrongSecret(t *testing.T) {
	ctx := context.Background()
	inner, err := NewFileLocalStorage(MemoryDSN)
	require.NoError(t, err)

	first, err := NewSealedLocalStorage(ctx, inner, "right")
	require.NoError(t, err)
	require.NoError(t, first.SetItem(ctx, KeyUser, "x"))

	second, err := NewSealedLocalStorage(ctx, inner, "wrong")
	require.NoError(t, err)
	_, ok, err := second.GetItem(ctx, KeyUser)
	require.ErrorIs(t, err, ErrUnsealingValue)
	assert.False(t, ok)
}

func TestSealedLocalStorage_RemoveItem(t *testing.T) {
	ctx := context.Background()
	inner, err := NewFileLocalStorage(MemoryDSN)
	require.NoError(t, err)

	s, err := NewSealedLocalStorage(ctx, inner, "passphrase")
	require.NoError(t, err)
	require.NoError(t, s.SetItem(ctx, KeyUser, "x"))
	require.NoError(t, s.RemoveItem(ctx, KeyUser))

	_, ok, err := s.GetItem(ctx, KeyUser)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = inner.GetItem(ctx, SaltKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSealedLocalStorage_EmptySecret(t *testing.T) {
	inner, err := NewFileLocalStorage(MemoryDSN)
	require.NoError(t, err)

	_, err = NewSealedLocalStorage(context.Background(), inner, "")
	require.Error(t, err)
}
