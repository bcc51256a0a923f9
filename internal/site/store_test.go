package site

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/lifeheroes/internal/domain"
)

func TestStore_CreateAndGet(t *testing.T) {
	s := NewStore(context.Background(), StoreConfig{TTL: time.Minute, MaxApps: 10})
	defer s.Close()

	a := s.Create()
	got, err := s.Get(a.ID())
	require.NoError(t, err)
	assert.Same(t, a, got)
	assert.Equal(t, 1, s.Len())
}

func TestStore_GetUnknown(t *testing.T) {
	s := NewStore(context.Background(), StoreConfig{TTL: time.Minute, MaxApps: 10})
	defer s.Close()

	_, err := s.Get("")
	assert.ErrorIs(t, err, domain.ErrNoApp)
	_, err = s.Get("missing")
	assert.ErrorIs(t, err, domain.ErrNoApp)
}

func TestStore_CreateAlwaysStartsHome(t *testing.T) {
	s := NewStore(context.Background(), StoreConfig{TTL: time.Minute, MaxApps: 10})
	defer s.Close()

	first := s.Create()
	require.NoError(t, first.Navigate(domain.PageLogin))

	second := s.Create()
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, domain.PageHome, second.Page())
}

func TestStore_RemoveClosesApp(t *testing.T) {
	s := NewStore(context.Background(), StoreConfig{TTL: time.Minute, MaxApps: 10})
	defer s.Close()

	a := s.Create()
	s.Remove(a.ID())

	assert.Error(t, a.Context().Err())
	_, err := s.Get(a.ID())
	assert.ErrorIs(t, err, domain.ErrNoApp)
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	s := NewStore(context.Background(), StoreConfig{TTL: time.Minute, MaxApps: 2})
	defer s.Close()

	first := s.Create()
	second := s.Create()
	_, err := s.Get(first.ID())
	require.NoError(t, err)

	s.Create()
	assert.Equal(t, 2, s.Len())
	assert.Error(t, second.Context().Err())
	assert.NoError(t, first.Context().Err())
}

func TestStore_ExpiresIdleApps(t *testing.T) {
	s := NewStore(context.Background(), StoreConfig{TTL: 50 * time.Millisecond, MaxApps: 10})
	defer s.Close()

	a := s.Create()
	// Polling with Get would renew the TTL, so watch the app's context instead.
	assert.Eventually(t, func() bool { return a.Context().Err() != nil }, 2*time.Second, 10*time.Millisecond)
	_, err := s.Get(a.ID())
	assert.ErrorIs(t, err, domain.ErrNoApp)
}

func TestStore_CloseClosesAllApps(t *testing.T) {
	s := NewStore(context.Background(), StoreConfig{TTL: time.Minute, MaxApps: 10})
	a := s.Create()
	b := s.Create()

	s.Close()
	assert.Error(t, a.Context().Err())
	assert.Error(t, b.Context().Err())
}
