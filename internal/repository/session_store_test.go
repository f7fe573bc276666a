package repository

import (
	"context"
	"testing"
	"time"

	"barberbook/internal/domain"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionStore(client, 24*time.Hour), mr
}

func TestSessionStore_LoadOrCreate_New(t *testing.T) {
	store, _ := newTestSessionStore(t)
	ctx := context.Background()

	sess, err := store.LoadOrCreate(ctx, 1, "5511999990000")
	require.NoError(t, err)

	assert.Equal(t, domain.StepWelcome, sess.Step)
	assert.Empty(t, sess.TempData)
	assert.True(t, sess.ExpiresAt.After(time.Now()))
}

func TestSessionStore_UpdateThenLoad(t *testing.T) {
	store, _ := newTestSessionStore(t)
	ctx := context.Background()

	_, err := store.LoadOrCreate(ctx, 1, "5511999990000")
	require.NoError(t, err)

	temp := map[string]any{"service_id": int64(3), "service_name": "Corte"}
	require.NoError(t, store.Update(ctx, 1, "5511999990000", domain.StepSelectBarber, temp))

	sess, err := store.LoadOrCreate(ctx, 1, "5511999990000")
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectBarber, sess.Step)
	// numbers come back as float64 after the JSON round-trip
	assert.Equal(t, float64(3), sess.TempData["service_id"])
	assert.Equal(t, "Corte", sess.TempData["service_name"])
}

func TestSessionStore_ExpiredSessionIsReplaced(t *testing.T) {
	store, mr := newTestSessionStore(t)
	ctx := context.Background()

	_, err := store.LoadOrCreate(ctx, 1, "5511999990000")
	require.NoError(t, err)
	require.NoError(t, store.Update(ctx, 1, "5511999990000", domain.StepSelectTime, map[string]any{"barber_id": 2}))

	mr.FastForward(25 * time.Hour)

	sess, err := store.LoadOrCreate(ctx, 1, "5511999990000")
	require.NoError(t, err)
	assert.Equal(t, domain.StepWelcome, sess.Step)
	assert.Empty(t, sess.TempData)
}

func TestSessionStore_Reset(t *testing.T) {
	store, _ := newTestSessionStore(t)
	ctx := context.Background()

	_, err := store.LoadOrCreate(ctx, 1, "5511999990000")
	require.NoError(t, err)
	require.NoError(t, store.Update(ctx, 1, "5511999990000", domain.StepSelectDate, map[string]any{"barber_id": 2}))

	require.NoError(t, store.Reset(ctx, 1, "5511999990000"))

	sess, err := store.LoadOrCreate(ctx, 1, "5511999990000")
	require.NoError(t, err)
	assert.Equal(t, domain.StepWelcome, sess.Step)
	assert.Empty(t, sess.TempData)
}

func TestSessionStore_UpdateKeepsExpiry(t *testing.T) {
	store, mr := newTestSessionStore(t)
	ctx := context.Background()

	_, err := store.LoadOrCreate(ctx, 1, "5511999990000")
	require.NoError(t, err)

	mr.FastForward(23 * time.Hour)
	require.NoError(t, store.Update(ctx, 1, "5511999990000", domain.StepMenu, map[string]any{}))

	// Updates must not push the expiry out; two more hours cross it.
	mr.FastForward(2 * time.Hour)

	sess, err := store.LoadOrCreate(ctx, 1, "5511999990000")
	require.NoError(t, err)
	assert.Equal(t, domain.StepWelcome, sess.Step)
}

func TestSessionStore_SessionsAreScopedPerShop(t *testing.T) {
	store, _ := newTestSessionStore(t)
	ctx := context.Background()

	_, err := store.LoadOrCreate(ctx, 1, "5511999990000")
	require.NoError(t, err)
	require.NoError(t, store.Update(ctx, 1, "5511999990000", domain.StepMenu, map[string]any{}))

	other, err := store.LoadOrCreate(ctx, 2, "5511999990000")
	require.NoError(t, err)
	assert.Equal(t, domain.StepWelcome, other.Step)
}
