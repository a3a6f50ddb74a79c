package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{ID: "u1", Email: "Alice@Example.com", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{ID: "u2", Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	u, err := repo.FindUserByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	require.NoError(t, repo.UpdatePassword(ctx, "u1", "h2"))
	u, err = repo.FindUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "h2", u.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePassword(ctx, "ghost", "x"), ErrUserNotFound)
	_, err = repo.FindUserByID(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryClientRepository_OwnerScope(t *testing.T) {
	repo := NewMemoryClientRepository()
	ctx := context.Background()

	c := sampleClient()
	_, err := repo.CreateClient(ctx, c)
	require.NoError(t, err)

	// другой владелец может использовать тот же email
	other := c
	other.ID, other.OwnerID = "c2", "u2"
	_, err = repo.CreateClient(ctx, other)
	require.NoError(t, err)

	dup := c
	dup.ID, dup.Email = "c3", "BOB@example.com"
	_, err = repo.CreateClient(ctx, dup)
	assert.ErrorIs(t, err, ErrClientEmailAlreadyExists)

	_, err = repo.GetClient(ctx, "u2", "c1")
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.ErrorIs(t, repo.DeleteClient(ctx, "u2", "c1"), ErrClientNotFound)

	list, err := repo.ListClients(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c1", list[0].ID)

	empty, err := repo.ListClients(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMemoryClientRepository_ListSorted(t *testing.T) {
	repo := NewMemoryClientRepository()
	ctx := context.Background()

	late := sampleClient()
	early := sampleClient()
	early.ID, early.Email = "c2", "early@example.com"
	early.SubscriptionRenewalDate = late.SubscriptionRenewalDate.AddDate(0, -1, 0)

	_, err := repo.CreateClient(ctx, late)
	require.NoError(t, err)
	_, err = repo.CreateClient(ctx, early)
	require.NoError(t, err)

	list, err := repo.ListClients(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c2", list[0].ID)
	assert.Equal(t, "c1", list[1].ID)
}

func TestMemoryClientRepository_ReplacePatchDelete(t *testing.T) {
	repo := NewMemoryClientRepository()
	ctx := context.Background()

	c := sampleClient()
	_, err := repo.CreateClient(ctx, c)
	require.NoError(t, err)

	replaced := c
	replaced.Name = "Robert"
	replaced.CreatedAt = time.Time{}
	replaced.UpdatedAt = c.UpdatedAt.Add(time.Hour)
	got, err := repo.ReplaceClient(ctx, replaced)
	require.NoError(t, err)
	assert.Equal(t, "Robert", got.Name)
	assert.Equal(t, c.CreatedAt, got.CreatedAt)

	amount := 10.0
	patchedAt := c.UpdatedAt.Add(2 * time.Hour)
	got, err = repo.PatchClient(ctx, "u1", "c1", models.ClientPatch{SubscriptionAmount: &amount}, patchedAt)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.SubscriptionAmount)
	assert.Equal(t, "Robert", got.Name)
	assert.Equal(t, patchedAt, got.UpdatedAt)

	byEmail, err := repo.GetClientByEmail(ctx, "u1", "BOB@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, "c1", byEmail.ID)

	require.NoError(t, repo.DeleteClient(ctx, "u1", "c1"))
	_, err = repo.GetClient(ctx, "u1", "c1")
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = repo.PatchClient(ctx, "u1", "c1", models.ClientPatch{}, patchedAt)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestMemoryTokenCache(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	cache := &memoryTokenCache{entries: make(map[string]memoryEntry), now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, cache.SaveResetToken(ctx, "h1", "u1", time.Hour))
	userID, err := cache.ConsumeResetToken(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	_, err = cache.ConsumeResetToken(ctx, "h1")
	assert.ErrorIs(t, err, ErrResetTokenNotFound)

	require.NoError(t, cache.SaveResetToken(ctx, "h2", "u1", time.Minute))
	require.NoError(t, cache.RevokeToken(ctx, "jti", time.Minute))
	require.NoError(t, cache.RevokeToken(ctx, "old", 0))

	revoked, _ := cache.IsRevoked(ctx, "jti")
	assert.True(t, revoked)
	revoked, _ = cache.IsRevoked(ctx, "old")
	assert.False(t, revoked)

	now = now.Add(time.Minute)
	_, err = cache.ConsumeResetToken(ctx, "h2")
	assert.ErrorIs(t, err, ErrResetTokenNotFound)
	revoked, _ = cache.IsRevoked(ctx, "jti")
	assert.False(t, revoked)
}

func TestNewStorages_MemoryFallback(t *testing.T) {
	s, err := NewStorages(context.Background(), config.ServerStorage{}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &memoryUserRepository{}, s.UserRepository)
	assert.IsType(t, &memoryClientRepository{}, s.ClientRepository)
	assert.IsType(t, &memoryTokenCache{}, s.TokenCache)
}

func TestNewStorages_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := NewStorages(context.Background(), config.ServerStorage{Redis: redisConfig(mr.Addr())}, logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &tokenCache{}, s.TokenCache)
	assert.NoError(t, s.Close())
}
