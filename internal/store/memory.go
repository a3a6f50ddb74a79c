package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/client-keeper/models"
)

// In-memory implementations used when no database or redis is configured
// and by the end-to-end tests. They follow the same error contract as the
// SQL and redis implementations.

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]models.User)}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return models.User{}, ErrEmailAlreadyExists
		}
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *memoryUserRepository) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *memoryUserRepository) FindUserByID(_ context.Context, userID string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return u, nil
}

func (r *memoryUserRepository) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	r.users[userID] = u
	return nil
}

type memoryClientRepository struct {
	mu      sync.RWMutex
	clients map[string]models.Client
}

// NewMemoryClientRepository returns an empty in-memory [ClientRepository].
func NewMemoryClientRepository() ClientRepository {
	return &memoryClientRepository{clients: make(map[string]models.Client)}
}

func (r *memoryClientRepository) ListClients(_ context.Context, ownerID string) ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Client, 0)
	for _, c := range r.clients {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubscriptionRenewalDate.Equal(out[j].SubscriptionRenewalDate) {
			return out[i].SubscriptionRenewalDate.Before(out[j].SubscriptionRenewalDate)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *memoryClientRepository) GetClient(_ context.Context, ownerID, clientID string) (models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[clientID]
	if !ok || c.OwnerID != ownerID {
		return models.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (r *memoryClientRepository) GetClientByEmail(_ context.Context, ownerID, email string) (models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.clients {
		if c.OwnerID == ownerID && strings.EqualFold(c.Email, email) {
			return c, nil
		}
	}
	return models.Client{}, ErrClientNotFound
}

func (r *memoryClientRepository) CreateClient(_ context.Context, client models.Client) (models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(client.OwnerID, client.ID, client.Email) {
		return models.Client{}, ErrClientEmailAlreadyExists
	}
	r.clients[client.ID] = client
	return client, nil
}

func (r *memoryClientRepository) ReplaceClient(_ context.Context, client models.Client) (models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.clients[client.ID]
	if !ok || existing.OwnerID != client.OwnerID {
		return models.Client{}, ErrClientNotFound
	}
	if r.emailTaken(client.OwnerID, client.ID, client.Email) {
		return models.Client{}, ErrClientEmailAlreadyExists
	}
	client.CreatedAt = existing.CreatedAt
	r.clients[client.ID] = client
	return client, nil
}

func (r *memoryClientRepository) PatchClient(_ context.Context, ownerID, clientID string, patch models.ClientPatch, updatedAt time.Time) (models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.clients[clientID]
	if !ok || existing.OwnerID != ownerID {
		return models.Client{}, ErrClientNotFound
	}
	if patch.Email != nil && r.emailTaken(ownerID, clientID, *patch.Email) {
		return models.Client{}, ErrClientEmailAlreadyExists
	}
	updated := patch.Apply(existing)
	updated.UpdatedAt = updatedAt
	r.clients[clientID] = updated
	return updated, nil
}

func (r *memoryClientRepository) DeleteClient(_ context.Context, ownerID, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[clientID]
	if !ok || c.OwnerID != ownerID {
		return ErrClientNotFound
	}
	delete(r.clients, clientID)
	return nil
}

// emailTaken must be called with r.mu held.
func (r *memoryClientRepository) emailTaken(ownerID, exceptID, email string) bool {
	for id, c := range r.clients {
		if id != exceptID && c.OwnerID == ownerID && strings.EqualFold(c.Email, email) {
			return true
		}
	}
	return false
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memoryTokenCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryTokenCache returns an in-memory [TokenCache]. Expired entries are
// dropped lazily on access.
func NewMemoryTokenCache() TokenCache {
	return &memoryTokenCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (c *memoryTokenCache) SaveResetToken(_ context.Context, tokenHash, userID string, ttl time.Duration) error {
	c.set(resetKeyPrefix+tokenHash, userID, ttl)
	return nil
}

func (c *memoryTokenCache) ConsumeResetToken(_ context.Context, tokenHash string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := resetKeyPrefix + tokenHash
	e, ok := c.live(key)
	if !ok {
		return "", ErrResetTokenNotFound
	}
	delete(c.entries, key)
	return e.value, nil
}

func (c *memoryTokenCache) RevokeToken(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.set(revokedKeyPrefix+tokenID, "1", ttl)
	return nil
}

func (c *memoryTokenCache) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.live(revokedKeyPrefix + tokenID)
	return ok, nil
}

func (c *memoryTokenCache) set(key, value string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{value: value, expiresAt: c.now().Add(ttl)}
}

// live must be called with c.mu held.
func (c *memoryTokenCache) live(key string) (memoryEntry, bool) {
	e, ok := c.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return memoryEntry{}, false
	}
	return e, true
}
