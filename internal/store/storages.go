package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/client-keeper/internal/config"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups the backend repositories into a single value that can be
// passed to the service layer.
type Storages struct {
	UserRepository   UserRepository
	ClientRepository ClientRepository
	TokenCache       TokenCache

	db  *DB
	rdb *redis.Client
}

// NewStorages connects the configured backends. PostgreSQL is migrated on
// start. An empty DSN or redis address selects the in-memory implementation
// of that part, with a warning.
func NewStorages(ctx context.Context, cfg config.ServerStorage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	s := &Storages{}

	if cfg.DB.DSN == "" {
		log.Warn().Msg("DATABASE_URI is empty: users and clients are kept in memory")
		s.UserRepository = NewMemoryUserRepository()
		s.ClientRepository = NewMemoryClientRepository()
	} else {
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		s.db = db
		s.UserRepository = NewUserRepository(db, log)
		s.ClientRepository = NewClientRepository(db, log)
	}

	if cfg.Redis.Address == "" {
		log.Warn().Msg("REDIS_ADDRESS is empty: reset and revoked tokens are kept in memory")
		s.TokenCache = NewMemoryTokenCache()
	} else {
		rdb, err := NewConnectRedis(ctx, cfg.Redis, log)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		s.rdb = rdb
		s.TokenCache = NewTokenCache(rdb, log)
	}

	return s, nil
}

// NewMemoryStorages returns storages backed only by memory.
func NewMemoryStorages() *Storages {
	return &Storages{
		UserRepository:   NewMemoryUserRepository(),
		ClientRepository: NewMemoryClientRepository(),
		TokenCache:       NewMemoryTokenCache(),
	}
}

// Close releases the database and redis connections, if any.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.rdb != nil {
		errs = append(errs, s.rdb.Close())
	}
	return errors.Join(errs...)
}
