package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/staffdir/user-directory/internal/core/domain"
	"github.com/staffdir/user-directory/internal/core/ports"
)

const (
	snapshotKey = "directory:users"
	pingTimeout = 5 * time.Second
)

// Connect opens the snapshot cache connection and verifies it with a ping.
// A cache that cannot be reached at startup is a configuration error; once
// running, cache failures fall open to the inner store instead.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("snapshot cache ping: %v", err)
	}
	return client, nil
}

// CachedStore decorates a credential store with a TTL-bounded Redis snapshot
// of the full user set. Cache failures fall through to the inner store: a
// Redis outage must never surface as a store failure.
type CachedStore struct {
	inner  ports.UserStore
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewCachedStore(inner ports.UserStore, client *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedStore {
	return &CachedStore{inner: inner, client: client, ttl: ttl, log: log}
}

func (s *CachedStore) LoadUsers(ctx context.Context) ([]domain.User, error) {
	raw, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err == nil {
		var users []domain.User
		if err := json.Unmarshal(raw, &users); err == nil {
			return users, nil
		}
		s.log.Warn().Msg("discarding undecodable directory snapshot")
	} else if err != redis.Nil {
		s.log.Warn().Err(err).Msg("directory snapshot read failed")
	}

	users, err := s.inner.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(users); err == nil {
		if err := s.client.Set(ctx, snapshotKey, raw, s.ttl).Err(); err != nil {
			s.log.Warn().Err(err).Msg("directory snapshot write failed")
		}
	}
	return users, nil
}

func (s *CachedStore) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}
