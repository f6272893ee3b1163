package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/staffdir/user-directory/internal/core/domain"
)

const connectTimeout = 10 * time.Second

// Config locates the database holding the directory's user records.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect opens the directory's backing database and confirms it is reachable
// before any credential lookup is served. Failures carry the store error
// taxonomy so an unreachable database reads like any other store outage. The
// returned close function disconnects the client and is safe to defer.
func Connect(ctx context.Context, cfg Config) (*mongo.Database, func(), error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: mongo connect: %v", domain.ErrStoreUnavailable, err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("%w: mongo ping: %v", domain.ErrStoreUnavailable, err)
	}

	closeFn := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}
	return client.Database(cfg.Database), closeFn, nil
}
