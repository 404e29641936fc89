// Package lock serializes toggles on the same (actor, target) pair.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-redsync/redsync/v4"
	goredislib "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Locker interface {
	// Lock blocks until key is held or ctx is done. The returned func
	// releases the lock.
	Lock(ctx context.Context, key string) (func(), error)
}

const (
	expiry = 5 * time.Second
	tries  = 32
)

// Default is used by the services. It stays Noop until Init is called.
var Default Locker = Noop{}

type Noop struct{}

func (Noop) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

// Redis is a redsync backed Locker.
type Redis struct {
	rs *redsync.Redsync
}

func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{rs: redsync.New(goredislib.NewPool(client))}
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	mutex := r.rs.NewMutex("vidtube:lock:"+key,
		redsync.WithExpiry(expiry),
		redsync.WithTries(tries),
		redsync.WithRetryDelay(25*time.Millisecond),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errors.Wrapf(err, "acquire lock %s", key)
	}
	return func() {
		if _, err := mutex.UnlockContext(context.Background()); err != nil {
			hlog.CtxWarnf(ctx, "release lock %s: %v", key, err)
		}
	}, nil
}

// Key builds the lock key of one toggle pair.
func Key(kind string, actor, target int64) string {
	return fmt.Sprintf("%s:%d:%d", kind, actor, target)
}

// Init connects to redis and installs a Redis locker as Default.
func Init(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "ping redis")
	}
	Default = NewRedis(client)
	return client, nil
}
