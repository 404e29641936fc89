package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedis(t *testing.T) *Redis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client)
}

func TestRedisLockExcludes(t *testing.T) {
	locker := newRedis(t)
	ctx := context.Background()

	var (
		mu      sync.Mutex
		holders int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(ctx, Key("like", 1, 2))
			if err != nil {
				t.Errorf("Lock: %v", err)
				return
			}
			mu.Lock()
			holders++
			if holders > maxSeen {
				maxSeen = holders
			}
			mu.Unlock()
			time.Sleep(5 * time.Millisecond)
			mu.Lock()
			holders--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()
	if maxSeen != 1 {
		t.Fatalf("expected exclusive holder, saw %d at once", maxSeen)
	}
}

func TestRedisLockDistinctKeys(t *testing.T) {
	locker := newRedis(t)
	ctx := context.Background()

	unlockA, err := locker.Lock(ctx, Key("like", 1, 2))
	if err != nil {
		t.Fatal(err)
	}
	defer unlockA()

	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	unlockB, err := locker.Lock(ctx, Key("like", 1, 3))
	if err != nil {
		t.Fatalf("distinct key blocked: %v", err)
	}
	unlockB()
}

func TestKey(t *testing.T) {
	if got := Key("sub", 7, 9); got != "sub:7:9" {
		t.Fatalf("Key = %q", got)
	}
}
