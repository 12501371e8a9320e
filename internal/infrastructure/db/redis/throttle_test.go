package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestThrottle(t *testing.T, max int, window time.Duration) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginThrottle(client, max, window), mr
}

func TestLoginThrottle_BelowLimit(t *testing.T) {
	ctx := context.Background()
	throttle, _ := newTestThrottle(t, 3, time.Minute)

	blocked, err := throttle.TooManyFailures(ctx, "alice")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if blocked {
		t.Fatal("fresh username must not be blocked")
	}

	for i := 0; i < 2; i++ {
		if err := throttle.RecordFailure(ctx, "alice"); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	blocked, err = throttle.TooManyFailures(ctx, "alice")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if blocked {
		t.Fatal("two of three failures must not block")
	}
}

func TestLoginThrottle_BlocksAtLimit(t *testing.T) {
	ctx := context.Background()
	throttle, _ := newTestThrottle(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		if err := throttle.RecordFailure(ctx, "alice"); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	blocked, err := throttle.TooManyFailures(ctx, "alice")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !blocked {
		t.Fatal("expected block after reaching the limit")
	}

	// Other usernames keep their own counters.
	blocked, err = throttle.TooManyFailures(ctx, "bob")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if blocked {
		t.Fatal("unrelated username must not be blocked")
	}
}

func TestLoginThrottle_ResetClearsCounter(t *testing.T) {
	ctx := context.Background()
	throttle, _ := newTestThrottle(t, 2, time.Minute)

	for i := 0; i < 2; i++ {
		if err := throttle.RecordFailure(ctx, "alice"); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if err := throttle.Reset(ctx, "alice"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	blocked, err := throttle.TooManyFailures(ctx, "alice")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if blocked {
		t.Fatal("reset must clear the counter")
	}
}

func TestLoginThrottle_WindowExpires(t *testing.T) {
	ctx := context.Background()
	throttle, mr := newTestThrottle(t, 2, time.Minute)

	for i := 0; i < 2; i++ {
		if err := throttle.RecordFailure(ctx, "alice"); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	mr.FastForward(time.Minute + time.Second)

	blocked, err := throttle.TooManyFailures(ctx, "alice")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if blocked {
		t.Fatal("counter must expire with the window")
	}
}

func TestLoginThrottle_WindowRunsFromFirstFailure(t *testing.T) {
	ctx := context.Background()
	throttle, mr := newTestThrottle(t, 2, time.Minute)

	if err := throttle.RecordFailure(ctx, "alice"); err != nil {
		t.Fatalf("record: %v", err)
	}
	mr.FastForward(30 * time.Second)
	if err := throttle.RecordFailure(ctx, "alice"); err != nil {
		t.Fatalf("record: %v", err)
	}

	// The second failure must not extend the window.
	mr.FastForward(31 * time.Second)

	blocked, err := throttle.TooManyFailures(ctx, "alice")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if blocked {
		t.Fatal("window must run from the first failure")
	}
}
