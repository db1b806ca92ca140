package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type cachedUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T) (*miniredis.Miniredis, *CacheHelper) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewCacheHelper(client, "user:")
}

func TestCacheHelper_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, helper := newTestCache(t)

	want := cachedUser{ID: "user-1", Name: "Priya"}
	if err := helper.Set(ctx, "user-1", want, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got cachedUser
	if err := helper.Get(ctx, "user-1", &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != want {
		t.Errorf("Got %+v, want %+v", got, want)
	}

	// Keys carry the configured prefix.
	if !mr.Exists("user:user-1") {
		t.Error("Expected key user:user-1 in redis")
	}

	if err := helper.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := helper.Get(ctx, "user-1", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Expected ErrCacheNotFound after delete, got %v", err)
	}
}

func TestCacheHelper_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	mr, helper := newTestCache(t)

	if err := helper.Set(ctx, "user-1", cachedUser{ID: "user-1"}, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	var got cachedUser
	if err := helper.Get(ctx, "user-1", &got); !errors.Is(err, ErrCacheNotFound) {
		t.Errorf("Expected ErrCacheNotFound after TTL, got %v", err)
	}
}

func TestCacheHelper_CacheOrExecute(t *testing.T) {
	ctx := context.Background()
	_, helper := newTestCache(t)

	calls := 0
	loader := func() (interface{}, error) {
		calls++
		return cachedUser{ID: "user-1", Name: "Priya"}, nil
	}

	var first cachedUser
	if err := helper.CacheOrExecute(ctx, "user-1", &first, time.Minute, loader); err != nil {
		t.Fatalf("CacheOrExecute failed: %v", err)
	}
	var second cachedUser
	if err := helper.CacheOrExecute(ctx, "user-1", &second, time.Minute, loader); err != nil {
		t.Fatalf("CacheOrExecute failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("Loader should run once, ran %d times", calls)
	}
	if first != second {
		t.Errorf("Cached read diverged: %+v vs %+v", first, second)
	}
}

func TestCacheHelper_CacheOrExecute_LoaderError(t *testing.T) {
	ctx := context.Background()
	_, helper := newTestCache(t)

	wantErr := errors.New("db down")
	var dest cachedUser
	err := helper.CacheOrExecute(ctx, "user-1", &dest, time.Minute, func() (interface{}, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Expected loader error to surface, got %v", err)
	}
}

func TestCacheHelper_NilClientDegradesGracefully(t *testing.T) {
	ctx := context.Background()
	helper := NewCacheHelper(nil, "user:")

	if err := helper.Set(ctx, "user-1", cachedUser{ID: "user-1"}, time.Minute); err != nil {
		t.Errorf("Set with nil client should be a no-op, got %v", err)
	}
	var got cachedUser
	if err := helper.Get(ctx, "user-1", &got); !errors.Is(err, ErrCacheNotAvailable) {
		t.Errorf("Expected ErrCacheNotAvailable, got %v", err)
	}
	if err := helper.Delete(ctx, "user-1"); err != nil {
		t.Errorf("Delete with nil client should be a no-op, got %v", err)
	}

	// CacheOrExecute still serves the value straight from the loader.
	calls := 0
	err := helper.CacheOrExecute(ctx, "user-1", &got, time.Minute, func() (interface{}, error) {
		calls++
		return cachedUser{ID: "user-1", Name: "Priya"}, nil
	})
	if err != nil {
		t.Fatalf("CacheOrExecute failed: %v", err)
	}
	if got.Name != "Priya" || calls != 1 {
		t.Errorf("Loader result not returned: %+v (calls %d)", got, calls)
	}
}
