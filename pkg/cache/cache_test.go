package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get = (%q, %v, %v), want a miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(4)

	if _, hit, _ := c.Get(ctx, "svg"); hit {
		t.Fatal("empty cache should miss")
	}
	if err := c.Set(ctx, "svg", []byte("<svg/>"), 0); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "svg")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Fatalf("Get = (%q, %v, %v), want hit", data, hit, err)
	}

	if err := c.Set(ctx, "svg", []byte("<svg></svg>"), 0); err != nil {
		t.Fatal(err)
	}
	if data, _, _ := c.Get(ctx, "svg"); string(data) != "<svg></svg>" {
		t.Errorf("overwritten value = %q", data)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after overwrite, want 1", c.Len())
	}

	if err := c.Delete(ctx, "svg"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "svg"); hit {
		t.Error("deleted entry should miss")
	}
	if err := c.Delete(ctx, "svg"); err != nil {
		t.Errorf("deleting a missing entry: %v", err)
	}
}

func TestMemoryCacheEviction(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	_ = c.Set(ctx, "a", []byte("a"), 0)
	_ = c.Set(ctx, "b", []byte("b"), 0)
	c.Get(ctx, "a") // b is now least recently used
	_ = c.Set(ctx, "c", []byte("c"), 0)

	if _, hit, _ := c.Get(ctx, "b"); hit {
		t.Error("least recently used entry should be evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, hit, _ := c.Get(ctx, k); !hit {
			t.Errorf("%q should still be cached", k)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "k"); !hit {
		t.Fatal("fresh entry should hit")
	}
	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if c.Len() != 0 {
		t.Error("expired entry should be removed")
	}
}

func TestMemoryCacheConcurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(8)
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			k := fmt.Sprint(i % 4)
			_ = c.Set(ctx, k, []byte(k), 0)
			c.Get(ctx, k)
		}()
	}
	wg.Wait()
	if c.Len() > 8 {
		t.Errorf("Len() = %d, want at most 8", c.Len())
	}
}

func TestMemoryCacheClose(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(4)
	_ = c.Set(ctx, "a", []byte("a"), 0)
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit || c.Len() != 0 {
		t.Error("Close should drop every entry")
	}
}

func TestKey(t *testing.T) {
	a := Key("artifact", "fp", 12, "svg")
	if a != Key("artifact", "fp", 12, "svg") {
		t.Error("Key should be deterministic")
	}
	if a == Key("artifact", "fp", 13, "svg") {
		t.Error("different parts should give different keys")
	}
	if got, want := len(a), len("artifact:")+64; got != want {
		t.Errorf("len(Key) = %d, want %d", got, want)
	}
	if len(Hash([]byte("x"))) != 64 {
		t.Error("Hash should be 64 hex characters")
	}
}
