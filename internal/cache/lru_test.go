// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestLRU(capacity int, ttl time.Duration) (*LRU[string], *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewLRU[string](capacity, ttl)
	c.now = clock.Now
	return c, clock
}

func TestLRU_BasicOperations(t *testing.T) {
	t.Parallel()
	c, _ := newTestLRU(3, time.Minute)

	c.Add("a", "A")
	c.Add("b", "B")
	c.Add("c", "C")

	for key, want := range map[string]string{"a": "A", "b": "B", "c": "C"} {
		got, ok := c.Get(key)
		if !ok || got != want {
			t.Errorf("Get(%q) = %q, %v; want %q, true", key, got, ok, want)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should miss")
	}
}

func TestLRU_Eviction(t *testing.T) {
	t.Parallel()
	c, _ := newTestLRU(3, time.Minute)

	c.Add("a", "A")
	c.Add("b", "B")
	c.Add("c", "C")

	// Touch 'a' so 'b' becomes least recently used.
	c.Get("a")
	c.Add("d", "D")

	if _, ok := c.Get("b"); ok {
		t.Error("expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("expected %q to be present", key)
		}
	}
}

func TestLRU_UpdateRefreshesValueAndTTL(t *testing.T) {
	t.Parallel()
	c, clock := newTestLRU(2, time.Minute)

	c.Add("a", "old")
	clock.Advance(50 * time.Second)
	c.Add("a", "new")
	clock.Advance(50 * time.Second)

	got, ok := c.Get("a")
	if !ok || got != "new" {
		t.Errorf("Get(a) = %q, %v; want new, true", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLRU_TTLExpiration(t *testing.T) {
	t.Parallel()
	c, clock := newTestLRU(10, time.Minute)

	c.Add("a", "A")
	if _, ok := c.Get("a"); !ok {
		t.Fatal("expected 'a' before expiry")
	}

	clock.Advance(time.Minute + time.Second)
	if _, ok := c.Get("a"); ok {
		t.Error("expected 'a' to expire")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be removed on access, Len() = %d", c.Len())
	}
}

func TestLRU_CleanupExpired(t *testing.T) {
	t.Parallel()
	c, clock := newTestLRU(10, time.Minute)

	c.Add("a", "A")
	c.Add("b", "B")
	clock.Advance(30 * time.Second)
	c.Add("c", "C")
	clock.Advance(45 * time.Second)

	if removed := c.CleanupExpired(); removed != 2 {
		t.Errorf("CleanupExpired() = %d, want 2", removed)
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("expected 'c' to survive cleanup")
	}
}

func TestLRU_RemoveAndClear(t *testing.T) {
	t.Parallel()
	c, _ := newTestLRU(10, time.Minute)

	c.Add("a", "A")
	c.Add("b", "B")

	if !c.Remove("a") {
		t.Error("Remove(a) should report true")
	}
	if c.Remove("a") {
		t.Error("second Remove(a) should report false")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	c.Add("z", "Z")
	if _, ok := c.Get("z"); !ok {
		t.Error("cache should be usable after Clear")
	}
}

func TestLRU_Stats(t *testing.T) {
	t.Parallel()
	c, _ := newTestLRU(10, time.Minute)

	c.Add("a", "A")
	c.Get("a")
	c.Get("a")
	c.Get("b")

	hits, misses, size := c.Stats()
	if hits != 2 || misses != 1 || size != 1 {
		t.Errorf("Stats() = %d, %d, %d; want 2, 1, 1", hits, misses, size)
	}
}

func TestNewLRU_Defaults(t *testing.T) {
	t.Parallel()
	c := NewLRU[int](0, 0)
	if c.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", c.capacity, DefaultCapacity)
	}
	if c.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", c.ttl, DefaultTTL)
	}
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	c := NewLRU[int](100, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := strconv.Itoa((g*500 + i) % 150)
				c.Add(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > 100 {
		t.Errorf("Len() = %d exceeds capacity 100", c.Len())
	}
}
