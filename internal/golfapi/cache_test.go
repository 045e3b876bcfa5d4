package golfapi

import (
	"path/filepath"
	"testing"
	"time"
)

func TestCache(t *testing.T) {
	cache := NewCache()

	t.Run("new cache is empty", func(t *testing.T) {
		if cache.Size() != 0 {
			t.Errorf("new cache size = %d, want 0", cache.Size())
		}
	})

	t.Run("set and get", func(t *testing.T) {
		info := &CourseInfo{ID: 42, ClubName: "Test Club"}
		cache.Set("Test Golf Club", "Test City, CA", info)

		got, ok := cache.Get("Test Golf Club", "Test City, CA")
		if !ok || got == nil {
			t.Fatal("Get returned no entry, expected course info")
		}
		if got.ID != 42 {
			t.Errorf("Get().ID = %d, want 42", got.ID)
		}
	})

	t.Run("normalized names share a key", func(t *testing.T) {
		if _, ok := cache.Get("Test", "test city, ca"); !ok {
			t.Error("Get with normalized name and lowercase location missed")
		}
	})

	t.Run("negative result is cached", func(t *testing.T) {
		cache.Set("Nowhere Links", "", nil)
		got, ok := cache.Get("Nowhere Links", "")
		if !ok || got != nil {
			t.Errorf("Get(negative) = %v, %v, want nil, true", got, ok)
		}
	})

	t.Run("get non-existent", func(t *testing.T) {
		if _, ok := cache.Get("Unknown Course", "NY"); ok {
			t.Error("Get(unknown) ok = true, want false")
		}
	})
}

func TestCache_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewCache()
	cache.TTL = time.Hour
	cache.now = func() time.Time { return now }

	for _, name := range []string{"A Course", "B Course", "C Course"} {
		cache.Set(name, "", &CourseInfo{ClubName: name})
	}

	now = now.Add(2 * time.Hour)

	if _, ok := cache.Get("A Course", ""); ok {
		t.Error("Get after expiration ok = true, want false")
	}
	if removed := cache.CleanExpired(); removed != 2 {
		t.Errorf("CleanExpired removed %d, want 2", removed)
	}
	if cache.Size() != 0 {
		t.Errorf("cache size after clean = %d, want 0", cache.Size())
	}
}

func TestCache_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "golfapi.json")

	cache := NewCache()
	cache.Set("Pebble Beach Golf Links", "Pebble Beach, California", &CourseInfo{ID: 9})
	if err := cache.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadCache(path)
	if err != nil {
		t.Fatalf("LoadCache() error = %v", err)
	}
	got, ok := loaded.Get("Pebble Beach Golf Links", "Pebble Beach, California")
	if !ok || got == nil || got.ID != 9 {
		t.Errorf("loaded Get() = %v, %v, want ID 9", got, ok)
	}
	if loaded.TTL != DefaultCacheTTL {
		t.Errorf("loaded TTL = %v, want %v", loaded.TTL, DefaultCacheTTL)
	}
}

func TestLoadCache_Missing(t *testing.T) {
	cache, err := LoadCache(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadCache() error = %v", err)
	}
	if cache.Size() != 0 {
		t.Errorf("Size() = %d, want 0", cache.Size())
	}
}
