package cache

import (
	"sync"
	"testing"
	"time"
)

func TestCacheBasicOperations(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)

	t.Run("Set and Get", func(t *testing.T) {
		c.Set("key1", "value1")

		val, found := c.Get("key1")
		if !found {
			t.Error("expected key1 to be found")
		}
		if val != "value1" {
			t.Errorf("expected value1, got %v", val)
		}
	})

	t.Run("Get non-existent key", func(t *testing.T) {
		_, found := c.Get("nonexistent")
		if found {
			t.Error("expected nonexistent key to not be found")
		}
	})

	t.Run("Set and Delete", func(t *testing.T) {
		c.Set("key2", "value2")
		c.Delete("key2")

		_, found := c.Get("key2")
		if found {
			t.Error("expected key2 to be deleted")
		}
	})
}

func TestCacheSetWithTTL(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)

	c.SetWithTTL("expiring", "value", 50*time.Millisecond)

	_, found := c.Get("expiring")
	if !found {
		t.Error("expected key to exist immediately")
	}

	time.Sleep(80 * time.Millisecond)

	_, found = c.Get("expiring")
	if found {
		t.Error("expected key to expire")
	}
}

func TestCacheClear(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	if c.ItemCount() != 2 {
		t.Errorf("expected 2 items, got %d", c.ItemCount())
	}

	c.Clear()
	if c.ItemCount() != 0 {
		t.Errorf("expected 0 items after clear, got %d", c.ItemCount())
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New(5*time.Minute, 10*time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := "shared"
			c.Set(key, n)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if _, found := c.Get("shared"); !found {
		t.Error("expected shared key to exist")
	}
}
