package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewKey(t *testing.T) {
	now := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)

	key := NewKey("gallery", "Cat Photo.PNG", now)
	assert.True(t, strings.HasPrefix(key, "gallery/2026/03/07/"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)
	assert.NotContains(t, key, "Cat")
}

func TestNewKey_Unique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		k := NewKey("gallery", "cat.png", now)
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}

func TestNewKey_OddExtensions(t *testing.T) {
	now := time.Now()

	assert.False(t, strings.Contains(NewKey("gallery/", "noext", now), "."))
	assert.True(t, strings.HasSuffix(NewKey("gallery", `C:\pics\dog.jpeg`, now), ".jpeg"))
	assert.False(t, strings.Contains(NewKey("gallery", "weird.ext with space", now), " "))
	assert.False(t, strings.HasPrefix(NewKey("/gallery/", "a.png", now), "/"))
}
