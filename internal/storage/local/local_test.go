package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pammu-27/sparsha-backend/internal/storage"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := New(dir, "/uploads/")
	require.NoError(t, err)
	return s, dir
}

func TestPutAndURL(t *testing.T) {
	s, dir := newStore(t)

	err := s.Put(context.Background(), storage.Object{
		Key:         "gallery/2026/01/02/abc.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "gallery", "2026", "01", "02", "abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "/uploads/gallery/2026/01/02/abc.png", s.URL("gallery/2026/01/02/abc.png"))
	assert.Equal(t, "local", s.Kind())
}

func TestPut_NoOverwrite(t *testing.T) {
	s, dir := newStore(t)
	obj := storage.Object{Key: "gallery/a.png", Body: strings.NewReader("one")}
	require.NoError(t, s.Put(context.Background(), obj))

	err := s.Put(context.Background(), storage.Object{Key: "gallery/a.png", Body: strings.NewReader("two")})
	assert.ErrorIs(t, err, storage.ErrExists)

	data, err := os.ReadFile(filepath.Join(dir, "gallery", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))
}

func TestPut_RejectsTraversal(t *testing.T) {
	s, _ := newStore(t)
	err := s.Put(context.Background(), storage.Object{Key: "../escape.png", Body: strings.NewReader("x")})
	assert.Error(t, err)
}

func TestPut_CancelledContextLeavesNoFile(t *testing.T) {
	s, dir := newStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Put(ctx, storage.Object{Key: "gallery/c.png", Body: strings.NewReader("x")})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "gallery", "c.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDelete(t *testing.T) {
	s, dir := newStore(t)
	require.NoError(t, s.Put(context.Background(), storage.Object{Key: "gallery/d.png", Body: strings.NewReader("x")}))

	require.NoError(t, s.Delete(context.Background(), "gallery/d.png"))
	_, err := os.Stat(filepath.Join(dir, "gallery", "d.png"))
	assert.True(t, os.IsNotExist(err))

	// missing key is fine
	assert.NoError(t, s.Delete(context.Background(), "gallery/d.png"))
	assert.Error(t, s.Delete(context.Background(), "../../etc/passwd"))
}
