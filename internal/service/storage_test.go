package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	url, err := s.Put(ctx, "user-1/profile.png", "image/png", strings.NewReader("first"), 5)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/user-1/profile.png", url)

	// 同じキーは上書き
	_, err = s.Put(ctx, "user-1/profile.png", "image/png", strings.NewReader("second"), 6)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "user-1", "profile.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	require.NoError(t, s.DeletePrefix(ctx, "user-1/"))
	_, err = os.Stat(filepath.Join(dir, "user-1"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "../outside.png", "image/png", strings.NewReader("x"), 1)
	assert.Error(t, err)
	assert.Error(t, s.DeletePrefix(context.Background(), ""))
}
