package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveReturnsPublicURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewAvatarStore(dir, "http://test.local/")
	require.NoError(t, err)

	url, err := store.Save(strings.NewReader("fake-png-bytes"), "photo.PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://test.local/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), "extension is normalized to lowercase")

	name := filepath.Base(url)
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestSaveRejectsUnsupportedTypes(t *testing.T) {
	store, err := NewAvatarStore(t.TempDir(), "http://test.local")
	require.NoError(t, err)

	_, err = store.Save(strings.NewReader("#!/bin/sh"), "script.sh")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = store.Save(strings.NewReader("x"), "noextension")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDistinctNamesPerUpload(t *testing.T) {
	store, err := NewAvatarStore(t.TempDir(), "http://test.local")
	require.NoError(t, err)

	a, err := store.Save(strings.NewReader("one"), "a.jpg")
	require.NoError(t, err)
	b, err := store.Save(strings.NewReader("two"), "a.jpg")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
