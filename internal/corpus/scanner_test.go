package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestScanRecursiveSortedAbsolute(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.png"))
	touch(t, filepath.Join(root, "a.jpg"))
	touch(t, filepath.Join(root, "sub", "deep", "c.webp"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "archive.zip"))

	got, err := Scan(root)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, filepath.Join(root, "a.jpg"), got[0])
	assert.Equal(t, filepath.Join(root, "b.png"), got[1])
	assert.Equal(t, filepath.Join(root, "sub", "deep", "c.webp"), got[2])
	for _, p := range got {
		assert.True(t, filepath.IsAbs(p))
	}
}

func TestScanCaseInsensitiveExtensions(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "upper.PNG"))
	touch(t, filepath.Join(root, "mixed.JpEg"))
	touch(t, filepath.Join(root, "shout.TIFF"))

	got, err := Scan(root)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestScanEmptyCorpus(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "readme.md"))

	_, err := Scan(root)
	assert.True(t, errors.Is(err, ErrEmptyCorpus))
}

func TestScanMissingFolder(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptyCorpus))
}

func TestIsSupportedFormat(t *testing.T) {
	assert.True(t, IsSupportedFormat("photo.png"))
	assert.True(t, IsSupportedFormat("PHOTO.JPG"))
	assert.True(t, IsSupportedFormat("scan.tiff"))
	assert.False(t, IsSupportedFormat("scan.tif")) // not in the allow-list
	assert.False(t, IsSupportedFormat("doc.pdf"))
	assert.False(t, IsSupportedFormat("noext"))
}
