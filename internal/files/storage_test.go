package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveKeepsExtension(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	name, err := s.Save(strings.NewReader("fake image bytes"), "Scan.PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"), name)

	path, err := s.Path(name)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	a, err := s.Save(strings.NewReader("one"), "receipt.pdf")
	require.NoError(t, err)
	b, err := s.Save(strings.NewReader("two"), "receipt.pdf")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPathRejectsTraversal(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../etc/passwd", "a/b.png", ".hidden", ".."} {
		_, err := s.Path(name)
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}

func TestPathResolvesInsideDir(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStorage(dir)
	require.NoError(t, err)

	path, err := s.Path("abc.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "abc.png"), path)
}
