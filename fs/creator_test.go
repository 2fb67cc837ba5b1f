package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/podnote"
	"github.com/fwojciec/podnote/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteCreator_CreateNote(t *testing.T) {
	t.Parallel()

	t.Run("writes note into vault directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "vault")
		creator := fs.NewNoteCreator(dir)

		err := creator.CreateNote(context.Background(), "Pod 1.md", "# Pod")
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "Pod 1.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Pod", string(content))
	})

	t.Run("refuses to overwrite existing note", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "Pod.md")
		require.NoError(t, os.WriteFile(path, []byte("original"), 0644))

		err := fs.NewNoteCreator(dir).CreateNote(context.Background(), "Pod.md", "new")

		assert.Equal(t, podnote.EEXISTS, podnote.ErrorCode(err))
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "original", string(content))
	})

	t.Run("rejects names outside the vault", func(t *testing.T) {
		t.Parallel()

		err := fs.NewNoteCreator(t.TempDir()).CreateNote(context.Background(), "../escape.md", "x")

		assert.Equal(t, podnote.EINVALID, podnote.ErrorCode(err))
	})

	t.Run("accepts extension-only name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		err := fs.NewNoteCreator(dir).CreateNote(context.Background(), ".md", "x")

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, ".md"))
	})
}
