package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"skim/internal/errors"
	"skim/internal/fs"
	"skim/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(t *testing.T) *fs.Executor {
	t.Helper()
	return fs.NewExecutorWithTrash(filepath.Join(t.TempDir(), "Trash"))
}

func TestUniqueName(t *testing.T) {
	dir := t.TempDir()
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{
		"report.txt":   "a",
		"report 2.txt": "b",
		"notes":        "c",
		".bashrc":      "d",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "photos.old"), 0755))

	assert.Equal(t, "fresh.txt", fs.UniqueName(dir, "fresh.txt", false))
	assert.Equal(t, "report 3.txt", fs.UniqueName(dir, "report.txt", false))
	assert.Equal(t, "notes 2", fs.UniqueName(dir, "notes", false))

	// Directory names take the counter at the end, never inside a dot
	assert.Equal(t, "photos.old 2", fs.UniqueName(dir, "photos.old", true))

	// A dotfile has no extension to split on
	assert.Equal(t, ".bashrc 2", fs.UniqueName(dir, ".bashrc", false))
}

func TestCopyDirectoryCollisionKeepsSuffixAtEnd(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(src, "photos.old"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dst, "photos.old"), 0755))

	e := newTestExecutor(t)
	results := e.Copy([]string{filepath.Join(src, "photos.old")}, dst)
	require.NoError(t, results[0].Err)

	assert.Equal(t, filepath.Join(dst, "photos.old 2"), results[0].Target)
	assert.True(t, fs.DirExists(filepath.Join(dst, "photos.old 2")))
	assert.False(t, fs.Exists(filepath.Join(dst, "photos 2.old")))
}

func TestCopyUniquifiesOnCollision(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	testutils.CreateTestFilesWithContent(t, src, map[string]string{"report.txt": "payload"})
	testutils.CreateTestFilesWithContent(t, dst, map[string]string{"report.txt": "already here"})

	e := newTestExecutor(t)
	source := filepath.Join(src, "report.txt")

	results := e.Copy([]string{source}, dst)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, filepath.Join(dst, "report 2.txt"), results[0].Target)

	// A second copy probes the next free suffix
	results = e.Copy([]string{source}, dst)
	require.NoError(t, results[0].Err)
	assert.Equal(t, filepath.Join(dst, "report 3.txt"), results[0].Target)

	data, err := os.ReadFile(filepath.Join(dst, "report 2.txt"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	// Source untouched
	assert.True(t, fs.Exists(source))
}

func TestCopyDirectoryRecursive(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	sub := filepath.Join(src, "project", "docs")
	require.NoError(t, os.MkdirAll(sub, 0755))
	testutils.CreateTestFilesWithContent(t, sub, map[string]string{"readme.md": "hello"})

	e := newTestExecutor(t)
	results := e.Copy([]string{filepath.Join(src, "project")}, dst)
	require.NoError(t, results[0].Err)

	copied := filepath.Join(dst, "project", "docs", "readme.md")
	data, err := os.ReadFile(copied)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestCopyMissingSource(t *testing.T) {
	e := newTestExecutor(t)
	results := e.Copy([]string{filepath.Join(t.TempDir(), "ghost.txt")}, t.TempDir())
	require.Len(t, results, 1)
	assert.True(t, errors.IsNotFound(results[0].Err))
}

func TestMove(t *testing.T) {
	t.Run("plain move", func(t *testing.T) {
		src := t.TempDir()
		dst := t.TempDir()
		testutils.CreateTestFilesWithContent(t, src, map[string]string{"a.txt": "x"})

		e := newTestExecutor(t)
		results := e.Move([]string{filepath.Join(src, "a.txt")}, dst)
		require.NoError(t, results[0].Err)
		assert.False(t, fs.Exists(filepath.Join(src, "a.txt")))
		assert.True(t, fs.Exists(filepath.Join(dst, "a.txt")))
	})

	t.Run("collision uniquifies", func(t *testing.T) {
		src := t.TempDir()
		dst := t.TempDir()
		testutils.CreateTestFilesWithContent(t, src, map[string]string{"a.txt": "new"})
		testutils.CreateTestFilesWithContent(t, dst, map[string]string{"a.txt": "old"})

		e := newTestExecutor(t)
		results := e.Move([]string{filepath.Join(src, "a.txt")}, dst)
		require.NoError(t, results[0].Err)
		assert.Equal(t, filepath.Join(dst, "a 2.txt"), results[0].Target)

		data, _ := os.ReadFile(filepath.Join(dst, "a.txt"))
		assert.Equal(t, "old", string(data), "existing file untouched")
	})

	t.Run("move into own directory is a no-op", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFilesWithContent(t, dir, map[string]string{"a.txt": "x"})

		e := newTestExecutor(t)
		results := e.Move([]string{filepath.Join(dir, "a.txt")}, dir)
		require.NoError(t, results[0].Err)
		assert.True(t, fs.Exists(filepath.Join(dir, "a.txt")))
	})

	t.Run("missing source reports not found", func(t *testing.T) {
		e := newTestExecutor(t)
		results := e.Move([]string{filepath.Join(t.TempDir(), "ghost")}, t.TempDir())
		assert.True(t, errors.IsNotFound(results[0].Err))
	})
}

func TestRename(t *testing.T) {
	e := newTestExecutor(t)

	t.Run("success", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFilesWithContent(t, dir, map[string]string{"old.txt": "x"})

		res := e.Rename(filepath.Join(dir, "old.txt"), "new.txt")
		require.NoError(t, res.Err)
		assert.False(t, fs.Exists(filepath.Join(dir, "old.txt")))
		assert.True(t, fs.Exists(filepath.Join(dir, "new.txt")))
	})

	t.Run("empty name rejected", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFilesWithContent(t, dir, map[string]string{"old.txt": "x"})

		res := e.Rename(filepath.Join(dir, "old.txt"), "")
		assert.True(t, errors.IsInvalidName(res.Err))
		assert.True(t, fs.Exists(filepath.Join(dir, "old.txt")))
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFilesWithContent(t, dir, map[string]string{"old.txt": "x"})

		res := e.Rename(filepath.Join(dir, "old.txt"), "old.txt")
		assert.NoError(t, res.Err)
		assert.True(t, fs.Exists(filepath.Join(dir, "old.txt")))
	})

	t.Run("collision is rejected, not uniquified", func(t *testing.T) {
		dir := t.TempDir()
		testutils.CreateTestFilesWithContent(t, dir, map[string]string{
			"old.txt":   "keep me",
			"taken.txt": "other",
		})

		res := e.Rename(filepath.Join(dir, "old.txt"), "taken.txt")
		assert.True(t, errors.IsNameConflict(res.Err))
		assert.True(t, fs.Exists(filepath.Join(dir, "old.txt")), "original keeps its name")
	})
}

func TestDeleteUsesTrash(t *testing.T) {
	dir := t.TempDir()
	trash := filepath.Join(t.TempDir(), "Trash")
	testutils.CreateTestFilesWithContent(t, dir, map[string]string{"doomed.txt": "recover me"})

	e := fs.NewExecutorWithTrash(trash)
	results := e.Delete([]string{filepath.Join(dir, "doomed.txt")})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	assert.False(t, fs.Exists(filepath.Join(dir, "doomed.txt")))

	// Recoverable: content sits in trash/files with a matching info record
	data, err := os.ReadFile(filepath.Join(trash, "files", "doomed.txt"))
	require.NoError(t, err)
	assert.Equal(t, "recover me", string(data))

	info, err := os.ReadFile(filepath.Join(trash, "info", "doomed.txt.trashinfo"))
	require.NoError(t, err)
	assert.Contains(t, string(info), "[Trash Info]")
	assert.Contains(t, string(info), filepath.Join(dir, "doomed.txt"))
}

func TestDeleteCollidingNamesInTrash(t *testing.T) {
	trash := filepath.Join(t.TempDir(), "Trash")
	e := fs.NewExecutorWithTrash(trash)

	for i := 0; i < 2; i++ {
		dir := t.TempDir()
		testutils.CreateTestFilesWithContent(t, dir, map[string]string{"dup.txt": "x"})
		results := e.Delete([]string{filepath.Join(dir, "dup.txt")})
		require.NoError(t, results[0].Err)
	}

	assert.True(t, fs.Exists(filepath.Join(trash, "files", "dup.txt")))
	assert.True(t, fs.Exists(filepath.Join(trash, "files", "dup 2.txt")))
}

func TestDeleteMissing(t *testing.T) {
	e := newTestExecutor(t)
	results := e.Delete([]string{filepath.Join(t.TempDir(), "ghost")})
	assert.True(t, errors.IsNotFound(results[0].Err))
}

func TestCreateFolder(t *testing.T) {
	e := newTestExecutor(t)

	t.Run("success", func(t *testing.T) {
		dir := t.TempDir()
		res := e.CreateFolder(dir, "New Folder")
		require.NoError(t, res.Err)
		assert.True(t, fs.DirExists(filepath.Join(dir, "New Folder")))
	})

	t.Run("empty name rejected", func(t *testing.T) {
		res := e.CreateFolder(t.TempDir(), "")
		assert.True(t, errors.IsInvalidName(res.Err))
	})

	t.Run("existing name rejected, not uniquified", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0755))

		res := e.CreateFolder(dir, "docs")
		assert.True(t, errors.IsNameConflict(res.Err))
		assert.False(t, fs.Exists(filepath.Join(dir, "docs 2")))
	})
}
