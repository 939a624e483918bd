package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filekit/internal/domain"
)

func TestWriteAndRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_file.txt")

	require.NoError(t, Write(path, "This is test content."))

	content, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "This is test content.", content)
}

func TestWriteOverwritesEntirely(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_file.txt")

	require.NoError(t, Write(path, "a much longer original content"))
	require.NoError(t, Write(path, "short"))

	content, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "short", content)
}

func TestWriteCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c", "nested_file.txt")

	require.NoError(t, Write(nested, "deep"))

	info, err := os.Stat(filepath.Join(dir, "a", "b", "c"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	content, err := Read(nested)
	require.NoError(t, err)
	assert.Equal(t, "deep", content)
}

func TestWriteBarePathNoDirectoryComponent(t *testing.T) {
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })

	require.NoError(t, Write("bare.txt", "cwd"))

	content, err := Read(filepath.Join(dir, "bare.txt"))
	require.NoError(t, err)
	assert.Equal(t, "cwd", content)
}

func TestWriteEmptyContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")

	require.NoError(t, Write(path, ""))

	content, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "", content)
}

func TestReadNonExistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.txt")

	_, err := Read(path)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var fsErr *domain.FSError
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, path, fsErr.Path)
}

func TestReadDirectoryIsIOFailure(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(dir)
	assert.ErrorIs(t, err, domain.ErrIOFailure)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(filepath.Join(dir, "a.txt"), "hello"))
	require.NoError(t, Write(filepath.Join(dir, "nested", "b.txt"), "world"))

	names, err := List(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", "nested"}, names)
}

func TestListOneLevelDeep(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(filepath.Join(dir, "top.txt"), "x"))
	require.NoError(t, Write(filepath.Join(dir, "sub", "inner1.txt"), "x"))
	require.NoError(t, Write(filepath.Join(dir, "sub", "inner2.txt"), "x"))

	names, err := List(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"top.txt", "sub"}, names)
	assert.NotContains(t, names, "inner1.txt")
}

func TestListNonExistent(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nonexistent"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListNotADirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, Write(path, "content"))

	_, err := List(path)
	assert.ErrorIs(t, err, domain.ErrNotADirectory)
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doomed.txt")
	sibling := filepath.Join(dir, "survivor.txt")
	require.NoError(t, Write(path, "x"))
	require.NoError(t, Write(sibling, "y"))

	require.NoError(t, Delete(path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	names, err := List(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"survivor.txt"}, names)
}

func TestDeleteNonExistent(t *testing.T) {
	err := Delete(filepath.Join(t.TempDir(), "nonexistent.txt"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "subdir")
	require.NoError(t, os.Mkdir(sub, 0o755))

	err := Delete(sub)
	assert.ErrorIs(t, err, domain.ErrIsADirectory)

	// The directory must be untouched.
	info, statErr := os.Stat(sub)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, Write(src, "hello"))

	require.NoError(t, Move(src, dst))

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err))

	content, err := Read(dst)
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
}

func TestMoveCreatesDestinationParents(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "new_nested", "deeper", "moved.txt")
	require.NoError(t, Write(src, "payload"))

	require.NoError(t, Move(src, dst))

	content, err := Read(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", content)
}

func TestMoveOverwritesExistingDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, Write(src, "new"))
	require.NoError(t, Write(dst, "old"))

	require.NoError(t, Move(src, dst))

	content, err := Read(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", content)
}

func TestMoveNonExistentSource(t *testing.T) {
	dir := t.TempDir()
	err := Move(filepath.Join(dir, "nonexistent.txt"), filepath.Join(dir, "dst.txt"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMoveDirectorySource(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "subdir")
	require.NoError(t, os.Mkdir(sub, 0o755))

	err := Move(sub, filepath.Join(dir, "moved_dir"))
	assert.ErrorIs(t, err, domain.ErrIsADirectory)

	var fsErr *domain.FSError
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, sub, fsErr.Path)
	assert.Equal(t, filepath.Join(dir, "moved_dir"), fsErr.Dest)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")

	ok, err := Exists(path)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, Write(path, "x"))

	ok, err = Exists(path)
	require.NoError(t, err)
	assert.True(t, ok)
}

// Exercises a typical workspace session: write, list, move, delete.
func TestEndToEndScenario(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Write(filepath.Join(dir, "a.txt"), "hello"))
	require.NoError(t, Write(filepath.Join(dir, "nested", "b.txt"), "world"))

	names, err := List(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", "nested"}, names)

	require.NoError(t, Move(filepath.Join(dir, "a.txt"), filepath.Join(dir, "moved.txt")))

	content, err := Read(filepath.Join(dir, "moved.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	require.NoError(t, Delete(filepath.Join(dir, "moved.txt")))

	names, err = List(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"nested"}, names)
}

func TestErrorCodesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, Write(file, "x"))

	_, readErr := Read(filepath.Join(dir, "missing.txt"))
	_, listErr := List(file)
	delErr := Delete(dir + string(os.PathSeparator) + "..")

	assert.Equal(t, domain.CodeNotFound, domain.ErrorCodeOf(readErr))
	assert.Equal(t, domain.CodeNotADirectory, domain.ErrorCodeOf(listErr))
	assert.Equal(t, domain.CodeIsADirectory, domain.ErrorCodeOf(delErr))
}

func TestFSErrorMessageCarriesPaths(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "missing.txt")
	dst := filepath.Join(dir, "dst.txt")

	err := Move(src, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), src)
	assert.Contains(t, err.Error(), dst)
	assert.False(t, errors.Is(err, domain.ErrIOFailure))
}
