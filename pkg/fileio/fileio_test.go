package fileio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func TestReadTextFile_UTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("héllo wörld"), 0o644))

	got, err := ReadTextFile(testContext(t), path)
	require.NoError(t, err)
	assert.Equal(t, "héllo wörld", got)
}

func TestReadTextFile_UTF8BOMStripped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.txt")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("content")...)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := ReadTextFile(testContext(t), path)
	require.NoError(t, err)
	assert.Equal(t, "content", got)
}

func TestReadTextFile_Latin1Fallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin1.txt")
	// 0xE9 is 'é' in Latin-1 and invalid as standalone UTF-8.
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0o644))

	got, err := ReadTextFile(testContext(t), path)
	require.NoError(t, err)
	assert.Equal(t, "café", got)
}

func TestReadTextFile_Missing(t *testing.T) {
	_, err := ReadTextFile(testContext(t), filepath.Join(t.TempDir(), "ghost.txt"))
	require.Error(t, err)

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteTextFile_CreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "out.txt")

	require.NoError(t, WriteTextFile(testContext(t), path, "written"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "written", string(data))
}

func TestWriteTextFile_Unwritable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.MkdirAll(blocked, 0o555))

	err := WriteTextFile(testContext(t), filepath.Join(blocked, "out.txt"), "x")
	require.Error(t, err)

	var writeErr *WriteError
	assert.ErrorAs(t, err, &writeErr)
}

func TestCreateBackup(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "orig.txt")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	backup, err := CreateBackup(ctx, path, ".bak")
	require.NoError(t, err)
	assert.Equal(t, path+".bak", backup)

	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestCreateBackup_MissingSourceWritesNothing(t *testing.T) {
	ctx := testContext(t)
	path := filepath.Join(t.TempDir(), "absent.txt")

	backup, err := CreateBackup(ctx, path, ".bak")
	require.NoError(t, err)
	assert.Equal(t, path+".bak", backup)
	assert.NoFileExists(t, backup)
}

func TestStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "info.txt")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o644))

	info, err := Stat(path)
	require.NoError(t, err)
	assert.Equal(t, "info.txt", info.Name)
	assert.Equal(t, int64(5), info.SizeBytes)
	assert.Equal(t, ".txt", info.Extension)
	assert.True(t, filepath.IsAbs(info.AbsolutePath))
}

func TestStat_Missing(t *testing.T) {
	_, err := Stat(filepath.Join(t.TempDir(), "none.txt"))
	require.Error(t, err)

	var readErr *ReadError
	assert.ErrorAs(t, err, &readErr)
}
