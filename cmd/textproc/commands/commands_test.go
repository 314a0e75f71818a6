package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/textproc/cmd/textproc/opts"
	"github.com/walteh/textproc/pkg/config"
)

func testOpts() *opts.RootOpts {
	return &opts.RootOpts{Settings: config.Default()}
}

func TestTransformCmd_InPlaceWithBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	cmd := NewTransformCmd(testOpts())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--operation", "upper"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ABC", string(data))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(backup))
}

func TestTransformCmd_NoBackupFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	cmd := NewTransformCmd(testOpts())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--operation", "upper", "--no-backup"})

	require.NoError(t, cmd.Execute())
	assert.NoFileExists(t, path+".bak")
}

func TestTransformCmd_UnknownOperationFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	cmd := NewTransformCmd(testOpts())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--operation", "shred"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "abc", string(data))
}

func TestAnalyzeCmd_SaveJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	save := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(path, []byte("Hello world. Hello again."), 0o644))

	cmd := NewAnalyzeCmd(testOpts())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--output", "json", "--save", save})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(save)
	require.NoError(t, err)
	assert.Contains(t, string(data), "basic_stats")
	assert.Contains(t, string(data), "readability")
}

func TestAnalyzeCmd_NoReadability(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	save := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(path, []byte("Hello world."), 0o644))

	cmd := NewAnalyzeCmd(testOpts())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--output", "json", "--save", save, "--no-readability"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(save)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "flesch_reading_ease")
}

func TestAnalyzeCmd_BadFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	cmd := NewAnalyzeCmd(testOpts())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--output", "xml"})

	require.Error(t, cmd.Execute())
}

func TestBatchAnalyzeCmd_NoFilesMatched(t *testing.T) {
	dir := t.TempDir()

	cmd := NewBatchAnalyzeCmd(testOpts())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(dir, "*.txt")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files matched")
}

func TestBatchAnalyzeCmd_CombinedOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one two"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("three"), 0o644))
	out := filepath.Join(dir, "combined.json")

	cmd := NewBatchAnalyzeCmd(testOpts())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(dir, "*.txt"), "--output", out})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "a.txt")
	assert.Contains(t, string(data), "b.txt")
}

func TestConfigShowCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewConfigShowCmd(testOpts())
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Default output format: text")
	assert.Contains(t, out, "Backup suffix: .bak")
}
