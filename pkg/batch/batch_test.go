package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/textproc/pkg/analyze"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.txt":        "alpha",
		"b.txt":        "beta",
		"notes.md":     "skip me",
		"sub/c.txt":    "gamma",
		"sub/deep.doc": "skip",
	})

	files, err := FindFiles(testContext(t), filepath.Join(dir, "*.txt"), false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
	}, files)
}

func TestFindFiles_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.txt":     "alpha",
		"sub/c.txt": "gamma",
	})

	files, err := FindFiles(testContext(t), filepath.Join(dir, "*.txt"), true)
	require.NoError(t, err)
	assert.Contains(t, files, filepath.Join(dir, "a.txt"))
	assert.Contains(t, files, filepath.Join(dir, "sub", "c.txt"))
}

func TestFindFiles_RecursiveQualifiedPattern(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"docs/a.txt":          "alpha",
		"docs/sub/deep/c.txt": "gamma",
		"other/skip.txt":      "skip",
	})

	files, err := FindFiles(testContext(t), filepath.Join(dir, "docs", "*.txt"), true)
	require.NoError(t, err)
	assert.Contains(t, files, filepath.Join(dir, "docs", "a.txt"))
	assert.Contains(t, files, filepath.Join(dir, "docs", "sub", "deep", "c.txt"))
	assert.NotContains(t, files, filepath.Join(dir, "other", "skip.txt"))
}

func TestFindFiles_NoMatch(t *testing.T) {
	dir := t.TempDir()

	_, err := FindFiles(testContext(t), filepath.Join(dir, "*.txt"), false)
	require.Error(t, err)

	var noneErr *NoFilesMatchedError
	require.ErrorAs(t, err, &noneErr)
	assert.Contains(t, err.Error(), "no files matched")
}

func TestFindFiles_DirectoriesExcluded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "folder.txt"), 0o755))
	writeFiles(t, dir, map[string]string{"real.txt": "content"})

	files, err := FindFiles(testContext(t), filepath.Join(dir, "*.txt"), false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "real.txt")}, files)
}

func TestRun_SequentialTotals(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.txt": "one two three",
		"b.txt": "four five",
	})

	runner := NewRunner(analyze.New(analyze.Options{}))
	summary := runner.Run(testContext(t), []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
	})

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 5, summary.TotalWords)
	assert.Equal(t, len("one two three")+len("four five"), summary.TotalChars)
	require.Len(t, summary.Items, 2)
	assert.NoError(t, summary.Items[0].Err)
}

func TestRun_PartialFailureContinues(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"good.txt": "hello there"})

	runner := NewRunner(analyze.New(analyze.Options{}))
	summary := runner.Run(testContext(t), []string{
		filepath.Join(dir, "missing.txt"),
		filepath.Join(dir, "good.txt"),
	})

	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Items, 2)
	assert.Error(t, summary.Items[0].Err)
	assert.NotNil(t, summary.Items[1].Result)
	assert.Equal(t, 2, summary.TotalWords)
}
