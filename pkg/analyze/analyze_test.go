package analyze

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

func TestAnalyzeText_BasicStats(t *testing.T) {
	a := New(Options{})
	res := a.AnalyzeText(testContext(t), "Hello world.\n\nSecond paragraph here.\n")

	assert.Equal(t, 5, res.Int("basic_stats", "word_count"))
	assert.Equal(t, 4, res.Int("basic_stats", "line_count"))
	assert.Equal(t, 2, res.Int("basic_stats", "paragraph_count"))
	assert.Equal(t, 2, res.Int("basic_stats", "blank_lines"))
}

func TestAnalyzeText_EmptyTextIsZeroValued(t *testing.T) {
	a := New(Options{IncludeReadability: true})
	res := a.AnalyzeText(testContext(t), "")

	assert.Equal(t, 0, res.Int("basic_stats", "word_count"))
	assert.Equal(t, 0, res.Int("basic_stats", "character_count"))
	assert.Equal(t, 0, res.Int("word_analysis", "unique_words"))
	assert.Equal(t, 0, res.Int("sentence_analysis", "sentence_count"))
	assert.Equal(t, 0, res.Int("character_analysis", "uppercase_letters"))
	assert.Equal(t, 0, res.Int("linguistic_analysis", "stopword_count"))

	ease, ok := res.Lookup("readability", "flesch_reading_ease")
	require.True(t, ok)
	assert.Equal(t, 0.0, ease)

	div, ok := res.Lookup("linguistic_analysis", "lexical_diversity")
	require.True(t, ok)
	assert.Equal(t, 0.0, div)

	// basic_stats line_count counts the single empty line, like splitting
	// "" on newlines does.
	assert.Equal(t, 1, res.Int("basic_stats", "line_count"))
}

func TestAnalyzeText_WordAnalysis(t *testing.T) {
	a := New(Options{})
	res := a.AnalyzeText(testContext(t), "the cat and the dog and the bird")

	assert.Equal(t, 5, res.Int("word_analysis", "unique_words"))

	freq, ok := res.Lookup("word_analysis", "word_frequency")
	require.True(t, ok)
	top := freq.([]Metric)
	require.NotEmpty(t, top)
	assert.Equal(t, "the", top[0].Key)
	assert.Equal(t, 3, top[0].Value)
	assert.Equal(t, "and", top[1].Key)
	assert.Equal(t, 2, top[1].Value)

	longest, _ := res.Lookup("word_analysis", "longest_word")
	assert.Equal(t, "bird", longest)
}

func TestAnalyzeText_WordAnalysisAccented(t *testing.T) {
	a := New(Options{})
	res := a.AnalyzeText(testContext(t), "café hello café")

	// Accented letters stay inside their token.
	assert.Equal(t, 2, res.Int("word_analysis", "unique_words"))

	freq, ok := res.Lookup("word_analysis", "word_frequency")
	require.True(t, ok)
	top := freq.([]Metric)
	require.NotEmpty(t, top)
	assert.Equal(t, "café", top[0].Key)
	assert.Equal(t, 2, top[0].Value)

	// Word lengths are runes: "hello" (5) beats "café" (4 runes, 5 bytes).
	longest, _ := res.Lookup("word_analysis", "longest_word")
	assert.Equal(t, "hello", longest)
	shortest, _ := res.Lookup("word_analysis", "shortest_word")
	assert.Equal(t, "café", shortest)
}

func TestAnalyzeText_SentenceFallbackSplitter(t *testing.T) {
	a := New(Options{})
	res := a.AnalyzeText(testContext(t), "One two three. Four five! Six?")

	assert.Equal(t, 3, res.Int("sentence_analysis", "sentence_count"))

	longest, _ := res.Lookup("sentence_analysis", "longest_sentence")
	assert.Equal(t, "One two three", longest)
	shortest, _ := res.Lookup("sentence_analysis", "shortest_sentence")
	assert.Equal(t, "Six", shortest)
}

func TestAnalyzeText_CharacterClasses(t *testing.T) {
	a := New(Options{})
	res := a.AnalyzeText(testContext(t), "Ab 1! x")

	assert.Equal(t, 1, res.Int("character_analysis", "uppercase_letters"))
	assert.Equal(t, 2, res.Int("character_analysis", "lowercase_letters"))
	assert.Equal(t, 1, res.Int("character_analysis", "digits"))
	assert.Equal(t, 2, res.Int("character_analysis", "spaces"))
	assert.Equal(t, 1, res.Int("character_analysis", "punctuation"))
	assert.Equal(t, 1, res.Int("character_analysis", "special_characters"))
}

func TestAnalyzeText_ReadabilityToggle(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. It runs fast."

	with := New(Options{IncludeReadability: true}).AnalyzeText(testContext(t), text)
	_, ok := with.Lookup("readability", "flesch_reading_ease")
	assert.True(t, ok)

	without := New(Options{}).AnalyzeText(testContext(t), text)
	_, ok = without.Lookup("readability", "flesch_reading_ease")
	assert.False(t, ok)
}

func TestAnalyzeText_LinguisticAnalysis(t *testing.T) {
	a := New(Options{})
	res := a.AnalyzeText(testContext(t), "the cat sat on the mat")

	assert.Equal(t, 3, res.Int("linguistic_analysis", "stopword_count")) // the, on, the

	div, ok := res.Lookup("linguistic_analysis", "lexical_diversity")
	require.True(t, ok)
	assert.InDelta(t, 5.0/6.0, div.(float64), 0.01)

	posAny, ok := res.Lookup("linguistic_analysis", "pos_tag_counts")
	require.True(t, ok)
	pos := posAny.([]Metric)
	require.NotEmpty(t, pos)
	assert.Equal(t, "DT", pos[0].Key) // "the" is seen first
	assert.Equal(t, 2, pos[0].Value)
}

func TestAnalyzeText_CustomSplitterInjection(t *testing.T) {
	splitter := splitterFunc(func(text string) []string {
		return []string{text}
	})
	a := New(Options{Splitter: splitter})
	res := a.AnalyzeText(testContext(t), "no boundaries here at all")

	assert.Equal(t, 1, res.Int("sentence_analysis", "sentence_count"))
}

type splitterFunc func(string) []string

func (f splitterFunc) Split(text string) []string { return f(text) }

func TestAnalyzeFile(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello file."), 0o644))

	a := New(Options{})
	res, err := a.AnalyzeFile(ctx, path)
	require.NoError(t, err)

	name, ok := res.Lookup("file_info", "filename")
	require.True(t, ok)
	assert.Equal(t, "doc.txt", name)
	ext, _ := res.Lookup("file_info", "file_extension")
	assert.Equal(t, ".txt", ext)
	size, _ := res.Lookup("file_info", "file_size_bytes")
	assert.Equal(t, int64(11), size)
}

func TestAnalyzeFile_Missing(t *testing.T) {
	a := New(Options{})
	_, err := a.AnalyzeFile(testContext(t), filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestResult_MarshalJSONStableOrdering(t *testing.T) {
	res := &Result{Sections: []Section{
		{Name: "first", Metrics: []Metric{{"b", 1}, {"a", 2}}},
		{Name: "second", Metrics: []Metric{{"nested", []Metric{{"z", "v"}}}}},
	}}

	data, err := res.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"first":{"b":1,"a":2},"second":{"nested":{"z":"v"}}}`, string(data))
}

func TestSyllableCount(t *testing.T) {
	tests := map[string]int{
		"cat":       1,
		"table":     2,
		"beautiful": 3,
		"a":         1,
		"rhythm":    1,
	}
	for word, want := range tests {
		assert.Equal(t, want, syllableCount(word), "word %q", word)
	}
}
