package concat_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/hbjs97/shu/internal/chunk"
	"github.com/hbjs97/shu/internal/concat"
	"github.com/hbjs97/shu/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ConcatenatesInArgumentOrder(t *testing.T) {
	t.Parallel()

	a := testutil.TempFileWithContent(t, "a.txt", []byte("hello "))
	b := testutil.TempFileWithContent(t, "b.txt", []byte("world"))

	var buf bytes.Buffer
	total, err := concat.Run(&buf, []string{a, b}, false)
	require.NoError(t, err)

	assert.Equal(t, "hello world", buf.String())
	assert.Equal(t, int64(11), total)

	// Reversed order reverses the output.
	buf.Reset()
	_, err = concat.Run(&buf, []string{b, a}, false)
	require.NoError(t, err)
	assert.Equal(t, "worldhello ", buf.String())
}

func TestRun_LabelBanners(t *testing.T) {
	t.Parallel()

	a := testutil.TempFileWithContent(t, "a.txt", []byte("one\n"))
	b := testutil.TempFileWithContent(t, "b.txt", []byte("two\n"))

	var buf bytes.Buffer
	_, err := concat.Run(&buf, []string{a, b}, true)
	require.NoError(t, err)

	want := "==> " + a + " <==\none\n\n==> " + b + " <==\ntwo\n"
	assert.Equal(t, want, buf.String())
}

func TestRun_NoInput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := concat.Run(&buf, nil, false)
	require.ErrorIs(t, err, concat.ErrNoInput)
	assert.Zero(t, buf.Len())
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := concat.Run(&buf, []string{filepath.Join(t.TempDir(), "missing")}, false)
	require.Error(t, err)
}

func TestRun_DirectoryInput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := concat.Run(&buf, []string{t.TempDir()}, false)
	require.Error(t, err)
}

func TestRun_ReconstructsChunkedFile(t *testing.T) {
	t.Parallel()

	content := []byte("reassemble me, twenty-nine")
	src := testutil.TempFileWithContent(t, "orig.bin", content)

	result, err := chunk.Split(chunk.Options{
		Path: src,
		Plan: chunk.Plan{Strategy: chunk.ByByteSize, Param: 7},
	})
	require.NoError(t, err)
	require.Greater(t, result.Count(), 1)

	paths := make([]string, 0, result.Count())
	for _, d := range result.Chunks {
		paths = append(paths, d.Path)
	}

	var buf bytes.Buffer
	_, err = concat.Run(&buf, paths, false)
	require.NoError(t, err)
	assert.Equal(t, content, buf.Bytes())
}
