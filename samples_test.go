package main

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSampleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numbers.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadSamplesKeepsFileOrder(t *testing.T) {
	got, err := readSamples(strings.NewReader("3\n1.5\n-2\n1e3\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1.5, -2, 1000}, got)
}

func TestReadSamplesWithoutTrailingNewline(t *testing.T) {
	got, err := readSamples(strings.NewReader("1\n2\n3"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestReadSamplesSkipsEmptyLinesAndCRLF(t *testing.T) {
	got, err := readSamples(strings.NewReader("1\r\n\r\n  2  \n\n3\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestReadSamplesRejectsWhitespaceOnlyLine(t *testing.T) {
	for _, input := range []string{"1\n   \n2\n", "1\n\t\n", " \r\n"} {
		_, err := readSamples(strings.NewReader(input))
		require.Error(t, err, "input %q", input)
		assert.Equal(t, KindInvalidData, kindOf(err), "input %q", input)
	}
}

func TestReadSamplesRejectsNonNumericLine(t *testing.T) {
	_, err := readSamples(strings.NewReader("1\n2\nabc\n4\n"))
	require.Error(t, err)

	var ce *CalcError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, KindInvalidData, ce.Kind)
	assert.Equal(t, 3, ce.Line)
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestReadSamplesRejectsNonFinite(t *testing.T) {
	for _, input := range []string{"NaN\n", "1\ninf\n", "-Inf\n"} {
		_, err := readSamples(strings.NewReader(input))
		assert.Equal(t, KindInvalidData, kindOf(err), "input %q", input)
	}
}

func TestReadSamplesEmpty(t *testing.T) {
	got, err := readSamples(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadSamplesLineTooLong(t *testing.T) {
	long := strings.Repeat("x", bufio.MaxScanTokenSize+1)
	_, err := readSamples(strings.NewReader(long))
	assert.Equal(t, KindInvalidData, kindOf(err))
	assert.ErrorIs(t, err, bufio.ErrTooLong)
}

func TestLoadSamplesFromFile(t *testing.T) {
	path := writeSampleFile(t, "2\n4\n4\n4\n5\n5\n7\n9\n")
	got, err := loadSamples(path)
	require.NoError(t, err)
	assert.Len(t, got, 8)
}

func TestLoadSamplesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := loadSamples(path)
	require.Error(t, err)
	assert.Equal(t, KindIO, kindOf(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadSamplesRecordsPathOnParseFailure(t *testing.T) {
	path := writeSampleFile(t, "1\nabc\n")
	_, err := loadSamples(path)

	var ce *CalcError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, path, ce.Path)
	assert.Equal(t, 2, ce.Line)
}
