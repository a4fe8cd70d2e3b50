package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	input := `# wavelength flux
1.0
2.5

# a comment
-3.25
`
	got, err := Read(strings.NewReader(input), Options{Comment: "#"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3.25}, got)
}

func TestRead_ColumnSelection(t *testing.T) {
	input := "10 100\n20 200\n30 300\n"

	got, err := Read(strings.NewReader(input), Options{Column: 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200, 300}, got)
}

func TestRead_MissingColumn(t *testing.T) {
	_, err := Read(strings.NewReader("1 2\n3\n"), Options{Column: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRead_Malformed(t *testing.T) {
	_, err := Read(strings.NewReader("1.0\nnot-a-number\n"), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader("# only comments\n"), Options{Comment: "#"})
	require.ErrorIs(t, err, ErrNoSamples)
}

func TestRead_OnLine(t *testing.T) {
	lines := 0
	_, err := Read(strings.NewReader("1\n2\n3\n"), Options{OnLine: func() { lines++ }})
	require.NoError(t, err)
	assert.Equal(t, 3, lines)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.txt")
	require.NoError(t, os.WriteFile(path, []byte("4\n5\n6\n"), 0o644))

	got, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), Options{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoSamples))
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	content := "# x y\n0 0\n10 100\n20 400\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	xs, ys, err := LoadTable(path, Options{Comment: "#"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10, 20}, xs)
	assert.Equal(t, []float64{0, 100, 400}, ys)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{4, 1, 3, 2})

	assert.Equal(t, 4, s.N)
	assert.Equal(t, float64(1), s.Min)
	assert.Equal(t, float64(4), s.Max)
	assert.LessOrEqual(t, s.P25, s.P75)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarize_DoesNotMutate(t *testing.T) {
	samples := []float64{3, 1, 2}
	Summarize(samples)
	assert.Equal(t, []float64{3, 1, 2}, samples)
}
