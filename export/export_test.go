package export_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvperc/export"
	"github.com/katalvlaran/lvperc/montecarlo"
)

var rows = []montecarlo.Row{
	{P: 0, Mean: 0.02, StdErr: 0, Trials: 4},
	{P: 0.5, Mean: 0.125, StdErr: 0.01, Trials: 4},
	{P: 1, Mean: 1, StdErr: 0, Trials: 4},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, "largest_components", rows))
	assert.Equal(t, "p,largest_components\n0,0.02\n0.5,0.125\n1,1\n", buf.String())
}

func TestWriteCSVStdErrAndPrecision(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, "mean_cluster_size", rows[1:2],
		export.WithStdErr(), export.WithPrecision(3)))
	assert.Equal(t, "p,mean_cluster_size,stderr\n0.500,0.125,0.010\n", buf.String())
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, "x", nil))
	assert.Equal(t, "p,x\n", buf.String())
}

func TestWriteCSVEmptyColumn(t *testing.T) {
	require.ErrorIs(t, export.WriteCSV(&bytes.Buffer{}, "  ", rows), export.ErrEmptyColumn)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSVWriterError(t *testing.T) {
	require.Error(t, export.WriteCSV(failWriter{}, "x", rows))
}

func TestReadCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, "largest_components", rows, export.WithStdErr()))

	col, got, err := export.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, "largest_components", col)
	require.Len(t, got, 3)
	for i := range rows {
		assert.Equal(t, rows[i].P, got[i].P)
		assert.Equal(t, rows[i].Mean, got[i].Mean)
		assert.Equal(t, rows[i].StdErr, got[i].StdErr)
	}
}

func TestReadCSVMalformed(t *testing.T) {
	for name, in := range map[string]string{
		"empty":       "",
		"bad header":  "q,x\n0,1\n",
		"one column":  "p\n0\n",
		"short line":  "p,x\n0\n",
		"extra third": "p,x,y\n0,1,2\n",
	} {
		_, _, err := export.ReadCSV(strings.NewReader(in))
		require.ErrorIs(t, err, export.ErrMalformedTable, name)
	}

	_, _, err := export.ReadCSV(strings.NewReader("p,x\n0,abc\n"))
	require.Error(t, err)
}
