package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/parametric-surfaces/mobius-go/pkg/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportJSON(t *testing.T) {
	s, err := surface.New(3, 1, 8)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(s, &buf))

	var doc meshDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 3.0, doc.R)
	assert.Equal(t, 1.0, doc.W)
	assert.Equal(t, 8, doc.N)
	require.Len(t, doc.Points, 8*8)

	// First point is (u=0, v=-w/2): (R - w/2, 0, 0).
	first := doc.Points[0]
	assert.Equal(t, 0, first.I)
	assert.Equal(t, 0, first.J)
	assert.InDelta(t, 2.5, first.X, 1e-12)
	assert.InDelta(t, 0, first.Y, 1e-12)
}

func TestExportCSV(t *testing.T) {
	s, err := surface.New(3, 1, 6)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(s, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+6*6)
	assert.Equal(t, []string{"i", "j", "x", "y", "z"}, records[0])
	assert.Len(t, records[1], 5)
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.json")
	err := RunExport(surface.Params{R: 3, W: 1, N: 5}, "json", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc meshDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Points, 5*5)
}

func TestExportUnknownFormat(t *testing.T) {
	err := RunExport(surface.Params{R: 3, W: 1, N: 5}, "xml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestExportInvalidParams(t *testing.T) {
	err := RunExport(surface.Params{R: 3, W: 1, N: 1}, "json", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, surface.ErrInvalidParameter)
}
