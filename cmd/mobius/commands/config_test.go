package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parametric-surfaces/mobius-go/pkg/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	data := []byte("radius: 2.5\nwidth: 0.8\nresolution: 64\n")
	p, err := ParseParams(data)
	require.NoError(t, err)
	assert.Equal(t, 2.5, p.R)
	assert.Equal(t, 0.8, p.W)
	assert.Equal(t, 64, p.N)
}

func TestParseParamsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "missing radius", yaml: "width: 1\nresolution: 100\n"},
		{name: "negative width", yaml: "radius: 3\nwidth: -1\nresolution: 100\n"},
		{name: "resolution too small", yaml: "radius: 3\nwidth: 1\nresolution: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseParams([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, surface.ErrInvalidParameter)
		})
	}
}

func TestParseParamsMalformedYAML(t *testing.T) {
	_, err := ParseParams([]byte("radius: [not a number\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing parameters")
}

func TestLoadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strip.yaml")
	require.NoError(t, os.WriteFile(path, []byte("radius: 3\nwidth: 1\nresolution: 50\n"), 0o644))

	p, err := LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, surface.Params{R: 3, W: 1, N: 50}, p)
}

func TestLoadParamsMissingFile(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
