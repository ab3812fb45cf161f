package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flags struct {
	Input   string  `json:"Input" yaml:"input"`
	Samples int     `json:"Samples" yaml:"samples"`
	Scale   float64 `json:"Scale" yaml:"scale"`
	View    bool    `json:"View" yaml:"view"`
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		err      error
	}{
		{"preset.json", JSON, nil},
		{"preset", JSON, nil},
		{"dir/preset.YAML", YAML, nil},
		{"preset.yml", YAML, nil},
		{"preset.toml", "", ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatOf(tt.path)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	in := flags{Input: "curve.svg", Samples: 50, Scale: 2.5, View: true}

	for _, format := range []Format{JSON, YAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(format, in)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "preset."+string(format))
			require.NoError(t, os.WriteFile(path, data, 0o644))

			var out flags
			require.NoError(t, Load(path, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 10\n"), 0o644))

	out := flags{Input: "keep.svg", Samples: 100}
	require.NoError(t, Load(path, &out))
	assert.Equal(t, flags{Input: "keep.svg", Samples: 10}, out)
}

func TestLoadErrors(t *testing.T) {
	var out flags

	assert.ErrorIs(t, Load("preset.ini", &out), ErrUnknownFormat)
	assert.Error(t, Load(filepath.Join(t.TempDir(), "missing.json"), &out))

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	assert.Error(t, Load(path, &out))

	_, err := Marshal("xml", out)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
