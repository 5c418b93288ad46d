package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleTable = `units: in
blocks:
  - label: "1/8"
    length: 1.0
    width: 0.375
    thickness: 0.125
  - label: "1/4"
    length: 1.0
    width: 0.375
    thickness: 0.25
`

func TestParse(t *testing.T) {
	table, err := Parse([]byte(sampleTable))
	require.NoError(t, err)
	require.Equal(t, "in", table.Units)
	require.Equal(t, 25.4, table.Scale())
	require.Len(t, table.Blocks, 2)
	require.Equal(t, "1/8", table.Blocks[0].Label)
	require.Equal(t, 0.125, table.Blocks[0].Thickness)
}

func TestSafeLabel(t *testing.T) {
	b := GaugeBlock{Label: `1/8\slim`}
	require.Equal(t, "1_8_slim", b.SafeLabel())
}

func TestScaleDefaultsToMillimeters(t *testing.T) {
	table := &Table{}
	require.Equal(t, 1.0, table.Scale())
}

func TestParseRejectsBadTables(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad units", "units: furlong\nblocks:\n  - {label: a, length: 1, width: 1, thickness: 1}\n"},
		{"empty", "units: mm\nblocks: []\n"},
		{"missing label", "blocks:\n  - {length: 1, width: 1, thickness: 1}\n"},
		{"zero dimension", "blocks:\n  - {label: a, length: 0, width: 1, thickness: 1}\n"},
		{"not yaml", ": : :\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table.Blocks, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
