package inserts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveFlushInsert(t *testing.T) {
	dims, err := Resolve("M3", "M3x5", FlushInsert, 0)
	require.NoError(t, err)
	require.Equal(t, 4.4, dims.TopDia)
	require.Equal(t, 4.0, dims.BottomDia)
	require.Equal(t, 5.2, dims.InsertDepth)
	// Flush insert relief: body diameter + 0.3 clearance, 0.5 deep.
	require.Equal(t, 4.5, dims.CounterboreDia)
	require.Equal(t, 0.5, dims.CounterboreDepth)
}

func TestResolveFlushScrew(t *testing.T) {
	dims, err := Resolve("M5", "M5x12", FlushScrew, 0)
	require.NoError(t, err)
	require.Equal(t, 12.2, dims.InsertDepth)
	require.Equal(t, 9.2, dims.CounterboreDia)
	require.Equal(t, 5.2, dims.CounterboreDepth)
}

func TestResolveExtraDepth(t *testing.T) {
	dims, err := Resolve("M2", "M2x3", FlushInsert, 1.0)
	require.NoError(t, err)
	require.Equal(t, 4.2, dims.InsertDepth)
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("M6", "M6x8", FlushInsert, 0)
	require.Error(t, err)

	_, err = Resolve("M3", "M3x99", FlushInsert, 0)
	require.Error(t, err)
}

func TestSizesSorted(t *testing.T) {
	require.Equal(t, []string{"M2", "M3", "M4", "M5"}, Sizes())
}

func TestLengthsOrderedByDepth(t *testing.T) {
	require.Equal(t, []string{"M3x3", "M3x4", "M3x5", "M3x6", "M3x8"}, Lengths("M3"))
	require.Nil(t, Lengths("M9"))
}
