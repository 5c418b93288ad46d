package arrange

import (
	"testing"

	"github.com/BuildByAnyMeans/FusionAPI/centering"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func box(minX, width float64) Item {
	return Item{
		Min: r3.Vec{X: minX},
		Max: r3.Vec{X: minX + width, Y: 10, Z: 10},
	}
}

func TestLayoutTooFewItems(t *testing.T) {
	_, err := Layout([]Item{box(0, 5)}, Options{Axis: centering.AxisX})
	require.ErrorIs(t, err, ErrTooFewItems)
}

func TestLayoutFixedGapByBounds(t *testing.T) {
	items := []Item{box(0, 10), box(30, 10), box(100, 20)}
	moves, err := Layout(items, Options{
		Axis:    centering.AxisX,
		Mode:    FixedGap,
		Ref:     ByBounds,
		Spacing: 5,
	})
	require.NoError(t, err)
	// First stays, second packs to x=15, third to x=30.
	require.Equal(t, 0.0, moves[0].X)
	require.Equal(t, -15.0, moves[1].X)
	require.Equal(t, -70.0, moves[2].X)
}

func TestLayoutSortsByPosition(t *testing.T) {
	// Input order reversed along X; the leftmost item anchors the row.
	items := []Item{box(50, 10), box(0, 10)}
	moves, err := Layout(items, Options{
		Axis:    centering.AxisX,
		Mode:    FixedGap,
		Spacing: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, moves[1].X)
	require.Equal(t, -38.0, moves[0].X)
}

func TestLayoutRespectOrder(t *testing.T) {
	items := []Item{box(50, 10), box(0, 10)}
	moves, err := Layout(items, Options{
		Axis:         centering.AxisX,
		Mode:         FixedGap,
		Spacing:      2,
		RespectOrder: true,
	})
	require.NoError(t, err)
	// First input anchors at its own min x=50; second packs after it.
	require.Equal(t, 0.0, moves[0].X)
	require.Equal(t, 62.0, moves[1].X)
}

func TestLayoutExtentByBounds(t *testing.T) {
	items := []Item{box(0, 10), box(20, 10), box(40, 10)}
	moves, err := Layout(items, Options{
		Axis:    centering.AxisX,
		Mode:    Extent,
		Ref:     ByBounds,
		Spacing: 50,
	})
	require.NoError(t, err)
	// 30 of material inside 50 leaves two gaps of 10.
	require.Equal(t, 0.0, moves[0].X)
	require.Equal(t, 0.0, moves[1].X)
	require.Equal(t, 0.0, moves[2].X)

	// Shrink the extent so the packing actually moves things.
	moves, err = Layout(items, Options{
		Axis:    centering.AxisX,
		Mode:    Extent,
		Ref:     ByBounds,
		Spacing: 36,
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, moves[0].X)
	require.Equal(t, -7.0, moves[1].X)
	require.Equal(t, -14.0, moves[2].X)
}

func TestLayoutExtentTooSmall(t *testing.T) {
	items := []Item{box(0, 10), box(20, 10)}
	_, err := Layout(items, Options{
		Axis:    centering.AxisX,
		Mode:    Extent,
		Ref:     ByBounds,
		Spacing: 15,
	})
	require.ErrorIs(t, err, ErrExtentTooSmall)
}

func TestLayoutExtentByCenter(t *testing.T) {
	items := []Item{box(0, 10), box(11, 10), box(19, 10)}
	moves, err := Layout(items, Options{
		Axis:    centering.AxisX,
		Mode:    Extent,
		Ref:     ByCenter,
		Spacing: 40,
	})
	require.NoError(t, err)
	// Centers land at 5, 25, 45.
	require.Equal(t, 0.0, moves[0].X)
	require.Equal(t, 9.0, moves[1].X)
	require.Equal(t, 21.0, moves[2].X)
}

func TestLayoutAlignOther(t *testing.T) {
	items := []Item{
		{Min: r3.Vec{X: 0, Y: 0, Z: 0}, Max: r3.Vec{X: 10, Y: 10, Z: 10}},
		{Min: r3.Vec{X: 20, Y: 5, Z: -3}, Max: r3.Vec{X: 30, Y: 15, Z: 7}},
	}
	moves, err := Layout(items, Options{
		Axis:       centering.AxisX,
		Mode:       FixedGap,
		Spacing:    0,
		AlignOther: true,
	})
	require.NoError(t, err)
	require.Equal(t, -5.0, moves[1].Y)
	require.Equal(t, 3.0, moves[1].Z)
	require.Equal(t, 0.0, moves[0].Y)
	require.Equal(t, 0.0, moves[0].Z)
}
