// Package arrange spaces bodies evenly along one axis. It works on
// axis-aligned bounding boxes and returns one translation vector per
// item; applying the vectors is the caller's job.
package arrange

import (
	"errors"
	"sort"

	"github.com/BuildByAnyMeans/FusionAPI/centering"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mode selects how the spacing value is interpreted.
type Mode int

const (
	// FixedGap keeps a constant gap between neighboring items.
	FixedGap Mode = iota
	// Extent distributes the items across a total distance.
	Extent
)

// SpacingRef selects what the gap is measured between.
type SpacingRef int

const (
	// ByBounds measures between bounding box limits.
	ByBounds SpacingRef = iota
	// ByCenter measures between item centers.
	ByCenter
)

// Item is one body to lay out, described by its bounding box.
type Item struct {
	Min r3.Vec
	Max r3.Vec
}

// Center returns the box center coordinate along axis.
func (it Item) Center(axis centering.Axis) float64 {
	return (axis.Component(it.Min) + axis.Component(it.Max)) / 2
}

// Width returns the box extent along axis.
func (it Item) Width(axis centering.Axis) float64 {
	return axis.Component(it.Max) - axis.Component(it.Min)
}

// Options configures a layout. Spacing is the gap width for FixedGap or
// the total distance for Extent.
type Options struct {
	Axis         centering.Axis
	Mode         Mode
	Ref          SpacingRef
	Spacing      float64
	RespectOrder bool // keep input order instead of sorting by position
	Reverse      bool
	AlignOther   bool // align the two non-layout axes to the first item
}

var (
	ErrTooFewItems    = errors.New("arrange: need at least two items")
	ErrExtentTooSmall = errors.New("arrange: total extent too small to fit all items")
)

// Layout computes a translation for every item so they sit evenly
// spaced along opts.Axis. The first item (after ordering) stays put on
// the layout axis; everything packs after it. Translations are indexed
// like the input regardless of ordering.
func Layout(items []Item, opts Options) ([]r3.Vec, error) {
	if len(items) < 2 {
		return nil, ErrTooFewItems
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	if !opts.RespectOrder {
		sort.SliceStable(order, func(a, b int) bool {
			return opts.Axis.Component(items[order[a]].Min) < opts.Axis.Component(items[order[b]].Min)
		})
	}
	if opts.Reverse {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	moves := make([]r3.Vec, len(items))

	if opts.AlignOther {
		refMin := items[order[0]].Min
		for _, idx := range order {
			for _, other := range []centering.Axis{centering.AxisX, centering.AxisY, centering.AxisZ} {
				if other == opts.Axis {
					continue
				}
				delta := other.Component(refMin) - other.Component(items[idx].Min)
				setComponent(&moves[idx], other, delta)
			}
		}
	}

	gap, step, err := resolveSpacing(items, order, opts)
	if err != nil {
		return nil, err
	}

	first := items[order[0]]
	switch opts.Ref {
	case ByCenter:
		start := first.Center(opts.Axis)
		for i, idx := range order {
			target := start + float64(i)*step
			delta := target - items[idx].Center(opts.Axis)
			setComponent(&moves[idx], opts.Axis, delta)
		}
	default: // ByBounds
		cursor := opts.Axis.Component(first.Min)
		for _, idx := range order {
			delta := cursor - opts.Axis.Component(items[idx].Min)
			setComponent(&moves[idx], opts.Axis, delta)
			cursor += items[idx].Width(opts.Axis) + gap
		}
	}

	return moves, nil
}

// resolveSpacing turns the options into a bounds gap and a center step.
func resolveSpacing(items []Item, order []int, opts Options) (gap, step float64, err error) {
	if opts.Mode == FixedGap {
		return opts.Spacing, opts.Spacing, nil
	}

	gaps := float64(len(items) - 1)
	if opts.Ref == ByCenter {
		return 0, opts.Spacing / gaps, nil
	}

	var total float64
	for _, idx := range order {
		total += items[idx].Width(opts.Axis)
	}
	available := opts.Spacing - total
	if available < 0 {
		return 0, 0, ErrExtentTooSmall
	}
	return available / gaps, 0, nil
}

func setComponent(v *r3.Vec, a centering.Axis, value float64) {
	switch a {
	case centering.AxisX:
		v.X = value
	case centering.AxisY:
		v.Y = value
	case centering.AxisZ:
		v.Z = value
	}
}
