// Package centering computes the rigid translation that moves a target
// body's center onto the midpoint between pairs of reference entities.
//
// Each reference pair claims one global axis, detected from face normals
// when the references are planar or from the position delta otherwise.
// The computation is a pure function of the request: entity resolution
// happens in the caller (see refs.go) and the caller applies the
// resulting vector, so the engine never touches the CAD document.
package centering

import (
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Epsilon is the translation magnitude below which a target counts as
// already centered.
const Epsilon = 1e-4

// Axis is a global model axis, indexed 0..2.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

// Component returns the axis component of v.
func (a Axis) Component(v r3.Vec) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	}
	return v.Z
}

func setComponent(v *r3.Vec, a Axis, value float64) {
	switch a {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	case AxisZ:
		v.Z = value
	}
}

// Reference is a selected entity resolved to a position and, for planar
// entities, a unit normal. The engine never sees the entity itself.
type Reference struct {
	Position r3.Vec
	Normal   r3.Vec
	Planar   bool
}

// PointRef resolves a non-planar entity: a point, vertex or midpoint.
func PointRef(pos r3.Vec) Reference {
	return Reference{Position: pos}
}

// PlanarRef resolves a planar face or construction plane. A zero-length
// normal downgrades to a point reference so a degenerate plane falls
// through to the position-delta axis rule.
func PlanarRef(pos, normal r3.Vec) Reference {
	if r3.Norm(normal) == 0 {
		return PointRef(pos)
	}
	return Reference{Position: pos, Normal: normal, Planar: true}
}

// Pair is one reference pair of a request. Offset shifts the computed
// center along the claimed axis (signed, length units).
type Pair struct {
	First   Reference
	Second  Reference
	Enabled bool
	Offset  float64
}

// Request is one centering invocation: the target's current center and
// the ordered reference pairs. Requests are built fresh per invocation
// and discarded with their Result.
type Request struct {
	TargetCenter r3.Vec
	Pairs        []Pair
}

// WarningKind classifies the soft failure modes of a computation.
type WarningKind int

const (
	// IndeterminateAxis: the pair has no normals and its positions
	// coincide, so no axis can be detected.
	IndeterminateAxis WarningKind = iota
	// DuplicateAxis: the pair resolved to an axis a prior pair already
	// claimed; the pair is skipped, not merged.
	DuplicateAxis
	// NoValidPairs: no enabled pair produced an axis claim.
	NoValidPairs
)

func (k WarningKind) String() string {
	switch k {
	case IndeterminateAxis:
		return "indeterminate axis"
	case DuplicateAxis:
		return "duplicate axis"
	case NoValidPairs:
		return "no valid reference pairs"
	}
	return "unknown"
}

// Warning is a per-pair or per-request soft failure. Pair is the 1-based
// pair index, or 0 for request-level warnings.
type Warning struct {
	Kind WarningKind
	Pair int
}

// Result is the outcome of ComputeTranslation. The translation is zero
// on unclaimed axes. Axes lists the claimed axes in claim order.
type Result struct {
	Translation     r3.Vec
	Axes            []Axis
	Warnings        []Warning
	AlreadyCentered bool
}

// Label joins the claimed axis names for naming the resulting feature,
// e.g. "X+Y" for "Center Body (X+Y)". Empty when nothing was claimed.
func (r Result) Label() string {
	names := make([]string, len(r.Axes))
	for i, a := range r.Axes {
		names[i] = a.String()
	}
	return strings.Join(names, "+")
}

// DominantAxis returns the axis of v's largest absolute component.
// Ties favor the lower axis index, X over Y over Z. The second return
// is false for the zero vector.
func DominantAxis(v r3.Vec) (Axis, bool) {
	ax, ay, az := abs(v.X), abs(v.Y), abs(v.Z)
	if ax == 0 && ay == 0 && az == 0 {
		return AxisX, false
	}
	if ax >= ay && ax >= az {
		return AxisX, true
	}
	if ay >= az {
		return AxisY, true
	}
	return AxisZ, true
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// ResolveAxis detects the axis a pair centers on. When both references
// are planar the first reference's normal decides, even when the two
// normals disagree: reference order within a pair is significant. With
// one normal, that normal decides. With none, the dominant component of
// the position delta decides, and coincident positions are
// indeterminate.
func ResolveAxis(p Pair) (Axis, bool) {
	if p.First.Planar {
		return DominantAxis(p.First.Normal)
	}
	if p.Second.Planar {
		return DominantAxis(p.Second.Normal)
	}
	return DominantAxis(r3.Sub(p.Second.Position, p.First.Position))
}

// Center returns the midpoint coordinate of the two reference positions
// along axis.
func Center(p1, p2 r3.Vec, axis Axis) float64 {
	return (axis.Component(p1) + axis.Component(p2)) / 2
}

// ComputeTranslation processes the request's enabled pairs in order.
// Each pair claims one axis and contributes
//
//	delta = center(pair) - targetCenter[axis] + offset
//
// on it. A pair whose axis is already claimed is skipped with a
// DuplicateAxis warning. All failure modes are warnings on the Result;
// the caller owns presentation and whether to apply the move.
func ComputeTranslation(req Request) Result {
	var res Result
	claimed := [3]bool{}

	for i, pair := range req.Pairs {
		if !pair.Enabled {
			continue
		}
		axis, ok := ResolveAxis(pair)
		if !ok {
			res.Warnings = append(res.Warnings, Warning{Kind: IndeterminateAxis, Pair: i + 1})
			continue
		}
		if claimed[axis] {
			res.Warnings = append(res.Warnings, Warning{Kind: DuplicateAxis, Pair: i + 1})
			continue
		}
		claimed[axis] = true
		res.Axes = append(res.Axes, axis)

		center := Center(pair.First.Position, pair.Second.Position, axis)
		delta := center - axis.Component(req.TargetCenter) + pair.Offset
		setComponent(&res.Translation, axis, delta)
	}

	if len(res.Axes) == 0 {
		res.Warnings = append(res.Warnings, Warning{Kind: NoValidPairs})
	} else if r3.Norm(res.Translation) < Epsilon {
		res.AlreadyCentered = true
	}
	return res
}
