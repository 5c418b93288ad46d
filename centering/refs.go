package centering

import (
	"github.com/marcuswu/makercad"
	"github.com/marcuswu/makercad/sketcher"
	"gonum.org/v1/gonum/spatial/r3"
)

// Entity resolution lives here, outside the engine: commands hand faces,
// planes and points to these helpers and the engine only ever sees
// Reference records.

// Vec converts a sketcher vector to the engine's vector type.
func Vec(v *sketcher.Vector) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// SketcherVec converts back for handing positions to makercad.
func SketcherVec(v r3.Vec) *sketcher.Vector {
	return sketcher.NewVectorFromValues(v.X, v.Y, v.Z)
}

// FaceRef resolves a planar face to its plane origin and normal.
func FaceRef(f *makercad.Face) Reference {
	return PlaneRef(sketcher.NewPlaneParametersFromCoordinateSystem(f.Plane()))
}

// PlaneRef resolves a construction plane.
func PlaneRef(p *sketcher.PlaneParameters) Reference {
	return PlanarRef(Vec(p.Location), Vec(p.Normal))
}

// PointRefAt resolves a bare point, e.g. a vertex or a sketch point.
func PointRefAt(v *sketcher.Vector) Reference {
	return PointRef(Vec(v))
}

// FacePair builds an enabled pair from two faces with an offset.
func FacePair(first, second *makercad.Face, offset float64) Pair {
	return Pair{
		First:   FaceRef(first),
		Second:  FaceRef(second),
		Enabled: true,
		Offset:  offset,
	}
}
