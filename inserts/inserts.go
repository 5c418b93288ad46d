// Package inserts holds the heat-set insert catalog and resolves the
// hole geometry to cut for a given insert: a stepped bore sized for the
// insert body plus a counterbore for either the screw head or a small
// clearance relief.
package inserts

import (
	"fmt"
	"sort"
)

// Fit selects what sits flush with the surface.
type Fit int

const (
	// FlushInsert leaves the insert flush; the counterbore is a thin
	// clearance relief around the insert body.
	FlushInsert Fit = iota
	// FlushScrew recesses the screw head so it finishes flush.
	FlushScrew
)

// Spec describes one thread size's insert family. Dimensions in mm.
type Spec struct {
	// Depths maps insert length names (e.g. "M3x5") to bore depth.
	Depths map[string]float64
	// TopDia and BottomDia are the stepped bore diameters; the taper
	// grips the insert during installation.
	TopDia    float64
	BottomDia float64
	// BodyDia is the insert's outer diameter after installation.
	BodyDia float64
	// HeadDia and HeadHeight size the screw head counterbore.
	HeadDia    float64
	HeadHeight float64
}

// Catalog is the supported insert range, keyed by thread size.
var Catalog = map[string]Spec{
	"M2": {
		Depths:     map[string]float64{"M2x2": 2.2, "M2x3": 3.2, "M2x4": 4.2},
		TopDia:     2.8,
		BottomDia:  2.5,
		BodyDia:    2.7,
		HeadDia:    4.0,
		HeadHeight: 2.2,
	},
	"M3": {
		Depths:     map[string]float64{"M3x3": 3.2, "M3x4": 4.2, "M3x5": 5.2, "M3x6": 6.2, "M3x8": 8.2},
		TopDia:     4.4,
		BottomDia:  4.0,
		BodyDia:    4.2,
		HeadDia:    6.0,
		HeadHeight: 3.2,
	},
	"M4": {
		Depths:     map[string]float64{"M4x8": 8.2, "M4x10": 10.2},
		TopDia:     5.8,
		BottomDia:  5.4,
		BodyDia:    5.6,
		HeadDia:    7.5,
		HeadHeight: 4.2,
	},
	"M5": {
		Depths:     map[string]float64{"M5x10": 10.2, "M5x12": 12.2},
		TopDia:     6.7,
		BottomDia:  6.3,
		BodyDia:    6.5,
		HeadDia:    9.2,
		HeadHeight: 5.2,
	},
}

// HoleDims is the resolved geometry for one insert hole: the stepped
// insert bore below a counterbore.
type HoleDims struct {
	TopDia           float64
	BottomDia        float64
	InsertDepth      float64
	CounterboreDia   float64
	CounterboreDepth float64
}

// Resolve looks up size ("M3") and length ("M3x5") and applies the fit
// style and any extra bore depth.
func Resolve(size, length string, fit Fit, extraDepth float64) (HoleDims, error) {
	spec, ok := Catalog[size]
	if !ok {
		return HoleDims{}, fmt.Errorf("inserts: unknown thread size %q", size)
	}
	depth, ok := spec.Depths[length]
	if !ok {
		return HoleDims{}, fmt.Errorf("inserts: unknown insert length %q for %s", length, size)
	}

	dims := HoleDims{
		TopDia:      spec.TopDia,
		BottomDia:   spec.BottomDia,
		InsertDepth: depth + extraDepth,
	}
	if fit == FlushScrew {
		dims.CounterboreDia = spec.HeadDia
		dims.CounterboreDepth = spec.HeadHeight
	} else {
		dims.CounterboreDia = spec.BodyDia + 0.3
		dims.CounterboreDepth = 0.5
	}
	return dims, nil
}

// Sizes lists the catalog thread sizes in ascending order.
func Sizes() []string {
	sizes := make([]string, 0, len(Catalog))
	for size := range Catalog {
		sizes = append(sizes, size)
	}
	sort.Strings(sizes)
	return sizes
}

// Lengths lists the insert length names for a size in ascending depth.
func Lengths(size string) []string {
	spec, ok := Catalog[size]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(spec.Depths))
	for name := range spec.Depths {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool {
		return spec.Depths[names[a]] < spec.Depths[names[b]]
	})
	return names
}
