//go:build !noebiten

package qfx

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/avendel/qfx/angle"
import "github.com/avendel/qfx/cordic"
import "github.com/avendel/qfx/fixp"

// Ebitengine-related additional utility functions.
//
// GeoM values hold float64s, so everything in this file sits at the
// presentation boundary, outside the replayable core. Run the
// simulation on the integer kernel and only convert to GeoM when
// drawing; building with the noebiten tag compiles all of this out.

// RotationGeoM builds a GeoM rotating by the given angle around the
// origin. The sine and cosine come from [cordic.SinCos] rather than
// from the float math package, so peers replaying the same angle
// always rasterize from the same matrix. Positive angles rotate
// clockwise on screen, same as [ebiten.GeoM.Rotate].
func RotationGeoM(a angle.Brad16) ebiten.GeoM {
	sin, cos := cordic.SinCos(a)
	var geom ebiten.GeoM
	geom.SetElement(0, 0, cos.ToFloat64())
	geom.SetElement(0, 1, -sin.ToFloat64())
	geom.SetElement(1, 0, sin.ToFloat64())
	geom.SetElement(1, 1, cos.ToFloat64())
	return geom
}

// PointGeoM builds a GeoM translating to the given point. Handy for
// the common "rotate around the sprite center, then move to the
// integer world position" chain:
//   geom := qfx.RotationGeoM(heading)
//   geom.Concat(qfx.PointGeoM(position))
func PointGeoM(point fixp.Point) ebiten.GeoM {
	var geom ebiten.GeoM
	x, y := point.ToFloat64s()
	geom.Translate(x, y)
	return geom
}
