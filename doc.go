// qfx is a deterministic fixed point arithmetic kernel for Golang
// games, replays and lockstep simulations, designed to be used mainly
// with the Ebitengine game engine.
//
// Everything inside is pure integer math. No computational path ever
// touches a float, so the same inputs produce the same bits on every
// platform, every architecture and every run. That is the whole point:
// if your gameplay runs on qfx, replays and lockstep peers can hash
// game state and trust the hashes to match.
//
// Common usage revolves around the flagship Q16.16 format from the
// fixp subpackage:
//   speed := fixp.Q16FromFloat64(1.5) // converting at load time is fine
//   pos := fixp.Q16FromInt(120)
//   pos = pos.Add(speed) // pure integer from here on
//
// Angles are 16 bit binary radians, and trigonometry comes from the
// cordic subpackage:
//   sin, cos := cordic.SinCos(angle.FromDegrees(45))
//
// Square roots, reciprocals, division and exp/log live in the newton,
// longdiv and explog subpackages. This root package only adds format
// metadata, friendly aliases and optional Ebitengine glue; floats
// appear exclusively at conversion boundaries (FromFloat64, ToFloat64,
// GeoM), which are meant for load time and presentation, never for
// simulation steps.
package qfx
