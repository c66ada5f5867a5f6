package qfx

import "github.com/avendel/qfx/angle"
import "github.com/avendel/qfx/fixp"

// Helper types, wrappers, aliases and functions.

// A handy type alias for [fixp.Q16] so you don't need to import fixp
// when already working with qfx. Q16.16 is the flagship format: every
// solver in the kernel speaks it.
type Unit = fixp.Q16

// A handy type alias for [angle.Brad16], the 16 bit binary radian
// angle that the cordic package rotates by.
type Angle = angle.Brad16

// Overflow returns the name of the overflow policy compiled into the
// binary: "saturate" unless built with the fxwrap or fxtrap tags.
// Policies are compile time on purpose, a run time switch would let
// two peers of a lockstep session disagree.
func Overflow() string { return fixp.OverflowPolicy() }

// Rounding returns the name of the rounding policy compiled into the
// binary: "nearest" unless built with the fxtrunc, fxfloor or fxceil
// tags.
func Rounding() string { return fixp.RoundingPolicy() }
