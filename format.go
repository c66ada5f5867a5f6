package qfx

import "strconv"

import "github.com/avendel/qfx/fixp"

// A FormatDescriptor bundles the static metadata of one fixed point
// format: storage size, signedness, fractional precision and value
// range. Descriptors exist for diagnostics, debug overlays and test
// suites; the kernel itself never consults them.
//
// The float fields are correctly rounded float64 views of exact
// integer bounds. For Q32 that makes MaxValue read a hair above the
// true top of the format, as the exact value needs more mantissa
// bits than a float64 has. When exactness matters, use the typed
// constants from [fixp] instead.
type FormatDescriptor struct {
	Name        string // the Go type name, e.g. "Q16"
	TotalBits   int
	IntegerBits int // sign bit excluded on signed formats
	FracBits    int
	Signed      bool
	MinValue    float64
	MaxValue    float64
	Resolution  float64
}

// Returns a short diagnostic form like "Q16 (s15.16)".
func (self FormatDescriptor) String() string {
	notation := " (u"
	if self.Signed { notation = " (s" }
	notation += strconv.Itoa(self.IntegerBits) + "." + strconv.Itoa(self.FracBits) + ")"
	return self.Name + notation
}

// One descriptor per format implemented by [fixp].
var formats = []FormatDescriptor{
	{"Q4", 8, 3, 4, true, fixp.MinQ4.ToFloat64(), fixp.MaxQ4.ToFloat64(), 1.0 / 16},
	{"Q8", 16, 7, 8, true, fixp.MinQ8.ToFloat64(), fixp.MaxQ8.ToFloat64(), 1.0 / 256},
	{"Q15", 16, 0, 15, true, fixp.MinQ15.ToFloat64(), fixp.MaxQ15.ToFloat64(), 1.0 / 32768},
	{"Q16", 32, 15, 16, true, fixp.MinQ16.ToFloat64(), fixp.MaxQ16.ToFloat64(), fixp.DeltaQ16},
	{"Q32", 64, 31, 32, true, fixp.MinQ32.ToFloat64(), fixp.MaxQ32.ToFloat64(), 1.0 / 4294967296},
	{"UQ8", 16, 8, 8, false, 0, fixp.MaxUQ8.ToFloat64(), 1.0 / 256},
	{"UQ16", 32, 16, 16, false, 0, fixp.MaxUQ16.ToFloat64(), 1.0 / 65536},
}

// Formats returns the descriptor table, one entry per supported
// fixed point format. The returned slice is a fresh copy, mutate it
// all you want.
func Formats() []FormatDescriptor {
	table := make([]FormatDescriptor, len(formats))
	copy(table, formats)
	return table
}

// FormatByName returns the descriptor matching the given Go type
// name, e.g. "Q16" or "UQ8". The second result reports whether the
// name matched anything.
func FormatByName(name string) (FormatDescriptor, bool) {
	for _, desc := range formats {
		if desc.Name == name { return desc, true }
	}
	return FormatDescriptor{}, false
}
