package fpbit

import "math"

// Signbit reports whether the sign bit of x is set.
//
// Special cases are:
//
//	Signbit(-0.0) = true
//	Signbit(+0.0) = false
//	Signbit(±Inf) = sign of the infinity
//	Signbit(NaN)  = the sign bit of that NaN's bit pattern
//
// Signbit is total over all float64 bit patterns, allocation-free, and
// safe for concurrent use.
func Signbit(x float64) bool {
	return signbit(x)
}

// Signbit32 reports whether the sign bit of x is set, reading the
// 32-bit encoding directly. Same special cases as Signbit.
func Signbit32(x float32) bool {
	return math.Float32bits(x)&(1<<31) != 0
}

// Impl returns the name of the compiled-in Signbit implementation:
// "native" for the runtime pass-through, "portable" for the copy-sign
// fallback selected by the fpbit_portable build tag.
func Impl() string {
	return implName
}
