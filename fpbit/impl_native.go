//go:build !fpbit_portable

package fpbit

import "math"

// Default mode: the runtime already provides a conformant sign-bit
// primitive, so delegate to it. Wrapping rather than redefining means
// there is no symbol to collide with.

const implName = "native"

func signbit(x float64) bool {
	return math.Signbit(x)
}
