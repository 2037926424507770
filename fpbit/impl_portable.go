//go:build fpbit_portable

package fpbit

import "math"

// Fallback mode for toolchains without a trusted native sign-bit
// primitive. Copysign transfers the sign bit, not the arithmetic sign,
// so copysign(1, -0.0) is -1 and the comparison below stays correct for
// negative zero and for NaNs with the sign bit set.

const implName = "portable"

func signbit(x float64) bool {
	return math.Copysign(1, x) < 0
}
