package bezier

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// Bernstein returns the n+1 Bernstein basis polynomials of degree n evaluated at t:
// B(i,n)(t) = C(n,i) * t^i * (1-t)^(n-i) for i = 0..n.
//
// t is not clamped. For t outside [0,1] the values still sum to 1 but some
// of them become negative, so the resulting point is no longer a convex
// combination of the control points.
func Bernstein(n int, t float64) []float64 {
	return bernstein(make([]float64, n+1), lnBinomialRow(n), t)
}

// lnBinomialRow returns ln C(n,i) for i = 0..n.
// The ends are exactly 0, so B(0,n)(0) and B(n,n)(1) are exactly 1.
func lnBinomialRow(n int) []float64 {
	row := make([]float64, n+1)
	for i := 1; i < n; i++ {
		row[i] = combin.LogGeneralizedBinomial(float64(n), float64(i))
	}

	return row
}

// bernstein fills dst (len(lnC) long) with the basis at t.
// Coefficient and powers are multiplied in log space: C(n,i) alone
// leaves the float64 range around n = 1030 while the product stays in [0,1].
func bernstein(dst, lnC []float64, t float64) []float64 {
	n := len(lnC) - 1
	for i := range lnC {
		sign := 1.0
		if t < 0 && i%2 == 1 {
			sign = -sign
		}

		if t > 1 && (n-i)%2 == 1 {
			sign = -sign
		}

		dst[i] = sign * math.Exp(lnC[i]+lnPow(t, i)+lnPow(1-t, n-i))
	}

	return dst
}

// lnPow returns ln |x|^k, with |x|^0 == 1 also for x == 0.
func lnPow(x float64, k int) float64 {
	if k == 0 {
		return 0
	}

	return float64(k) * math.Log(math.Abs(x))
}
