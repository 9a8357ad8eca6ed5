package slider

import (
	"math"
	"strconv"
	"strings"
)

// Clamp limits v to [lo, hi]. NaN clamps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return min(hi, max(lo, v))
}

// gridTolerance absorbs division noise such as 0.3/0.1 = 2.9999999999999996
// when counting whole steps.
const gridTolerance = 1e-9

// RoundToStep snaps v to the nearest multiple of step counted from base.
// The result is re-rendered with as many decimals as step or base carries, so
// binary floating-point noise (0.1+0.2) never leaks into stored values.
func RoundToStep(v, step, base float64) float64 {
	if step <= 0 || !finite(v) {
		return v
	}
	steps := math.Round((v - base) / step)
	return fixDecimals(base+steps*step, gridDecimals(step, base))
}

// FloorToStep returns the largest value of the grid base + k*step that is
// not above v.
func FloorToStep(v, step, base float64) float64 {
	if step <= 0 || !finite(v) {
		return v
	}
	steps := math.Floor((v-base)/step + gridTolerance)
	return fixDecimals(base+steps*step, gridDecimals(step, base))
}

// CeilToStep returns the smallest value of the grid base + k*step that is
// not below v.
func CeilToStep(v, step, base float64) float64 {
	if step <= 0 || !finite(v) {
		return v
	}
	steps := math.Ceil((v-base)/step - gridTolerance)
	return fixDecimals(base+steps*step, gridDecimals(step, base))
}

// gridDecimals is the decimal count of values on the grid base + k*step.
func gridDecimals(step, base float64) int {
	return max(Decimals(step), Decimals(base))
}

// Decimals returns the number of decimal places in the shortest
// representation of v, including exponent notation (1e-7 has 7).
func Decimals(v float64) int {
	if !finite(v) {
		return 0
	}
	s := strconv.FormatFloat(math.Abs(v), 'g', -1, 64)
	mantissa, exp := s, 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
		e, err := strconv.Atoi(s[i+1:])
		if err == nil {
			exp = e
		}
	}
	frac := 0
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		frac = len(mantissa) - i - 1
	}
	return max(frac-exp, 0)
}

func fixDecimals(v float64, decimals int) float64 {
	fixed, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	// Avoid -0 when a negative value rounds to zero.
	if fixed == 0 {
		return 0
	}
	return fixed
}
