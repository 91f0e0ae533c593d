package svg

import (
	"math"
	"strconv"
	"strings"
)

// coordPrecision bounds the decimals written for coordinates.
const coordPrecision = 3

// Num formats a coordinate or length with at most three decimals and no
// trailing zeros, e.g. 600, 133.333, 7.5.
func Num(v float64) string {
	return strconv.FormatFloat(Round(v, coordPrecision), 'f', -1, 64)
}

// Fixed formats v with exactly prec decimals.
func Fixed(v float64, prec int) string {
	return strconv.FormatFloat(normalizeZero(v), 'f', prec, 64)
}

// Opacity formats an opacity rounded to two decimals, e.g. 0.85, 0.5, 1.
func Opacity(v float64) string {
	return strconv.FormatFloat(Round(v, 2), 'f', -1, 64)
}

// Round rounds v half away from zero to prec decimals.
func Round(v float64, prec int) float64 {
	p := math.Pow(10, float64(prec))
	return normalizeZero(math.Round(v*p) / p)
}

// Point formats an "x,y" pair.
func Point(x, y float64) string {
	return Num(x) + "," + Num(y)
}

// Points joins coordinate pairs into a points attribute value.
func Points(xy ...[2]float64) string {
	parts := make([]string, len(xy))
	for i, p := range xy {
		parts[i] = Point(p[0], p[1])
	}
	return strings.Join(parts, " ")
}

// normalizeZero turns negative zero into zero so it never prints as "-0".
func normalizeZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
