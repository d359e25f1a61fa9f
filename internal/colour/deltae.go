package colour

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*Method)(nil)

// Method selects the deltaE formula used for nearest-colour search.
// One method is chosen per run and applied uniformly to every pixel.
type Method int

const (
	// DE2000 is the CIEDE2000 formula, the default. It adds lightness,
	// chroma and hue weighting plus rotation and interaction terms for
	// closer perceptual accuracy.
	DE2000 Method = iota
	// DE1994G is CIE94 with the graphic-arts tolerance profile
	// (kL=1, K1=0.045, K2=0.015).
	DE1994G
	// DE1994T is CIE94 with the textiles tolerance profile
	// (kL=2, K1=0.048, K2=0.014).
	DE1994T
	// DE1976 is the original deltaE, a plain Euclidean distance in Lab.
	DE1976
)

// DefaultMethod is used when no method is selected explicitly.
const DefaultMethod = DE2000

// String returns the CLI spelling of the method. It is also the suffix
// used in output file names for non-default methods.
func (m Method) String() string {
	switch m {
	case DE2000:
		return "de2000"
	case DE1994G:
		return "de1994g"
	case DE1994T:
		return "de1994t"
	case DE1976:
		return "de1976"
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// Set implements pflag.Value so a Method can be used directly as a flag.
func (m *Method) Set(s string) error {
	switch strings.ToLower(s) {
	case "de2000":
		*m = DE2000
	case "de1994g":
		*m = DE1994G
	case "de1994t":
		*m = DE1994T
	case "de1976":
		*m = DE1976
	default:
		return fmt.Errorf("unknown deltaE method %q (expected de2000, de1994g, de1994t or de1976)", s)
	}
	return nil
}

// Type implements pflag.Value.
func (m Method) Type() string {
	return "method"
}

// Distance computes the perceptual difference between two Lab colours
// under the given method. The formulas follow the published CIE
// definitions with their standard weighting constants.
func Distance(m Method, x, y Lab) float64 {
	switch m {
	case DE1976:
		return deltaE76(x, y)
	case DE1994G:
		return deltaE94(x, y, 1.0, 0.045, 0.015)
	case DE1994T:
		return deltaE94(x, y, 2.0, 0.048, 0.014)
	default:
		return deltaE2000(x, y)
	}
}

// Nearest returns the index of the palette colour closest to pixel under
// the given method, or -1 for an empty palette. The scan replaces the
// current best only on strict improvement, so on an exact tie the
// earliest palette entry wins. Callers rely on that ordering.
func Nearest(pixel Lab, palette []Lab, m Method) int {
	best := -1
	bestDist := math.Inf(1)
	for i, candidate := range palette {
		d := Distance(m, pixel, candidate)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func deltaE76(x, y Lab) float64 {
	dl := x.L - y.L
	da := x.A - y.A
	db := x.B - y.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// deltaE94 is the CIE94 formula. The first colour is the reference, whose
// chroma feeds the SC and SH weighting terms.
func deltaE94(x, y Lab, kl, k1, k2 float64) float64 {
	dl := x.L - y.L
	c1 := math.Hypot(x.A, x.B)
	c2 := math.Hypot(y.A, y.B)
	dc := c1 - c2
	da := x.A - y.A
	db := x.B - y.B
	// deltaH is derived from the other components; rounding can push the
	// subtraction slightly negative, which would NaN the square root.
	dh2 := da*da + db*db - dc*dc
	if dh2 < 0 {
		dh2 = 0
	}
	sc := 1.0 + k1*c1
	sh := 1.0 + k2*c1
	lt := dl / kl
	ct := dc / sc
	ht := math.Sqrt(dh2) / sh
	return math.Sqrt(lt*lt + ct*ct + ht*ht)
}

// deltaE2000 is the CIEDE2000 formula as published by the CIE, with all
// parametric factors at 1.
func deltaE2000(x, y Lab) float64 {
	c1 := math.Hypot(x.A, x.B)
	c2 := math.Hypot(y.A, y.B)
	cAvg := (c1 + c2) / 2

	g := 0.5 * (1 - math.Sqrt(pow7(cAvg)/(pow7(cAvg)+pow7(25))))
	a1p := (1 + g) * x.A
	a2p := (1 + g) * y.A
	c1p := math.Hypot(a1p, x.B)
	c2p := math.Hypot(a2p, y.B)
	h1p := hueAngle(a1p, x.B)
	h2p := hueAngle(a2p, y.B)

	dlp := y.L - x.L
	dcp := c2p - c1p
	var dhp float64
	switch {
	case c1p*c2p == 0:
		dhp = 0
	case math.Abs(h2p-h1p) <= 180:
		dhp = h2p - h1p
	case h2p-h1p > 180:
		dhp = h2p - h1p - 360
	default:
		dhp = h2p - h1p + 360
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(radians(dhp)/2)

	lAvg := (x.L + y.L) / 2
	cpAvg := (c1p + c2p) / 2
	var hpAvg float64
	switch {
	case c1p*c2p == 0:
		hpAvg = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hpAvg = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hpAvg = (h1p + h2p + 360) / 2
	default:
		hpAvg = (h1p + h2p - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(radians(hpAvg-30)) +
		0.24*math.Cos(radians(2*hpAvg)) +
		0.32*math.Cos(radians(3*hpAvg+6)) -
		0.20*math.Cos(radians(4*hpAvg-63))
	dTheta := 30 * math.Exp(-((hpAvg-275)/25)*((hpAvg-275)/25))
	rc := 2 * math.Sqrt(pow7(cpAvg)/(pow7(cpAvg)+pow7(25)))
	sl := 1 + 0.015*(lAvg-50)*(lAvg-50)/math.Sqrt(20+(lAvg-50)*(lAvg-50))
	sc := 1 + 0.045*cpAvg
	sh := 1 + 0.015*cpAvg*t
	rt := -math.Sin(radians(2*dTheta)) * rc

	lt := dlp / sl
	ct := dcp / sc
	ht := dHp / sh
	return math.Sqrt(lt*lt + ct*ct + ht*ht + rt*ct*ht)
}

// hueAngle returns the hue of (a, b) in degrees, normalised to [0, 360).
func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func pow7(v float64) float64 {
	v3 := v * v * v
	return v3 * v3 * v
}
