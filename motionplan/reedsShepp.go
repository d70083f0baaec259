package motionplan

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"go.viam.com/fieldturn/spatialmath"
	"go.viam.com/fieldturn/utils"
)

// Segments shorter than this, in units of the turning radius, are dropped from planned words. Segment signs
// are checked with the same slack.
const minSegmentLength = 1e-10

// Words whose lengths, in units of the turning radius, differ by less than this are equally short.
const lengthTieTolerance = 1e-9

// Letters of a curve word.
const (
	segLeft     = 'L'
	segStraight = 'S'
	segRight    = 'R'
)

var flipReplacer = strings.NewReplacer("L", "R", "R", "L")

// ReedsShepp plans the shortest path for a car that can drive both forward and backward with a bounded
// curvature. It considers the CSC, CCC, CCCC, CCSC and CCSCC families together with their time flipped,
// reflected and backwards variants.
type ReedsShepp struct{}

// Controls returns the controls of the shortest Reeds-Shepp path from start to goal.
func (ReedsShepp) Controls(start, goal spatialmath.Pose2D, kappa float64) ([]Control, error) {
	if !(kappa > 0) || math.IsInf(kappa, 1) {
		return nil, NewBadCurvatureError(kappa)
	}
	x, y, phi := normalizeProblem(start, goal, kappa)
	best, ok := shortestRSPath(x, y, phi)
	if !ok {
		return nil, NewManeuverInfeasibleError(start, goal, kappa)
	}
	return best.controls(kappa), nil
}

// normalizeProblem expresses goal in the frame of start, scaled so the turning radius is 1.
func normalizeProblem(start, goal spatialmath.Pose2D, kappa float64) (x, y, phi float64) {
	dx := (goal.Point.X - start.Point.X) * kappa
	dy := (goal.Point.Y - start.Point.Y) * kappa
	sin, cos := math.Sincos(start.Theta)
	return cos*dx + sin*dy, -sin*dx + cos*dy, rsMod2Pi(goal.Theta - start.Theta)
}

// curveWord is a path on the unit circle: word[i] is the letter of the segment of signed length lengths[i].
type curveWord struct {
	word    string
	lengths []float64
}

func (w curveWord) length() float64 {
	return lo.SumBy(w.lengths, math.Abs)
}

func (w curveWord) controls(kappa float64) []Control {
	controls := make([]Control, 0, len(w.lengths))
	for i, l := range w.lengths {
		controls = append(controls, Control{Kappa: letterCurvature(w.word[i], kappa), DeltaS: l / kappa})
	}
	return dropEmptyControls(controls, kappa)
}

func letterCurvature(letter byte, kappa float64) float64 {
	switch letter {
	case segLeft:
		return kappa
	case segRight:
		return -kappa
	default:
		return 0
	}
}

func flipWord(word string) string {
	return flipReplacer.Replace(word)
}

func reverseWord(word string) string {
	return string(lo.Reverse([]byte(word)))
}

// rsMod2Pi maps an angle to [-pi, pi], keeping the sign of exact multiples of pi.
func rsMod2Pi(x float64) float64 {
	v := math.Mod(x, 2*math.Pi)
	switch {
	case v < -math.Pi:
		v += 2 * math.Pi
	case v > math.Pi:
		v -= 2 * math.Pi
	}
	return v
}

func polar(x, y float64) (r, theta float64) {
	return math.Hypot(x, y), math.Atan2(y, x)
}

func nonNegative(l float64) bool {
	return l >= -minSegmentLength
}

func nonPositive(l float64) bool {
	return l <= minSegmentLength
}

// rsWordFunc solves one base word for the normalized goal (x, y, phi).
type rsWordFunc func(x, y, phi float64) (t, u, v float64, ok bool)

func lsl(x, y, phi float64) (t, u, v float64, ok bool) {
	u, t = polar(x-math.Sin(phi), y-1+math.Cos(phi))
	if nonNegative(t) {
		v = rsMod2Pi(phi - t)
		if nonNegative(v) {
			return t, u, v, true
		}
	}
	return 0, 0, 0, false
}

func lsr(x, y, phi float64) (t, u, v float64, ok bool) {
	u1, t1 := polar(x+math.Sin(phi), y-1-math.Cos(phi))
	u1 = utils.Square(u1)
	if u1 >= 4 {
		u = math.Sqrt(u1 - 4)
		theta := math.Atan2(2, u)
		t = rsMod2Pi(t1 + theta)
		v = rsMod2Pi(t - phi)
		if nonNegative(t) && nonNegative(v) {
			return t, u, v, true
		}
	}
	return 0, 0, 0, false
}

func lrl(x, y, phi float64) (t, u, v float64, ok bool) {
	u1, t1 := polar(x-math.Sin(phi), y-1+math.Cos(phi))
	if u1 <= 4 {
		u = -2 * math.Asin(0.25*u1)
		t = rsMod2Pi(t1 + 0.5*u + math.Pi)
		v = rsMod2Pi(phi - t + u)
		if nonNegative(t) && nonPositive(u) {
			return t, u, v, true
		}
	}
	return 0, 0, 0, false
}

func tauOmega(u, v, xi, eta, phi float64) (tau, omega float64) {
	delta := rsMod2Pi(u - v)
	a := math.Sin(u) - math.Sin(delta)
	b := math.Cos(u) - math.Cos(delta) - 1
	t1 := math.Atan2(eta*a-xi*b, xi*a+eta*b)
	t2 := 2*(math.Cos(delta)-math.Cos(v)-math.Cos(u)) + 3
	if t2 < 0 {
		tau = rsMod2Pi(t1 + math.Pi)
	} else {
		tau = rsMod2Pi(t1)
	}
	return tau, rsMod2Pi(tau - u + v - phi)
}

func lrlrn(x, y, phi float64) (t, u, v float64, ok bool) {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho := 0.25 * (2 + math.Hypot(xi, eta))
	if rho <= 1 {
		u = math.Acos(rho)
		t, v = tauOmega(u, -u, xi, eta, phi)
		if nonNegative(t) && nonPositive(v) {
			return t, u, v, true
		}
	}
	return 0, 0, 0, false
}

func lrlrp(x, y, phi float64) (t, u, v float64, ok bool) {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho := (20 - utils.Square(xi) - utils.Square(eta)) / 16
	if rho >= 0 && rho <= 1 {
		u = -math.Acos(rho)
		if u >= -0.5*math.Pi {
			t, v = tauOmega(u, u, xi, eta, phi)
			if nonNegative(t) && nonNegative(v) {
				return t, u, v, true
			}
		}
	}
	return 0, 0, 0, false
}

func lrsr(x, y, phi float64) (t, u, v float64, ok bool) {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho, theta := polar(-eta, xi)
	if rho >= 2 {
		t = theta
		u = 2 - rho
		v = rsMod2Pi(t + 0.5*math.Pi - phi)
		if nonNegative(t) && nonPositive(u) && nonPositive(v) {
			return t, u, v, true
		}
	}
	return 0, 0, 0, false
}

func lrsl(x, y, phi float64) (t, u, v float64, ok bool) {
	xi := x - math.Sin(phi)
	eta := y - 1 + math.Cos(phi)
	rho, theta := polar(xi, eta)
	if rho >= 2 {
		r := math.Sqrt(utils.Square(rho) - 4)
		u = 2 - r
		t = rsMod2Pi(theta + math.Atan2(r, -2))
		v = rsMod2Pi(phi - 0.5*math.Pi - t)
		if nonNegative(t) && nonPositive(u) && nonPositive(v) {
			return t, u, v, true
		}
	}
	return 0, 0, 0, false
}

func lrslr(x, y, phi float64) (t, u, v float64, ok bool) {
	xi := x + math.Sin(phi)
	eta := y - 1 - math.Cos(phi)
	rho, _ := polar(xi, eta)
	if rho >= 2 {
		u = 4 - math.Sqrt(utils.Square(rho)-4)
		if nonPositive(u) {
			t = rsMod2Pi(math.Atan2((4-u)*xi-2*eta, -2*xi+(u-4)*eta))
			v = rsMod2Pi(t - phi)
			if nonNegative(t) && nonNegative(v) {
				return t, u, v, true
			}
		}
	}
	return 0, 0, 0, false
}

// rsCandidates collects every valid word for one normalized problem, in a fixed order.
type rsCandidates []curveWord

func (c *rsCandidates) add(f rsWordFunc, x, y, phi float64, word string, sign float64,
	lengths func(t, u, v float64) []float64,
) {
	t, u, v, ok := f(x, y, phi)
	if !ok {
		return
	}
	ls := lengths(t, u, v)
	for i := range ls {
		ls[i] *= sign
	}
	*c = append(*c, curveWord{word: word, lengths: ls})
}

// addSymmetric adds the base word, its time flip, its reflection and its time flipped reflection.
func (c *rsCandidates) addSymmetric(f rsWordFunc, x, y, phi float64, word string,
	lengths func(t, u, v float64) []float64,
) {
	c.add(f, x, y, phi, word, 1, lengths)
	c.add(f, -x, y, -phi, word, -1, lengths)
	c.add(f, x, -y, -phi, flipWord(word), 1, lengths)
	c.add(f, -x, -y, phi, flipWord(word), -1, lengths)
}

func allRSPaths(x, y, phi float64) []curveWord {
	const halfPi = 0.5 * math.Pi
	var c rsCandidates
	sin, cos := math.Sincos(phi)
	xb := x*cos + y*sin
	yb := x*sin - y*cos

	tuv := func(t, u, v float64) []float64 { return []float64{t, u, v} }
	vut := func(t, u, v float64) []float64 { return []float64{v, u, t} }

	// CSC
	c.addSymmetric(lsl, x, y, phi, "LSL", tuv)
	c.addSymmetric(lsr, x, y, phi, "LSR", tuv)

	// CCC
	c.addSymmetric(lrl, x, y, phi, "LRL", tuv)
	c.addSymmetric(lrl, xb, yb, phi, "LRL", vut)

	// CCCC
	c.addSymmetric(lrlrn, x, y, phi, "LRLR", func(t, u, v float64) []float64 { return []float64{t, u, -u, v} })
	c.addSymmetric(lrlrp, x, y, phi, "LRLR", func(t, u, v float64) []float64 { return []float64{t, u, u, v} })

	// CCSC
	for _, base := range []struct {
		f    rsWordFunc
		word string
	}{{lrsl, "LRSL"}, {lrsr, "LRSR"}} {
		c.addSymmetric(base.f, x, y, phi, base.word,
			func(t, u, v float64) []float64 { return []float64{t, -halfPi, u, v} })
		c.addSymmetric(base.f, xb, yb, phi, reverseWord(base.word),
			func(t, u, v float64) []float64 { return []float64{v, u, -halfPi, t} })
	}

	// CCSCC
	c.addSymmetric(lrslr, x, y, phi, "LRSLR",
		func(t, u, v float64) []float64 { return []float64{t, -halfPi, u, -halfPi, v} })
	return c
}

// shortestRSPath returns the valid word of least total length. Words within lengthTieTolerance of each
// other tie and the one found first wins.
func shortestRSPath(x, y, phi float64) (curveWord, bool) {
	paths := allRSPaths(x, y, phi)
	if len(paths) == 0 {
		return curveWord{}, false
	}
	best, bestLen := paths[0], paths[0].length()
	for _, w := range paths[1:] {
		if l := w.length(); l < bestLen-lengthTieTolerance {
			best, bestLen = w, l
		}
	}
	return best, true
}
