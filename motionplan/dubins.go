package motionplan

import (
	"math"

	"go.viam.com/fieldturn/spatialmath"
)

// Dubins plans the shortest forward-only path with a bounded curvature.
type Dubins struct{}

// dubinsProblem is a Dubins problem rotated onto the line joining the two poses and scaled to a unit radius.
type dubinsProblem struct {
	alpha, beta, d     float64
	sa, sb, ca, cb     float64
	cosAlphaBeta, dSqr float64
}

func newDubinsProblem(start, goal spatialmath.Pose2D, kappa float64) dubinsProblem {
	dx := goal.Point.X - start.Point.X
	dy := goal.Point.Y - start.Point.Y
	d := math.Hypot(dx, dy) * kappa
	var theta float64
	if d > 0 {
		theta = spatialmath.WrapTo2Pi(math.Atan2(dy, dx))
	}
	alpha := spatialmath.WrapTo2Pi(start.Theta - theta)
	beta := spatialmath.WrapTo2Pi(goal.Theta - theta)
	return dubinsProblem{
		alpha: alpha, beta: beta, d: d,
		sa: math.Sin(alpha), sb: math.Sin(beta),
		ca: math.Cos(alpha), cb: math.Cos(beta),
		cosAlphaBeta: math.Cos(alpha - beta), dSqr: d * d,
	}
}

type dubinsWordFunc func(p dubinsProblem) ([3]float64, bool)

var dubinsWords = []struct {
	word string
	f    dubinsWordFunc
}{
	{"LSL", dubinsLSL},
	{"LSR", dubinsLSR},
	{"RSL", dubinsRSL},
	{"RSR", dubinsRSR},
	{"RLR", dubinsRLR},
	{"LRL", dubinsLRL},
}

// Controls returns the controls of the shortest Dubins path from start to goal. Every control drives forward.
func (Dubins) Controls(start, goal spatialmath.Pose2D, kappa float64) ([]Control, error) {
	if !(kappa > 0) || math.IsInf(kappa, 1) {
		return nil, NewBadCurvatureError(kappa)
	}
	if spatialmath.AlmostEqual(start, goal, minSegmentLength) {
		return nil, nil
	}
	p := newDubinsProblem(start, goal, kappa)
	var best curveWord
	found := false
	for _, w := range dubinsWords {
		params, ok := w.f(p)
		if !ok {
			continue
		}
		candidate := curveWord{word: w.word, lengths: params[:]}
		if !found || candidate.length() < best.length() {
			best = candidate
			found = true
		}
	}
	if !found {
		return nil, NewManeuverInfeasibleError(start, goal, kappa)
	}
	return best.controls(kappa), nil
}

func dubinsLSL(p dubinsProblem) ([3]float64, bool) {
	tmp0 := p.d + p.sa - p.sb
	pSqr := 2 + p.dSqr - 2*p.cosAlphaBeta + 2*p.d*(p.sa-p.sb)
	if pSqr < 0 {
		return [3]float64{}, false
	}
	tmp1 := math.Atan2(p.cb-p.ca, tmp0)
	return [3]float64{
		spatialmath.WrapTo2Pi(tmp1 - p.alpha),
		math.Sqrt(pSqr),
		spatialmath.WrapTo2Pi(p.beta - tmp1),
	}, true
}

func dubinsRSR(p dubinsProblem) ([3]float64, bool) {
	tmp0 := p.d - p.sa + p.sb
	pSqr := 2 + p.dSqr - 2*p.cosAlphaBeta + 2*p.d*(p.sb-p.sa)
	if pSqr < 0 {
		return [3]float64{}, false
	}
	tmp1 := math.Atan2(p.ca-p.cb, tmp0)
	return [3]float64{
		spatialmath.WrapTo2Pi(p.alpha - tmp1),
		math.Sqrt(pSqr),
		spatialmath.WrapTo2Pi(tmp1 - p.beta),
	}, true
}

func dubinsLSR(p dubinsProblem) ([3]float64, bool) {
	tmp0 := p.d + p.sa + p.sb
	pSqr := -2 + p.dSqr + 2*p.cosAlphaBeta + 2*p.d*(p.sa+p.sb)
	if pSqr < 0 {
		return [3]float64{}, false
	}
	length := math.Sqrt(pSqr)
	tmp1 := math.Atan2(-p.ca-p.cb, tmp0) - math.Atan2(-2, length)
	return [3]float64{
		spatialmath.WrapTo2Pi(tmp1 - p.alpha),
		length,
		spatialmath.WrapTo2Pi(tmp1 - p.beta),
	}, true
}

func dubinsRSL(p dubinsProblem) ([3]float64, bool) {
	tmp0 := p.d - p.sa - p.sb
	pSqr := -2 + p.dSqr + 2*p.cosAlphaBeta - 2*p.d*(p.sa+p.sb)
	if pSqr < 0 {
		return [3]float64{}, false
	}
	length := math.Sqrt(pSqr)
	tmp1 := math.Atan2(p.ca+p.cb, tmp0) - math.Atan2(2, length)
	return [3]float64{
		spatialmath.WrapTo2Pi(p.alpha - tmp1),
		length,
		spatialmath.WrapTo2Pi(p.beta - tmp1),
	}, true
}

func dubinsRLR(p dubinsProblem) ([3]float64, bool) {
	tmp0 := (6 - p.dSqr + 2*p.cosAlphaBeta + 2*p.d*(p.sa-p.sb)) / 8
	if math.Abs(tmp0) > 1 {
		return [3]float64{}, false
	}
	phi := math.Atan2(p.ca-p.cb, p.d-p.sa+p.sb)
	mid := spatialmath.WrapTo2Pi(2*math.Pi - math.Acos(tmp0))
	t := spatialmath.WrapTo2Pi(p.alpha - phi + spatialmath.WrapTo2Pi(mid/2))
	return [3]float64{t, mid, spatialmath.WrapTo2Pi(p.alpha - p.beta - t + mid)}, true
}

func dubinsLRL(p dubinsProblem) ([3]float64, bool) {
	tmp0 := (6 - p.dSqr + 2*p.cosAlphaBeta + 2*p.d*(p.sb-p.sa)) / 8
	if math.Abs(tmp0) > 1 {
		return [3]float64{}, false
	}
	phi := math.Atan2(p.ca-p.cb, p.d+p.sa-p.sb)
	mid := spatialmath.WrapTo2Pi(2*math.Pi - math.Acos(tmp0))
	t := spatialmath.WrapTo2Pi(-p.alpha - phi + mid/2)
	return [3]float64{t, mid, spatialmath.WrapTo2Pi(p.beta - p.alpha - t + mid)}, true
}
