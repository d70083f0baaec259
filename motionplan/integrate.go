package motionplan

import (
	"math"

	"go.viam.com/fieldturn/kinematics"
	"go.viam.com/fieldturn/spatialmath"
	"go.viam.com/fieldturn/utils"
)

// substituteCurvature replaces the curvature of a planned control by the bound of the side it turns to.
func substituteCurvature(kappa, kappaLeft, kappaRight float64) float64 {
	switch {
	case math.Abs(kappa) < kinematics.CurvatureEpsilon:
		return 0
	case kappa > 0:
		return kappaLeft
	default:
		return -kappaRight
	}
}

// IntegrateAsym drives controls from start, sampling every step meters of arc length. Left arcs are driven
// with curvature kappaLeft and right arcs with -kappaRight whatever curvature they were planned with.
// For each control one state is emitted at its start and one after every step; the last step of a control
// is shortened so the steps add up to its length. step must be positive.
func IntegrateAsym(start spatialmath.Pose2D, controls []Control, kappaLeft, kappaRight, step float64) []State {
	states := make([]State, 0, len(controls))
	pose := start
	for _, c := range controls {
		kappa := substituteCurvature(c.Kappa, kappaLeft, kappaRight)
		dir := utils.Sign(c.DeltaS)
		length := math.Abs(c.DeltaS)
		states = append(states, State{Pose: pose, Kappa: kappa, Dir: dir})

		n := int(math.Ceil(length / step))
		s := 0.
		for i := 0; i < n; i++ {
			ds := step
			if i == n-1 {
				ds = math.Min(math.Max(length-s, 0), step)
			}
			s += ds
			pose = integrateStep(pose, kappa, dir, ds)
			states = append(states, State{Pose: pose, Kappa: kappa, Dir: dir, S: s, Step: ds})
		}
	}
	return states
}

func integrateStep(pose spatialmath.Pose2D, kappa, dir, ds float64) spatialmath.Pose2D {
	if math.Abs(kappa) < kinematics.CurvatureEpsilon {
		return spatialmath.EndOfStraightLine(pose, dir, ds)
	}
	return spatialmath.EndOfCircularArc(pose, kappa, dir, ds)
}
