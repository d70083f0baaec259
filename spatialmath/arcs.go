package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// EndOfCircularArc integrates constant-curvature motion in closed form. kappa is the signed curvature
// (positive turns left), dir is +1 for forward and -1 for backward motion, and length is the unsigned arc
// length travelled. kappa must be non-zero. The returned heading is wrapped to [0, 2pi).
func EndOfCircularArc(start Pose2D, kappa, dir, length float64) Pose2D {
	theta := start.Theta + dir*length*kappa
	return Pose2D{
		Point: r2.Point{
			X: start.Point.X + (1/kappa)*(-math.Sin(start.Theta)+math.Sin(theta)),
			Y: start.Point.Y + (1/kappa)*(math.Cos(start.Theta)-math.Cos(theta)),
		},
		Theta: WrapTo2Pi(theta),
	}
}

// EndOfStraightLine integrates straight motion of the unsigned length in direction dir (+1 or -1).
// The heading is unchanged.
func EndOfStraightLine(start Pose2D, dir, length float64) Pose2D {
	return Pose2D{
		Point: PointFromAngle(start.Point, start.Theta, dir*length),
		Theta: start.Theta,
	}
}
