// Package spatialmath defines planar poses and the closed-form motion primitives used to integrate them.
package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/fieldturn/utils"
)

// Pose2D is a position in the plane plus a heading, in radians, measured counter-clockwise from +X.
type Pose2D struct {
	Point r2.Point
	Theta float64
}

// NewPose2D creates a Pose2D from its components.
func NewPose2D(x, y, theta float64) Pose2D {
	return Pose2D{Point: r2.Point{X: x, Y: y}, Theta: theta}
}

// NewZeroPose2D returns the pose at the origin facing +X.
func NewZeroPose2D() Pose2D {
	return Pose2D{}
}

func (p Pose2D) String() string {
	return fmt.Sprintf("{X:%.4f Y:%.4f Theta:%.4f}", p.Point.X, p.Point.Y, p.Theta)
}

// PointFromAngle returns the point reached by moving dist from p along angle. A negative dist moves backwards.
func PointFromAngle(p r2.Point, angle, dist float64) r2.Point {
	return r2.Point{X: p.X + dist*math.Cos(angle), Y: p.Y + dist*math.Sin(angle)}
}

// Compose expresses b, given relative to the frame a, in the frame a is expressed in.
func Compose(a, b Pose2D) Pose2D {
	sin, cos := math.Sincos(a.Theta)
	return Pose2D{
		Point: r2.Point{
			X: a.Point.X + cos*b.Point.X - sin*b.Point.Y,
			Y: a.Point.Y + sin*b.Point.X + cos*b.Point.Y,
		},
		Theta: WrapTo2Pi(a.Theta + b.Theta),
	}
}

// PoseInverse returns the pose that undoes p, such that Compose(p, PoseInverse(p)) is the zero pose.
func PoseInverse(p Pose2D) Pose2D {
	sin, cos := math.Sincos(p.Theta)
	return Pose2D{
		Point: r2.Point{
			X: -cos*p.Point.X - sin*p.Point.Y,
			Y: sin*p.Point.X - cos*p.Point.Y,
		},
		Theta: WrapTo2Pi(-p.Theta),
	}
}

// PoseBetween returns the pose of b expressed in the frame of a.
func PoseBetween(a, b Pose2D) Pose2D {
	return Compose(PoseInverse(a), b)
}

// AlmostEqual returns whether two poses have the same position and heading within tol.
// Headings are compared modulo 2pi.
func AlmostEqual(a, b Pose2D, tol float64) bool {
	return utils.Float64AlmostEqual(a.Point.X, b.Point.X, tol) &&
		utils.Float64AlmostEqual(a.Point.Y, b.Point.Y, tol) &&
		math.Abs(AngleDiff(a.Theta, b.Theta)) <= tol
}

// WrapTo2Pi returns a given angle in the [0, 2pi) range.
func WrapTo2Pi(theta float64) float64 {
	wrapped := theta - 2*math.Pi*math.Floor(theta/(2*math.Pi))
	if wrapped >= 2*math.Pi {
		return 0
	}
	return wrapped
}

// WrapToPi returns a given angle in the (-pi, pi] range.
func WrapToPi(theta float64) float64 {
	wrapped := WrapTo2Pi(theta)
	if wrapped > math.Pi {
		wrapped -= 2 * math.Pi
	}
	return wrapped
}

// AngleDiff returns the signed smallest rotation taking a onto b, in (-pi, pi].
func AngleDiff(a, b float64) float64 {
	return WrapToPi(b - a)
}
