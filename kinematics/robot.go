// Package kinematics describes the kinematic limits of a field robot: its widths, velocities and the
// curvature bounds it can follow when turning left and right.
package kinematics

import (
	"math"

	"github.com/pkg/errors"
)

// CurvatureEpsilon keeps curvature/radius conversions finite and is the magnitude under which a curvature is
// considered a straight line.
const CurvatureEpsilon = 1e-7

// defaultCruiseVel is the cruise velocity of a newly built robot, in m/s.
const defaultCruiseVel = 1.0

// ErrInvalidConfiguration is returned when a robot is built with impossible dimensions.
var ErrInvalidConfiguration = errors.New("invalid robot configuration")

// NewInvalidWidthError is returned when a robot is built with a non-positive width or negative coverage width.
func NewInvalidWidthError(width, covWidth float64) error {
	return errors.Wrapf(ErrInvalidConfiguration,
		"robot width must be greater than 0 and coverage width at least 0, got width %v and coverage width %v",
		width, covWidth)
}

// CurvatureToRadius converts a curvature magnitude into a turning radius. It never divides by zero.
func CurvatureToRadius(curv float64) float64 {
	return 1. / (curv + CurvatureEpsilon)
}

// RadiusToCurvature converts a turning radius of either sign into a curvature magnitude. It never divides by zero.
func RadiusToCurvature(radius float64) float64 {
	return 1. / (math.Abs(radius) + CurvatureEpsilon)
}

// Robot holds the kinematic description of a robot. It is built once per robot and treated as read-only while
// planning. Optional values are kept as nil pointers and resolved on every read, so changing the symmetric
// curvature later still affects any side without its own override.
type Robot struct {
	name     string
	width    float64
	covWidth float64

	cruiseVel float64
	turnVel   *float64

	maxCurv     float64
	maxDiffCurv float64

	maxCurvLeft  *float64
	maxCurvRight *float64
}

// NewRobot returns a robot of the given width and coverage width. A coverage width of zero means the robot
// covers its own width.
func NewRobot(width, covWidth float64) (*Robot, error) {
	if width <= 0 || covWidth < 0 {
		return nil, NewInvalidWidthError(width, covWidth)
	}
	if covWidth == 0 {
		covWidth = width
	}
	return &Robot{width: width, covWidth: covWidth, cruiseVel: defaultCruiseVel}, nil
}

// Name returns the name of the robot.
func (r *Robot) Name() string { return r.name }

// SetName sets the name of the robot.
func (r *Robot) SetName(name string) { r.name = name }

// Width returns the physical width of the robot, in meters.
func (r *Robot) Width() float64 { return r.width }

// SetWidth sets the physical width of the robot, in meters.
func (r *Robot) SetWidth(w float64) { r.width = w }

// CovWidth returns the width covered by the robot's implement, in meters.
func (r *Robot) CovWidth() float64 { return r.covWidth }

// SetCovWidth sets the width covered by the robot's implement, in meters.
func (r *Robot) SetCovWidth(w float64) { r.covWidth = w }

// CruiseVel returns the velocity used while covering swaths, in m/s.
func (r *Robot) CruiseVel() float64 { return r.cruiseVel }

// SetCruiseVel sets the velocity used while covering swaths, in m/s.
func (r *Robot) SetCruiseVel(v float64) { r.cruiseVel = v }

// TurnVel returns the velocity used during turns, which is the cruise velocity unless overridden.
func (r *Robot) TurnVel() float64 {
	if r.turnVel != nil {
		return *r.turnVel
	}
	return r.cruiseVel
}

// SetTurnVel overrides the velocity used during turns.
func (r *Robot) SetTurnVel(v float64) { r.turnVel = &v }

// MaxCurv returns the symmetric maximum curvature.
func (r *Robot) MaxCurv() float64 { return r.maxCurv }

// SetMaxCurv sets the symmetric maximum curvature. The sign is discarded.
func (r *Robot) SetMaxCurv(c float64) { r.maxCurv = math.Abs(c) }

// MinTurningRadius returns the symmetric minimum turning radius.
func (r *Robot) MinTurningRadius() float64 { return CurvatureToRadius(r.maxCurv) }

// SetMinTurningRadius sets the symmetric maximum curvature from a turning radius.
func (r *Robot) SetMinTurningRadius(rad float64) { r.maxCurv = RadiusToCurvature(rad) }

// MaxDiffCurv returns the maximum rate of change of curvature.
func (r *Robot) MaxDiffCurv() float64 { return r.maxDiffCurv }

// SetMaxDiffCurv sets the maximum rate of change of curvature. The sign is discarded.
func (r *Robot) SetMaxDiffCurv(dc float64) { r.maxDiffCurv = math.Abs(dc) }

// MaxCurvLeft returns the maximum curvature for left turns, falling back to the symmetric value.
func (r *Robot) MaxCurvLeft() float64 {
	if r.maxCurvLeft != nil {
		return *r.maxCurvLeft
	}
	return r.maxCurv
}

// SetMaxCurvLeft overrides the maximum curvature for left turns. The sign is discarded.
func (r *Robot) SetMaxCurvLeft(c float64) {
	c = math.Abs(c)
	r.maxCurvLeft = &c
}

// MaxCurvRight returns the maximum curvature for right turns, falling back to the symmetric value.
func (r *Robot) MaxCurvRight() float64 {
	if r.maxCurvRight != nil {
		return *r.maxCurvRight
	}
	return r.maxCurv
}

// SetMaxCurvRight overrides the maximum curvature for right turns. The sign is discarded.
func (r *Robot) SetMaxCurvRight(c float64) {
	c = math.Abs(c)
	r.maxCurvRight = &c
}

// MinTurningRadiusLeft returns the minimum radius of left turns.
func (r *Robot) MinTurningRadiusLeft() float64 { return CurvatureToRadius(r.MaxCurvLeft()) }

// SetMinTurningRadiusLeft overrides the left maximum curvature from a turning radius.
func (r *Robot) SetMinTurningRadiusLeft(rad float64) {
	c := RadiusToCurvature(rad)
	r.maxCurvLeft = &c
}

// MinTurningRadiusRight returns the minimum radius of right turns.
func (r *Robot) MinTurningRadiusRight() float64 { return CurvatureToRadius(r.MaxCurvRight()) }

// SetMinTurningRadiusRight overrides the right maximum curvature from a turning radius.
func (r *Robot) SetMinTurningRadiusRight(rad float64) {
	c := RadiusToCurvature(rad)
	r.maxCurvRight = &c
}

// IsAsymmetric returns whether left and right turns are bounded by different curvatures.
func (r *Robot) IsAsymmetric() bool {
	return r.MaxCurvLeft() != r.MaxCurvRight()
}
