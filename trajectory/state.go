// Package trajectory defines the samples that make up a coverage path and their composition into paths.
package trajectory

import (
	"fmt"

	"github.com/golang/geo/r2"

	"go.viam.com/fieldturn/spatialmath"
)

// Direction is the sense of motion along a path state.
type Direction int

const (
	// Backward motion, against the heading.
	Backward Direction = -1
	// Stop is reserved and never moves the robot.
	Stop Direction = 0
	// Forward motion, along the heading.
	Forward Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "FORWARD"
	case Backward:
		return "BACKWARD"
	case Stop:
		return "STOP"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DirectionFromSign maps a signed value to Forward or Backward. Zero maps to Forward.
func DirectionFromSign(s float64) Direction {
	if s < 0 {
		return Backward
	}
	return Forward
}

// SectionType tells coverage motion apart from the maneuvers that connect it. It has no effect on geometry.
type SectionType int

const (
	// Swath is productive motion along a swath.
	Swath SectionType = iota + 1
	// Turn is a maneuver connecting two swaths.
	Turn
	// HLSwath is productive motion along a headland swath.
	HLSwath
)

func (t SectionType) String() string {
	switch t {
	case Swath:
		return "SWATH"
	case Turn:
		return "TURN"
	case HLSwath:
		return "HL_SWATH"
	default:
		return fmt.Sprintf("SectionType(%d)", int(t))
	}
}

// PathState is a single straight piece of a path: starting at Point, the robot travels Len meters along Angle,
// or against it when Dir is Backward.
type PathState struct {
	Point    r2.Point
	Angle    float64
	Len      float64 // >= 0
	Dir      Direction
	Type     SectionType
	Velocity float64
}

// NewPathState returns a forward swath state of length 0 at the origin driven at 1 m/s. The zero PathState
// is stopped and has no section type, so states built field by field should set Dir, Type and Velocity.
func NewPathState() PathState {
	return PathState{Dir: Forward, Type: Swath, Velocity: 1}
}

// EndPoint returns the point reached at the end of the state.
func (s PathState) EndPoint() r2.Point {
	if s.Dir == Stop {
		return s.Point
	}
	return spatialmath.PointFromAngle(s.Point, s.Angle, s.Len*float64(s.Dir))
}

// StartPose returns the point and heading the state starts at.
func (s PathState) StartPose() spatialmath.Pose2D {
	return spatialmath.Pose2D{Point: s.Point, Theta: s.Angle}
}

// EndPose returns the end point with the state's heading.
func (s PathState) EndPose() spatialmath.Pose2D {
	return spatialmath.Pose2D{Point: s.EndPoint(), Theta: s.Angle}
}

// Duration returns the time needed to drive the state, or 0 for a stopped robot.
func (s PathState) Duration() float64 {
	if s.Velocity == 0 {
		return 0
	}
	return s.Len / s.Velocity
}
