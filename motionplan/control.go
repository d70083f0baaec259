// Package motionplan plans turn maneuvers between swaths for robots whose left and right turning radii may
// differ.
package motionplan

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"go.viam.com/fieldturn/kinematics"
	"go.viam.com/fieldturn/spatialmath"
)

// Control is a constant curvature piece of a maneuver. Kappa is positive for left turns, negative for right
// turns and below kinematics.CurvatureEpsilon in magnitude for straight lines. The sign of DeltaS gives the
// direction of motion and its magnitude the arc length.
type Control struct {
	Kappa  float64
	DeltaS float64
}

func (c Control) String() string {
	return fmt.Sprintf("{Kappa:%.4f DeltaS:%.4f}", c.Kappa, c.DeltaS)
}

// IsStraight returns whether the control drives a straight line.
func (c Control) IsStraight() bool {
	return math.Abs(c.Kappa) < kinematics.CurvatureEpsilon
}

// State is a sample of an integrated maneuver.
type State struct {
	Pose spatialmath.Pose2D
	// Kappa is the curvature actually driven, after substituting the robot's side-specific bound.
	Kappa float64
	// Dir is +1 when driving forward, -1 when driving backward.
	Dir float64
	// S is the arc length travelled since the start of the current control.
	S float64
	// Step is the arc length of the integration step that produced this sample, 0 at the start of a control.
	Step float64
}

// CurvePlanner finds a sequence of controls joining two poses with curvature bounded by kappa.
// An empty sequence is valid when the poses coincide.
type CurvePlanner interface {
	Controls(start, goal spatialmath.Pose2D, kappa float64) ([]Control, error)
}

// ControlsLength returns the total unsigned arc length of a control sequence.
func ControlsLength(controls []Control) float64 {
	return lo.SumBy(controls, func(c Control) float64 { return math.Abs(c.DeltaS) })
}

// dropEmptyControls removes controls whose normalized length is below minSegmentLength.
func dropEmptyControls(controls []Control, kappa float64) []Control {
	return lo.Filter(controls, func(c Control, _ int) bool {
		return math.Abs(c.DeltaS*kappa) >= minSegmentLength
	})
}
