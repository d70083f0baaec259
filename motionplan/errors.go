package motionplan

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/fieldturn/spatialmath"
)

// ErrManeuverInfeasible is returned when no maneuver joining two poses could be planned.
var ErrManeuverInfeasible = errors.New("maneuver infeasible")

// NewManeuverInfeasibleError is returned when a curve planner finds no word joining start to goal.
func NewManeuverInfeasibleError(start, goal spatialmath.Pose2D, kappa float64) error {
	return errors.Wrapf(ErrManeuverInfeasible, "no maneuver from %v to %v with curvature %v", start, goal, kappa)
}

// NewBadCurvatureError is returned when a curve planner is asked to plan with a non-positive curvature bound.
func NewBadCurvatureError(kappa float64) error {
	return errors.Wrapf(ErrManeuverInfeasible, "curvature bound must be greater than 0, got %v", kappa)
}

// NewPlannerFailedError wraps an error returned by a curve planner while planning a turn. The result always
// matches ErrManeuverInfeasible.
func NewPlannerFailedError(err error) error {
	if !errors.Is(err, ErrManeuverInfeasible) {
		err = multierr.Combine(ErrManeuverInfeasible, err)
	}
	return errors.Wrap(err, "turn planner failed to find path")
}
