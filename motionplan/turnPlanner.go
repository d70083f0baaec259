package motionplan

import (
	"math"

	"go.viam.com/fieldturn/kinematics"
	"go.viam.com/fieldturn/logging"
	"go.viam.com/fieldturn/spatialmath"
	"go.viam.com/fieldturn/trajectory"
)

// TurnPlanner plans the maneuvers joining the end of a swath to the start of the next one.
// It holds no state between calls and may be used from several goroutines.
type TurnPlanner struct {
	logger logging.Logger
	opts   *plannerOptions
}

// NewTurnPlanner creates a TurnPlanner. By default turns are planned with Reeds-Shepp curves and sampled
// every centimeter.
func NewTurnPlanner(logger logging.Logger, opts ...PlannerOption) *TurnPlanner {
	planOpts := newBasicPlannerOptions()
	for _, opt := range opts {
		opt(planOpts)
	}
	return &TurnPlanner{logger: logger, opts: planOpts}
}

// Discretization returns the arc length between two samples of a planned turn.
func (tp *TurnPlanner) Discretization() float64 {
	return tp.opts.discretization
}

// PlanSimpleTurn plans a turn from the origin with heading startAngle to the point distance meters along +X
// with heading endAngle. The turn is planned with the larger of the robot's curvature bounds and then driven
// with the bound of each side.
func (tp *TurnPlanner) PlanSimpleTurn(
	robot *kinematics.Robot,
	distance, startAngle, endAngle float64,
) (trajectory.Path, error) {
	start := spatialmath.NewPose2D(0, 0, startAngle)
	goal := spatialmath.NewPose2D(distance, 0, endAngle)
	_, states, err := tp.planStates(robot, start, goal)
	if err != nil {
		return trajectory.Path{}, err
	}
	return statesToPath(states, robot.TurnVel()), nil
}

// PlanTurn plans a turn between two poses given in any frame. The turn is solved in the frame of the line
// joining the two points and moved back into the frame of the poses.
func (tp *TurnPlanner) PlanTurn(robot *kinematics.Robot, start, goal spatialmath.Pose2D) (trajectory.Path, error) {
	frame := connectionFrame(start, goal)
	localStart := spatialmath.PoseBetween(frame, start)
	localGoal := spatialmath.PoseBetween(frame, goal)
	path, err := tp.PlanSimpleTurn(robot, localGoal.Point.X, localStart.Theta, localGoal.Theta)
	if err != nil {
		return trajectory.Path{}, err
	}
	return path.Transform(frame), nil
}

// connectionFrame returns the frame at start whose X axis points towards goal.
func connectionFrame(start, goal spatialmath.Pose2D) spatialmath.Pose2D {
	d := goal.Point.Sub(start.Point)
	if d.Norm() == 0 {
		return spatialmath.Pose2D{Point: start.Point}
	}
	return spatialmath.Pose2D{Point: start.Point, Theta: math.Atan2(d.Y, d.X)}
}

func (tp *TurnPlanner) planStates(robot *kinematics.Robot, start, goal spatialmath.Pose2D) ([]Control, []State, error) {
	kappaLeft, kappaRight := robot.MaxCurvLeft(), robot.MaxCurvRight()
	kappa := math.Max(kappaLeft, kappaRight)
	tp.logger.Debugw("planning turn", "start", start, "goal", goal, "kappa", kappa)

	controls, err := tp.opts.curvePlanner.Controls(start, goal, kappa)
	if err != nil {
		tp.logger.Warnw("curve planner could not join poses", "start", start, "goal", goal, "error", err)
		return nil, nil, NewPlannerFailedError(err)
	}
	states := IntegrateAsym(start, controls, kappaLeft, kappaRight, tp.opts.discretization)
	tp.logger.Debugw("planned turn",
		"controls", len(controls),
		"samples", len(states),
		"length", ControlsLength(controls),
		"asymmetric", robot.IsAsymmetric(),
	)
	return controls, states, nil
}

// statesToPath turns consecutive samples into straight path states, each ending on the next sample.
// Pairs of identical samples, found where two controls meet, are skipped.
func statesToPath(states []State, velocity float64) trajectory.Path {
	var path trajectory.Path
	for i := 1; i < len(states); i++ {
		prev, next := states[i-1], states[i]
		chord := next.Pose.Point.Sub(prev.Pose.Point)
		length := chord.Norm()
		if length == 0 {
			continue
		}
		dir := trajectory.DirectionFromSign(next.Dir)
		angle := math.Atan2(chord.Y, chord.X)
		if dir == trajectory.Backward {
			angle += math.Pi
		}
		path.Append(trajectory.PathState{
			Point:    prev.Pose.Point,
			Angle:    spatialmath.WrapTo2Pi(angle),
			Len:      length,
			Dir:      dir,
			Type:     trajectory.Turn,
			Velocity: velocity,
		})
	}
	return path
}
