package motionplan

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/fieldturn/kinematics"
	"go.viam.com/fieldturn/logging"
	"go.viam.com/fieldturn/spatialmath"
	"go.viam.com/fieldturn/trajectory"
)

type curvePlannerFunc func(start, goal spatialmath.Pose2D, kappa float64) ([]Control, error)

func (f curvePlannerFunc) Controls(start, goal spatialmath.Pose2D, kappa float64) ([]Control, error) {
	return f(start, goal, kappa)
}

func newTestRobot(t *testing.T, leftRadius, rightRadius float64) *kinematics.Robot {
	t.Helper()
	robot, err := kinematics.NewRobot(1.5, 3)
	test.That(t, err, test.ShouldBeNil)
	robot.SetMinTurningRadius(math.Min(leftRadius, rightRadius))
	robot.SetMinTurningRadiusLeft(leftRadius)
	robot.SetMinTurningRadiusRight(rightRadius)
	robot.SetTurnVel(0.5)
	return robot
}

func pointsClose(a, b r2.Point, tol float64) bool {
	return a.Sub(b).Norm() <= tol
}

func TestPlannerOptions(t *testing.T) {
	logger := logging.NewTestLogger(t)
	tp := NewTurnPlanner(logger)
	test.That(t, tp.Discretization(), test.ShouldEqual, defaultDiscretization)
	test.That(t, tp.opts.curvePlanner, test.ShouldHaveSameTypeAs, ReedsShepp{})

	tp = NewTurnPlanner(logger, WithDiscretization(-1), WithDiscretization(0), WithCurvePlanner(nil))
	test.That(t, tp.Discretization(), test.ShouldEqual, defaultDiscretization)
	test.That(t, tp.opts.curvePlanner, test.ShouldHaveSameTypeAs, ReedsShepp{})

	tp = NewTurnPlanner(logger, WithDiscretization(0.5), WithCurvePlanner(Dubins{}))
	test.That(t, tp.Discretization(), test.ShouldEqual, 0.5)
	test.That(t, tp.opts.curvePlanner, test.ShouldHaveSameTypeAs, Dubins{})
}

func TestPlanSimpleTurnDegenerate(t *testing.T) {
	robot := newTestRobot(t, 10, 1)
	for _, cp := range []CurvePlanner{ReedsShepp{}, Dubins{}} {
		tp := NewTurnPlanner(logging.NewTestLogger(t), WithCurvePlanner(cp))
		for _, theta := range []float64{0, 1.2, math.Pi, 5} {
			path, err := tp.PlanSimpleTurn(robot, 0, theta, theta)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, path.Length(), test.ShouldAlmostEqual, 0, 1e-9)
		}
	}
}

func TestPlanSimpleTurnAsymmetric(t *testing.T) {
	robot := newTestRobot(t, 10, 1)
	kappaLeft, kappaRight := robot.MaxCurvLeft(), robot.MaxCurvRight()
	test.That(t, kappaLeft, test.ShouldAlmostEqual, 0.1, 1e-6)
	test.That(t, kappaRight, test.ShouldAlmostEqual, 1, 1e-6)

	step := 0.1
	logger, logs := logging.NewObservedTestLogger(t)
	tp := NewTurnPlanner(logger, WithDiscretization(step))

	start := spatialmath.NewZeroPose2D()
	goal := spatialmath.NewPose2D(20, 0, math.Pi)
	controls, states, err := tp.planStates(robot, start, goal)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, controls, test.ShouldNotBeEmpty)
	test.That(t, states, test.ShouldNotBeEmpty)

	planned := logs.FilterMessage("planning turn").All()
	test.That(t, len(planned), test.ShouldEqual, 1)
	test.That(t, planned[0].ContextMap()["kappa"], test.ShouldEqual, kappaRight)

	// the turn starts with a forward left arc, driven with the left bound
	test.That(t, controls[0].Kappa, test.ShouldBeGreaterThan, 0)
	test.That(t, controls[0].DeltaS, test.ShouldBeGreaterThan, 0)
	test.That(t, states[0].Kappa, test.ShouldEqual, kappaLeft)
	test.That(t, states[0].Dir, test.ShouldEqual, 1.)
	test.That(t, states[0].Pose, test.ShouldResemble, start)

	// the last sample is where the planned controls lead once each side uses its own bound
	nominal := start
	for _, c := range controls {
		kappa := substituteCurvature(c.Kappa, kappaLeft, kappaRight)
		nominal = integrateStep(nominal, kappa, math.Copysign(1, c.DeltaS), math.Abs(c.DeltaS))
	}
	last := states[len(states)-1].Pose
	test.That(t, spatialmath.AlmostEqual(last, nominal, step), test.ShouldBeTrue)
	test.That(t, spatialmath.AlmostEqual(last, spatialmath.NewPose2D(3.5489114539, -18.7993962078, 1.7278759736), 1e-6),
		test.ShouldBeTrue)

	path, err := tp.PlanSimpleTurn(robot, 20, 0, math.Pi)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path.Size(), test.ShouldBeGreaterThan, 0)
	test.That(t, path.StartPoint(), test.ShouldResemble, r2.Point{})
	test.That(t, pointsClose(path.EndPoint(), last.Point, 1e-9), test.ShouldBeTrue)
	test.That(t, path.States[0].Dir, test.ShouldEqual, trajectory.Forward)
}

func TestPlanSimpleTurnSymmetricReachesGoal(t *testing.T) {
	robot := newTestRobot(t, 1, 1)
	tp := NewTurnPlanner(logging.NewTestLogger(t))

	path, err := tp.PlanSimpleTurn(robot, 20, 0, math.Pi)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path.StartPoint(), test.ShouldResemble, r2.Point{})
	test.That(t, pointsClose(path.EndPoint(), r2.Point{X: 20}, tp.Discretization()), test.ShouldBeTrue)
	// 18m straight plus two quarter circles of radius 1
	test.That(t, path.Length(), test.ShouldAlmostEqual, 18+math.Pi, 1e-3)
	test.That(t, path.Duration(), test.ShouldAlmostEqual, path.Length()/0.5, 1e-9)
}

func TestPlanSimpleTurnRightOnlyReachesGoal(t *testing.T) {
	robot := newTestRobot(t, 10, 1)
	tp := NewTurnPlanner(logging.NewTestLogger(t), WithDiscretization(0.1))

	_, states, err := tp.planStates(robot, spatialmath.NewZeroPose2D(), spatialmath.NewPose2D(0, -10, math.Pi))
	test.That(t, err, test.ShouldBeNil)
	for _, s := range states {
		test.That(t, s.Kappa, test.ShouldBeLessThanOrEqualTo, 0)
	}
	last := states[len(states)-1].Pose
	test.That(t, spatialmath.AlmostEqual(last, spatialmath.NewPose2D(0, -10, math.Pi), 1e-6), test.ShouldBeTrue)
}

func TestPathStatesChainSamples(t *testing.T) {
	robot := newTestRobot(t, 10, 1)
	tp := NewTurnPlanner(logging.NewTestLogger(t), WithDiscretization(0.05))
	_, states, err := tp.planStates(robot, spatialmath.NewZeroPose2D(), spatialmath.NewPose2D(20, 0, math.Pi))
	test.That(t, err, test.ShouldBeNil)

	path := statesToPath(states, robot.TurnVel())
	// one state per sample pair, minus the two pairs where controls meet
	test.That(t, path.Size(), test.ShouldEqual, len(states)-1-2)

	backward := 0
	for i, s := range path.States {
		test.That(t, s.Type, test.ShouldEqual, trajectory.Turn)
		test.That(t, s.Velocity, test.ShouldEqual, 0.5)
		test.That(t, s.Len, test.ShouldBeGreaterThan, 0)
		test.That(t, s.Len, test.ShouldBeLessThanOrEqualTo, 0.05+1e-12)
		if s.Dir == trajectory.Backward {
			backward++
		}
		if i+1 < path.Size() {
			test.That(t, pointsClose(s.EndPoint(), path.States[i+1].Point, 1e-9), test.ShouldBeTrue)
		}
	}
	test.That(t, backward, test.ShouldBeGreaterThan, 0)
	test.That(t, pointsClose(path.EndPoint(), states[len(states)-1].Pose.Point, 1e-9), test.ShouldBeTrue)
}

func TestPlanTurnWorldFrame(t *testing.T) {
	robot := newTestRobot(t, 2, 2)
	tp := NewTurnPlanner(logging.NewTestLogger(t))

	for _, tc := range []struct {
		name        string
		start, goal spatialmath.Pose2D
	}{
		{"u-turn east", spatialmath.NewPose2D(10, 5, math.Pi/2), spatialmath.NewPose2D(16, 5, 3*math.Pi/2)},
		{"u-turn rotated", spatialmath.NewPose2D(-3, 7, 2.5), spatialmath.NewPose2D(-8, 1, 5.5)},
		{"same point", spatialmath.NewPose2D(4, 4, 0), spatialmath.NewPose2D(4, 4, math.Pi/2)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path, err := tp.PlanTurn(robot, tc.start, tc.goal)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, path.Size(), test.ShouldBeGreaterThan, 0)
			test.That(t, pointsClose(path.StartPoint(), tc.start.Point, 1e-9), test.ShouldBeTrue)
			test.That(t, pointsClose(path.EndPoint(), tc.goal.Point, 1e-6), test.ShouldBeTrue)
		})
	}
}

func TestPlanTurnInfeasible(t *testing.T) {
	robot := newTestRobot(t, 2, 2)
	boom := errors.New("no word")
	logger, logs := logging.NewObservedTestLogger(t)
	tp := NewTurnPlanner(logger, WithCurvePlanner(curvePlannerFunc(
		func(start, goal spatialmath.Pose2D, kappa float64) ([]Control, error) {
			return nil, boom
		})))

	_, err := tp.PlanTurn(robot, spatialmath.NewZeroPose2D(), spatialmath.NewPose2D(3, 3, 1))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrManeuverInfeasible), test.ShouldBeTrue)
	test.That(t, errors.Is(err, boom), test.ShouldBeTrue)
	test.That(t, logs.FilterMessage("curve planner could not join poses").Len(), test.ShouldEqual, 1)

	robot.SetMaxCurv(0)
	robot.SetMaxCurvLeft(0)
	robot.SetMaxCurvRight(0)
	tp = NewTurnPlanner(logger)
	_, err = tp.PlanSimpleTurn(robot, 10, 0, math.Pi)
	test.That(t, errors.Is(err, ErrManeuverInfeasible), test.ShouldBeTrue)
}
