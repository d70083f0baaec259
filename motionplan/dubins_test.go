package motionplan

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"go.viam.com/fieldturn/spatialmath"
)

func TestDubinsStraight(t *testing.T) {
	controls, err := Dubins{}.Controls(spatialmath.NewZeroPose2D(), spatialmath.NewPose2D(10, 0, 0), 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, controls, test.ShouldResemble, []Control{{Kappa: 0, DeltaS: 10}})
}

func TestDubinsIdenticalPoses(t *testing.T) {
	p := spatialmath.NewPose2D(2, 2, 2)
	controls, err := Dubins{}.Controls(p, p, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, controls, test.ShouldBeEmpty)
}

func TestDubinsBadCurvature(t *testing.T) {
	_, err := Dubins{}.Controls(spatialmath.NewZeroPose2D(), spatialmath.NewPose2D(1, 0, 0), 0)
	test.That(t, errors.Is(err, ErrManeuverInfeasible), test.ShouldBeTrue)
}

func TestDubinsReachesGoal(t *testing.T) {
	//nolint:gosec
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 300; i++ {
		start := spatialmath.NewPose2D(rnd.Float64()*20-10, rnd.Float64()*20-10, rnd.Float64()*8-4)
		goal := spatialmath.NewPose2D(rnd.Float64()*20-10, rnd.Float64()*20-10, rnd.Float64()*8-4)
		kappa := 1 / (0.5 + rnd.Float64()*2.5)

		controls, err := Dubins{}.Controls(start, goal, kappa)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(controls), test.ShouldBeGreaterThan, 0)
		test.That(t, len(controls), test.ShouldBeLessThanOrEqualTo, 3)
		for _, c := range controls {
			test.That(t, c.DeltaS, test.ShouldBeGreaterThan, 0)
		}
		end := driveControls(start, controls, kappa)
		test.That(t, spatialmath.AlmostEqual(end, goal, 1e-6), test.ShouldBeTrue)
	}
}

func TestDubinsNeverShorterThanReedsShepp(t *testing.T) {
	//nolint:gosec
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		start, goal := randomPose(rnd), randomPose(rnd)
		dubins, err := Dubins{}.Controls(start, goal, 0.5)
		test.That(t, err, test.ShouldBeNil)
		rs, err := ReedsShepp{}.Controls(start, goal, 0.5)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, ControlsLength(rs), test.ShouldBeLessThanOrEqualTo, ControlsLength(dubins)+1e-6)
	}
}
