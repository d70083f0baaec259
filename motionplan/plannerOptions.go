package motionplan

// default values for planning options.
const (
	// Arc length between two samples of a planned turn, in meters.
	defaultDiscretization = 0.01
)

// plannerOptions are a set of options to be passed to a TurnPlanner which specify how to solve a turn.
type plannerOptions struct {
	curvePlanner   CurvePlanner
	discretization float64
}

func newBasicPlannerOptions() *plannerOptions {
	return &plannerOptions{
		curvePlanner:   ReedsShepp{},
		discretization: defaultDiscretization,
	}
}

// PlannerOption configures a TurnPlanner.
type PlannerOption func(*plannerOptions)

// WithCurvePlanner replaces the Reeds-Shepp planner used to find the controls of a turn.
func WithCurvePlanner(cp CurvePlanner) PlannerOption {
	return func(opts *plannerOptions) {
		if cp != nil {
			opts.curvePlanner = cp
		}
	}
}

// WithDiscretization sets the arc length between two samples of a planned turn. Non-positive values are ignored.
func WithDiscretization(step float64) PlannerOption {
	return func(opts *plannerOptions) {
		if step > 0 {
			opts.discretization = step
		}
	}
}
