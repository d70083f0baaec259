package motionplan

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"go.viam.com/fieldturn/kinematics"
	"go.viam.com/fieldturn/spatialmath"
	"go.viam.com/fieldturn/trajectory"
)

var defaultNumThreads = max(runtime.NumCPU()/2, 1)

// Connection is a pair of poses to be joined by a turn, usually the end of a swath and the start of the next.
type Connection struct {
	Start spatialmath.Pose2D
	Goal  spatialmath.Pose2D
}

// PlanTurns plans one turn per connection concurrently. The returned paths are in the order of connections.
// The first failure cancels the turns not yet started and is returned.
func (tp *TurnPlanner) PlanTurns(
	ctx context.Context,
	robot *kinematics.Robot,
	connections []Connection,
) ([]trajectory.Path, error) {
	paths := make([]trajectory.Path, len(connections))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultNumThreads)
	for i, conn := range connections {
		i, conn := i, conn
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := tp.PlanTurn(robot, conn.Start, conn.Goal)
			if err != nil {
				return errors.Wrapf(err, "turn %d", i)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	summary, err := SummarizeTurns(paths)
	if err != nil {
		tp.logger.Debugw("could not summarize planned turns", "turns", len(paths), "error", err)
		return paths, nil
	}
	tp.logger.Debugw("planned turns",
		"turns", summary.Count,
		"total_length", summary.Total,
		"mean_length", summary.Mean,
		"max_length", summary.Max,
	)
	return paths, nil
}
