package motionplan

import (
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"

	"go.viam.com/fieldturn/trajectory"
)

// TurnSummary describes the lengths of a set of planned turns, in meters.
type TurnSummary struct {
	Count  int
	Total  float64
	Mean   float64
	Max    float64
	StdDev float64
}

// SummarizeTurns returns statistics on the lengths of paths. An empty set yields a zero summary.
func SummarizeTurns(paths []trajectory.Path) (TurnSummary, error) {
	if len(paths) == 0 {
		return TurnSummary{}, nil
	}
	lengths := stats.Float64Data(lo.Map(paths, func(p trajectory.Path, _ int) float64 { return p.Length() }))
	total, err := lengths.Sum()
	if err != nil {
		return TurnSummary{}, err
	}
	mean, err := lengths.Mean()
	if err != nil {
		return TurnSummary{}, err
	}
	maxLen, err := lengths.Max()
	if err != nil {
		return TurnSummary{}, err
	}
	sd, err := lengths.StandardDeviation()
	if err != nil {
		return TurnSummary{}, err
	}
	return TurnSummary{Count: len(paths), Total: total, Mean: mean, Max: maxLen, StdDev: sd}, nil
}
