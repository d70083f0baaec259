package trajectory

import (
	"github.com/golang/geo/r2"
	"github.com/samber/lo"

	"go.viam.com/fieldturn/spatialmath"
)

// Path is an ordered sequence of path states.
type Path struct {
	States []PathState
}

// Append adds states at the end of the path.
func (p *Path) Append(states ...PathState) {
	p.States = append(p.States, states...)
}

// Extend adds all the states of other at the end of the path.
func (p *Path) Extend(other Path) {
	p.Append(other.States...)
}

// Size returns the number of states in the path.
func (p Path) Size() int {
	return len(p.States)
}

// Length returns the sum of the lengths of all states.
func (p Path) Length() float64 {
	return lo.SumBy(p.States, func(s PathState) float64 { return s.Len })
}

// Duration returns the time needed to drive the whole path.
func (p Path) Duration() float64 {
	return lo.SumBy(p.States, func(s PathState) float64 { return s.Duration() })
}

// StartPoint returns the first point of the path, or the origin for an empty path.
func (p Path) StartPoint() r2.Point {
	if len(p.States) == 0 {
		return r2.Point{}
	}
	return p.States[0].Point
}

// EndPoint returns the last point of the path, or the origin for an empty path.
func (p Path) EndPoint() r2.Point {
	if len(p.States) == 0 {
		return r2.Point{}
	}
	return p.States[len(p.States)-1].EndPoint()
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	return Path{States: append([]PathState(nil), p.States...)}
}

// Transform returns a copy of the path with every state, given relative to frame, expressed in the frame that
// frame itself is expressed in.
func (p Path) Transform(frame spatialmath.Pose2D) Path {
	out := p.Clone()
	for i, s := range out.States {
		moved := spatialmath.Compose(frame, s.StartPose())
		out.States[i].Point = moved.Point
		out.States[i].Angle = moved.Theta
	}
	return out
}
