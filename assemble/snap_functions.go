package assemble

import "github.com/akhenakh/topology/planar"

// SnapFunction restricts the locations of the node sites in a Builder.
type SnapFunction interface {
	// SnapRadius returns the maximum distance that line end points can move
	// when snapped.
	SnapRadius() float64

	// SnapPoint returns a candidate snap site for the given point.
	SnapPoint(c planar.Coord) planar.Coord
}

// IdentitySnapFunction snaps every end point to itself.
type IdentitySnapFunction struct {
	snapRadius float64
}

// NewIdentitySnapFunction creates a snap function that preserves end points
// exactly unless they are closer than the given radius.
func NewIdentitySnapFunction(snapRadius float64) *IdentitySnapFunction {
	return &IdentitySnapFunction{snapRadius: snapRadius}
}

func (f *IdentitySnapFunction) SnapRadius() float64 {
	return f.snapRadius
}

func (f *IdentitySnapFunction) SnapPoint(c planar.Coord) planar.Coord {
	return c
}
