package bom

import (
	"sort"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle"
)

// Side is the board side a component is mounted on
type Side string

const (
	Top    Side = "top"
	Bottom Side = "bottom"
)

// Placement is one row of a component placement list
type Placement struct {
	Designator string  `json:"designator"`
	Value      string  `json:"value"`
	Package    string  `json:"package"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Rotation   float64 `json:"rotation"`
	Side       Side    `json:"side"`
}

// Placements lists the position of every board element. Mirrored
// elements sit on the bottom side.
func Placements(b *eagle.Board, opts Options) []Placement {
	out := make([]Placement, 0, len(b.Elements))
	for _, e := range b.Elements {
		if opts.skip(e.Name) {
			continue
		}
		side := Top
		if e.Mirror {
			side = Bottom
		}
		out = append(out, Placement{
			Designator: e.Name,
			Value:      e.Value,
			Package:    e.Package,
			X:          e.X,
			Y:          e.Y,
			Rotation:   e.Rotation,
			Side:       side,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return NaturalLess(out[i].Designator, out[j].Designator)
	})
	return out
}
