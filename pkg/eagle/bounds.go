package eagle

import "math"

// Point is a position in drawing units
type Point struct {
	X, Y float64
}

// BoundingBox represents a rectangular boundary
type BoundingBox struct {
	Min Point
	Max Point
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty checks if the bounding box is empty
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand expands the bounding box to include a position
func (bb *BoundingBox) Expand(p Point) {
	bb.Min.X = min(bb.Min.X, p.X)
	bb.Min.Y = min(bb.Min.Y, p.Y)
	bb.Max.X = max(bb.Max.X, p.X)
	bb.Max.Y = max(bb.Max.Y, p.Y)
}

// expandRadius includes the square around a centre point
func (bb *BoundingBox) expandRadius(x, y, r float64) {
	bb.Expand(Point{X: x - r, Y: y - r})
	bb.Expand(Point{X: x + r, Y: y + r})
}

// ExpandBox expands to include another bounding box
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Contains checks if a position is within the bounding box
func (bb BoundingBox) Contains(p Point) bool {
	return p.X >= bb.Min.X && p.X <= bb.Max.X &&
		p.Y >= bb.Min.Y && p.Y <= bb.Max.Y
}

// Intersects checks if two bounding boxes intersect
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	return bb.Min.X <= other.Max.X && bb.Max.X >= other.Min.X &&
		bb.Min.Y <= other.Max.Y && bb.Max.Y >= other.Min.Y
}

func (bb BoundingBox) Width() float64  { return bb.Max.X - bb.Min.X }
func (bb BoundingBox) Height() float64 { return bb.Max.Y - bb.Min.Y }

// Center returns the center point of the bounding box
func (bb BoundingBox) Center() Point {
	return Point{X: (bb.Min.X + bb.Max.X) / 2, Y: (bb.Min.Y + bb.Max.Y) / 2}
}

// Bounds returns the extent of the primitives, approximating arcs by
// their end points and texts by their anchor
func Bounds(prims []Primitive) BoundingBox {
	bb := NewBoundingBox()
	for _, p := range prims {
		switch v := p.(type) {
		case *Wire:
			half := v.Width / 2
			bb.expandRadius(v.X1, v.Y1, half)
			bb.expandRadius(v.X2, v.Y2, half)
		case *Circle:
			bb.expandRadius(v.X, v.Y, v.Radius+v.Width/2)
		case *Rectangle:
			bb.Expand(Point{X: v.X1, Y: v.Y1})
			bb.Expand(Point{X: v.X2, Y: v.Y2})
		case *Frame:
			bb.Expand(Point{X: v.X1, Y: v.Y1})
			bb.Expand(Point{X: v.X2, Y: v.Y2})
		case *Hole:
			bb.expandRadius(v.X, v.Y, v.Drill/2)
		case *Pad:
			bb.expandRadius(v.X, v.Y, max(v.Diameter, v.Drill)/2)
		case *SMD:
			bb.Expand(Point{X: v.X - v.DX/2, Y: v.Y - v.DY/2})
			bb.Expand(Point{X: v.X + v.DX/2, Y: v.Y + v.DY/2})
		case *Text:
			bb.Expand(Point{X: v.X, Y: v.Y})
		case *Dimension:
			bb.Expand(Point{X: v.X1, Y: v.Y1})
			bb.Expand(Point{X: v.X2, Y: v.Y2})
		case *Polygon:
			for _, vx := range v.Vertices {
				bb.Expand(Point{X: vx.X, Y: vx.Y})
			}
		case *Pin:
			bb.Expand(Point{X: v.X, Y: v.Y})
		}
	}
	return bb
}

// Bounds returns the extent of the package outline and pads
func (p *Package) Bounds() BoundingBox {
	return Bounds(p.Primitives())
}

// Bounds returns the extent of the symbol
func (s *Symbol) Bounds() BoundingBox {
	return Bounds(s.Primitives())
}

// TransformPoint maps a package-relative point to board coordinates
func (e *Element) TransformPoint(p Point) Point {
	x, y := p.X, p.Y
	if e.Mirror {
		x = -x
	}
	if e.Rotation != 0 {
		rad := degToRad(e.Rotation)
		cos, sin := math.Cos(rad), math.Sin(rad)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return Point{X: x + e.X, Y: y + e.Y}
}

// Bounds calculates the extent of the board: board outline and plain
// items, signal copper, and element packages at their placement.
func (b *Board) Bounds() BoundingBox {
	bb := Bounds(b.Plain.Primitives())
	for i := range b.Signals {
		s := &b.Signals[i]
		for j := range s.Wires {
			bb.ExpandBox(Bounds([]Primitive{&s.Wires[j]}))
		}
		for j := range s.Polygons {
			bb.ExpandBox(Bounds([]Primitive{&s.Polygons[j]}))
		}
		for _, v := range s.Vias {
			bb.expandRadius(v.X, v.Y, max(v.Diameter, v.Drill)/2)
		}
	}
	for i := range b.Elements {
		e := &b.Elements[i]
		pkg := b.ElementPackage(e)
		if pkg == nil {
			bb.Expand(Point{X: e.X, Y: e.Y})
			continue
		}
		local := pkg.Bounds()
		if local.IsEmpty() {
			bb.Expand(Point{X: e.X, Y: e.Y})
			continue
		}
		for _, c := range []Point{local.Min, local.Max, {X: local.Min.X, Y: local.Max.Y}, {X: local.Max.X, Y: local.Min.Y}} {
			bb.Expand(e.TransformPoint(c))
		}
	}
	return bb
}
