package eagle

// Primitive is a drawable item owned by a Symbol, Package or Plain.
// The set of implementations is closed: *Wire, *Circle, *Rectangle, *Frame,
// *Hole, *Pad, *SMD, *Text, *Dimension, *Polygon and *Pin.
type Primitive interface {
	Entity
	Scaler
	primitive()
}

func (*Wire) primitive()      {}
func (*Circle) primitive()    {}
func (*Rectangle) primitive() {}
func (*Frame) primitive()     {}
func (*Hole) primitive()      {}
func (*Pad) primitive()       {}
func (*SMD) primitive()       {}
func (*Text) primitive()      {}
func (*Dimension) primitive() {}
func (*Polygon) primitive()   {}
func (*Pin) primitive()       {}

// appendPrimitives collects pointers to the items of a list
func appendPrimitives[T any, P interface {
	*T
	Primitive
}](out []Primitive, items []T) []Primitive {
	for i := range items {
		out = append(out, P(&items[i]))
	}
	return out
}

// shapeLists are the primitive lists shared by Symbol, Package and Plain
type shapeLists struct {
	polygons   *[]Polygon
	wires      *[]Wire
	texts      *[]Text
	dimensions *[]Dimension
	circles    *[]Circle
	rectangles *[]Rectangle
	frames     *[]Frame
}

// add copies a shared primitive into its list
func (s shapeLists) add(p Primitive) bool {
	switch v := p.(type) {
	case *Polygon:
		*s.polygons = append(*s.polygons, *v.Clone())
	case *Wire:
		*s.wires = append(*s.wires, *v)
	case *Text:
		*s.texts = append(*s.texts, *v)
	case *Dimension:
		*s.dimensions = append(*s.dimensions, *v)
	case *Circle:
		*s.circles = append(*s.circles, *v)
	case *Rectangle:
		*s.rectangles = append(*s.rectangles, *v)
	case *Frame:
		*s.frames = append(*s.frames, *v)
	default:
		return false
	}
	return true
}

// PrimitiveLayer returns the layer a primitive is drawn on. Holes, pads
// and pins have no layer attribute.
func PrimitiveLayer(p Primitive) (int, bool) {
	switch v := p.(type) {
	case *Wire:
		return v.Layer, true
	case *Circle:
		return v.Layer, true
	case *Rectangle:
		return v.Layer, true
	case *Frame:
		return v.Layer, true
	case *SMD:
		return v.Layer, true
	case *Text:
		return v.Layer, true
	case *Dimension:
		return v.Layer, true
	case *Polygon:
		return v.Layer, true
	}
	return 0, false
}
