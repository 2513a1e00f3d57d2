package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Plain holds the unconnected drawing items of a board or sheet
type Plain struct {
	Polygons   []Polygon
	Wires      []Wire
	Texts      []Text
	Dimensions []Dimension
	Circles    []Circle
	Rectangles []Rectangle
	Frames     []Frame
	Holes      []Hole
}

func (p *Plain) Clear() { *p = Plain{} }

func (p *Plain) Clone() *Plain {
	return &Plain{
		Polygons:   cloneList(p.Polygons),
		Wires:      cloneList(p.Wires),
		Texts:      cloneList(p.Texts),
		Dimensions: cloneList(p.Dimensions),
		Circles:    cloneList(p.Circles),
		Rectangles: cloneList(p.Rectangles),
		Frames:     cloneList(p.Frames),
		Holes:      cloneList(p.Holes),
	}
}

func (p *Plain) Assign(src *Plain) { *p = *src.Clone() }

// Add copies prim into the matching list; pins, pads and SMDs are rejected
func (p *Plain) Add(prim Primitive) bool {
	if h, ok := prim.(*Hole); ok {
		p.Holes = append(p.Holes, *h)
		return true
	}
	return shapeLists{&p.Polygons, &p.Wires, &p.Texts, &p.Dimensions, &p.Circles, &p.Rectangles, &p.Frames}.add(prim)
}

// Primitives returns pointers to every owned primitive in document order
func (p *Plain) Primitives() []Primitive {
	var out []Primitive
	out = appendPrimitives(out, p.Polygons)
	out = appendPrimitives(out, p.Wires)
	out = appendPrimitives(out, p.Texts)
	out = appendPrimitives(out, p.Dimensions)
	out = appendPrimitives(out, p.Circles)
	out = appendPrimitives(out, p.Rectangles)
	out = appendPrimitives(out, p.Frames)
	out = appendPrimitives(out, p.Holes)
	return out
}

// IsEmpty reports whether the plain owns no primitives
func (p *Plain) IsEmpty() bool {
	return len(p.Primitives()) == 0
}

func (p *Plain) Dump(w io.Writer, level int) {
	dumpf(w, level, "Plain:{}")
	dumpList(w, level+1, "Polygons", p.Polygons)
	dumpList(w, level+1, "Wires", p.Wires)
	dumpList(w, level+1, "Texts", p.Texts)
	dumpList(w, level+1, "Dimensions", p.Dimensions)
	dumpList(w, level+1, "Circles", p.Circles)
	dumpList(w, level+1, "Rectangles", p.Rectangles)
	dumpList(w, level+1, "Frames", p.Frames)
	dumpList(w, level+1, "Holes", p.Holes)
}

func (p *Plain) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "plain") {
		return false
	}
	p.Polygons = parseList[Polygon](el, "polygon", warn)
	p.Wires = parseList[Wire](el, "wire", warn)
	p.Texts = parseList[Text](el, "text", warn)
	p.Dimensions = parseList[Dimension](el, "dimension", warn)
	p.Circles = parseList[Circle](el, "circle", warn)
	p.Rectangles = parseList[Rectangle](el, "rectangle", warn)
	p.Frames = parseList[Frame](el, "frame", warn)
	p.Holes = parseList[Hole](el, "hole", warn)
	return true
}

func (p *Plain) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	el := parent.CreateElement("plain")
	serializeList(el, p.Polygons, writeDefaults)
	serializeList(el, p.Wires, writeDefaults)
	serializeList(el, p.Texts, writeDefaults)
	serializeList(el, p.Dimensions, writeDefaults)
	serializeList(el, p.Circles, writeDefaults)
	serializeList(el, p.Rectangles, writeDefaults)
	serializeList(el, p.Frames, writeDefaults)
	serializeList(el, p.Holes, writeDefaults)
	return true
}

func (p *Plain) Scale(factor float64) {
	scaleList(p.Polygons, factor)
	scaleList(p.Wires, factor)
	scaleList(p.Texts, factor)
	scaleList(p.Dimensions, factor)
	scaleList(p.Circles, factor)
	scaleList(p.Rectangles, factor)
	scaleList(p.Frames, factor)
	scaleList(p.Holes, factor)
}
