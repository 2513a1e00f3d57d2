package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Segment is one connected piece of a net or bus
type Segment struct {
	PinRefs   []PinRef
	Wires     []Wire
	Junctions []Junction
	Labels    []Label
}

func (s *Segment) Clear() { *s = Segment{} }

func (s *Segment) Clone() *Segment {
	return &Segment{
		PinRefs:   cloneList(s.PinRefs),
		Wires:     cloneList(s.Wires),
		Junctions: cloneList(s.Junctions),
		Labels:    cloneList(s.Labels),
	}
}

func (s *Segment) Assign(src *Segment) { *s = *src.Clone() }

func (s *Segment) Dump(w io.Writer, level int) {
	dumpf(w, level, "Segment:{}")
	dumpList(w, level+1, "PinRefs", s.PinRefs)
	dumpList(w, level+1, "Wires", s.Wires)
	dumpList(w, level+1, "Junctions", s.Junctions)
	dumpList(w, level+1, "Labels", s.Labels)
}

func (s *Segment) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "segment") {
		return false
	}
	s.PinRefs = parseList[PinRef](el, "pinref", warn)
	s.Wires = parseList[Wire](el, "wire", warn)
	s.Junctions = parseList[Junction](el, "junction", warn)
	s.Labels = parseList[Label](el, "label", warn)
	return true
}

func (s *Segment) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	el := parent.CreateElement("segment")
	serializeList(el, s.PinRefs, writeDefaults)
	serializeList(el, s.Wires, writeDefaults)
	serializeList(el, s.Junctions, writeDefaults)
	serializeList(el, s.Labels, writeDefaults)
	return true
}

func (s *Segment) Scale(factor float64) {
	scaleList(s.Wires, factor)
	scaleList(s.Junctions, factor)
	scaleList(s.Labels, factor)
}

// Net is a named schematic connection
type Net struct {
	Name     string
	Class    int
	Segments []Segment
}

func (n *Net) Clear() { *n = Net{} }

func (n *Net) Clone() *Net {
	c := *n
	c.Segments = cloneList(n.Segments)
	return &c
}

func (n *Net) Assign(src *Net) { *n = *src.Clone() }

// PinRefs returns the pin references of every segment
func (n *Net) PinRefs() []PinRef {
	var out []PinRef
	for _, s := range n.Segments {
		out = append(out, s.PinRefs...)
	}
	return out
}

func (n *Net) Dump(w io.Writer, level int) {
	dumpf(w, level, "Net:{Name='%s', Class=%d}", n.Name, n.Class)
	dumpList(w, level+1, "Segments", n.Segments)
}

func (n *Net) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "net") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &n.Name)
	r.Int("class", &n.Class)
	n.Segments = parseList[Segment](el, "segment", warn)
	return true
}

func (n *Net) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "net", writeDefaults)
	w.String("name", n.Name)
	w.IntDefault("class", n.Class, 0)
	serializeList(w.Element(), n.Segments, writeDefaults)
	return true
}

func (n *Net) Scale(factor float64) {
	scaleList(n.Segments, factor)
}

// Bus is a named bundle of nets
type Bus struct {
	Name     string // Member list such as "D[0..7],CLK"
	Segments []Segment
}

func (b *Bus) Clear() { *b = Bus{} }

func (b *Bus) Clone() *Bus {
	c := *b
	c.Segments = cloneList(b.Segments)
	return &c
}

func (b *Bus) Assign(src *Bus) { *b = *src.Clone() }

func (b *Bus) Dump(w io.Writer, level int) {
	dumpf(w, level, "Bus:{Name='%s'}", b.Name)
	dumpList(w, level+1, "Segments", b.Segments)
}

func (b *Bus) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "bus") {
		return false
	}
	codec.NewReader(el, warn).String("name", &b.Name)
	b.Segments = parseList[Segment](el, "segment", warn)
	return true
}

func (b *Bus) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "bus", writeDefaults)
	w.String("name", b.Name)
	serializeList(w.Element(), b.Segments, writeDefaults)
	return true
}

func (b *Bus) Scale(factor float64) {
	scaleList(b.Segments, factor)
}

// Signal is a named board connection with its copper
type Signal struct {
	Name           string
	Class          int
	AirwiresHidden bool
	ContactRefs    []ContactRef
	Polygons       []Polygon
	Wires          []Wire
	Vias           []Via
}

func (s *Signal) Clear() { *s = Signal{} }

func (s *Signal) Clone() *Signal {
	c := *s
	c.ContactRefs = cloneList(s.ContactRefs)
	c.Polygons = cloneList(s.Polygons)
	c.Wires = cloneList(s.Wires)
	c.Vias = cloneList(s.Vias)
	return &c
}

func (s *Signal) Assign(src *Signal) { *s = *src.Clone() }

// RoutedLength returns the summed length of the signal's copper wires
func (s *Signal) RoutedLength() float64 {
	var total float64
	for i := range s.Wires {
		if IsCopperLayer(s.Wires[i].Layer) {
			total += s.Wires[i].Length()
		}
	}
	return total
}

func (s *Signal) Dump(w io.Writer, level int) {
	dumpf(w, level, "Signal:{Name='%s', Class=%d, AirwiresHidden=%t}", s.Name, s.Class, s.AirwiresHidden)
	dumpList(w, level+1, "ContactRefs", s.ContactRefs)
	dumpList(w, level+1, "Polygons", s.Polygons)
	dumpList(w, level+1, "Wires", s.Wires)
	dumpList(w, level+1, "Vias", s.Vias)
}

func (s *Signal) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "signal") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &s.Name)
	r.Int("class", &s.Class)
	r.Bool("airwireshidden", &s.AirwiresHidden)
	s.ContactRefs = parseList[ContactRef](el, "contactref", warn)
	s.Polygons = parseList[Polygon](el, "polygon", warn)
	s.Wires = parseList[Wire](el, "wire", warn)
	s.Vias = parseList[Via](el, "via", warn)
	return true
}

func (s *Signal) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "signal", writeDefaults)
	w.String("name", s.Name)
	w.IntDefault("class", s.Class, 0)
	w.BoolDefault("airwireshidden", s.AirwiresHidden, false)
	el := w.Element()
	serializeList(el, s.ContactRefs, writeDefaults)
	serializeList(el, s.Polygons, writeDefaults)
	serializeList(el, s.Wires, writeDefaults)
	serializeList(el, s.Vias, writeDefaults)
	return true
}

func (s *Signal) Scale(factor float64) {
	scaleList(s.Polygons, factor)
	scaleList(s.Wires, factor)
	scaleList(s.Vias, factor)
}
