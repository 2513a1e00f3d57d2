package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Symbol is the schematic representation of a gate
type Symbol struct {
	Name        string
	Description Description
	Polygons    []Polygon
	Wires       []Wire
	Texts       []Text
	Dimensions  []Dimension
	Pins        []Pin
	Circles     []Circle
	Rectangles  []Rectangle
	Frames      []Frame
}

func (s *Symbol) Clear() {
	*s = Symbol{}
	s.Description.Clear()
}

func (s *Symbol) Clone() *Symbol {
	c := *s
	c.Polygons = cloneList(s.Polygons)
	c.Wires = cloneList(s.Wires)
	c.Texts = cloneList(s.Texts)
	c.Dimensions = cloneList(s.Dimensions)
	c.Pins = cloneList(s.Pins)
	c.Circles = cloneList(s.Circles)
	c.Rectangles = cloneList(s.Rectangles)
	c.Frames = cloneList(s.Frames)
	return &c
}

func (s *Symbol) Assign(src *Symbol) { *s = *src.Clone() }

func (s *Symbol) shapes() shapeLists {
	return shapeLists{&s.Polygons, &s.Wires, &s.Texts, &s.Dimensions, &s.Circles, &s.Rectangles, &s.Frames}
}

// Add copies p into the matching list; holes, pads and SMDs are rejected
func (s *Symbol) Add(p Primitive) bool {
	if pin, ok := p.(*Pin); ok {
		s.Pins = append(s.Pins, *pin)
		return true
	}
	return s.shapes().add(p)
}

// Primitives returns pointers to every owned primitive in document order.
// They stay valid until one of the lists is grown.
func (s *Symbol) Primitives() []Primitive {
	var out []Primitive
	out = appendPrimitives(out, s.Polygons)
	out = appendPrimitives(out, s.Wires)
	out = appendPrimitives(out, s.Texts)
	out = appendPrimitives(out, s.Dimensions)
	out = appendPrimitives(out, s.Pins)
	out = appendPrimitives(out, s.Circles)
	out = appendPrimitives(out, s.Rectangles)
	out = appendPrimitives(out, s.Frames)
	return out
}

// FindPin returns the named pin
func (s *Symbol) FindPin(name string) *Pin {
	for i := range s.Pins {
		if s.Pins[i].Name == name {
			return &s.Pins[i]
		}
	}
	return nil
}

func (s *Symbol) Dump(w io.Writer, level int) {
	dumpf(w, level, "Symbol:{Name='%s'}", s.Name)
	s.Description.Dump(w, level+1)
	dumpList(w, level+1, "Polygons", s.Polygons)
	dumpList(w, level+1, "Wires", s.Wires)
	dumpList(w, level+1, "Texts", s.Texts)
	dumpList(w, level+1, "Dimensions", s.Dimensions)
	dumpList(w, level+1, "Pins", s.Pins)
	dumpList(w, level+1, "Circles", s.Circles)
	dumpList(w, level+1, "Rectangles", s.Rectangles)
	dumpList(w, level+1, "Frames", s.Frames)
}

func (s *Symbol) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "symbol") {
		return false
	}
	codec.NewReader(el, warn).String("name", &s.Name)
	s.Description.Parse(el.SelectElement("description"), warn)
	s.Polygons = parseList[Polygon](el, "polygon", warn)
	s.Wires = parseList[Wire](el, "wire", warn)
	s.Texts = parseList[Text](el, "text", warn)
	s.Dimensions = parseList[Dimension](el, "dimension", warn)
	s.Pins = parseList[Pin](el, "pin", warn)
	s.Circles = parseList[Circle](el, "circle", warn)
	s.Rectangles = parseList[Rectangle](el, "rectangle", warn)
	s.Frames = parseList[Frame](el, "frame", warn)
	return true
}

func (s *Symbol) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "symbol", writeDefaults)
	w.String("name", s.Name)
	el := w.Element()
	s.Description.Serialize(el, writeDefaults)
	serializeList(el, s.Polygons, writeDefaults)
	serializeList(el, s.Wires, writeDefaults)
	serializeList(el, s.Texts, writeDefaults)
	serializeList(el, s.Dimensions, writeDefaults)
	serializeList(el, s.Pins, writeDefaults)
	serializeList(el, s.Circles, writeDefaults)
	serializeList(el, s.Rectangles, writeDefaults)
	serializeList(el, s.Frames, writeDefaults)
	return true
}

func (s *Symbol) Scale(factor float64) {
	scaleList(s.Polygons, factor)
	scaleList(s.Wires, factor)
	scaleList(s.Texts, factor)
	scaleList(s.Dimensions, factor)
	scaleList(s.Pins, factor)
	scaleList(s.Circles, factor)
	scaleList(s.Rectangles, factor)
	scaleList(s.Frames, factor)
}

// Package is the board footprint of a device
type Package struct {
	Name        string
	Description Description
	Polygons    []Polygon
	Wires       []Wire
	Texts       []Text
	Dimensions  []Dimension
	Circles     []Circle
	Rectangles  []Rectangle
	Frames      []Frame
	Holes       []Hole
	Pads        []Pad
	SMDs        []SMD
}

func (p *Package) Clear() {
	*p = Package{}
	p.Description.Clear()
}

func (p *Package) Clone() *Package {
	c := *p
	c.Polygons = cloneList(p.Polygons)
	c.Wires = cloneList(p.Wires)
	c.Texts = cloneList(p.Texts)
	c.Dimensions = cloneList(p.Dimensions)
	c.Circles = cloneList(p.Circles)
	c.Rectangles = cloneList(p.Rectangles)
	c.Frames = cloneList(p.Frames)
	c.Holes = cloneList(p.Holes)
	c.Pads = cloneList(p.Pads)
	c.SMDs = cloneList(p.SMDs)
	return &c
}

func (p *Package) Assign(src *Package) { *p = *src.Clone() }

func (p *Package) shapes() shapeLists {
	return shapeLists{&p.Polygons, &p.Wires, &p.Texts, &p.Dimensions, &p.Circles, &p.Rectangles, &p.Frames}
}

// Add copies prim into the matching list; pins are rejected
func (p *Package) Add(prim Primitive) bool {
	switch v := prim.(type) {
	case *Hole:
		p.Holes = append(p.Holes, *v)
	case *Pad:
		p.Pads = append(p.Pads, *v)
	case *SMD:
		p.SMDs = append(p.SMDs, *v)
	default:
		return p.shapes().add(prim)
	}
	return true
}

// Primitives returns pointers to every owned primitive in document order
func (p *Package) Primitives() []Primitive {
	var out []Primitive
	out = appendPrimitives(out, p.Polygons)
	out = appendPrimitives(out, p.Wires)
	out = appendPrimitives(out, p.Texts)
	out = appendPrimitives(out, p.Dimensions)
	out = appendPrimitives(out, p.Circles)
	out = appendPrimitives(out, p.Rectangles)
	out = appendPrimitives(out, p.Frames)
	out = appendPrimitives(out, p.Holes)
	out = appendPrimitives(out, p.Pads)
	out = appendPrimitives(out, p.SMDs)
	return out
}

// PadNames returns the names of all pads and SMDs
func (p *Package) PadNames() []string {
	names := make([]string, 0, len(p.Pads)+len(p.SMDs))
	for _, pad := range p.Pads {
		names = append(names, pad.Name)
	}
	for _, smd := range p.SMDs {
		names = append(names, smd.Name)
	}
	return names
}

func (p *Package) Dump(w io.Writer, level int) {
	dumpf(w, level, "Package:{Name='%s'}", p.Name)
	p.Description.Dump(w, level+1)
	dumpList(w, level+1, "Polygons", p.Polygons)
	dumpList(w, level+1, "Wires", p.Wires)
	dumpList(w, level+1, "Texts", p.Texts)
	dumpList(w, level+1, "Dimensions", p.Dimensions)
	dumpList(w, level+1, "Circles", p.Circles)
	dumpList(w, level+1, "Rectangles", p.Rectangles)
	dumpList(w, level+1, "Frames", p.Frames)
	dumpList(w, level+1, "Holes", p.Holes)
	dumpList(w, level+1, "Pads", p.Pads)
	dumpList(w, level+1, "SMDs", p.SMDs)
}

func (p *Package) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "package") {
		return false
	}
	codec.NewReader(el, warn).String("name", &p.Name)
	p.Description.Parse(el.SelectElement("description"), warn)
	p.Polygons = parseList[Polygon](el, "polygon", warn)
	p.Wires = parseList[Wire](el, "wire", warn)
	p.Texts = parseList[Text](el, "text", warn)
	p.Dimensions = parseList[Dimension](el, "dimension", warn)
	p.Circles = parseList[Circle](el, "circle", warn)
	p.Rectangles = parseList[Rectangle](el, "rectangle", warn)
	p.Frames = parseList[Frame](el, "frame", warn)
	p.Holes = parseList[Hole](el, "hole", warn)
	p.Pads = parseList[Pad](el, "pad", warn)
	p.SMDs = parseList[SMD](el, "smd", warn)
	return true
}

func (p *Package) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "package", writeDefaults)
	w.String("name", p.Name)
	el := w.Element()
	p.Description.Serialize(el, writeDefaults)
	serializeList(el, p.Polygons, writeDefaults)
	serializeList(el, p.Wires, writeDefaults)
	serializeList(el, p.Texts, writeDefaults)
	serializeList(el, p.Dimensions, writeDefaults)
	serializeList(el, p.Circles, writeDefaults)
	serializeList(el, p.Rectangles, writeDefaults)
	serializeList(el, p.Frames, writeDefaults)
	serializeList(el, p.Holes, writeDefaults)
	serializeList(el, p.Pads, writeDefaults)
	serializeList(el, p.SMDs, writeDefaults)
	return true
}

func (p *Package) Scale(factor float64) {
	scaleList(p.Polygons, factor)
	scaleList(p.Wires, factor)
	scaleList(p.Texts, factor)
	scaleList(p.Dimensions, factor)
	scaleList(p.Circles, factor)
	scaleList(p.Rectangles, factor)
	scaleList(p.Frames, factor)
	scaleList(p.Holes, factor)
	scaleList(p.Pads, factor)
	scaleList(p.SMDs, factor)
}

// Device binds a device set's gates to a package
type Device struct {
	Name         string
	Package      string
	Connects     []Connect
	Technologies []Technology
}

func (d *Device) Clear() { *d = Device{} }

func (d *Device) Clone() *Device {
	c := *d
	c.Connects = cloneList(d.Connects)
	c.Technologies = cloneList(d.Technologies)
	return &c
}

func (d *Device) Assign(src *Device) { *d = *src.Clone() }

// FindConnect returns the connect of a gate pin
func (d *Device) FindConnect(gate, pin string) *Connect {
	for i := range d.Connects {
		if d.Connects[i].Gate == gate && d.Connects[i].Pin == pin {
			return &d.Connects[i]
		}
	}
	return nil
}

// FindTechnology returns the named technology
func (d *Device) FindTechnology(name string) *Technology {
	for i := range d.Technologies {
		if d.Technologies[i].Name == name {
			return &d.Technologies[i]
		}
	}
	return nil
}

func (d *Device) Dump(w io.Writer, level int) {
	dumpf(w, level, "Device:{Name='%s', Package='%s'}", d.Name, d.Package)
	dumpList(w, level+1, "Connects", d.Connects)
	dumpList(w, level+1, "Technologies", d.Technologies)
}

func (d *Device) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "device") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &d.Name)
	r.String("package", &d.Package)
	d.Connects = parseWrapped[Connect](el, "connects", "connect", warn)
	d.Technologies = parseWrapped[Technology](el, "technologies", "technology", warn)
	return true
}

func (d *Device) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "device", writeDefaults)
	w.String("name", d.Name)
	w.StringOpt("package", d.Package)
	serializeList(w.Child("connects"), d.Connects, writeDefaults)
	serializeList(w.Child("technologies"), d.Technologies, writeDefaults)
	return true
}

// Scale scales the technology attributes
func (d *Device) Scale(factor float64) {
	scaleList(d.Technologies, factor)
}

// DeviceSet groups the package variants of one component
type DeviceSet struct {
	Name        string
	Prefix      string // Designator prefix such as "R" or "IC"
	UserValue   bool
	Description Description
	Gates       []Gate
	Devices     []Device
}

func (d *DeviceSet) Clear() {
	*d = DeviceSet{}
	d.Description.Clear()
}

func (d *DeviceSet) Clone() *DeviceSet {
	c := *d
	c.Gates = cloneList(d.Gates)
	c.Devices = cloneList(d.Devices)
	return &c
}

func (d *DeviceSet) Assign(src *DeviceSet) { *d = *src.Clone() }

// FindGate returns the named gate
func (d *DeviceSet) FindGate(name string) *Gate {
	for i := range d.Gates {
		if d.Gates[i].Name == name {
			return &d.Gates[i]
		}
	}
	return nil
}

// FindDevice returns the named device; the unnamed device is "" in Eagle
func (d *DeviceSet) FindDevice(name string) *Device {
	for i := range d.Devices {
		if d.Devices[i].Name == name {
			return &d.Devices[i]
		}
	}
	return nil
}

func (d *DeviceSet) Dump(w io.Writer, level int) {
	dumpf(w, level, "DeviceSet:{Name='%s', Prefix='%s', UserValue=%t}", d.Name, d.Prefix, d.UserValue)
	d.Description.Dump(w, level+1)
	dumpList(w, level+1, "Gates", d.Gates)
	dumpList(w, level+1, "Devices", d.Devices)
}

func (d *DeviceSet) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "deviceset") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &d.Name)
	r.String("prefix", &d.Prefix)
	r.Bool("uservalue", &d.UserValue)
	d.Description.Parse(el.SelectElement("description"), warn)
	d.Gates = parseWrapped[Gate](el, "gates", "gate", warn)
	d.Devices = parseWrapped[Device](el, "devices", "device", warn)
	return true
}

func (d *DeviceSet) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "deviceset", writeDefaults)
	w.String("name", d.Name)
	w.StringOpt("prefix", d.Prefix)
	w.BoolDefault("uservalue", d.UserValue, false)
	d.Description.Serialize(w.Element(), writeDefaults)
	serializeList(w.Child("gates"), d.Gates, writeDefaults)
	serializeList(w.Child("devices"), d.Devices, writeDefaults)
	return true
}

// Scale moves the gates and scales the technology attributes
func (d *DeviceSet) Scale(factor float64) {
	scaleList(d.Gates, factor)
	scaleList(d.Devices, factor)
}
