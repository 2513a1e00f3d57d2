package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Part is a component of a schematic
type Part struct {
	Name       string
	Library    string
	DeviceSet  string
	Device     string
	Technology string
	Value      string
	Attributes []Attribute
	Variants   []Variant
}

func (p *Part) Clear() { *p = Part{} }

func (p *Part) Clone() *Part {
	c := *p
	c.Attributes = cloneList(p.Attributes)
	c.Variants = cloneList(p.Variants)
	return &c
}

func (p *Part) Assign(src *Part) { *p = *src.Clone() }

// Attribute returns the named attribute of the part
func (p *Part) Attribute(name string) *Attribute {
	return findAttribute(p.Attributes, name)
}

func (p *Part) Dump(w io.Writer, level int) {
	dumpf(w, level, "Part:{Name='%s', Library='%s', DeviceSet='%s', Device='%s', Technology='%s', Value='%s'}",
		p.Name, p.Library, p.DeviceSet, p.Device, p.Technology, p.Value)
	dumpList(w, level+1, "Attributes", p.Attributes)
	dumpList(w, level+1, "Variants", p.Variants)
}

func (p *Part) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "part") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &p.Name)
	r.String("library", &p.Library)
	r.String("deviceset", &p.DeviceSet)
	r.String("device", &p.Device)
	r.String("technology", &p.Technology)
	r.String("value", &p.Value)
	p.Attributes = parseList[Attribute](el, "attribute", warn)
	p.Variants = parseList[Variant](el, "variant", warn)
	return true
}

func (p *Part) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "part", writeDefaults)
	w.String("name", p.Name)
	w.String("library", p.Library)
	w.String("deviceset", p.DeviceSet)
	w.String("device", p.Device)
	w.StringOpt("technology", p.Technology)
	w.StringOpt("value", p.Value)
	serializeList(w.Element(), p.Attributes, writeDefaults)
	serializeList(w.Element(), p.Variants, writeDefaults)
	return true
}

// Scale scales the attribute texts; a part has no position of its own
func (p *Part) Scale(factor float64) {
	scaleList(p.Attributes, factor)
}

// Instance places one gate of a part on a sheet
type Instance struct {
	Part       string
	Gate       string
	X, Y       float64
	Smashed    bool
	Rotation   float64 // 0, 90, 180 or 270
	Mirror     bool
	Spin       bool
	Attributes []Attribute
}

func (i *Instance) Clear() { *i = Instance{} }

func (i *Instance) Clone() *Instance {
	c := *i
	c.Attributes = cloneList(i.Attributes)
	return &c
}

func (i *Instance) Assign(src *Instance) { *i = *src.Clone() }

// SetRotation snaps the rotation to the nearest quarter turn
func (i *Instance) SetRotation(v float64) { i.Rotation = snapRotation(v) }

func (i *Instance) transform() codec.Transform {
	return codec.Transform{Rotation: i.Rotation, Mirror: i.Mirror, Spin: i.Spin}
}

func (i *Instance) Dump(w io.Writer, level int) {
	dumpf(w, level, "Instance:{Part='%s', Gate='%s', X=%s, Y=%s, Smashed=%t, Rot=%s}",
		i.Part, i.Gate, fmtf(i.X), fmtf(i.Y), i.Smashed, codec.EncodeTransform(i.transform()))
	dumpList(w, level+1, "Attributes", i.Attributes)
}

func (i *Instance) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "instance") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("part", &i.Part)
	r.String("gate", &i.Gate)
	r.Float("x", &i.X)
	r.Float("y", &i.Y)
	r.Bool("smashed", &i.Smashed)
	r.Transform("rot", &i.Rotation, &i.Mirror, &i.Spin)
	i.Attributes = parseList[Attribute](el, "attribute", warn)
	return true
}

func (i *Instance) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "instance", writeDefaults)
	w.String("part", i.Part)
	w.String("gate", i.Gate)
	w.Float("x", i.X)
	w.Float("y", i.Y)
	w.BoolDefault("smashed", i.Smashed, false)
	w.Transform("rot", i.transform())
	serializeList(w.Element(), i.Attributes, writeDefaults)
	return true
}

func (i *Instance) Scale(factor float64) {
	i.X *= factor
	i.Y *= factor
	scaleList(i.Attributes, factor)
}

// Element is a placed package on a board
type Element struct {
	Name       string
	Library    string
	Package    string
	Value      string
	X, Y       float64
	Locked     bool
	Smashed    bool
	Rotation   float64
	Mirror     bool // Placed on the bottom side
	Attributes []Attribute
	Variants   []Variant
}

// NewElement creates an unrotated top-side element
func NewElement(name, library, pkg, value string, x, y float64) Element {
	return Element{Name: name, Library: library, Package: pkg, Value: value, X: x, Y: y}
}

func (e *Element) Clear() { *e = Element{} }

func (e *Element) Clone() *Element {
	c := *e
	c.Attributes = cloneList(e.Attributes)
	c.Variants = cloneList(e.Variants)
	return &c
}

func (e *Element) Assign(src *Element) { *e = *src.Clone() }

// SetRotation clamps the rotation to [0, 359.999]
func (e *Element) SetRotation(v float64) { e.Rotation = clampRotation(v) }

// Attribute returns the named attribute of the element
func (e *Element) Attribute(name string) *Attribute {
	return findAttribute(e.Attributes, name)
}

func (e *Element) transform() codec.Transform {
	return codec.Transform{Rotation: e.Rotation, Mirror: e.Mirror}
}

func (e *Element) Dump(w io.Writer, level int) {
	dumpf(w, level, "Element:{Name='%s', Library='%s', Package='%s', Value='%s', X=%s, Y=%s, Locked=%t, Smashed=%t, Rot=%s}",
		e.Name, e.Library, e.Package, e.Value, fmtf(e.X), fmtf(e.Y), e.Locked, e.Smashed, codec.EncodeTransform(e.transform()))
	dumpList(w, level+1, "Attributes", e.Attributes)
	dumpList(w, level+1, "Variants", e.Variants)
}

func (e *Element) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "element") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &e.Name)
	r.String("library", &e.Library)
	r.String("package", &e.Package)
	r.String("value", &e.Value)
	r.Float("x", &e.X)
	r.Float("y", &e.Y)
	r.Bool("locked", &e.Locked)
	r.Bool("smashed", &e.Smashed)
	r.Transform("rot", &e.Rotation, &e.Mirror, nil)
	e.Attributes = parseList[Attribute](el, "attribute", warn)
	e.Variants = parseList[Variant](el, "variant", warn)
	return true
}

func (e *Element) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "element", writeDefaults)
	w.String("name", e.Name)
	w.String("library", e.Library)
	w.String("package", e.Package)
	w.String("value", e.Value)
	w.Float("x", e.X)
	w.Float("y", e.Y)
	w.BoolDefault("locked", e.Locked, false)
	w.BoolDefault("smashed", e.Smashed, false)
	w.Transform("rot", e.transform())
	serializeList(w.Element(), e.Attributes, writeDefaults)
	serializeList(w.Element(), e.Variants, writeDefaults)
	return true
}

func (e *Element) Scale(factor float64) {
	e.X *= factor
	e.Y *= factor
	scaleList(e.Attributes, factor)
}
