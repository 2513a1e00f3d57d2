package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Text defaults
const (
	DefaultTextDistance = 50 // Line spacing in percent of the size
)

// Text is a free text item
type Text struct {
	Text     string
	X, Y     float64
	Size     float64
	Layer    int
	Font     Font
	Ratio    int // Stroke width in percent of the size
	Rotation float64
	Mirror   bool
	Spin     bool
	Align    Align
	Distance int
}

// NewText creates a bottom-left aligned proportional text
func NewText(text string, x, y, size float64, layer int) Text {
	t := Text{}
	t.Clear()
	t.Text = text
	t.X, t.Y = x, y
	t.Size = size
	t.Layer = layer
	return t
}

func (t *Text) Clear() {
	*t = Text{
		Size:     1,
		Layer:    1,
		Font:     FontProportional,
		Ratio:    DefaultTextRatio,
		Align:    AlignBottomLeft,
		Distance: DefaultTextDistance,
	}
}

func (t *Text) Clone() *Text     { c := *t; return &c }
func (t *Text) Assign(src *Text) { *t = *src.Clone() }

// SetRotation clamps the rotation to [0, 359.999]
func (t *Text) SetRotation(v float64) { t.Rotation = clampRotation(v) }

func (t *Text) transform() codec.Transform {
	return codec.Transform{Rotation: t.Rotation, Mirror: t.Mirror, Spin: t.Spin}
}

func (t *Text) Dump(w io.Writer, level int) {
	dumpf(w, level, "Text:{'%s', X=%s, Y=%s, Size=%s, Layer=%d, Font=%s, Ratio=%d, Rot=%s, Align=%s, Distance=%d}",
		t.Text, fmtf(t.X), fmtf(t.Y), fmtf(t.Size), t.Layer, t.Font, t.Ratio,
		codec.EncodeTransform(t.transform()), t.Align, t.Distance)
}

func (t *Text) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "text") {
		return false
	}
	r := codec.NewReader(el, warn)
	t.Text = r.Text()
	r.Float("x", &t.X)
	r.Float("y", &t.Y)
	r.Float("size", &t.Size)
	r.Int("layer", &t.Layer)
	codec.ReadEnum(r, "font", &t.Font, fontNames)
	r.Int("ratio", &t.Ratio)
	r.Transform("rot", &t.Rotation, &t.Mirror, &t.Spin)
	codec.ReadEnum(r, "align", &t.Align, alignNames)
	r.Int("distance", &t.Distance)
	return true
}

func (t *Text) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "text", writeDefaults)
	w.Float("x", t.X)
	w.Float("y", t.Y)
	w.Float("size", t.Size)
	w.Int("layer", t.Layer)
	codec.WriteEnum(w, "font", t.Font, FontProportional, fontNames)
	w.IntDefault("ratio", t.Ratio, DefaultTextRatio)
	w.Transform("rot", t.transform())
	codec.WriteEnum(w, "align", t.Align, AlignBottomLeft, alignNames)
	w.IntDefault("distance", t.Distance, DefaultTextDistance)
	w.Text(t.Text)
	return true
}

func (t *Text) Scale(factor float64) {
	t.X *= factor
	t.Y *= factor
	t.Size *= factor
}

// Label shows the name of a net or bus
type Label struct {
	X, Y     float64
	Size     float64
	Layer    int
	Font     Font
	Ratio    int
	Rotation float64 // 0, 90, 180 or 270
	Mirror   bool
	XRef     bool // Cross-reference label, only in <net> context
}

func (l *Label) Clear() {
	*l = Label{Size: 0.1, Layer: 1, Font: FontProportional, Ratio: DefaultTextRatio}
}

func (l *Label) Clone() *Label     { c := *l; return &c }
func (l *Label) Assign(src *Label) { *l = *src.Clone() }

// SetRotation snaps the rotation to the nearest quarter turn
func (l *Label) SetRotation(v float64) { l.Rotation = snapRotation(v) }

func (l *Label) Dump(w io.Writer, level int) {
	dumpf(w, level, "Label:{X=%s, Y=%s, Size=%s, Layer=%d, Font=%s, Ratio=%d, Rot=%s, XRef=%t}",
		fmtf(l.X), fmtf(l.Y), fmtf(l.Size), l.Layer, l.Font, l.Ratio,
		codec.EncodeTransform(codec.Transform{Rotation: l.Rotation, Mirror: l.Mirror}), l.XRef)
}

func (l *Label) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "label") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Float("x", &l.X)
	r.Float("y", &l.Y)
	r.Float("size", &l.Size)
	r.Int("layer", &l.Layer)
	codec.ReadEnum(r, "font", &l.Font, fontNames)
	r.Int("ratio", &l.Ratio)
	r.Transform("rot", &l.Rotation, &l.Mirror, nil)
	r.Bool("xref", &l.XRef)
	return true
}

func (l *Label) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "label", writeDefaults)
	w.Float("x", l.X)
	w.Float("y", l.Y)
	w.Float("size", l.Size)
	w.Int("layer", l.Layer)
	codec.WriteEnum(w, "font", l.Font, FontProportional, fontNames)
	w.IntDefault("ratio", l.Ratio, DefaultTextRatio)
	w.Transform("rot", codec.Transform{Rotation: l.Rotation, Mirror: l.Mirror})
	w.BoolDefault("xref", l.XRef, false)
	return true
}

func (l *Label) Scale(factor float64) {
	l.X *= factor
	l.Y *= factor
	l.Size *= factor
}

// Attribute is a named property of a part, element, instance or technology,
// optionally drawn as text
type Attribute struct {
	Name     string
	Value    string
	X, Y     float64
	Size     float64
	Layer    int
	Font     Font
	Ratio    int
	Rotation float64
	Mirror   bool
	Display  AttributeDisplay
	Constant bool
}

// NewAttribute creates a value-displaying attribute
func NewAttribute(name, value string) Attribute {
	a := Attribute{}
	a.Clear()
	a.Name = name
	a.Value = value
	return a
}

func (a *Attribute) Clear() {
	*a = Attribute{Size: 0.1, Layer: 1, Font: FontProportional, Ratio: DefaultTextRatio, Display: DisplayValue}
}

func (a *Attribute) Clone() *Attribute     { c := *a; return &c }
func (a *Attribute) Assign(src *Attribute) { *a = *src.Clone() }

// SetRotation clamps the rotation to [0, 359.999]
func (a *Attribute) SetRotation(v float64) { a.Rotation = clampRotation(v) }

func (a *Attribute) Dump(w io.Writer, level int) {
	dumpf(w, level, "Attribute:{Name='%s', Value='%s', X=%s, Y=%s, Size=%s, Layer=%d, Font=%s, Ratio=%d, Rot=%s, Display=%s, Constant=%t}",
		a.Name, a.Value, fmtf(a.X), fmtf(a.Y), fmtf(a.Size), a.Layer, a.Font, a.Ratio,
		codec.EncodeTransform(codec.Transform{Rotation: a.Rotation, Mirror: a.Mirror}), a.Display, a.Constant)
}

func (a *Attribute) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "attribute") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &a.Name)
	r.String("value", &a.Value)
	r.Float("x", &a.X)
	r.Float("y", &a.Y)
	r.Float("size", &a.Size)
	r.Int("layer", &a.Layer)
	codec.ReadEnum(r, "font", &a.Font, fontNames)
	r.Int("ratio", &a.Ratio)
	r.Transform("rot", &a.Rotation, &a.Mirror, nil)
	codec.ReadEnum(r, "display", &a.Display, attributeDisplayNames)
	r.Bool("constant", &a.Constant)
	return true
}

func (a *Attribute) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "attribute", writeDefaults)
	w.String("name", a.Name)
	w.StringOpt("value", a.Value)
	w.Float("x", a.X)
	w.Float("y", a.Y)
	w.Float("size", a.Size)
	w.Int("layer", a.Layer)
	codec.WriteEnum(w, "font", a.Font, FontProportional, fontNames)
	w.IntDefault("ratio", a.Ratio, DefaultTextRatio)
	w.Transform("rot", codec.Transform{Rotation: a.Rotation, Mirror: a.Mirror})
	codec.WriteEnum(w, "display", a.Display, DisplayValue, attributeDisplayNames)
	w.BoolDefault("constant", a.Constant, false)
	return true
}

func (a *Attribute) Scale(factor float64) {
	a.X *= factor
	a.Y *= factor
	a.Size *= factor
}

// findAttribute returns the attribute with the given name
func findAttribute(attrs []Attribute, name string) *Attribute {
	for i := range attrs {
		if attrs[i].Name == name {
			return &attrs[i]
		}
	}
	return nil
}
