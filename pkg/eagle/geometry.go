package eagle

import (
	"io"
	"math"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Vertex is one corner of a polygon
type Vertex struct {
	X, Y  float64
	Curve float64 // Arc angle to the next vertex, -359.9..359.9
}

// NewVertex creates a straight vertex
func NewVertex(x, y float64) Vertex {
	return Vertex{X: x, Y: y}
}

func (v *Vertex) Clear()             { *v = Vertex{} }
func (v *Vertex) Clone() *Vertex     { c := *v; return &c }
func (v *Vertex) Assign(src *Vertex) { *v = *src.Clone() }

func (v *Vertex) Dump(w io.Writer, level int) {
	dumpf(w, level, "Vertex:{X=%s, Y=%s, Curve=%s}", fmtf(v.X), fmtf(v.Y), fmtf(v.Curve))
}

func (v *Vertex) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "vertex") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Float("x", &v.X)
	r.Float("y", &v.Y)
	r.Float("curve", &v.Curve)
	return true
}

func (v *Vertex) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "vertex", writeDefaults)
	w.Float("x", v.X)
	w.Float("y", v.Y)
	w.FloatDefault("curve", v.Curve, 0)
	return true
}

func (v *Vertex) Scale(factor float64) {
	v.X *= factor
	v.Y *= factor
}

// Wire is a straight or arced line segment
type Wire struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Layer          int
	Extent         string // Layers an airwire spans, "top-bottom"
	Style          WireStyle
	Curve          float64 // Arc angle in degrees, 0 for a straight wire
	Cap            WireCap
}

// NewWire creates a straight continuous wire
func NewWire(x1, y1, x2, y2, width float64, layer int) Wire {
	w := Wire{}
	w.Clear()
	w.X1, w.Y1, w.X2, w.Y2 = x1, y1, x2, y2
	w.Width = width
	w.Layer = layer
	return w
}

func (w *Wire) Clear() {
	*w = Wire{Width: 0.1, Layer: 1, Style: WireStyleContinuous, Cap: WireCapRound}
}

func (w *Wire) Clone() *Wire     { c := *w; return &c }
func (w *Wire) Assign(src *Wire) { *w = *src.Clone() }

func (w *Wire) Dump(out io.Writer, level int) {
	dumpf(out, level, "Wire:{X1=%s, Y1=%s, X2=%s, Y2=%s, Width=%s, Layer=%d, Extent='%s', Style=%s, Curve=%s, Cap=%s}",
		fmtf(w.X1), fmtf(w.Y1), fmtf(w.X2), fmtf(w.Y2), fmtf(w.Width), w.Layer, w.Extent, w.Style, fmtf(w.Curve), w.Cap)
}

func (w *Wire) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "wire") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Float("x1", &w.X1)
	r.Float("y1", &w.Y1)
	r.Float("x2", &w.X2)
	r.Float("y2", &w.Y2)
	r.Float("width", &w.Width)
	r.Int("layer", &w.Layer)
	r.String("extent", &w.Extent)
	codec.ReadEnum(r, "style", &w.Style, wireStyleNames)
	r.Float("curve", &w.Curve)
	codec.ReadEnum(r, "cap", &w.Cap, wireCapNames)
	return true
}

func (w *Wire) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	cw := codec.NewWriter(parent, "wire", writeDefaults)
	cw.Float("x1", w.X1)
	cw.Float("y1", w.Y1)
	cw.Float("x2", w.X2)
	cw.Float("y2", w.Y2)
	cw.Float("width", w.Width)
	cw.Int("layer", w.Layer)
	cw.StringOpt("extent", w.Extent)
	codec.WriteEnum(cw, "style", w.Style, WireStyleContinuous, wireStyleNames)
	cw.FloatDefault("curve", w.Curve, 0)
	codec.WriteEnum(cw, "cap", w.Cap, WireCapRound, wireCapNames)
	return true
}

// Scale multiplies coordinates and width; the arc angle is unchanged
func (w *Wire) Scale(factor float64) {
	w.X1 *= factor
	w.Y1 *= factor
	w.X2 *= factor
	w.Y2 *= factor
	w.Width *= factor
}

// Chord returns the straight distance between the end points
func (w *Wire) Chord() float64 {
	return math.Hypot(w.X2-w.X1, w.Y2-w.Y1)
}

// Radius returns the arc radius, or 0 for a straight wire
func (w *Wire) Radius() float64 {
	if w.Curve == 0 {
		return 0
	}
	return w.Chord() / (2 * math.Sin(degToRad(w.Curve)/2))
}

// Length returns the arc length, or the chord for a straight wire
func (w *Wire) Length() float64 {
	if w.Curve == 0 {
		return w.Chord()
	}
	return math.Abs(w.Radius() * degToRad(w.Curve))
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Circle is a circle outline (or a dot when width is 0)
type Circle struct {
	X, Y   float64
	Radius float64
	Width  float64
	Layer  int
}

// NewCircle creates a circle
func NewCircle(x, y, radius, width float64, layer int) Circle {
	return Circle{X: x, Y: y, Radius: radius, Width: width, Layer: layer}
}

func (c *Circle) Clear()             { *c = Circle{Radius: 1, Width: 0.1, Layer: 1} }
func (c *Circle) Clone() *Circle     { cp := *c; return &cp }
func (c *Circle) Assign(src *Circle) { *c = *src.Clone() }

func (c *Circle) Dump(w io.Writer, level int) {
	dumpf(w, level, "Circle:{X=%s, Y=%s, Radius=%s, Width=%s, Layer=%d}",
		fmtf(c.X), fmtf(c.Y), fmtf(c.Radius), fmtf(c.Width), c.Layer)
}

func (c *Circle) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "circle") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Float("x", &c.X)
	r.Float("y", &c.Y)
	r.Float("radius", &c.Radius)
	r.Float("width", &c.Width)
	r.Int("layer", &c.Layer)
	return true
}

func (c *Circle) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "circle", writeDefaults)
	w.Float("x", c.X)
	w.Float("y", c.Y)
	w.Float("radius", c.Radius)
	w.Float("width", c.Width)
	w.Int("layer", c.Layer)
	return true
}

func (c *Circle) Scale(factor float64) {
	c.X *= factor
	c.Y *= factor
	c.Radius *= factor
	c.Width *= factor
}

// Rectangle is a filled rectangle
type Rectangle struct {
	X1, Y1, X2, Y2 float64
	Layer          int
	Rotation       float64
}

// NewRectangle creates an unrotated rectangle
func NewRectangle(x1, y1, x2, y2 float64, layer int) Rectangle {
	return Rectangle{X1: x1, Y1: y1, X2: x2, Y2: y2, Layer: layer}
}

func (r *Rectangle) Clear()                { *r = Rectangle{Layer: 1} }
func (r *Rectangle) Clone() *Rectangle     { c := *r; return &c }
func (r *Rectangle) Assign(src *Rectangle) { *r = *src.Clone() }

// SetRotation clamps the rotation to [0, 359.999]
func (r *Rectangle) SetRotation(v float64) { r.Rotation = clampRotation(v) }

func (r *Rectangle) Dump(w io.Writer, level int) {
	dumpf(w, level, "Rectangle:{X1=%s, Y1=%s, X2=%s, Y2=%s, Layer=%d, Rotation=%s}",
		fmtf(r.X1), fmtf(r.Y1), fmtf(r.X2), fmtf(r.Y2), r.Layer, fmtf(r.Rotation))
}

func (r *Rectangle) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "rectangle") {
		return false
	}
	rd := codec.NewReader(el, warn)
	rd.Float("x1", &r.X1)
	rd.Float("y1", &r.Y1)
	rd.Float("x2", &r.X2)
	rd.Float("y2", &r.Y2)
	rd.Int("layer", &r.Layer)
	rd.Transform("rot", &r.Rotation, nil, nil)
	return true
}

func (r *Rectangle) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "rectangle", writeDefaults)
	w.Float("x1", r.X1)
	w.Float("y1", r.Y1)
	w.Float("x2", r.X2)
	w.Float("y2", r.Y2)
	w.Int("layer", r.Layer)
	w.Transform("rot", codec.Transform{Rotation: r.Rotation})
	return true
}

func (r *Rectangle) Scale(factor float64) {
	r.X1 *= factor
	r.Y1 *= factor
	r.X2 *= factor
	r.Y2 *= factor
}

// Frame is a drawing frame with a column/row grid
type Frame struct {
	X1, Y1, X2, Y2 float64
	Columns, Rows  int
	Layer          int
	BorderLeft     bool
	BorderTop      bool
	BorderRight    bool
	BorderBottom   bool
}

func (f *Frame) Clear() {
	*f = Frame{Columns: 8, Rows: 5, Layer: 1, BorderLeft: true, BorderTop: true, BorderRight: true, BorderBottom: true}
}

func (f *Frame) Clone() *Frame     { c := *f; return &c }
func (f *Frame) Assign(src *Frame) { *f = *src.Clone() }

func (f *Frame) Dump(w io.Writer, level int) {
	dumpf(w, level, "Frame:{X1=%s, Y1=%s, X2=%s, Y2=%s, Columns=%d, Rows=%d, Layer=%d, Borders=%t/%t/%t/%t}",
		fmtf(f.X1), fmtf(f.Y1), fmtf(f.X2), fmtf(f.Y2), f.Columns, f.Rows, f.Layer,
		f.BorderLeft, f.BorderTop, f.BorderRight, f.BorderBottom)
}

func (f *Frame) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "frame") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Float("x1", &f.X1)
	r.Float("y1", &f.Y1)
	r.Float("x2", &f.X2)
	r.Float("y2", &f.Y2)
	r.Int("columns", &f.Columns)
	r.Int("rows", &f.Rows)
	r.Int("layer", &f.Layer)
	r.Bool("border-left", &f.BorderLeft)
	r.Bool("border-top", &f.BorderTop)
	r.Bool("border-right", &f.BorderRight)
	r.Bool("border-bottom", &f.BorderBottom)
	return true
}

func (f *Frame) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "frame", writeDefaults)
	w.Float("x1", f.X1)
	w.Float("y1", f.Y1)
	w.Float("x2", f.X2)
	w.Float("y2", f.Y2)
	w.Int("columns", f.Columns)
	w.Int("rows", f.Rows)
	w.Int("layer", f.Layer)
	w.BoolDefault("border-left", f.BorderLeft, true)
	w.BoolDefault("border-top", f.BorderTop, true)
	w.BoolDefault("border-right", f.BorderRight, true)
	w.BoolDefault("border-bottom", f.BorderBottom, true)
	return true
}

func (f *Frame) Scale(factor float64) {
	f.X1 *= factor
	f.Y1 *= factor
	f.X2 *= factor
	f.Y2 *= factor
}

// Dimension is a measurement annotation
type Dimension struct {
	X1, Y1, X2, Y2, X3, Y3 float64
	Layer                  int
	Type                   DimensionType
	Width                  float64
	ExtWidth               float64
	ExtLength              float64
	ExtOffset              float64
	TextSize               float64
	TextRatio              int
	Unit                   Unit
	Precision              int
	Visible                bool
}

// Dimension defaults
const (
	DefaultTextRatio          = 8
	DefaultDimensionPrecision = 2
)

func (d *Dimension) Clear() {
	*d = Dimension{
		Layer:     1,
		Type:      DimensionParallel,
		Width:     0.1,
		TextSize:  1,
		TextRatio: DefaultTextRatio,
		Unit:      UnitMM,
		Precision: DefaultDimensionPrecision,
	}
}

func (d *Dimension) Clone() *Dimension     { c := *d; return &c }
func (d *Dimension) Assign(src *Dimension) { *d = *src.Clone() }

func (d *Dimension) Dump(w io.Writer, level int) {
	dumpf(w, level, "Dimension:{X1=%s, Y1=%s, X2=%s, Y2=%s, X3=%s, Y3=%s, Layer=%d, Type=%s, Width=%s, ExtWidth=%s, ExtLength=%s, ExtOffset=%s, TextSize=%s, TextRatio=%d, Unit=%s, Precision=%d, Visible=%t}",
		fmtf(d.X1), fmtf(d.Y1), fmtf(d.X2), fmtf(d.Y2), fmtf(d.X3), fmtf(d.Y3), d.Layer, d.Type,
		fmtf(d.Width), fmtf(d.ExtWidth), fmtf(d.ExtLength), fmtf(d.ExtOffset),
		fmtf(d.TextSize), d.TextRatio, d.Unit, d.Precision, d.Visible)
}

func (d *Dimension) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "dimension") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Float("x1", &d.X1)
	r.Float("y1", &d.Y1)
	r.Float("x2", &d.X2)
	r.Float("y2", &d.Y2)
	r.Float("x3", &d.X3)
	r.Float("y3", &d.Y3)
	r.Int("layer", &d.Layer)
	codec.ReadEnum(r, "dtype", &d.Type, dimensionTypeNames)
	r.Float("width", &d.Width)
	r.Float("extwidth", &d.ExtWidth)
	r.Float("extlength", &d.ExtLength)
	r.Float("extoffset", &d.ExtOffset)
	r.Float("textsize", &d.TextSize)
	r.Int("textratio", &d.TextRatio)
	codec.ReadEnum(r, "unit", &d.Unit, unitNames)
	r.Int("precision", &d.Precision)
	r.Bool("visible", &d.Visible)
	return true
}

func (d *Dimension) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "dimension", writeDefaults)
	w.Float("x1", d.X1)
	w.Float("y1", d.Y1)
	w.Float("x2", d.X2)
	w.Float("y2", d.Y2)
	w.Float("x3", d.X3)
	w.Float("y3", d.Y3)
	w.Int("layer", d.Layer)
	codec.WriteEnum(w, "dtype", d.Type, DimensionParallel, dimensionTypeNames)
	w.Float("width", d.Width)
	w.FloatDefault("extwidth", d.ExtWidth, 0)
	w.FloatDefault("extlength", d.ExtLength, 0)
	w.FloatDefault("extoffset", d.ExtOffset, 0)
	w.Float("textsize", d.TextSize)
	w.IntDefault("textratio", d.TextRatio, DefaultTextRatio)
	codec.WriteEnum(w, "unit", d.Unit, UnitMM, unitNames)
	w.IntDefault("precision", d.Precision, DefaultDimensionPrecision)
	w.BoolDefault("visible", d.Visible, false)
	return true
}

func (d *Dimension) Scale(factor float64) {
	d.X1 *= factor
	d.Y1 *= factor
	d.X2 *= factor
	d.Y2 *= factor
	d.X3 *= factor
	d.Y3 *= factor
	d.Width *= factor
	d.ExtWidth *= factor
	d.ExtLength *= factor
	d.ExtOffset *= factor
	d.TextSize *= factor
}
