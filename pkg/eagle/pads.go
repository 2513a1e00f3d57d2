package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// DefaultPadName is the name given to new pads and SMDs
const DefaultPadName = "P$1"

// Hole is a non-plated drill
type Hole struct {
	X, Y  float64
	Drill float64
}

func (h *Hole) Clear()           { *h = Hole{Drill: 0.1} }
func (h *Hole) Clone() *Hole     { c := *h; return &c }
func (h *Hole) Assign(src *Hole) { *h = *src.Clone() }

func (h *Hole) Dump(w io.Writer, level int) {
	dumpf(w, level, "Hole:{X=%s, Y=%s, Drill=%s}", fmtf(h.X), fmtf(h.Y), fmtf(h.Drill))
}

func (h *Hole) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "hole") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Float("x", &h.X)
	r.Float("y", &h.Y)
	r.Float("drill", &h.Drill)
	return true
}

func (h *Hole) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "hole", writeDefaults)
	w.Float("x", h.X)
	w.Float("y", h.Y)
	w.Float("drill", h.Drill)
	return true
}

func (h *Hole) Scale(factor float64) {
	h.X *= factor
	h.Y *= factor
	h.Drill *= factor
}

// Pad is a through-hole pad of a package
type Pad struct {
	Name     string
	X, Y     float64
	Drill    float64
	Diameter float64 // 0 lets the design rules decide
	Shape    PadShape
	Rotation float64
	Stop     bool
	Thermals bool
	First    bool
}

// NewPad creates a round pad
func NewPad(name string, x, y, drill float64) Pad {
	p := Pad{}
	p.Clear()
	p.Name = name
	p.X, p.Y = x, y
	p.Drill = drill
	return p
}

func (p *Pad) Clear() {
	*p = Pad{Name: DefaultPadName, Drill: 0.1, Shape: PadShapeRound, Stop: true, Thermals: true}
}

func (p *Pad) Clone() *Pad     { c := *p; return &c }
func (p *Pad) Assign(src *Pad) { *p = *src.Clone() }

// SetRotation clamps the rotation to [0, 359.999]
func (p *Pad) SetRotation(v float64) { p.Rotation = clampRotation(v) }

func (p *Pad) Dump(w io.Writer, level int) {
	dumpf(w, level, "Pad:{Name='%s', X=%s, Y=%s, Drill=%s, Diameter=%s, Shape=%s, Rotation=%s, Stop=%t, Thermals=%t, First=%t}",
		p.Name, fmtf(p.X), fmtf(p.Y), fmtf(p.Drill), fmtf(p.Diameter), p.Shape, fmtf(p.Rotation), p.Stop, p.Thermals, p.First)
}

func (p *Pad) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "pad") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &p.Name)
	r.Float("x", &p.X)
	r.Float("y", &p.Y)
	r.Float("drill", &p.Drill)
	r.Float("diameter", &p.Diameter)
	codec.ReadEnum(r, "shape", &p.Shape, padShapeNames)
	r.Transform("rot", &p.Rotation, nil, nil)
	r.Bool("stop", &p.Stop)
	r.Bool("thermals", &p.Thermals)
	r.Bool("first", &p.First)
	return true
}

func (p *Pad) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "pad", writeDefaults)
	w.String("name", p.Name)
	w.Float("x", p.X)
	w.Float("y", p.Y)
	w.Float("drill", p.Drill)
	w.FloatDefault("diameter", p.Diameter, 0)
	codec.WriteEnum(w, "shape", p.Shape, PadShapeRound, padShapeNames)
	w.Transform("rot", codec.Transform{Rotation: p.Rotation})
	w.BoolDefault("stop", p.Stop, true)
	w.BoolDefault("thermals", p.Thermals, true)
	w.BoolDefault("first", p.First, false)
	return true
}

func (p *Pad) Scale(factor float64) {
	p.X *= factor
	p.Y *= factor
	p.Drill *= factor
	p.Diameter *= factor
}

// SMD is a surface mount pad
type SMD struct {
	Name      string
	X, Y      float64
	DX, DY    float64
	Layer     int
	Roundness int // Corner rounding in percent
	Rotation  float64
	Stop      bool
	Thermals  bool
	Cream     bool
}

// NewSMD creates a square SMD pad on the given layer
func NewSMD(name string, x, y, dx, dy float64, layer int) SMD {
	s := SMD{}
	s.Clear()
	s.Name = name
	s.X, s.Y = x, y
	s.DX, s.DY = dx, dy
	s.Layer = layer
	return s
}

func (s *SMD) Clear() {
	*s = SMD{Name: DefaultPadName, DX: 0.1, DY: 0.1, Layer: 1, Stop: true, Thermals: true}
}

func (s *SMD) Clone() *SMD     { c := *s; return &c }
func (s *SMD) Assign(src *SMD) { *s = *src.Clone() }

// SetRotation clamps the rotation to [0, 359.999]
func (s *SMD) SetRotation(v float64) { s.Rotation = clampRotation(v) }

func (s *SMD) Dump(w io.Writer, level int) {
	dumpf(w, level, "SMD:{Name='%s', X=%s, Y=%s, DX=%s, DY=%s, Layer=%d, Roundness=%d, Rotation=%s, Stop=%t, Thermals=%t, Cream=%t}",
		s.Name, fmtf(s.X), fmtf(s.Y), fmtf(s.DX), fmtf(s.DY), s.Layer, s.Roundness, fmtf(s.Rotation), s.Stop, s.Thermals, s.Cream)
}

func (s *SMD) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "smd") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &s.Name)
	r.Float("x", &s.X)
	r.Float("y", &s.Y)
	r.Float("dx", &s.DX)
	r.Float("dy", &s.DY)
	r.Int("layer", &s.Layer)
	r.Int("roundness", &s.Roundness)
	r.Transform("rot", &s.Rotation, nil, nil)
	r.Bool("stop", &s.Stop)
	r.Bool("thermals", &s.Thermals)
	r.Bool("cream", &s.Cream)
	return true
}

func (s *SMD) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "smd", writeDefaults)
	w.String("name", s.Name)
	w.Float("x", s.X)
	w.Float("y", s.Y)
	w.Float("dx", s.DX)
	w.Float("dy", s.DY)
	w.Int("layer", s.Layer)
	w.IntDefault("roundness", s.Roundness, 0)
	w.Transform("rot", codec.Transform{Rotation: s.Rotation})
	w.BoolDefault("stop", s.Stop, true)
	w.BoolDefault("thermals", s.Thermals, true)
	w.BoolDefault("cream", s.Cream, false)
	return true
}

func (s *SMD) Scale(factor float64) {
	s.X *= factor
	s.Y *= factor
	s.DX *= factor
	s.DY *= factor
}

// Via is a plated hole connecting copper layers of a signal
type Via struct {
	X, Y       float64
	Extent     string // Layer range, e.g. "1-16"
	Drill      float64
	Diameter   float64
	Shape      ViaShape
	AlwaysStop bool
	Rotation   float64
}

func (v *Via) Clear()          { *v = Via{Drill: 0.01, Shape: ViaShapeRound} }
func (v *Via) Clone() *Via     { c := *v; return &c }
func (v *Via) Assign(src *Via) { *v = *src.Clone() }

func (v *Via) Dump(w io.Writer, level int) {
	dumpf(w, level, "Via:{X=%s, Y=%s, Extent='%s', Drill=%s, Diameter=%s, Shape=%s, AlwaysStop=%t, Rotation=%s}",
		fmtf(v.X), fmtf(v.Y), v.Extent, fmtf(v.Drill), fmtf(v.Diameter), v.Shape, v.AlwaysStop, fmtf(v.Rotation))
}

func (v *Via) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "via") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Float("x", &v.X)
	r.Float("y", &v.Y)
	r.String("extent", &v.Extent)
	r.Float("drill", &v.Drill)
	r.Float("diameter", &v.Diameter)
	codec.ReadEnum(r, "shape", &v.Shape, viaShapeNames)
	r.Bool("alwaysstop", &v.AlwaysStop)
	r.Transform("rot", &v.Rotation, nil, nil)
	return true
}

func (v *Via) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "via", writeDefaults)
	w.Float("x", v.X)
	w.Float("y", v.Y)
	w.String("extent", v.Extent)
	w.Float("drill", v.Drill)
	w.FloatDefault("diameter", v.Diameter, 0)
	codec.WriteEnum(w, "shape", v.Shape, ViaShapeRound, viaShapeNames)
	w.BoolDefault("alwaysstop", v.AlwaysStop, false)
	w.Transform("rot", codec.Transform{Rotation: v.Rotation})
	return true
}

func (v *Via) Scale(factor float64) {
	v.X *= factor
	v.Y *= factor
	v.Drill *= factor
	v.Diameter *= factor
}
