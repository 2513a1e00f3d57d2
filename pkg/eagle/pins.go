package eagle

import (
	"io"
	"strings"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Pin is a connection point of a symbol
type Pin struct {
	Name      string
	X, Y      float64
	Visible   PinVisible
	Length    PinLength
	Direction PinDirection
	Function  PinFunction
	SwapLevel int
	Rotation  float64
}

// NewPin creates a long bidirectional pin
func NewPin(name string, x, y float64) Pin {
	p := Pin{}
	p.Clear()
	p.Name = name
	p.X, p.Y = x, y
	return p
}

func (p *Pin) Clear() {
	*p = Pin{Visible: PinVisibleBoth, Length: PinLengthLong, Direction: PinDirectionIO, Function: PinFunctionNone}
}

func (p *Pin) Clone() *Pin     { c := *p; return &c }
func (p *Pin) Assign(src *Pin) { *p = *src.Clone() }

// SetRotation clamps the rotation to [0, 359.999]
func (p *Pin) SetRotation(v float64) { p.Rotation = clampRotation(v) }

func (p *Pin) Dump(w io.Writer, level int) {
	dumpf(w, level, "Pin:{Name='%s', X=%s, Y=%s, Visible=%s, Length=%s, Direction=%s, Function=%s, SwapLevel=%d, Rotation=%s}",
		p.Name, fmtf(p.X), fmtf(p.Y), p.Visible, p.Length, p.Direction, p.Function, p.SwapLevel, fmtf(p.Rotation))
}

func (p *Pin) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "pin") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &p.Name)
	r.Float("x", &p.X)
	r.Float("y", &p.Y)
	codec.ReadEnum(r, "visible", &p.Visible, pinVisibleNames)
	codec.ReadEnum(r, "length", &p.Length, pinLengthNames)
	codec.ReadEnum(r, "direction", &p.Direction, pinDirectionNames)
	codec.ReadEnum(r, "function", &p.Function, pinFunctionNames)
	r.Int("swaplevel", &p.SwapLevel)
	r.Transform("rot", &p.Rotation, nil, nil)
	return true
}

func (p *Pin) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "pin", writeDefaults)
	w.String("name", p.Name)
	w.Float("x", p.X)
	w.Float("y", p.Y)
	codec.WriteEnum(w, "visible", p.Visible, PinVisibleBoth, pinVisibleNames)
	codec.WriteEnum(w, "length", p.Length, PinLengthLong, pinLengthNames)
	codec.WriteEnum(w, "direction", p.Direction, PinDirectionIO, pinDirectionNames)
	codec.WriteEnum(w, "function", p.Function, PinFunctionNone, pinFunctionNames)
	w.IntDefault("swaplevel", p.SwapLevel, 0)
	w.Transform("rot", codec.Transform{Rotation: p.Rotation})
	return true
}

func (p *Pin) Scale(factor float64) {
	p.X *= factor
	p.Y *= factor
}

// Gate places a symbol inside a device set
type Gate struct {
	Name      string
	Symbol    string
	X, Y      float64
	AddLevel  AddLevel
	SwapLevel int
}

func (g *Gate) Clear()           { *g = Gate{AddLevel: AddLevelNext} }
func (g *Gate) Clone() *Gate     { c := *g; return &c }
func (g *Gate) Assign(src *Gate) { *g = *src.Clone() }

func (g *Gate) Dump(w io.Writer, level int) {
	dumpf(w, level, "Gate:{Name='%s', Symbol='%s', X=%s, Y=%s, AddLevel=%s, SwapLevel=%d}",
		g.Name, g.Symbol, fmtf(g.X), fmtf(g.Y), g.AddLevel, g.SwapLevel)
}

func (g *Gate) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "gate") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &g.Name)
	r.String("symbol", &g.Symbol)
	r.Float("x", &g.X)
	r.Float("y", &g.Y)
	codec.ReadEnum(r, "addlevel", &g.AddLevel, addLevelNames)
	r.Int("swaplevel", &g.SwapLevel)
	return true
}

func (g *Gate) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "gate", writeDefaults)
	w.String("name", g.Name)
	w.String("symbol", g.Symbol)
	w.Float("x", g.X)
	w.Float("y", g.Y)
	codec.WriteEnum(w, "addlevel", g.AddLevel, AddLevelNext, addLevelNames)
	w.IntDefault("swaplevel", g.SwapLevel, 0)
	return true
}

func (g *Gate) Scale(factor float64) {
	g.X *= factor
	g.Y *= factor
}

// Connect maps a gate pin to one or more package pads
type Connect struct {
	Gate  string
	Pin   string
	Pad   string // Space separated when the pin has several pads
	Route Route
}

func (c *Connect) Clear()              { *c = Connect{Route: RouteAll} }
func (c *Connect) Clone() *Connect     { cp := *c; return &cp }
func (c *Connect) Assign(src *Connect) { *c = *src.Clone() }

// Pads returns the individual pad names of the connect
func (c *Connect) Pads() []string {
	return strings.Fields(c.Pad)
}

func (c *Connect) Dump(w io.Writer, level int) {
	dumpf(w, level, "Connect:{Gate='%s', Pin='%s', Pad='%s', Route=%s}", c.Gate, c.Pin, c.Pad, c.Route)
}

func (c *Connect) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "connect") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("gate", &c.Gate)
	r.String("pin", &c.Pin)
	r.String("pad", &c.Pad)
	codec.ReadEnum(r, "route", &c.Route, routeNames)
	return true
}

func (c *Connect) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "connect", writeDefaults)
	w.String("gate", c.Gate)
	w.String("pin", c.Pin)
	w.String("pad", c.Pad)
	codec.WriteEnum(w, "route", c.Route, RouteAll, routeNames)
	return true
}

// Junction is a dot joining net wires
type Junction struct {
	X, Y float64
}

func (j *Junction) Clear()               { *j = Junction{} }
func (j *Junction) Clone() *Junction     { c := *j; return &c }
func (j *Junction) Assign(src *Junction) { *j = *src.Clone() }

func (j *Junction) Dump(w io.Writer, level int) {
	dumpf(w, level, "Junction:{X=%s, Y=%s}", fmtf(j.X), fmtf(j.Y))
}

func (j *Junction) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "junction") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Float("x", &j.X)
	r.Float("y", &j.Y)
	return true
}

func (j *Junction) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "junction", writeDefaults)
	w.Float("x", j.X)
	w.Float("y", j.Y)
	return true
}

func (j *Junction) Scale(factor float64) {
	j.X *= factor
	j.Y *= factor
}

// PinRef attaches a net segment to a pin of a placed gate
type PinRef struct {
	Part string
	Gate string
	Pin  string
}

func (p *PinRef) Clear()             { *p = PinRef{} }
func (p *PinRef) Clone() *PinRef     { c := *p; return &c }
func (p *PinRef) Assign(src *PinRef) { *p = *src.Clone() }

func (p *PinRef) Dump(w io.Writer, level int) {
	dumpf(w, level, "PinRef:{Part='%s', Gate='%s', Pin='%s'}", p.Part, p.Gate, p.Pin)
}

func (p *PinRef) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "pinref") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("part", &p.Part)
	r.String("gate", &p.Gate)
	r.String("pin", &p.Pin)
	return true
}

func (p *PinRef) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "pinref", writeDefaults)
	w.String("part", p.Part)
	w.String("gate", p.Gate)
	w.String("pin", p.Pin)
	return true
}

// ContactRef attaches a signal to a pad of a board element
type ContactRef struct {
	Element  string
	Pad      string
	Route    Route
	RouteTag string
}

func (c *ContactRef) Clear()                 { *c = ContactRef{Route: RouteAll} }
func (c *ContactRef) Clone() *ContactRef     { cp := *c; return &cp }
func (c *ContactRef) Assign(src *ContactRef) { *c = *src.Clone() }

func (c *ContactRef) Dump(w io.Writer, level int) {
	dumpf(w, level, "ContactRef:{Element='%s', Pad='%s', Route=%s, RouteTag='%s'}", c.Element, c.Pad, c.Route, c.RouteTag)
}

func (c *ContactRef) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "contactref") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("element", &c.Element)
	r.String("pad", &c.Pad)
	codec.ReadEnum(r, "route", &c.Route, routeNames)
	r.String("routetag", &c.RouteTag)
	return true
}

func (c *ContactRef) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "contactref", writeDefaults)
	w.String("element", c.Element)
	w.String("pad", c.Pad)
	codec.WriteEnum(w, "route", c.Route, RouteAll, routeNames)
	w.StringOpt("routetag", c.RouteTag)
	return true
}
