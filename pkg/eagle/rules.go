package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Param is a named design rule or autorouter value
type Param struct {
	Name  string
	Value string
}

// NewParam creates a parameter
func NewParam(name, value string) Param {
	return Param{Name: name, Value: value}
}

func (p *Param) Clear()            { *p = Param{} }
func (p *Param) Clone() *Param     { c := *p; return &c }
func (p *Param) Assign(src *Param) { *p = *src.Clone() }

func (p *Param) Dump(w io.Writer, level int) {
	dumpf(w, level, "Param:{Name='%s', Value='%s'}", p.Name, p.Value)
}

func (p *Param) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "param") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &p.Name)
	r.String("value", &p.Value)
	return true
}

func (p *Param) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "param", writeDefaults)
	w.String("name", p.Name)
	w.String("value", p.Value)
	return true
}

// Clearance is the minimum distance from a net class to another
type Clearance struct {
	Class int
	Value float64
}

func (c *Clearance) Clear()                { *c = Clearance{} }
func (c *Clearance) Clone() *Clearance     { cp := *c; return &cp }
func (c *Clearance) Assign(src *Clearance) { *c = *src.Clone() }

func (c *Clearance) Dump(w io.Writer, level int) {
	dumpf(w, level, "Clearance:{Class=%d, Value=%s}", c.Class, fmtf(c.Value))
}

func (c *Clearance) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "clearance") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Int("class", &c.Class)
	r.Float("value", &c.Value)
	return true
}

func (c *Clearance) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "clearance", writeDefaults)
	w.Int("class", c.Class)
	w.FloatDefault("value", c.Value, 0)
	return true
}

// Class is a net class with its routing widths and clearances
type Class struct {
	Number     int
	Name       string
	Width      float64
	Drill      float64
	Clearances []Clearance
}

func (c *Class) Clear() { *c = Class{} }

func (c *Class) Clone() *Class {
	cp := *c
	cp.Clearances = cloneList(c.Clearances)
	return &cp
}

func (c *Class) Assign(src *Class) { *c = *src.Clone() }

func (c *Class) Dump(w io.Writer, level int) {
	dumpf(w, level, "Class:{Number=%d, Name='%s', Width=%s, Drill=%s}", c.Number, c.Name, fmtf(c.Width), fmtf(c.Drill))
	dumpList(w, level+1, "Clearances", c.Clearances)
}

func (c *Class) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "class") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Int("number", &c.Number)
	r.String("name", &c.Name)
	r.Float("width", &c.Width)
	r.Float("drill", &c.Drill)
	c.Clearances = parseList[Clearance](el, "clearance", warn)
	return true
}

func (c *Class) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "class", writeDefaults)
	w.Int("number", c.Number)
	w.String("name", c.Name)
	w.FloatDefault("width", c.Width, 0)
	w.FloatDefault("drill", c.Drill, 0)
	serializeList(w.Element(), c.Clearances, writeDefaults)
	return true
}

// Pass is one autorouter pass
type Pass struct {
	Name   string
	Refer  string // Pass whose parameters are inherited
	Active bool
	Params []Param
}

func (p *Pass) Clear() { *p = Pass{Active: true} }

func (p *Pass) Clone() *Pass {
	c := *p
	c.Params = cloneList(p.Params)
	return &c
}

func (p *Pass) Assign(src *Pass) { *p = *src.Clone() }

// Param returns the named parameter of the pass
func (p *Pass) Param(name string) *Param {
	for i := range p.Params {
		if p.Params[i].Name == name {
			return &p.Params[i]
		}
	}
	return nil
}

func (p *Pass) Dump(w io.Writer, level int) {
	dumpf(w, level, "Pass:{Name='%s', Refer='%s', Active=%t}", p.Name, p.Refer, p.Active)
	dumpList(w, level+1, "Params", p.Params)
}

func (p *Pass) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "pass") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &p.Name)
	r.String("refer", &p.Refer)
	r.Bool("active", &p.Active)
	p.Params = parseList[Param](el, "param", warn)
	return true
}

func (p *Pass) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "pass", writeDefaults)
	serializeList(w.Element(), p.Params, writeDefaults)
	w.String("name", p.Name)
	w.StringOpt("refer", p.Refer)
	w.BoolDefault("active", p.Active, true)
	return true
}

// DesignRule is the named set of board design rule parameters
type DesignRule struct {
	Name         string
	Descriptions []Description
	Params       []Param
}

func (d *DesignRule) Clear() { *d = DesignRule{} }

func (d *DesignRule) Clone() *DesignRule {
	c := *d
	c.Descriptions = cloneList(d.Descriptions)
	c.Params = cloneList(d.Params)
	return &c
}

func (d *DesignRule) Assign(src *DesignRule) { *d = *src.Clone() }

// Param returns the named rule parameter
func (d *DesignRule) Param(name string) *Param {
	for i := range d.Params {
		if d.Params[i].Name == name {
			return &d.Params[i]
		}
	}
	return nil
}

func (d *DesignRule) Dump(w io.Writer, level int) {
	dumpf(w, level, "DesignRule:{Name='%s'}", d.Name)
	dumpList(w, level+1, "Descriptions", d.Descriptions)
	dumpList(w, level+1, "Params", d.Params)
}

func (d *DesignRule) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "designrules") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &d.Name)
	d.Descriptions = parseList[Description](el, "description", warn)
	d.Params = parseList[Param](el, "param", warn)
	return true
}

func (d *DesignRule) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "designrules", writeDefaults)
	w.String("name", d.Name)
	serializeList(w.Element(), d.Descriptions, writeDefaults)
	serializeList(w.Element(), d.Params, writeDefaults)
	return true
}

// Approved marks a design rule check error as accepted
type Approved struct {
	Hash string
}

func (a *Approved) Clear()               { *a = Approved{} }
func (a *Approved) Clone() *Approved     { c := *a; return &c }
func (a *Approved) Assign(src *Approved) { *a = *src.Clone() }

func (a *Approved) Dump(w io.Writer, level int) {
	dumpf(w, level, "Approved:{Hash='%s'}", a.Hash)
}

func (a *Approved) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "approved") {
		return false
	}
	codec.NewReader(el, warn).String("hash", &a.Hash)
	return true
}

func (a *Approved) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	codec.NewWriter(parent, "approved", writeDefaults).String("hash", a.Hash)
	return true
}

// VariantDef declares an assembly variant of a design
type VariantDef struct {
	Name    string
	Current bool
}

func (v *VariantDef) Clear()                 { *v = VariantDef{} }
func (v *VariantDef) Clone() *VariantDef     { c := *v; return &c }
func (v *VariantDef) Assign(src *VariantDef) { *v = *src.Clone() }

func (v *VariantDef) Dump(w io.Writer, level int) {
	dumpf(w, level, "VariantDef:{Name='%s', Current=%t}", v.Name, v.Current)
}

func (v *VariantDef) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "variantdef") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &v.Name)
	r.Bool("current", &v.Current)
	return true
}

func (v *VariantDef) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "variantdef", writeDefaults)
	w.String("name", v.Name)
	w.BoolDefault("current", v.Current, false)
	return true
}

// Variant overrides a part or element in one assembly variant
type Variant struct {
	Name       string
	Populate   bool
	Value      string
	Technology string
}

func (v *Variant) Clear()              { *v = Variant{Populate: true} }
func (v *Variant) Clone() *Variant     { c := *v; return &c }
func (v *Variant) Assign(src *Variant) { *v = *src.Clone() }

func (v *Variant) Dump(w io.Writer, level int) {
	dumpf(w, level, "Variant:{Name='%s', Populate=%t, Value='%s', Technology='%s'}", v.Name, v.Populate, v.Value, v.Technology)
}

func (v *Variant) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "variant") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("name", &v.Name)
	r.Bool("populate", &v.Populate)
	r.String("value", &v.Value)
	r.String("technology", &v.Technology)
	return true
}

func (v *Variant) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "variant", writeDefaults)
	w.String("name", v.Name)
	w.BoolDefault("populate", v.Populate, true)
	w.StringOpt("value", v.Value)
	w.StringOpt("technology", v.Technology)
	return true
}
