package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Sheet is one page of a schematic
type Sheet struct {
	Description Description
	Plain       Plain
	Instances   []Instance
	Busses      []Bus
	Nets        []Net
}

func (s *Sheet) Clear() {
	*s = Sheet{}
	s.Description.Clear()
}

func (s *Sheet) Clone() *Sheet {
	c := *s
	c.Plain = *s.Plain.Clone()
	c.Instances = cloneList(s.Instances)
	c.Busses = cloneList(s.Busses)
	c.Nets = cloneList(s.Nets)
	return &c
}

func (s *Sheet) Assign(src *Sheet) { *s = *src.Clone() }

// FindNet returns the named net of the sheet
func (s *Sheet) FindNet(name string) *Net {
	for i := range s.Nets {
		if s.Nets[i].Name == name {
			return &s.Nets[i]
		}
	}
	return nil
}

func (s *Sheet) Dump(w io.Writer, level int) {
	dumpf(w, level, "Sheet:{}")
	s.Description.Dump(w, level+1)
	s.Plain.Dump(w, level+1)
	dumpList(w, level+1, "Instances", s.Instances)
	dumpList(w, level+1, "Busses", s.Busses)
	dumpList(w, level+1, "Nets", s.Nets)
}

func (s *Sheet) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "sheet") {
		return false
	}
	s.Description.Parse(el.SelectElement("description"), warn)
	s.Plain.Parse(el.SelectElement("plain"), warn)
	s.Instances = parseWrapped[Instance](el, "instances", "instance", warn)
	s.Busses = parseWrapped[Bus](el, "busses", "bus", warn)
	s.Nets = parseWrapped[Net](el, "nets", "net", warn)
	return true
}

func (s *Sheet) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	el := parent.CreateElement("sheet")
	s.Description.Serialize(el, writeDefaults)
	s.Plain.Serialize(el, writeDefaults)
	serializeList(el.CreateElement("instances"), s.Instances, writeDefaults)
	serializeList(el.CreateElement("busses"), s.Busses, writeDefaults)
	serializeList(el.CreateElement("nets"), s.Nets, writeDefaults)
	return true
}

func (s *Sheet) Scale(factor float64) {
	s.Plain.Scale(factor)
	scaleList(s.Instances, factor)
	scaleList(s.Busses, factor)
	scaleList(s.Nets, factor)
}

// Schematic is the circuit diagram of a design
type Schematic struct {
	XRefLabel   string // Format of net cross-reference labels
	XRefPart    string // Format of part cross-references
	Description Description
	Libraries   []Library
	Attributes  []Attribute
	VariantDefs []VariantDef
	Classes     []Class
	Parts       []Part
	Sheets      []Sheet
	Errors      []Approved
}

// NewSchematic creates an empty schematic
func NewSchematic() *Schematic {
	s := &Schematic{}
	s.Clear()
	return s
}

func (s *Schematic) Clear() {
	*s = Schematic{}
	s.Description.Clear()
}

func (s *Schematic) Clone() *Schematic {
	c := *s
	c.Libraries = cloneList(s.Libraries)
	c.Attributes = cloneList(s.Attributes)
	c.VariantDefs = cloneList(s.VariantDefs)
	c.Classes = cloneList(s.Classes)
	c.Parts = cloneList(s.Parts)
	c.Sheets = cloneList(s.Sheets)
	c.Errors = cloneList(s.Errors)
	return &c
}

func (s *Schematic) Assign(src *Schematic) { *s = *src.Clone() }

// FindLibrary returns the named embedded library
func (s *Schematic) FindLibrary(name string) *Library {
	return findLibrary(s.Libraries, name)
}

// FindPart returns the named part
func (s *Schematic) FindPart(name string) *Part {
	for i := range s.Parts {
		if s.Parts[i].Name == name {
			return &s.Parts[i]
		}
	}
	return nil
}

// ResolveDevice follows a part to its device set and device in the
// embedded libraries
func (s *Schematic) ResolveDevice(part *Part) (*DeviceSet, *Device) {
	lib := s.FindLibrary(part.Library)
	if lib == nil {
		return nil, nil
	}
	ds := lib.FindDeviceSet(part.DeviceSet)
	if ds == nil {
		return nil, nil
	}
	return ds, ds.FindDevice(part.Device)
}

func (s *Schematic) Dump(w io.Writer, level int) {
	dumpf(w, level, "Schematic:{XRefLabel='%s', XRefPart='%s'}", s.XRefLabel, s.XRefPart)
	s.Description.Dump(w, level+1)
	dumpList(w, level+1, "Libraries", s.Libraries)
	dumpList(w, level+1, "Attributes", s.Attributes)
	dumpList(w, level+1, "VariantDefs", s.VariantDefs)
	dumpList(w, level+1, "Classes", s.Classes)
	dumpList(w, level+1, "Parts", s.Parts)
	dumpList(w, level+1, "Sheets", s.Sheets)
	dumpList(w, level+1, "Errors", s.Errors)
}

func (s *Schematic) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "schematic") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("xreflabel", &s.XRefLabel)
	r.String("xrefpart", &s.XRefPart)
	s.Description.Parse(el.SelectElement("description"), warn)
	s.Libraries = parseWrapped[Library](el, "libraries", "library", warn)
	s.Attributes = parseWrapped[Attribute](el, "attributes", "attribute", warn)
	s.VariantDefs = parseWrapped[VariantDef](el, "variantdefs", "variantdef", warn)
	s.Classes = parseWrapped[Class](el, "classes", "class", warn)
	s.Parts = parseWrapped[Part](el, "parts", "part", warn)
	s.Sheets = parseWrapped[Sheet](el, "sheets", "sheet", warn)
	s.Errors = parseWrapped[Approved](el, "errors", "approved", warn)
	return true
}

func (s *Schematic) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "schematic", writeDefaults)
	w.StringOpt("xreflabel", s.XRefLabel)
	w.StringOpt("xrefpart", s.XRefPart)
	s.Description.Serialize(w.Element(), writeDefaults)
	serializeList(w.Child("libraries"), s.Libraries, writeDefaults)
	serializeList(w.Child("attributes"), s.Attributes, writeDefaults)
	serializeList(w.Child("variantdefs"), s.VariantDefs, writeDefaults)
	serializeList(w.Child("classes"), s.Classes, writeDefaults)
	serializeList(w.Child("parts"), s.Parts, writeDefaults)
	serializeList(w.Child("sheets"), s.Sheets, writeDefaults)
	serializeList(w.Child("errors"), s.Errors, writeDefaults)
	return true
}

// Scale scales library packages, attributes, part attributes and sheets
func (s *Schematic) Scale(factor float64) {
	for i := range s.Libraries {
		s.Libraries[i].ScalePackages(factor)
	}
	scaleList(s.Attributes, factor)
	scaleList(s.Parts, factor)
	scaleList(s.Sheets, factor)
}
