package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Board is the printed circuit board layout of a design
type Board struct {
	Description Description
	Plain       Plain
	Libraries   []Library
	Attributes  []Attribute
	VariantDefs []VariantDef
	Classes     []Class
	DesignRules DesignRule
	Autorouter  []Pass
	Elements    []Element
	Signals     []Signal
	Errors      []Approved
}

// NewBoard creates an empty board
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

func (b *Board) Clear() {
	*b = Board{}
	b.Description.Clear()
}

func (b *Board) Clone() *Board {
	c := *b
	c.Plain = *b.Plain.Clone()
	c.Libraries = cloneList(b.Libraries)
	c.Attributes = cloneList(b.Attributes)
	c.VariantDefs = cloneList(b.VariantDefs)
	c.Classes = cloneList(b.Classes)
	c.DesignRules = *b.DesignRules.Clone()
	c.Autorouter = cloneList(b.Autorouter)
	c.Elements = cloneList(b.Elements)
	c.Signals = cloneList(b.Signals)
	c.Errors = cloneList(b.Errors)
	return &c
}

func (b *Board) Assign(src *Board) { *b = *src.Clone() }

// FindLibrary returns the named embedded library
func (b *Board) FindLibrary(name string) *Library {
	return findLibrary(b.Libraries, name)
}

// FindElement returns the named element
func (b *Board) FindElement(name string) *Element {
	for i := range b.Elements {
		if b.Elements[i].Name == name {
			return &b.Elements[i]
		}
	}
	return nil
}

// FindSignal returns the named signal
func (b *Board) FindSignal(name string) *Signal {
	for i := range b.Signals {
		if b.Signals[i].Name == name {
			return &b.Signals[i]
		}
	}
	return nil
}

// ElementPackage returns the library package an element places
func (b *Board) ElementPackage(e *Element) *Package {
	lib := b.FindLibrary(e.Library)
	if lib == nil {
		return nil
	}
	return lib.FindPackage(e.Package)
}

func (b *Board) Dump(w io.Writer, level int) {
	dumpf(w, level, "Board:{}")
	b.Description.Dump(w, level+1)
	b.Plain.Dump(w, level+1)
	dumpList(w, level+1, "Libraries", b.Libraries)
	dumpList(w, level+1, "Attributes", b.Attributes)
	dumpList(w, level+1, "VariantDefs", b.VariantDefs)
	dumpList(w, level+1, "Classes", b.Classes)
	b.DesignRules.Dump(w, level+1)
	dumpList(w, level+1, "Autorouter", b.Autorouter)
	dumpList(w, level+1, "Elements", b.Elements)
	dumpList(w, level+1, "Signals", b.Signals)
	dumpList(w, level+1, "Errors", b.Errors)
}

func (b *Board) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "board") {
		return false
	}
	b.Description.Parse(el.SelectElement("description"), warn)
	b.Plain.Parse(el.SelectElement("plain"), warn)
	b.Libraries = parseWrapped[Library](el, "libraries", "library", warn)
	b.Attributes = parseWrapped[Attribute](el, "attributes", "attribute", warn)
	b.VariantDefs = parseWrapped[VariantDef](el, "variantdefs", "variantdef", warn)
	b.Classes = parseWrapped[Class](el, "classes", "class", warn)
	b.DesignRules.Parse(el.SelectElement("designrules"), warn)
	b.Autorouter = parseWrapped[Pass](el, "autorouter", "pass", warn)
	b.Elements = parseWrapped[Element](el, "elements", "element", warn)
	b.Signals = parseWrapped[Signal](el, "signals", "signal", warn)
	b.Errors = parseWrapped[Approved](el, "errors", "approved", warn)
	return true
}

func (b *Board) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	el := parent.CreateElement("board")
	b.Description.Serialize(el, writeDefaults)
	b.Plain.Serialize(el, writeDefaults)
	serializeList(el.CreateElement("libraries"), b.Libraries, writeDefaults)
	serializeList(el.CreateElement("attributes"), b.Attributes, writeDefaults)
	serializeList(el.CreateElement("variantdefs"), b.VariantDefs, writeDefaults)
	serializeList(el.CreateElement("classes"), b.Classes, writeDefaults)
	b.DesignRules.Serialize(el, writeDefaults)
	serializeList(el.CreateElement("autorouter"), b.Autorouter, writeDefaults)
	serializeList(el.CreateElement("elements"), b.Elements, writeDefaults)
	serializeList(el.CreateElement("signals"), b.Signals, writeDefaults)
	serializeList(el.CreateElement("errors"), b.Errors, writeDefaults)
	return true
}

// Scale scales the plain items, library packages, attributes, elements and signals
func (b *Board) Scale(factor float64) {
	b.Plain.Scale(factor)
	for i := range b.Libraries {
		b.Libraries[i].ScalePackages(factor)
	}
	scaleList(b.Attributes, factor)
	scaleList(b.Elements, factor)
	scaleList(b.Signals, factor)
}
