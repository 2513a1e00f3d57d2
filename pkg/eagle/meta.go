package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// EagleVersion is the DTD version this package reads and writes
const EagleVersion = "6.4"

// DefaultLanguage is the language of a description without a language attribute
const DefaultLanguage = "en"

// Description is free text, usually HTML, attached to a container
type Description struct {
	Language string
	Text     string
}

// NewDescription creates an English description
func NewDescription(text string) Description {
	return Description{Language: DefaultLanguage, Text: text}
}

func (d *Description) Clear()                  { *d = Description{Language: DefaultLanguage} }
func (d *Description) Clone() *Description     { c := *d; return &c }
func (d *Description) Assign(src *Description) { *d = *src.Clone() }

// IsEmpty reports whether the description carries no text
func (d *Description) IsEmpty() bool { return d.Text == "" }

func (d *Description) Dump(w io.Writer, level int) {
	dumpf(w, level, "Description:{Language='%s', Text='%s'}", d.Language, d.Text)
}

func (d *Description) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "description") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("language", &d.Language)
	d.Text = codec.Unescape(r.Text())
	return true
}

// Serialize writes nothing for an empty description
func (d *Description) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	if d.IsEmpty() {
		return true
	}
	w := codec.NewWriter(parent, "description", writeDefaults)
	w.StringDefault("language", d.Language, DefaultLanguage)
	w.Text(d.Text)
	return true
}

// Note is a compatibility message written by newer Eagle versions
type Note struct {
	Version  string
	Severity Severity
	Text     string
}

func (n *Note) Clear()           { *n = Note{Version: EagleVersion, Severity: SeverityInfo} }
func (n *Note) Clone() *Note     { c := *n; return &c }
func (n *Note) Assign(src *Note) { *n = *src.Clone() }

func (n *Note) Dump(w io.Writer, level int) {
	dumpf(w, level, "Note:{Version=%s, Severity=%s, Text='%s'}", n.Version, n.Severity, n.Text)
}

func (n *Note) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "note") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.String("version", &n.Version)
	codec.ReadEnum(r, "severity", &n.Severity, severityNames)
	n.Text = r.Text()
	return true
}

func (n *Note) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "note", writeDefaults)
	w.String("version", n.Version)
	codec.WriteEnumRequired(w, "severity", n.Severity, severityNames)
	w.Text(n.Text)
	return true
}

// Compatibility groups the notes around the drawing
type Compatibility struct {
	Notes []Note
}

func (c *Compatibility) Clear() { *c = Compatibility{} }

func (c *Compatibility) Clone() *Compatibility {
	return &Compatibility{Notes: cloneList(c.Notes)}
}

func (c *Compatibility) Assign(src *Compatibility) { *c = *src.Clone() }

func (c *Compatibility) Dump(w io.Writer, level int) {
	dumpf(w, level, "Compatibility:{}")
	dumpList(w, level+1, "Notes", c.Notes)
}

func (c *Compatibility) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "compatibility") {
		return false
	}
	c.Notes = parseList[Note](el, "note", warn)
	return true
}

// Serialize writes nothing when there are no notes
func (c *Compatibility) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	if len(c.Notes) == 0 {
		return true
	}
	el := parent.CreateElement("compatibility")
	serializeList(el, c.Notes, writeDefaults)
	return true
}

// Technology is a named attribute set of a device
type Technology struct {
	Name       string
	Attributes []Attribute
}

func (t *Technology) Clear() { *t = Technology{} }

func (t *Technology) Clone() *Technology {
	c := *t
	c.Attributes = cloneList(t.Attributes)
	return &c
}

func (t *Technology) Assign(src *Technology) { *t = *src.Clone() }

// Attribute returns the named attribute of the technology
func (t *Technology) Attribute(name string) *Attribute {
	return findAttribute(t.Attributes, name)
}

func (t *Technology) Dump(w io.Writer, level int) {
	dumpf(w, level, "Technology:{Name='%s'}", t.Name)
	dumpList(w, level+1, "Attributes", t.Attributes)
}

func (t *Technology) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "technology") {
		return false
	}
	codec.NewReader(el, warn).String("name", &t.Name)
	t.Attributes = parseList[Attribute](el, "attribute", warn)
	return true
}

func (t *Technology) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "technology", writeDefaults)
	w.String("name", t.Name)
	serializeList(w.Element(), t.Attributes, writeDefaults)
	return true
}

func (t *Technology) Scale(factor float64) {
	scaleList(t.Attributes, factor)
}
