package eagle

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// Doctype expected on Eagle files
const (
	DoctypeName     = "eagle"
	DoctypeSystemID = "eagle.dtd"
)

var (
	// ErrOpen is returned when the source or destination cannot be opened
	ErrOpen = errors.New("cannot open file")
	// ErrMalformedXML is returned when the input is not well-formed XML
	ErrMalformedXML = errors.New("malformed XML")
)

// Document is an Eagle file: the <eagle> root with its drawing and
// compatibility notes, plus the options used to read and write it.
type Document struct {
	// VerifyDocType makes loading check the <!DOCTYPE eagle SYSTEM "eagle.dtd"> directive
	VerifyDocType bool
	// WriteDefaults writes optional attributes even when they hold their default
	WriteDefaults bool
	// Indentation is the number of spaces per nesting level on save
	Indentation int

	// ValidDocType is the outcome of the last doctype check
	ValidDocType bool
	// ValidXMLData reports whether the last load found an <eagle> root with a drawing
	ValidXMLData bool

	Version   string
	PreNotes  Compatibility
	Drawing   Drawing
	PostNotes Compatibility

	// Warnings collects attribute values rejected by the last load
	Warnings codec.Warnings
}

// NewDocument creates an empty mixed-mode document with the default options
func NewDocument() *Document {
	d := &Document{}
	d.Clear()
	return d
}

// Clear resets content and options to their defaults
func (d *Document) Clear() {
	*d = Document{
		VerifyDocType: true,
		WriteDefaults: true,
		Version:       EagleVersion,
	}
	d.Drawing.Clear()
}

func (d *Document) Clone() *Document {
	c := *d
	c.PreNotes = *d.PreNotes.Clone()
	c.Drawing = *d.Drawing.Clone()
	c.PostNotes = *d.PostNotes.Clone()
	c.Warnings = append(codec.Warnings(nil), d.Warnings...)
	return &c
}

func (d *Document) Assign(src *Document) { *d = *src.Clone() }

// resetContent clears what a load replaces, keeping the options
func (d *Document) resetContent() {
	d.Version = EagleVersion
	d.PreNotes.Clear()
	d.Drawing.Clear()
	d.PostNotes.Clear()
	d.Warnings = nil
	d.ValidDocType = !d.VerifyDocType
	d.ValidXMLData = false
}

func (d *Document) Dump(w io.Writer, level int) {
	dumpf(w, level, "Eagle:{Version=%s}", d.Version)
	d.PreNotes.Dump(w, level+1)
	d.Drawing.Dump(w, level+1)
	d.PostNotes.Dump(w, level+1)
}

// Load reads an Eagle file from disk
func (d *Document) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	defer f.Close()
	return d.Read(f)
}

// Read parses an Eagle file. A well-formed file always loads; structural
// problems are reported through ValidDocType, ValidXMLData and Warnings.
func (d *Document) Read(r io.Reader) error {
	d.resetContent()

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(r); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedXML, err)
	}
	if doc.Root() == nil {
		return fmt.Errorf("%w: no root element", ErrMalformedXML)
	}

	if d.VerifyDocType {
		dt, ok := codec.FindDoctype(doc)
		d.ValidDocType = ok && dt.Name == DoctypeName && dt.SystemID == DoctypeSystemID
	}
	d.ValidXMLData = d.Parse(doc.Root(), &d.Warnings)
	return nil
}

// Parse reads the <eagle> element. It reports whether a drawing was found.
// Compatibility notes before the drawing go to PreNotes, those after it
// to PostNotes.
func (d *Document) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "eagle") {
		return false
	}
	codec.NewReader(el, warn).String("version", &d.Version)
	found := false
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case "compatibility":
			if found {
				d.PostNotes.Parse(c, warn)
			} else {
				d.PreNotes.Parse(c, warn)
			}
		case "drawing":
			if !found {
				found = d.Drawing.Parse(c, warn)
			}
		}
	}
	return found
}

// Serialize appends the <eagle> element under parent
func (d *Document) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "eagle", writeDefaults)
	w.String("version", d.Version)
	d.PreNotes.Serialize(w.Element(), writeDefaults)
	d.Drawing.Serialize(w.Element(), writeDefaults)
	d.PostNotes.Serialize(w.Element(), writeDefaults)
	return true
}

// XML builds the complete XML document with declaration and doctype
func (d *Document) XML() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.CreateDirective(codec.FormatDoctype(DoctypeName, DoctypeSystemID))
	d.Serialize(&doc.Element, d.WriteDefaults)
	doc.Indent(max(d.Indentation, 0))
	return doc
}

// Write serializes the document to w
func (d *Document) Write(w io.Writer) error {
	if _, err := d.XML().WriteTo(w); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Save writes the document to disk, replacing any existing file
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Scale multiplies every length in the drawing by factor
func (d *Document) Scale(factor float64) {
	d.Drawing.Scale(factor)
}

// Load is a convenience wrapper reading path into a new document
func Load(path string) (*Document, error) {
	d := NewDocument()
	if err := d.Load(path); err != nil {
		return nil, err
	}
	return d, nil
}
