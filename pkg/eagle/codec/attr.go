package codec

import (
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Boolean tokens
const (
	Yes = "yes"
	No  = "no"
)

// FormatFloat renders v as the shortest decimal that parses back to v
func FormatFloat(v float64) string {
	if v == 0 {
		return "0" // avoid "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseFloat parses a decimal number, ignoring surrounding whitespace.
// NaN and infinities are rejected.
func ParseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseInt parses a decimal integer, ignoring surrounding whitespace
func ParseInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatBool renders a boolean as yes/no
func FormatBool(v bool) string {
	if v {
		return Yes
	}
	return No
}

// Reader decodes typed attributes of a single element.
// Every method leaves the destination untouched when the attribute is
// absent or cannot be decoded; decode failures are added to the sink.
type Reader struct {
	el   *etree.Element
	warn *Warnings
}

// NewReader returns a reader over el's attributes
func NewReader(el *etree.Element, warn *Warnings) *Reader {
	return &Reader{el: el, warn: warn}
}

// Element returns the underlying element
func (r *Reader) Element() *etree.Element {
	return r.el
}

// Has reports whether the attribute is present
func (r *Reader) Has(key string) bool {
	return r.el.SelectAttr(key) != nil
}

func (r *Reader) lookup(key string) (string, bool) {
	a := r.el.SelectAttr(key)
	if a == nil || a.Value == "" {
		return "", false
	}
	return a.Value, true
}

// Warn records a rejected attribute value
func (r *Reader) Warn(key, value, reason string) {
	r.warn.Add(r.el.GetPath(), key, value, reason)
}

// String copies a present attribute verbatim (an empty value is kept)
func (r *Reader) String(key string, dst *string) {
	if a := r.el.SelectAttr(key); a != nil {
		*dst = a.Value
	}
}

// Float decodes a floating-point attribute
func (r *Reader) Float(key string, dst *float64) {
	s, ok := r.lookup(key)
	if !ok {
		return
	}
	v, ok := ParseFloat(s)
	if !ok {
		r.Warn(key, s, "not a number")
		return
	}
	*dst = v
}

// Int decodes an integer attribute
func (r *Reader) Int(key string, dst *int) {
	s, ok := r.lookup(key)
	if !ok {
		return
	}
	v, ok := ParseInt(s)
	if !ok {
		r.Warn(key, s, "not an integer")
		return
	}
	*dst = v
}

// Bool decodes a yes/no attribute
func (r *Reader) Bool(key string, dst *bool) {
	s, ok := r.lookup(key)
	if !ok {
		return
	}
	switch s {
	case Yes:
		*dst = true
	case No:
		*dst = false
	default:
		r.Warn(key, s, "not yes/no")
	}
}

// Transform decodes a transformation string into the given outputs.
// Pass nil for a flag the element does not model; the flag is then ignored.
func (r *Reader) Transform(key string, rotation *float64, mirror, spin *bool) {
	s, ok := r.lookup(key)
	if !ok {
		return
	}
	t, ok := DecodeTransform(s)
	if !ok {
		r.Warn(key, s, "not a transformation")
		return
	}
	*rotation = t.Rotation
	if mirror != nil {
		*mirror = t.Mirror
	}
	if spin != nil {
		*spin = t.Spin
	}
}

// Text returns the element's leading character data
func (r *Reader) Text() string {
	return r.el.Text()
}

// ReadEnum decodes an enumerated attribute.
// Unknown tokens leave dst unchanged and are recorded as warnings.
func ReadEnum[T ~int](r *Reader, key string, dst *T, table *Enum[T]) {
	s, ok := r.lookup(key)
	if !ok {
		return
	}
	v, ok := table.Lookup(s)
	if !ok {
		r.Warn(key, s, "unknown token")
		return
	}
	*dst = v
}

// Writer encodes typed attributes onto a freshly created element.
// The *Default variants apply the elision policy: the attribute is
// written only when it differs from def or when writing all defaults.
type Writer struct {
	el  *etree.Element
	all bool
}

// NewWriter creates a child element named tag under parent
func NewWriter(parent *etree.Element, tag string, writeDefaults bool) *Writer {
	return &Writer{el: parent.CreateElement(tag), all: writeDefaults}
}

// Element returns the element being written
func (w *Writer) Element() *etree.Element {
	return w.el
}

// WriteDefaults reports whether defaults are being written
func (w *Writer) WriteDefaults() bool {
	return w.all
}

// String writes a required string attribute
func (w *Writer) String(key, v string) {
	w.el.CreateAttr(key, v)
}

// StringOpt writes an implied string attribute when it is non-empty
func (w *Writer) StringOpt(key, v string) {
	if w.all || v != "" {
		w.el.CreateAttr(key, v)
	}
}

// StringDefault writes a string attribute unless it equals def
func (w *Writer) StringDefault(key, v, def string) {
	if w.all || v != def {
		w.el.CreateAttr(key, v)
	}
}

// Float writes a required number
func (w *Writer) Float(key string, v float64) {
	w.el.CreateAttr(key, FormatFloat(v))
}

// FloatDefault writes a number unless it equals def
func (w *Writer) FloatDefault(key string, v, def float64) {
	if w.all || v != def {
		w.el.CreateAttr(key, FormatFloat(v))
	}
}

// Int writes a required integer
func (w *Writer) Int(key string, v int) {
	w.el.CreateAttr(key, strconv.Itoa(v))
}

// IntDefault writes an integer unless it equals def
func (w *Writer) IntDefault(key string, v, def int) {
	if w.all || v != def {
		w.el.CreateAttr(key, strconv.Itoa(v))
	}
}

// Bool writes a required yes/no attribute
func (w *Writer) Bool(key string, v bool) {
	w.el.CreateAttr(key, FormatBool(v))
}

// BoolDefault writes a yes/no attribute unless it equals def
func (w *Writer) BoolDefault(key string, v, def bool) {
	if w.all || v != def {
		w.el.CreateAttr(key, FormatBool(v))
	}
}

// Transform writes a "rot" style attribute unless it is the identity R0
func (w *Writer) Transform(key string, t Transform) {
	if w.all || !t.IsIdentity() {
		w.el.CreateAttr(key, EncodeTransform(t))
	}
}

// Text sets the element's character data
func (w *Writer) Text(s string) {
	w.el.SetText(s)
}

// Child creates a wrapper element such as <layers> under the element
func (w *Writer) Child(tag string) *etree.Element {
	return w.el.CreateElement(tag)
}

// WriteEnum writes an enumerated attribute unless it equals def
func WriteEnum[T ~int](w *Writer, key string, v, def T, table *Enum[T]) {
	if w.all || v != def {
		w.el.CreateAttr(key, table.Name(v))
	}
}

// WriteEnumRequired writes an enumerated attribute unconditionally
func WriteEnumRequired[T ~int](w *Writer, key string, v T, table *Enum[T]) {
	w.el.CreateAttr(key, table.Name(v))
}
