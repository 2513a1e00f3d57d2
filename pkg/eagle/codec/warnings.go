package codec

import "fmt"

// Warning describes an attribute that was present but could not be decoded
type Warning struct {
	Path   string // Element path, e.g. /eagle/drawing/board/plain/hole
	Attr   string // Attribute name
	Value  string // Raw attribute text
	Reason string // Why the value was rejected
}

// String formats the warning as path@attr: reason (value)
func (w Warning) String() string {
	return fmt.Sprintf("%s@%s: %s (%q)", w.Path, w.Attr, w.Reason, w.Value)
}

// Warnings collects decode warnings during a parse.
// A nil *Warnings discards everything added to it.
type Warnings []Warning

// Add records a warning
func (w *Warnings) Add(path, attr, value, reason string) {
	if w == nil {
		return
	}
	*w = append(*w, Warning{Path: path, Attr: attr, Value: value, Reason: reason})
}

// Len returns the number of recorded warnings
func (w *Warnings) Len() int {
	if w == nil {
		return 0
	}
	return len(*w)
}

// ForAttr returns the warnings recorded for the given attribute name
func (w *Warnings) ForAttr(attr string) []Warning {
	if w == nil {
		return nil
	}
	var out []Warning
	for _, item := range *w {
		if item.Attr == attr {
			out = append(out, item)
		}
	}
	return out
}
