package eagle

import (
	"fmt"
	"io"
	"strings"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Entity is the contract shared by every element of the object model.
//
// Parse populates the entity from el and its direct children. It returns
// false only when el is nil or has a different tag; malformed attribute
// values are reported through warn and leave the field unchanged.
//
// Serialize appends one element for the entity under parent. Optional
// attributes equal to their default are omitted unless writeDefaults is set.
type Entity interface {
	Clear()
	Dump(w io.Writer, level int)
	Parse(el *etree.Element, warn *codec.Warnings) bool
	Serialize(parent *etree.Element, writeDefaults bool) bool
}

// Scaler is implemented by entities carrying lengths
type Scaler interface {
	Scale(factor float64)
}

// DumpString renders an entity's debug dump
func DumpString(e Entity) string {
	var b strings.Builder
	e.Dump(&b, 0)
	return b.String()
}

// is reports whether el is a present element with the given tag
func is(el *etree.Element, tag string) bool {
	return el != nil && el.Tag == tag
}

// dumpf writes one indented dump line
func dumpf(w io.Writer, level int, format string, args ...any) {
	io.WriteString(w, strings.Repeat("\t", level))
	fmt.Fprintf(w, format, args...)
	io.WriteString(w, "\n")
}

// dumpList writes a labelled block of child dumps
func dumpList[T any, P interface {
	*T
	Dump(io.Writer, int)
}](w io.Writer, level int, label string, items []T) {
	if len(items) == 0 {
		return
	}
	dumpf(w, level, "%s=", label)
	dumpf(w, level, "{")
	for i := range items {
		P(&items[i]).Dump(w, level+1)
	}
	dumpf(w, level, "}")
}

// parseList parses every direct child of el named tag into a fresh slice
func parseList[T any, P interface {
	*T
	Clear()
	Parse(*etree.Element, *codec.Warnings) bool
}](el *etree.Element, tag string, warn *codec.Warnings) []T {
	if el == nil {
		return nil
	}
	children := el.SelectElements(tag)
	if len(children) == 0 {
		return nil
	}
	out := make([]T, 0, len(children))
	for _, c := range children {
		var item T
		P(&item).Clear()
		P(&item).Parse(c, warn)
		out = append(out, item)
	}
	return out
}

// parseWrapped parses the tag children of the first wrapper child of el,
// e.g. every <layer> inside <layers>
func parseWrapped[T any, P interface {
	*T
	Clear()
	Parse(*etree.Element, *codec.Warnings) bool
}](el *etree.Element, wrapper, tag string, warn *codec.Warnings) []T {
	if el == nil {
		return nil
	}
	return parseList[T, P](el.SelectElement(wrapper), tag, warn)
}

// serializeList writes every item under parent
func serializeList[T any, P interface {
	*T
	Serialize(*etree.Element, bool) bool
}](parent *etree.Element, items []T, writeDefaults bool) {
	for i := range items {
		P(&items[i]).Serialize(parent, writeDefaults)
	}
}

// cloneList deep-copies a slice of entities
func cloneList[T any, P interface {
	*T
	Clone() *T
}](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i := range items {
		out[i] = *P(&items[i]).Clone()
	}
	return out
}

// scaleList scales every item in place
func scaleList[T any, P interface {
	*T
	Scale(float64)
}](items []T, factor float64) {
	for i := range items {
		P(&items[i]).Scale(factor)
	}
}

// clampRotation limits a free rotation to [0, 359.999]
func clampRotation(v float64) float64 {
	return min(max(v, 0), 359.999)
}

// snapRotation rounds a rotation to the nearest quarter turn
func snapRotation(v float64) float64 {
	switch {
	case v < 45 || v >= 315:
		return 0
	case v < 135:
		return 90
	case v < 225:
		return 180
	default:
		return 270
	}
}

// fmtf is the number format used in dumps
func fmtf(v float64) string {
	return codec.FormatFloat(v)
}
