package bom

import (
	"sort"
	"strings"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle"
)

// Entry is one line of a bill of materials
type Entry struct {
	Value       string   `json:"value"`
	Package     string   `json:"package"`
	Library     string   `json:"library"`
	Designators []string `json:"designators"`
}

// Quantity is the number of designators on the line
func (e Entry) Quantity() int {
	return len(e.Designators)
}

// Options controls grouping and filtering
type Options struct {
	// GroupByValue merges parts with equal value and package into one line
	GroupByValue bool
	// SkipPrefixes drops designators starting with any of these, e.g. TP or FID
	SkipPrefixes []string
}

// DefaultOptions groups by value and keeps every part
func DefaultOptions() Options {
	return Options{GroupByValue: true}
}

func (o Options) skip(name string) bool {
	for _, p := range o.SkipPrefixes {
		if p != "" && strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

type item struct {
	name, value, pkg, library string
}

// FromBoard lists the board's elements
func FromBoard(b *eagle.Board, opts Options) []Entry {
	items := make([]item, 0, len(b.Elements))
	for _, e := range b.Elements {
		items = append(items, item{name: e.Name, value: e.Value, pkg: e.Package, library: e.Library})
	}
	return build(items, opts)
}

// FromSchematic lists the schematic's parts. The package comes from the
// part's device; parts whose device has no package (supply symbols,
// frames) are left out. An empty value falls back to the device set and
// device names.
func FromSchematic(s *eagle.Schematic, opts Options) []Entry {
	items := make([]item, 0, len(s.Parts))
	for i := range s.Parts {
		p := &s.Parts[i]
		ds, dev := s.ResolveDevice(p)
		if dev == nil || dev.Package == "" {
			continue
		}
		value := p.Value
		if value == "" {
			value = ds.Name + dev.Name
		}
		items = append(items, item{name: p.Name, value: value, pkg: dev.Package, library: p.Library})
	}
	return build(items, opts)
}

func build(items []item, opts Options) []Entry {
	var entries []Entry
	index := make(map[[3]string]int)
	for _, it := range items {
		if opts.skip(it.name) {
			continue
		}
		key := [3]string{it.value, it.pkg, it.library}
		if i, ok := index[key]; ok && opts.GroupByValue {
			entries[i].Designators = append(entries[i].Designators, it.name)
			continue
		}
		index[key] = len(entries)
		entries = append(entries, Entry{Value: it.value, Package: it.pkg, Library: it.library, Designators: []string{it.name}})
	}

	for i := range entries {
		sort.Slice(entries[i].Designators, func(a, b int) bool {
			return NaturalLess(entries[i].Designators[a], entries[i].Designators[b])
		})
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return NaturalLess(entries[a].Designators[0], entries[b].Designators[0])
	})
	return entries
}

// NaturalLess orders designators with embedded numbers numerically,
// so R2 sorts before R10
func NaturalLess(a, b string) bool {
	for a != "" && b != "" {
		ca, cb := a[0], b[0]
		if isDigit(ca) && isDigit(cb) {
			na, ra := splitNumber(a)
			nb, rb := splitNumber(b)
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			a, b = ra, rb
			continue
		}
		if ca != cb {
			return ca < cb
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// splitNumber cuts the leading digit run, without leading zeros
func splitNumber(s string) (num, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	num = strings.TrimLeft(s[:i], "0")
	return num, s[i:]
}
