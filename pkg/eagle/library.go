package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Library is a collection of packages, symbols and device sets.
// Name is empty for the library of a standalone .lbr drawing.
type Library struct {
	Name        string
	Description Description
	Packages    []Package
	Symbols     []Symbol
	DeviceSets  []DeviceSet
}

// NewLibrary creates an empty named library
func NewLibrary(name string) *Library {
	l := &Library{}
	l.Clear()
	l.Name = name
	return l
}

func (l *Library) Clear() {
	*l = Library{}
	l.Description.Clear()
}

func (l *Library) Clone() *Library {
	c := *l
	c.Packages = cloneList(l.Packages)
	c.Symbols = cloneList(l.Symbols)
	c.DeviceSets = cloneList(l.DeviceSets)
	return &c
}

func (l *Library) Assign(src *Library) { *l = *src.Clone() }

// FindPackage returns the named package
func (l *Library) FindPackage(name string) *Package {
	for i := range l.Packages {
		if l.Packages[i].Name == name {
			return &l.Packages[i]
		}
	}
	return nil
}

// FindSymbol returns the named symbol
func (l *Library) FindSymbol(name string) *Symbol {
	for i := range l.Symbols {
		if l.Symbols[i].Name == name {
			return &l.Symbols[i]
		}
	}
	return nil
}

// FindDeviceSet returns the named device set
func (l *Library) FindDeviceSet(name string) *DeviceSet {
	for i := range l.DeviceSets {
		if l.DeviceSets[i].Name == name {
			return &l.DeviceSets[i]
		}
	}
	return nil
}

func (l *Library) Dump(w io.Writer, level int) {
	dumpf(w, level, "Library:{Name='%s'}", l.Name)
	l.Description.Dump(w, level+1)
	dumpList(w, level+1, "Packages", l.Packages)
	dumpList(w, level+1, "Symbols", l.Symbols)
	dumpList(w, level+1, "DeviceSets", l.DeviceSets)
}

func (l *Library) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "library") {
		return false
	}
	codec.NewReader(el, warn).String("name", &l.Name)
	l.Description.Parse(el.SelectElement("description"), warn)
	l.Packages = parseWrapped[Package](el, "packages", "package", warn)
	l.Symbols = parseWrapped[Symbol](el, "symbols", "symbol", warn)
	l.DeviceSets = parseWrapped[DeviceSet](el, "devicesets", "deviceset", warn)
	return true
}

func (l *Library) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "library", writeDefaults)
	if l.Name != "" {
		w.String("name", l.Name)
	}
	l.Description.Serialize(w.Element(), writeDefaults)
	serializeList(w.Child("packages"), l.Packages, writeDefaults)
	serializeList(w.Child("symbols"), l.Symbols, writeDefaults)
	serializeList(w.Child("devicesets"), l.DeviceSets, writeDefaults)
	return true
}

// Scale scales packages, symbols and device sets
func (l *Library) Scale(factor float64) {
	l.ScalePackages(factor)
	scaleList(l.Symbols, factor)
	scaleList(l.DeviceSets, factor)
}

// ScalePackages scales only the packages; boards and schematics use this
// for their embedded libraries
func (l *Library) ScalePackages(factor float64) {
	scaleList(l.Packages, factor)
}

// findLibrary returns the named library of a list
func findLibrary(libs []Library, name string) *Library {
	for i := range libs {
		if libs[i].Name == name {
			return &libs[i]
		}
	}
	return nil
}
