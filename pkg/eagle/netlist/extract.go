package netlist

import (
	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle"
)

// FromBoard builds the finalized netlist of a board's signals. Every
// contactref becomes an element/pad pin; signals that share a pad merge.
func FromBoard(b *eagle.Board) *Netlist {
	nl := New()
	for i := range b.Signals {
		s := &b.Signals[i]
		var first *Pin
		for _, c := range s.ContactRefs {
			pin := Pin{Component: c.Element, Pad: c.Pad}
			nl.Add(s.Name, pin)
			if first == nil {
				first = &pin
				continue
			}
			nl.Connect(*first, pin)
		}
	}
	nl.Finalize()
	return nl
}

// FromSchematic builds the finalized netlist of a schematic. Gate pins
// are resolved to pads through part, library, device set, device and
// connect; a connect listing several pads joins them all. Pins that
// cannot be resolved keep their gate.pin name. Nets with the same name on
// different sheets are one net.
func FromSchematic(s *eagle.Schematic) *Netlist {
	nl := New()
	byName := make(map[string]Pin)
	for si := range s.Sheets {
		for ni := range s.Sheets[si].Nets {
			net := &s.Sheets[si].Nets[ni]
			for _, ref := range net.PinRefs() {
				for _, pin := range resolvePins(s, ref) {
					nl.Add(net.Name, pin)
					if first, ok := byName[net.Name]; ok {
						nl.Connect(first, pin)
					} else {
						byName[net.Name] = pin
					}
				}
			}
		}
	}
	nl.Finalize()
	return nl
}

// resolvePins maps a schematic pin reference to the pads it drives
func resolvePins(s *eagle.Schematic, ref eagle.PinRef) []Pin {
	fallback := []Pin{{Component: ref.Part, Pad: ref.Gate + "." + ref.Pin}}
	part := s.FindPart(ref.Part)
	if part == nil {
		return fallback
	}
	_, dev := s.ResolveDevice(part)
	if dev == nil {
		return fallback
	}
	c := dev.FindConnect(ref.Gate, ref.Pin)
	if c == nil {
		return fallback
	}
	pads := c.Pads()
	if len(pads) == 0 {
		return fallback
	}
	out := make([]Pin, 0, len(pads))
	for _, pad := range pads {
		out = append(out, Pin{Component: ref.Part, Pad: pad})
	}
	return out
}
