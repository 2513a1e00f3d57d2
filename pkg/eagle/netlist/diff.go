package netlist

import (
	"sort"
	"strings"
)

// Side tells which netlist a difference was found in
type Side string

const (
	OnlyInA Side = "a"
	OnlyInB Side = "b"
)

// Difference is a net whose pin set has no exact counterpart in the other
// netlist
type Difference struct {
	Side Side   `json:"side"`
	Net  string `json:"net"`
	Pins []Pin  `json:"pins"`
}

// Diff compares the connectivity of two finalized netlists. Nets are
// matched by pin set, not by name, so a renamed net is no difference.
// An empty result means both describe the same connections.
func Diff(a, b *Netlist) []Difference {
	inA := netsByKey(a)
	inB := netsByKey(b)

	var out []Difference
	for key, n := range inA {
		if _, ok := inB[key]; !ok {
			out = append(out, Difference{Side: OnlyInA, Net: n.Name, Pins: n.Pins})
		}
	}
	for key, n := range inB {
		if _, ok := inA[key]; !ok {
			out = append(out, Difference{Side: OnlyInB, Net: n.Name, Pins: n.Pins})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Side != out[j].Side {
			return out[i].Side < out[j].Side
		}
		return out[i].Net < out[j].Net
	})
	return out
}

func netsByKey(nl *Netlist) map[string]*Net {
	out := make(map[string]*Net, len(nl.Nets))
	for _, n := range nl.Nets {
		keys := make([]string, len(n.Pins))
		for i, p := range n.Pins {
			keys[i] = pinKey(p)
		}
		sort.Strings(keys)
		out[strings.Join(keys, "\x01")] = n
	}
	return out
}
