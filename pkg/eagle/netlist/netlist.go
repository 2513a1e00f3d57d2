package netlist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// Pin is one electrical endpoint: a pad of a board element, or a pad of a
// schematic part once resolved through its device.
type Pin struct {
	Component string `json:"component"`
	Pad       string `json:"pad"`
}

func (p Pin) String() string {
	return p.Component + "." + p.Pad
}

// Net represents a connected set of pins that share the same electrical net.
type Net struct {
	Name string `json:"name"`
	Pins []Pin  `json:"pins"`
}

// Netlist tracks connectivity between pins using a union-find data
// structure. Several named signals collapse into one net when they share
// a pin.
type Netlist struct {
	parent map[string]string // Maps pin key to parent pin key
	rank   map[string]int
	names  map[string]string // Net name attached to a pin when it was added
	pins   map[string]Pin
	order  []string // Pin keys in insertion order

	// Final nets after calling Finalize()
	Nets []*Net
}

// New creates an empty netlist
func New() *Netlist {
	return &Netlist{
		parent: make(map[string]string),
		rank:   make(map[string]int),
		names:  make(map[string]string),
		pins:   make(map[string]Pin),
	}
}

// Add registers pin as a member of the named net. Adding a known pin only
// records the extra name.
func (nl *Netlist) Add(name string, pin Pin) {
	key := pinKey(pin)
	if _, ok := nl.parent[key]; !ok {
		nl.parent[key] = key
		nl.rank[key] = 0
		nl.pins[key] = pin
		nl.order = append(nl.order, key)
	}
	if name != "" && (nl.names[key] == "" || name < nl.names[key]) {
		nl.names[key] = name
	}
}

// Connect marks two pins as electrically connected, registering them
// without a name if needed.
func (nl *Netlist) Connect(a, b Pin) {
	nl.Add("", a)
	nl.Add("", b)

	keyA := pinKey(nl.Find(a))
	keyB := pinKey(nl.Find(b))
	if keyA == keyB {
		return
	}

	// Union by rank
	if nl.rank[keyA] < nl.rank[keyB] {
		nl.parent[keyA] = keyB
	} else if nl.rank[keyA] > nl.rank[keyB] {
		nl.parent[keyB] = keyA
	} else {
		nl.parent[keyB] = keyA
		nl.rank[keyA]++
	}
}

// Find returns the representative pin of the net containing pin. Unknown
// pins are their own representative.
func (nl *Netlist) Find(pin Pin) Pin {
	key := pinKey(pin)
	if _, ok := nl.parent[key]; !ok {
		return pin
	}

	root := key
	for nl.parent[root] != root {
		root = nl.parent[root]
	}

	// Path compression
	current := key
	for current != root {
		next := nl.parent[current]
		nl.parent[current] = root
		current = next
	}

	return nl.pins[root]
}

// Connected reports whether two pins are on the same net
func (nl *Netlist) Connected(a, b Pin) bool {
	return nl.Find(a) == nl.Find(b)
}

// Finalize builds Nets from the union-find structure. A net is named after
// the smallest signal name among its pins; unnamed groups get N$<n>.
// Nets and their pins are sorted for stable output.
func (nl *Netlist) Finalize() {
	groups := make(map[string][]string)
	var roots []string
	for _, key := range nl.order {
		root := pinKey(nl.Find(nl.pins[key]))
		if _, ok := groups[root]; !ok {
			roots = append(roots, root)
		}
		groups[root] = append(groups[root], key)
	}

	nl.Nets = make([]*Net, 0, len(roots))
	unnamed := 0
	for _, root := range roots {
		keys := groups[root]
		net := &Net{}
		for _, key := range keys {
			net.Pins = append(net.Pins, nl.pins[key])
			if n := nl.names[key]; n != "" && (net.Name == "" || n < net.Name) {
				net.Name = n
			}
		}
		if net.Name == "" {
			unnamed++
			net.Name = fmt.Sprintf("N$%d", unnamed)
		}
		sortPins(net.Pins)
		nl.Nets = append(nl.Nets, net)
	}

	sort.Slice(nl.Nets, func(i, j int) bool {
		return nl.Nets[i].Name < nl.Nets[j].Name
	})
}

// NetCount returns the number of nets.
// Only valid after calling Finalize().
func (nl *Netlist) NetCount() int {
	return len(nl.Nets)
}

// PinCount returns the number of registered pins
func (nl *Netlist) PinCount() int {
	return len(nl.order)
}

// Net returns the finalized net with the given name
func (nl *Netlist) Net(name string) *Net {
	for _, n := range nl.Nets {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// ToJSON exports the finalized netlist as indented JSON.
func (nl *Netlist) ToJSON() ([]byte, error) {
	if nl.Nets == nil {
		return nil, fmt.Errorf("netlist: not finalized")
	}

	output := struct {
		NetCount int    `json:"net_count"`
		PinCount int    `json:"pin_count"`
		Nets     []*Net `json:"nets"`
	}{
		NetCount: nl.NetCount(),
		PinCount: nl.PinCount(),
		Nets:     nl.Nets,
	}

	return json.MarshalIndent(output, "", "  ")
}

// ToKiCad exports the finalized netlist in the KiCad netlist format.
// Only connectivity is written.
func (nl *Netlist) ToKiCad(source string) (string, error) {
	if nl.Nets == nil {
		return "", fmt.Errorf("netlist: not finalized")
	}

	var b strings.Builder
	b.WriteString("(export (version D)\n")
	b.WriteString("  (design\n")
	fmt.Fprintf(&b, "    (source %q)\n", source)
	b.WriteString("  )\n")
	b.WriteString("  (components\n")

	seen := make(map[string]bool)
	var comps []string
	for _, net := range nl.Nets {
		for _, pin := range net.Pins {
			if !seen[pin.Component] {
				seen[pin.Component] = true
				comps = append(comps, pin.Component)
			}
		}
	}
	sort.Strings(comps)
	for _, c := range comps {
		fmt.Fprintf(&b, "    (comp (ref %s))\n", c)
	}
	b.WriteString("  )\n")

	b.WriteString("  (nets\n")
	for i, net := range nl.Nets {
		fmt.Fprintf(&b, "    (net (code %d) (name %q)\n", i+1, net.Name)
		for _, pin := range net.Pins {
			fmt.Fprintf(&b, "      (node (ref %s) (pin %s))\n", pin.Component, pin.Pad)
		}
		b.WriteString("    )\n")
	}
	b.WriteString("  )\n")
	b.WriteString(")\n")

	return b.String(), nil
}

func sortPins(pins []Pin) {
	sort.Slice(pins, func(i, j int) bool {
		if pins[i].Component != pins[j].Component {
			return pins[i].Component < pins[j].Component
		}
		return pins[i].Pad < pins[j].Pad
	})
}

// pinKey generates a unique string key for a Pin.
func pinKey(pin Pin) string {
	return pin.Component + "\x00" + pin.Pad
}
