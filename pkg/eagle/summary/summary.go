// Package summary reports statistics of an Eagle document for the CLI
// and for machine consumption as JSON or YAML.
package summary

import (
	"fmt"
	"io"
	"sort"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Summary describes one document
type Summary struct {
	Version      string          `json:"version" yaml:"version"`
	Supported    bool            `json:"supported" yaml:"supported"`
	Mode         string          `json:"mode" yaml:"mode"`
	ValidDocType bool            `json:"valid_doctype" yaml:"valid_doctype"`
	ValidXMLData bool            `json:"valid_xml_data" yaml:"valid_xml_data"`
	Warnings     int             `json:"warnings" yaml:"warnings"`
	Layers       int             `json:"layers" yaml:"layers"`
	UsedLayers   []int           `json:"used_layers" yaml:"used_layers"`
	Library      *LibraryStats   `json:"library,omitempty" yaml:"library,omitempty"`
	Schematic    *SchematicStats `json:"schematic,omitempty" yaml:"schematic,omitempty"`
	Board        *BoardStats     `json:"board,omitempty" yaml:"board,omitempty"`
}

// LibraryStats counts the content of a library
type LibraryStats struct {
	Name       string `json:"name" yaml:"name"`
	Packages   int    `json:"packages" yaml:"packages"`
	Symbols    int    `json:"symbols" yaml:"symbols"`
	DeviceSets int    `json:"devicesets" yaml:"devicesets"`
}

// SchematicStats counts the content of a schematic
type SchematicStats struct {
	Libraries int `json:"libraries" yaml:"libraries"`
	Parts     int `json:"parts" yaml:"parts"`
	Sheets    int `json:"sheets" yaml:"sheets"`
	Instances int `json:"instances" yaml:"instances"`
	Nets      int `json:"nets" yaml:"nets"`
}

// BoardStats counts the content of a board
type BoardStats struct {
	Libraries    int     `json:"libraries" yaml:"libraries"`
	Elements     int     `json:"elements" yaml:"elements"`
	Signals      int     `json:"signals" yaml:"signals"`
	Wires        int     `json:"wires" yaml:"wires"`
	Vias         int     `json:"vias" yaml:"vias"`
	Polygons     int     `json:"polygons" yaml:"polygons"`
	Holes        int     `json:"holes" yaml:"holes"`
	RoutedLength float64 `json:"routed_length" yaml:"routed_length"`
	Width        float64 `json:"width" yaml:"width"`
	Height       float64 `json:"height" yaml:"height"`
}

// Of computes the summary of a loaded document
func Of(doc *eagle.Document) Summary {
	d := &doc.Drawing
	s := Summary{
		Version:      doc.Version,
		Supported:    doc.IsSupported(),
		Mode:         d.Mode.String(),
		ValidDocType: doc.ValidDocType,
		ValidXMLData: doc.ValidXMLData,
		Warnings:     doc.Warnings.Len(),
		Layers:       len(d.Layers),
	}

	used := make(map[int]bool)
	if lib := d.Library; lib != nil {
		s.Library = &LibraryStats{
			Name:       lib.Name,
			Packages:   len(lib.Packages),
			Symbols:    len(lib.Symbols),
			DeviceSets: len(lib.DeviceSets),
		}
		collectLibrary(used, lib)
	}
	if sch := d.Schematic; sch != nil {
		st := &SchematicStats{
			Libraries: len(sch.Libraries),
			Parts:     len(sch.Parts),
			Sheets:    len(sch.Sheets),
		}
		for i := range sch.Sheets {
			sh := &sch.Sheets[i]
			st.Instances += len(sh.Instances)
			st.Nets += len(sh.Nets)
			collect(used, sh.Plain.Primitives())
			for _, n := range sh.Nets {
				for _, seg := range n.Segments {
					for j := range seg.Wires {
						used[seg.Wires[j].Layer] = true
					}
				}
			}
		}
		for i := range sch.Libraries {
			collectLibrary(used, &sch.Libraries[i])
		}
		s.Schematic = st
	}
	if b := d.Board; b != nil {
		st := &BoardStats{
			Libraries: len(b.Libraries),
			Elements:  len(b.Elements),
			Signals:   len(b.Signals),
			Holes:     len(b.Plain.Holes),
		}
		collect(used, b.Plain.Primitives())
		for i := range b.Signals {
			sig := &b.Signals[i]
			st.Wires += len(sig.Wires)
			st.Vias += len(sig.Vias)
			st.Polygons += len(sig.Polygons)
			st.RoutedLength += sig.RoutedLength()
			for j := range sig.Wires {
				used[sig.Wires[j].Layer] = true
			}
			for j := range sig.Polygons {
				used[sig.Polygons[j].Layer] = true
			}
		}
		for i := range b.Libraries {
			for j := range b.Libraries[i].Packages {
				collect(used, b.Libraries[i].Packages[j].Primitives())
			}
		}
		if bb := b.Bounds(); !bb.IsEmpty() {
			st.Width, st.Height = bb.Width(), bb.Height()
		}
		s.Board = st
	}

	s.UsedLayers = make([]int, 0, len(used))
	for l := range used {
		s.UsedLayers = append(s.UsedLayers, l)
	}
	sort.Ints(s.UsedLayers)
	return s
}

func collectLibrary(used map[int]bool, lib *eagle.Library) {
	for i := range lib.Packages {
		collect(used, lib.Packages[i].Primitives())
	}
	for i := range lib.Symbols {
		collect(used, lib.Symbols[i].Primitives())
	}
}

func collect(used map[int]bool, prims []eagle.Primitive) {
	for _, p := range prims {
		if l, ok := eagle.PrimitiveLayer(p); ok {
			used[l] = true
		}
	}
}

// WriteJSON writes the summary as indented JSON
func WriteJSON(w io.Writer, s Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteYAML writes the summary as YAML
func WriteYAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return enc.Close()
}
