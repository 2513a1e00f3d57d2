package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Drawing is the content of an Eagle file: settings, grid, layer table
// and the library, schematic or board subtree.
//
// Mode decides which subtrees are written. In ModeMixed every non-nil
// subtree is written; in the single modes only the matching one, empty
// if it is nil.
type Drawing struct {
	Settings  Settings
	Grid      Grid
	Layers    []Layer
	Mode      Mode
	Library   *Library
	Schematic *Schematic
	Board     *Board
}

// NewDrawing creates a drawing of the given mode with the default layers
func NewDrawing(mode Mode) *Drawing {
	d := &Drawing{}
	d.Clear()
	d.Mode = mode
	d.InitDefaultLayers()
	return d
}

func (d *Drawing) Clear() {
	*d = Drawing{Mode: ModeMixed}
	d.Settings.Clear()
	d.Grid.Clear()
}

func (d *Drawing) Clone() *Drawing {
	c := *d
	c.Layers = cloneList(d.Layers)
	if d.Library != nil {
		c.Library = d.Library.Clone()
	}
	if d.Schematic != nil {
		c.Schematic = d.Schematic.Clone()
	}
	if d.Board != nil {
		c.Board = d.Board.Clone()
	}
	return &c
}

func (d *Drawing) Assign(src *Drawing) { *d = *src.Clone() }

// InitDefaultLayers replaces the layer table with Eagle's standard layers
func (d *Drawing) InitDefaultLayers() {
	d.Layers = DefaultLayers()
}

// FindLayer returns the layer with the given number
func (d *Drawing) FindLayer(number int) *Layer {
	for i := range d.Layers {
		if d.Layers[i].Number == number {
			return &d.Layers[i]
		}
	}
	return nil
}

// inferMode derives the mode from the subtrees present
func (d *Drawing) inferMode() Mode {
	switch {
	case d.Library != nil && d.Schematic == nil && d.Board == nil:
		return ModeLibrary
	case d.Library == nil && d.Schematic != nil && d.Board == nil:
		return ModeSchematic
	case d.Library == nil && d.Schematic == nil && d.Board != nil:
		return ModeBoard
	default:
		return ModeMixed
	}
}

func (d *Drawing) Dump(w io.Writer, level int) {
	dumpf(w, level, "Drawing:{Mode=%s}", d.Mode)
	d.Settings.Dump(w, level+1)
	d.Grid.Dump(w, level+1)
	dumpList(w, level+1, "Layers", d.Layers)
	if d.Library != nil {
		d.Library.Dump(w, level+1)
	}
	if d.Schematic != nil {
		d.Schematic.Dump(w, level+1)
	}
	if d.Board != nil {
		d.Board.Dump(w, level+1)
	}
}

// Parse reads the drawing and sets Mode from the subtrees found
func (d *Drawing) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "drawing") {
		return false
	}
	d.Settings.Parse(el.SelectElement("settings"), warn)
	d.Grid.Parse(el.SelectElement("grid"), warn)
	d.Layers = parseWrapped[Layer](el, "layers", "layer", warn)
	d.Library, d.Schematic, d.Board = nil, nil, nil
	if c := el.SelectElement("library"); c != nil {
		d.Library = &Library{}
		d.Library.Clear()
		d.Library.Parse(c, warn)
	}
	if c := el.SelectElement("schematic"); c != nil {
		d.Schematic = NewSchematic()
		d.Schematic.Parse(c, warn)
	}
	if c := el.SelectElement("board"); c != nil {
		d.Board = NewBoard()
		d.Board.Parse(c, warn)
	}
	d.Mode = d.inferMode()
	return true
}

func (d *Drawing) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	el := parent.CreateElement("drawing")
	d.Settings.Serialize(el, writeDefaults)
	d.Grid.Serialize(el, writeDefaults)
	serializeList(el.CreateElement("layers"), d.Layers, writeDefaults)
	switch d.Mode {
	case ModeLibrary:
		orEmpty(d.Library, NewLibrary("")).Serialize(el, writeDefaults)
	case ModeSchematic:
		orEmpty(d.Schematic, NewSchematic()).Serialize(el, writeDefaults)
	case ModeBoard:
		orEmpty(d.Board, NewBoard()).Serialize(el, writeDefaults)
	default:
		if d.Library != nil {
			d.Library.Serialize(el, writeDefaults)
		}
		if d.Schematic != nil {
			d.Schematic.Serialize(el, writeDefaults)
		}
		if d.Board != nil {
			d.Board.Serialize(el, writeDefaults)
		}
	}
	return true
}

func orEmpty[T any](v, empty *T) *T {
	if v == nil {
		return empty
	}
	return v
}

// Scale scales the grid and every present subtree
func (d *Drawing) Scale(factor float64) {
	d.Grid.Scale(factor)
	if d.Library != nil {
		d.Library.Scale(factor)
	}
	if d.Schematic != nil {
		d.Schematic.Scale(factor)
	}
	if d.Board != nil {
		d.Board.Scale(factor)
	}
}
