package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Standard Eagle layer numbers
const (
	LayerTop       = 1
	LayerInner2    = 2
	LayerInner15   = 15
	LayerBottom    = 16
	LayerPads      = 17
	LayerVias      = 18
	LayerUnrouted  = 19
	LayerDimension = 20
	LayerTPlace    = 21
	LayerBPlace    = 22
	LayerTOrigins  = 23
	LayerBOrigins  = 24
	LayerTNames    = 25
	LayerBNames    = 26
	LayerTValues   = 27
	LayerBValues   = 28
	LayerTStop     = 29
	LayerBStop     = 30
	LayerTCream    = 31
	LayerBCream    = 32
	LayerTFinish   = 33
	LayerBFinish   = 34
	LayerTGlue     = 35
	LayerBGlue     = 36
	LayerTTest     = 37
	LayerBTest     = 38
	LayerTKeepout  = 39
	LayerBKeepout  = 40
	LayerTRestrict = 41
	LayerBRestrict = 42
	LayerVRestrict = 43
	LayerDrills    = 44
	LayerHoles     = 45
	LayerMilling   = 46
	LayerMeasures  = 47
	LayerDocument  = 48
	LayerReference = 49
	LayerTDocu     = 50
	LayerBDocu     = 51
	LayerNets      = 91
	LayerBusses    = 92
	LayerPins      = 93
	LayerSymbols   = 94
	LayerNames     = 95
	LayerValues    = 96
	LayerInfo      = 97
	LayerGuide     = 98
)

var layerNames = map[int]string{
	LayerTop:       "Top",
	2:              "Layer2",
	3:              "Layer3",
	4:              "Layer4",
	5:              "Layer5",
	6:              "Layer6",
	7:              "Layer7",
	8:              "Layer8",
	9:              "Layer9",
	10:             "Layer10",
	11:             "Layer11",
	12:             "Layer12",
	13:             "Layer13",
	14:             "Layer14",
	15:             "Layer15",
	LayerBottom:    "Bottom",
	LayerPads:      "Pads",
	LayerVias:      "Vias",
	LayerUnrouted:  "unrouted",
	LayerDimension: "Dimension",
	LayerTPlace:    "tPlace",
	LayerBPlace:    "bPlace",
	LayerTOrigins:  "tOrigins",
	LayerBOrigins:  "bOrigins",
	LayerTNames:    "tNames",
	LayerBNames:    "bNames",
	LayerTValues:   "tValues",
	LayerBValues:   "bValues",
	LayerTStop:     "tStop",
	LayerBStop:     "bStop",
	LayerTCream:    "tCream",
	LayerBCream:    "bCream",
	LayerTFinish:   "tFinish",
	LayerBFinish:   "bFinish",
	LayerTGlue:     "tGlue",
	LayerBGlue:     "bGlue",
	LayerTTest:     "tTest",
	LayerBTest:     "bTest",
	LayerTKeepout:  "tKeepout",
	LayerBKeepout:  "bKeepout",
	LayerTRestrict: "tRestrict",
	LayerBRestrict: "bRestrict",
	LayerVRestrict: "vRestrict",
	LayerDrills:    "Drills",
	LayerHoles:     "Holes",
	LayerMilling:   "Milling",
	LayerMeasures:  "Measures",
	LayerDocument:  "Document",
	LayerReference: "Reference",
	LayerTDocu:     "tDocu",
	LayerBDocu:     "bDocu",
	LayerNets:      "Nets",
	LayerBusses:    "Busses",
	LayerPins:      "Pins",
	LayerSymbols:   "Symbols",
	LayerNames:     "Names",
	LayerValues:    "Values",
	LayerInfo:      "Info",
	LayerGuide:     "Guide",
}

// LayerName returns the standard name of a layer number, or "" for a user layer
func LayerName(number int) string {
	return layerNames[number]
}

// IsCopperLayer reports whether number is a signal layer (1..16)
func IsCopperLayer(number int) bool {
	return number >= LayerTop && number <= LayerBottom
}

// Layer is one entry of the drawing's layer table
type Layer struct {
	Number  int
	Name    string
	Color   int // Index into the Eagle palette
	Fill    int // Fill pattern index
	Visible bool
	Active  bool
}

// NewLayer creates a visible, active layer
func NewLayer(number int, name string, color, fill int) Layer {
	return Layer{Number: number, Name: name, Color: color, Fill: fill, Visible: true, Active: true}
}

func (l *Layer) Clear()            { *l = Layer{Visible: true, Active: true} }
func (l *Layer) Clone() *Layer     { c := *l; return &c }
func (l *Layer) Assign(src *Layer) { *l = *src.Clone() }

func (l *Layer) Dump(w io.Writer, level int) {
	dumpf(w, level, "Layer:{Number=%d, Name='%s', Color=%d, Fill=%d, Visible=%t, Active=%t}",
		l.Number, l.Name, l.Color, l.Fill, l.Visible, l.Active)
}

func (l *Layer) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "layer") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Int("number", &l.Number)
	r.String("name", &l.Name)
	r.Int("color", &l.Color)
	r.Int("fill", &l.Fill)
	r.Bool("visible", &l.Visible)
	r.Bool("active", &l.Active)
	return true
}

func (l *Layer) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "layer", writeDefaults)
	w.Int("number", l.Number)
	w.String("name", l.Name)
	w.Int("color", l.Color)
	w.Int("fill", l.Fill)
	w.BoolDefault("visible", l.Visible, true)
	w.BoolDefault("active", l.Active, true)
	return true
}

type layerStyle struct {
	number, color, fill int
	visible             bool
}

var defaultLayerStyles = []layerStyle{
	{LayerTop, 4, 1, true},
	{2, 1, 1, true},
	{3, 1, 1, true},
	{4, 1, 1, true},
	{5, 1, 1, true},
	{6, 1, 1, true},
	{7, 1, 1, true},
	{8, 1, 1, true},
	{9, 1, 1, true},
	{10, 1, 1, true},
	{11, 1, 1, true},
	{12, 1, 1, true},
	{13, 1, 1, true},
	{14, 1, 1, true},
	{15, 1, 1, true},
	{LayerBottom, 1, 1, true},
	{LayerPads, 2, 1, true},
	{LayerVias, 2, 1, true},
	{LayerUnrouted, 6, 1, true},
	{LayerDimension, 15, 1, true},
	{LayerTPlace, 7, 1, true},
	{LayerBPlace, 7, 1, true},
	{LayerTOrigins, 15, 1, true},
	{LayerBOrigins, 15, 1, true},
	{LayerTNames, 7, 1, true},
	{LayerBNames, 7, 1, true},
	{LayerTValues, 7, 1, true},
	{LayerBValues, 7, 1, true},
	{LayerTStop, 7, 3, false},
	{LayerBStop, 7, 6, false},
	{LayerTCream, 7, 4, false},
	{LayerBCream, 7, 5, false},
	{LayerTFinish, 6, 3, false},
	{LayerBFinish, 6, 6, false},
	{LayerTGlue, 7, 4, false},
	{LayerBGlue, 7, 5, false},
	{LayerTTest, 7, 1, false},
	{LayerBTest, 7, 1, false},
	{LayerTKeepout, 4, 11, true},
	{LayerBKeepout, 1, 11, true},
	{LayerTRestrict, 4, 10, true},
	{LayerBRestrict, 1, 10, true},
	{LayerVRestrict, 2, 10, true},
	{LayerDrills, 7, 1, false},
	{LayerHoles, 7, 1, false},
	{LayerMilling, 3, 1, false},
	{LayerMeasures, 7, 1, false},
	{LayerDocument, 7, 1, true},
	{LayerReference, 7, 1, true},
	{LayerTDocu, 7, 1, true},
	{LayerBDocu, 7, 1, true},
	{LayerNets, 7, 1, true},
	{LayerBusses, 7, 1, true},
	{LayerPins, 2, 1, false},
	{LayerSymbols, 4, 1, true},
	{LayerNames, 7, 1, true},
	{LayerValues, 7, 1, true},
	{LayerInfo, 7, 1, true},
	{LayerGuide, 6, 1, true},
}

// DefaultLayers returns a fresh copy of Eagle's standard layer table
func DefaultLayers() []Layer {
	layers := make([]Layer, 0, len(defaultLayerStyles))
	for _, s := range defaultLayerStyles {
		l := NewLayer(s.number, LayerName(s.number), s.color, s.fill)
		l.Visible = s.visible
		layers = append(layers, l)
	}
	return layers
}

// Layer groups used by the visibility helpers
var (
	CopperLayers     = []int{LayerTop, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, LayerBottom}
	SilkscreenLayers = []int{LayerTPlace, LayerBPlace, LayerTNames, LayerBNames, LayerTValues, LayerBValues}
	DocumentLayers   = []int{LayerDocument, LayerReference, LayerTDocu, LayerBDocu}
)

// SetLayerVisible changes the visibility of one layer; false if it is not in the table
func (d *Drawing) SetLayerVisible(number int, visible bool) bool {
	l := d.FindLayer(number)
	if l == nil {
		return false
	}
	l.Visible = visible
	return true
}

// ShowAll makes every layer visible
func (d *Drawing) ShowAll() {
	for i := range d.Layers {
		d.Layers[i].Visible = true
	}
}

// HideAll hides every layer
func (d *Drawing) HideAll() {
	for i := range d.Layers {
		d.Layers[i].Visible = false
	}
}

// ShowOnly shows only the given layers, hiding all others
func (d *Drawing) ShowOnly(numbers ...int) {
	d.HideAll()
	for _, n := range numbers {
		d.SetLayerVisible(n, true)
	}
}

func (d *Drawing) ShowCopperOnly()     { d.ShowOnly(CopperLayers...) }
func (d *Drawing) ShowSilkscreenOnly() { d.ShowOnly(SilkscreenLayers...) }
func (d *Drawing) ShowDocumentOnly()   { d.ShowOnly(DocumentLayers...) }

// VisibleLayers returns the numbers of the visible layers in table order
func (d *Drawing) VisibleLayers() []int {
	var out []int
	for _, l := range d.Layers {
		if l.Visible {
			out = append(out, l.Number)
		}
	}
	return out
}
