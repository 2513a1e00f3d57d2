package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Polygon is a closed outline; on copper layers it is poured
type Polygon struct {
	Width    float64
	Layer    int
	Spacing  float64 // Hatch spacing
	Pour     Pour
	Isolate  float64
	Orphans  bool
	Thermals bool
	Rank     int
	Vertices []Vertex
}

// NewPolygon creates a solid polygon through the given vertices
func NewPolygon(width float64, layer int, vertices ...Vertex) Polygon {
	p := Polygon{}
	p.Clear()
	p.Width = width
	p.Layer = layer
	p.Vertices = vertices
	return p
}

func (p *Polygon) Clear() {
	*p = Polygon{Width: 0.1, Layer: 1, Spacing: 0.1, Pour: PourSolid, Thermals: true}
}

func (p *Polygon) Clone() *Polygon {
	c := *p
	c.Vertices = cloneList(p.Vertices)
	return &c
}

func (p *Polygon) Assign(src *Polygon) { *p = *src.Clone() }

func (p *Polygon) Dump(w io.Writer, level int) {
	dumpf(w, level, "Polygon:{Width=%s, Layer=%d, Spacing=%s, Pour=%s, Isolate=%s, Orphans=%t, Thermals=%t, Rank=%d}",
		fmtf(p.Width), p.Layer, fmtf(p.Spacing), p.Pour, fmtf(p.Isolate), p.Orphans, p.Thermals, p.Rank)
	dumpList(w, level+1, "Vertices", p.Vertices)
}

func (p *Polygon) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "polygon") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Float("width", &p.Width)
	r.Int("layer", &p.Layer)
	r.Float("spacing", &p.Spacing)
	codec.ReadEnum(r, "pour", &p.Pour, pourNames)
	r.Float("isolate", &p.Isolate)
	r.Bool("orphans", &p.Orphans)
	r.Bool("thermals", &p.Thermals)
	r.Int("rank", &p.Rank)
	p.Vertices = parseList[Vertex](el, "vertex", warn)
	return true
}

func (p *Polygon) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "polygon", writeDefaults)
	w.Float("width", p.Width)
	w.Int("layer", p.Layer)
	w.Float("spacing", p.Spacing)
	codec.WriteEnum(w, "pour", p.Pour, PourSolid, pourNames)
	w.Float("isolate", p.Isolate)
	w.BoolDefault("orphans", p.Orphans, false)
	w.BoolDefault("thermals", p.Thermals, true)
	w.IntDefault("rank", p.Rank, 0)
	serializeList(w.Element(), p.Vertices, writeDefaults)
	return true
}

func (p *Polygon) Scale(factor float64) {
	p.Width *= factor
	p.Spacing *= factor
	p.Isolate *= factor
	scaleList(p.Vertices, factor)
}
