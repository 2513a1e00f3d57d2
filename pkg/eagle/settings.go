package eagle

import (
	"io"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
)

// Settings holds the drawing-wide editor settings
type Settings struct {
	AlwaysVectorFont bool
	VerticalText     VerticalText
}

func (s *Settings) Clear()               { *s = Settings{VerticalText: VerticalTextUp} }
func (s *Settings) Clone() *Settings     { c := *s; return &c }
func (s *Settings) Assign(src *Settings) { *s = *src.Clone() }

func (s *Settings) Dump(w io.Writer, level int) {
	dumpf(w, level, "Settings:{AlwaysVectorFont=%t, VerticalText=%s}", s.AlwaysVectorFont, s.VerticalText)
}

// Parse reads every <setting> child; each carries one of the values
func (s *Settings) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "settings") {
		return false
	}
	for _, c := range el.SelectElements("setting") {
		r := codec.NewReader(c, warn)
		r.Bool("alwaysvectorfont", &s.AlwaysVectorFont)
		codec.ReadEnum(r, "verticaltext", &s.VerticalText, verticalTextNames)
	}
	return true
}

func (s *Settings) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	el := parent.CreateElement("settings")
	codec.NewWriter(el, "setting", writeDefaults).Bool("alwaysvectorfont", s.AlwaysVectorFont)
	if writeDefaults || s.VerticalText != VerticalTextUp {
		codec.WriteEnumRequired(codec.NewWriter(el, "setting", writeDefaults), "verticaltext", s.VerticalText, verticalTextNames)
	}
	return true
}

// Grid is the editor grid
type Grid struct {
	Distance    float64
	UnitDist    Unit
	Unit        Unit
	Style       GridStyle
	Multiple    int
	Display     bool
	AltDistance float64
	AltUnitDist Unit
	AltUnit     Unit
}

func (g *Grid) Clear() {
	*g = Grid{
		Distance:    0.1,
		UnitDist:    UnitInch,
		Unit:        UnitInch,
		Style:       GridStyleLines,
		Multiple:    1,
		AltDistance: 1,
		AltUnitDist: UnitInch,
		AltUnit:     UnitInch,
	}
}

func (g *Grid) Clone() *Grid     { c := *g; return &c }
func (g *Grid) Assign(src *Grid) { *g = *src.Clone() }

func (g *Grid) Dump(w io.Writer, level int) {
	dumpf(w, level, "Grid:{Distance=%s, UnitDist=%s, Unit=%s, Style=%s, Multiple=%d, Display=%t, AltDistance=%s, AltUnitDist=%s, AltUnit=%s}",
		fmtf(g.Distance), g.UnitDist, g.Unit, g.Style, g.Multiple, g.Display, fmtf(g.AltDistance), g.AltUnitDist, g.AltUnit)
}

func (g *Grid) Parse(el *etree.Element, warn *codec.Warnings) bool {
	if !is(el, "grid") {
		return false
	}
	r := codec.NewReader(el, warn)
	r.Float("distance", &g.Distance)
	codec.ReadEnum(r, "unitdist", &g.UnitDist, unitNames)
	codec.ReadEnum(r, "unit", &g.Unit, unitNames)
	codec.ReadEnum(r, "style", &g.Style, gridStyleNames)
	r.Int("multiple", &g.Multiple)
	r.Bool("display", &g.Display)
	r.Float("altdistance", &g.AltDistance)
	codec.ReadEnum(r, "altunitdist", &g.AltUnitDist, unitNames)
	codec.ReadEnum(r, "altunit", &g.AltUnit, unitNames)
	return true
}

func (g *Grid) Serialize(parent *etree.Element, writeDefaults bool) bool {
	if parent == nil {
		return false
	}
	w := codec.NewWriter(parent, "grid", writeDefaults)
	w.Float("distance", g.Distance)
	codec.WriteEnumRequired(w, "unitdist", g.UnitDist, unitNames)
	codec.WriteEnumRequired(w, "unit", g.Unit, unitNames)
	codec.WriteEnum(w, "style", g.Style, GridStyleLines, gridStyleNames)
	w.IntDefault("multiple", g.Multiple, 1)
	w.BoolDefault("display", g.Display, false)
	w.Float("altdistance", g.AltDistance)
	codec.WriteEnumRequired(w, "altunitdist", g.AltUnitDist, unitNames)
	codec.WriteEnumRequired(w, "altunit", g.AltUnit, unitNames)
	return true
}

func (g *Grid) Scale(factor float64) {
	g.Distance *= factor
	g.AltDistance *= factor
}
