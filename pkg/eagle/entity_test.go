package eagle

import (
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseElement(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

func serialize(t *testing.T, e Entity, writeDefaults bool) *etree.Element {
	t.Helper()
	root := etree.NewElement("root")
	require.True(t, e.Serialize(root, writeDefaults))
	children := root.ChildElements()
	require.Len(t, children, 1)
	return children[0]
}

func attrKeys(el *etree.Element) []string {
	keys := make([]string, 0, len(el.Attr))
	for _, a := range el.Attr {
		keys = append(keys, a.Key)
	}
	return keys
}

func childTags(el *etree.Element) []string {
	var tags []string
	for _, c := range el.ChildElements() {
		tags = append(tags, c.Tag)
	}
	return tags
}

func TestHoleMalformedAttribute(t *testing.T) {
	el := parseElement(t, `<hole x="abc" y="1.0" drill="0.5"/>`)
	var h Hole
	h.Clear()
	var warn codec.Warnings
	require.True(t, h.Parse(el, &warn))

	assert.Equal(t, 0.0, h.X)
	assert.Equal(t, 1.0, h.Y)
	assert.Equal(t, 0.5, h.Drill)
	require.Equal(t, 1, warn.Len())
	assert.Equal(t, "x", warn[0].Attr)
	assert.Equal(t, "abc", warn[0].Value)
}

func TestParseRejectsWrongTag(t *testing.T) {
	el := parseElement(t, `<circle x="1" y="1" radius="2" width="0.1" layer="21"/>`)
	w := NewWire(0, 0, 1, 1, 0.2, 1)
	before := w
	assert.False(t, w.Parse(el, nil))
	assert.False(t, w.Parse(nil, nil))
	assert.Equal(t, before, w)
	assert.False(t, w.Serialize(nil, true))
}

func TestWireElision(t *testing.T) {
	tests := []struct {
		name          string
		writeDefaults bool
		want          []string
	}{
		{name: "defaults omitted", writeDefaults: false, want: []string{"x1", "y1", "x2", "y2", "width", "layer"}},
		{name: "defaults written", writeDefaults: true, want: []string{"x1", "y1", "x2", "y2", "width", "layer", "extent", "style", "curve", "cap"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWire(0, 0, 10, 0, 0.1, 1)
			el := serialize(t, &w, tt.writeDefaults)
			assert.Equal(t, "wire", el.Tag)
			assert.Equal(t, tt.want, attrKeys(el))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		new  func() Entity
	}{
		{"wire arc", `<wire x1="0" y1="0" x2="2.54" y2="0" width="0.254" layer="21" style="dashdot" curve="-90" cap="flat"/>`, func() Entity { w := &Wire{}; w.Clear(); return w }},
		{"text spin", `<text x="1" y="2" size="1.778" layer="95" font="vector" ratio="12" rot="SMR45" align="center">&gt;NAME</text>`, func() Entity { x := &Text{}; x.Clear(); return x }},
		{"pad", `<pad name="1" x="-1.27" y="0" drill="0.8" diameter="1.6" shape="octagon" rot="R90" stop="no" first="yes"/>`, func() Entity { p := &Pad{}; p.Clear(); return p }},
		{"smd", `<smd name="A" x="0" y="0" dx="1.2" dy="0.6" layer="16" roundness="25" rot="R180" cream="yes"/>`, func() Entity { s := &SMD{}; s.Clear(); return s }},
		{"via", `<via x="5" y="5" extent="1-16" drill="0.3" shape="square" alwaysstop="yes"/>`, func() Entity { v := &Via{}; v.Clear(); return v }},
		{"pin", `<pin name="VCC" x="0" y="-5.08" visible="pin" length="short" direction="pwr" function="dot" swaplevel="1" rot="R270"/>`, func() Entity { p := &Pin{}; p.Clear(); return p }},
		{"attribute", `<attribute name="VALUE" value="10k" x="1" y="1" size="1.27" layer="27" rot="MR0" display="both" constant="yes"/>`, func() Entity { a := &Attribute{}; a.Clear(); return a }},
		{"polygon", `<polygon width="0.2" layer="1" spacing="0.5" pour="hatch" isolate="0.3" orphans="yes" thermals="no" rank="2"><vertex x="0" y="0"/><vertex x="1" y="0" curve="90"/><vertex x="1" y="1"/></polygon>`, func() Entity { p := &Polygon{}; p.Clear(); return p }},
		{"signal", `<signal name="GND" class="1" airwireshidden="yes"><contactref element="R1" pad="2" routetag="x"/><wire x1="0" y1="0" x2="1" y2="1" width="0.3" layer="16"/><via x="1" y="1" extent="1-16" drill="0.35"/></signal>`, func() Entity { s := &Signal{}; s.Clear(); return s }},
		{"class", `<class number="1" name="power" width="0.5" drill="0.4"><clearance class="0" value="0.3"/></class>`, func() Entity { c := &Class{}; c.Clear(); return c }},
		{"dimension", `<dimension x1="0" y1="0" x2="10" y2="0" x3="5" y3="2" layer="47" dtype="horizontal" width="0.13" extwidth="0.1" textsize="1.27" textratio="10" unit="mil" precision="3" visible="yes"/>`, func() Entity { d := &Dimension{}; d.Clear(); return d }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := tt.new()
			var warn codec.Warnings
			require.True(t, first.Parse(parseElement(t, tt.xml), &warn))
			assert.Zero(t, warn.Len())

			for _, writeDefaults := range []bool{false, true} {
				second := tt.new()
				require.True(t, second.Parse(serialize(t, first, writeDefaults), &warn))
				assert.Equal(t, first, second)
			}
			assert.Zero(t, warn.Len())
		})
	}
}

func TestTextTransform(t *testing.T) {
	var x Text
	x.Clear()
	require.True(t, x.Parse(parseElement(t, `<text x="0" y="0" size="2" layer="25" rot="SMR45">R1</text>`), nil))
	assert.True(t, x.Spin)
	assert.True(t, x.Mirror)
	assert.Equal(t, 45.0, x.Rotation)
	assert.Equal(t, "R1", x.Text)

	el := serialize(t, &x, false)
	assert.Equal(t, "SMR45", el.SelectAttrValue("rot", ""))
	assert.Equal(t, "R1", el.Text())
}

func TestRotationSetters(t *testing.T) {
	var x Text
	x.SetRotation(400)
	assert.Equal(t, 359.999, x.Rotation)
	x.SetRotation(-5)
	assert.Equal(t, 0.0, x.Rotation)

	var l Label
	l.SetRotation(100)
	assert.Equal(t, 90.0, l.Rotation)
	l.SetRotation(330)
	assert.Equal(t, 0.0, l.Rotation)

	var i Instance
	i.SetRotation(190)
	assert.Equal(t, 180.0, i.Rotation)
}

func TestDescription(t *testing.T) {
	var d Description
	d.Clear()
	require.True(t, d.Parse(parseElement(t, `<description language="de">&amp;lt;b&amp;gt;Widerstand</description>`), nil))
	assert.Equal(t, "de", d.Language)
	assert.Equal(t, "<b>Widerstand", d.Text)

	root := etree.NewElement("root")
	empty := NewDescription("")
	assert.True(t, empty.Serialize(root, true))
	assert.Empty(t, root.ChildElements())

	el := serialize(t, ptr(NewDescription("text")), false)
	assert.Nil(t, el.SelectAttr("language"))
	assert.Equal(t, "text", el.Text())
}

func ptr[T any](v T) *T { return &v }

func TestSettingsSerialize(t *testing.T) {
	var s Settings
	s.Clear()
	el := serialize(t, &s, false)
	settings := el.SelectElements("setting")
	require.Len(t, settings, 1)
	assert.Equal(t, "no", settings[0].SelectAttrValue("alwaysvectorfont", ""))

	s.VerticalText = VerticalTextDown
	el = serialize(t, &s, false)
	settings = el.SelectElements("setting")
	require.Len(t, settings, 2)
	assert.Equal(t, "down", settings[1].SelectAttrValue("verticaltext", ""))

	var back Settings
	back.Clear()
	require.True(t, back.Parse(el, nil))
	assert.Equal(t, s, back)
}

func TestGridDefaults(t *testing.T) {
	var g Grid
	g.Clear()
	el := serialize(t, &g, false)
	assert.Equal(t, []string{"distance", "unitdist", "unit", "altdistance", "altunitdist", "altunit"}, attrKeys(el))
	assert.Equal(t, "inch", el.SelectAttrValue("unit", ""))
	assert.Equal(t, "1", el.SelectAttrValue("altdistance", ""))
}

func TestPackageOrdering(t *testing.T) {
	var p Package
	p.Clear()
	p.Name = "0805"
	require.True(t, p.Add(ptr(NewCircle(0, 0, 1, 0.1, 21))))
	require.True(t, p.Add(ptr(NewWire(0, 0, 1, 0, 0.1, 21))))
	require.True(t, p.Add(ptr(NewSMD("1", -1, 0, 1, 1.2, 1))))
	assert.False(t, p.Add(ptr(NewPin("A", 0, 0))))

	el := serialize(t, &p, false)
	assert.Equal(t, []string{"wire", "circle", "smd"}, childTags(el))

	prims := p.Primitives()
	require.Len(t, prims, 3)
	_, isWire := prims[0].(*Wire)
	assert.True(t, isWire)
}

func TestContainerAdd(t *testing.T) {
	var s Symbol
	assert.True(t, s.Add(ptr(NewPin("1", 0, 0))))
	assert.True(t, s.Add(ptr(NewText(">NAME", 0, 0, 1.778, LayerNames))))
	assert.False(t, s.Add(ptr(NewPad("1", 0, 0, 0.8))))
	assert.False(t, s.Add(&Hole{}))
	assert.Len(t, s.Primitives(), 2)

	var pl Plain
	assert.True(t, pl.Add(&Hole{Drill: 3}))
	assert.True(t, pl.Add(ptr(NewPolygon(0.1, 1, NewVertex(0, 0)))))
	assert.False(t, pl.Add(&SMD{}))
	assert.False(t, pl.Add(&Pin{}))
	assert.False(t, pl.IsEmpty())
}

func TestDeviceSetTree(t *testing.T) {
	xml := `<deviceset name="R" prefix="R" uservalue="yes">
	<description>Resistor</description>
	<gates><gate name="G$1" symbol="R-US" x="0" y="0"/></gates>
	<devices><device name="0805" package="R0805">
		<connects><connect gate="G$1" pin="1" pad="1"/><connect gate="G$1" pin="2" pad="2 3" route="any"/></connects>
		<technologies><technology name=""><attribute name="MPN" value="RC0805"/></technology></technologies>
	</device></devices>
</deviceset>`
	var ds DeviceSet
	ds.Clear()
	require.True(t, ds.Parse(parseElement(t, xml), nil))
	assert.Equal(t, "R", ds.Prefix)
	assert.True(t, ds.UserValue)
	assert.Equal(t, "Resistor", ds.Description.Text)

	g := ds.FindGate("G$1")
	require.NotNil(t, g)
	assert.Equal(t, AddLevelNext, g.AddLevel)

	dev := ds.FindDevice("0805")
	require.NotNil(t, dev)
	c := dev.FindConnect("G$1", "2")
	require.NotNil(t, c)
	assert.Equal(t, []string{"2", "3"}, c.Pads())
	assert.Equal(t, RouteAny, c.Route)
	require.NotNil(t, dev.FindTechnology(""))
	assert.Equal(t, "RC0805", dev.FindTechnology("").Attribute("MPN").Value)

	el := serialize(t, &ds, false)
	assert.Equal(t, []string{"description", "gates", "devices"}, childTags(el))
	assert.Equal(t, []string{"name", "prefix", "uservalue"}, attrKeys(el))
}

func TestWrappersAlwaysWritten(t *testing.T) {
	b := NewBoard()
	el := serialize(t, b, false)
	assert.Equal(t, []string{"plain", "libraries", "attributes", "variantdefs", "classes", "designrules", "autorouter", "elements", "signals", "errors"}, childTags(el))

	s := NewSchematic()
	el = serialize(t, s, false)
	assert.Equal(t, []string{"libraries", "attributes", "variantdefs", "classes", "parts", "sheets", "errors"}, childTags(el))

	var sh Sheet
	sh.Clear()
	el = serialize(t, &sh, false)
	assert.Equal(t, []string{"plain", "instances", "busses", "nets"}, childTags(el))
}

func TestPassAndDesignRules(t *testing.T) {
	var p Pass
	p.Clear()
	p.Name = "Route"
	p.Refer = "Default"
	p.Params = []Param{NewParam("RoutingGrid", "50mil")}
	el := serialize(t, &p, false)
	assert.Equal(t, []string{"name", "refer"}, attrKeys(el))
	assert.Equal(t, []string{"param"}, childTags(el))

	var back Pass
	back.Clear()
	require.True(t, back.Parse(el, nil))
	assert.Equal(t, p, back)
	assert.Equal(t, "50mil", back.Param("RoutingGrid").Value)

	dr := DesignRule{Name: "default", Descriptions: []Description{NewDescription("rules")}, Params: []Param{NewParam("mdWireWire", "8mil")}}
	el = serialize(t, &dr, false)
	assert.Equal(t, "designrules", el.Tag)
	assert.Equal(t, []string{"description", "param"}, childTags(el))
}

func TestScaleLibraryPackagesOnly(t *testing.T) {
	lib := NewLibrary("rcl")
	var pkg Package
	pkg.Clear()
	pkg.Name = "P"
	pkg.Add(ptr(NewPad("1", 1, 2, 0.8)))
	lib.Packages = append(lib.Packages, pkg)
	var sym Symbol
	sym.Clear()
	sym.Name = "S"
	sym.Add(ptr(NewPin("1", 5, 5)))
	lib.Symbols = append(lib.Symbols, sym)

	b := NewBoard()
	b.Libraries = append(b.Libraries, *lib)
	b.Plain.Add(ptr(NewWire(0, 0, 1, 1, 0.5, LayerDimension)))
	b.Elements = append(b.Elements, NewElement("R1", "rcl", "P", "1k", 3, 4))
	b.Scale(2)

	pad := b.FindLibrary("rcl").FindPackage("P").Pads[0]
	assert.Equal(t, 2.0, pad.X)
	assert.Equal(t, 4.0, pad.Y)
	assert.Equal(t, 1.6, pad.Drill)
	assert.Equal(t, 5.0, b.FindLibrary("rcl").FindSymbol("S").Pins[0].X)
	assert.Equal(t, 1.0, b.Plain.Wires[0].Width)
	assert.Equal(t, 6.0, b.FindElement("R1").X)

	lib.Scale(2)
	assert.Equal(t, 10.0, lib.FindSymbol("S").Pins[0].X)
}

func TestGridScale(t *testing.T) {
	var g Grid
	g.Clear()
	g.Scale(25.4)
	assert.InDelta(t, 2.54, g.Distance, 1e-9)
	assert.InDelta(t, 25.4, g.AltDistance, 1e-9)
}

func TestWireGeometry(t *testing.T) {
	straight := NewWire(0, 0, 3, 4, 0.1, 1)
	assert.Equal(t, 5.0, straight.Chord())
	assert.Equal(t, 0.0, straight.Radius())
	assert.Equal(t, 5.0, straight.Length())

	arc := NewWire(0, 0, 2, 0, 0.1, 1)
	arc.Curve = 180
	assert.InDelta(t, 1.0, arc.Radius(), 1e-9)
	assert.InDelta(t, math.Pi, arc.Length(), 1e-9)
}

func TestCloneIsDeep(t *testing.T) {
	p := NewPolygon(0.1, 1, NewVertex(0, 0), NewVertex(1, 0), NewVertex(1, 1))
	c := p.Clone()
	c.Vertices[0].X = 42
	assert.Equal(t, 0.0, p.Vertices[0].X)

	d := NewDrawing(ModeBoard)
	d.Board = NewBoard()
	d.Board.Signals = []Signal{{Name: "GND"}}
	dc := d.Clone()
	require.NotSame(t, d.Board, dc.Board)
	dc.Board.Signals[0].Name = "VCC"
	assert.Equal(t, "GND", d.Board.Signals[0].Name)

	var x Text
	x.Assign(ptr(NewText("a", 1, 2, 3, 4)))
	assert.Equal(t, "a", x.Text)
}

func TestDump(t *testing.T) {
	h := Hole{X: 1, Y: 2, Drill: 0.5}
	assert.Equal(t, "Hole:{X=1, Y=2, Drill=0.5}\n", DumpString(&h))

	c := Class{Number: 1, Name: "pwr", Clearances: []Clearance{{Class: 0, Value: 0.2}}}
	assert.Equal(t, "Class:{Number=1, Name='pwr', Width=0, Drill=0}\n"+
		"\tClearances=\n"+
		"\t{\n"+
		"\t\tClearance:{Class=0, Value=0.2}\n"+
		"\t}\n", DumpString(&c))
}

func TestBounds(t *testing.T) {
	var pkg Package
	pkg.Clear()
	pkg.Add(ptr(NewSMD("1", -1, 0, 1, 1, LayerTop)))
	pkg.Add(ptr(NewSMD("2", 1, 0, 1, 1, LayerTop)))
	bb := pkg.Bounds()
	assert.Equal(t, Point{X: -1.5, Y: -0.5}, bb.Min)
	assert.Equal(t, Point{X: 1.5, Y: 0.5}, bb.Max)
	assert.Equal(t, 3.0, bb.Width())

	assert.True(t, NewBoundingBox().IsEmpty())
}

func TestPrimitiveLayer(t *testing.T) {
	for _, tt := range []struct {
		name  string
		prim  Primitive
		layer int
		ok    bool
	}{
		{"wire", ptr(NewWire(0, 0, 1, 1, 0.1, LayerTPlace)), LayerTPlace, true},
		{"smd", ptr(NewSMD("1", 0, 0, 1, 1, LayerBottom)), LayerBottom, true},
		{"pad", ptr(NewPad("1", 0, 0, 0.8)), 0, false},
		{"pin", ptr(NewPin("1", 0, 0)), 0, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			layer, ok := PrimitiveLayer(tt.prim)
			assert.Equal(t, tt.layer, layer)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
