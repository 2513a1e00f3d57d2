package eagle

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalBoard = `<?xml version="1.0" encoding="utf-8"?>
<eagle version="6.4">
<drawing>
<board>
<elements>
<element name="R1" library="rcl" package="0805" value="10k" x="1" y="2" rot="MR90"/>
</elements>
</board>
</drawing>
</eagle>`

const fullBoard = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE eagle SYSTEM "eagle.dtd">
<eagle version="6.4">
<compatibility><note version="6.3" severity="info">Pre</note></compatibility>
<drawing>
<settings><setting alwaysvectorfont="yes"/><setting verticaltext="down"/></settings>
<grid distance="0.05" unitdist="inch" unit="inch" style="dots" multiple="2" display="yes" altdistance="0.01" altunitdist="mm" altunit="mm"/>
<layers>
<layer number="1" name="Top" color="4" fill="1" visible="yes" active="yes"/>
<layer number="16" name="Bottom" color="1" fill="1" visible="no" active="yes"/>
</layers>
<board>
<description language="de">Testplatine</description>
<plain>
<wire x1="0" y1="0" x2="50" y2="0" width="0" layer="20"/>
<wire x1="50" y1="0" x2="50" y2="30" width="0" layer="20" curve="90"/>
<hole x="5" y="5" drill="3.2"/>
<text x="10" y="10" size="1.27" layer="21" align="center">LABEL</text>
</plain>
<libraries>
<library name="rcl">
<packages>
<package name="0805">
<wire x1="-0.4" y1="0.6" x2="0.4" y2="0.6" width="0.1" layer="51"/>
<smd name="1" x="-0.95" y="0" dx="1.3" dy="1.5" layer="1"/>
<smd name="2" x="0.95" y="0" dx="1.3" dy="1.5" layer="1"/>
</package>
</packages>
</library>
</libraries>
<classes><class number="0" name="default"><clearance class="0" value="0.2"/></class></classes>
<designrules name="default"><param name="mdWireWire" value="8mil"/></designrules>
<autorouter><pass name="Default"><param name="RoutingGrid" value="50mil"/></pass></autorouter>
<elements>
<element name="R1" library="rcl" package="0805" value="10k" x="10" y="10" smashed="yes">
<attribute name="NAME" x="9" y="11" size="1.27" layer="25"/>
</element>
<element name="R2" library="rcl" package="0805" value="10k" x="20" y="10" rot="R90"/>
</elements>
<signals>
<signal name="N$1">
<contactref element="R1" pad="2"/>
<contactref element="R2" pad="1"/>
<wire x1="10.95" y1="10" x2="20" y2="9.05" width="0.254" layer="1"/>
<via x="15" y="10" extent="1-16" drill="0.35"/>
</signal>
</signals>
</board>
</drawing>
<compatibility><note version="7.0" severity="warning">Post</note></compatibility>
</eagle>`

func readString(t *testing.T, xml string) *Document {
	t.Helper()
	d := NewDocument()
	require.NoError(t, d.Read(strings.NewReader(xml)))
	return d
}

func TestReadMinimalBoard(t *testing.T) {
	d := readString(t, minimalBoard)

	assert.False(t, d.ValidDocType)
	assert.True(t, d.ValidXMLData)
	assert.Equal(t, "6.4", d.Version)
	assert.Equal(t, ModeBoard, d.Drawing.Mode)
	require.NotNil(t, d.Drawing.Board)
	assert.Nil(t, d.Drawing.Library)
	assert.Nil(t, d.Drawing.Schematic)

	e := d.Drawing.Board.FindElement("R1")
	require.NotNil(t, e)
	assert.Equal(t, "rcl", e.Library)
	assert.Equal(t, "0805", e.Package)
	assert.Equal(t, "10k", e.Value)
	assert.Equal(t, 1.0, e.X)
	assert.Equal(t, 2.0, e.Y)
	assert.Equal(t, 90.0, e.Rotation)
	assert.True(t, e.Mirror)
	assert.False(t, e.Locked)
	assert.False(t, e.Smashed)

	root := serialize(t, e, false)
	assert.Equal(t, []string{"name", "library", "package", "value", "x", "y", "rot"}, attrKeys(root))
	assert.Equal(t, "MR90", root.SelectAttrValue("rot", ""))
}

func TestReadDocTypeCheck(t *testing.T) {
	tests := []struct {
		name   string
		xml    string
		verify bool
		want   bool
	}{
		{"missing doctype", minimalBoard, true, false},
		{"present doctype", fullBoard, true, true},
		{"check disabled", minimalBoard, false, true},
		{"wrong system id", strings.Replace(fullBoard, "eagle.dtd", "other.dtd", 1), true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument()
			d.VerifyDocType = tt.verify
			require.NoError(t, d.Read(strings.NewReader(tt.xml)))
			assert.Equal(t, tt.want, d.ValidDocType)
			assert.True(t, d.ValidXMLData)
		})
	}
}

func TestReadModeInference(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Mode
	}{
		{"library", `<library name="x"/>`, ModeLibrary},
		{"schematic", `<schematic/>`, ModeSchematic},
		{"board", `<board/>`, ModeBoard},
		{"library and board", `<library/><board/>`, ModeMixed},
		{"nothing", ``, ModeMixed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := readString(t, `<eagle version="6.4"><drawing>`+tt.body+`</drawing></eagle>`)
			assert.Equal(t, tt.want, d.Drawing.Mode)
		})
	}
}

func TestReadWithoutDrawing(t *testing.T) {
	d := readString(t, `<eagle version="7.2.0"/>`)
	assert.False(t, d.ValidXMLData)
	assert.Equal(t, "7.2.0", d.Version)

	d = readString(t, `<board/>`)
	assert.False(t, d.ValidXMLData)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"empty input", ""},
		{"unquoted attribute", `<eagle version=6.4></eagle>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument()
			err := d.Read(strings.NewReader(tt.xml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedXML))
			assert.False(t, d.ValidXMLData)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.brd"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpen))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveToMissingDirectory(t *testing.T) {
	d := NewDocument()
	err := d.Save(filepath.Join(t.TempDir(), "nope", "out.brd"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpen))
}

func TestReadWarnings(t *testing.T) {
	d := readString(t, `<eagle version="6.4"><drawing><board><plain><hole x="abc" y="1.0" drill="0.5"/></plain></board></drawing></eagle>`)
	require.Equal(t, 1, d.Warnings.Len())
	assert.Len(t, d.Warnings.ForAttr("x"), 1)

	h := d.Drawing.Board.Plain.Holes[0]
	assert.Equal(t, 0.0, h.X)
	assert.Equal(t, 1.0, h.Y)
	assert.Equal(t, 0.5, h.Drill)
}

func TestCompatibilityPlacement(t *testing.T) {
	d := readString(t, fullBoard)
	require.Len(t, d.PreNotes.Notes, 1)
	assert.Equal(t, "Pre", d.PreNotes.Notes[0].Text)
	require.Len(t, d.PostNotes.Notes, 1)
	assert.Equal(t, "Post", d.PostNotes.Notes[0].Text)
	assert.Equal(t, SeverityWarning, d.PostNotes.Notes[0].Severity)

	root := serialize(t, d, false)
	assert.Equal(t, []string{"compatibility", "drawing", "compatibility"}, childTags(root))
}

func TestDocumentRoundTrip(t *testing.T) {
	for _, writeDefaults := range []bool{false, true} {
		first := readString(t, fullBoard)
		require.Zero(t, first.Warnings.Len())
		first.WriteDefaults = writeDefaults
		first.Indentation = 2

		var buf bytes.Buffer
		require.NoError(t, first.Write(&buf))

		second := readString(t, buf.String())
		assert.True(t, second.ValidDocType)
		assert.True(t, second.ValidXMLData)
		assert.Equal(t, DumpString(first), DumpString(second))
		assert.Equal(t, first.Drawing, second.Drawing)
	}
}

func TestFullBoardContent(t *testing.T) {
	d := readString(t, fullBoard)
	assert.True(t, d.ValidDocType)

	dr := &d.Drawing
	assert.True(t, dr.Settings.AlwaysVectorFont)
	assert.Equal(t, VerticalTextDown, dr.Settings.VerticalText)
	assert.Equal(t, GridStyleDots, dr.Grid.Style)
	assert.Equal(t, UnitMM, dr.Grid.AltUnit)
	require.Len(t, dr.Layers, 2)
	assert.False(t, dr.FindLayer(LayerBottom).Visible)

	b := dr.Board
	require.NotNil(t, b)
	assert.Equal(t, "de", b.Description.Language)
	assert.Len(t, b.Plain.Wires, 2)
	assert.Equal(t, 90.0, b.Plain.Wires[1].Curve)
	assert.Equal(t, AlignCenter, b.Plain.Texts[0].Align)
	assert.Equal(t, "8mil", b.DesignRules.Param("mdWireWire").Value)
	assert.Equal(t, "50mil", b.Autorouter[0].Param("RoutingGrid").Value)

	pkg := b.ElementPackage(b.FindElement("R2"))
	require.NotNil(t, pkg)
	assert.Equal(t, []string{"1", "2"}, pkg.PadNames())

	r1 := b.FindElement("R1")
	assert.True(t, r1.Smashed)
	require.NotNil(t, r1.Attribute("NAME"))
	assert.Equal(t, 25, r1.Attribute("NAME").Layer)

	sig := b.FindSignal("N$1")
	require.NotNil(t, sig)
	assert.Len(t, sig.ContactRefs, 2)
	assert.Equal(t, "1-16", sig.Vias[0].Extent)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parts.lbr")

	d := NewDocument()
	d.Drawing.Mode = ModeLibrary
	d.Drawing.InitDefaultLayers()
	d.Drawing.Library = NewLibrary("")
	var pkg Package
	pkg.Clear()
	pkg.Name = "DIL8"
	for i, x := range []float64{-3.81, -1.27, 1.27, 3.81} {
		pkg.Add(ptr(NewPad(string(rune('1'+i)), x, -3.81, 0.8)))
	}
	d.Drawing.Library.Packages = append(d.Drawing.Library.Packages, pkg)
	d.WriteDefaults = false
	require.NoError(t, d.Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.True(t, strings.HasPrefix(text, `<?xml version="1.0" encoding="utf-8"?>`))
	assert.Contains(t, text, `<!DOCTYPE eagle SYSTEM "eagle.dtd">`)
	assert.Contains(t, text, `<eagle version="6.4">`)
	assert.NotContains(t, text, `<library name=`)

	back, err := Load(path)
	require.NoError(t, err)
	assert.True(t, back.ValidDocType)
	assert.True(t, back.ValidXMLData)
	assert.Equal(t, ModeLibrary, back.Drawing.Mode)
	assert.Len(t, back.Drawing.Layers, len(DefaultLayers()))
	got := back.Drawing.Library.FindPackage("DIL8")
	require.NotNil(t, got)
	assert.Equal(t, []string{"1", "2", "3", "4"}, got.PadNames())
}

func TestSerializeModeWithoutSubtree(t *testing.T) {
	d := NewDrawing(ModeSchematic)
	root := serialize(t, d, false)
	assert.Equal(t, []string{"settings", "grid", "layers", "schematic"}, childTags(root))

	d = NewDrawing(ModeMixed)
	root = serialize(t, d, false)
	assert.Equal(t, []string{"settings", "grid", "layers"}, childTags(root))
}

func TestDocumentVersion(t *testing.T) {
	tests := []struct {
		version   string
		newer     bool
		supported bool
	}{
		{"6.4", false, true},
		{"6.3", false, true},
		{"7.2.0", true, false},
		{"9.6.2", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			d := NewDocument()
			d.Version = tt.version
			assert.Equal(t, tt.newer, d.IsNewerThan("6.4"))
			assert.Equal(t, tt.supported, d.IsSupported())
		})
	}
}

func TestDocumentClone(t *testing.T) {
	d := readString(t, fullBoard)
	c := d.Clone()
	c.Drawing.Board.Elements[0].Value = "22k"
	c.PreNotes.Notes[0].Text = "changed"
	assert.Equal(t, "10k", d.Drawing.Board.Elements[0].Value)
	assert.Equal(t, "Pre", d.PreNotes.Notes[0].Text)
}
