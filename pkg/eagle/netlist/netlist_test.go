package netlist

import (
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle"
	"github.com/chewxy/sexp"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boardXML = `<eagle version="6.4"><drawing><board><signals>
<signal name="VCC"><contactref element="R1" pad="1"/><contactref element="C1" pad="1"/></signal>
<signal name="N$7"><contactref element="R1" pad="2"/><contactref element="U1" pad="3"/></signal>
<signal name="VCC_ALT"><contactref element="C1" pad="1"/><contactref element="U1" pad="8"/></signal>
<signal name="STUB"><contactref element="U1" pad="5"/></signal>
</signals></board></drawing></eagle>`

const schematicXML = `<eagle version="6.4"><drawing><schematic>
<libraries><library name="lib">
<devicesets>
<deviceset name="R"><gates><gate name="G$1" symbol="R" x="0" y="0"/></gates>
<devices><device name="" package="R0805"><connects>
<connect gate="G$1" pin="A" pad="1"/><connect gate="G$1" pin="B" pad="2"/>
</connects></device></devices></deviceset>
<deviceset name="C"><gates><gate name="G$1" symbol="C" x="0" y="0"/></gates>
<devices><device name="" package="C0805"><connects>
<connect gate="G$1" pin="1" pad="1"/><connect gate="G$1" pin="2" pad="2"/>
</connects></device></devices></deviceset>
<deviceset name="MCU"><gates><gate name="P" symbol="PWR" x="0" y="0"/><gate name="A" symbol="IO" x="0" y="0"/></gates>
<devices><device name="SO8" package="SO8"><connects>
<connect gate="P" pin="VDD" pad="8"/><connect gate="A" pin="IO" pad="3"/><connect gate="A" pin="EN" pad="5"/>
</connects></device></devices></deviceset>
</devicesets>
</library></libraries>
<parts>
<part name="R1" library="lib" deviceset="R" device=""/>
<part name="C1" library="lib" deviceset="C" device=""/>
<part name="U1" library="lib" deviceset="MCU" device="SO8"/>
</parts>
<sheets>
<sheet><nets>
<net name="VCC"><segment><pinref part="R1" gate="G$1" pin="A"/><pinref part="C1" gate="G$1" pin="1"/></segment></net>
<net name="IO"><segment><pinref part="R1" gate="G$1" pin="B"/><pinref part="U1" gate="A" pin="IO"/></segment></net>
</nets></sheet>
<sheet><nets>
<net name="VCC"><segment><pinref part="U1" gate="P" pin="VDD"/></segment></net>
<net name="EN"><segment><pinref part="U1" gate="A" pin="EN"/></segment></net>
</nets></sheet>
</sheets>
</schematic></drawing></eagle>`

func readDoc(t *testing.T, xml string) *eagle.Document {
	t.Helper()
	d := eagle.NewDocument()
	d.VerifyDocType = false
	require.NoError(t, d.Read(strings.NewReader(xml)))
	require.True(t, d.ValidXMLData)
	return d
}

func TestConnect(t *testing.T) {
	a := Pin{Component: "U1", Pad: "1"}
	b := Pin{Component: "U1", Pad: "2"}
	c := Pin{Component: "U2", Pad: "1"}

	nl := New()
	nl.Add("A", a)
	nl.Add("B", b)
	nl.Add("C", c)
	assert.False(t, nl.Connected(a, b))

	nl.Connect(a, b)
	assert.True(t, nl.Connected(a, b))
	assert.False(t, nl.Connected(a, c))

	nl.Connect(b, c)
	assert.True(t, nl.Connected(a, c))

	nl.Finalize()
	require.Equal(t, 1, nl.NetCount())
	assert.Equal(t, "A", nl.Nets[0].Name)
	assert.Equal(t, []Pin{a, b, c}, nl.Nets[0].Pins)
}

func TestFindUnknownPin(t *testing.T) {
	nl := New()
	p := Pin{Component: "X", Pad: "1"}
	assert.Equal(t, p, nl.Find(p))
}

func TestFromBoard(t *testing.T) {
	d := readDoc(t, boardXML)
	nl := FromBoard(d.Drawing.Board)

	assert.Equal(t, 6, nl.PinCount())
	require.Equal(t, 3, nl.NetCount())

	tests := []struct {
		name string
		pins []Pin
	}{
		{"N$7", []Pin{{"R1", "2"}, {"U1", "3"}}},
		{"STUB", []Pin{{"U1", "5"}}},
		{"VCC", []Pin{{"C1", "1"}, {"R1", "1"}, {"U1", "8"}}},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, nl.Nets[i].Name)
			assert.Equal(t, tt.pins, nl.Nets[i].Pins)
		})
	}
	assert.Nil(t, nl.Net("VCC_ALT"))
}

func TestFromSchematic(t *testing.T) {
	d := readDoc(t, schematicXML)
	nl := FromSchematic(d.Drawing.Schematic)

	require.Equal(t, 3, nl.NetCount())
	vcc := nl.Net("VCC")
	require.NotNil(t, vcc)
	assert.Equal(t, []Pin{{"C1", "1"}, {"R1", "1"}, {"U1", "8"}}, vcc.Pins)
	io := nl.Net("IO")
	require.NotNil(t, io)
	assert.Equal(t, []Pin{{"R1", "2"}, {"U1", "3"}}, io.Pins)
}

func TestFromSchematicUnresolved(t *testing.T) {
	d := readDoc(t, `<eagle><drawing><schematic><sheets><sheet><nets>
<net name="X"><segment><pinref part="Q9" gate="G$1" pin="B"/></segment></net>
</nets></sheet></sheets></schematic></drawing></eagle>`)
	nl := FromSchematic(d.Drawing.Schematic)
	require.Equal(t, 1, nl.NetCount())
	assert.Equal(t, []Pin{{"Q9", "G$1.B"}}, nl.Nets[0].Pins)
}

func TestFromSchematicMultiPad(t *testing.T) {
	d := readDoc(t, `<eagle><drawing><schematic>
<libraries><library name="l"><devicesets><deviceset name="GND">
<devices><device name="" package="P"><connects><connect gate="G" pin="GND" pad="4 9 EP"/></connects></device></devices>
</deviceset></devicesets></library></libraries>
<parts><part name="U2" library="l" deviceset="GND" device=""/></parts>
<sheets><sheet><nets><net name="GND"><segment><pinref part="U2" gate="G" pin="GND"/></segment></net></nets></sheet></sheets>
</schematic></drawing></eagle>`)
	nl := FromSchematic(d.Drawing.Schematic)
	require.Equal(t, 1, nl.NetCount())
	assert.Equal(t, []Pin{{"U2", "4"}, {"U2", "9"}, {"U2", "EP"}}, nl.Nets[0].Pins)
}

func TestDiff(t *testing.T) {
	sch := FromSchematic(readDoc(t, schematicXML).Drawing.Schematic)
	brd := FromBoard(readDoc(t, boardXML).Drawing.Board)

	assert.Empty(t, Diff(sch, brd))

	shorted := strings.Replace(boardXML, `<contactref element="U1" pad="5"/>`,
		`<contactref element="U1" pad="5"/><contactref element="U1" pad="3"/>`, 1)
	brd = FromBoard(readDoc(t, shorted).Drawing.Board)

	diffs := Diff(sch, brd)
	require.Len(t, diffs, 3)
	assert.Equal(t, OnlyInA, diffs[0].Side)
	assert.Equal(t, "EN", diffs[0].Net)
	assert.Equal(t, "IO", diffs[1].Net)
	assert.Equal(t, OnlyInB, diffs[2].Side)
	assert.Equal(t, "N$7", diffs[2].Net)
	assert.Equal(t, []Pin{{"R1", "2"}, {"U1", "3"}, {"U1", "5"}}, diffs[2].Pins)

	assert.Empty(t, Diff(brd, brd))
}

func TestToJSON(t *testing.T) {
	nl := New()
	_, err := nl.ToJSON()
	assert.Error(t, err)

	nl = FromBoard(readDoc(t, boardXML).Drawing.Board)
	data, err := nl.ToJSON()
	require.NoError(t, err)

	var out struct {
		NetCount int   `json:"net_count"`
		PinCount int   `json:"pin_count"`
		Nets     []Net `json:"nets"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, 3, out.NetCount)
	assert.Equal(t, 6, out.PinCount)
	assert.Equal(t, "N$7", out.Nets[0].Name)
	assert.Equal(t, "R1", out.Nets[0].Pins[0].Component)
}

func TestToKiCad(t *testing.T) {
	nl := FromBoard(readDoc(t, boardXML).Drawing.Board)
	out, err := nl.ToKiCad("test.brd")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "(export (version D)"))
	assert.Contains(t, out, `(source "test.brd")`)
	assert.Contains(t, out, "(comp (ref C1))")
	assert.Contains(t, out, `(net (code 3) (name "VCC")`)
	assert.Contains(t, out, "(node (ref U1) (pin 8))")

	// The output is a single well-formed list
	sexps, err := sexp.ParseString(out)
	require.NoError(t, err)
	require.Len(t, sexps, 1)
	assert.False(t, sexps[0].IsLeaf())
}
