package summary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const boardXML = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE eagle SYSTEM "eagle.dtd">
<eagle version="6.4"><drawing>
<layers><layer number="1" name="Top" color="4" fill="1"/><layer number="20" name="Dimension" color="15" fill="1"/></layers>
<board>
<plain>
<wire x1="0" y1="0" x2="40" y2="0" width="0" layer="20"/>
<wire x1="40" y1="0" x2="40" y2="30" width="0" layer="20"/>
<hole x="3" y="3" drill="3"/>
</plain>
<elements><element name="R1" library="rcl" package="0805" value="1k" x="10" y="10"/></elements>
<signals>
<signal name="A">
<wire x1="0" y1="10" x2="3" y2="14" width="0" layer="1"/>
<wire x1="3" y1="14" x2="3" y2="16" width="0" layer="16"/>
<via x="3" y="14" extent="1-16" drill="0.3"/>
</signal>
</signals>
</board></drawing></eagle>`

func load(t *testing.T, xml string) *eagle.Document {
	t.Helper()
	d := eagle.NewDocument()
	require.NoError(t, d.Read(strings.NewReader(xml)))
	return d
}

func TestOfBoard(t *testing.T) {
	s := Of(load(t, boardXML))

	assert.Equal(t, "6.4", s.Version)
	assert.True(t, s.Supported)
	assert.Equal(t, "board", s.Mode)
	assert.True(t, s.ValidDocType)
	assert.True(t, s.ValidXMLData)
	assert.Equal(t, 2, s.Layers)
	assert.Equal(t, []int{1, 16, 20}, s.UsedLayers)
	assert.Nil(t, s.Library)
	assert.Nil(t, s.Schematic)

	require.NotNil(t, s.Board)
	assert.Equal(t, 1, s.Board.Elements)
	assert.Equal(t, 1, s.Board.Signals)
	assert.Equal(t, 2, s.Board.Wires)
	assert.Equal(t, 1, s.Board.Vias)
	assert.Equal(t, 1, s.Board.Holes)
	assert.InDelta(t, 7.0, s.Board.RoutedLength, 1e-9)
	assert.InDelta(t, 40.0, s.Board.Width, 1e-9)
	assert.InDelta(t, 30.0, s.Board.Height, 1e-9)
}

func TestOfLibrary(t *testing.T) {
	s := Of(load(t, `<eagle version="7.1.0"><drawing><library name="mylib">
<packages><package name="P"><smd name="1" x="0" y="0" dx="1" dy="1" layer="1"/><wire x1="0" y1="0" x2="1" y2="0" width="0.1" layer="21"/></package></packages>
<symbols><symbol name="S"><wire x1="0" y1="0" x2="1" y2="0" width="0.25" layer="94"/><pin name="1" x="0" y="0"/></symbol></symbols>
</library></drawing></eagle>`))

	assert.False(t, s.Supported)
	assert.Equal(t, "library", s.Mode)
	require.NotNil(t, s.Library)
	assert.Equal(t, LibraryStats{Name: "mylib", Packages: 1, Symbols: 1}, *s.Library)
	assert.Equal(t, []int{1, 21, 94}, s.UsedLayers)
}

func TestOfSchematic(t *testing.T) {
	s := Of(load(t, `<eagle><drawing><schematic>
<parts><part name="R1" library="l" deviceset="R" device=""/></parts>
<sheets><sheet>
<instances><instance part="R1" gate="G$1" x="0" y="0"/></instances>
<nets><net name="N1"><segment><wire x1="0" y1="0" x2="1" y2="0" width="0.15" layer="91"/></segment></net></nets>
</sheet></sheets>
</schematic></drawing></eagle>`))

	require.NotNil(t, s.Schematic)
	assert.Equal(t, SchematicStats{Parts: 1, Sheets: 1, Instances: 1, Nets: 1}, *s.Schematic)
	assert.Equal(t, []int{91}, s.UsedLayers)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Of(load(t, boardXML))))

	var back map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "board", back["mode"])
	assert.NotContains(t, back, "library")
	board, ok := back["board"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), board["elements"])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, Of(load(t, boardXML))))
	assert.Contains(t, buf.String(), "mode: board\n")

	var back Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, Of(load(t, boardXML)), back)
}
