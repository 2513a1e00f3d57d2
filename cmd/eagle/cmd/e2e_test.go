package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testBoard = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE eagle SYSTEM "eagle.dtd">
<eagle version="6.4">
<drawing>
<layers>
<layer number="1" name="Top" color="4" fill="1" visible="yes" active="yes"/>
<layer number="16" name="Bottom" color="1" fill="1" visible="yes" active="yes"/>
<layer number="20" name="Dimension" color="15" fill="1" visible="yes" active="yes"/>
<layer number="21" name="tPlace" color="7" fill="1" visible="yes" active="yes"/>
</layers>
<board>
<plain>
<wire x1="0" y1="0" x2="40" y2="0" width="0" layer="20"/>
<wire x1="40" y1="0" x2="40" y2="30" width="0" layer="20"/>
<wire x1="40" y1="30" x2="0" y2="30" width="0" layer="20"/>
<wire x1="0" y1="30" x2="0" y2="0" width="0" layer="20"/>
</plain>
<libraries>
<library name="rcl">
<packages>
<package name="R0805">
<smd name="1" x="-1" y="0" dx="1" dy="1.2" layer="1"/>
<smd name="2" x="1" y="0" dx="1" dy="1.2" layer="1"/>
</package>
<package name="C0805">
<smd name="1" x="-1" y="0" dx="1" dy="1.2" layer="1"/>
<smd name="2" x="1" y="0" dx="1" dy="1.2" layer="1"/>
</package>
<package name="SO8">
<smd name="3" x="0" y="-2" dx="0.6" dy="1.5" layer="1"/>
<smd name="5" x="1" y="2" dx="0.6" dy="1.5" layer="1"/>
<smd name="8" x="-1" y="2" dx="0.6" dy="1.5" layer="1"/>
</package>
</packages>
</library>
</libraries>
<elements>
<element name="R1" library="rcl" package="R0805" value="10k" x="10" y="10"/>
<element name="R2" library="rcl" package="R0805" value="10k" x="10" y="20" rot="R90"/>
<element name="C1" library="rcl" package="C0805" value="100n" x="20" y="5" rot="MR90"/>
<element name="U1" library="rcl" package="SO8" value="MCU" x="30" y="15"/>
</elements>
<signals>
<signal name="VCC">
<contactref element="R1" pad="1"/>
<contactref element="C1" pad="1"/>
<contactref element="U1" pad="8"/>
<wire x1="9" y1="10" x2="19" y2="10" width="0.25" layer="1"/>
</signal>
<signal name="N$2">
<contactref element="R1" pad="2"/>
<contactref element="U1" pad="3"/>
</signal>
<signal name="EN">
<contactref element="U1" pad="5"/>
</signal>
</signals>
</board>
</drawing>
</eagle>
`

const testSchematic = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE eagle SYSTEM "eagle.dtd">
<eagle version="6.4">
<drawing>
<schematic>
<libraries>
<library name="rcl">
<devicesets>
<deviceset name="R" prefix="R"><gates><gate name="G$1" symbol="R" x="0" y="0"/></gates>
<devices><device name="" package="R0805"><connects>
<connect gate="G$1" pin="A" pad="1"/><connect gate="G$1" pin="B" pad="2"/>
</connects></device></devices></deviceset>
<deviceset name="C" prefix="C"><gates><gate name="G$1" symbol="C" x="0" y="0"/></gates>
<devices><device name="" package="C0805"><connects>
<connect gate="G$1" pin="1" pad="1"/><connect gate="G$1" pin="2" pad="2"/>
</connects></device></devices></deviceset>
<deviceset name="MCU" prefix="U"><gates><gate name="A" symbol="MCU" x="0" y="0"/></gates>
<devices><device name="SO8" package="SO8"><connects>
<connect gate="A" pin="IO" pad="3"/><connect gate="A" pin="EN" pad="5"/><connect gate="A" pin="VDD" pad="8"/>
</connects></device></devices></deviceset>
</devicesets>
</library>
</libraries>
<parts>
<part name="R1" library="rcl" deviceset="R" device="" value="10k"/>
<part name="R2" library="rcl" deviceset="R" device="" value="10k"/>
<part name="C1" library="rcl" deviceset="C" device="" value="100n"/>
<part name="U1" library="rcl" deviceset="MCU" device="SO8" value="MCU"/>
</parts>
<sheets>
<sheet><nets>
<net name="VCC"><segment><pinref part="R1" gate="G$1" pin="A"/><pinref part="C1" gate="G$1" pin="1"/><pinref part="U1" gate="A" pin="VDD"/></segment></net>
<net name="IO"><segment><pinref part="R1" gate="G$1" pin="B"/><pinref part="U1" gate="A" pin="IO"/></segment></net>
<net name="EN"><segment><pinref part="U1" gate="A" pin="EN"/></segment></net>
</nets></sheet>
</sheets>
</schematic>
</drawing>
</eagle>
`

const testLibrary = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE eagle SYSTEM "eagle.dtd">
<eagle version="6.4"><drawing><library>
<packages>
<package name="SOT23"><description>Small outline transistor</description>
<smd name="1" x="-0.95" y="-1" dx="0.6" dy="0.7" layer="1"/>
<smd name="2" x="0.95" y="-1" dx="0.6" dy="0.7" layer="1"/>
<smd name="3" x="0" y="1" dx="0.6" dy="0.7" layer="1"/>
</package>
</packages>
</library></drawing></eagle>
`

// testFiles writes the fixtures into a temporary directory
func testFiles(t *testing.T) (dir, brd, sch, lbr string) {
	t.Helper()
	dir = t.TempDir()
	brd = filepath.Join(dir, "demo.brd")
	sch = filepath.Join(dir, "demo.sch")
	lbr = filepath.Join(dir, "transistors.lbr")
	require.NoError(t, os.WriteFile(brd, []byte(testBoard), 0o644))
	require.NoError(t, os.WriteFile(sch, []byte(testSchematic), 0o644))
	require.NoError(t, os.WriteFile(lbr, []byte(testLibrary), 0o644))
	return dir, brd, sch, lbr
}

// resetFlags restores every flag global between runs
func resetFlags(dir string) {
	verbose = false
	configPath = filepath.Join(dir, "none.yaml")
	cfg = nil

	convertWriteDefaults = true
	convertIndent = -1
	convertScale = 1
	convertCmd.Flags().Lookup("write-defaults").Changed = false

	layersDefaults = false
	layersUsed = false

	bomXLSX = ""
	bomOutput = ""
	bomNoGroup = false
	bomSkip = nil
	bomPlacements = true

	netlistFormat = "text"
	netlistDiff = false

	exportFormat = "json"
	exportOutput = ""

	catalogDir = ""
	catalogLimit = 10
}

// execute runs the root command with args and returns captured stdout
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	// Capture stdout
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		buf.ReadFrom(r)
		close(done)
	}()

	resetFlags(dir)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()

	w.Close()
	os.Stdout = old
	<-done
	return buf.String(), err
}

func TestCommandsE2E(t *testing.T) {
	dir, brd, sch, lbr := testFiles(t)
	t.Setenv("XDG_CONFIG_HOME", dir)

	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name: "info board",
			args: []string{"info", brd},
			wantContain: []string{
				"Version:   6.4",
				"Mode:      board",
				"Layers:    4",
				"Elements:  4",
				"Signals:   3",
				"Size:      40.00 x 30.00 mm",
			},
		},
		{
			name: "info schematic",
			args: []string{"info", sch},
			wantContain: []string{
				"Mode:      schematic",
				"Parts:     4",
				"Nets:      3",
			},
		},
		{
			name:        "info library",
			args:        []string{"info", lbr},
			wantContain: []string{"Mode:      library", "Packages:    1"},
		},
		{
			name:    "info missing file",
			args:    []string{"info", filepath.Join(dir, "missing.brd")},
			wantErr: true,
		},
		{
			name: "dump",
			args: []string{"dump", brd},
			wantContain: []string{
				"Eagle:{Version=6.4}",
				"Element:{Name='C1', Library='rcl', Package='C0805', Value='100n', X=20, Y=5, Locked=false, Smashed=false, Rot=MR90}",
			},
		},
		{
			name:        "layers",
			args:        []string{"layers", brd},
			wantContain: []string{"Dimension", "tPlace"},
		},
		{
			name:        "layers defaults",
			args:        []string{"layers", "--defaults"},
			wantContain: []string{"Top", "tDocu", "Guide"},
		},
		{
			name:    "layers without input",
			args:    []string{"layers"},
			wantErr: true,
		},
		{
			name: "bom board",
			args: []string{"bom", brd},
			wantContain: []string{
				"Designators,Quantity,Value,Package,Library",
				"C1,1,100n,C0805,rcl",
				"R1 R2,2,10k,R0805,rcl",
				"U1,1,MCU,SO8,rcl",
			},
		},
		{
			name:        "bom schematic ungrouped",
			args:        []string{"bom", sch, "--no-group"},
			wantContain: []string{"R1,1,10k,R0805,rcl", "R2,1,10k,R0805,rcl"},
		},
		{
			name:    "bom library",
			args:    []string{"bom", lbr},
			wantErr: true,
		},
		{
			name: "cpl",
			args: []string{"cpl", brd, "--skip", "U"},
			wantContain: []string{
				"Designator,Value,Package,X,Y,Rotation,Side",
				"C1,100n,C0805,20,5,90,bottom",
				"R2,10k,R0805,10,20,90,top",
			},
		},
		{
			name: "netlist board",
			args: []string{"netlist", brd},
			wantContain: []string{
				"EN: U1.5",
				"N$2: R1.2 U1.3",
				"VCC: C1.1 R1.1 U1.8",
			},
		},
		{
			name:        "netlist schematic",
			args:        []string{"netlist", sch},
			wantContain: []string{"IO: R1.2 U1.3"},
		},
		{
			name:        "netlist json",
			args:        []string{"netlist", brd, "--format", "json"},
			wantContain: []string{`"net_count": 3`},
		},
		{
			name:        "netlist kicad",
			args:        []string{"netlist", brd, "-f", "kicad"},
			wantContain: []string{"(export", `(net (code 1) (name "EN")`},
		},
		{
			name:    "netlist unknown format",
			args:    []string{"netlist", brd, "-f", "spice"},
			wantErr: true,
		},
		{
			name:        "netlist diff",
			args:        []string{"netlist", "--diff", sch, brd},
			wantContain: []string{"Netlists match"},
		},
		{
			name:    "netlist diff needs two files",
			args:    []string{"netlist", "--diff", sch},
			wantErr: true,
		},
		{
			name:        "export json",
			args:        []string{"export", brd},
			wantContain: []string{`"mode": "board"`, `"elements": 4`},
		},
		{
			name:        "export yaml",
			args:        []string{"export", sch, "--format", "yaml"},
			wantContain: []string{"mode: schematic", "parts: 4"},
		},
		{
			name:    "export unknown format",
			args:    []string{"export", brd, "-f", "toml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, dir, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err, "output: %s", output)
			for _, want := range tt.wantContain {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestConvertE2E(t *testing.T) {
	dir, brd, _, _ := testFiles(t)
	t.Setenv("XDG_CONFIG_HOME", dir)

	tests := []struct {
		name      string
		args      []string
		want      []string
		wantNot   []string
		wantError bool
	}{
		{
			name: "round trip",
			args: []string{"--indent", "1"},
			want: []string{
				`<!DOCTYPE eagle SYSTEM "eagle.dtd">`,
				`<element name="C1" library="rcl" package="C0805" value="100n" x="20" y="5"`,
				`rot="MR90"`,
				"\n <drawing>",
			},
		},
		{
			name: "scaled",
			args: []string{"--scale", "2"},
			want: []string{`<element name="R1" library="rcl" package="R0805" value="10k" x="20" y="20"`},
		},
		{
			name:    "elide defaults",
			args:    []string{"--write-defaults=false"},
			wantNot: []string{`locked="no"`},
		},
		{
			name:      "bad scale",
			args:      []string{"--scale", "0"},
			wantError: true,
		},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, "out"+string(rune('a'+i))+".brd")
			_, err := execute(t, dir, append([]string{"convert", brd, out}, tt.args...)...)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, string(data), want)
			}
			for _, not := range tt.wantNot {
				assert.NotContains(t, string(data), not)
			}

			// The output must load again
			_, err = execute(t, dir, "info", out)
			assert.NoError(t, err)
		})
	}
}

func TestBOMWorkbookE2E(t *testing.T) {
	dir, brd, _, _ := testFiles(t)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xlsx := filepath.Join(dir, "bom.xlsx")

	_, err := execute(t, dir, "bom", brd, "--xlsx", xlsx)
	require.NoError(t, err)

	f, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"BOM", "CPL"}, f.GetSheetList())

	rows, err := f.GetRows("BOM")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "R1 R2", rows[2][0])

	v, err := f.GetCellValue("CPL", "G2")
	require.NoError(t, err)
	assert.Equal(t, "bottom", v)
}

func TestConfigE2E(t *testing.T) {
	dir, brd, _, _ := testFiles(t)
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bom:\n  skip_prefixes: [R]\n"), 0o644))

	output, err := execute(t, dir, "bom", brd, "--config", path)
	require.NoError(t, err)
	assert.NotContains(t, output, "R1 R2")
	assert.Contains(t, output, "C1,1,100n")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("indentation: -2\n"), 0o644))
	_, err = execute(t, dir, "info", brd, "--config", bad)
	assert.Error(t, err)
}

func TestCatalogE2E(t *testing.T) {
	dir, brd, _, lbr := testFiles(t)
	t.Setenv("XDG_CONFIG_HOME", dir)
	catDir := filepath.Join(dir, "catalog")

	output, err := execute(t, dir, "catalog", "add", "--dir", catDir, lbr, brd)
	require.NoError(t, err)
	assert.Contains(t, output, "Added 4 entries from 2 files")

	output, err = execute(t, dir, "catalog", "search", "--dir", catDir, "transistor")
	require.NoError(t, err)
	assert.Contains(t, output, "SOT23")
	assert.Contains(t, output, "transistors")

	output, err = execute(t, dir, "catalog", "search", "--dir", catDir, "+kind:package", "+library:rcl")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Len(t, lines, 3)

	output, err = execute(t, dir, "catalog", "stats", "--dir", catDir)
	require.NoError(t, err)
	assert.Contains(t, output, "Entries: 4")

	output, err = execute(t, dir, "catalog", "search", "--dir", catDir, "capacitor")
	require.NoError(t, err)
	assert.Contains(t, output, "No matches")

	_, err = execute(t, dir, "catalog", "add", "--dir", catDir, filepath.Join(dir, "notes.txt"))
	assert.Error(t, err)
}
