// Package netlist extracts electrical connectivity from Eagle boards and
// schematics.
//
// A board netlist comes from the contactrefs of each signal; a schematic
// netlist from the pinrefs of each net, resolved to package pads through
// the device connects of the embedded libraries. Both produce the same
// element/pad pins, so Diff can check a board against its schematic:
//
//	sch := netlist.FromSchematic(schDoc.Drawing.Schematic)
//	brd := netlist.FromBoard(brdDoc.Drawing.Board)
//	for _, d := range netlist.Diff(sch, brd) {
//		fmt.Println(d.Side, d.Net, d.Pins)
//	}
package netlist
