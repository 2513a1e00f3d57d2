// Package eagle is an object model of the Eagle CAD XML format
// (DTD version 6.4) with a loss-preserving reader and writer.
//
// A Document wraps the <eagle> root. Its Drawing holds the settings, grid
// and layer table and, depending on Mode, a Library (.lbr), a Schematic
// (.sch), a Board (.brd) or several of them.
//
// Every entity follows the same contract:
//
//	Clear()                      reset to the cleared state
//	Clone() *T / Assign(src *T)  deep copy
//	Dump(w, level)               indented debug text
//	Parse(el, warn) bool         read from an element and its children
//	Serialize(parent, all) bool  append an element under parent
//
// Parsing is permissive. A missing element leaves the entity cleared and a
// malformed attribute keeps the previous value; the latter is recorded in
// the codec.Warnings passed to Parse. Document.Load collects them in
// Document.Warnings.
//
// Serialization omits optional attributes that hold their schema default
// unless writing defaults is requested, so a file read and written back
// without defaults is as small as the input allows.
//
// Basic usage:
//
//	doc, err := eagle.Load("board.brd")
//	if err != nil {
//		return err
//	}
//	for _, e := range doc.Drawing.Board.Elements {
//		fmt.Println(e.Name, e.Value)
//	}
//	doc.WriteDefaults = false
//	err = doc.Save("board-min.brd")
package eagle
