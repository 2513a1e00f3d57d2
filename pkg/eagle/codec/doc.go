// Package codec provides the attribute-level serialization engine shared by
// every Eagle entity.
//
// It contains the pieces that are independent of any one element type:
//
//   - Reader and Writer, which read and write typed attributes on an
//     etree element and apply the default-elision policy on output
//   - Warnings, the sink that records attributes that were present but could
//     not be decoded (the field keeps its previous value)
//   - Enum, a bidirectional table between typed constants and the lowercase
//     tokens used in the file format
//   - the transformation string codec ("S?M?R<angle>")
//   - XML text escaping and DOCTYPE directive parsing
//
// Numbers are written with the shortest decimal representation that parses
// back to the same float64, without an exponent.
package codec
