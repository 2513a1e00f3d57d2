package codec

import (
	"strings"

	"github.com/beevik/etree"
)

// Doctype holds the identifiers of a <!DOCTYPE ...> declaration
type Doctype struct {
	Name     string
	PublicID string
	SystemID string
}

// FindDoctype returns the first DOCTYPE directive among the document's
// top-level tokens
func FindDoctype(doc *etree.Document) (Doctype, bool) {
	for _, tok := range doc.Child {
		d, ok := tok.(*etree.Directive)
		if !ok {
			continue
		}
		if dt, ok := ParseDoctype(d.Data); ok {
			return dt, true
		}
	}
	return Doctype{}, false
}

// ParseDoctype parses directive text such as
// `DOCTYPE eagle SYSTEM "eagle.dtd"` or `DOCTYPE x PUBLIC "p" "s"`.
// An internal subset in square brackets is ignored.
func ParseDoctype(data string) (Doctype, bool) {
	if i := strings.IndexByte(data, '['); i >= 0 {
		data = data[:i]
	}
	fields := splitQuoted(data)
	if len(fields) < 2 || fields[0] != "DOCTYPE" {
		return Doctype{}, false
	}
	dt := Doctype{Name: fields[1]}
	rest := fields[2:]
	if len(rest) == 0 {
		return dt, true
	}
	switch rest[0] {
	case "SYSTEM":
		if len(rest) > 1 {
			dt.SystemID = rest[1]
		}
	case "PUBLIC":
		if len(rest) > 1 {
			dt.PublicID = rest[1]
		}
		if len(rest) > 2 {
			dt.SystemID = rest[2]
		}
	}
	return dt, true
}

// FormatDoctype renders the directive text for a SYSTEM doctype
func FormatDoctype(name, systemID string) string {
	return "DOCTYPE " + name + ` SYSTEM "` + systemID + `"`
}

// splitQuoted splits on whitespace, keeping '...' and "..." literals whole
func splitQuoted(s string) []string {
	var out []string
	for {
		s = strings.TrimLeft(s, " \t\r\n")
		if s == "" {
			return out
		}
		if q := s[0]; q == '"' || q == '\'' {
			end := strings.IndexByte(s[1:], q)
			if end < 0 {
				return append(out, s[1:])
			}
			out = append(out, s[1:end+1])
			s = s[end+2:]
			continue
		}
		end := strings.IndexAny(s, " \t\r\n")
		if end < 0 {
			return append(out, s)
		}
		out = append(out, s[:end])
		s = s[end:]
	}
}
