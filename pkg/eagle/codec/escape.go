package codec

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

var unescaper = strings.NewReplacer(
	"&quot;", `"`,
	"&apos;", "'",
	"&gt;", ">",
	"&lt;", "<",
	"&amp;", "&",
)

// Escape replaces the five XML special characters with entity references
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape.
// Description bodies in Eagle files are frequently escaped twice (HTML
// markup stored as entity text), so readers apply this on top of the
// XML decoder's own entity handling.
func Unescape(s string) string {
	return unescaper.Replace(s)
}
