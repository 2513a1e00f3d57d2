package codec

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Transform is the orientation carried by a "rot" attribute
type Transform struct {
	Rotation float64 // Degrees
	Mirror   bool    // Reflection about the Y axis
	Spin     bool    // Text may be rendered upside down
}

// IsIdentity reports whether the transform equals plain "R0"
func (t Transform) IsIdentity() bool {
	return t.Rotation == 0 && !t.Mirror && !t.Spin
}

// TransformLexer defines the tokens of a transformation string.
// There is no whitespace rule, any blank makes the string invalid.
var TransformLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Spin", Pattern: `S`},
	{Name: "Mirror", Pattern: `M`},
	{Name: "Rotate", Pattern: `R`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
})

// transformExpr is the grammar S? M? R <number>
type transformExpr struct {
	Spin   bool   `parser:"@Spin?"`
	Mirror bool   `parser:"@Mirror?"`
	Angle  string `parser:"Rotate @Number"`
}

var transformParser = participle.MustBuild[transformExpr](
	participle.Lexer(TransformLexer),
)

// DecodeTransform parses a transformation string such as "R90", "MR180"
// or "SMR37.5". It reports false if the string is shorter than two
// characters, lacks the R segment, or the angle is not a valid number.
func DecodeTransform(s string) (Transform, bool) {
	if len(s) < 2 {
		return Transform{}, false
	}
	expr, err := transformParser.ParseString("", s)
	if err != nil {
		return Transform{}, false
	}
	angle, err := strconv.ParseFloat(expr.Angle, 64)
	if err != nil {
		return Transform{}, false
	}
	return Transform{Rotation: angle, Mirror: expr.Mirror, Spin: expr.Spin}, true
}

// EncodeTransform formats a transform as S?M?R<angle>
func EncodeTransform(t Transform) string {
	var b strings.Builder
	if t.Spin {
		b.WriteByte('S')
	}
	if t.Mirror {
		b.WriteByte('M')
	}
	b.WriteByte('R')
	b.WriteString(FormatFloat(t.Rotation))
	return b.String()
}
