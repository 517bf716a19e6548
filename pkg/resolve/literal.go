package resolve

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/leapstack-labs/shexc/pkg/escape"
	"github.com/leapstack-labs/shexc/pkg/shexj"
	"github.com/leapstack-labs/shexc/pkg/syntax"
)

// BuildNumericTag converts a numericLiteral node into a numeric kind tag
// with a canonicalized value: the token text is round-tripped through the
// corresponding numeric parse and re-serialized. Source formatting such as
// leading zeros or an explicit '+' sign is not preserved. BuildLiteral's
// numeric path keeps the raw text instead; both behaviors are load-bearing
// downstream.
func BuildNumericTag(n *syntax.NumericLiteral) shexj.NumericTag {
	switch {
	case n.Integer != nil:
		return shexj.NumericTag{Kind: shexj.Integer, Value: canonicalInt(*n.Integer)}
	case n.Decimal != nil:
		return shexj.NumericTag{Kind: shexj.Decimal, Value: canonicalFloat(*n.Decimal)}
	case n.Double != nil:
		return shexj.NumericTag{Kind: shexj.Double, Value: canonicalFloat(*n.Double)}
	}
	panic("resolve: numericLiteral node has no populated alternative")
}

// canonicalInt round-trips integer text through an arbitrary-precision
// parse. Lexically valid tokens always parse; anything else is kept as-is.
func canonicalInt(text string) string {
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return text
	}
	return i.String()
}

func canonicalFloat(text string) string {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// BuildLiteral converts a literal node (rdfLiteral | numericLiteral |
// booleanLiteral) into an ObjectLiteral.
func (c *Context) BuildLiteral(n *syntax.Literal) shexj.ObjectLiteral {
	var lit shexj.ObjectLiteral
	switch {
	case n.RDF != nil:
		text := n.RDF.String
		var quote rune
		if len(text) > 5 && (tripleQuoted(text, `'''`) || tripleQuoted(text, `"""`)) {
			text = text[3 : len(text)-3]
		} else {
			quote = rune(text[0])
			text = text[1 : len(text)-1]
		}
		lit.Value = escape.DecodeString(text, quote)
		if n.RDF.LangTag != nil {
			// language tags are case-insensitive
			lit.Language = strings.ToLower((*n.RDF.LangTag)[1:])
		}
		if n.RDF.Datatype != nil {
			lit.Type = c.ResolveIRI(n.RDF.Datatype)
		}
	case n.Numeric != nil:
		switch {
		case n.Numeric.Integer != nil:
			lit.Value, lit.Type = *n.Numeric.Integer, shexj.XSDInteger
		case n.Numeric.Decimal != nil:
			lit.Value, lit.Type = *n.Numeric.Decimal, shexj.XSDDecimal
		case n.Numeric.Double != nil:
			lit.Value, lit.Type = *n.Numeric.Double, shexj.XSDDouble
		default:
			panic("resolve: numericLiteral node has no populated alternative")
		}
	case n.Boolean != nil:
		lit.Value = strings.ToLower(n.Boolean.Text)
		lit.Type = shexj.XSDBoolean
	default:
		panic("resolve: literal node has no populated alternative")
	}
	return lit
}

func tripleQuoted(text, delim string) bool {
	return strings.HasPrefix(text, delim) && strings.HasSuffix(text, delim)
}
