package shexj

// ObjectLiteral is a typed literal value in the schema model. Language tags
// apply to plain literals only, so Language and Type are mutually exclusive
// in practice; both absent means an untyped literal.
type ObjectLiteral struct {
	Value    string `json:"value"`
	Language string `json:"language,omitempty"`
	Type     IRI    `json:"type,omitempty"`
}

func (ObjectLiteral) valueSetValueNode() {}

// NumericKind enumerates the numeric literal kinds of the grammar.
type NumericKind int

// NumericKind constants, one per numeric token class.
const (
	Integer NumericKind = iota
	Decimal
	Double
)

func (k NumericKind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Decimal:
		return "decimal"
	case Double:
		return "double"
	}
	return "unknown"
}

// DatatypeIRI returns the XML Schema datatype IRI for the kind.
func (k NumericKind) DatatypeIRI() IRI {
	switch k {
	case Integer:
		return XSDInteger
	case Decimal:
		return XSDDecimal
	default:
		return XSDDouble
	}
}

// NumericTag pairs a numeric kind with a canonicalized textual value. It
// types numeric literals and also stands alone in numeric facets that need a
// kind without a full literal wrapper.
type NumericTag struct {
	Kind  NumericKind
	Value string
}

// MarshalJSON renders the tag as a bare JSON number, which is how numeric
// facets appear in the schema document.
func (t NumericTag) MarshalJSON() ([]byte, error) {
	if t.Value == "" {
		return []byte("0"), nil
	}
	return []byte(t.Value), nil
}
