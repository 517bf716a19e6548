// Package syntax defines the typed concrete-syntax-tree nodes this module
// consumes. The nodes mirror the productions of the ShExC grammar and are
// produced by an external parser; they carry raw token text only, with no
// resolution or unescaping applied.
//
// A production with alternatives is modeled as a struct with one pointer
// field per alternative; exactly one is non-nil in a well-formed tree. The
// struct tags let a serialized tree (JSON or YAML) be decoded directly.
package syntax

// IRIRef is the IRIREF terminal, angle-bracket delimiters included.
type IRIRef struct {
	Text string `json:"text" yaml:"text"`
}

// PrefixedName is the prefixedName production: PNAME_LN | PNAME_NS.
// NS keeps its trailing colon (e.g. "ex:"); LN is the full prefix:local text.
type PrefixedName struct {
	NS *string `json:"ns,omitempty" yaml:"ns,omitempty"`
	LN *string `json:"ln,omitempty" yaml:"ln,omitempty"`
}

// IRI is the iri production: IRIREF | prefixedName.
type IRI struct {
	Ref      *IRIRef       `json:"ref,omitempty" yaml:"ref,omitempty"`
	Prefixed *PrefixedName `json:"prefixed,omitempty" yaml:"prefixed,omitempty"`
}

// BlankNode is the blankNode production; Text keeps the "_:" sigil.
type BlankNode struct {
	Text string `json:"text" yaml:"text"`
}

// ShapeExprLabel is the shapeExprLabel production: iri | blankNode.
type ShapeExprLabel struct {
	IRI   *IRI       `json:"iri,omitempty" yaml:"iri,omitempty"`
	Blank *BlankNode `json:"blank,omitempty" yaml:"blank,omitempty"`
}

// TripleExprLabel is the tripleExprLabel production: iri | blankNode.
type TripleExprLabel struct {
	IRI   *IRI       `json:"iri,omitempty" yaml:"iri,omitempty"`
	Blank *BlankNode `json:"blank,omitempty" yaml:"blank,omitempty"`
}

// ShapeRef is the shapeRef production: ATPNAME_NS | ATPNAME_LN |
// '@' shapeExprLabel. AtNS and AtLN keep the leading '@' sigil.
type ShapeRef struct {
	AtNS  *string         `json:"at_ns,omitempty" yaml:"at_ns,omitempty"`
	AtLN  *string         `json:"at_ln,omitempty" yaml:"at_ln,omitempty"`
	Label *ShapeExprLabel `json:"label,omitempty" yaml:"label,omitempty"`
}

// Predicate is the predicate production: iri | rdfType.
type Predicate struct {
	IRI     *IRI `json:"iri,omitempty" yaml:"iri,omitempty"`
	RDFType bool `json:"rdf_type,omitempty" yaml:"rdf_type,omitempty"`
}

// NumericLiteral is the numericLiteral production: INTEGER | DECIMAL |
// DOUBLE. Each field holds the raw token text of its alternative.
type NumericLiteral struct {
	Integer *string `json:"integer,omitempty" yaml:"integer,omitempty"`
	Decimal *string `json:"decimal,omitempty" yaml:"decimal,omitempty"`
	Double  *string `json:"double,omitempty" yaml:"double,omitempty"`
}

// RDFLiteral is the rdfLiteral production: string (LANGTAG | '^^' datatype)?.
// String keeps its quote delimiters; LangTag keeps the leading '@'.
type RDFLiteral struct {
	String   string  `json:"string" yaml:"string"`
	LangTag  *string `json:"langtag,omitempty" yaml:"langtag,omitempty"`
	Datatype *IRI    `json:"datatype,omitempty" yaml:"datatype,omitempty"`
}

// BooleanLiteral is the booleanLiteral production; Text is "true" or "false"
// in any casing the grammar admits.
type BooleanLiteral struct {
	Text string `json:"text" yaml:"text"`
}

// Literal is the literal production: rdfLiteral | numericLiteral |
// booleanLiteral.
type Literal struct {
	RDF     *RDFLiteral     `json:"rdf,omitempty" yaml:"rdf,omitempty"`
	Numeric *NumericLiteral `json:"numeric,omitempty" yaml:"numeric,omitempty"`
	Boolean *BooleanLiteral `json:"boolean,omitempty" yaml:"boolean,omitempty"`
}
