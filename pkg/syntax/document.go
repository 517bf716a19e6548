package syntax

// Document is the shExDoc production in the simplified form the projection
// layer consumes: directives in document order, an optional start
// expression, then shape declarations.
type Document struct {
	Directives []Directive `json:"directives,omitempty" yaml:"directives,omitempty"`
	Start      *ShapeRef   `json:"start,omitempty" yaml:"start,omitempty"`
	Shapes     []ShapeDecl `json:"shapes,omitempty" yaml:"shapes,omitempty"`
}

// Directive is a prefix or base declaration.
type Directive struct {
	Prefix *PrefixDecl `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Base   *BaseDecl   `json:"base,omitempty" yaml:"base,omitempty"`
}

// PrefixDecl binds a namespace prefix (trailing colon included) to an IRI.
type PrefixDecl struct {
	NS  string `json:"ns" yaml:"ns"`
	IRI IRIRef `json:"iri" yaml:"iri"`
}

// BaseDecl sets the document base IRI.
type BaseDecl struct {
	IRI IRIRef `json:"iri" yaml:"iri"`
}

// ShapeDecl declares a labeled shape expression.
type ShapeDecl struct {
	Label ShapeExprLabel `json:"label" yaml:"label"`
	Expr  ShapeExpr      `json:"expr" yaml:"expr"`
}

// ShapeExpr is the shapeExpression production, simplified to the
// alternatives the projection layer distinguishes: nodeConstraint | shape |
// shapeRef.
type ShapeExpr struct {
	Constraint *NodeConstraint `json:"constraint,omitempty" yaml:"constraint,omitempty"`
	Shape      *ShapeNode      `json:"shape,omitempty" yaml:"shape,omitempty"`
	Ref        *ShapeRef       `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// NodeConstraint carries the node constraint facets: datatype, value set,
// pattern, and numeric range facets. Pattern is the raw text between the
// slash delimiters, still in source escaping.
type NodeConstraint struct {
	Datatype     *IRI            `json:"datatype,omitempty" yaml:"datatype,omitempty"`
	Values       []ValueSetValue `json:"values,omitempty" yaml:"values,omitempty"`
	Pattern      *string         `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MinInclusive *NumericLiteral `json:"mininclusive,omitempty" yaml:"mininclusive,omitempty"`
	MinExclusive *NumericLiteral `json:"minexclusive,omitempty" yaml:"minexclusive,omitempty"`
	MaxInclusive *NumericLiteral `json:"maxinclusive,omitempty" yaml:"maxinclusive,omitempty"`
	MaxExclusive *NumericLiteral `json:"maxexclusive,omitempty" yaml:"maxexclusive,omitempty"`
}

// ValueSetValue is one member of a value set: an iri or a literal.
type ValueSetValue struct {
	IRI     *IRI     `json:"iri,omitempty" yaml:"iri,omitempty"`
	Literal *Literal `json:"literal,omitempty" yaml:"literal,omitempty"`
}

// ShapeNode is the shape production's body.
type ShapeNode struct {
	Closed     bool            `json:"closed,omitempty" yaml:"closed,omitempty"`
	Extra      []IRI           `json:"extra,omitempty" yaml:"extra,omitempty"`
	Expression *TripleExprNode `json:"expression,omitempty" yaml:"expression,omitempty"`
	SemActs    []SemAct        `json:"semacts,omitempty" yaml:"semacts,omitempty"`
}

// SemAct is a semantic action: a name IRI and optional code text.
type SemAct struct {
	Name IRI     `json:"name" yaml:"name"`
	Code *string `json:"code,omitempty" yaml:"code,omitempty"`
}

// TripleExprNode is the triple expression body of a shape, simplified to a
// sequence of triple constraints.
type TripleExprNode struct {
	Constraints []TripleConstraintNode `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// TripleConstraintNode constrains the triples with one predicate.
type TripleConstraintNode struct {
	Predicate Predicate  `json:"predicate" yaml:"predicate"`
	Value     *ShapeExpr `json:"value,omitempty" yaml:"value,omitempty"`
	Min       *int       `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *int       `json:"max,omitempty" yaml:"max,omitempty"`
}
