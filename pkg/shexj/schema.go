package shexj

import "encoding/json"

// Schema is the top-level schema document assembled from one parse pass.
type Schema struct {
	Start  Label
	Shapes []*ShapeDecl
}

// ShapeDecl binds a label to a shape expression.
type ShapeDecl struct {
	ID   Label
	Expr ShapeExpr
}

// ShapeExpr is the marker interface for shape expression nodes.
type ShapeExpr interface {
	shapeExprNode()
}

// TripleExpr is the marker interface for triple expression nodes.
type TripleExpr interface {
	tripleExprNode()
}

// ValueSetValue is a member of a node constraint's value set: an IRI or an
// ObjectLiteral.
type ValueSetValue interface {
	valueSetValueNode()
}

func (IRI) valueSetValueNode() {}

// Shape constrains the triples surrounding a focus node. All fields are
// optional; a shape with none of them set is empty.
type Shape struct {
	Closed     *bool
	Extra      []IRI
	Expression TripleExpr
	SemActs    []*SemAct
}

func (*Shape) shapeExprNode() {}

// IsEmptyShape reports whether sh carries no constraints: closed,
// expression, extra and semActs all unset.
func IsEmptyShape(sh *Shape) bool {
	return sh.Closed == nil && sh.Expression == nil && sh.Extra == nil && sh.SemActs == nil
}

// NodeConstraint constrains the value of a node: datatype, value set,
// string pattern, and numeric facets.
type NodeConstraint struct {
	Datatype     IRI
	Values       []ValueSetValue
	Pattern      string
	MinInclusive *NumericTag
	MinExclusive *NumericTag
	MaxInclusive *NumericTag
	MaxExclusive *NumericTag
}

func (*NodeConstraint) shapeExprNode() {}

// Ref is a reference to a shape declared elsewhere, by label.
type Ref struct {
	Label Label
}

func (*Ref) shapeExprNode() {}

// MarshalJSON renders the reference as its bare label, the ShExJ convention.
func (r *Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Label)
}

// TripleConstraint constrains the triples with a given predicate. A nil Max
// means the default cardinality; -1 means unbounded.
type TripleConstraint struct {
	Predicate IRI
	ValueExpr ShapeExpr
	Min       *int
	Max       *int
}

func (*TripleConstraint) tripleExprNode() {}

// EachOf groups triple expressions that must all match.
type EachOf struct {
	Expressions []TripleExpr
}

func (*EachOf) tripleExprNode() {}

// SemAct is a semantic action attached to a shape.
type SemAct struct {
	Name IRI    `json:"name"`
	Code string `json:"code,omitempty"`
}

// ---------- JSON encoding ----------
//
// Every compound record carries a "type" discriminator, mirroring the ShExJ
// serialization that downstream tooling expects.

// MarshalJSON implements json.Marshaler.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string       `json:"type"`
		Start  Label        `json:"start,omitempty"`
		Shapes []*ShapeDecl `json:"shapes,omitempty"`
	}{"Schema", s.Start, s.Shapes})
}

// MarshalJSON implements json.Marshaler.
func (d *ShapeDecl) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string    `json:"type"`
		ID   Label     `json:"id"`
		Expr ShapeExpr `json:"shapeExpr,omitempty"`
	}{"ShapeDecl", d.ID, d.Expr})
}

// MarshalJSON implements json.Marshaler.
func (sh *Shape) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string     `json:"type"`
		Closed     *bool      `json:"closed,omitempty"`
		Extra      []IRI      `json:"extra,omitempty"`
		Expression TripleExpr `json:"expression,omitempty"`
		SemActs    []*SemAct  `json:"semActs,omitempty"`
	}{"Shape", sh.Closed, sh.Extra, sh.Expression, sh.SemActs})
}

// MarshalJSON implements json.Marshaler.
func (n *NodeConstraint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         string          `json:"type"`
		Datatype     IRI             `json:"datatype,omitempty"`
		Values       []ValueSetValue `json:"values,omitempty"`
		Pattern      string          `json:"pattern,omitempty"`
		MinInclusive *NumericTag     `json:"mininclusive,omitempty"`
		MinExclusive *NumericTag     `json:"minexclusive,omitempty"`
		MaxInclusive *NumericTag     `json:"maxinclusive,omitempty"`
		MaxExclusive *NumericTag     `json:"maxexclusive,omitempty"`
	}{
		"NodeConstraint", n.Datatype, n.Values, n.Pattern,
		n.MinInclusive, n.MinExclusive, n.MaxInclusive, n.MaxExclusive,
	})
}

// MarshalJSON implements json.Marshaler.
func (t *TripleConstraint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string    `json:"type"`
		Predicate IRI       `json:"predicate"`
		ValueExpr ShapeExpr `json:"valueExpr,omitempty"`
		Min       *int      `json:"min,omitempty"`
		Max       *int      `json:"max,omitempty"`
	}{"TripleConstraint", t.Predicate, t.ValueExpr, t.Min, t.Max})
}

// MarshalJSON implements json.Marshaler.
func (e *EachOf) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string       `json:"type"`
		Expressions []TripleExpr `json:"expressions"`
	}{"EachOf", e.Expressions})
}
