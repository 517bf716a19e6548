package resolve

import (
	"strings"

	"github.com/leapstack-labs/shexc/pkg/shexj"
	"github.com/leapstack-labs/shexc/pkg/syntax"
)

// ResolveShapeRef resolves a shapeRef node: an ATPNAME_NS or ATPNAME_LN
// sigil shorthand, or an explicit '@' shapeExprLabel reference. The
// shorthand forms strip the one-character sigil and then resolve exactly as
// prefixed names, through the same reserved-first lookup.
func (c *Context) ResolveShapeRef(n *syntax.ShapeRef) shexj.Label {
	switch {
	case n.AtNS != nil:
		return shexj.IRI(c.LookupPrefix((*n.AtNS)[1:]))
	case n.AtLN != nil:
		prefix, local, _ := strings.Cut((*n.AtLN)[1:], ":")
		return shexj.IRI(c.LookupPrefix(prefix+":") + local)
	case n.Label != nil:
		return c.ResolveShapeExprLabel(n.Label)
	}
	panic("resolve: shapeRef node has no populated alternative")
}

// ResolveShapeExprLabel resolves a shapeExprLabel node: iri | blankNode.
// Blank node text is taken verbatim; identifiers are never unescaped.
func (c *Context) ResolveShapeExprLabel(n *syntax.ShapeExprLabel) shexj.Label {
	switch {
	case n.IRI != nil:
		return c.ResolveIRI(n.IRI)
	case n.Blank != nil:
		return shexj.BNode(n.Blank.Text)
	}
	panic("resolve: shapeExprLabel node has neither iri nor blankNode alternative")
}

// ResolveTripleExprLabel resolves a tripleExprLabel node: iri | blankNode.
func (c *Context) ResolveTripleExprLabel(n *syntax.TripleExprLabel) shexj.Label {
	switch {
	case n.IRI != nil:
		return c.ResolveIRI(n.IRI)
	case n.Blank != nil:
		return shexj.BNode(n.Blank.Text)
	}
	panic("resolve: tripleExprLabel node has neither iri nor blankNode alternative")
}

// ResolvePredicate resolves a predicate node: iri | rdfType. The rdfType
// alternative yields the well-known rdf:type IRI with no further resolution.
func (c *Context) ResolvePredicate(n *syntax.Predicate) shexj.IRI {
	switch {
	case n.IRI != nil:
		return c.ResolveIRI(n.IRI)
	case n.RDFType:
		return shexj.RDFType
	}
	panic("resolve: predicate node has neither iri nor rdfType alternative")
}
