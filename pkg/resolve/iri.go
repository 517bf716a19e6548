package resolve

import (
	"strings"

	"github.com/leapstack-labs/shexc/pkg/escape"
	"github.com/leapstack-labs/shexc/pkg/shexj"
	"github.com/leapstack-labs/shexc/pkg/syntax"
)

// ResolveIRIRef converts an IRIREF token, angle brackets included, into an
// IRI string. The delimiters are stripped and the remaining text decoded
// with the string-escape policy. Text containing a scheme separator is
// already absolute; otherwise the base IRI is prepended when one is set, and
// a bare relative reference passes through unchanged when not.
func (c *Context) ResolveIRIRef(ref *syntax.IRIRef) string {
	text := ref.Text
	if len(text) >= 2 {
		text = text[1 : len(text)-1]
	}
	text = escape.DecodeString(text, 0)
	if strings.ContainsRune(text, ':') || c.base == "" {
		return text
	}
	return c.base + text
}

// ResolvePrefixedName resolves a prefixedName node: a bare PNAME_NS form or
// a PNAME_LN prefix+local form. The local part may be empty, in which case
// the namespace alone is returned.
func (c *Context) ResolvePrefixedName(n *syntax.PrefixedName) string {
	switch {
	case n.NS != nil:
		return c.LookupPrefix(*n.NS)
	case n.LN != nil:
		prefix, local, _ := strings.Cut(*n.LN, ":")
		return c.LookupPrefix(prefix+":") + local
	}
	panic("resolve: prefixedName node has neither PNAME_NS nor PNAME_LN")
}

// ResolveIRI resolves an iri node: IRIREF | prefixedName. This is the single
// entry point for every iri grammar position.
func (c *Context) ResolveIRI(n *syntax.IRI) shexj.IRI {
	switch {
	case n.Ref != nil:
		return shexj.IRI(c.ResolveIRIRef(n.Ref))
	case n.Prefixed != nil:
		return shexj.IRI(c.ResolvePrefixedName(n.Prefixed))
	}
	panic("resolve: iri node has neither IRIREF nor prefixedName alternative")
}
