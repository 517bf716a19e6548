// Package resolve implements the semantic projection from ShExC parse-tree
// nodes to the abstract schema model: prefix and base IRI resolution, shape
// and triple expression label resolution, and literal construction.
//
// The package is deliberately fail-soft: unresolved prefixes resolve to the
// empty string and relative IRIs with no base pass through unresolved,
// mirroring the error-tolerant posture of the upstream parser. The only
// failure mode is a contract violation — a syntax node whose expected
// alternative is absent — which panics.
package resolve

import (
	"fmt"

	"github.com/leapstack-labs/shexc/pkg/shexj"
)

// Context carries the resolution state for one parse pass: the growing
// schema, the user-declared prefix table, the framework-reserved prefix
// table, and the optional base IRI. A Context is owned by a single pass and
// is not safe for concurrent use; parallel passes each get their own.
type Context struct {
	Schema *shexj.Schema

	prefixes map[string]string
	reserved map[string]string
	base     string

	strict      bool
	diagnostics []error
}

// Option configures a Context.
type Option func(*Context)

// WithReservedPrefixes installs the framework-reserved prefix table.
// Reserved prefixes are consulted before user-declared ones.
func WithReservedPrefixes(m map[string]string) Option {
	return func(c *Context) {
		for prefix, ns := range m {
			c.reserved[prefix] = ns
		}
	}
}

// WithBase sets the initial base IRI, as if a base declaration preceded the
// document.
func WithBase(iri string) Option {
	return func(c *Context) {
		c.base = iri
	}
}

// WithStrict makes the context record a diagnostic whenever a prefix lookup
// misses. Resolution results are unchanged: lookups still degrade to the
// empty string, so strict mode only adds visibility.
func WithStrict() Option {
	return func(c *Context) {
		c.strict = true
	}
}

// New returns a Context ready for one parse pass.
func New(opts ...Option) *Context {
	c := &Context{
		Schema:   &shexj.Schema{},
		prefixes: make(map[string]string),
		reserved: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultReserved returns the prefix table reserved by the schema
// serialization module. These namespaces resolve regardless of document
// declarations and always win over them.
func DefaultReserved() map[string]string {
	return map[string]string{
		"rdf:":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs:": "http://www.w3.org/2000/01/rdf-schema#",
		"xsd:":  "http://www.w3.org/2001/XMLSchema#",
	}
}

// DefinePrefix records a prefix declaration. The prefix includes its
// trailing colon, e.g. "ex:". Later declarations of the same prefix win.
func (c *Context) DefinePrefix(prefix, ns string) {
	c.prefixes[prefix] = ns
}

// SetBase records a base declaration.
func (c *Context) SetBase(iri string) {
	c.base = iri
}

// Base returns the current base IRI, or the empty string when unset.
func (c *Context) Base() string {
	return c.base
}

// Prefixes returns a copy of the user-declared prefix table.
func (c *Context) Prefixes() map[string]string {
	out := make(map[string]string, len(c.prefixes))
	for prefix, ns := range c.prefixes {
		out[prefix] = ns
	}
	return out
}

// Reserved returns a copy of the framework-reserved prefix table.
func (c *Context) Reserved() map[string]string {
	out := make(map[string]string, len(c.reserved))
	for prefix, ns := range c.reserved {
		out[prefix] = ns
	}
	return out
}

// LookupPrefix resolves a prefix (trailing colon included) to its namespace.
// The empty prefix resolves to the base IRI, which may itself be unset.
// Reserved prefixes win over user-declared ones. An unknown prefix resolves
// to the empty string; it is never an error.
func (c *Context) LookupPrefix(prefix string) string {
	if prefix == "" {
		if c.base == "" && c.strict {
			c.diagnostics = append(c.diagnostics,
				fmt.Errorf("empty prefix resolved with no base IRI set"))
		}
		return c.base
	}
	if ns, ok := c.reserved[prefix]; ok {
		return ns
	}
	ns, ok := c.prefixes[prefix]
	if !ok && c.strict {
		c.diagnostics = append(c.diagnostics, fmt.Errorf("unresolved prefix %q", prefix))
	}
	return ns
}

// Diagnostics returns the diagnostics recorded so far. Empty unless the
// context was built with WithStrict.
func (c *Context) Diagnostics() []error {
	return c.diagnostics
}
