// Package shexj defines the abstract schema model produced by projecting a
// parsed ShExC document: IRIs, labels, literals, and the schema records that
// downstream tooling consumes. The JSON shape follows the ShExJ convention of
// a "type" discriminator on every compound record.
package shexj

// IRI is an absolute IRI. Once produced by the resolution layer it is never
// relative: the raw text either carried a scheme separator or was prefixed
// with the document base.
type IRI string

// Well-known IRIs used during projection.
const (
	RDFType IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	XSDInteger IRI = "http://www.w3.org/2001/XMLSchema#integer"
	XSDDecimal IRI = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDDouble  IRI = "http://www.w3.org/2001/XMLSchema#double"
	XSDBoolean IRI = "http://www.w3.org/2001/XMLSchema#boolean"
)

// Label names a shape expression or triple expression: an IRI or a blank
// node. Which one applies is determined at the syntax level.
type Label interface {
	labelNode() // marker method to close the variant set
}

func (IRI) labelNode() {}

// BNode is a blank node identifier, carried verbatim from the source text.
// Blank node identifiers are never resolved against prefixes or unescaped.
type BNode string

func (BNode) labelNode() {}
