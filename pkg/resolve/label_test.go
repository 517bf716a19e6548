package resolve_test

import (
	"testing"

	"github.com/leapstack-labs/shexc/pkg/resolve"
	"github.com/leapstack-labs/shexc/pkg/shexj"
	"github.com/leapstack-labs/shexc/pkg/syntax"
	"github.com/stretchr/testify/assert"
)

func labelCtx() *resolve.Context {
	ctx := resolve.New(
		resolve.WithReservedPrefixes(map[string]string{"res:": "http://reserved/"}),
		resolve.WithBase("http://b/"),
	)
	ctx.DefinePrefix("ex:", "http://ex/")
	return ctx
}

// ---------- Shape References ----------

func TestResolveShapeRef(t *testing.T) {
	tests := []struct {
		name string
		node syntax.ShapeRef
		want shexj.Label
	}{
		{
			name: "at namespace shorthand",
			node: syntax.ShapeRef{AtNS: strptr("@ex:")},
			want: shexj.IRI("http://ex/"),
		},
		{
			name: "at prefixed shorthand",
			node: syntax.ShapeRef{AtLN: strptr("@ex:Thing")},
			want: shexj.IRI("http://ex/Thing"),
		},
		{
			name: "shorthand consults reserved table first",
			node: syntax.ShapeRef{AtLN: strptr("@res:Thing")},
			want: shexj.IRI("http://reserved/Thing"),
		},
		{
			name: "explicit iri label",
			node: syntax.ShapeRef{Label: &syntax.ShapeExprLabel{
				IRI: &syntax.IRI{Ref: &syntax.IRIRef{Text: "<http://x/S>"}},
			}},
			want: shexj.IRI("http://x/S"),
		},
		{
			name: "explicit blank node label",
			node: syntax.ShapeRef{Label: &syntax.ShapeExprLabel{
				Blank: &syntax.BlankNode{Text: "_:b7"},
			}},
			want: shexj.BNode("_:b7"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labelCtx().ResolveShapeRef(&tt.node))
		})
	}
}

// ---------- Expression Labels ----------

func TestResolveShapeExprLabel(t *testing.T) {
	ctx := labelCtx()

	got := ctx.ResolveShapeExprLabel(&syntax.ShapeExprLabel{
		IRI: &syntax.IRI{Prefixed: &syntax.PrefixedName{LN: strptr("ex:S")}},
	})
	assert.Equal(t, shexj.IRI("http://ex/S"), got)

	got = ctx.ResolveShapeExprLabel(&syntax.ShapeExprLabel{Blank: &syntax.BlankNode{Text: "_:s"}})
	assert.Equal(t, shexj.BNode("_:s"), got)
}

func TestResolveTripleExprLabel(t *testing.T) {
	ctx := labelCtx()

	got := ctx.ResolveTripleExprLabel(&syntax.TripleExprLabel{
		IRI: &syntax.IRI{Ref: &syntax.IRIRef{Text: "<rel>"}},
	})
	assert.Equal(t, shexj.IRI("http://b/rel"), got)

	got = ctx.ResolveTripleExprLabel(&syntax.TripleExprLabel{Blank: &syntax.BlankNode{Text: "_:te"}})
	assert.Equal(t, shexj.BNode("_:te"), got)
}

// Blank node identifiers are carried verbatim, backslashes included.
func TestBlankNodeNeverUnescaped(t *testing.T) {
	ctx := labelCtx()
	got := ctx.ResolveShapeExprLabel(&syntax.ShapeExprLabel{
		Blank: &syntax.BlankNode{Text: `_:a\nb`},
	})
	assert.Equal(t, shexj.BNode(`_:a\nb`), got)
}

// ---------- Predicates ----------

func TestResolvePredicate(t *testing.T) {
	ctx := labelCtx()

	got := ctx.ResolvePredicate(&syntax.Predicate{
		IRI: &syntax.IRI{Prefixed: &syntax.PrefixedName{LN: strptr("ex:name")}},
	})
	assert.Equal(t, shexj.IRI("http://ex/name"), got)

	got = ctx.ResolvePredicate(&syntax.Predicate{RDFType: true})
	assert.Equal(t, shexj.RDFType, got)
}

func TestResolveLabelContractViolations(t *testing.T) {
	ctx := labelCtx()
	assert.Panics(t, func() { ctx.ResolveShapeRef(&syntax.ShapeRef{}) })
	assert.Panics(t, func() { ctx.ResolveShapeExprLabel(&syntax.ShapeExprLabel{}) })
	assert.Panics(t, func() { ctx.ResolveTripleExprLabel(&syntax.TripleExprLabel{}) })
	assert.Panics(t, func() { ctx.ResolvePredicate(&syntax.Predicate{}) })
}
