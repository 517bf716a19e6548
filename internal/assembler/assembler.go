// Package assembler builds a shexj.Schema from a parsed ShExC document
// tree, driving the resolvers in pkg/resolve. Directives take effect in
// document order, so prefix and base declarations cover everything that
// follows them — the order a well-formed document declares them in.
package assembler

import (
	"log/slog"

	"github.com/leapstack-labs/shexc/pkg/escape"
	"github.com/leapstack-labs/shexc/pkg/resolve"
	"github.com/leapstack-labs/shexc/pkg/shexj"
	"github.com/leapstack-labs/shexc/pkg/syntax"
)

// Assembler walks one document tree with one resolution context.
type Assembler struct {
	ctx *resolve.Context
	log *slog.Logger
}

// New returns an Assembler over ctx. A nil logger discards.
func New(ctx *resolve.Context, log *slog.Logger) *Assembler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Assembler{ctx: ctx, log: log}
}

// Assemble projects doc into the context's schema and returns it.
func (a *Assembler) Assemble(doc *syntax.Document) *shexj.Schema {
	for i := range doc.Directives {
		d := &doc.Directives[i]
		switch {
		case d.Prefix != nil:
			ns := a.ctx.ResolveIRIRef(&d.Prefix.IRI)
			a.ctx.DefinePrefix(d.Prefix.NS, ns)
			a.log.Debug("prefix declared", "prefix", d.Prefix.NS, "namespace", ns)
		case d.Base != nil:
			base := a.ctx.ResolveIRIRef(&d.Base.IRI)
			a.ctx.SetBase(base)
			a.log.Debug("base declared", "base", base)
		}
	}

	schema := a.ctx.Schema
	if doc.Start != nil {
		schema.Start = a.ctx.ResolveShapeRef(doc.Start)
	}
	for i := range doc.Shapes {
		decl := &doc.Shapes[i]
		schema.Shapes = append(schema.Shapes, &shexj.ShapeDecl{
			ID:   a.ctx.ResolveShapeExprLabel(&decl.Label),
			Expr: a.shapeExpr(&decl.Expr),
		})
	}
	a.log.Debug("schema assembled", "shapes", len(schema.Shapes))
	return schema
}

func (a *Assembler) shapeExpr(e *syntax.ShapeExpr) shexj.ShapeExpr {
	switch {
	case e.Constraint != nil:
		return a.nodeConstraint(e.Constraint)
	case e.Shape != nil:
		return a.shape(e.Shape)
	case e.Ref != nil:
		return &shexj.Ref{Label: a.ctx.ResolveShapeRef(e.Ref)}
	}
	panic("assembler: shapeExpr node has no populated alternative")
}

func (a *Assembler) shape(sn *syntax.ShapeNode) *shexj.Shape {
	sh := &shexj.Shape{}
	if sn.Closed {
		closed := true
		sh.Closed = &closed
	}
	for i := range sn.Extra {
		sh.Extra = append(sh.Extra, a.ctx.ResolveIRI(&sn.Extra[i]))
	}
	if sn.Expression != nil {
		sh.Expression = a.tripleExpr(sn.Expression)
	}
	for i := range sn.SemActs {
		sa := &shexj.SemAct{Name: a.ctx.ResolveIRI(&sn.SemActs[i].Name)}
		if sn.SemActs[i].Code != nil {
			sa.Code = *sn.SemActs[i].Code
		}
		sh.SemActs = append(sh.SemActs, sa)
	}
	return sh
}

func (a *Assembler) tripleExpr(te *syntax.TripleExprNode) shexj.TripleExpr {
	exprs := make([]shexj.TripleExpr, 0, len(te.Constraints))
	for i := range te.Constraints {
		exprs = append(exprs, a.tripleConstraint(&te.Constraints[i]))
	}
	if len(exprs) == 1 {
		return exprs[0]
	}
	return &shexj.EachOf{Expressions: exprs}
}

func (a *Assembler) tripleConstraint(tc *syntax.TripleConstraintNode) *shexj.TripleConstraint {
	out := &shexj.TripleConstraint{
		Predicate: a.ctx.ResolvePredicate(&tc.Predicate),
		Min:       tc.Min,
		Max:       tc.Max,
	}
	if tc.Value != nil {
		ve := a.shapeExpr(tc.Value)
		// an empty shape constrains nothing; elide it
		if sh, ok := ve.(*shexj.Shape); ok && shexj.IsEmptyShape(sh) {
			ve = nil
		}
		out.ValueExpr = ve
	}
	return out
}

func (a *Assembler) nodeConstraint(nc *syntax.NodeConstraint) *shexj.NodeConstraint {
	out := &shexj.NodeConstraint{}
	if nc.Datatype != nil {
		out.Datatype = a.ctx.ResolveIRI(nc.Datatype)
	}
	for i := range nc.Values {
		v := &nc.Values[i]
		switch {
		case v.IRI != nil:
			out.Values = append(out.Values, a.ctx.ResolveIRI(v.IRI))
		case v.Literal != nil:
			out.Values = append(out.Values, a.ctx.BuildLiteral(v.Literal))
		}
	}
	if nc.Pattern != nil {
		out.Pattern = escape.DecodeRegex(*nc.Pattern)
	}
	out.MinInclusive = facet(nc.MinInclusive)
	out.MinExclusive = facet(nc.MinExclusive)
	out.MaxInclusive = facet(nc.MaxInclusive)
	out.MaxExclusive = facet(nc.MaxExclusive)
	return out
}

func facet(n *syntax.NumericLiteral) *shexj.NumericTag {
	if n == nil {
		return nil
	}
	tag := resolve.BuildNumericTag(n)
	return &tag
}
