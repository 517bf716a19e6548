package shexj_test

import (
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/shexc/pkg/shexj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Shape Emptiness ----------

func TestIsEmptyShape(t *testing.T) {
	closed := true
	tests := []struct {
		name  string
		shape shexj.Shape
		want  bool
	}{
		{
			name:  "all unset",
			shape: shexj.Shape{},
			want:  true,
		},
		{
			name:  "closed set",
			shape: shexj.Shape{Closed: &closed},
			want:  false,
		},
		{
			name:  "extra set",
			shape: shexj.Shape{Extra: []shexj.IRI{"http://ex/p"}},
			want:  false,
		},
		{
			name:  "expression set",
			shape: shexj.Shape{Expression: &shexj.TripleConstraint{Predicate: "http://ex/p"}},
			want:  false,
		},
		{
			name:  "semActs set",
			shape: shexj.Shape{SemActs: []*shexj.SemAct{{Name: "http://ex/act"}}},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shexj.IsEmptyShape(&tt.shape))
		})
	}
}

// ---------- JSON Encoding ----------

func TestSchemaJSON(t *testing.T) {
	min := 1
	schema := &shexj.Schema{
		Start: shexj.IRI("http://ex/S"),
		Shapes: []*shexj.ShapeDecl{
			{
				ID: shexj.IRI("http://ex/S"),
				Expr: &shexj.Shape{
					Expression: &shexj.TripleConstraint{
						Predicate: shexj.RDFType,
						ValueExpr: &shexj.NodeConstraint{
							Datatype: shexj.XSDInteger,
						},
						Min: &min,
					},
				},
			},
			{
				ID:   shexj.BNode("_:b0"),
				Expr: &shexj.Ref{Label: shexj.IRI("http://ex/S")},
			},
		},
	}

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "Schema",
		"start": "http://ex/S",
		"shapes": [
			{
				"type": "ShapeDecl",
				"id": "http://ex/S",
				"shapeExpr": {
					"type": "Shape",
					"expression": {
						"type": "TripleConstraint",
						"predicate": "http://www.w3.org/1999/02/22-rdf-syntax-ns#type",
						"valueExpr": {
							"type": "NodeConstraint",
							"datatype": "http://www.w3.org/2001/XMLSchema#integer"
						},
						"min": 1
					}
				}
			},
			{
				"type": "ShapeDecl",
				"id": "_:b0",
				"shapeExpr": "http://ex/S"
			}
		]
	}`, string(data))
}

func TestNodeConstraintJSON(t *testing.T) {
	nc := &shexj.NodeConstraint{
		Pattern: `^a\nb$`,
		Values: []shexj.ValueSetValue{
			shexj.IRI("http://ex/v"),
			shexj.ObjectLiteral{Value: "hi", Language: "en"},
		},
		MinInclusive: &shexj.NumericTag{Kind: shexj.Integer, Value: "3"},
		MaxExclusive: &shexj.NumericTag{Kind: shexj.Double, Value: "1.5"},
	}

	data, err := json.Marshal(nc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "NodeConstraint",
		"pattern": "^a\\nb$",
		"values": ["http://ex/v", {"value": "hi", "language": "en"}],
		"mininclusive": 3,
		"maxexclusive": 1.5
	}`, string(data))
}

func TestEachOfJSON(t *testing.T) {
	e := &shexj.EachOf{Expressions: []shexj.TripleExpr{
		&shexj.TripleConstraint{Predicate: "http://ex/a"},
		&shexj.TripleConstraint{Predicate: "http://ex/b"},
	}}
	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "EachOf",
		"expressions": [
			{"type": "TripleConstraint", "predicate": "http://ex/a"},
			{"type": "TripleConstraint", "predicate": "http://ex/b"}
		]
	}`, string(data))
}

// ---------- Numeric Kinds ----------

func TestNumericKind(t *testing.T) {
	assert.Equal(t, "integer", shexj.Integer.String())
	assert.Equal(t, "decimal", shexj.Decimal.String())
	assert.Equal(t, "double", shexj.Double.String())

	assert.Equal(t, shexj.XSDInteger, shexj.Integer.DatatypeIRI())
	assert.Equal(t, shexj.XSDDecimal, shexj.Decimal.DatatypeIRI())
	assert.Equal(t, shexj.XSDDouble, shexj.Double.DatatypeIRI())
}

func TestNumericTagJSON(t *testing.T) {
	data, err := json.Marshal(shexj.NumericTag{Kind: shexj.Decimal, Value: "1.5"})
	require.NoError(t, err)
	assert.Equal(t, "1.5", string(data))

	data, err = json.Marshal(shexj.NumericTag{})
	require.NoError(t, err)
	assert.Equal(t, "0", string(data))
}
