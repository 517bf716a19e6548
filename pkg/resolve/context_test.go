package resolve_test

import (
	"testing"

	"github.com/leapstack-labs/shexc/pkg/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPrefix(t *testing.T) {
	ctx := resolve.New(
		resolve.WithReservedPrefixes(map[string]string{"xsd:": "http://www.w3.org/2001/XMLSchema#"}),
		resolve.WithBase("http://base/"),
	)
	ctx.DefinePrefix("ex:", "http://ex/")

	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"declared prefix", "ex:", "http://ex/"},
		{"reserved prefix", "xsd:", "http://www.w3.org/2001/XMLSchema#"},
		{"empty prefix returns base", "", "http://base/"},
		{"unknown prefix resolves empty", "nope:", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ctx.LookupPrefix(tt.prefix))
		})
	}
}

// A prefix present in both tables resolves through the reserved one.
func TestLookupPrefixReservedWins(t *testing.T) {
	ctx := resolve.New(resolve.WithReservedPrefixes(map[string]string{"ex:": "http://reserved/"}))
	ctx.DefinePrefix("ex:", "http://user/")

	assert.Equal(t, "http://reserved/", ctx.LookupPrefix("ex:"))
}

// Empty prefix with no base degrades to an empty result, never a failure.
func TestLookupPrefixNoBase(t *testing.T) {
	ctx := resolve.New()
	assert.Empty(t, ctx.LookupPrefix(""))
	assert.Empty(t, ctx.Diagnostics())
}

func TestLookupPrefixRedeclaration(t *testing.T) {
	ctx := resolve.New()
	ctx.DefinePrefix("ex:", "http://one/")
	ctx.DefinePrefix("ex:", "http://two/")

	assert.Equal(t, "http://two/", ctx.LookupPrefix("ex:"))
}

// ---------- Strict Mode ----------

func TestStrictDiagnostics(t *testing.T) {
	ctx := resolve.New(resolve.WithStrict())

	assert.Empty(t, ctx.LookupPrefix("nope:"))
	assert.Empty(t, ctx.LookupPrefix(""))

	diags := ctx.Diagnostics()
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Error(), `unresolved prefix "nope:"`)
	assert.Contains(t, diags[1].Error(), "no base IRI")
}

func TestStrictResolvesSameAsLenient(t *testing.T) {
	strict := resolve.New(resolve.WithStrict())
	lenient := resolve.New()
	strict.DefinePrefix("ex:", "http://ex/")
	lenient.DefinePrefix("ex:", "http://ex/")

	for _, prefix := range []string{"ex:", "nope:", ""} {
		assert.Equal(t, lenient.LookupPrefix(prefix), strict.LookupPrefix(prefix))
	}
}

func TestPrefixTableCopies(t *testing.T) {
	ctx := resolve.New(resolve.WithReservedPrefixes(resolve.DefaultReserved()))
	ctx.DefinePrefix("ex:", "http://ex/")

	prefixes := ctx.Prefixes()
	prefixes["ex:"] = "http://mutated/"
	assert.Equal(t, "http://ex/", ctx.LookupPrefix("ex:"))

	reserved := ctx.Reserved()
	require.Contains(t, reserved, "xsd:")
	reserved["xsd:"] = "http://mutated/"
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema#", ctx.LookupPrefix("xsd:"))
}
