// Package config provides configuration management for the shexc CLI:
// defaults, an optional shexc.yaml file, SHEXC_* environment variables, and
// command-line flags, in increasing order of precedence.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Base seeds the resolution context's base IRI before any document
	// directive is applied.
	Base string `koanf:"base"`
	// Prefixes seeds the user prefix table; keys are normalized to carry a
	// trailing colon.
	Prefixes map[string]string `koanf:"prefixes"`
	// Strict records unresolved-prefix diagnostics and fails the projection
	// when any were seen.
	Strict  bool   `koanf:"strict"`
	Verbose bool   `koanf:"verbose"`
	Output  string `koanf:"output"` // schema output path, empty for stdout
	Format  string `koanf:"format"` // tree input format override: json or yaml
}
