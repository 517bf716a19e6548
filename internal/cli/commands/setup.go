// Package commands implements the shexc subcommands.
package commands

import (
	"github.com/leapstack-labs/shexc/internal/cli/config"
	"github.com/leapstack-labs/shexc/pkg/resolve"
)

// newContext builds a resolution context seeded from the CLI configuration:
// the reserved prefix table, then config-level base and prefixes. Document
// directives applied later override these seeds.
func newContext(cfg *config.Config) *resolve.Context {
	opts := []resolve.Option{
		resolve.WithReservedPrefixes(resolve.DefaultReserved()),
	}
	if cfg.Base != "" {
		opts = append(opts, resolve.WithBase(cfg.Base))
	}
	if cfg.Strict {
		opts = append(opts, resolve.WithStrict())
	}
	ctx := resolve.New(opts...)
	for prefix, ns := range cfg.Prefixes {
		ctx.DefinePrefix(prefix, ns)
	}
	return ctx
}

// currentConfig returns the loaded CLI configuration, or an empty one when
// commands run outside the root command's PersistentPreRunE (tests).
func currentConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{}
}
