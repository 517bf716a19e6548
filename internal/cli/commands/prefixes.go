package commands

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/shexc/internal/assembler"
	"github.com/leapstack-labs/shexc/internal/cli/config"
	"github.com/leapstack-labs/shexc/pkg/syntax"
	"github.com/spf13/cobra"
)

// NewPrefixesCommand creates the prefixes command.
func NewPrefixesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prefixes [tree-file]",
		Short: "Show the prefix tables a projection would resolve against",
		Long: `Show the reserved and declared prefix tables.

With a tree file argument, the file's directives are applied first, so the
output reflects exactly the tables a projection of that tree would use.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()
			rctx := newContext(cfg)

			if len(args) == 1 {
				doc, err := syntax.LoadDocument(args[0], cfg.Format)
				if err != nil {
					return err
				}
				assembler.New(rctx, config.GetLogger(cmd.Context())).Assemble(doc)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Prefix", "Namespace", "Source"})
			appendSorted(t, rctx.Reserved(), "reserved")
			appendSorted(t, rctx.Prefixes(), "declared")
			t.Render()

			if base := rctx.Base(); base != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "base: %s\n", base)
			}
			return nil
		},
	}
}

func appendSorted(t table.Writer, prefixes map[string]string, source string) {
	keys := make([]string, 0, len(prefixes))
	for prefix := range prefixes {
		keys = append(keys, prefix)
	}
	sort.Strings(keys)
	for _, prefix := range keys {
		t.AppendRow(table.Row{prefix, prefixes[prefix], source})
	}
}
