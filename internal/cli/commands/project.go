package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/shexc/internal/assembler"
	"github.com/leapstack-labs/shexc/internal/cli/config"
	"github.com/leapstack-labs/shexc/pkg/syntax"
	"github.com/spf13/cobra"
)

// ProjectOptions holds options for the project command.
type ProjectOptions struct {
	Input string // parse tree file
	Watch bool   // re-project when the input changes
}

// NewProjectCommand creates the project command.
func NewProjectCommand() *cobra.Command {
	opts := &ProjectOptions{}
	cmd := &cobra.Command{
		Use:   "project <tree-file>",
		Short: "Project a parsed ShExC tree into a ShExJ schema",
		Long: `Project a serialized ShExC parse tree into a ShExJ schema document.

The input is a parse tree emitted by an external parser, serialized as
JSON or YAML. Prefix and base declarations in the tree are applied in
document order on top of any configured seeds.`,
		Example: `  # Project a tree to stdout
  shexc project schema.tree.json

  # Project with a seeded base IRI, writing to a file
  shexc project --base http://example.org/ -o schema.json schema.tree.json

  # Re-project whenever the tree changes
  shexc project --watch schema.tree.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			return runProject(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Watch the input file and re-project on change")

	return cmd
}

func runProject(cmd *cobra.Command, opts *ProjectOptions) error {
	cfg := currentConfig()
	log := config.GetLogger(cmd.Context())

	if !opts.Watch {
		return projectOnce(cmd, cfg, log, opts.Input)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory; editors commonly replace the file on save,
	// which drops a watch on the file itself.
	absInput, err := filepath.Abs(opts.Input)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(absInput)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absInput), err)
	}

	if err := projectOnce(cmd, cfg, log, opts.Input); err != nil {
		log.Error("projection failed", "error", err)
	}

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, _ := filepath.Abs(ev.Name)
			if name != absInput || !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			log.Info("input changed, re-projecting", "file", opts.Input)
			if err := projectOnce(cmd, cfg, log, opts.Input); err != nil {
				log.Error("projection failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", "error", err)
		}
	}
}

func projectOnce(cmd *cobra.Command, cfg *config.Config, log *slog.Logger, input string) error {
	doc, err := syntax.LoadDocument(input, cfg.Format)
	if err != nil {
		return err
	}

	rctx := newContext(cfg)
	schema := assembler.New(rctx, log).Assemble(doc)

	if cfg.Strict {
		if diags := rctx.Diagnostics(); len(diags) > 0 {
			return errors.Join(diags...)
		}
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}
	data = append(data, '\n')

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
		}
		log.Debug("schema written", "file", cfg.Output, "shapes", len(schema.Shapes))
		return nil
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
