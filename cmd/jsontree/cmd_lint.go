package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jsontree/jsontree"
	"github.com/spf13/cobra"
)

func newLintCmd() *cobra.Command {
	var lintMaxDepth int

	cmd := &cobra.Command{
		Use:   "lint [file]",
		Short: "Check a JSON document for content that will not round-trip",
		Long: `Parse a JSON document and report values that would serialize to
invalid JSON: strings needing escapes, non-finite numbers, and excessive
nesting.

If no file is provided, reads JSON from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error

			if len(args) == 0 {
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				source, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			v, err := jsontree.Parse(source, nil)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			issues := jsontree.Validate(v, &jsontree.ValidateOptions{MaxDepth: lintMaxDepth})
			errs := 0
			for _, it := range issues {
				fmt.Fprintf(os.Stdout, "%s: %s (%s)\n", it.Level, it.Message, it.Path)
				if it.Level == jsontree.IssueError {
					errs++
				}
			}

			if errs > 0 {
				return fmt.Errorf("%d error(s) found", errs)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&lintMaxDepth, "max-depth", 0, "nesting depth limit (0 uses the default)")

	return cmd
}
