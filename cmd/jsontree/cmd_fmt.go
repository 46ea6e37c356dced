package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jsontree/jsontree"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var (
		fmtOverwrite bool
		fmtCompact   bool
		fmtIndent    string
		fmtEscape    bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Reformat a JSON document",
		Long: `Reformat a JSON document to stdout, pretty-printed by default.

If no file is provided, reads JSON from stdin.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			var filename string

			if len(args) == 0 {
				if fmtOverwrite {
					return fmt.Errorf("-w requires a file argument")
				}
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				filename = args[0]
				source, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			v, err := jsontree.Parse(source, nil)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			fopt := &jsontree.FormatOptions{
				Pretty:        !fmtCompact,
				Indent:        fmtIndent,
				EscapeStrings: fmtEscape,
			}
			if fmtCompact {
				fopt.Indent = ""
			}

			output, err := jsontree.Format(v, fopt)
			if err != nil {
				return fmt.Errorf("format: %w", err)
			}
			output = append(output, '\n')

			if fmtOverwrite {
				return os.WriteFile(filename, output, 0644)
			}
			_, err = os.Stdout.Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")
	cmd.Flags().BoolVarP(&fmtCompact, "compact", "c", false, "emit compact output without whitespace")
	cmd.Flags().StringVar(&fmtIndent, "indent", "", "emit fully indented output with the given indent string")
	cmd.Flags().BoolVar(&fmtEscape, "escape", false, "escape quotes and control characters in strings")

	return cmd
}
