package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/vbx/vb6/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a VB6 source file and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			tree, failures := parser.ParseText(filepath.Base(filename), string(data))

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				if err := enc.Encode(tree); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "tree":
				fmt.Print(tree.DebugTree())
				for _, f := range failures {
					fmt.Fprintln(os.Stderr, f)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")

	return cmd
}
