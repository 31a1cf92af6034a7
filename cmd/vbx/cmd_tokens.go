package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/vbx/vb6/parser"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var includeTrivia bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream of a VB6 source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			tokens := parser.Tokenize(filepath.Base(filename), string(data))
			for _, tok := range tokens {
				if tok.Kind == parser.TokenEOF {
					break
				}
				if !includeTrivia && tok.Kind.IsTrivia() {
					continue
				}
				fmt.Printf("%4d:%-4d %-28s %q\n",
					tok.Span.Start.Line, tok.Span.Start.Column, tok.Kind, tok.Literal)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&includeTrivia, "trivia", false, "include whitespace, newline, and comment tokens")

	return cmd
}
