package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/vbx/workspace"
)

func newLSPCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Run an LSP server on stdio. Parse failures are published as
diagnostics whenever a tracked document is opened, changed, or saved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			server := workspace.NewLSPServer("0.1.0")
			return server.RunStdio()
		},
	}

	cmd.Flags().IntVar(&verbosity, "verbose", 0, "log verbosity (0-2)")

	return cmd
}
