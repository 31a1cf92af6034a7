package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/vbx/workspace"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file.vbp | source files...>",
		Short: "Parse VB6 sources and report every failure",
		Long: `Parse the named sources, or every source a .vbp project names, and
print each parse failure as file:line:column: message. The exit status
is non-zero when any file fails to parse cleanly.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}

	return cmd
}

func runCheck(args []string) error {
	w := workspace.New(".")

	for _, arg := range args {
		if strings.EqualFold(filepath.Ext(arg), ".vbp") {
			if _, err := w.ScanProject(arg); err != nil {
				return err
			}
			continue
		}
		if err := w.ScanFile(arg); err != nil {
			return fmt.Errorf("read %s: %w", arg, err)
		}
	}

	total := 0
	for _, info := range w.Files() {
		for _, f := range info.Failures {
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n",
				info.Path, f.Span.Start.Line, f.Span.Start.Column, f.Message)
			total++
		}
	}

	if total > 0 {
		return fmt.Errorf("%d parse failures", total)
	}
	return nil
}
