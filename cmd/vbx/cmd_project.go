package main

import (
	"fmt"

	"github.com/dhamidi/vbx/vb6/project"
	"github.com/spf13/cobra"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [file.vbp]",
		Short: "Show the structure of a VB6 project",
		Long: `Show the structure of the named VB6 project. Without an argument the
project file in the current directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runProject("")
			}
			return runProject(args[0])
		},
	}

	return cmd
}

func runProject(path string) error {
	var proj *project.Project
	var err error
	if path == "" {
		proj, err = project.Load()
	} else {
		proj, err = project.LoadFrom(path)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s\n", proj.Name)
	fmt.Printf("Type:    %s\n", proj.Type)
	fmt.Printf("Title:   %s\n", proj.Title)
	fmt.Printf("Startup: %s\n", proj.Startup)
	fmt.Printf("Version: %d.%d.%d\n", proj.Version.Major, proj.Version.Minor, proj.Version.Revision)

	if len(proj.Modules) > 0 {
		fmt.Printf("\nModules:\n")
		for _, m := range proj.Modules {
			fmt.Printf("  %s (%s)\n", m.Name, m.Path)
		}
	}
	if len(proj.Classes) > 0 {
		fmt.Printf("\nClasses:\n")
		for _, c := range proj.Classes {
			fmt.Printf("  %s (%s)\n", c.Name, c.Path)
		}
	}
	if len(proj.Forms) > 0 {
		fmt.Printf("\nForms:\n")
		for _, f := range proj.Forms {
			fmt.Printf("  %s\n", f)
		}
	}
	if len(proj.UserControls) > 0 {
		fmt.Printf("\nUser controls:\n")
		for _, u := range proj.UserControls {
			fmt.Printf("  %s\n", u)
		}
	}
	if len(proj.References) > 0 {
		fmt.Printf("\nReferences: %d\n", len(proj.References))
	}
	if len(proj.Objects) > 0 {
		fmt.Printf("Objects:    %d\n", len(proj.Objects))
	}

	return nil
}
