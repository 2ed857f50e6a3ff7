package main

import (
	"fmt"

	"github.com/sourceplane/taskrun/internal/loader"
	"github.com/sourceplane/taskrun/internal/planner"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the taskfile without running anything",
	Long:  "Load the taskfile, check it against the schema, resolve all variables and verify the full dependency graph is acyclic with no unknown targets.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateTaskfile()
	},
}

func registerValidateCommand(root *cobra.Command) {
	root.AddCommand(validateCmd)
}

func validateTaskfile() error {
	fmt.Println("□ Loading taskfile...")
	result, err := loader.Load(taskfilePath)
	if err != nil {
		return err
	}

	fmt.Println("□ Checking dependency graph...")
	if _, err := planner.Plan(result.Registry, result.Registry.Names()); err != nil {
		return err
	}

	fmt.Printf("✓ Taskfile is valid (%d targets)\n", result.Registry.Len())
	return nil
}
