package main

import (
	"fmt"

	"github.com/sourceplane/taskrun/internal/loader"
	"github.com/sourceplane/taskrun/internal/render"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List targets defined in the taskfile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listTargets()
	},
}

func registerListCommand(root *cobra.Command) {
	root.AddCommand(listCmd)
}

func listTargets() error {
	result, err := loader.Load(taskfilePath)
	if err != nil {
		return err
	}

	fmt.Print(render.TaskList(result.Registry, result.Default))
	return nil
}
