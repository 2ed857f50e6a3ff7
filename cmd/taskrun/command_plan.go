package main

import (
	"fmt"

	"github.com/sourceplane/taskrun/internal/loader"
	"github.com/sourceplane/taskrun/internal/planner"
	"github.com/sourceplane/taskrun/internal/render"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [targets...]",
	Short: "Show the execution order without running anything",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showPlan(args)
	},
}

func registerPlanCommand(root *cobra.Command) {
	root.AddCommand(planCmd)
}

func showPlan(targets []string) error {
	result, err := loader.Load(taskfilePath)
	if err != nil {
		return err
	}

	if len(targets) == 0 {
		if result.Default == "" {
			return fmt.Errorf("no targets requested and no default target configured")
		}
		targets = []string{result.Default}
	}

	plan, err := planner.Plan(result.Registry, targets)
	if err != nil {
		return err
	}

	fmt.Print(render.Plan(result.Registry, plan))
	return nil
}
