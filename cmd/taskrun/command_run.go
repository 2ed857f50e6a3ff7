package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sourceplane/taskrun/internal/engine"
	"github.com/sourceplane/taskrun/internal/loader"
	"github.com/sourceplane/taskrun/internal/runner"
	"github.com/spf13/cobra"
)

var runDryRun bool

var runCmd = &cobra.Command{
	Use:   "run [targets...]",
	Short: "Execute targets and their prerequisites",
	Long:  "Execute the requested targets in dependency order, each at most once. With no arguments the taskfile's default target is selected.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTargets(cmd.Context(), args)
	},
}

func registerRunCommand(root *cobra.Command) {
	root.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Print commands without executing them")
}

func runTargets(ctx context.Context, targets []string) error {
	result, err := loader.Load(taskfilePath)
	if err != nil {
		return err
	}

	r := runner.NewRunner(workDir, os.Stdout, os.Stderr, runDryRun)
	e := engine.New(result.Registry, result.Default, r, os.Stdout)

	if runDryRun {
		fmt.Println("□ Dry-run mode enabled")
	}

	if err := e.Run(ctx, targets); err != nil {
		return err
	}

	fmt.Println("✓ Run complete")
	return nil
}
