package main

import "github.com/spf13/cobra"

var (
	taskfilePath string
	workDir      string
)

var rootCmd = &cobra.Command{
	Use:           "taskrun",
	Short:         "Declarative task orchestration engine",
	Long:          "taskrun resolves target dependencies from a declarative taskfile and runs each target's commands at most once per invocation",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&taskfilePath, "file", "f", "tasks.yaml", "Taskfile path")
	rootCmd.PersistentFlags().StringVar(&workDir, "workdir", ".", "Base working directory for commands")

	registerRunCommand(rootCmd)
	registerPlanCommand(rootCmd)
	registerListCommand(rootCmd)
	registerValidateCommand(rootCmd)
}
