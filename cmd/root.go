package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "svec",
	Short: "svec is a minimal, educational version control system",
	Long: `svec tracks a flat set of top-level files across numbered commits
organized into named branches, without content-addressed storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ran, err := rootCmd.ExecuteC()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", ran.Name(), color.RedString("error: %s", err))
		os.Exit(1)
	}
}
