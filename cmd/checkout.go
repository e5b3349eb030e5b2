package cmd

import (
	"fmt"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/checkout"
	"github.com/kassahun-b/svec/internal/store"
)

func init() {
	rootCmd.AddCommand(NewCommand(
		"checkout <branch>",
		"Switch the current branch",
		func(repo *core.Repository, st *store.State, args []string) error {
			target := args[0]
			alreadyOn, err := checkout.Switch(repo, st, target)
			if err != nil {
				return err
			}
			if alreadyOn {
				fmt.Printf("Already on '%s'\n", target)
				return nil
			}
			fmt.Printf("Switched to branch '%s'\n", target)
			return nil
		},
		1,
	))
}
