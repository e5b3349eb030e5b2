package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/kassahun-b/svec/core"
)

var initCmd = NewInitCommand(
	"init",
	"Initialize a new, empty svec repository",
	func(args []string) error {
		dir, err := filepath.Abs(".")
		if err != nil {
			return err
		}
		if _, err := core.Init(dir); err != nil {
			return err
		}
		fmt.Printf("Initialized empty svec repository in %s\n", filepath.Join(dir, core.DirName))
		return nil
	},
)

func init() {
	rootCmd.AddCommand(initCmd)
}
