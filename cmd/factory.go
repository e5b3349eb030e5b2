package cmd

import (
	"fmt"

	"github.com/kassahun-b/svec/core"
	"github.com/kassahun-b/svec/internal/store"
	"github.com/spf13/cobra"
)

// HandlerFunc is the signature for every command that operates on an
// already-open repository and its loaded state.
type HandlerFunc func(repo *core.Repository, st *store.State, args []string) error

// NewCommand wires a HandlerFunc into a cobra.Command: it locates the
// repository, loads its state, runs the handler, and persists the state
// back only if the handler returns no error. A handler that fails
// leaves the persisted state exactly as it was loaded.
func NewCommand(use, short string, handler HandlerFunc, requiredArgs int) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < requiredArgs {
				return fmt.Errorf("requires at least %d argument(s): %w", requiredArgs, core.ErrUsage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := core.FindRepository()
			if err != nil {
				return err
			}
			st, err := repo.LoadState()
			if err != nil {
				return err
			}
			if err := handler(repo, st, args); err != nil {
				return err
			}
			return repo.SaveState(st)
		},
	}
}

// NewInitCommand builds a command that runs before any repository state
// can be loaded — specifically init, which creates that state.
func NewInitCommand(use, short string, run func(args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args)
		},
	}
}
