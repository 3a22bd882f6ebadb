package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/vizr/internal/tui"
)

// NewViewCommand creates the view command, the explicit form of running vizr
// with a file argument.
func NewViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file>",
		Short: "View a data file interactively",
		Long: `Open the interactive viewer for a data file.

First-time files go through the configuration wizard; the choices are saved
and reused on later runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			return tui.RunViewer(cmd.Context(), args[0], store, cfg)
		},
	}
}
