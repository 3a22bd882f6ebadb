package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewConfigsCommand creates the configs command group.
func NewConfigsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configs",
		Short: "Manage saved representation preferences",
	}
	cmd.AddCommand(newConfigsListCommand())
	cmd.AddCommand(newConfigsCleanupCommand())
	return cmd
}

// configInfo is the JSON shape of one saved configuration.
type configInfo struct {
	FileName   string `json:"file_name"`
	FilePath   string `json:"file_path"`
	SavedAt    string `json:"saved_at"`
	FileExists bool   `json:"file_exists"`
	FileSize   int64  `json:"file_size"`
	Datasets   int    `json:"datasets"`
}

func newConfigsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List()
			if err != nil {
				return err
			}

			infos := make([]configInfo, 0, len(entries))
			for _, e := range entries {
				infos = append(infos, configInfo{
					FileName:   e.FileName,
					FilePath:   e.FilePath,
					SavedAt:    e.CreatedAt.Format(time.RFC3339),
					FileExists: e.FileExists,
					FileSize:   e.FileSize,
					Datasets:   len(e.Prefs),
				})
			}

			if cfg.Output == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			if len(infos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no saved configurations)")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"File", "Path", "Saved", "Size", "Data Sets", "Exists"})
			for _, info := range infos {
				exists := "yes"
				if !info.FileExists {
					exists = "missing"
				}
				t.AppendRow(table.Row{
					info.FileName,
					info.FilePath,
					info.SavedAt,
					info.FileSize,
					info.Datasets,
					exists,
				})
			}
			t.Render()
			fmt.Fprintf(cmd.OutOrStdout(), "(%d saved configurations)\n", len(infos))
			return nil
		},
	}
}

func newConfigsCleanupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Delete configurations whose data files no longer exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Cleanup()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d stale configurations\n", removed)
			return nil
		},
	}
}
