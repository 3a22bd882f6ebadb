package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/vizr/internal/dataset"
	"github.com/leapstack-labs/vizr/internal/loader"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show how a data file is classified",
		Long: `Load a data file and report the data sets found in it: their kind,
record counts, sample keys and numeric fields. Useful for checking what the
viewer will offer before configuring it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

// inspectInfo is the JSON shape of one classified data set.
type inspectInfo struct {
	Name          string   `json:"name"`
	Kind          string   `json:"kind"`
	Records       int      `json:"records"`
	SampleKeys    []string `json:"sample_keys,omitempty"`
	NumericFields []string `json:"numeric_fields,omitempty"`
}

func runInspect(cmd *cobra.Command, path string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	root, err := loader.Load(path)
	if err != nil {
		return err
	}
	datasets := dataset.Classify(root)

	infos := make([]inspectInfo, 0, len(datasets))
	for _, d := range datasets {
		infos = append(infos, inspectInfo{
			Name:          d.Name,
			Kind:          string(d.Kind),
			Records:       d.Size(),
			SampleKeys:    d.SampleKeys,
			NumericFields: d.NumericFields,
		})
	}

	if cfg.Output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	if len(infos) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "(no data sets)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Kind", "Records", "Sample Keys", "Numeric Fields"})
	for _, info := range infos {
		t.AppendRow(table.Row{
			info.Name,
			info.Kind,
			info.Records,
			strings.Join(info.SampleKeys, ", "),
			strings.Join(info.NumericFields, ", "),
		})
	}
	t.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "(%d data sets)\n", len(infos))
	return nil
}
