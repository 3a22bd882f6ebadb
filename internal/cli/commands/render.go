package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/vizr/internal/dataset"
	"github.com/leapstack-labs/vizr/internal/loader"
	"github.com/leapstack-labs/vizr/internal/view"
)

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	var (
		slide    int
		maxLines int
	)

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a data file to stdout",
		Long: `Render one slide of a data file without entering the interactive viewer.

Saved preferences are used when present; otherwise every data set is shown
as a table on one slide.`,
		Example: `  # Render with saved preferences (or defaults)
  vizr render data.json

  # Render slide 2 at a fixed width
  vizr render data.json --slide 2 --width 120

  # Cap the output
  vizr render data.json --max-lines 40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], slide, maxLines)
		},
	}

	cmd.Flags().IntVar(&slide, "slide", 1, "Slide to render")
	cmd.Flags().IntVar(&maxLines, "max-lines", 0, "Cap the number of output lines (0 = unlimited)")
	return cmd
}

func runRender(cmd *cobra.Command, path string, slide, maxLines int) error {
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
	if len(datasets) == 0 {
		return fmt.Errorf("no displayable data in %s", path)
	}

	prefs, err := store.Load(path)
	if err != nil {
		return err
	}

	engine := view.NewEngine(datasets, prefs)
	if slide < view.MinSlide || slide > engine.TotalSlides() {
		return fmt.Errorf("slide %d out of range (1-%d)", slide, engine.TotalSlides())
	}

	lines := engine.Compose(slide, terminalWidth(cfg))
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
