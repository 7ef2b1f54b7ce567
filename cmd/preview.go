package cmd

import (
	"github.com/Mohsinsiddi/paramgen/internal/gen"
	"github.com/Mohsinsiddi/paramgen/internal/ui"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the generated stubs interactively",
	Long: `Open an interactive browser over the generated method stubs without
writing anything to disk. Navigate the method list to inspect each
rendered stub.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		widths, err := gen.WidthsBetween(cfg.Widths.From, cfg.Widths.To)
		if err != nil {
			return err
		}
		res, err := gen.Generate(widths)
		if err != nil {
			return err
		}

		return ui.BrowseItems("Parameter Method Stubs", browserItems(res))
	},
}

// browserItems flattens a generation result into browser entries, keeping
// the output file's record order.
func browserItems(res *gen.Result) []ui.BrowserItem {
	records := res.Records()
	items := make([]ui.BrowserItem, 0, len(records))
	for _, rec := range records {
		items = append(items, ui.BrowserItem{
			Label:    rec.Name,
			SubLabel: rec.SolType,
			Body:     rec.Text,
		})
	}
	return items
}

func init() {
	// No flags — reads the configured width range.
}
