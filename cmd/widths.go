package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/paramgen/internal/gen"
	"github.com/Mohsinsiddi/paramgen/internal/ui"
	"github.com/spf13/cobra"
)

var widthsCmd = &cobra.Command{
	Use:   "widths",
	Short: "Show the supported bit widths and their underlying types",
	Long: `Print every supported bit width together with the byte count the
stubs pass to the builder and the signed/unsigned underlying types the
generated signatures use.

Widths up to 128 bits map onto fixed-size machine integers; everything
above uses the arbitrary-precision pair.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl := ui.NewTable([]ui.Column{
			{Title: "BITS", Width: 6},
			{Title: "BYTES", Width: 6},
			{Title: "SIGNED", Width: 9},
			{Title: "UNSIGNED", Width: 9},
		})

		for _, w := range gen.Widths() {
			ut, err := gen.TypeFor(w)
			if err != nil {
				return err
			}
			tbl.AddRow(ui.Row{
				fmt.Sprintf("%d", w),
				fmt.Sprintf("%d", w/8),
				ut.Signed,
				ut.Unsigned,
			})
		}

		fmt.Printf("%s\n\n", ui.StyleTitle.Render("Supported Bit Widths"))
		fmt.Println(tbl.Render())
		return nil
	},
}

func init() {
	// No flags — the width table is fixed.
}
