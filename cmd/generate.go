package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/paramgen/internal/config"
	"github.com/Mohsinsiddi/paramgen/internal/gen"
	"github.com/Mohsinsiddi/paramgen/internal/ui"
	"github.com/spf13/cobra"
)

var (
	genOutput string
	genFrom   int
	genTo     int
	genStdout bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the parameter method stubs and write the output file",
	Long: `Render all four stub categories (signed scalar, signed array,
unsigned scalar, unsigned array) for every configured bit width and
write them to the output file, overwriting any prior contents.

Records are grouped by category in a fixed order and ascend by width
within each group, every record separated by one blank line.

Examples:
  paramgen generate                       # write output.txt
  paramgen generate -o src/params.rs.txt  # write elsewhere
  paramgen generate --from 16 --to 64     # only a width subrange
  paramgen generate --stdout              # print instead of writing`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to := widthRange(genFrom, genTo, cmd.Flags().Changed("from"), cmd.Flags().Changed("to"), cfg.Widths)
		widths, err := gen.WidthsBetween(from, to)
		if err != nil {
			return err
		}

		res, err := gen.Generate(widths)
		if err != nil {
			return err
		}

		if genStdout {
			fmt.Print(res.Assemble())
			return nil
		}

		path := genOutput
		if path == "" {
			path = cfg.OutputPath
		}
		if err := res.WriteFile(path); err != nil {
			return err
		}

		pairs := [][2]string{
			{"Output", path},
			{"Widths", fmt.Sprintf("%d..%d (step 8)", from, to)},
			{"Records", fmt.Sprintf("%d (%d per category)", res.Total(), len(res.SignedScalar))},
			{"Digest", ui.TruncateDigest(res.Digest())},
		}
		fmt.Println(ui.KeyValueBlock("Generated Stubs", pairs))
		if verbose {
			fmt.Println(ui.Meta("full digest: " + res.Digest()))
		}
		fmt.Println(ui.Success(fmt.Sprintf("Wrote %d method stubs to %s", res.Total(), path)))
		return nil
	},
}

// widthRange resolves the effective width bounds: flags the user set win,
// otherwise the configured range applies. Explicitly passed values are kept
// as-is so that bad bounds like --from 0 reach validation instead of
// silently falling back to the config.
func widthRange(flagFrom, flagTo int, fromSet, toSet bool, cfgWidths config.Widths) (int, int) {
	from, to := cfgWidths.From, cfgWidths.To
	if fromSet {
		from = flagFrom
	}
	if toSet {
		to = flagTo
	}
	return from, to
}

func init() {
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output file path (default: configured output_path)")
	generateCmd.Flags().IntVar(&genFrom, "from", 0, "smallest bit width to generate (default: configured)")
	generateCmd.Flags().IntVar(&genTo, "to", 0, "largest bit width to generate (default: configured)")
	generateCmd.Flags().BoolVar(&genStdout, "stdout", false, "print the generated stubs instead of writing the file")
	generateCmd.MarkFlagsMutuallyExclusive("stdout", "output")
}
