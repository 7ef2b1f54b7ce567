package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/Mohsinsiddi/paramgen/internal/gen"
	"github.com/Mohsinsiddi/paramgen/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"
)

var verifyOutput string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the output file matches a fresh generation",
	Long: `Regenerate the stubs in memory and compare their Keccak-256 digest
against the on-disk output file. Exits non-zero when the file is
missing or stale — wire this into CI to catch hand-edited or outdated
generated files.

Examples:
  paramgen verify
  paramgen verify -o src/params.rs.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := verifyOutput
		if path == "" {
			path = cfg.OutputPath
		}

		widths, err := gen.WidthsBetween(cfg.Widths.From, cfg.Widths.To)
		if err != nil {
			return err
		}
		res, err := gen.Generate(widths)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			return fmt.Errorf("%s does not exist — run `paramgen generate` first", path)
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		want := res.Digest()
		got := fileDigest(data)
		if got != want {
			fmt.Println(ui.Err(fmt.Sprintf("%s is stale", path)))
			fmt.Println(ui.Meta("  on disk:  " + got))
			fmt.Println(ui.Meta("  expected: " + want))
			return fmt.Errorf("%s does not match a fresh generation — run `paramgen generate`", path)
		}

		fmt.Println(ui.Success(fmt.Sprintf("%s is up to date (%s)", path, ui.TruncateDigest(want))))
		return nil
	},
}

// fileDigest returns the 0x-prefixed Keccak-256 hash of raw file contents.
func fileDigest(data []byte) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

func init() {
	verifyCmd.Flags().StringVarP(&verifyOutput, "output", "o", "", "output file path to check (default: configured output_path)")
}
