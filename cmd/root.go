package cmd

import (
	"fmt"
	"os"

	"github.com/Mohsinsiddi/paramgen/internal/config"
	"github.com/Mohsinsiddi/paramgen/internal/ui"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/paramgen/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir  string
	cfg     *config.Config
	verbose bool
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "paramgen",
	Short: "Contract parameter method-stub generator",
	Long: `paramgen — generates the add_int*/add_uint* method stubs for the
ContractFunctionParameters builder.

  For every bit width from 8 to 256 (step 8) it renders four stubs —
  signed scalar, signed array, unsigned scalar, unsigned array — that
  delegate to the builder's add_int / add_int_array primitives, and
  writes them grouped into a single output file.

The output is deterministic: rerunning with the same widths produces a
byte-identical file. Use ` + "`paramgen verify`" + ` in CI to check the
committed file is current.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cfg.NoColor {
			ui.DisableColor()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// PARAMGEN_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("PARAMGEN_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.paramgen)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Register all sub-commands.
	rootCmd.AddCommand(
		generateCmd,
		verifyCmd,
		widthsCmd,
		previewCmd,
		configCmd,
	)
}
