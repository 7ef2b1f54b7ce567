package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Mohsinsiddi/paramgen/internal/config"
	"github.com/Mohsinsiddi/paramgen/internal/gen"
	"github.com/Mohsinsiddi/paramgen/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Printf("%s\n\n", ui.StyleTitle.Render("Current Configuration"))
		fmt.Println(string(data))
		fmt.Println(ui.Meta("Config directory: " + cfg.Dir()))
		return nil
	},
}

var configSetOutputCmd = &cobra.Command{
	Use:   "set-output <path>",
	Short: "Set the default output file path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.OutputPath = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Output path set to %q", args[0])))
		return nil
	},
}

var configSetWidthsCmd = &cobra.Command{
	Use:   "set-widths <from> <to>",
	Short: "Set the default bit-width range",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid lower bound %q: %w", args[0], err)
		}
		to, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid upper bound %q: %w", args[1], err)
		}
		if _, err := gen.WidthsBetween(from, to); err != nil {
			return err
		}

		cfg.Widths = config.Widths{From: from, To: to}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Width range set to %d..%d", from, to)))
		return nil
	},
}

var configSetColorCmd = &cobra.Command{
	Use:   "set-color <on|off>",
	Short: "Enable or disable styled terminal output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "on":
			cfg.NoColor = false
		case "off":
			cfg.NoColor = true
			ui.DisableColor()
		default:
			return fmt.Errorf("invalid value %q — expected on or off", args[0])
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Color output turned %s", args[0])))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configListCmd, configSetOutputCmd, configSetWidthsCmd, configSetColorCmd)
}
