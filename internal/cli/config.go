package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/widgetkit/widgetgen/internal/branding"
	"github.com/widgetkit/widgetgen/internal/config"
	"github.com/widgetkit/widgetgen/internal/widget"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage generator defaults",
	Long: fmt.Sprintf(`Read and write the defaults offered when scaffolding a new widget.
Values are stored at ~/%s/config.yaml and can be overridden with %s_<KEY>
environment variables.

Keys: %s`, branding.HomeDir(), branding.EnvPrefix(), strings.Join(config.Keys(), ", ")),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.ValidateKey(key); err != nil {
			return err
		}
		if key == config.KeyBuilder {
			if _, err := widget.ParseBuilder(value); err != nil {
				return err
			}
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ValidateKey(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
