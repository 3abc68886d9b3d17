package cli

import (
	"fmt"
	"strings"

	"github.com/anvil-labs/anvil/internal/config"
	"github.com/anvil-labs/anvil/internal/plan"
	"github.com/anvil-labs/anvil/internal/recipe"
	"github.com/anvil-labs/anvil/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configKeys = []string{config.KeyDefaultLang, config.KeyRecipesFile}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.anvil/config.yaml.

Keys:
  default_lang   language used when --lang is omitted (js or ts)
  recipes_file   YAML file whose recipes replace the built-in ones by name`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateConfigValue(key, value); err != nil {
			return err
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
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

func validateConfigValue(key, value string) error {
	switch key {
	case config.KeyDefaultLang:
		if !scaffold.IsSupportedLang(value) {
			return &plan.ArgumentError{Name: "lang", Value: value, Reason: "Supported values are 'js' or 'ts'."}
		}
	case config.KeyRecipesFile:
		if _, err := recipe.ParseFile(value); err != nil {
			return err
		}
	default:
		return &plan.ArgumentError{
			Name:   "config key",
			Value:  key,
			Reason: "Known keys: " + strings.Join(configKeys, ", ") + ".",
		}
	}
	return nil
}
