// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage chartsense configuration",
	Long:  `Manage configuration files and secrets for chartsense.`,
}

var configExampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print an example configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), GenerateExampleConfig())
	},
}

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the example configuration to the config directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := writeExampleConfig(ConfigDir(), configInitForce)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Config file created: %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration (merged from all sources). Secrets are masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := viper.AllSettings()
		if sql, ok := settings["sql"].(map[string]interface{}); ok {
			for _, key := range []string{"dsn", "password"} {
				if v, _ := sql[key].(string); v != "" {
					sql[key] = "********"
				}
			}
		}
		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", used)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key [key-name]",
	Short: "Save a secret to the system keyring",
	Long: `Save a secret to the system keyring securely.

Run 'chartsense config list-keys' to see available key names.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyName := args[0]
		if !knownSecretKey(keyName) {
			return fmt.Errorf("invalid key name %q (available: %v)", keyName, ListAvailableSecretKeys())
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Enter %s (input hidden): ", keyName)
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}
		if len(secret) == 0 {
			return fmt.Errorf("empty value, nothing saved")
		}
		if err := SaveSecretToKeyring(keyName, string(secret)); err != nil {
			return fmt.Errorf("failed to save to keyring: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s saved to keyring\n", keyName)
		return nil
	},
}

var configDeleteKeyCmd = &cobra.Command{
	Use:   "delete-key [key-name]",
	Short: "Delete a secret from the system keyring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !knownSecretKey(args[0]) {
			return fmt.Errorf("invalid key name %q (available: %v)", args[0], ListAvailableSecretKeys())
		}
		if err := DeleteSecretFromKeyring(args[0]); err != nil {
			return fmt.Errorf("failed to delete from keyring: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s deleted from keyring\n", args[0])
		return nil
	},
}

var configListKeysCmd = &cobra.Command{
	Use:   "list-keys",
	Short: "List available secret keys",
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range ListAvailableSecretKeys() {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", k)
		}
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configExampleCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configDeleteKeyCmd)
	configCmd.AddCommand(configListKeysCmd)
	rootCmd.AddCommand(configCmd)
}

func knownSecretKey(name string) bool {
	for _, k := range ListAvailableSecretKeys() {
		if k == name {
			return true
		}
	}
	return false
}

// writeExampleConfig writes chartsense.yaml into dir and returns its path.
func writeExampleConfig(dir string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("error creating config directory: %w", err)
	}
	path := filepath.Join(dir, DefaultConfigFileName+".yaml")
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(GenerateExampleConfig()), 0o600); err != nil {
		return "", fmt.Errorf("error writing config file: %w", err)
	}
	return path, nil
}
