package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/roster/internal/config"
)

const configCmdName = "config"

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   configCmdName,
		Short: "Manage the roster configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(opts), newConfigValidateCmd(opts))
	return cmd
}

// newConfigInitCmd creates the config init command for writing a default
// configuration file.
func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at ~/.roster/config.yaml,
or at the path given by --config.`,
		Example: `  # Create the default configuration
  roster config init

  # Write to a custom location, overwriting an existing file
  roster --config ./roster.yaml config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, opts.configFile(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

func initConfig(cmd *cobra.Command, path string, force bool) error {
	if path == "" {
		return errors.New("cannot determine the configuration path, use --config")
	}

	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := config.New().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", path)
	return nil
}

// configFile is the file the config commands operate on.
func (o *rootOptions) configFile() string {
	if o.configPath != "" {
		return o.configPath
	}
	if env := os.Getenv(config.EnvConfigPath); env != "" {
		return env
	}
	return config.DefaultPath()
}
