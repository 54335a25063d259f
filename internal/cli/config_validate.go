package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newConfigValidateCmd creates the config validate command.
func newConfigValidateCmd(opts *rootOptions) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Loads the configuration file, applies environment overrides and checks the
result: the base URL must be an absolute http(s) URL, timeouts positive, retries
non-negative, the default sort a known field and the log level valid.`,
		Example: `  # Validate current configuration
  roster config validate

  # Validate and show the effective values
  roster config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, opts, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")
	return cmd
}

// runConfigValidate reports on the configuration loaded by the root command.
// Load already rejected invalid files, so reaching here means it is valid.
func runConfigValidate(cmd *cobra.Command, opts *rootOptions, verbose bool) error {
	if err := opts.cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")
	if verbose {
		printVerboseDetails(cmd, opts)
	}
	return nil
}

// printVerboseDetails prints the effective configuration.
func printVerboseDetails(cmd *cobra.Command, opts *rootOptions) {
	cfg := opts.cfg
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", opts.configFile())
	cmd.Printf("  Base URL: %s\n", cfg.API.BaseURL)
	cmd.Printf("  Timeout: %s\n", cfg.API.Timeout())
	cmd.Printf("  Retry count: %d\n", cfg.API.RetryCount)
	cmd.Printf("  Default sort: %s\n", cfg.View.DefaultSort)
	cmd.Printf("  Scroll threshold: %d\n", cfg.View.ScrollThreshold)
	cmd.Printf("  Countries: %s\n", strings.Join(cfg.View.Countries, ", "))
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}
