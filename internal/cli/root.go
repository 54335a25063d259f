package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/roster/internal/config"
	"github.com/rshade/roster/internal/directory"
	"github.com/rshade/roster/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootOptions carries the persistent flags and the state prepared by the
// root pre-run hook for the subcommands.
type rootOptions struct {
	configPath string
	baseURL    string
	debug      bool

	// interactive reports whether stdout is a terminal; tests override it.
	interactive func() bool

	cfg       *config.Config
	logResult *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the roster CLI.
func NewRootCmd(ver string) *cobra.Command {
	return newRootCmd(ver, func() bool { return isTerminal(os.Stdout) })
}

func newRootCmd(ver string, interactive func() bool) *cobra.Command {
	opts := &rootOptions{interactive: interactive}

	cmd := &cobra.Command{
		Use:           "roster",
		Short:         "Browse the employee directory",
		Long:          "roster lists employees from a paginated directory API, with country/gender filters and sortable columns.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == versionCmdName || isConfigInit(cmd) {
				return nil
			}
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if opts.baseURL != "" {
				cfg.API.BaseURL = opts.baseURL
				if vErr := cfg.Validate(); vErr != nil {
					return fmt.Errorf("invalid --base-url: %w", vErr)
				}
			}
			opts.cfg = cfg

			result := setupLogging(cmd, cfg.Logging, opts.debug, opts.isInteractiveCmd(cmd))
			opts.logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, opts.logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.interactive() {
				return runBrowse(cmd, opts, browseFlags{})
			}
			return runList(cmd, opts, newListFlags())
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"path to the config file (default ~/.roster/config.yaml, or $"+config.EnvConfigPath+")")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "",
		"directory API base URL (overrides config file and $"+config.EnvBaseURL+")")

	cmd.AddCommand(
		newBrowseCmd(opts),
		newListCmd(opts),
		newCountriesCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// isInteractiveCmd reports whether cmd will take over the terminal.
func (o *rootOptions) isInteractiveCmd(cmd *cobra.Command) bool {
	switch {
	case cmd.Name() == browseCmdName:
		return true
	case !cmd.HasParent():
		return o.interactive()
	default:
		return false
	}
}

// isConfigInit reports whether cmd is "config init", which must run even when
// the existing file does not load.
func isConfigInit(cmd *cobra.Command) bool {
	return cmd.Name() == "init" && cmd.HasParent() && cmd.Parent().Name() == configCmdName
}

// newClient builds the directory client from the loaded configuration.
func (o *rootOptions) newClient() (*directory.Client, error) {
	return directory.NewClient(directory.Options{
		BaseURL:    o.cfg.API.BaseURL,
		Timeout:    o.cfg.API.Timeout(),
		RetryCount: o.cfg.API.RetryCount,
		UserAgent:  o.cfg.API.UserAgent,
	})
}

const rootCmdExample = `  # Open the interactive roster
  roster browse

  # Start filtered to one country, sorted by age descending
  roster browse --country India --sort age:desc

  # Print the first three pages of female employees as a table
  roster list --gender female --pages 3

  # Fetch every page and emit JSON with pagination metadata
  roster list --pages 0 --output json

  # Show the countries offered by the country selector
  roster countries`
