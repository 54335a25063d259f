package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/roster/internal/tui"
)

const browseCmdName = "browse"

type browseFlags struct {
	filterFlags
}

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	var flags browseFlags

	cmd := &cobra.Command{
		Use:   browseCmdName,
		Short: "Open the interactive employee roster",
		Long: `Open the interactive roster. Pages are loaded as you scroll; the
country and gender selectors restart loading from the first page.

Keys: 1/2/3 sort by ID, name or demography; c and g cycle the country and
gender filters; x clears them; enter opens the selected employee; r retries a
failed page; q quits.`,
		Example: `  roster browse
  roster browse --country Canada --gender female
  roster browse --sort fullName:desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, opts, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runBrowse(cmd *cobra.Command, opts *rootOptions, flags browseFlags) error {
	ctx := cmd.Context()

	defaultSort, err := opts.cfg.DefaultSort()
	if err != nil {
		return err
	}
	filter, sort, err := flags.resolve(opts.cfg.View.Countries, defaultSort)
	if err != nil {
		return err
	}

	client, err := opts.newClient()
	if err != nil {
		return err
	}

	logger.Debug().Ctx(ctx).
		Str("operation", "browse").
		Str("base_url", client.BaseURL()).
		Str("filter", filter.String()).
		Str("sort", sort.String()).
		Msg("starting interactive roster")

	model := tui.NewEmployeesModel(ctx, client, tui.EmployeesOptions{
		Filter:          filter,
		Sort:            sort,
		Countries:       opts.cfg.View.Countries,
		ScrollThreshold: opts.cfg.View.ScrollThreshold,
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, runErr := p.Run(); runErr != nil {
		return fmt.Errorf("running roster: %w", runErr)
	}
	return nil
}
