package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/roster/internal/cli/pagination"
	"github.com/rshade/roster/internal/employee"
	"github.com/rshade/roster/internal/roster"
	"github.com/rshade/roster/internal/tui"
)

// Output formats accepted by --output.
const (
	outputTable  = "table"
	outputJSON   = "json"
	outputNDJSON = "ndjson"
)

// ErrFetchFailed is returned by list when no page could be loaded.
var ErrFetchFailed = errors.New("fetching employees failed")

type listFlags struct {
	filterFlags
	pagination.PaginationParams

	output string
	plain  bool
}

func newListFlags() listFlags {
	return listFlags{
		PaginationParams: *pagination.NewPaginationParams(),
		output:           outputTable,
	}
}

// listOutput is the JSON document printed by list --output json.
type listOutput struct {
	Employees  []employee.Record          `json:"employees"`
	Filter     employee.Filter            `json:"filter"`
	Sort       string                     `json:"sort"`
	Pagination *pagination.PaginationMeta `json:"pagination,omitempty"`
	Fetch      pagination.FetchMeta       `json:"fetch"`
}

// ndjsonSummary is the trailing line of list --output ndjson.
type ndjsonSummary struct {
	Type       string                     `json:"type"`
	Count      int                        `json:"count"`
	Filter     employee.Filter            `json:"filter"`
	Sort       string                     `json:"sort"`
	Pagination *pagination.PaginationMeta `json:"pagination,omitempty"`
	Fetch      pagination.FetchMeta       `json:"fetch"`
}

func newListCmd(opts *rootOptions) *cobra.Command {
	flags := newListFlags()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print employees without the interactive view",
		Long: `Fetch pages of the directory and print the matching employees.

--pages controls how many remote pages are requested (0 fetches until the
listing is exhausted). --limit/--offset or --page/--page-size then select the
rows to print from what was loaded.`,
		Example: `  roster list
  roster list --country India --pages 3
  roster list --pages 0 --sort age:desc --limit 20
  roster list --page 2 --page-size 10 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&flags.Pages, "pages", pagination.DefaultPages,
		fmt.Sprintf("remote pages to fetch, 0 for all (max %d)", pagination.MaxPages))
	cmd.Flags().IntVar(&flags.Limit, "limit", pagination.DefaultLimit, "maximum rows to print (0 for no limit)")
	cmd.Flags().IntVar(&flags.Offset, "offset", pagination.DefaultOffset, "rows to skip before printing")
	cmd.Flags().IntVar(&flags.Page, "page", 0, "output page to print (1-based, requires --page-size)")
	cmd.Flags().IntVar(&flags.PageSize, "page-size", 0, "rows per output page")
	cmd.Flags().StringVar(&flags.output, "output", outputTable, "output format: table, json, or ndjson")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "disable colors in table output")
	cmd.MarkFlagsMutuallyExclusive("offset", "page")

	return cmd
}

func runList(cmd *cobra.Command, opts *rootOptions, flags listFlags) error {
	ctx := cmd.Context()

	if err := flags.PaginationParams.Validate(); err != nil {
		return err
	}
	format := strings.ToLower(strings.TrimSpace(flags.output))
	switch format {
	case outputTable, outputJSON, outputNDJSON:
	default:
		return fmt.Errorf("unsupported output format %q (use table, json, or ndjson)", flags.output)
	}

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

	session := roster.NewSession(roster.New(filter, sort), client)
	requested := session.LoadPages(ctx, flags.Pages)
	state := session.State()

	logger.Debug().Ctx(ctx).
		Str("operation", "list").
		Int("pages_requested", requested).
		Int("displayed", state.Len()).
		Str("phase", state.Phase.String()).
		Msg("listing loaded")

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	fetch := pagination.NewFetchMeta(state, requested)
	if fetch.Failed {
		if state.Len() == 0 {
			return fmt.Errorf("%w: page %d could not be loaded", ErrFetchFailed, state.Cursor.PageIndex)
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(),
			"Warning: page %d could not be loaded; showing the %s loaded before it\n",
			state.Cursor.PageIndex, tui.Plural(state.Len(), "employee"))
	}

	displayed := state.Displayed()
	rows := pagination.ApplyToSlice(flags.PaginationParams, displayed)

	var meta *pagination.PaginationMeta
	if flags.IsWindowed() {
		m := pagination.NewPaginationMeta(flags.PaginationParams, len(displayed))
		meta = &m
	}

	w := cmd.OutOrStdout()
	switch format {
	case outputJSON:
		return renderListJSON(w, listOutput{
			Employees:  rows,
			Filter:     filter,
			Sort:       sort.String(),
			Pagination: meta,
			Fetch:      fetch,
		})
	case outputNDJSON:
		return renderListNDJSON(w, rows, ndjsonSummary{
			Type:       "summary",
			Count:      len(rows),
			Filter:     filter,
			Sort:       sort.String(),
			Pagination: meta,
			Fetch:      fetch,
		})
	default:
		styled := tui.DetectOutputMode(false, false, flags.plain) != tui.OutputModePlain
		return renderListTable(w, rows, len(displayed), sort, fetch, styled)
	}
}

func renderListTable(
	w io.Writer,
	rows []employee.Record,
	total int,
	sort employee.Sort,
	fetch pagination.FetchMeta,
	styled bool,
) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No employees match the current filters.")
		return err
	}

	width := 0
	if styled {
		width = tui.TerminalWidth()
	}
	if _, err := fmt.Fprint(w, tui.RenderTable(rows, sort, styled, width)); err != nil {
		return err
	}

	footer := fmt.Sprintf("\nShowing %d of %s", len(rows), tui.Plural(total, "employee"))
	if fetch.HasMore {
		footer += fmt.Sprintf(" (more available from page %d)", fetch.NextPage)
	}
	_, err := fmt.Fprintln(w, footer)
	return err
}

func renderListJSON(w io.Writer, out listOutput) error {
	if out.Employees == nil {
		out.Employees = []employee.Record{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// renderListNDJSON writes one record per line followed by a summary line.
func renderListNDJSON(w io.Writer, rows []employee.Record, summary ndjsonSummary) error {
	encoder := json.NewEncoder(w)
	for _, r := range rows {
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("encoding NDJSON record: %w", err)
		}
	}
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("encoding NDJSON summary: %w", err)
	}
	return nil
}
