package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/roster/internal/cli/pagination"
	"github.com/rshade/roster/internal/employee"
)

// filterFlags holds the flags shared by browse and list.
type filterFlags struct {
	country string
	gender  string
	sort    string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.country, "country", "", "only show employees in this country")
	cmd.Flags().StringVar(&f.gender, "gender", "", "only show employees of this gender (male, female)")
	cmd.Flags().StringVar(&f.sort, "sort", "",
		"sort by field[:asc|desc] (fields: "+strings.Join(pagination.NewRecordSorter().GetValidFields(), ", ")+")")
}

// resolve turns the flags into a filter and sort. An empty --sort falls back
// to the configured default sort.
func (f filterFlags) resolve(countries []string, defaultSort employee.Sort) (employee.Filter, employee.Sort, error) {
	var filter employee.Filter

	if c := strings.TrimSpace(f.country); c != "" {
		idx := slices.IndexFunc(countries, func(v string) bool { return strings.EqualFold(v, c) })
		if idx < 0 {
			return filter, employee.Sort{}, fmt.Errorf("unknown country %q (run 'roster countries' for the list)", c)
		}
		filter.Country = countries[idx]
	}

	g, err := employee.ParseGender(f.gender)
	if err != nil {
		return filter, employee.Sort{}, err
	}
	filter.Gender = g

	s := defaultSort
	if strings.TrimSpace(f.sort) != pagination.DefaultSortExpr {
		if s, err = pagination.ParseSort(f.sort); err != nil {
			return filter, employee.Sort{}, err
		}
	}
	return filter, s, nil
}
