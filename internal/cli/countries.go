package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newCountriesCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List the countries offered by the country filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			countries := opts.cfg.View.Countries
			if asJSON {
				encoder := json.NewEncoder(w)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(countries); err != nil {
					return fmt.Errorf("encoding JSON: %w", err)
				}
				return nil
			}
			for _, c := range countries {
				if _, err := fmt.Fprintln(w, c); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the list as a JSON array")
	return cmd
}
