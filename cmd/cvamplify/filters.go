package main

import (
	"fmt"
	"io"

	"cv-amplify/internal/domain"

	"github.com/spf13/cobra"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the tone, focus and highlight options",
	RunE: func(cmd *cobra.Command, _ []string) error {
		printCatalog(cmd.OutOrStdout(), domain.DefaultFilters())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filtersCmd)
}

func printCatalog(w io.Writer, sel domain.FilterSelection) {
	for _, axis := range domain.Axes {
		fmt.Fprintf(w, "%s:\n", axis)
		for _, o := range domain.Catalog(axis) {
			mark := " "
			if o.ID == sel.Selected(axis) {
				mark = "*"
			}
			fmt.Fprintf(w, "  %s %-12s %-16s %s\n", mark, o.ID, o.Label, o.Description)
		}
	}
}
