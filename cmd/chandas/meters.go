package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// metersCmd lists the meter catalogue
var metersCmd = &cobra.Command{
	Use:   "meters",
	Short: "List the registered meter templates",
	Long: `Prints the meter catalogue in declaration order: name, syllable count per
pada, and the number of accepted pattern variants. Includes templates merged
from a --meters file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSYLLABLES\tPATTERNS")
		for _, t := range reg.Templates() {
			fmt.Fprintf(w, "%s\t%d\t%d\n", t.Name, t.SyllableCount, len(t.Patterns))
		}
		return w.Flush()
	},
}
