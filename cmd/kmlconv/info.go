package main

import (
	"fmt"
	"sort"

	"github.com/beetlebugorg/kml/pkg/kml"
	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print the number of elements of each kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.read(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if root, ok := doc.(*kml.Root); ok {
				fmt.Fprintf(out, "version\t%s\n", root.Version)
			}
			counts := countKinds(doc)
			kinds := make([]string, 0, len(counts))
			for k := range counts {
				kinds = append(kinds, k)
			}
			sort.Strings(kinds)
			for _, k := range kinds {
				fmt.Fprintf(out, "%s\t%d\n", k, counts[k])
			}
			return nil
		},
	}
}

// countKinds counts tree nodes by tag. Generic elements are counted under
// their qualified name.
func countKinds(doc kml.Kml) map[string]int {
	counts := make(map[string]int)
	kml.Walk(doc, func(k kml.Kml) bool {
		if e, ok := k.(*kml.Element); ok {
			counts[e.QName()]++
			return true
		}
		counts[k.Tag()]++
		return true
	})
	return counts
}
