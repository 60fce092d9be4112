package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func routesCmd(configSource *string) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the normalized route table",
		Long: `Print the route table after normalization, in match order.

Templates are sorted by specificity: more parts first, then more
leading literal parts, then fewer parameters, with declaration order
breaking ties.

Examples:
  navstack routes
  navstack routes --config=app/navstack.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			matcher, views, _, err := loadMatcher(cmd.Context(), *configSource)
			if err != nil {
				return err
			}

			table := matcher.Table()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tNAME\tPATTERN\tVIEW\tSTATIC\tPARAMS")
			for i := 0; i < table.Len(); i++ {
				tmpl := table.At(i)
				fmt.Fprintf(w, "%d\t%s\t/%s\t%s\t%d\t%d\n",
					i,
					tmpl.Name(),
					tmpl.Pattern(),
					views.Name(tmpl.View()),
					tmpl.StaticParts(),
					tmpl.DataParts())
			}
			return w.Flush()
		},
	}
}
