package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/navstack-dev/navstack/internal/errors"
)

func hrefCmd(configSource *string) *cobra.Command {
	var dataPairs []string

	cmd := &cobra.Command{
		Use:   "href <route-name>",
		Short: "Build the canonical path for a named route",
		Long: `Build the canonical path for a route, substituting data values
for its parameter parts.

Parameters without a matching --data key stay in the output as
literal :key tokens.

Examples:
  navstack href home
  navstack href "users/:id" --data id=42
  navstack href "users/:id/:tab" --data id=42 --data tab=bio`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matcher, _, _, err := loadMatcher(cmd.Context(), *configSource)
			if err != nil {
				return err
			}

			var data map[string]string
			for _, pair := range dataPairs {
				key, value, ok := strings.Cut(pair, "=")
				if !ok {
					return errors.Newf(errors.CategoryCLI,
						"invalid --data %q, want key=value", pair)
				}
				if data == nil {
					data = make(map[string]string)
				}
				data[key] = value
			}

			href, ok := matcher.Href(args[0], data)
			if !ok {
				return errors.Newf(errors.CategoryCLI,
					"no route named %q", args[0]).
					WithSuggestion("run `navstack routes` to list route names")
			}
			fmt.Println(href)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&dataPairs, "data", "d", nil,
		"Parameter value as key=value (repeatable)")
	return cmd
}
