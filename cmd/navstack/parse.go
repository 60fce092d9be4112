package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/navstack-dev/navstack/pkg/nav"
	"github.com/navstack-dev/navstack/pkg/route"
)

func parseCmd(configSource *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <path>",
		Short: "Parse a browser path against the route table",
		Long: `Parse a raw browser path into navigation segments.

Every configured route contributes exactly one segment, in table
order; unmatched templates degrade to pass-through fallback segments.

Examples:
  navstack parse /users/42/profile
  navstack parse "/users/42?tab=bio" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matcher, views, _, err := loadMatcher(cmd.Context(), *configSource)
			if err != nil {
				return err
			}

			path := matcher.Parse(args[0])
			if asJSON {
				return printPathJSON(path, views)
			}

			for i, seg := range path {
				marker := " "
				view := "-"
				if seg.Matched() {
					marker = "*"
					view = views.Name(seg.View)
				}
				fmt.Printf("%s %d  id=%q name=%q view=%s", marker, i, seg.ID, seg.Name, view)
				if seg.Data != nil {
					fmt.Printf(" data=%v", seg.Data)
				}
				fmt.Println()
			}
			info("canonical: %s", nav.Serialize(path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the path as JSON")
	return cmd
}

// printPathJSON writes the parsed path as JSON, with view tokens
// resolved to their configured identifiers.
func printPathJSON(path nav.Path, views *route.ViewRegistry) error {
	type segmentOut struct {
		ID      string            `json:"id"`
		Name    string            `json:"name"`
		View    string            `json:"view,omitempty"`
		Data    map[string]string `json:"data,omitempty"`
		Matched bool              `json:"matched"`
	}

	out := make([]segmentOut, len(path))
	for i, seg := range path {
		out[i] = segmentOut{
			ID:      seg.ID,
			Name:    seg.Name,
			View:    views.Name(seg.View),
			Data:    seg.Data,
			Matched: seg.Matched(),
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
