package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/navstack-dev/navstack/pkg/routepath"
)

func slugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug <text>...",
		Short: "Format free-form text as a URL-safe path part",
		Long: `Format text as a URL-safe path part: lowercase, punctuation and
whitespace collapsed to single hyphens, percent-encoded.

Examples:
  navstack slug "Hello, World!!"
  navstack slug Getting Started With Routing`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(routepath.FormatURLPart(strings.Join(args, " ")))
		},
	}
}
