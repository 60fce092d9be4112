package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/navstack-dev/navstack/internal/config"
	naverrors "github.com/navstack-dev/navstack/internal/errors"
	"github.com/navstack-dev/navstack/pkg/nav"
	"github.com/navstack-dev/navstack/pkg/route"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var configSource string

	rootCmd := &cobra.Command{
		Use:   "navstack",
		Short: "Bidirectional URL-to-route matching for navigation stacks",
		Long: `Navstack converts browser paths into navigation segments and back.

Routes come from navstack.json (or an s3:// source). The CLI can
inspect the normalized table, parse paths against it, build canonical
paths for named routes, and run the navigation service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configSource, "config", "c", "",
		"Config path or s3://bucket/key (default navstack.json)")

	rootCmd.AddCommand(
		routesCmd(&configSource),
		parseCmd(&configSource),
		hrefCmd(&configSource),
		slugCmd(),
		serveCmd(&configSource),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var navErr *naverrors.NavError
		if errors.As(err, &navErr) {
			fmt.Fprint(os.Stderr, naverrors.Format(navErr))
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// loadMatcher loads configuration and builds the matcher stack shared
// by the inspection commands.
func loadMatcher(ctx context.Context, source string) (*nav.Matcher, *route.ViewRegistry, *config.Config, error) {
	cfg, err := config.Resolve(ctx, source)
	if err != nil {
		return nil, nil, nil, err
	}
	views := route.NewViewRegistry()
	table, err := cfg.Table(views)
	if err != nil {
		return nil, nil, nil, err
	}
	return nav.New(table), views, cfg, nil
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("\033[36m→\033[0m %s\n", fmt.Sprintf(format, args...))
}
