package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"selam-hq/callisto/pkg/cli"
	"selam-hq/callisto/pkg/schema"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show <domain> [name]",
	Short: "Show a resolved configuration document",
	Long: `Show resolves one document (layering, substitution, defaults, and
validation included) and prints it. Singleton domains (main, assets) take
no name; collection domains require one.

With --raw the merged document is printed before binding and defaults,
exactly as the resolution pipeline produced it.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, err := schema.ParseDomain(args[0])
		if err != nil {
			return cli.NewCommandError("show", err)
		}

		name := ""
		if len(args) == 2 {
			name = args[1]
		}
		if domain.Singleton() && name != "" {
			return cli.NewCommandError("show", fmt.Errorf("%s takes no document name", domain))
		}
		if !domain.Singleton() && name == "" {
			return cli.NewCommandError("show", fmt.Errorf("%s requires a document name", domain))
		}

		l, err := newLoader()
		if err != nil {
			return cli.NewCommandError("show", err)
		}

		var doc any
		if showRaw {
			doc, err = l.Resolved(domain, name)
		} else {
			doc, err = l.Get(domain, name)
		}
		if err != nil {
			return cli.NewCommandError("show", err)
		}

		// Text output falls back to YAML; a struct dump is unreadable.
		format := output
		if format == "text" {
			format = "yaml"
		}
		f, err := cli.NewFormatter(format)
		if err != nil {
			return err
		}
		return f.FormatTo(os.Stdout, doc)
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the merged document before binding and defaults")
	rootCmd.AddCommand(showCmd)
}
