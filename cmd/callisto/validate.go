package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"selam-hq/callisto/pkg/cli"
	"selam-hq/callisto/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [domain]",
	Short: "Validate every configuration document",
	Long: `Validate loads each document in the tree independently and reports
every violation found. With a domain argument only that domain's
documents are checked. The exit code is non-zero when any document is
invalid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLoader()
		if err != nil {
			return cli.NewCommandError("validate", err)
		}

		results := l.ValidateAll()
		if len(args) == 1 {
			domain, err := schema.ParseDomain(args[0])
			if err != nil {
				return cli.NewCommandError("validate", err)
			}
			filtered := results[:0]
			for _, r := range results {
				if r.Domain == domain {
					filtered = append(filtered, r)
				}
			}
			results = filtered
		}
		invalid := 0
		for _, r := range results {
			if !r.Valid {
				invalid++
			}
		}

		if output == "text" {
			for _, r := range results {
				label := string(r.Domain)
				if r.Name != "" {
					label = fmt.Sprintf("%s/%s", r.Domain, r.Name)
				}
				if r.Valid {
					fmt.Printf("ok    %s\n", label)
				} else {
					fmt.Printf("FAIL  %s\n      %s\n", label, r.Error)
				}
			}
			fmt.Printf("\n%d documents, %d invalid\n", len(results), invalid)
		} else {
			f, err := formatter()
			if err != nil {
				return err
			}
			if err := f.FormatTo(os.Stdout, results); err != nil {
				return err
			}
		}

		if invalid > 0 {
			cmd.SilenceUsage = true
			return fmt.Errorf("%d invalid documents", invalid)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
