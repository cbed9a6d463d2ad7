package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"selam-hq/callisto/pkg/cli"
	"selam-hq/callisto/pkg/schema"
)

var listCmd = &cobra.Command{
	Use:   "list [domain]",
	Short: "List documents in a collection domain",
	Long: `List prints the names of the documents in a collection domain
(strategies, risk, agents). With no domain it lists all three.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLoader()
		if err != nil {
			return cli.NewCommandError("list", err)
		}

		domains := []schema.Domain{schema.DomainStrategy, schema.DomainRisk, schema.DomainAgent}
		if len(args) == 1 {
			domain, err := schema.ParseDomain(args[0])
			if err != nil {
				return cli.NewCommandError("list", err)
			}
			if domain.Singleton() {
				return cli.NewCommandError("list", fmt.Errorf("%s is a singleton domain; use show", domain))
			}
			domains = []schema.Domain{domain}
		}

		if output == "text" {
			for _, domain := range domains {
				names := l.ListNames(domain)
				fmt.Printf("%s (%d):\n", domain.Subdirectory(), len(names))
				for _, name := range names {
					fmt.Printf("  %s\n", name)
				}
			}
			return nil
		}

		listing := make(map[string][]string, len(domains))
		for _, domain := range domains {
			listing[domain.Subdirectory()] = l.ListNames(domain)
		}
		f, err := formatter()
		if err != nil {
			return err
		}
		return f.FormatTo(os.Stdout, listing)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
