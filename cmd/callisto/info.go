package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"selam-hq/callisto/pkg/cli"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the configuration tree",
	Long: `Info reports the configuration directory, the active environment, and
the documents available in each collection domain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLoader()
		if err != nil {
			return cli.NewCommandError("info", err)
		}
		info := l.Info()

		if output == "text" {
			fmt.Printf("Configuration directory: %s\n", info.Dir)
			fmt.Printf("Environment:             %s\n", info.Environment)
			fmt.Printf("Strategies (%d):          %s\n", len(info.Strategies), joinOrNone(info.Strategies))
			fmt.Printf("Risk profiles (%d):       %s\n", len(info.RiskProfiles), joinOrNone(info.RiskProfiles))
			fmt.Printf("Agents (%d):              %s\n", len(info.Agents), joinOrNone(info.Agents))
			return nil
		}

		f, err := formatter()
		if err != nil {
			return err
		}
		return f.FormatTo(os.Stdout, info)
	},
}

// joinOrNone renders a name list for text output.
func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
