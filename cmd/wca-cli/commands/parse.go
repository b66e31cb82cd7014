package commands

import (
	"os"
	"wca-userinfo/lib/wca"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file.html> [--json] [--event <name>]",
	Short: "Extracts the profile from a saved WCA person page.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		profile, err := wca.ParseProfile(body)
		if err != nil {
			return err
		}
		return printProfile(os.Stdout, profile, *eventFilter, *jsonOutput)
	},
}
