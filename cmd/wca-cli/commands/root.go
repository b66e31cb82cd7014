package commands

import (
	"context"
	"fmt"
	"os"
	"wca-userinfo/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	jsonOutput  *bool
	eventFilter *string
	verbose     *bool
)

var rootCmd = &cobra.Command{
	Use:   "wca-cli",
	Short: "wca-cli fetches and parses WCA person pages from the command line.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if *verbose {
			telemetry.InitSlog(true)
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	jsonOutput = flags.Bool("json", false, "Print the profile as JSON instead of tables.")
	eventFilter = flags.String("event", "", "Only print the event most similar to the given name.")
	verbose = flags.BoolP("verbose", "v", false, "Enable verbose logging.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
