package commands

import (
	"os"
	"wca-userinfo/lib/configutil"
	"wca-userinfo/services/wcaprofile"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <wca_id> [--json] [--event <name>]",
	Short: "Fetches the profile of a WCA ID from the WCA website.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := wcaprofile.NewClient(wcaprofile.ClientOptions{
			BaseUrl:   configutil.EnvString("WCA_BASE_URL", ""),
			UserAgent: configutil.EnvString("WCA_USER_AGENT", ""),
		})
		if err != nil {
			return err
		}

		profile, err := client.GetProfile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printProfile(os.Stdout, profile, *eventFilter, *jsonOutput)
	},
}
