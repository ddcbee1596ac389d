package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the server's session settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		settings, err := d.GetSettings()
		if err != nil {
			return err
		}
		printJson(settings)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update one session setting",
	Long:  `Updates a session setting. The value is parsed as JSON when possible, otherwise sent as a string.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var value interface{}
		if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
			value = args[1]
		}

		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.UpdateSettings(map[string]interface{}{args[0]: value}); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}
