package cli

import (
	"github.com/spf13/cobra"
)

var imeCmd = &cobra.Command{
	Use:   "ime",
	Short: "Input method commands",
}

var imeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available input method engines",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		engines, err := d.AvailableIMEEngines()
		if err != nil {
			return err
		}
		printJson(map[string]interface{}{"engines": engines})
		return nil
	},
}

var imeActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the active input method engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		engine, err := d.ActiveIMEEngine()
		if err != nil {
			return err
		}
		printJson(map[string]string{"engine": engine})
		return nil
	},
}

var imeActivateCmd = &cobra.Command{
	Use:   "activate <engine>",
	Short: "Activate an input method engine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.ActivateIMEEngine(args[0]); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

var imeDeactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Deactivate the current input method engine",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.DeactivateIMEEngine(); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(imeCmd)
	imeCmd.AddCommand(imeListCmd, imeActiveCmd, imeActivateCmd, imeDeactivateCmd)
}
