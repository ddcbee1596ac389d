package cli

import (
	"github.com/spf13/cobra"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "App lifecycle commands",
}

var appsInstallCmd = &cobra.Command{
	Use:   "install <path>",
	Short: "Install an app package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.InstallApp(args[0]); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

var appsRemoveCmd = &cobra.Command{
	Use:   "remove <app-id>",
	Short: "Uninstall an app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.RemoveApp(args[0]); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

var appsInstalledCmd = &cobra.Command{
	Use:   "installed <app-id>",
	Short: "Check whether an app is installed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		installed, err := d.IsAppInstalled(args[0])
		if err != nil {
			return err
		}
		printJson(map[string]interface{}{"installed": installed})
		return nil
	},
}

var appsLaunchCmd = &cobra.Command{
	Use:   "launch <app-id>",
	Short: "Launch an app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.LaunchApp(args[0]); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

var appsTerminateCmd = &cobra.Command{
	Use:   "terminate <app-id>",
	Short: "Terminate a running app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.TerminateApp(args[0]); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(appsCmd)
	appsCmd.AddCommand(appsInstallCmd, appsRemoveCmd, appsInstalledCmd, appsLaunchCmd, appsTerminateCmd)
}
