package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Device file transfer commands",
}

var filesPushCmd = &cobra.Command{
	Use:   "push <local-file> <device-path>",
	Short: "Push a local file to the device",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.PushFile(args[1], data); err != nil {
			return err
		}
		printJson(map[string]interface{}{"status": "ok", "bytes": len(data)})
		return nil
	},
}

var filesPullCmd = &cobra.Command{
	Use:   "pull <device-path>",
	Short: "Pull a file from the device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		data, err := d.PullFile(args[0])
		if err != nil {
			return err
		}
		return writeOutput(data)
	},
}

var filesPullFolderCmd = &cobra.Command{
	Use:   "pull-folder <device-path>",
	Short: "Pull a device folder as a zip archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		data, err := d.PullFolder(args[0])
		if err != nil {
			return err
		}
		return writeOutput(data)
	},
}

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Save a PNG screenshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		data, err := d.Screenshot()
		if err != nil {
			return err
		}
		return writeOutput(data)
	},
}

// writeOutput writes binary command output to --output, or stdout when
// the flag is "-" or unset.
func writeOutput(data []byte) error {
	if outputPath == "" || outputPath == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %d bytes to %s\n", len(data), outputPath)
	return nil
}

func init() {
	rootCmd.AddCommand(filesCmd, screenshotCmd)
	filesCmd.AddCommand(filesPushCmd, filesPullCmd, filesPullFolderCmd)

	filesPullCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	filesPullFolderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	screenshotCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
}
