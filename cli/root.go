package cli

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"github.com/mobile-next/mobiledriver/driver"
	"github.com/mobile-next/mobiledriver/utils"
	"github.com/mobile-next/mobiledriver/wire"
)

const version = "dev"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mobiledriver",
	Short: "A client for mobile automation servers",
	Long:  `A command-line client for driving iOS and Android devices through a mobile automation server`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func initConfig() {
	utils.SetVerbose(verbose)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "automation server URL (default from config file)")
	rootCmd.PersistentFlags().StringVarP(&platformName, "platform", "p", "", "platform name capability (android, ios)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// openDriver opens a session using flags, the config file and any
// stored auth token. Callers must Close the returned driver.
func openDriver() (*driver.Driver, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	server := serverURL
	if server == "" {
		server = cfg.ServerURL
	}

	caps := driver.Capabilities{}
	for key, value := range cfg.Capabilities {
		caps[key] = value
	}
	if platformName != "" {
		caps["platformName"] = platformName
	}

	utils.Verbose("opening session on %s", server)
	client := wire.NewClient(server, wire.RegisterMobileCommands(wire.BaseCommands()))
	if token, err := keyring.Get(keyringService, keyringUser); err == nil {
		client.SetToken(token)
	}

	d, err := driver.OpenWithClient(client, caps)
	if err != nil {
		return nil, fmt.Errorf("failed to open session on %s: %w", server, err)
	}
	return d, nil
}

// printJson is a helper function to print JSON responses
func printJson(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(jsonData))
}
