package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mobile-next/mobiledriver/driver"
)

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Device interaction commands",
}

var deviceLockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock the device screen",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.Lock(lockSeconds); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

var deviceUnlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock the device screen",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.Unlock(); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

var deviceLockedCmd = &cobra.Command{
	Use:   "locked",
	Short: "Check whether the screen is locked",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		locked, err := d.IsLocked()
		if err != nil {
			return err
		}
		printJson(map[string]interface{}{"locked": locked})
		return nil
	},
}

var deviceKeyCmd = &cobra.Command{
	Use:   "key <keycode>",
	Short: "Send a key event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keycode, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid keycode %q", args[0])
		}

		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.PressKeyCode(keycode); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

var deviceRotateCmd = &cobra.Command{
	Use:   "rotate [x y z]",
	Short: "Get or set device rotation in degrees",
	Args:  cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return fmt.Errorf("rotate requires <x> <y> <z> or no arguments")
		}

		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if len(args) == 0 {
			x, y, z, err := d.GetRotation()
			if err != nil {
				return err
			}
			printJson(map[string]int{"x": x, "y": y, "z": z})
			return nil
		}

		var axes [3]int
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid rotation %q", arg)
			}
			axes[i] = v
		}
		if err := d.Rotate(axes[0], axes[1], axes[2]); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

var deviceOrientationCmd = &cobra.Command{
	Use:   "orientation [portrait|landscape]",
	Short: "Get or set the screen orientation",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if len(args) == 1 {
			if err := d.SetOrientation(args[0]); err != nil {
				return err
			}
			printJson(map[string]string{"status": "ok"})
			return nil
		}

		orientation, err := d.GetOrientation()
		if err != nil {
			return err
		}
		printJson(map[string]string{"orientation": orientation})
		return nil
	},
}

var deviceGeolocationCmd = &cobra.Command{
	Use:   "geolocation [lat] [lon] [alt]",
	Short: "Get or set the device geolocation",
	Args:  cobra.RangeArgs(0, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if len(args) >= 2 {
			loc := driver.Location{}
			if loc.Latitude, err = strconv.ParseFloat(args[0], 64); err != nil {
				return fmt.Errorf("invalid latitude %q", args[0])
			}
			if loc.Longitude, err = strconv.ParseFloat(args[1], 64); err != nil {
				return fmt.Errorf("invalid longitude %q", args[1])
			}
			if len(args) == 3 {
				if loc.Altitude, err = strconv.ParseFloat(args[2], 64); err != nil {
					return fmt.Errorf("invalid altitude %q", args[2])
				}
			}
			if err := d.SetGeolocation(loc); err != nil {
				return err
			}
			printJson(map[string]string{"status": "ok"})
			return nil
		}
		if len(args) == 1 {
			return fmt.Errorf("setting geolocation requires at least <lat> <lon>")
		}

		loc, err := d.GetGeolocation()
		if err != nil {
			return err
		}
		printJson(loc)
		return nil
	},
}

var deviceSyslogCmd = &cobra.Command{
	Use:   "syslog",
	Short: "Stream device logs to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		stream, err := d.StreamSyslog()
		if err != nil {
			return err
		}
		defer func() { _ = stream.Close() }()

		for line := range stream.Lines() {
			fmt.Println(line)
		}
		return stream.Err()
	},
}

var deviceURLCmd = &cobra.Command{
	Use:   "url <url>",
	Short: "Open a URL or deep link on the device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.OpenURL(args[0]); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deviceCmd)
	deviceCmd.AddCommand(deviceLockCmd, deviceUnlockCmd, deviceLockedCmd, deviceKeyCmd,
		deviceRotateCmd, deviceOrientationCmd, deviceGeolocationCmd, deviceSyslogCmd, deviceURLCmd)

	deviceLockCmd.Flags().IntVar(&lockSeconds, "seconds", 0, "unlock again after this many seconds (0 = stay locked)")
}
