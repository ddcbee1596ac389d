package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mobile-next/mobiledriver/driver"
)

var tapCmd = &cobra.Command{
	Use:   "tap <x> <y>",
	Short: "Tap at screen coordinates, or on an element with --selector",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if gestureSelector != "" {
			el, err := d.FindElement(driver.ByAccessibilityID, gestureSelector)
			if err != nil {
				return err
			}
			if err := d.TapElement(el, gestureFingers, tapDuration); err != nil {
				return err
			}
			printJson(map[string]string{"status": "ok"})
			return nil
		}

		if len(args) != 2 {
			return fmt.Errorf("tap requires <x> <y> or --selector")
		}
		x, y, err := parsePoint(args[0], args[1])
		if err != nil {
			return err
		}
		if err := d.TapPoint(x, y); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

var longPressCmd = &cobra.Command{
	Use:   "longpress <x> <y>",
	Short: "Long press at screen coordinates",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := parsePoint(args[0], args[1])
		if err != nil {
			return err
		}

		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.LongPressPoint(x, y, longPressDuration); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

var swipeCmd = &cobra.Command{
	Use:   "swipe <x1> <y1> <x2> <y2>",
	Short: "Swipe between two points",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		x1, y1, err := parsePoint(args[0], args[1])
		if err != nil {
			return err
		}
		x2, y2, err := parsePoint(args[2], args[3])
		if err != nil {
			return err
		}

		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if err := d.Swipe(x1, y1, x2, y2, swipeDuration); err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

var pinchCmd = &cobra.Command{
	Use:   "pinch <x> <y>",
	Short: "Pinch inward at a point, or on an element with --selector",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPinchZoom(args, false)
	},
}

var zoomCmd = &cobra.Command{
	Use:   "zoom <x> <y>",
	Short: "Zoom outward at a point, or on an element with --selector",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPinchZoom(args, true)
	},
}

func runPinchZoom(args []string, zoom bool) error {
	d, err := openDriver()
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()

	if gestureSelector != "" {
		el, err := d.FindElement(driver.ByAccessibilityID, gestureSelector)
		if err != nil {
			return err
		}
		if zoom {
			err = d.ZoomElement(el)
		} else {
			err = d.PinchElement(el)
		}
		if err != nil {
			return err
		}
		printJson(map[string]string{"status": "ok"})
		return nil
	}

	if len(args) != 2 {
		return fmt.Errorf("requires <x> <y> or --selector")
	}
	x, y, err := parsePoint(args[0], args[1])
	if err != nil {
		return err
	}
	if zoom {
		err = d.Zoom(x, y)
	} else {
		err = d.Pinch(x, y)
	}
	if err != nil {
		return err
	}
	printJson(map[string]string{"status": "ok"})
	return nil
}

func parsePoint(xs, ys string) (int, int, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x coordinate %q", xs)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y coordinate %q", ys)
	}
	if x < 0 || y < 0 {
		return 0, 0, fmt.Errorf("coordinates must be non-negative, got (%d,%d)", x, y)
	}
	return x, y, nil
}

func init() {
	rootCmd.AddCommand(tapCmd, longPressCmd, swipeCmd, pinchCmd, zoomCmd)

	tapCmd.Flags().StringVar(&gestureSelector, "selector", "", "accessibility id of the target element")
	tapCmd.Flags().IntVar(&gestureFingers, "fingers", 1, "number of fingers")
	tapCmd.Flags().IntVar(&tapDuration, "duration", 100, "press duration in milliseconds")

	longPressCmd.Flags().IntVar(&longPressDuration, "duration", 1000, "press duration in milliseconds")
	swipeCmd.Flags().IntVar(&swipeDuration, "duration", 500, "swipe duration in milliseconds")

	pinchCmd.Flags().StringVar(&gestureSelector, "selector", "", "accessibility id of the target element")
	zoomCmd.Flags().StringVar(&gestureSelector, "selector", "", "accessibility id of the target element")
}
