package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mobile-next/mobiledriver/driver"
	"github.com/mobile-next/mobiledriver/touch"
)

// gestureScript is the YAML shape accepted by "gesture run". Either a
// single pointer ("steps") or several concurrent pointers ("pointers").
type gestureScript struct {
	Steps    []gestureStep    `yaml:"steps"`
	Pointers []gesturePointer `yaml:"pointers"`
}

type gesturePointer struct {
	Steps []gestureStep `yaml:"steps"`
}

type gestureStep struct {
	Action   string `yaml:"action"`
	X        *int   `yaml:"x"`
	Y        *int   `yaml:"y"`
	Element  string `yaml:"element"` // accessibility id, resolved before building
	MS       int    `yaml:"ms"`
	Duration int    `yaml:"duration"`
	Count    int    `yaml:"count"`
}

var gestureCmd = &cobra.Command{
	Use:   "gesture",
	Short: "Scripted gesture commands",
}

var gestureRunCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Run a gesture script",
	Long:  `Builds the touch sequences described by a YAML script and performs them as one request.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var script gestureScript
		if err := yaml.Unmarshal(data, &script); err != nil {
			return fmt.Errorf("invalid gesture script: %w", err)
		}
		if len(script.Steps) > 0 && len(script.Pointers) > 0 {
			return fmt.Errorf("gesture script must use either steps or pointers, not both")
		}

		d, err := openDriver()
		if err != nil {
			return err
		}
		defer func() { _ = d.Close() }()

		if len(script.Pointers) > 0 {
			group := touch.NewMulti()
			for i, pointer := range script.Pointers {
				seq, err := buildSequence(d, pointer.Steps)
				if err != nil {
					return fmt.Errorf("pointer %d: %w", i, err)
				}
				group.Add(seq)
			}
			if _, err := group.Perform(d); err != nil {
				return err
			}
		} else {
			seq, err := buildSequence(d, script.Steps)
			if err != nil {
				return err
			}
			if _, err := seq.Perform(d); err != nil {
				return err
			}
		}

		printJson(map[string]string{"status": "ok"})
		return nil
	},
}

// buildSequence translates script steps into a touch sequence,
// resolving element selectors through the server first.
func buildSequence(d *driver.Driver, steps []gestureStep) (*touch.Sequence, error) {
	seq := touch.NewSequence()

	for i, step := range steps {
		var el touch.ElementRef
		if step.Element != "" {
			found, err := d.FindElement(driver.ByAccessibilityID, step.Element)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			el = found
		}
		hasPoint := step.X != nil && step.Y != nil

		switch step.Action {
		case "press":
			switch {
			case step.Element != "" && hasPoint:
				seq.PressElementOffset(el, *step.X, *step.Y)
			case step.Element != "":
				seq.PressElement(el)
			case hasPoint:
				seq.Press(*step.X, *step.Y)
			default:
				return nil, fmt.Errorf("step %d: press needs x/y or element", i)
			}
		case "wait":
			seq.Wait(step.MS)
		case "moveTo":
			switch {
			case step.Element != "" && hasPoint:
				seq.MoveToElementOffset(el, *step.X, *step.Y)
			case step.Element != "":
				seq.MoveToElement(el)
			case hasPoint:
				seq.MoveTo(*step.X, *step.Y)
			default:
				return nil, fmt.Errorf("step %d: moveTo needs x/y or element", i)
			}
		case "release":
			seq.Release()
		case "tap":
			switch {
			case step.Element != "":
				seq.TapElement(el, step.Count)
			case hasPoint:
				seq.Tap(*step.X, *step.Y, step.Count)
			default:
				return nil, fmt.Errorf("step %d: tap needs x/y or element", i)
			}
		case "longPress":
			switch {
			case step.Element != "":
				seq.LongPressElement(el, step.Duration)
			case hasPoint:
				seq.LongPress(*step.X, *step.Y, step.Duration)
			default:
				return nil, fmt.Errorf("step %d: longPress needs x/y or element", i)
			}
		default:
			return nil, fmt.Errorf("step %d: unknown action %q", i, step.Action)
		}
	}

	return seq, nil
}

func init() {
	rootCmd.AddCommand(gestureCmd)
	gestureCmd.AddCommand(gestureRunCmd)
}
