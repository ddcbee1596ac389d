package cli

var (
	verbose bool

	// all commands
	serverURL    string
	platformName string

	// for gesture commands
	tapDuration       int
	longPressDuration int
	swipeDuration     int
	gestureFingers    int
	gestureSelector   string

	// for device lock command
	lockSeconds int

	// for screenshot and file pull commands
	outputPath string
)
