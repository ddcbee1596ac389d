package wire

// Command describes a single named endpoint: an HTTP verb plus a URL
// template. Template segments starting with ":" are path parameters
// filled in from the command parameters at dispatch time.
type Command struct {
	Method string
	Path   string
}

// Commands maps symbolic command names to endpoints.
type Commands map[string]Command

// Base WebDriver command names.
const (
	CommandNewSession     = "newSession"
	CommandDeleteSession  = "deleteSession"
	CommandStatus         = "status"
	CommandFindElement    = "findElement"
	CommandFindElements   = "findElements"
	CommandElementRect    = "elementRect"
	CommandWindowRect     = "windowRect"
	CommandScreenshot     = "screenshot"
	CommandSource         = "source"
	CommandGetOrientation = "getOrientation"
	CommandSetOrientation = "setOrientation"
	CommandGetGeolocation = "getGeolocation"
	CommandSetGeolocation = "setGeolocation"
	CommandOpenURL        = "openUrl"
	CommandSetTimeouts    = "setTimeouts"
)

// Mobile command names added by RegisterMobileCommands.
const (
	CommandTouchPerform      = "touchPerform"
	CommandMultiTouchPerform = "multiTouchPerform"

	CommandInstallApp     = "installApp"
	CommandRemoveApp      = "removeApp"
	CommandIsAppInstalled = "isAppInstalled"
	CommandActivateApp    = "activateApp"
	CommandTerminateApp   = "terminateApp"

	CommandPushFile   = "pushFile"
	CommandPullFile   = "pullFile"
	CommandPullFolder = "pullFolder"

	CommandLock              = "lock"
	CommandUnlock            = "unlock"
	CommandIsLocked          = "isLocked"
	CommandShake             = "shake"
	CommandPressKeyCode      = "pressKeyCode"
	CommandLongPressKeyCode  = "longPressKeyCode"
	CommandGetRotation       = "getRotation"
	CommandSetRotation       = "setRotation"
	CommandOpenNotifications = "openNotifications"
	CommandStartActivity     = "startActivity"
	CommandCurrentActivity   = "currentActivity"
	CommandGetClipboard      = "getClipboard"
	CommandSetClipboard      = "setClipboard"

	CommandGetContexts       = "getContexts"
	CommandGetCurrentContext = "getCurrentContext"
	CommandSwitchContext     = "switchContext"

	CommandActiveIMEEngine     = "activeIMEEngine"
	CommandAvailableIMEEngines = "availableIMEEngines"
	CommandIsIMEActivated      = "isIMEActivated"
	CommandActivateIMEEngine   = "activateIMEEngine"
	CommandDeactivateIMEEngine = "deactivateIMEEngine"

	CommandGetSettings    = "getSettings"
	CommandUpdateSettings = "updateSettings"
	CommandHideKeyboard   = "hideKeyboard"
)

// BaseCommands returns the standard WebDriver command table that every
// remote-control client already speaks.
func BaseCommands() Commands {
	return Commands{
		CommandNewSession:     {"POST", "/session"},
		CommandDeleteSession:  {"DELETE", "/session/:sessionId"},
		CommandStatus:         {"GET", "/status"},
		CommandFindElement:    {"POST", "/session/:sessionId/element"},
		CommandFindElements:   {"POST", "/session/:sessionId/elements"},
		CommandElementRect:    {"GET", "/session/:sessionId/element/:elementId/rect"},
		CommandWindowRect:     {"GET", "/session/:sessionId/window/rect"},
		CommandScreenshot:     {"GET", "/session/:sessionId/screenshot"},
		CommandSource:         {"GET", "/session/:sessionId/source"},
		CommandGetOrientation: {"GET", "/session/:sessionId/orientation"},
		CommandSetOrientation: {"POST", "/session/:sessionId/orientation"},
		CommandGetGeolocation: {"GET", "/session/:sessionId/location"},
		CommandSetGeolocation: {"POST", "/session/:sessionId/location"},
		CommandOpenURL:        {"POST", "/session/:sessionId/url"},
		CommandSetTimeouts:    {"POST", "/session/:sessionId/timeouts"},
	}
}

// RegisterMobileCommands returns a copy of the given command table
// extended with the mobile automation endpoints. The input table is not
// modified; callers pass the result to NewClient.
func RegisterMobileCommands(base Commands) Commands {
	commands := make(Commands, len(base)+40)
	for name, cmd := range base {
		commands[name] = cmd
	}

	mobile := Commands{
		CommandTouchPerform:      {"POST", "/session/:sessionId/touch/perform"},
		CommandMultiTouchPerform: {"POST", "/session/:sessionId/touch/multi/perform"},

		CommandInstallApp:     {"POST", "/session/:sessionId/appium/device/install_app"},
		CommandRemoveApp:      {"POST", "/session/:sessionId/appium/device/remove_app"},
		CommandIsAppInstalled: {"POST", "/session/:sessionId/appium/device/app_installed"},
		CommandActivateApp:    {"POST", "/session/:sessionId/appium/device/activate_app"},
		CommandTerminateApp:   {"POST", "/session/:sessionId/appium/device/terminate_app"},

		CommandPushFile:   {"POST", "/session/:sessionId/appium/device/push_file"},
		CommandPullFile:   {"POST", "/session/:sessionId/appium/device/pull_file"},
		CommandPullFolder: {"POST", "/session/:sessionId/appium/device/pull_folder"},

		CommandLock:              {"POST", "/session/:sessionId/appium/device/lock"},
		CommandUnlock:            {"POST", "/session/:sessionId/appium/device/unlock"},
		CommandIsLocked:          {"POST", "/session/:sessionId/appium/device/is_locked"},
		CommandShake:             {"POST", "/session/:sessionId/appium/device/shake"},
		CommandPressKeyCode:      {"POST", "/session/:sessionId/appium/device/press_keycode"},
		CommandLongPressKeyCode:  {"POST", "/session/:sessionId/appium/device/long_press_keycode"},
		CommandGetRotation:       {"GET", "/session/:sessionId/rotation"},
		CommandSetRotation:       {"POST", "/session/:sessionId/rotation"},
		CommandOpenNotifications: {"POST", "/session/:sessionId/appium/device/open_notifications"},
		CommandStartActivity:     {"POST", "/session/:sessionId/appium/device/start_activity"},
		CommandCurrentActivity:   {"GET", "/session/:sessionId/appium/device/current_activity"},
		CommandGetClipboard:      {"POST", "/session/:sessionId/appium/device/get_clipboard"},
		CommandSetClipboard:      {"POST", "/session/:sessionId/appium/device/set_clipboard"},

		CommandGetContexts:       {"GET", "/session/:sessionId/contexts"},
		CommandGetCurrentContext: {"GET", "/session/:sessionId/context"},
		CommandSwitchContext:     {"POST", "/session/:sessionId/context"},

		CommandActiveIMEEngine:     {"GET", "/session/:sessionId/ime/active_engine"},
		CommandAvailableIMEEngines: {"GET", "/session/:sessionId/ime/available_engines"},
		CommandIsIMEActivated:      {"GET", "/session/:sessionId/ime/activated"},
		CommandActivateIMEEngine:   {"POST", "/session/:sessionId/ime/activate"},
		CommandDeactivateIMEEngine: {"POST", "/session/:sessionId/ime/deactivate"},

		CommandGetSettings:    {"GET", "/session/:sessionId/appium/settings"},
		CommandUpdateSettings: {"POST", "/session/:sessionId/appium/settings"},
		CommandHideKeyboard:   {"POST", "/session/:sessionId/appium/device/hide_keyboard"},
	}

	for name, cmd := range mobile {
		commands[name] = cmd
	}

	return commands
}
