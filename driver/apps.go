package driver

import (
	"encoding/base64"
	"fmt"

	"github.com/mobile-next/mobiledriver/wire"
)

// appIDParams builds the app identifier body the server expects for
// the session's platform.
func (d *Driver) appIDParams(appID string) map[string]interface{} {
	if d.platform == "ios" {
		return map[string]interface{}{"bundleId": appID}
	}
	return map[string]interface{}{"appId": appID}
}

// InstallApp installs the app package at the given server-side path or
// URL.
func (d *Driver) InstallApp(appPath string) error {
	_, err := d.ExecuteCommand(wire.CommandInstallApp, map[string]interface{}{
		"appPath": appPath,
	})
	return err
}

// RemoveApp uninstalls an app.
func (d *Driver) RemoveApp(appID string) error {
	_, err := d.ExecuteCommand(wire.CommandRemoveApp, d.appIDParams(appID))
	return err
}

// IsAppInstalled reports whether the app is installed on the device.
func (d *Driver) IsAppInstalled(appID string) (bool, error) {
	value, err := d.ExecuteCommand(wire.CommandIsAppInstalled, map[string]interface{}{
		"bundleId": appID,
	})
	if err != nil {
		return false, err
	}
	installed, _ := value.(bool)
	return installed, nil
}

// LaunchApp activates an app, starting it if needed.
func (d *Driver) LaunchApp(appID string) error {
	_, err := d.ExecuteCommand(wire.CommandActivateApp, d.appIDParams(appID))
	return err
}

// TerminateApp stops a running app.
func (d *Driver) TerminateApp(appID string) error {
	_, err := d.ExecuteCommand(wire.CommandTerminateApp, d.appIDParams(appID))
	return err
}

// StartActivity starts an Android activity.
func (d *Driver) StartActivity(appPackage, appActivity string) error {
	_, err := d.ExecuteCommand(wire.CommandStartActivity, map[string]interface{}{
		"appPackage":  appPackage,
		"appActivity": appActivity,
	})
	return err
}

// CurrentActivity returns the foreground Android activity name.
func (d *Driver) CurrentActivity() (string, error) {
	value, err := d.ExecuteCommand(wire.CommandCurrentActivity, nil)
	if err != nil {
		return "", err
	}
	activity, _ := value.(string)
	return activity, nil
}

// PushFile writes data to a path on the device.
func (d *Driver) PushFile(devicePath string, data []byte) error {
	_, err := d.ExecuteCommand(wire.CommandPushFile, map[string]interface{}{
		"path": devicePath,
		"data": base64.StdEncoding.EncodeToString(data),
	})
	return err
}

// PullFile reads a file from the device.
func (d *Driver) PullFile(devicePath string) ([]byte, error) {
	value, err := d.ExecuteCommand(wire.CommandPullFile, map[string]interface{}{
		"path": devicePath,
	})
	if err != nil {
		return nil, err
	}
	encoded, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("invalid pull_file response")
	}
	return base64.StdEncoding.DecodeString(encoded)
}

// PullFolder reads a device folder as a zip archive.
func (d *Driver) PullFolder(devicePath string) ([]byte, error) {
	value, err := d.ExecuteCommand(wire.CommandPullFolder, map[string]interface{}{
		"path": devicePath,
	})
	if err != nil {
		return nil, err
	}
	encoded, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("invalid pull_folder response")
	}
	return base64.StdEncoding.DecodeString(encoded)
}
