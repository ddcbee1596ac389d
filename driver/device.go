package driver

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mobile-next/mobiledriver/wire"
)

// Location is a device geolocation fix.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

// Lock locks the device screen. A seconds value above zero unlocks it
// again after that long; zero locks indefinitely.
func (d *Driver) Lock(seconds int) error {
	params := map[string]interface{}{}
	if seconds > 0 {
		params["seconds"] = seconds
	}
	_, err := d.ExecuteCommand(wire.CommandLock, params)
	return err
}

// Unlock unlocks the device screen.
func (d *Driver) Unlock() error {
	_, err := d.ExecuteCommand(wire.CommandUnlock, nil)
	return err
}

// IsLocked reports whether the screen is locked.
func (d *Driver) IsLocked() (bool, error) {
	value, err := d.ExecuteCommand(wire.CommandIsLocked, nil)
	if err != nil {
		return false, err
	}
	locked, _ := value.(bool)
	return locked, nil
}

// Shake shakes the device (simulators only).
func (d *Driver) Shake() error {
	_, err := d.ExecuteCommand(wire.CommandShake, nil)
	return err
}

// PressKeyCode sends an Android key event.
func (d *Driver) PressKeyCode(keycode int) error {
	_, err := d.ExecuteCommand(wire.CommandPressKeyCode, map[string]interface{}{
		"keycode": keycode,
	})
	return err
}

// LongPressKeyCode sends a long-pressed Android key event.
func (d *Driver) LongPressKeyCode(keycode int) error {
	_, err := d.ExecuteCommand(wire.CommandLongPressKeyCode, map[string]interface{}{
		"keycode": keycode,
	})
	return err
}

// OpenNotifications opens the Android notification shade.
func (d *Driver) OpenNotifications() error {
	_, err := d.ExecuteCommand(wire.CommandOpenNotifications, nil)
	return err
}

// GetOrientation returns the screen orientation, lowercase
// ("portrait" or "landscape").
func (d *Driver) GetOrientation() (string, error) {
	value, err := d.ExecuteCommand(wire.CommandGetOrientation, nil)
	if err != nil {
		return "", err
	}
	orientation, _ := value.(string)
	return strings.ToLower(orientation), nil
}

// SetOrientation sets the screen orientation.
func (d *Driver) SetOrientation(orientation string) error {
	_, err := d.ExecuteCommand(wire.CommandSetOrientation, map[string]interface{}{
		"orientation": strings.ToUpper(orientation),
	})
	return err
}

// GetRotation returns the device rotation in degrees around each axis.
func (d *Driver) GetRotation() (int, int, int, error) {
	value, err := d.ExecuteCommand(wire.CommandGetRotation, nil)
	if err != nil {
		return 0, 0, 0, err
	}
	m, ok := value.(map[string]interface{})
	if !ok {
		return 0, 0, 0, fmt.Errorf("invalid rotation response")
	}
	x, _ := m["x"].(float64)
	y, _ := m["y"].(float64)
	z, _ := m["z"].(float64)
	return int(x), int(y), int(z), nil
}

// Rotate sets the device rotation in degrees around each axis.
func (d *Driver) Rotate(x, y, z int) error {
	_, err := d.ExecuteCommand(wire.CommandSetRotation, map[string]interface{}{
		"x": x,
		"y": y,
		"z": z,
	})
	return err
}

// GetGeolocation returns the device's current geolocation.
func (d *Driver) GetGeolocation() (Location, error) {
	value, err := d.ExecuteCommand(wire.CommandGetGeolocation, nil)
	if err != nil {
		return Location{}, err
	}
	m, ok := value.(map[string]interface{})
	if !ok {
		return Location{}, fmt.Errorf("invalid location response")
	}
	loc := Location{}
	loc.Latitude, _ = m["latitude"].(float64)
	loc.Longitude, _ = m["longitude"].(float64)
	loc.Altitude, _ = m["altitude"].(float64)
	return loc, nil
}

// SetGeolocation sets the device's geolocation.
func (d *Driver) SetGeolocation(loc Location) error {
	_, err := d.ExecuteCommand(wire.CommandSetGeolocation, map[string]interface{}{
		"location": map[string]interface{}{
			"latitude":  loc.Latitude,
			"longitude": loc.Longitude,
			"altitude":  loc.Altitude,
		},
	})
	return err
}

// Contexts lists the available automation contexts (native, webviews).
func (d *Driver) Contexts() ([]string, error) {
	value, err := d.ExecuteCommand(wire.CommandGetContexts, nil)
	if err != nil {
		return nil, err
	}
	values, ok := value.([]interface{})
	if !ok {
		return nil, nil
	}
	var contexts []string
	for _, v := range values {
		if name, ok := v.(string); ok {
			contexts = append(contexts, name)
		}
	}
	return contexts, nil
}

// CurrentContext returns the active automation context.
func (d *Driver) CurrentContext() (string, error) {
	value, err := d.ExecuteCommand(wire.CommandGetCurrentContext, nil)
	if err != nil {
		return "", err
	}
	name, _ := value.(string)
	return name, nil
}

// SwitchContext switches to a named automation context.
func (d *Driver) SwitchContext(name string) error {
	_, err := d.ExecuteCommand(wire.CommandSwitchContext, map[string]interface{}{
		"name": name,
	})
	return err
}

// GetSettings returns the server's current session settings.
func (d *Driver) GetSettings() (map[string]interface{}, error) {
	value, err := d.ExecuteCommand(wire.CommandGetSettings, nil)
	if err != nil {
		return nil, err
	}
	settings, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid settings response")
	}
	return settings, nil
}

// UpdateSettings merges the given settings into the session settings.
func (d *Driver) UpdateSettings(settings map[string]interface{}) error {
	_, err := d.ExecuteCommand(wire.CommandUpdateSettings, map[string]interface{}{
		"settings": settings,
	})
	return err
}

// HideKeyboard hides the on-screen keyboard.
func (d *Driver) HideKeyboard() error {
	_, err := d.ExecuteCommand(wire.CommandHideKeyboard, nil)
	return err
}

// OpenURL opens a URL or deep link on the device.
func (d *Driver) OpenURL(url string) error {
	_, err := d.ExecuteCommand(wire.CommandOpenURL, map[string]interface{}{
		"url": url,
	})
	return err
}

// Screenshot returns a PNG screenshot.
func (d *Driver) Screenshot() ([]byte, error) {
	value, err := d.ExecuteCommand(wire.CommandScreenshot, nil)
	if err != nil {
		return nil, err
	}
	encoded, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("invalid screenshot response")
	}
	return base64.StdEncoding.DecodeString(encoded)
}

// Source returns the UI hierarchy as XML.
func (d *Driver) Source() (string, error) {
	value, err := d.ExecuteCommand(wire.CommandSource, nil)
	if err != nil {
		return "", err
	}
	source, _ := value.(string)
	return source, nil
}

// GetClipboard returns the device clipboard as plain text.
func (d *Driver) GetClipboard() (string, error) {
	value, err := d.ExecuteCommand(wire.CommandGetClipboard, map[string]interface{}{
		"contentType": "plaintext",
	})
	if err != nil {
		return "", err
	}
	encoded, _ := value.(string)
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("invalid clipboard payload: %w", err)
	}
	return string(decoded), nil
}

// SetClipboard sets the device clipboard to plain text.
func (d *Driver) SetClipboard(text string) error {
	_, err := d.ExecuteCommand(wire.CommandSetClipboard, map[string]interface{}{
		"content":     base64.StdEncoding.EncodeToString([]byte(text)),
		"contentType": "plaintext",
	})
	return err
}
