package driver

import (
	"github.com/mobile-next/mobiledriver/wire"
)

// ActiveIMEEngine returns the identifier of the active input method.
func (d *Driver) ActiveIMEEngine() (string, error) {
	value, err := d.ExecuteCommand(wire.CommandActiveIMEEngine, nil)
	if err != nil {
		return "", err
	}
	engine, _ := value.(string)
	return engine, nil
}

// AvailableIMEEngines lists the input methods installed on the device.
func (d *Driver) AvailableIMEEngines() ([]string, error) {
	value, err := d.ExecuteCommand(wire.CommandAvailableIMEEngines, nil)
	if err != nil {
		return nil, err
	}
	values, ok := value.([]interface{})
	if !ok {
		return nil, nil
	}
	var engines []string
	for _, v := range values {
		if engine, ok := v.(string); ok {
			engines = append(engines, engine)
		}
	}
	return engines, nil
}

// IsIMEActivated reports whether an input method is active.
func (d *Driver) IsIMEActivated() (bool, error) {
	value, err := d.ExecuteCommand(wire.CommandIsIMEActivated, nil)
	if err != nil {
		return false, err
	}
	active, _ := value.(bool)
	return active, nil
}

// ActivateIMEEngine makes the given input method active.
func (d *Driver) ActivateIMEEngine(engine string) error {
	_, err := d.ExecuteCommand(wire.CommandActivateIMEEngine, map[string]interface{}{
		"engine": engine,
	})
	return err
}

// DeactivateIMEEngine deactivates the current input method.
func (d *Driver) DeactivateIMEEngine() error {
	_, err := d.ExecuteCommand(wire.CommandDeactivateIMEEngine, nil)
	return err
}
