package driver

import (
	"fmt"

	"github.com/mobile-next/mobiledriver/touch"
	"github.com/mobile-next/mobiledriver/wire"
)

// W3C WebDriver element identifier key (standard constant)
const w3cElementKey = "element-6066-11e4-a52e-4f735466cecf"

// Locator strategies accepted by the server.
const (
	ByAccessibilityID = "accessibility id"
	ByClassName       = "class name"
	ByID              = "id"
	ByXPath           = "xpath"
)

// FindElement resolves a UI element on the server and returns an opaque
// reference usable as a gesture target.
func (d *Driver) FindElement(strategy, selector string) (touch.ElementRef, error) {
	value, err := d.ExecuteCommand(wire.CommandFindElement, map[string]interface{}{
		"using": strategy,
		"value": selector,
	})
	if err != nil {
		return touch.ElementRef{}, err
	}

	elem, ok := value.(map[string]interface{})
	if !ok {
		return touch.ElementRef{}, fmt.Errorf("element not found: %s=%s", strategy, selector)
	}

	id := extractElementID(elem)
	if id == "" {
		return touch.ElementRef{}, fmt.Errorf("element not found: %s=%s", strategy, selector)
	}
	return touch.ElementRef{ID: id}, nil
}

// FindElements resolves all matching elements.
func (d *Driver) FindElements(strategy, selector string) ([]touch.ElementRef, error) {
	value, err := d.ExecuteCommand(wire.CommandFindElements, map[string]interface{}{
		"using": strategy,
		"value": selector,
	})
	if err != nil {
		return nil, err
	}

	values, ok := value.([]interface{})
	if !ok {
		return nil, nil
	}

	var refs []touch.ElementRef
	for _, v := range values {
		if elem, ok := v.(map[string]interface{}); ok {
			if id := extractElementID(elem); id != "" {
				refs = append(refs, touch.ElementRef{ID: id})
			}
		}
	}
	return refs, nil
}

// ElementRect returns the element's bounding box. Rects are cached per
// element ID so repeated gestures against the same element skip the
// round trip; the cache is dropped when the session closes.
func (d *Driver) ElementRect(el touch.ElementRef) (Rect, error) {
	if rect, ok := d.rects.Get(el.ID); ok {
		return rect, nil
	}

	value, err := d.ExecuteCommand(wire.CommandElementRect, map[string]interface{}{
		"elementId": el.ID,
	})
	if err != nil {
		return Rect{}, err
	}

	m, ok := value.(map[string]interface{})
	if !ok {
		return Rect{}, fmt.Errorf("invalid rect response")
	}

	x, _ := m["x"].(float64)
	y, _ := m["y"].(float64)
	w, _ := m["width"].(float64)
	h, _ := m["height"].(float64)

	rect := Rect{X: int(x), Y: int(y), Width: int(w), Height: int(h)}
	d.rects.Add(el.ID, rect)
	return rect, nil
}

func extractElementID(value map[string]interface{}) string {
	// W3C format
	if id, ok := value[w3cElementKey].(string); ok {
		return id
	}
	// Legacy format
	if id, ok := value["ELEMENT"].(string); ok {
		return id
	}
	return ""
}
