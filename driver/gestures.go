package driver

import (
	"github.com/mobile-next/mobiledriver/touch"
)

// defaultPinchOffset is the distance in screen units each finger
// travels during a pinch or zoom, before clamping to the window.
const defaultPinchOffset = 100

// TapPoint taps once at screen coordinates.
func (d *Driver) TapPoint(x, y int) error {
	_, err := touch.NewSequence().Tap(x, y, 1).Perform(d)
	return err
}

// TapElement taps an element with the given number of fingers, holding
// for durationMS. Each finger is an identical press/wait/release
// timeline; the whole gesture is one request.
func (d *Driver) TapElement(el touch.ElementRef, fingers, durationMS int) error {
	if fingers < 1 {
		fingers = 1
	}

	group := touch.NewMulti()
	for i := 0; i < fingers; i++ {
		group.Add(touch.NewSequence().
			PressElement(el).
			Wait(durationMS).
			Release())
	}

	_, err := group.Perform(d)
	return err
}

// LongPressPoint presses at screen coordinates for durationMS.
func (d *Driver) LongPressPoint(x, y, durationMS int) error {
	_, err := touch.NewSequence().LongPress(x, y, durationMS).Perform(d)
	return err
}

// Swipe drags from (x1,y1) to (x2,y2) over durationMS.
func (d *Driver) Swipe(x1, y1, x2, y2, durationMS int) error {
	_, err := touch.NewSequence().
		Press(x1, y1).
		Wait(durationMS).
		MoveTo(x2, y2).
		Release().
		Perform(d)
	return err
}

// PinchElement pinches inward on the center of an element.
func (d *Driver) PinchElement(el touch.ElementRef) error {
	rect, err := d.ElementRect(el)
	if err != nil {
		return err
	}
	cx, cy := rect.Center()
	return d.Pinch(cx, cy)
}

// Pinch pinches inward around (x,y): two fingers press above and below
// the point and move toward it.
func (d *Driver) Pinch(x, y int) error {
	offset, err := d.clampedOffset(y)
	if err != nil {
		return err
	}

	group := touch.NewMulti().
		Add(touch.NewSequence().
			Press(x, y-offset).
			MoveTo(x, y).
			Release()).
		Add(touch.NewSequence().
			Press(x, y+offset).
			MoveTo(x, y).
			Release())

	_, err = group.Perform(d)
	return err
}

// ZoomElement zooms outward from the center of an element.
func (d *Driver) ZoomElement(el touch.ElementRef) error {
	rect, err := d.ElementRect(el)
	if err != nil {
		return err
	}
	cx, cy := rect.Center()
	return d.Zoom(cx, cy)
}

// Zoom zooms outward from (x,y): two fingers press on the point and
// move apart, the reverse motion of Pinch.
func (d *Driver) Zoom(x, y int) error {
	offset, err := d.clampedOffset(y)
	if err != nil {
		return err
	}

	group := touch.NewMulti().
		Add(touch.NewSequence().
			Press(x, y).
			MoveTo(x, y-offset).
			Release()).
		Add(touch.NewSequence().
			Press(x, y).
			MoveTo(x, y+offset).
			Release())

	_, err = group.Perform(d)
	return err
}

// clampedOffset reduces the default finger travel so neither touch
// point leaves the visible window vertically.
func (d *Driver) clampedOffset(y int) (int, error) {
	_, height, err := d.WindowSize()
	if err != nil {
		return 0, err
	}

	offset := defaultPinchOffset
	if y-offset < 0 {
		offset = y
	}
	if y+offset > height {
		offset = height - y
	}
	return offset, nil
}
