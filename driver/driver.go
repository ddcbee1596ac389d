// Package driver is a mobile-automation client on top of the wire
// dispatch layer: it opens a server session, registers the mobile
// command set, and exposes typed operations that serialize their
// arguments into single requests. All real work (element location,
// gesture execution) happens server-side.
package driver

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/mobile-next/mobiledriver/wire"
)

const elementRectCacheSize = 128

// Capabilities are the session capabilities sent when opening a driver.
type Capabilities map[string]interface{}

// Rect is an element or window bounding box in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Center returns the midpoint of the rect.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Driver holds one automation session. It is synchronous: every
// operation blocks until the server responds or the transport fails.
// A Driver is not safe for concurrent use.
type Driver struct {
	client    *wire.Client
	sessionID string
	platform  string
	windowW   int
	windowH   int
	rects     *lru.Cache[string, Rect]
	log       *logrus.Entry
}

// Open creates a session on the given server with the mobile command
// set registered on top of the base table.
func Open(serverURL string, caps Capabilities) (*Driver, error) {
	commands := wire.RegisterMobileCommands(wire.BaseCommands())
	return OpenWithClient(wire.NewClient(serverURL, commands), caps)
}

// OpenWithClient creates a session using an existing wire client. The
// client's command table must include the mobile commands.
func OpenWithClient(client *wire.Client, caps Capabilities) (*Driver, error) {
	value, err := client.Execute(wire.CommandNewSession, map[string]interface{}{
		"capabilities": map[string]interface{}{
			"alwaysMatch": map[string]interface{}(caps),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	session, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid session response")
	}
	sessionID, _ := session["sessionId"].(string)
	if sessionID == "" {
		return nil, fmt.Errorf("no session ID in response")
	}

	rects, err := lru.New[string, Rect](elementRectCacheSize)
	if err != nil {
		return nil, err
	}

	d := &Driver{
		client:    client,
		sessionID: sessionID,
		rects:     rects,
		log:       logrus.WithField("component", "driver"),
	}

	if sessionCaps, ok := session["capabilities"].(map[string]interface{}); ok {
		if platform, ok := sessionCaps["platformName"].(string); ok {
			d.platform = strings.ToLower(platform)
		}
	}
	if d.platform == "" {
		if platform, ok := caps["platformName"].(string); ok {
			d.platform = strings.ToLower(platform)
		}
	}

	// best effort; gesture helpers that need the window re-fetch on demand
	_, _, _ = d.WindowSize()

	d.log.WithFields(logrus.Fields{"session": sessionID, "platform": d.platform}).Debug("session created")
	return d, nil
}

// SessionID returns the server-assigned session identifier.
func (d *Driver) SessionID() string {
	return d.sessionID
}

// Platform returns the lowercase platform name ("ios", "android"), or
// empty if the server did not report one.
func (d *Driver) Platform() string {
	return d.platform
}

// Close deletes the session. Closing an already-closed driver is a
// no-op.
func (d *Driver) Close() error {
	if d.sessionID == "" {
		return nil
	}
	_, err := d.client.Execute(wire.CommandDeleteSession, map[string]interface{}{
		"sessionId": d.sessionID,
	})
	d.sessionID = ""
	d.rects.Purge()
	return err
}

// ExecuteCommand dispatches a named command with the session path
// parameter filled in. It satisfies touch.Performer, so gesture
// builders can be performed directly against a driver.
func (d *Driver) ExecuteCommand(name string, params map[string]interface{}) (interface{}, error) {
	merged := make(map[string]interface{}, len(params)+1)
	merged["sessionId"] = d.sessionID
	for k, v := range params {
		merged[k] = v
	}
	return d.client.Execute(name, merged)
}

// SetTimeouts sets the session's implicit element-lookup timeout in
// milliseconds.
func (d *Driver) SetTimeouts(implicitMS int) error {
	_, err := d.ExecuteCommand(wire.CommandSetTimeouts, map[string]interface{}{
		"implicit": implicitMS,
	})
	return err
}

// WindowSize returns the window dimensions, cached after the first
// successful fetch.
func (d *Driver) WindowSize() (int, int, error) {
	if d.windowW > 0 && d.windowH > 0 {
		return d.windowW, d.windowH, nil
	}

	value, err := d.ExecuteCommand(wire.CommandWindowRect, nil)
	if err != nil {
		return 0, 0, err
	}
	rect, ok := value.(map[string]interface{})
	if !ok {
		return 0, 0, fmt.Errorf("invalid window rect response")
	}

	w, _ := rect["width"].(float64)
	h, _ := rect["height"].(float64)
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid window size %vx%v", w, h)
	}

	d.windowW = int(w)
	d.windowH = int(h)
	return d.windowW, d.windowH, nil
}
