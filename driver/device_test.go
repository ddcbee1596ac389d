package driver

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrientationLowercases(t *testing.T) {
	server := newFakeServer(t)
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Method == "GET" && r.Path == "/session/"+testSessionID+"/orientation" {
			return "PORTRAIT", true
		}
		return nil, false
	}
	d := server.openDriver(t)

	orientation, err := d.GetOrientation()
	require.NoError(t, err)
	assert.Equal(t, "portrait", orientation)
}

func TestSetOrientationUppercases(t *testing.T) {
	server := newFakeServer(t)
	d := server.openDriver(t)

	require.NoError(t, d.SetOrientation("landscape"))

	posts := server.byPath("/orientation")
	require.Len(t, posts, 1)
	assert.Equal(t, "LANDSCAPE", posts[0].Body["orientation"])
}

func TestRotationRoundTrip(t *testing.T) {
	server := newFakeServer(t)
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Method == "GET" && r.Path == "/session/"+testSessionID+"/rotation" {
			return map[string]interface{}{"x": 0, "y": 0, "z": 90}, true
		}
		return nil, false
	}
	d := server.openDriver(t)

	x, y, z, err := d.GetRotation()
	require.NoError(t, err)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, 90, z)

	require.NoError(t, d.Rotate(0, 0, 180))

	var set capturedRequest
	for _, r := range server.byPath("/rotation") {
		if r.Method == "POST" {
			set = r
		}
	}
	assert.Equal(t, float64(180), set.Body["z"])
}

func TestGeolocationRoundTrip(t *testing.T) {
	server := newFakeServer(t)
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Method == "GET" && r.Path == "/session/"+testSessionID+"/location" {
			return map[string]interface{}{"latitude": 51.5, "longitude": -0.12, "altitude": 11.0}, true
		}
		return nil, false
	}
	d := server.openDriver(t)

	loc, err := d.GetGeolocation()
	require.NoError(t, err)
	assert.Equal(t, Location{Latitude: 51.5, Longitude: -0.12, Altitude: 11.0}, loc)

	require.NoError(t, d.SetGeolocation(loc))

	var set capturedRequest
	for _, r := range server.byPath("/location") {
		if r.Method == "POST" {
			set = r
		}
	}
	payload, ok := set.Body["location"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 51.5, payload["latitude"])
	assert.Equal(t, -0.12, payload["longitude"])
}

func TestClipboardIsBase64(t *testing.T) {
	server := newFakeServer(t)
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Path == "/session/"+testSessionID+"/appium/device/get_clipboard" {
			return base64.StdEncoding.EncodeToString([]byte("hello")), true
		}
		return nil, false
	}
	d := server.openDriver(t)

	text, err := d.GetClipboard()
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	require.NoError(t, d.SetClipboard("world"))
	sets := server.byPath("/set_clipboard")
	require.Len(t, sets, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("world")), sets[0].Body["content"])
	assert.Equal(t, "plaintext", sets[0].Body["contentType"])
}

func TestPressKeyCodePayload(t *testing.T) {
	server := newFakeServer(t)
	d := server.openDriver(t)

	require.NoError(t, d.PressKeyCode(4))

	presses := server.byPath("/press_keycode")
	require.Len(t, presses, 1)
	assert.Equal(t, float64(4), presses[0].Body["keycode"])
}

func TestLockWithoutTimeoutOmitsSeconds(t *testing.T) {
	server := newFakeServer(t)
	d := server.openDriver(t)

	require.NoError(t, d.Lock(0))
	require.NoError(t, d.Lock(5))

	locks := server.byPath("/appium/device/lock")
	require.Len(t, locks, 2)
	assert.NotContains(t, locks[0].Body, "seconds")
	assert.Equal(t, float64(5), locks[1].Body["seconds"])
}

func TestContextsParsesList(t *testing.T) {
	server := newFakeServer(t)
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Path == "/session/"+testSessionID+"/contexts" {
			return []interface{}{"NATIVE_APP", "WEBVIEW_com.example"}, true
		}
		return nil, false
	}
	d := server.openDriver(t)

	contexts, err := d.Contexts()
	require.NoError(t, err)
	assert.Equal(t, []string{"NATIVE_APP", "WEBVIEW_com.example"}, contexts)
}

func TestUpdateSettingsWrapsPayload(t *testing.T) {
	server := newFakeServer(t)
	d := server.openDriver(t)

	require.NoError(t, d.UpdateSettings(map[string]interface{}{"waitForIdleTimeout": 0}))

	posts := server.byPath("/appium/settings")
	require.Len(t, posts, 1)
	settings, ok := posts[0].Body["settings"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), settings["waitForIdleTimeout"])
}

func TestScreenshotDecodesBase64(t *testing.T) {
	server := newFakeServer(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Path == "/session/"+testSessionID+"/screenshot" {
			return base64.StdEncoding.EncodeToString(png), true
		}
		return nil, false
	}
	d := server.openDriver(t)

	data, err := d.Screenshot()
	require.NoError(t, err)
	assert.Equal(t, png, data)
}
