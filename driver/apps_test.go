package driver

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchAppUsesPlatformParam(t *testing.T) {
	tests := []struct {
		platform string
		wantKey  string
	}{
		{"Android", "appId"},
		{"iOS", "bundleId"},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			server := newFakeServer(t)
			server.platform = tt.platform
			d := server.openDriver(t)

			require.NoError(t, d.LaunchApp("com.example.app"))

			launches := server.byPath("/activate_app")
			require.Len(t, launches, 1)
			assert.Equal(t, "com.example.app", launches[0].Body[tt.wantKey])
		})
	}
}

func TestIsAppInstalled(t *testing.T) {
	server := newFakeServer(t)
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Path == "/session/"+testSessionID+"/appium/device/app_installed" {
			return true, true
		}
		return nil, false
	}
	d := server.openDriver(t)

	installed, err := d.IsAppInstalled("com.example.app")
	require.NoError(t, err)
	assert.True(t, installed)

	checks := server.byPath("/app_installed")
	require.Len(t, checks, 1)
	assert.Equal(t, "com.example.app", checks[0].Body["bundleId"])
}

func TestPushFileEncodesData(t *testing.T) {
	server := newFakeServer(t)
	d := server.openDriver(t)

	payload := []byte("file contents")
	require.NoError(t, d.PushFile("/sdcard/test.txt", payload))

	pushes := server.byPath("/push_file")
	require.Len(t, pushes, 1)
	assert.Equal(t, "/sdcard/test.txt", pushes[0].Body["path"])
	assert.Equal(t, base64.StdEncoding.EncodeToString(payload), pushes[0].Body["data"])
}

func TestPullFileDecodesData(t *testing.T) {
	server := newFakeServer(t)
	payload := []byte("pulled contents")
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Path == "/session/"+testSessionID+"/appium/device/pull_file" {
			return base64.StdEncoding.EncodeToString(payload), true
		}
		return nil, false
	}
	d := server.openDriver(t)

	data, err := d.PullFile("/sdcard/test.txt")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestCurrentActivity(t *testing.T) {
	server := newFakeServer(t)
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Path == "/session/"+testSessionID+"/appium/device/current_activity" {
			return ".MainActivity", true
		}
		return nil, false
	}
	d := server.openDriver(t)

	activity, err := d.CurrentActivity()
	require.NoError(t, err)
	assert.Equal(t, ".MainActivity", activity)
}
