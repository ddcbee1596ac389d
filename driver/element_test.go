package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobile-next/mobiledriver/touch"
	"github.com/mobile-next/mobiledriver/wire"
)

func TestFindElementW3CFormat(t *testing.T) {
	server := newFakeServer(t)
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Path == "/session/"+testSessionID+"/element" {
			return map[string]interface{}{w3cElementKey: "elem-1"}, true
		}
		return nil, false
	}
	d := server.openDriver(t)

	el, err := d.FindElement(ByAccessibilityID, "login")
	require.NoError(t, err)
	assert.Equal(t, "elem-1", el.ID)

	finds := server.byPath("/element")
	require.Len(t, finds, 1)
	assert.Equal(t, "accessibility id", finds[0].Body["using"])
	assert.Equal(t, "login", finds[0].Body["value"])
}

func TestFindElementLegacyFormat(t *testing.T) {
	server := newFakeServer(t)
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Path == "/session/"+testSessionID+"/element" {
			return map[string]interface{}{"ELEMENT": "elem-2"}, true
		}
		return nil, false
	}
	d := server.openDriver(t)

	el, err := d.FindElement(ByXPath, "//Button")
	require.NoError(t, err)
	assert.Equal(t, "elem-2", el.ID)
}

func TestFindElementServerError(t *testing.T) {
	server := newFakeServer(t)
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Path == "/session/"+testSessionID+"/element" {
			return map[string]interface{}{
				"error":   "no such element",
				"message": "unable to locate element",
			}, true
		}
		return nil, false
	}
	d := server.openDriver(t)

	_, err := d.FindElement(ByID, "missing")
	require.Error(t, err)

	var serverErr *wire.ServerError
	assert.ErrorAs(t, err, &serverErr)
}

func TestFindElementsCollectsIDs(t *testing.T) {
	server := newFakeServer(t)
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Path == "/session/"+testSessionID+"/elements" {
			return []interface{}{
				map[string]interface{}{w3cElementKey: "elem-1"},
				map[string]interface{}{"ELEMENT": "elem-2"},
			}, true
		}
		return nil, false
	}
	d := server.openDriver(t)

	refs, err := d.FindElements(ByClassName, "android.widget.Button")
	require.NoError(t, err)
	assert.Equal(t, []touch.ElementRef{{ID: "elem-1"}, {ID: "elem-2"}}, refs)
}

func TestElementRectIsCachedPerElement(t *testing.T) {
	server := newFakeServer(t)
	server.hook = func(r capturedRequest) (interface{}, bool) {
		if r.Path == "/session/"+testSessionID+"/element/elem-3/rect" {
			return map[string]interface{}{"x": 10, "y": 20, "width": 30, "height": 40}, true
		}
		return nil, false
	}
	d := server.openDriver(t)

	el := touch.ElementRef{ID: "elem-3"}
	first, err := d.ElementRect(el)
	require.NoError(t, err)
	assert.Equal(t, Rect{X: 10, Y: 20, Width: 30, Height: 40}, first)

	second, err := d.ElementRect(el)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Len(t, server.byPath("/element/elem-3/rect"), 1, "second lookup must hit the cache")
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		rect       Rect
		wantX, wantY int
	}{
		{Rect{X: 0, Y: 0, Width: 100, Height: 60}, 50, 30},
		{Rect{X: 10, Y: 20, Width: 30, Height: 40}, 25, 40},
		{Rect{}, 0, 0},
	}

	for _, tt := range tests {
		x, y := tt.rect.Center()
		assert.Equal(t, tt.wantX, x)
		assert.Equal(t, tt.wantY, y)
	}
}
