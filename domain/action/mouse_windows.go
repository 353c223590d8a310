//go:build windows

package action

import (
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	setCursorPos     = user32.NewProc("SetCursorPos")
	getCursorPos     = user32.NewProc("GetCursorPos")
	mouseEvent       = user32.NewProc("mouse_event")
	getAsyncKeyState = user32.NewProc("GetAsyncKeyState")
	getSystemMetrics = user32.NewProc("GetSystemMetrics")
)

const (
	mouseeventfLeftDown = 0x0002
	mouseeventfLeftUp   = 0x0004
)

// moveCursor moves the OS mouse pointer to (x, y) with SetCursorPos.
func moveCursor(x, y int) error {
	if r, _, err := setCursorPos.Call(uintptr(x), uintptr(y)); r == 0 {
		return err
	}
	return nil
}

// CursorPos returns the current pointer position in screen pixels.
func CursorPos() (image.Point, error) {
	var pt struct{ X, Y int32 }
	if r, _, err := getCursorPos.Call(uintptr(unsafe.Pointer(&pt))); r == 0 {
		return image.Point{}, err
	}
	return image.Pt(int(pt.X), int(pt.Y)), nil
}

// leftDown presses the left button via legacy mouse_event.
func leftDown() error {
	_, _, _ = mouseEvent.Call(mouseeventfLeftDown, 0, 0, 0, 0)
	return nil
}

// leftUp releases the left button.
func leftUp() error {
	_, _, _ = mouseEvent.Call(mouseeventfLeftUp, 0, 0, 0, 0)
	return nil
}

// KeyDown reports whether the key with virtual-key code vk is held right now,
// regardless of which window has focus.
func KeyDown(vk byte) bool {
	r, _, _ := getAsyncKeyState.Call(uintptr(vk))
	return r&0x8000 != 0
}

// primaryScreen returns the primary monitor size from GetSystemMetrics.
func primaryScreen() image.Point {
	cx, _, _ := getSystemMetrics.Call(uintptr(0)) // SM_CXSCREEN
	cy, _, _ := getSystemMetrics.Call(uintptr(1)) // SM_CYSCREEN
	return image.Pt(int(cx), int(cy))
}
