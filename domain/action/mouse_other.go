//go:build !windows

package action

import "image"

func moveCursor(x, y int) error { return ErrUnsupported }

// CursorPos is unavailable without a Windows backend.
func CursorPos() (image.Point, error) { return image.Point{}, ErrUnsupported }

func leftDown() error { return ErrUnsupported }
func leftUp() error   { return ErrUnsupported }

// KeyDown always reports false without a Windows backend.
func KeyDown(vk byte) bool { return false }

func primaryScreen() image.Point { return image.Point{} }
