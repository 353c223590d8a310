package action

import (
	"errors"
	"strconv"
	"strings"
)

// ErrUnsupported is returned by pointer and key calls on platforms without an
// input-injection backend.
var ErrUnsupported = errors.New("action: input injection not supported on this platform")

// Virtual-key codes that have no printable name.
const (
	VKEscape = 0x1B
	VKSpace  = 0x20
	VKF1     = 0x70
)

// ParseVK converts a key token (e.g. "SPACE", "F3", "Q") into a Windows
// virtual-key code. Recognizes SPACE, ESC, F1..F12 and single letters A..Z.
// Unknown tokens return VK_SPACE.
func ParseVK(key string) byte {
	k := strings.ToUpper(strings.TrimSpace(key))
	switch k {
	case "SPACE", " ":
		return VKSpace
	case "ESC", "ESCAPE":
		return VKEscape
	}
	if len(k) >= 2 && len(k) <= 3 && k[0] == 'F' {
		n := 0
		for _, c := range k[1:] {
			if c < '0' || c > '9' {
				n = -1
				break
			}
			n = n*10 + int(c-'0')
		}
		if n >= 1 && n <= 12 {
			return byte(VKF1 + n - 1)
		}
	}
	if len(k) == 1 && k[0] >= 'A' && k[0] <= 'Z' {
		return k[0] // 'A'..'Z' match VK codes
	}
	return VKSpace
}

// Keysym returns the Tk keysym for the same token, for in-window bindings.
func Keysym(key string) string {
	vk := ParseVK(key)
	switch {
	case vk == VKSpace:
		return "space"
	case vk == VKEscape:
		return "Escape"
	case vk >= VKF1 && vk < VKF1+12:
		return "F" + strconv.Itoa(int(vk-VKF1)+1)
	default:
		return strings.ToLower(string(rune(vk)))
	}
}
