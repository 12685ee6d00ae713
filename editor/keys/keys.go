package keys

type Key int32

// KeyNone is returned when a read timed out before any byte arrived.
const KeyNone Key = -1

const (
	KeyEnter     Key = 13
	EscKey       Key = 27
	KeyBackspace Key = 127

	KeyArrowLeft Key = iota + 1000
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

// shifted keys
const (
	KeyShiftArrowLeft Key = iota + 2000
	KeyShiftArrowRight
	KeyShiftArrowUp
	KeyShiftArrowDown
	KeyShiftTab
)

// Ctrl returns the key resulting from pressing the given ASCII character with the ctrl-key.
func Ctrl(char byte) Key {
	return Key(char & 0x1f)
}

// Unshift maps a shifted arrow to the plain arrow moving the same way.
func Unshift(k Key) Key {
	switch k {
	case KeyShiftArrowLeft:
		return KeyArrowLeft
	case KeyShiftArrowRight:
		return KeyArrowRight
	case KeyShiftArrowUp:
		return KeyArrowUp
	case KeyShiftArrowDown:
		return KeyArrowDown
	}
	return k
}

// IsControl reports whether k is an ASCII control byte.
func IsControl(k Key) bool {
	return (k >= 0 && k < 32) || k == 127
}
