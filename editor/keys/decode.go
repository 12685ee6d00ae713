package keys

import (
	"errors"
	"io"
)

// maxSequence bounds how many bytes are read after an escape byte.
const maxSequence = 8

// escapeSequences maps the bytes following ESC to a logical key.
var escapeSequences = map[string]Key{
	"[A": KeyArrowUp,
	"[B": KeyArrowDown,
	"[C": KeyArrowRight,
	"[D": KeyArrowLeft,
	"[H": KeyHome,
	"[F": KeyEnd,
	"[Z": KeyShiftTab,
	"OH": KeyHome,
	"OF": KeyEnd,

	"[1~": KeyHome,
	"[7~": KeyHome,
	"[4~": KeyEnd,
	"[8~": KeyEnd,
	"[3~": KeyDelete,
	"[5~": KeyPageUp,
	"[6~": KeyPageDown,

	"[1;2A": KeyShiftArrowUp,
	"[1;2B": KeyShiftArrowDown,
	"[1;2C": KeyShiftArrowRight,
	"[1;2D": KeyShiftArrowLeft,
}

// Decoder turns a raw terminal byte stream into keys. It keeps no state
// between calls to ReadKey.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// readByte reads a single byte. ok is false when the read timed out
// without data, which is not an error.
func (d *Decoder) readByte() (c byte, ok bool, err error) {
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		return d.buf[0], true, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, false, err
	}
	return 0, false, nil
}

// ReadKey reads one key press. It returns KeyNone when no input arrived
// before the read timeout.
func (d *Decoder) ReadKey() (Key, error) {
	c, ok, err := d.readByte()
	if err != nil || !ok {
		return KeyNone, err
	}
	if c != byte(EscKey) {
		return Key(c), nil
	}
	return d.readEscape()
}

// readEscape reads the rest of an escape sequence. Unknown or truncated
// sequences decode to a plain Escape.
func (d *Decoder) readEscape() (Key, error) {
	var seq [maxSequence]byte
	n := 0
	more := func(count int) (bool, error) {
		for i := 0; i < count && n < maxSequence; i++ {
			c, ok, err := d.readByte()
			if err != nil || !ok {
				return false, err
			}
			seq[n] = c
			n++
		}
		return true, nil
	}

	if ok, err := more(2); !ok {
		return EscKey, err
	}
	if seq[0] == '[' {
		// parameters run until the final byte, a letter or '~'
		for isParam(seq[n-1]) {
			if n == maxSequence {
				return EscKey, nil
			}
			if ok, err := more(1); !ok {
				return EscKey, err
			}
		}
	}

	if k, found := escapeSequences[string(seq[:n])]; found {
		return k, nil
	}
	return EscKey, nil
}

func isParam(c byte) bool {
	return (c >= '0' && c <= '9') || c == ';'
}
