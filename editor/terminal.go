package editor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/amirali/neveshtar/tools"
)

var ErrNotTerminal = errors.New("input is not a terminal")

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

func enableRawMode(fd int) (*unix.Termios, error) {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	raw := *t
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	// return from read after 100ms even when no byte arrived
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, err
	}
	return t, nil
}

// Init switches the input terminal to raw mode and reads the window size.
func (e *Editor) Init() error {
	f, ok := e.in.(fder)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ErrNotTerminal
	}
	e.infd = int(f.Fd())

	termios, err := enableRawMode(e.infd)
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	e.origTermios = termios

	rows, cols, err := e.windowSize()
	if err != nil {
		e.Close()
		return fmt.Errorf("getting window size: %w", err)
	}
	e.setScreenSize(rows, cols)
	e.logger.Printf("screen %dx%d", cols, rows)
	return nil
}

// windowSize asks the output terminal for its size and falls back to
// moving the cursor to the bottom right corner and querying its position.
func (e *Editor) windowSize() (rows, cols int, err error) {
	if f, ok := e.out.(fder); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return height, width, nil
		}
	}
	if _, err = io.WriteString(e.out, "\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, err
	}
	return tools.GetCursorPosition(e.in, e.out)
}

// Close restores the terminal mode saved by Init.
func (e *Editor) Close() error {
	if e.origTermios == nil {
		return fmt.Errorf("raw mode is not enabled")
	}
	// restore original termios.
	err := unix.IoctlSetTermios(e.infd, ioctlWriteTermios, e.origTermios)
	e.origTermios = nil
	return err
}

// Die restores the terminal, clears the screen, prints err and exits.
func (e *Editor) Die(err error) {
	e.Close()
	e.ClearScreen()
	e.logger.Printf("fatal: %v", err)
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
