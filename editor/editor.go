package editor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"golang.org/x/sys/unix"

	"github.com/amirali/neveshtar/editor/buffer"
	"github.com/amirali/neveshtar/editor/config"
	keys "github.com/amirali/neveshtar/editor/keys"
	modes "github.com/amirali/neveshtar/editor/modes"
	"github.com/amirali/neveshtar/editor/render"
	"github.com/amirali/neveshtar/editor/syntax"
)

var Version = "0.1.0"

var ErrQuitEditor = errors.New("quit editor")

var ErrPromptCanceled = fmt.Errorf("user canceled the input prompt")

const helpMessage = "HELP: Ctrl-S = save | Ctrl-F = find | Ctrl-O = open | Ctrl-N = new | Ctrl-Q = quit"

// Clipboard is the system clipboard the editor mirrors copies to.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

type Editor struct {
	buffers *buffer.Set

	// Internal clipboard shared by all buffers, tabs stored as
	// buffer.TabSentinel.
	clipboard []byte
	system    Clipboard

	screen render.Compositor

	statusmsg     string
	statusmsgTime time.Time

	quitCounter int

	mode modes.Mode

	cfg    config.Config
	logger *log.Logger

	in    io.Reader
	out   io.Writer
	input *keys.Decoder

	infd        int
	origTermios *unix.Termios
}

// New returns an editor reading keys from in and drawing to out. The
// terminal is left alone until Init is called.
func New(cfg config.Config, in io.Reader, out io.Writer, logger *log.Logger) *Editor {
	e := &Editor{
		buffers: buffer.NewSet(cfg.TabStop),
		system:  systemClipboard{},
		screen: render.Compositor{
			StatusTimeout: cfg.StatusTimeout(),
			Version:       Version,
		},
		mode:   modes.EditMode,
		cfg:    cfg,
		logger: logger,
		in:     in,
		out:    out,
		input:  keys.NewDecoder(in),
	}
	e.setScreenSize(24, 80)
	e.SetStatusMessage(helpMessage)
	return e
}

// setScreenSize takes the full terminal size and keeps two lines for the
// status and message bars.
func (e *Editor) setScreenSize(rows, cols int) {
	e.screen.Rows = max(1, rows-2)
	e.screen.Cols = max(1, cols)
}

// SetClipboard replaces the system clipboard used when mirroring is on.
func (e *Editor) SetClipboard(c Clipboard) {
	e.system = c
}

func (e *Editor) SetStatusMessage(format string, a ...interface{}) {
	e.statusmsg = fmt.Sprintf(format, a...)
	e.statusmsgTime = time.Now()
}

func (e *Editor) statusMode() modes.Mode {
	if e.mode == modes.EditMode && e.buffers.Current().Selecting {
		return modes.SelectMode
	}
	return e.mode
}

// Render draws one frame of the current buffer.
func (e *Editor) Render() error {
	st := render.Status{
		Index:       e.buffers.Index(),
		Count:       e.buffers.Len(),
		Mode:        e.statusMode().StatusMessage,
		Message:     e.statusmsg,
		MessageTime: e.statusmsgTime,
	}
	frame := e.screen.Render(e.buffers.Current(), st, time.Now())
	_, err := e.out.Write(frame)
	return err
}

// ClearScreen wipes the terminal and homes the cursor.
func (e *Editor) ClearScreen() {
	io.WriteString(e.out, "\x1b[2J") // clear the screen
	io.WriteString(e.out, "\x1b[H")  // reposition the cursor
}

// ProcessKey reads one key and acts on it. A read timeout is not an error.
func (e *Editor) ProcessKey() error {
	k, err := e.input.ReadKey()
	if err != nil {
		return err
	}
	if k == keys.KeyNone {
		return nil
	}
	e.logger.Printf("key: %d", k)
	return e.handleKey(k)
}

var arrowDirections = map[keys.Key]buffer.Direction{
	keys.KeyArrowLeft:  buffer.Left,
	keys.KeyArrowRight: buffer.Right,
	keys.KeyArrowUp:    buffer.Up,
	keys.KeyArrowDown:  buffer.Down,
}

func (e *Editor) handleKey(k keys.Key) error {
	b := e.buffers.Current()

	switch k {
	case keys.Ctrl('q'):
		if e.buffers.AnyDirty() && e.quitCounter < e.cfg.QuitTimes {
			e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.",
				e.cfg.QuitTimes-e.quitCounter)
			e.quitCounter++
			return nil
		}
		e.quitCounter = 0
		if e.buffers.Len() == 1 {
			return ErrQuitEditor
		}
		e.buffers.Close()
		e.SetStatusMessage("Buffer closed")
		return nil

	case keys.Ctrl('s'):
		n, err := e.Save()
		switch {
		case errors.Is(err, ErrPromptCanceled):
			e.SetStatusMessage("Save aborted")
		case err != nil:
			e.logger.Printf("save %s: %v", b.Filename, err)
			e.SetStatusMessage("Can't save! I/O error: %v", err)
		default:
			e.logger.Printf("saved %d bytes to %s", n, b.Filename)
			e.SetStatusMessage("%d bytes written to disk", n)
		}

	case keys.Ctrl('o'):
		filename, err := e.Prompt("Open file: %s (ESC to cancel)", nil)
		if err != nil {
			if !errors.Is(err, ErrPromptCanceled) {
				return err
			}
			e.SetStatusMessage("Open aborted")
			break
		}
		if err := e.OpenFile(filename); err != nil {
			e.SetStatusMessage("Could not open file %s: %v", filename, err)
		}

	case keys.Ctrl('n'):
		e.buffers.New()
		e.SetStatusMessage("New buffer %d/%d", e.buffers.Index()+1, e.buffers.Len())

	case keys.KeyShiftTab:
		e.buffers.Next()

	case keys.Ctrl('f'):
		if err := e.Find(); err != nil {
			return err
		}

	case keys.Ctrl('d'):
		b.DuplicateRow()

	case keys.Ctrl('k'):
		b.DeleteCurrentRow()

	case keys.Ctrl('c'):
		e.Copy()

	case keys.Ctrl('v'):
		e.Paste()

	case keys.KeyEnter:
		b.InsertNewline()

	case keys.KeyBackspace, keys.Ctrl('h'):
		b.DelChar()

	case keys.KeyDelete:
		row := b.CurrentRow()
		if row == nil || (b.Cy == len(b.Rows)-1 && b.Cx == len(row.Chars)) {
			// no more character to delete to the right.
			break
		}
		b.Move(buffer.Right)
		b.DelChar()

	case keys.KeyHome:
		unselect(b)
		b.Move(buffer.Home)

	case keys.KeyEnd:
		unselect(b)
		b.Move(buffer.End)

	case keys.KeyPageUp, keys.KeyPageDown:
		unselect(b)
		e.page(k)

	case keys.KeyArrowLeft, keys.KeyArrowRight, keys.KeyArrowUp, keys.KeyArrowDown:
		unselect(b)
		b.Move(arrowDirections[k])

	case keys.KeyShiftArrowLeft, keys.KeyShiftArrowRight, keys.KeyShiftArrowUp, keys.KeyShiftArrowDown:
		d := arrowDirections[keys.Unshift(k)]
		b.ToggleSelection(d)
		b.Move(d)

	case keys.Ctrl('l'), keys.EscKey:
		// nothing to refresh, every frame is drawn in full

	default:
		if k >= 0 && k <= 0xff {
			b.InsertChar(byte(k))
		}
	}

	// Reset quitCounter to zero if user pressed any key other than Ctrl-Q.
	e.quitCounter = 0
	return nil
}

// unselect drops the selection, as every cursor move without shift does.
func unselect(b *buffer.Buffer) {
	if b.Selecting {
		b.ClearSelection()
	}
}

// page moves the cursor one screen up or down.
func (e *Editor) page(k keys.Key) {
	b := e.buffers.Current()
	d := buffer.Up
	if k == keys.KeyPageUp {
		b.Cy = b.RowOffset
	} else {
		d = buffer.Down
		b.Cy = min(b.RowOffset+e.screen.Rows-1, len(b.Rows))
	}
	for n := e.screen.Rows; n > 0; n-- {
		b.Move(d)
	}
}

// Prompt shows the given prompt in the message bar and get user input
// until to user presses the Enter key to confirm the input or until the user
// presses the Escape key to cancel the input. Returns the user input and nil
// if the user enters the input. Returns an empty string and ErrPromptCanceled
// if the user cancels the input.
// It takes an optional callback function, which takes the query string and
// the last key pressed.
func (e *Editor) Prompt(prompt string, cb func(query string, k keys.Key)) (string, error) {
	e.mode = modes.PromptMode
	defer func() { e.mode = modes.EditMode }()

	var b strings.Builder
	for {
		e.SetStatusMessage(prompt, b.String())
		if err := e.Render(); err != nil {
			return "", err
		}

		k, err := e.input.ReadKey()
		if err != nil {
			return "", err
		}
		switch {
		case k == keys.KeyNone:
			continue
		case k == keys.KeyDelete || k == keys.KeyBackspace || k == keys.Ctrl('h'):
			if b.Len() > 0 {
				s := b.String()
				_, size := utf8.DecodeLastRuneInString(s)
				b.Reset()
				b.WriteString(s[:len(s)-size])
			}
		case k == keys.EscKey:
			e.SetStatusMessage("")
			if cb != nil {
				cb(b.String(), k)
			}
			return "", ErrPromptCanceled
		case k == keys.KeyEnter:
			if b.Len() > 0 {
				e.SetStatusMessage("")
				if cb != nil {
					cb(b.String(), k)
				}
				return b.String(), nil
			}
		case k == keys.Ctrl('v') && e.cfg.SystemClipboard:
			text, err := e.system.ReadAll()
			if err != nil {
				e.logger.Printf("clipboard read: %v", err)
				break
			}
			// a prompt holds a single line
			text = strings.NewReplacer("\r", "", "\n", "").Replace(text)
			b.WriteString(text)
		case !keys.IsControl(k) && k <= 0xff:
			b.WriteByte(byte(k))
		}

		if cb != nil {
			cb(b.String(), k)
		}
	}
}

// Find runs an incremental search over the current buffer. The cursor and
// the scroll offsets are restored when the search is canceled.
func (e *Editor) Find() error {
	b := e.buffers.Current()
	savedCx := b.Cx
	savedCy := b.Cy
	savedColOffset := b.ColOffset
	savedRowOffset := b.RowOffset

	search := buffer.NewSearch()
	onKeyPress := func(query string, k keys.Key) {
		action := buffer.SearchRestart
		switch k {
		case keys.KeyEnter, keys.EscKey:
			action = buffer.SearchDone
		case keys.KeyArrowRight, keys.KeyArrowDown:
			action = buffer.SearchNext
		case keys.KeyArrowLeft, keys.KeyArrowUp:
			action = buffer.SearchPrev
		}
		search.Step(b, query, action)
	}

	_, err := e.Prompt("Search: %s (ESC = cancel | Enter = confirm | Arrows = prev/next)", onKeyPress)
	// restore cursor position when the user cancels search
	if errors.Is(err, ErrPromptCanceled) {
		b.Cx = savedCx
		b.Cy = savedCy
		b.ColOffset = savedColOffset
		b.RowOffset = savedRowOffset
		return nil
	}
	return err
}

// OpenFile opens filename in a new buffer and makes it current. A missing
// file gives an empty buffer that will be created on save.
func (e *Editor) OpenFile(filename string) error {
	b, err := buffer.Open(filename, e.cfg.TabStop)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		e.logger.Printf("open %s: %v", filename, err)
		return err
	}
	e.buffers.Add(b)
	if err != nil {
		e.SetStatusMessage("New file %s", filename)
	}
	e.logger.Printf("opened %s with %d rows", filename, len(b.Rows))
	return nil
}

// Save writes the current buffer, asking for a filename when it has none.
func (e *Editor) Save() (int, error) {
	b := e.buffers.Current()
	if b.Filename == "" {
		fname, err := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return 0, err
		}
		b.Filename = fname
		b.SetSyntax(syntax.Lookup(fname))
	}
	return b.Save()
}

// Copy puts the selection of the current buffer into the clipboard.
func (e *Editor) Copy() {
	clip := e.buffers.Current().Copy()
	if len(clip) == 0 {
		e.SetStatusMessage("Nothing selected")
		return
	}
	e.clipboard = clip
	e.SetStatusMessage("Copied item to clipboard")

	if e.cfg.SystemClipboard {
		text := strings.ReplaceAll(string(clip), string(buffer.TabSentinel), "\t")
		if err := e.system.WriteAll(text); err != nil {
			e.logger.Printf("clipboard write: %v", err)
		}
	}
}

// Paste inserts the clipboard at the cursor of the current buffer.
func (e *Editor) Paste() {
	if len(e.clipboard) == 0 {
		return
	}
	e.buffers.Current().Paste(e.clipboard)
}
