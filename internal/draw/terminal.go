package draw

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const ansiReset = "\033[0m"

// TextWriter accumulates positioned, coloured text for one frame and writes
// it in chunks for smooth output over SSH.
type TextWriter struct {
	buf    strings.Builder
	numBuf [20]byte
}

// WriteAt appends s at a 1-based terminal position in the given colour.
// Empty colour writes with the terminal default.
func (tw *TextWriter) WriteAt(col, row int, s string, color Color) {
	if col < 1 {
		col = 1
	}
	if row < 1 {
		row = 1
	}
	tw.buf.WriteString("\033[")
	tw.buf.Write(strconv.AppendInt(tw.numBuf[:0], int64(row), 10))
	tw.buf.WriteByte(';')
	tw.buf.Write(strconv.AppendInt(tw.numBuf[:0], int64(col), 10))
	tw.buf.WriteByte('H')
	if color != Empty {
		tw.buf.WriteString("\033[38;5;")
		tw.buf.Write(strconv.AppendInt(tw.numBuf[:0], int64(color), 10))
		tw.buf.WriteByte('m')
	}
	tw.buf.WriteString(s)
	if color != Empty {
		tw.buf.WriteString(ansiReset)
	}
}

// WriteCentered appends s centred on the given row.
func (tw *TextWriter) WriteCentered(width, row int, s string, color Color) {
	tw.WriteAt(width/2-len([]rune(s))/2, row, s, color)
}

// Flush writes the accumulated text and resets the buffer.
func (tw *TextWriter) Flush(w io.Writer) error {
	data := tw.buf.String()
	tw.buf.Reset()
	return writeChunked(w, data)
}

// writeChunked writes data in chunks of at most maxChunkSize bytes.
func writeChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}
