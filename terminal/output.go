package terminal

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/frame"
)

// cellWriter turns positioned cells into ANSI output
// Cursor and SGR state are tracked so contiguous cells with one style cost one rune each
type cellWriter struct {
	writer    *bufio.Writer
	colorMode ColorMode

	cursorX     int
	cursorY     int
	cursorValid bool

	lastStyle tcell.Style
	lastValid bool
}

func newCellWriter(w io.Writer, colorMode ColorMode) *cellWriter {
	return &cellWriter{
		writer:    bufio.NewWriterSize(w, 32768),
		colorMode: colorMode,
	}
}

// put writes c at (x, y), repositioning only when the cursor is elsewhere
func (o *cellWriter) put(x, y int, c frame.Cell) {
	w := o.writer
	if !o.cursorValid || x != o.cursorX || y != o.cursorY {
		writeCursorPos(w, x, y)
		o.cursorX = x
		o.cursorY = y
		o.cursorValid = true
	}

	if !o.lastValid || c.Style != o.lastStyle {
		o.writeStyle(c.Style)
		o.lastStyle = c.Style
		o.lastValid = true
	}

	r := c.Rune
	if r == 0 {
		r = ' '
	}
	if r < 0x80 {
		w.WriteByte(byte(r))
	} else {
		w.WriteRune(r)
	}
	o.cursorX++
}

// writeStyle emits one combined SGR sequence: reset, attributes, fg, bg
func (o *cellWriter) writeStyle(s tcell.Style) {
	fg, bg, attrs := s.Decompose()
	w := o.writer

	w.Write(csi)
	w.WriteByte('0')
	if attrs&tcell.AttrBold != 0 {
		w.Write([]byte(";1"))
	}
	if attrs&tcell.AttrDim != 0 {
		w.Write([]byte(";2"))
	}
	if attrs&tcell.AttrItalic != 0 {
		w.Write([]byte(";3"))
	}
	if attrs&tcell.AttrBlink != 0 {
		w.Write([]byte(";5"))
	}
	if attrs&tcell.AttrReverse != 0 {
		w.Write([]byte(";7"))
	}
	o.writeColor(fg, 30)
	o.writeColor(bg, 40)
	w.WriteByte('m')
}

// writeColor writes ";<base+8>;..." for a color, or ";<base+9>" for the default
func (o *cellWriter) writeColor(c tcell.Color, base int) {
	w := o.writer
	w.WriteByte(';')
	if !c.Valid() {
		writeInt(w, base+9)
		return
	}
	writeInt(w, base+8)
	if c.IsRGB() && o.colorMode == ColorModeTrueColor {
		r, g, b := c.RGB()
		w.Write([]byte(";2;"))
		writeInt(w, int(r))
		w.WriteByte(';')
		writeInt(w, int(g))
		w.WriteByte(';')
		writeInt(w, int(b))
		return
	}
	w.Write([]byte(";5;"))
	writeInt(w, paletteIndex(c))
}

// clear resets attributes and blanks the screen
func (o *cellWriter) clear() {
	o.writer.Write(csiSGR0)
	o.writer.Write(csiClear)
	o.cursorX, o.cursorY = 0, 0
	o.cursorValid = true
	o.lastValid = false
}

// flush resets SGR so nothing leaks past the frame, then writes everything buffered
func (o *cellWriter) flush() error {
	if o.lastValid {
		o.writer.Write(csiSGR0)
		o.lastValid = false
	}
	return o.writer.Flush()
}

// raw writes control sequences and flushes immediately
func (o *cellWriter) raw(seqs ...[]byte) error {
	for _, s := range seqs {
		o.writer.Write(s)
	}
	o.cursorValid = false
	o.lastValid = false
	return o.writer.Flush()
}
