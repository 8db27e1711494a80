// Package frame holds the fixed-size cell grid composed once per tick and the
// contract entities use to project themselves onto it.
package frame

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/constants"
)

// Width and Height are the grid dimensions
const (
	Width  = constants.Cols
	Height = constants.Rows
)

// Cell is a single printable grid position
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Blank is the cell every frame starts from
var Blank = Cell{Rune: constants.GlyphBlank, Style: tcell.StyleDefault}

// Frame is one screen's worth of content, row-major
// A frame is owned by one goroutine at a time: the loop while composing, the render worker after Send
type Frame struct {
	cells [Height][Width]Cell
}

// Drawable projects entity state into a frame
type Drawable interface {
	Draw(f *Frame)
}

// New returns a frame with every cell set to Blank
func New() *Frame {
	f := &Frame{}
	f.Fill(Blank)
	return f
}

// Fill overwrites every cell
func (f *Frame) Fill(c Cell) {
	for y := range f.cells {
		for x := range f.cells[y] {
			f.cells[y][x] = c
		}
	}
}

// InBounds reports whether (x, y) addresses a cell
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Set writes a cell, out-of-bounds writes are dropped
func (f *Frame) Set(x, y int, c Cell) {
	if !InBounds(x, y) {
		return
	}
	f.cells[y][x] = c
}

// SetRune writes r with style at (x, y)
func (f *Frame) SetRune(x, y int, r rune, style tcell.Style) {
	f.Set(x, y, Cell{Rune: r, Style: style})
}

// At returns the cell at (x, y), Blank when out of bounds
func (f *Frame) At(x, y int) Cell {
	if !InBounds(x, y) {
		return Blank
	}
	return f.cells[y][x]
}

// Compose builds a fresh frame by drawing each drawable in order
func Compose(drawables ...Drawable) *Frame {
	f := New()
	for _, d := range drawables {
		d.Draw(f)
	}
	return f
}

// Count returns how many cells hold rune r
func (f *Frame) Count(r rune) int {
	n := 0
	for y := range f.cells {
		for x := range f.cells[y] {
			if f.cells[y][x].Rune == r {
				n++
			}
		}
	}
	return n
}
