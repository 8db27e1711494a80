// Package render moves composed frames from the game loop to the terminal.
//
// The loop produces one frame per tick and hands it to a bounded Queue. A
// single Worker goroutine drains the queue and drives a Renderer, which
// writes only the cells that changed since the last frame it actually drew.
// A full redraw happens on the first frame, on request, and after
// Invalidate (terminal resize).
package render
