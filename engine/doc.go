// Package engine runs the fixed-tick game loop.
//
// Each tick drains pending input without blocking, updates the player and
// the formation by the elapsed time, resolves collisions, checks for the end
// of the game, composes a frame and hands it to the render queue. The loop
// goroutine owns every entity; frames leave it by ownership transfer.
package engine
