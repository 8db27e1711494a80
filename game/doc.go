// Package game contains the drawable entities: the player ship with its
// projectiles and the invader formation. Entities are mutated only by the
// goroutine that owns them and never reference the loop driving them.
package game
