// Package audio plays the game's sound cues through beep.
//
// Every cue is rendered once into an in-memory beep.Buffer at startup,
// either from <SoundDir>/<cue>.wav or synthesized, so Play only has to add
// a buffer streamer to the speaker mixer. Any failure along the way leaves
// the engine silent: Play reports false and the game carries on.
package audio
