// Package terminal owns the interactive tty for a session: raw mode, the
// alternate screen, cursor visibility, key input and cell output.
//
// Two backends implement Terminal:
//   - ansi: direct ANSI sequences over a raw-mode stdin/stdout (x/term, x/sys/unix)
//   - tcell: a tcell.Screen, also usable with tcell's simulation screen in tests
//
// Init and Fini bracket the session; Fini restores the terminal and is safe to
// call more than once. EmergencyReset covers panic paths where Fini cannot run.
package terminal
