// Package terminal is the device layer under the engine.
//
// Two implementations of Terminal are provided:
//   - NewANSI drives an xterm-compatible tty directly with escape sequences,
//     parsing raw stdin and watching SIGWINCH
//   - NewTcell wraps a tcell.Screen, covering terminfo terminals, Windows
//     consoles and tcell's simulation screen for tests
//
// Both report input with the same normalized events: control letters arrive
// as the lowercase rune with ModCtrl, wheel motion as MouseActionScroll.
package terminal
