// Package commands defines the keycalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - eval      Evaluate a complete expression
//   - press     Press keys on a session and print the display (alias: key)
//   - show      Print what a session displays
//   - reset     Forget a session
//   - repl      Drive a session interactively, one keystroke at a time
//
// # Implementation
//
// Sessions are stored under --home (default ~/.keycalc, or $KEYCALC_HOME)
// and the local session is named "default" unless --session says otherwise.
// With --server (or $KEYCALC_SERVER) every command talks to calcd instead;
// press opens a new server session when no --session handle is given and
// prints the handle on stderr.
package commands
