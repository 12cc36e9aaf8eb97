// Package app wires application dependencies for the CLI.
//
// It builds either local sessions persisted under Config.Home or a client
// for a calcd server from Config, exposing them via the Wire struct for
// commands to use.
package app
