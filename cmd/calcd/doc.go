// Package main runs calcd, the calculator session server used by keycalc
// --server and by browser keypads. It keeps sessions in memory and serves
// the API documented in package server.
//
// Flags
//
//	--addr      listen address (default :8080, or $CALCD_ADDR)
//	--secret    handle signing secret (default $CALCD_SECRET); when empty a
//	            random key is used and handles die with the process
//	--idle-ttl  forget sessions untouched for this long (default 1h)
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry an error body with a code.
//   - A structured access log records method, path, remote, status, bytes
//     and duration for each request, with session identifiers fingerprinted.
//   - SIGINT and SIGTERM shut the server down gracefully.
package main
