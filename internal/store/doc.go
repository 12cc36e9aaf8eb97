// Package store provides persistence for expression sessions.
//
// SessionFileStore serialises every session as JSON into one file under the
// configured home directory, replacing it atomically on each write; the CLI
// uses it so a display survives between invocations. MemoryStore keeps
// sessions in a map for calcd, which prunes idle ones. Both are safe for
// concurrent use.
package store
