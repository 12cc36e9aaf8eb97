// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (tokens, sessions, display state) and contracts
// (interfaces) only.
package domain
