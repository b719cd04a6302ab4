// Package model defines the data structures shared across the Mindflow application.
package model

// Command represents a discrete command delivered by an interaction
// surface: a scope, an operation within that scope, and its arguments.
type Command struct {
	Scope     string
	Operation string
	Args      []string
}
