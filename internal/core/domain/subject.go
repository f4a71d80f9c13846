package domain

import "time"

// Scope is the user/account boundary under which entities are isolated.
// Unauthenticated clients share the local scope.
type Scope string

const ScopeLocal Scope = "local"

// Subject groups tasks and sessions under a display name and color tag.
// Deleting a subject does not cascade: tasks keep the dangling reference
// and render with the fallback color.
type Subject struct {
	ID        string
	Scope     Scope
	Name      string
	Color     string
	CreatedAt time.Time
}

type CreateSubjectInput struct {
	Name  string
	Color string
}
