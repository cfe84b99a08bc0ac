package entities

// Caller is the authenticated user on whose behalf an operation runs.
type Caller struct {
	Login string
}
