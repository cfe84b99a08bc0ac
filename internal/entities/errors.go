// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrProjectNotFound is returned when a project does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrUnauthenticated signals a request without caller identity.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden signals the caller may not administer the project.
	ErrForbidden = errors.New("forbidden")
	// ErrUnknownProvider signals an unsupported requester kind.
	ErrUnknownProvider = errors.New("unknown provider")
	// ErrInvalidCredentials signals the provider rejected the supplied credentials.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrProviderUnreachable signals the provider could not be contacted.
	ErrProviderUnreachable = errors.New("provider unreachable")
	// ErrNotConfigured signals a responder update on a project without a responder.
	ErrNotConfigured = errors.New("responder not configured")
	// ErrPersistence signals a failed unit of work.
	ErrPersistence = errors.New("persistence failure")
)

// CredentialsError carries the user-facing reason a provider rejected credentials.
type CredentialsError struct {
	Provider Provider
	Message  string
}

func (e *CredentialsError) Error() string {
	return e.Message
}

func (e *CredentialsError) Unwrap() error {
	return ErrInvalidCredentials
}
