// Package access decides whether a caller may administer a project.
package access

import (
	"context"
	"strings"

	"release-config-exchange/internal/entities"
)

// OwnerPolicy lets the repository owner and configured admins administer a project.
type OwnerPolicy struct {
	admins map[string]struct{}
}

// NewOwnerPolicy builds a policy with the given admin logins.
func NewOwnerPolicy(admins []string) *OwnerPolicy {
	set := make(map[string]struct{}, len(admins))
	for _, a := range admins {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			set[a] = struct{}{}
		}
	}
	return &OwnerPolicy{admins: set}
}

// Authorize returns nil when caller may change project configuration.
func (o *OwnerPolicy) Authorize(_ context.Context, caller entities.Caller, project *entities.Project) error {
	login := strings.ToLower(strings.TrimSpace(caller.Login))
	if login == "" {
		return entities.ErrUnauthenticated
	}
	if strings.EqualFold(login, project.RepoOwner) {
		return nil
	}
	if _, ok := o.admins[login]; ok {
		return nil
	}
	return entities.ErrForbidden
}
