// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"release-config-exchange/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
	Ping(ctx context.Context) error
}

// ProjectInterface exposes project reads.
type ProjectInterface interface {
	GetProject(ctx context.Context, projectID int64) (*entities.Project, error)
}

// RequesterInterface exposes requester configuration writes.
type RequesterInterface interface {
	// SwapRequester stores cfg and makes it the project's only requester in one transaction.
	SwapRequester(ctx context.Context, projectID int64, cfg entities.Requester) (*entities.Project, error)
}

// ResponderInterface exposes responder linking operations.
type ResponderInterface interface {
	// ReplaceLinker drops any linker of the project and creates a fresh one in one transaction.
	ReplaceLinker(ctx context.Context, projectID int64) (*entities.SlackResponderLinker, error)
	UpdateMention(ctx context.Context, projectID int64, username string) (*entities.Project, error)
}
