package usecase

import (
	"context"

	"release-config-exchange/internal/entities"
)

// ProjectUsecaseInterface abstracts project reads for delivery layer.
type ProjectUsecaseInterface interface {
	Project(ctx context.Context, caller entities.Caller, projectID int64) (*entities.Project, error)
}

// RequesterUsecaseInterface abstracts requester configuration changes.
type RequesterUsecaseInterface interface {
	SwapRequester(
		ctx context.Context,
		caller entities.Caller,
		projectID int64,
		provider entities.Provider,
		creds entities.Credentials,
	) (*entities.Project, error)
}

// ResponderUsecaseInterface abstracts responder linking operations.
type ResponderUsecaseInterface interface {
	CreateLink(ctx context.Context, caller entities.Caller, projectID int64) (*entities.LinkResult, error)
	UpdateMention(ctx context.Context, caller entities.Caller, projectID int64, username string) (*entities.Project, error)
}
