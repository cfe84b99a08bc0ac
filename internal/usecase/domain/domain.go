// Package domain contains the coordinators that change project release configuration.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"release-config-exchange/internal/entities"
	"release-config-exchange/internal/repository"
	"release-config-exchange/internal/validator"

	"go.uber.org/zap"
)

// CredentialChecker validates requester credentials with their provider.
type CredentialChecker interface {
	Check(ctx context.Context, provider entities.Provider, target validator.Target, creds entities.Credentials) (validator.Verdict, error)
}

// Authorizer decides whether a caller may administer a project.
type Authorizer interface {
	Authorize(ctx context.Context, caller entities.Caller, project *entities.Project) error
}

// Options tune the usecase layer.
type Options struct {
	Timeout       time.Duration
	SlackClientID string
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log     *zap.SugaredLogger
	repo    repository.Repository
	checker CredentialChecker
	authz   Authorizer
	opts    Options
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	checker CredentialChecker,
	authz Authorizer,
	opts Options,
) *Usecase {
	return &Usecase{
		log:     log,
		repo:    repo,
		checker: checker,
		authz:   authz,
		opts:    opts,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// authorizedProject loads the project and fails unless caller may administer it.
func (u *Usecase) authorizedProject(ctx context.Context, caller entities.Caller, projectID int64) (*entities.Project, error) {
	if projectID <= 0 {
		return nil, fmt.Errorf("%w: project id must be positive", entities.ErrInvalidArgument)
	}

	project, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, storeError(err)
	}
	if err := u.authz.Authorize(ctx, caller, project); err != nil {
		u.log.Infow("project access denied", "project_id", projectID, "caller", caller.Login, "error", err)
		return nil, err
	}
	return project, nil
}

// storeError passes through domain errors and classifies everything else as a persistence failure.
func storeError(err error) error {
	switch {
	case errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrNotConfigured):
		return err
	default:
		return fmt.Errorf("%w: %w", entities.ErrPersistence, err)
	}
}

// Project returns the full project view.
func (u *Usecase) Project(ctx context.Context, caller entities.Caller, projectID int64) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	return u.authorizedProject(ctx, caller, projectID)
}
