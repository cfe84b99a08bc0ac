package domain

import (
	"context"
	"fmt"

	"release-config-exchange/internal/entities"
	"release-config-exchange/internal/metrics"
	"release-config-exchange/internal/validator"
)

// SwapRequester validates creds with the provider and makes them the project's only requester.
// Nothing is persisted unless the provider accepted the credentials.
func (u *Usecase) SwapRequester(
	ctx context.Context,
	caller entities.Caller,
	projectID int64,
	provider entities.Provider,
	creds entities.Credentials,
) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if err := creds.Validate(provider); err != nil {
		return nil, err
	}

	project, err := u.authorizedProject(ctx, caller, projectID)
	if err != nil {
		return nil, err
	}

	target := validator.Target{RepoOwner: project.RepoOwner, RepoName: project.RepoName}
	verdict, err := u.checker.Check(ctx, provider, target, creds)
	if err != nil {
		return nil, err
	}

	switch verdict.Outcome {
	case validator.Valid:
	case validator.InvalidCredentials:
		metrics.ObserveSwap(string(provider), "rejected")
		u.log.Infow("requester credentials rejected", "project_id", projectID, "provider", provider)
		return nil, &entities.CredentialsError{Provider: provider, Message: verdict.Message}
	default:
		metrics.ObserveSwap(string(provider), "unreachable")
		return nil, fmt.Errorf("%w: %s", entities.ErrProviderUnreachable, provider)
	}

	cfg, err := entities.NewRequester(provider, creds)
	if err != nil {
		return nil, err
	}

	updated, err := u.repo.SwapRequester(ctx, projectID, cfg)
	if err != nil {
		metrics.ObserveSwap(string(provider), "error")
		u.log.Errorw("failed to swap requester", "project_id", projectID, "provider", provider, "error", err)
		return nil, storeError(err)
	}

	metrics.ObserveSwap(string(provider), "ok")
	u.log.Infow("requester configured",
		"project_id", projectID,
		"provider", provider,
		"azure_project_id", verdict.Context.AzureProjectID,
	)
	return updated, nil
}
