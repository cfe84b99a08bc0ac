package domain

import (
	"context"
	"fmt"
	"unicode/utf8"

	"release-config-exchange/internal/entities"
	"release-config-exchange/internal/metrics"
)

// CreateLink invalidates any pending Slack handshake for the project and starts a new one.
func (u *Usecase) CreateLink(ctx context.Context, caller entities.Caller, projectID int64) (*entities.LinkResult, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if _, err := u.authorizedProject(ctx, caller, projectID); err != nil {
		return nil, err
	}

	linker, err := u.repo.ReplaceLinker(ctx, projectID)
	if err != nil {
		metrics.ObserveLink("error")
		u.log.Errorw("failed to replace linker", "project_id", projectID, "error", err)
		return nil, storeError(err)
	}

	metrics.ObserveLink("ok")
	return &entities.LinkResult{Linker: *linker, SlackClientID: u.opts.SlackClientID}, nil
}

// UpdateMention changes who the Slack responder mentions.
func (u *Usecase) UpdateMention(ctx context.Context, caller entities.Caller, projectID int64, username string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if n := utf8.RuneCountInString(username); n == 0 || n > entities.MaxMentionLength {
		return nil, fmt.Errorf("%w: usernameToMention must be 1-%d characters", entities.ErrInvalidArgument, entities.MaxMentionLength)
	}

	project, err := u.authorizedProject(ctx, caller, projectID)
	if err != nil {
		return nil, err
	}
	if project.ResponderSlack == nil {
		return nil, entities.ErrNotConfigured
	}

	updated, err := u.repo.UpdateMention(ctx, projectID, username)
	if err != nil {
		return nil, storeError(err)
	}
	return updated, nil
}
