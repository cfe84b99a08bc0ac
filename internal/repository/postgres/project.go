package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"release-config-exchange/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectProjectQuery = `
SELECT p.id, p.repo_owner, p.repo_name, p.secret, p.enabled,
       c.id, c.access_token, c.created_at,
       t.id, t.access_token, t.created_at,
       a.id, a.access_token, a.organization_name, a.project_name, a.created_at,
       s.id, s.team_name, s.team_id, s.team_icon, s.channel_name, s.channel_id, s.username_to_mention
FROM projects p
LEFT JOIN circleci_requester_configs c ON c.id = p.requester_circleci_id
LEFT JOIN travisci_requester_configs t ON t.id = p.requester_travisci_id
LEFT JOIN azure_devops_requester_configs a ON a.id = p.requester_azuredevops_id
LEFT JOIN slack_responder_configs s ON s.id = p.responder_slack_id
WHERE p.id = $1`
	lockProjectQuery = `SELECT id FROM projects WHERE id=$1 FOR UPDATE`
)

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GetProject fetches a project together with its referenced configurations.
func (p *Postgres) GetProject(ctx context.Context, projectID int64) (*entities.Project, error) {
	project, err := readProject(ctx, p.db, projectID)
	if err != nil {
		if !errors.Is(err, entities.ErrProjectNotFound) {
			p.log.Errorw("failed to read project", "error", err, "project_id", projectID)
		}
		return nil, err
	}
	return project, nil
}

func lockProject(ctx context.Context, tx pgx.Tx, projectID int64) error {
	var id int64
	if err := tx.QueryRow(ctx, lockProjectQuery, projectID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrProjectNotFound
		}
		return fmt.Errorf("lock project: %w", err)
	}
	return nil
}

func readProject(ctx context.Context, q queryRower, projectID int64) (*entities.Project, error) {
	var (
		pr entities.Project

		circleID      *int64
		circleToken   *string
		circleCreated *time.Time

		travisID      *int64
		travisToken   *string
		travisCreated *time.Time

		azureID      *int64
		azureToken   *string
		azureOrg     *string
		azureProject *string
		azureCreated *time.Time

		slackID          *int64
		slackTeamName    *string
		slackTeamID      *string
		slackTeamIcon    *string
		slackChannelName *string
		slackChannelID   *string
		slackMention     *string
	)

	err := q.QueryRow(ctx, selectProjectQuery, projectID).Scan(
		&pr.ID, &pr.RepoOwner, &pr.RepoName, &pr.Secret, &pr.Enabled,
		&circleID, &circleToken, &circleCreated,
		&travisID, &travisToken, &travisCreated,
		&azureID, &azureToken, &azureOrg, &azureProject, &azureCreated,
		&slackID, &slackTeamName, &slackTeamID, &slackTeamIcon, &slackChannelName, &slackChannelID, &slackMention,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	switch {
	case circleID != nil:
		pr.Requester = &entities.CircleCIConfig{
			ConfigMeta:  entities.ConfigMeta{ID: *circleID, CreatedAt: *circleCreated},
			AccessToken: *circleToken,
		}
	case travisID != nil:
		pr.Requester = &entities.TravisCIConfig{
			ConfigMeta:  entities.ConfigMeta{ID: *travisID, CreatedAt: *travisCreated},
			AccessToken: *travisToken,
		}
	case azureID != nil:
		pr.Requester = &entities.AzureDevOpsConfig{
			ConfigMeta:       entities.ConfigMeta{ID: *azureID, CreatedAt: *azureCreated},
			AccessToken:      *azureToken,
			OrganizationName: *azureOrg,
			ProjectName:      *azureProject,
		}
	}

	if slackID != nil {
		pr.ResponderSlack = &entities.SlackResponderConfig{
			ID:                *slackID,
			TeamName:          *slackTeamName,
			TeamID:            *slackTeamID,
			TeamIcon:          *slackTeamIcon,
			ChannelName:       *slackChannelName,
			ChannelID:         *slackChannelID,
			UsernameToMention: *slackMention,
		}
	}

	return &pr, nil
}
