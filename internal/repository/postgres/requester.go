package postgres

import (
	"context"
	"fmt"

	"release-config-exchange/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertCircleCIConfigQuery = `INSERT INTO circleci_requester_configs(access_token) VALUES ($1) RETURNING id, created_at`
	insertTravisCIConfigQuery = `INSERT INTO travisci_requester_configs(access_token) VALUES ($1) RETURNING id, created_at`
	insertAzureConfigQuery    = `
INSERT INTO azure_devops_requester_configs(access_token, organization_name, project_name)
VALUES ($1, $2, $3) RETURNING id, created_at`
	// repointRequesterQuery clears every requester column and sets at most one in a single statement.
	repointRequesterQuery = `
UPDATE projects
SET requester_circleci_id=$2, requester_travisci_id=$3, requester_azuredevops_id=$4
WHERE id=$1`
)

// SwapRequester persists cfg and points the project at it, dropping any previous requester.
func (p *Postgres) SwapRequester(ctx context.Context, projectID int64, cfg entities.Requester) (*entities.Project, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin swap: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := lockProject(ctx, tx, projectID); err != nil {
		return nil, err
	}

	configID, err := insertRequester(ctx, tx, cfg)
	if err != nil {
		p.log.Errorw("failed to insert requester config", "error", err, "project_id", projectID, "provider", cfg.Provider())
		return nil, err
	}

	var circleID, travisID, azureID *int64
	switch cfg.Provider() {
	case entities.ProviderCircleCI:
		circleID = &configID
	case entities.ProviderTravisCI:
		travisID = &configID
	case entities.ProviderAzureDevOps:
		azureID = &configID
	}

	if _, err := tx.Exec(ctx, repointRequesterQuery, projectID, circleID, travisID, azureID); err != nil {
		p.log.Errorw("failed to repoint project requester", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("repoint requester: %w", err)
	}

	project, err := readProject(ctx, tx, projectID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit swap: %w", err)
	}

	p.log.Infow("requester swapped", "project_id", projectID, "provider", cfg.Provider(), "config_id", configID)
	return project, nil
}

func insertRequester(ctx context.Context, tx pgx.Tx, cfg entities.Requester) (int64, error) {
	var row pgx.Row
	var meta *entities.ConfigMeta

	switch c := cfg.(type) {
	case *entities.CircleCIConfig:
		row = tx.QueryRow(ctx, insertCircleCIConfigQuery, c.AccessToken)
		meta = &c.ConfigMeta
	case *entities.TravisCIConfig:
		row = tx.QueryRow(ctx, insertTravisCIConfigQuery, c.AccessToken)
		meta = &c.ConfigMeta
	case *entities.AzureDevOpsConfig:
		row = tx.QueryRow(ctx, insertAzureConfigQuery, c.AccessToken, c.OrganizationName, c.ProjectName)
		meta = &c.ConfigMeta
	default:
		return 0, fmt.Errorf("%w: %T", entities.ErrUnknownProvider, cfg)
	}

	if err := row.Scan(&meta.ID, &meta.CreatedAt); err != nil {
		return 0, fmt.Errorf("insert %s config: %w", cfg.Provider(), err)
	}
	return meta.ID, nil
}
