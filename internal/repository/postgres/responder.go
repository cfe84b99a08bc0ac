package postgres

import (
	"context"
	"errors"
	"fmt"

	"release-config-exchange/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	deleteLinkersQuery       = `DELETE FROM slack_responder_linkers WHERE project_id=$1`
	insertLinkerQuery        = `INSERT INTO slack_responder_linkers(id, project_id) VALUES ($1, $2) RETURNING created_at`
	selectResponderForUpdate = `SELECT responder_slack_id FROM projects WHERE id=$1 FOR UPDATE`
	updateMentionQuery       = `UPDATE slack_responder_configs SET username_to_mention=$2 WHERE id=$1`
)

// ReplaceLinker destroys the project's pending linker and issues a new one.
// Readers keep seeing the old linker until the transaction commits.
func (p *Postgres) ReplaceLinker(ctx context.Context, projectID int64) (*entities.SlackResponderLinker, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin relink: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := lockProject(ctx, tx, projectID); err != nil {
		return nil, err
	}

	tag, err := tx.Exec(ctx, deleteLinkersQuery, projectID)
	if err != nil {
		p.log.Errorw("failed to delete linkers", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("delete linkers: %w", err)
	}

	linker := entities.SlackResponderLinker{ID: uuid.New(), ProjectID: projectID}
	if err := tx.QueryRow(ctx, insertLinkerQuery, linker.ID, projectID).Scan(&linker.CreatedAt); err != nil {
		p.log.Errorw("failed to insert linker", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("insert linker: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit relink: %w", err)
	}

	p.log.Infow("responder linker replaced", "project_id", projectID, "linker_id", linker.ID, "replaced", tag.RowsAffected())
	return &linker, nil
}

// UpdateMention changes the user mentioned by the project's Slack responder in place.
func (p *Postgres) UpdateMention(ctx context.Context, projectID int64, username string) (*entities.Project, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin mention update: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var responderID *int64
	if err := tx.QueryRow(ctx, selectResponderForUpdate, projectID).Scan(&responderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get responder: %w", err)
	}
	if responderID == nil {
		return nil, entities.ErrNotConfigured
	}

	if _, err := tx.Exec(ctx, updateMentionQuery, *responderID, username); err != nil {
		p.log.Errorw("failed to update mention", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("update mention: %w", err)
	}

	project, err := readProject(ctx, tx, projectID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit mention update: %w", err)
	}

	p.log.Infow("responder mention updated", "project_id", projectID, "responder_id", *responderID)
	return project, nil
}
