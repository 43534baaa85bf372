package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type doriActionRepository struct {
	db *sql.DB
}

const doriActionColumns = `id, title, description, type, status, confidence_score, suggested_at, related_entity_id`

func scanDoriAction(row interface{ Scan(...any) error }) (*model.DoriAction, error) {
	var a model.DoriAction
	var typ, status, suggested string
	if err := row.Scan(&a.ID, &a.Title, &a.Description, &typ, &status, &a.ConfidenceScore, &suggested, &a.RelatedEntityID); err != nil {
		return nil, err
	}
	a.Type = types.ActionType(typ)
	a.Status = types.ActionStatus(status)
	a.SuggestedAt = parseTime(suggested)
	return &a, nil
}

func (r *doriActionRepository) List(ctx context.Context) ([]*model.DoriAction, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+doriActionColumns+` FROM dori_actions`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list dori actions")
	}
	defer rows.Close()

	var actions []*model.DoriAction
	for rows.Next() {
		a, err := scanDoriAction(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan dori action")
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

func (r *doriActionRepository) Get(ctx context.Context, id types.ID) (*model.DoriAction, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+doriActionColumns+` FROM dori_actions WHERE id = ?`, id)
	a, err := scanDoriAction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(ErrNotFound, "dori action not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get dori action", goerr.V("id", id))
	}
	return a, nil
}

func (r *doriActionRepository) Create(ctx context.Context, action *model.DoriAction) (*model.DoriAction, error) {
	created := *action
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dori_actions (`+doriActionColumns+`) VALUES (?,?,?,?,?,?,?,?)`,
		created.ID, created.Title, created.Description, created.Type.String(),
		created.Status.String(), created.ConfidenceScore, fmtTime(created.SuggestedAt), created.RelatedEntityID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create dori action", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *doriActionRepository) Update(ctx context.Context, action *model.DoriAction) (*model.DoriAction, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE dori_actions SET title=?, description=?, type=?, status=?, confidence_score=?, suggested_at=?, related_entity_id=? WHERE id=?`,
		action.Title, action.Description, action.Type.String(), action.Status.String(),
		action.ConfidenceScore, fmtTime(action.SuggestedAt), action.RelatedEntityID, action.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update dori action", goerr.V("id", action.ID))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, goerr.Wrap(ErrNotFound, "dori action not found", goerr.V("id", action.ID))
	}
	updated := *action
	return &updated, nil
}
