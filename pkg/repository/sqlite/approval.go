package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type approvalRepository struct {
	db *sql.DB
}

const approvalColumns = `id, landlord_id, type, title, description, amount, document_url, status, sent_date, viewed_date, action_date, notes, maintenance_request_id`

func scanApproval(row interface{ Scan(...any) error }) (*model.ApprovalRequest, error) {
	var a model.ApprovalRequest
	var typ, status, sent string
	var amount sql.NullFloat64
	var viewed, action sql.NullString
	if err := row.Scan(&a.ID, &a.LandlordID, &typ, &a.Title, &a.Description, &amount,
		&a.DocumentURL, &status, &sent, &viewed, &action, &a.Notes, &a.MaintenanceRequestID); err != nil {
		return nil, err
	}
	a.Type = types.ApprovalType(typ)
	a.Status = types.ApprovalStatus(status)
	a.SentDate = parseTime(sent)
	a.Amount = floatPtr(amount)
	a.ViewedDate = parseTimePtr(viewed)
	a.ActionDate = parseTimePtr(action)
	return &a, nil
}

func (r *approvalRepository) List(ctx context.Context) ([]*model.ApprovalRequest, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+approvalColumns+` FROM approval_requests`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list approval requests")
	}
	defer rows.Close()

	var requests []*model.ApprovalRequest
	for rows.Next() {
		req, err := scanApproval(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan approval request")
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *approvalRepository) Get(ctx context.Context, id types.ID) (*model.ApprovalRequest, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+approvalColumns+` FROM approval_requests WHERE id = ?`, id)
	req, err := scanApproval(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(ErrNotFound, "approval request not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get approval request", goerr.V("id", id))
	}
	return req, nil
}

func (r *approvalRepository) Create(ctx context.Context, req *model.ApprovalRequest) (*model.ApprovalRequest, error) {
	created := *req
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO approval_requests (`+approvalColumns+`) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		created.ID, created.LandlordID, created.Type.String(), created.Title, created.Description,
		floatToDB(created.Amount), created.DocumentURL, created.Status.String(),
		fmtTime(created.SentDate), fmtTimePtr(created.ViewedDate), fmtTimePtr(created.ActionDate),
		created.Notes, created.MaintenanceRequestID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create approval request", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *approvalRepository) Update(ctx context.Context, req *model.ApprovalRequest) (*model.ApprovalRequest, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE approval_requests SET landlord_id=?, type=?, title=?, description=?, amount=?, document_url=?, status=?, sent_date=?, viewed_date=?, action_date=?, notes=?, maintenance_request_id=? WHERE id=?`,
		req.LandlordID, req.Type.String(), req.Title, req.Description, floatToDB(req.Amount),
		req.DocumentURL, req.Status.String(), fmtTime(req.SentDate), fmtTimePtr(req.ViewedDate),
		fmtTimePtr(req.ActionDate), req.Notes, req.MaintenanceRequestID, req.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update approval request", goerr.V("id", req.ID))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, goerr.Wrap(ErrNotFound, "approval request not found", goerr.V("id", req.ID))
	}
	updated := *req
	return &updated, nil
}
