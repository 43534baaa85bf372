package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type maintenanceRepository struct {
	db *sql.DB
}

const maintenanceColumns = `id, property_id, tenant_id, issue_title, description, reported_date, status, priority, assigned_provider, quote_amount, completion_date, notes`

func scanMaintenance(row interface{ Scan(...any) error }) (*model.MaintenanceRequest, error) {
	var m model.MaintenanceRequest
	var reported string
	var status, priority string
	var quote sql.NullFloat64
	var completion sql.NullString
	if err := row.Scan(&m.ID, &m.PropertyID, &m.TenantID, &m.IssueTitle, &m.Description,
		&reported, &status, &priority, &m.AssignedProvider, &quote, &completion, &m.Notes); err != nil {
		return nil, err
	}
	m.ReportedDate = parseTime(reported)
	m.Status = types.MaintenanceStatus(status)
	m.Priority = types.MaintenancePriority(priority)
	m.QuoteAmount = floatPtr(quote)
	m.CompletionDate = parseTimePtr(completion)
	return &m, nil
}

func (r *maintenanceRepository) List(ctx context.Context) ([]*model.MaintenanceRequest, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_requests`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list maintenance requests")
	}
	defer rows.Close()

	var requests []*model.MaintenanceRequest
	for rows.Next() {
		req, err := scanMaintenance(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan maintenance request")
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *maintenanceRepository) Get(ctx context.Context, id types.ID) (*model.MaintenanceRequest, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE id = ?`, id)
	req, err := scanMaintenance(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(ErrNotFound, "maintenance request not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get maintenance request", goerr.V("id", id))
	}
	return req, nil
}

func (r *maintenanceRepository) Create(ctx context.Context, req *model.MaintenanceRequest) (*model.MaintenanceRequest, error) {
	created := *req
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO maintenance_requests (`+maintenanceColumns+`) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		created.ID, created.PropertyID, created.TenantID, created.IssueTitle, created.Description,
		fmtTime(created.ReportedDate), created.Status.String(), created.Priority.String(),
		created.AssignedProvider, floatToDB(created.QuoteAmount), fmtTimePtr(created.CompletionDate), created.Notes)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create maintenance request", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, req *model.MaintenanceRequest) (*model.MaintenanceRequest, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE maintenance_requests SET property_id=?, tenant_id=?, issue_title=?, description=?, reported_date=?, status=?, priority=?, assigned_provider=?, quote_amount=?, completion_date=?, notes=? WHERE id=?`,
		req.PropertyID, req.TenantID, req.IssueTitle, req.Description, fmtTime(req.ReportedDate),
		req.Status.String(), req.Priority.String(), req.AssignedProvider,
		floatToDB(req.QuoteAmount), fmtTimePtr(req.CompletionDate), req.Notes, req.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update maintenance request", goerr.V("id", req.ID))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, goerr.Wrap(ErrNotFound, "maintenance request not found", goerr.V("id", req.ID))
	}
	updated := *req
	return &updated, nil
}

func (r *maintenanceRepository) Delete(ctx context.Context, id types.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_requests WHERE id=?`, id)
	if err != nil {
		return goerr.Wrap(err, "failed to delete maintenance request", goerr.V("id", id))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return goerr.Wrap(ErrNotFound, "maintenance request not found", goerr.V("id", id))
	}
	return nil
}
