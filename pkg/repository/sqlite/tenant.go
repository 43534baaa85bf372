package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type tenantRepository struct {
	db *sql.DB
}

const tenantColumns = `id, property_id, name, email, phone, lease_start_date, lease_end_date, rent_amount, notes`

func scanTenant(row interface{ Scan(...any) error }) (*model.Tenant, error) {
	var t model.Tenant
	var leaseStart, leaseEnd sql.NullString
	var rent sql.NullFloat64
	if err := row.Scan(&t.ID, &t.PropertyID, &t.Name, &t.Email, &t.Phone, &leaseStart, &leaseEnd, &rent, &t.Notes); err != nil {
		return nil, err
	}
	t.LeaseStartDate = parseTimePtr(leaseStart)
	t.LeaseEndDate = parseTimePtr(leaseEnd)
	t.RentAmount = floatPtr(rent)
	return &t, nil
}

func (r *tenantRepository) List(ctx context.Context) ([]*model.Tenant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+tenantColumns+` FROM tenants`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tenants")
	}
	defer rows.Close()

	var tenants []*model.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan tenant")
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

func (r *tenantRepository) Get(ctx context.Context, id types.ID) (*model.Tenant, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+tenantColumns+` FROM tenants WHERE id = ?`, id)
	t, err := scanTenant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(ErrNotFound, "tenant not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get tenant", goerr.V("id", id))
	}
	return t, nil
}

func (r *tenantRepository) Create(ctx context.Context, tenant *model.Tenant) (*model.Tenant, error) {
	created := *tenant
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tenants (`+tenantColumns+`) VALUES (?,?,?,?,?,?,?,?,?)`,
		created.ID, created.PropertyID, created.Name, created.Email, created.Phone,
		fmtTimePtr(created.LeaseStartDate), fmtTimePtr(created.LeaseEndDate),
		floatToDB(created.RentAmount), created.Notes)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create tenant", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *tenantRepository) Update(ctx context.Context, tenant *model.Tenant) (*model.Tenant, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tenants SET property_id=?, name=?, email=?, phone=?, lease_start_date=?, lease_end_date=?, rent_amount=?, notes=? WHERE id=?`,
		tenant.PropertyID, tenant.Name, tenant.Email, tenant.Phone,
		fmtTimePtr(tenant.LeaseStartDate), fmtTimePtr(tenant.LeaseEndDate),
		floatToDB(tenant.RentAmount), tenant.Notes, tenant.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update tenant", goerr.V("id", tenant.ID))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, goerr.Wrap(ErrNotFound, "tenant not found", goerr.V("id", tenant.ID))
	}
	updated := *tenant
	return &updated, nil
}

func (r *tenantRepository) Delete(ctx context.Context, id types.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tenants WHERE id=?`, id)
	if err != nil {
		return goerr.Wrap(err, "failed to delete tenant", goerr.V("id", id))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return goerr.Wrap(ErrNotFound, "tenant not found", goerr.V("id", id))
	}
	return nil
}
