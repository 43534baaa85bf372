package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type propertyRepository struct {
	db *sql.DB
}

func (r *propertyRepository) List(ctx context.Context) ([]*model.Property, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, address, postcode, owner_name FROM properties`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list properties")
	}
	defer rows.Close()

	var properties []*model.Property
	for rows.Next() {
		var p model.Property
		if err := rows.Scan(&p.ID, &p.Address, &p.Postcode, &p.OwnerName); err != nil {
			return nil, goerr.Wrap(err, "failed to scan property")
		}
		properties = append(properties, &p)
	}
	return properties, rows.Err()
}

func (r *propertyRepository) Get(ctx context.Context, id types.ID) (*model.Property, error) {
	var p model.Property
	err := r.db.QueryRowContext(ctx, `SELECT id, address, postcode, owner_name FROM properties WHERE id=?`, id).
		Scan(&p.ID, &p.Address, &p.Postcode, &p.OwnerName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(ErrNotFound, "property not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get property", goerr.V("id", id))
	}
	return &p, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *model.Property) (*model.Property, error) {
	created := *property
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO properties (id, address, postcode, owner_name) VALUES (?,?,?,?)`,
		created.ID, created.Address, created.Postcode, created.OwnerName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create property", goerr.V("id", created.ID))
	}
	return &created, nil
}
