package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type documentRepository struct {
	db *sql.DB
}

const documentColumns = `id, parent_id, parent_type, name, type, upload_date, expiry_date, notes`

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var d model.Document
	var uploaded string
	var expiry sql.NullString
	if err := row.Scan(&d.ID, &d.ParentID, &d.ParentType, &d.Name, &d.Type, &uploaded, &expiry, &d.Notes); err != nil {
		return nil, err
	}
	d.UploadDate = parseTime(uploaded)
	d.ExpiryDate = parseTimePtr(expiry)
	return &d, nil
}

func (r *documentRepository) List(ctx context.Context) ([]*model.Document, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+documentColumns+` FROM documents`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list documents")
	}
	defer rows.Close()

	var docs []*model.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan document")
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *documentRepository) Get(ctx context.Context, id types.ID) (*model.Document, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = ?`, id)
	d, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(ErrNotFound, "document not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get document", goerr.V("id", id))
	}
	return d, nil
}

func (r *documentRepository) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	created := *doc
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (`+documentColumns+`) VALUES (?,?,?,?,?,?,?,?)`,
		created.ID, created.ParentID, created.ParentType, created.Name, created.Type,
		fmtTime(created.UploadDate), fmtTimePtr(created.ExpiryDate), created.Notes)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create document", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *documentRepository) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE documents SET parent_id=?, parent_type=?, name=?, type=?, upload_date=?, expiry_date=?, notes=? WHERE id=?`,
		doc.ParentID, doc.ParentType, doc.Name, doc.Type, fmtTime(doc.UploadDate),
		fmtTimePtr(doc.ExpiryDate), doc.Notes, doc.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update document", goerr.V("id", doc.ID))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, goerr.Wrap(ErrNotFound, "document not found", goerr.V("id", doc.ID))
	}
	updated := *doc
	return &updated, nil
}

func (r *documentRepository) Delete(ctx context.Context, id types.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id=?`, id)
	if err != nil {
		return goerr.Wrap(err, "failed to delete document", goerr.V("id", id))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return goerr.Wrap(ErrNotFound, "document not found", goerr.V("id", id))
	}
	return nil
}
