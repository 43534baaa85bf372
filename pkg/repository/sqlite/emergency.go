package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type emergencyRepository struct {
	db *sql.DB
}

const emergencyColumns = `id, title, description, severity, status, timestamp, related_id, checklist`

type checklistItemRecord struct {
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// encodeChecklist keeps the nil/non-nil distinction: NULL in the column
// means the checklist was never generated.
func encodeChecklist(items []model.ChecklistItem) (any, error) {
	if items == nil {
		return nil, nil
	}
	records := make([]checklistItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, checklistItemRecord{Label: item.Label, Checked: item.Checked})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode checklist")
	}
	return string(raw), nil
}

func decodeChecklist(raw sql.NullString) ([]model.ChecklistItem, error) {
	if !raw.Valid {
		return nil, nil
	}
	var records []checklistItemRecord
	if err := json.Unmarshal([]byte(raw.String), &records); err != nil {
		return nil, goerr.Wrap(err, "failed to decode checklist")
	}
	items := make([]model.ChecklistItem, 0, len(records))
	for _, r := range records {
		items = append(items, model.ChecklistItem{Label: r.Label, Checked: r.Checked})
	}
	return items, nil
}

func scanEmergency(row interface{ Scan(...any) error }) (*model.EmergencyItem, error) {
	var e model.EmergencyItem
	var severity, status, timestamp string
	var checklist sql.NullString
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &severity, &status, &timestamp, &e.RelatedID, &checklist); err != nil {
		return nil, err
	}
	e.Severity = types.Severity(severity)
	e.Status = types.IncidentStatus(status)
	e.Timestamp = parseTime(timestamp)
	items, err := decodeChecklist(checklist)
	if err != nil {
		return nil, err
	}
	e.Checklist = items
	return &e, nil
}

func (r *emergencyRepository) List(ctx context.Context) ([]*model.EmergencyItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+emergencyColumns+` FROM emergency_items`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list emergency items")
	}
	defer rows.Close()

	var items []*model.EmergencyItem
	for rows.Next() {
		item, err := scanEmergency(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan emergency item")
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *emergencyRepository) Get(ctx context.Context, id types.ID) (*model.EmergencyItem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+emergencyColumns+` FROM emergency_items WHERE id = ?`, id)
	item, err := scanEmergency(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(ErrNotFound, "emergency item not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get emergency item", goerr.V("id", id))
	}
	return item, nil
}

func (r *emergencyRepository) Create(ctx context.Context, item *model.EmergencyItem) (*model.EmergencyItem, error) {
	created := *item
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}

	checklist, err := encodeChecklist(created.Checklist)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO emergency_items (`+emergencyColumns+`) VALUES (?,?,?,?,?,?,?,?)`,
		created.ID, created.Title, created.Description, created.Severity.String(),
		created.Status.String(), fmtTime(created.Timestamp), created.RelatedID, checklist)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create emergency item", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *emergencyRepository) Update(ctx context.Context, item *model.EmergencyItem) (*model.EmergencyItem, error) {
	checklist, err := encodeChecklist(item.Checklist)
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE emergency_items SET title=?, description=?, severity=?, status=?, timestamp=?, related_id=?, checklist=? WHERE id=?`,
		item.Title, item.Description, item.Severity.String(), item.Status.String(),
		fmtTime(item.Timestamp), item.RelatedID, checklist, item.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update emergency item", goerr.V("id", item.ID))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, goerr.Wrap(ErrNotFound, "emergency item not found", goerr.V("id", item.ID))
	}
	updated := *item
	return &updated, nil
}
