package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type reminderRepository struct {
	db *sql.DB
}

const reminderColumns = `id, property_id, task, due_date, frequency, is_completed, last_completed_date, notes`

func scanReminder(row interface{ Scan(...any) error }) (*model.Reminder, error) {
	var r model.Reminder
	var dueDate string
	var lastCompleted sql.NullString
	if err := row.Scan(&r.ID, &r.PropertyID, &r.Task, &dueDate, &r.Frequency, &r.IsCompleted, &lastCompleted, &r.Notes); err != nil {
		return nil, err
	}
	r.DueDate = parseTime(dueDate)
	r.LastCompletedDate = parseTimePtr(lastCompleted)
	return &r, nil
}

func (r *reminderRepository) List(ctx context.Context) ([]*model.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+reminderColumns+` FROM reminders`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list reminders")
	}
	defer rows.Close()

	var reminders []*model.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan reminder")
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

func (r *reminderRepository) Get(ctx context.Context, id types.ID) (*model.Reminder, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reminderColumns+` FROM reminders WHERE id = ?`, id)
	reminder, err := scanReminder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(ErrNotFound, "reminder not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get reminder", goerr.V("id", id))
	}
	return reminder, nil
}

func (r *reminderRepository) Create(ctx context.Context, reminder *model.Reminder) (*model.Reminder, error) {
	created := *reminder
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reminders (`+reminderColumns+`) VALUES (?,?,?,?,?,?,?,?)`,
		created.ID, created.PropertyID, created.Task, fmtTime(created.DueDate),
		created.Frequency, created.IsCompleted, fmtTimePtr(created.LastCompletedDate), created.Notes)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create reminder", goerr.V("id", created.ID))
	}
	return &created, nil
}

func (r *reminderRepository) Update(ctx context.Context, reminder *model.Reminder) (*model.Reminder, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reminders SET property_id=?, task=?, due_date=?, frequency=?, is_completed=?, last_completed_date=?, notes=? WHERE id=?`,
		reminder.PropertyID, reminder.Task, fmtTime(reminder.DueDate), reminder.Frequency,
		reminder.IsCompleted, fmtTimePtr(reminder.LastCompletedDate), reminder.Notes, reminder.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update reminder", goerr.V("id", reminder.ID))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, goerr.Wrap(ErrNotFound, "reminder not found", goerr.V("id", reminder.ID))
	}
	updated := *reminder
	return &updated, nil
}

func (r *reminderRepository) Delete(ctx context.Context, id types.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id=?`, id)
	if err != nil {
		return goerr.Wrap(err, "failed to delete reminder", goerr.V("id", id))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return goerr.Wrap(ErrNotFound, "reminder not found", goerr.V("id", id))
	}
	return nil
}
