package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type notificationRepository struct {
	db *sql.DB
}

const notificationColumns = `id, type, message, parent_id, parent_type, date, is_read, link_to`

func scanNotification(row interface{ Scan(...any) error }) (*model.Notification, error) {
	var n model.Notification
	var typ, parentType, date string
	if err := row.Scan(&n.ID, &typ, &n.Message, &n.ParentID, &parentType, &date, &n.IsRead, &n.LinkTo); err != nil {
		return nil, err
	}
	n.Type = types.NotificationType(typ)
	n.ParentType = types.ParentType(parentType)
	n.Date = parseTime(date)
	return &n, nil
}

// List returns the feed sorted descending by date
func (r *notificationRepository) List(ctx context.Context) ([]*model.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+notificationColumns+` FROM notifications ORDER BY date DESC`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notifications")
	}
	defer rows.Close()

	var notifications []*model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan notification")
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepository) Get(ctx context.Context, id types.ID) (*model.Notification, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = ?`, id)
	n, err := scanNotification(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(ErrNotFound, "notification not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get notification", goerr.V("id", id))
	}
	return n, nil
}

func (r *notificationRepository) Put(ctx context.Context, notification *model.Notification) error {
	stored := *notification
	if stored.ID.IsEmpty() {
		stored.ID = types.NewID()
	}

	// The unique (parent_id, type) index backs the one-live-notification
	// invariant; replace on conflict so a racing duplicate key wins last.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (`+notificationColumns+`) VALUES (?,?,?,?,?,?,?,?)
		ON CONFLICT(parent_id, type) DO UPDATE SET
			id=excluded.id, message=excluded.message, date=excluded.date,
			is_read=excluded.is_read, link_to=excluded.link_to`,
		stored.ID, stored.Type.String(), stored.Message, stored.ParentID,
		stored.ParentType.String(), fmtTime(stored.Date), stored.IsRead, stored.LinkTo)
	if err != nil {
		return goerr.Wrap(err, "failed to put notification", goerr.V("id", stored.ID))
	}
	return nil
}

func (r *notificationRepository) Update(ctx context.Context, notification *model.Notification) (*model.Notification, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET type=?, message=?, parent_id=?, parent_type=?, date=?, is_read=?, link_to=? WHERE id=?`,
		notification.Type.String(), notification.Message, notification.ParentID,
		notification.ParentType.String(), fmtTime(notification.Date), notification.IsRead,
		notification.LinkTo, notification.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update notification", goerr.V("id", notification.ID))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, goerr.Wrap(ErrNotFound, "notification not found", goerr.V("id", notification.ID))
	}
	updated := *notification
	return &updated, nil
}

func (r *notificationRepository) DeleteByKey(ctx context.Context, key model.NotificationKey) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE parent_id=? AND type=?`,
		key.ParentID, key.Type.String())
	if err != nil {
		return goerr.Wrap(err, "failed to delete notification by key",
			goerr.V("parentID", key.ParentID), goerr.V("type", key.Type))
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read=1`); err != nil {
		return goerr.Wrap(err, "failed to mark all notifications read")
	}
	return nil
}

func (r *notificationRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notifications`); err != nil {
		return goerr.Wrap(err, "failed to clear notifications")
	}
	return nil
}
