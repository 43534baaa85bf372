package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite"

	"github.com/doorap-lab/doorap/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = goerr.New("not found")

// Client is the SQLite-backed repository
type Client struct {
	db *sql.DB

	reminder     *reminderRepository
	maintenance  *maintenanceRepository
	tenant       *tenantRepository
	document     *documentRepository
	property     *propertyRepository
	notification *notificationRepository
	approval     *approvalRepository
	doriAction   *doriActionRepository
	execution    *executionRepository
	emergency    *emergencyRepository
}

var _ interfaces.Repository = &Client{}

// New opens the SQLite database at path and creates missing tables.
// Use ":memory:" for an ephemeral database.
func New(ctx context.Context, path string) (*Client, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	if path == ":memory:" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}
	// modernc sqlite does not support concurrent writers on one connection pool
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to ping sqlite database", goerr.V("path", path))
	}

	c := &Client{db: db}
	if err := c.migrate(ctx); err != nil {
		return nil, err
	}

	c.reminder = &reminderRepository{db: db}
	c.maintenance = &maintenanceRepository{db: db}
	c.tenant = &tenantRepository{db: db}
	c.document = &documentRepository{db: db}
	c.property = &propertyRepository{db: db}
	c.notification = &notificationRepository{db: db}
	c.approval = &approvalRepository{db: db}
	c.doriAction = &doriActionRepository{db: db}
	c.execution = &executionRepository{db: db}
	c.emergency = &emergencyRepository{db: db}

	return c, nil
}

func (c *Client) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reminders (
			id TEXT PRIMARY KEY,
			property_id TEXT NOT NULL,
			task TEXT NOT NULL,
			due_date TEXT NOT NULL,
			frequency TEXT NOT NULL DEFAULT '',
			is_completed INTEGER NOT NULL DEFAULT 0,
			last_completed_date TEXT,
			notes TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS maintenance_requests (
			id TEXT PRIMARY KEY,
			property_id TEXT NOT NULL,
			tenant_id TEXT NOT NULL DEFAULT '',
			issue_title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			reported_date TEXT NOT NULL,
			status TEXT NOT NULL,
			priority TEXT NOT NULL,
			assigned_provider TEXT NOT NULL DEFAULT '',
			quote_amount REAL,
			completion_date TEXT,
			notes TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS tenants (
			id TEXT PRIMARY KEY,
			property_id TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			lease_start_date TEXT,
			lease_end_date TEXT,
			rent_amount REAL,
			notes TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			parent_id TEXT NOT NULL,
			parent_type TEXT NOT NULL,
			name TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT '',
			upload_date TEXT NOT NULL,
			expiry_date TEXT,
			notes TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS properties (
			id TEXT PRIMARY KEY,
			address TEXT NOT NULL,
			postcode TEXT NOT NULL DEFAULT '',
			owner_name TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			message TEXT NOT NULL,
			parent_id TEXT NOT NULL,
			parent_type TEXT NOT NULL,
			date TEXT NOT NULL,
			is_read INTEGER NOT NULL DEFAULT 0,
			link_to TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_notifications_parent_type
			ON notifications (parent_id, type)`,
		`CREATE TABLE IF NOT EXISTS approval_requests (
			id TEXT PRIMARY KEY,
			landlord_id TEXT NOT NULL,
			type TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			amount REAL,
			document_url TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			sent_date TEXT NOT NULL,
			viewed_date TEXT,
			action_date TEXT,
			notes TEXT NOT NULL DEFAULT '',
			maintenance_request_id TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS dori_actions (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL,
			status TEXT NOT NULL,
			confidence_score INTEGER NOT NULL DEFAULT 0,
			suggested_at TEXT NOT NULL,
			related_entity_id TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS dori_executions (
			id TEXT PRIMARY KEY,
			workflow_name TEXT NOT NULL,
			entity_name TEXT NOT NULL DEFAULT '',
			entity_role TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			start_time TEXT NOT NULL,
			steps TEXT NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS emergency_items (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			severity TEXT NOT NULL,
			status TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			related_id TEXT NOT NULL DEFAULT '',
			checklist TEXT
		)`,
	}

	for _, stmt := range stmts {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return goerr.Wrap(err, "failed to run migration", goerr.V("stmt", stmt))
		}
	}
	return nil
}

// Close closes the underlying database
func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) Reminder() interfaces.ReminderRepository         { return c.reminder }
func (c *Client) Maintenance() interfaces.MaintenanceRepository   { return c.maintenance }
func (c *Client) Tenant() interfaces.TenantRepository             { return c.tenant }
func (c *Client) Document() interfaces.DocumentRepository         { return c.document }
func (c *Client) Property() interfaces.PropertyRepository         { return c.property }
func (c *Client) Notification() interfaces.NotificationRepository { return c.notification }
func (c *Client) Approval() interfaces.ApprovalRepository         { return c.approval }
func (c *Client) DoriAction() interfaces.DoriActionRepository     { return c.doriAction }
func (c *Client) Execution() interfaces.ExecutionRepository       { return c.execution }
func (c *Client) Emergency() interfaces.EmergencyRepository       { return c.emergency }

// fmtTime stores timestamps as RFC3339 UTC strings
func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func fmtTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return fmtTime(*t)
}

// parseTime turns a stored timestamp back into time.Time. Malformed values
// map to the zero time so derivation rules treat them as "does not fire".
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseTimePtr(s sql.NullString) *time.Time {
	if !s.Valid {
		return nil
	}
	t := parseTime(s.String)
	return &t
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func floatToDB(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
