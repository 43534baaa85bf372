package usecase

import (
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/doorap-lab/doorap/pkg/domain/interfaces"
)

const (
	defaultLeaseExpiryWindow    = 60 * 24 * time.Hour
	defaultDocumentExpiryWindow = 30 * 24 * time.Hour
)

// UseCases provides the application logic of the alerting and workflow
// engine on top of a repository and an optional checklist generator.
type UseCases struct {
	repo      interfaces.Repository
	generator interfaces.ChecklistGenerator
	now       func() time.Time

	leaseExpiryWindow    time.Duration
	documentExpiryWindow time.Duration

	checklistFlights singleflight.Group
}

type Option func(*UseCases)

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(u *UseCases) {
		u.now = now
	}
}

// WithChecklistGenerator enables AI checklist generation for emergencies
func WithChecklistGenerator(gen interfaces.ChecklistGenerator) Option {
	return func(u *UseCases) {
		u.generator = gen
	}
}

// WithLeaseExpiryWindow overrides the lease expiry look-ahead window
func WithLeaseExpiryWindow(d time.Duration) Option {
	return func(u *UseCases) {
		u.leaseExpiryWindow = d
	}
}

// WithDocumentExpiryWindow overrides the document expiry look-ahead window
func WithDocumentExpiryWindow(d time.Duration) Option {
	return func(u *UseCases) {
		u.documentExpiryWindow = d
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:                 repo,
		now:                  time.Now,
		leaseExpiryWindow:    defaultLeaseExpiryWindow,
		documentExpiryWindow: defaultDocumentExpiryWindow,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Repository exposes the underlying repository for read-only access from
// the controller layer.
func (u *UseCases) Repository() interfaces.Repository {
	return u.repo
}
