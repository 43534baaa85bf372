package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type tenantRepository struct {
	mu      sync.RWMutex
	tenants map[types.ID]*model.Tenant
}

func newTenantRepository() *tenantRepository {
	return &tenantRepository{
		tenants: make(map[types.ID]*model.Tenant),
	}
}

func copyTenant(t *model.Tenant) *model.Tenant {
	copied := *t
	if t.LeaseStartDate != nil {
		d := *t.LeaseStartDate
		copied.LeaseStartDate = &d
	}
	if t.LeaseEndDate != nil {
		d := *t.LeaseEndDate
		copied.LeaseEndDate = &d
	}
	if t.RentAmount != nil {
		v := *t.RentAmount
		copied.RentAmount = &v
	}
	return &copied
}

func (r *tenantRepository) List(ctx context.Context) ([]*model.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tenants := make([]*model.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		tenants = append(tenants, copyTenant(t))
	}
	return tenants, nil
}

func (r *tenantRepository) Get(ctx context.Context, id types.ID) (*model.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.tenants[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "tenant not found", goerr.V("id", id))
	}
	return copyTenant(t), nil
}

func (r *tenantRepository) Create(ctx context.Context, tenant *model.Tenant) (*model.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyTenant(tenant)
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}
	r.tenants[created.ID] = created
	return copyTenant(created), nil
}

func (r *tenantRepository) Update(ctx context.Context, tenant *model.Tenant) (*model.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tenants[tenant.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "tenant not found", goerr.V("id", tenant.ID))
	}
	updated := copyTenant(tenant)
	r.tenants[updated.ID] = updated
	return copyTenant(updated), nil
}

func (r *tenantRepository) Delete(ctx context.Context, id types.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tenants[id]; !exists {
		return goerr.Wrap(ErrNotFound, "tenant not found", goerr.V("id", id))
	}
	delete(r.tenants, id)
	return nil
}
