package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type propertyRepository struct {
	mu         sync.RWMutex
	properties map[types.ID]*model.Property
}

func newPropertyRepository() *propertyRepository {
	return &propertyRepository{
		properties: make(map[types.ID]*model.Property),
	}
}

func copyProperty(p *model.Property) *model.Property {
	copied := *p
	return &copied
}

func (r *propertyRepository) List(ctx context.Context) ([]*model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	properties := make([]*model.Property, 0, len(r.properties))
	for _, p := range r.properties {
		properties = append(properties, copyProperty(p))
	}
	return properties, nil
}

func (r *propertyRepository) Get(ctx context.Context, id types.ID) (*model.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.properties[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "property not found", goerr.V("id", id))
	}
	return copyProperty(p), nil
}

func (r *propertyRepository) Create(ctx context.Context, property *model.Property) (*model.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyProperty(property)
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}
	r.properties[created.ID] = created
	return copyProperty(created), nil
}
