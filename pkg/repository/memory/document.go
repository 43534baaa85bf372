package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/doorap-lab/doorap/pkg/domain/model"
	"github.com/doorap-lab/doorap/pkg/domain/types"
)

type documentRepository struct {
	mu        sync.RWMutex
	documents map[types.ID]*model.Document
}

func newDocumentRepository() *documentRepository {
	return &documentRepository{
		documents: make(map[types.ID]*model.Document),
	}
}

func copyDocument(d *model.Document) *model.Document {
	copied := *d
	if d.ExpiryDate != nil {
		t := *d.ExpiryDate
		copied.ExpiryDate = &t
	}
	return &copied
}

func (r *documentRepository) List(ctx context.Context) ([]*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]*model.Document, 0, len(r.documents))
	for _, d := range r.documents {
		docs = append(docs, copyDocument(d))
	}
	return docs, nil
}

func (r *documentRepository) Get(ctx context.Context, id types.ID) (*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.documents[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "document not found", goerr.V("id", id))
	}
	return copyDocument(d), nil
}

func (r *documentRepository) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyDocument(doc)
	if created.ID.IsEmpty() {
		created.ID = types.NewID()
	}
	r.documents[created.ID] = created
	return copyDocument(created), nil
}

func (r *documentRepository) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.documents[doc.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "document not found", goerr.V("id", doc.ID))
	}
	updated := copyDocument(doc)
	r.documents[updated.ID] = updated
	return copyDocument(updated), nil
}

func (r *documentRepository) Delete(ctx context.Context, id types.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.documents[id]; !exists {
		return goerr.Wrap(ErrNotFound, "document not found", goerr.V("id", id))
	}
	delete(r.documents, id)
	return nil
}
