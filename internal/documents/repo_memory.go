package documents

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of DocumentsRepo, used when no
// database is configured and in tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Document // consultantID -> documents
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Document),
	}
}

// Create stores a new document record for a consultant.
func (r *MemoryRepo) Create(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[doc.ConsultantID] = append(r.data[doc.ConsultantID], cloneDocument(doc))
	return nil
}

// GetByID returns a document record by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, docs := range r.data {
		for i := range docs {
			if docs[i].ID == id {
				return cloneDocument(docs[i]), nil
			}
		}
	}
	return Document{}, ErrNotFound
}

// ListByConsultant returns documents for a consultant, newest first.
func (r *MemoryRepo) ListByConsultant(ctx context.Context, consultantID string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	source := r.data[consultantID]
	docs := make([]Document, 0, len(source))
	for i := range source {
		docs = append(docs, cloneDocument(source[i]))
	}
	r.mu.RUnlock()

	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].UploadedAt.After(docs[j].UploadedAt)
	})
	return docs, nil
}

// LatestCV returns the most recent record of type cv for a consultant.
func (r *MemoryRepo) LatestCV(ctx context.Context, consultantID string) (Document, error) {
	docs, err := r.ListByConsultant(ctx, consultantID)
	if err != nil {
		return Document{}, err
	}
	for _, doc := range docs {
		if doc.DocType == TypeCV {
			return doc, nil
		}
	}
	return Document{}, ErrNotFound
}

// UpdateAnalysis replaces the stored analysis payload wholesale.
func (r *MemoryRepo) UpdateAnalysis(ctx context.Context, id string, analysis *string) error {
	return r.update(ctx, id, func(doc *Document) {
		if analysis == nil {
			doc.Analysis = nil
			return
		}
		payload := *analysis
		doc.Analysis = &payload
	})
}

// Rename updates file name and description only.
func (r *MemoryRepo) Rename(ctx context.Context, id, fileName string, description *string) error {
	return r.update(ctx, id, func(doc *Document) {
		doc.FileName = fileName
		if description == nil {
			doc.Description = ""
		} else {
			doc.Description = *description
		}
	})
}

// Delete removes the record.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for consultantID, docs := range r.data {
		for i := range docs {
			if docs[i].ID == id {
				r.data[consultantID] = append(docs[:i:i], docs[i+1:]...)
				return nil
			}
		}
	}
	return ErrNotFound
}

func (r *MemoryRepo) update(ctx context.Context, id string, apply func(*Document)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for consultantID, docs := range r.data {
		for i := range docs {
			if docs[i].ID == id {
				apply(&docs[i])
				r.data[consultantID] = docs
				return nil
			}
		}
	}
	return ErrNotFound
}

func cloneDocument(doc Document) Document {
	if doc.Analysis != nil {
		payload := *doc.Analysis
		doc.Analysis = &payload
	}
	return doc
}

var _ DocumentsRepo = (*MemoryRepo)(nil)
