package documents

import "context"

// DocumentsRepo defines persistence operations for document records.
// Lookups return ErrNotFound on a miss; mutations return ErrNotFound when
// the id does not resolve to an existing record.
type DocumentsRepo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, id string) (Document, error)
	ListByConsultant(ctx context.Context, consultantID string) ([]Document, error)
	LatestCV(ctx context.Context, consultantID string) (Document, error)
	UpdateAnalysis(ctx context.Context, id string, analysis *string) error
	Rename(ctx context.Context, id, fileName string, description *string) error
	Delete(ctx context.Context, id string) error
}
