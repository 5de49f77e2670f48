package consultants

import "context"

// Repo defines persistence operations for consultants.
type Repo interface {
	Create(ctx context.Context, consultant Consultant) error
	GetByID(ctx context.Context, id string) (Consultant, error)
	List(ctx context.Context) ([]Consultant, error)
	Update(ctx context.Context, consultant Consultant) error
	Delete(ctx context.Context, id string) error
}
