package consultants

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Consultant
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Consultant)}
}

// Create stores a new consultant.
func (r *MemoryRepo) Create(ctx context.Context, consultant Consultant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[consultant.ID] = cloneConsultant(consultant)
	return nil
}

// GetByID returns a consultant by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Consultant, error) {
	if err := ctx.Err(); err != nil {
		return Consultant{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	consultant, ok := r.data[id]
	if !ok {
		return Consultant{}, ErrNotFound
	}
	return cloneConsultant(consultant), nil
}

// List returns all consultants ordered by last name.
func (r *MemoryRepo) List(ctx context.Context) ([]Consultant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Consultant, 0, len(r.data))
	for _, consultant := range r.data {
		out = append(out, cloneConsultant(consultant))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

// Update replaces an existing consultant.
func (r *MemoryRepo) Update(ctx context.Context, consultant Consultant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[consultant.ID]; !ok {
		return ErrNotFound
	}
	r.data[consultant.ID] = cloneConsultant(consultant)
	return nil
}

// Delete removes a consultant.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func cloneConsultant(c Consultant) Consultant {
	if c.PracticeID != nil {
		v := *c.PracticeID
		c.PracticeID = &v
	}
	if c.ManagerID != nil {
		v := *c.ManagerID
		c.ManagerID = &v
	}
	c.Skills = append([]string(nil), c.Skills...)
	c.Languages = append([]string(nil), c.Languages...)
	return c
}

var _ Repo = (*MemoryRepo)(nil)
