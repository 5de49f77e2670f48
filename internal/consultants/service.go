package consultants

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for consultants.
type Service struct {
	Repo Repo
}

// CreateInput carries the fields for a new consultant.
type CreateInput struct {
	FirstName  string
	LastName   string
	Email      string
	PracticeID *string
	ManagerID  *string
	Skills     []string
	Languages  []string
}

// Create validates and stores a new consultant.
func (s *Service) Create(ctx context.Context, in CreateInput) (Consultant, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return Consultant{}, fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}

	consultant := Consultant{
		ID:         uuid.NewString(),
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Email:      strings.TrimSpace(in.Email),
		PracticeID: in.PracticeID,
		ManagerID:  in.ManagerID,
		Skills:     in.Skills,
		Languages:  in.Languages,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, consultant); err != nil {
		return Consultant{}, err
	}
	return consultant, nil
}

// Get returns a consultant by id.
func (s *Service) Get(ctx context.Context, id string) (Consultant, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns all consultants.
func (s *Service) List(ctx context.Context) ([]Consultant, error) {
	return s.Repo.List(ctx)
}

// Update validates and replaces a consultant's mutable fields.
func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Consultant, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Consultant{}, err
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return Consultant{}, fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}

	existing.FirstName = strings.TrimSpace(in.FirstName)
	existing.LastName = strings.TrimSpace(in.LastName)
	existing.Email = strings.TrimSpace(in.Email)
	existing.PracticeID = in.PracticeID
	existing.ManagerID = in.ManagerID
	existing.Skills = in.Skills
	existing.Languages = in.Languages

	if err := s.Repo.Update(ctx, existing); err != nil {
		return Consultant{}, err
	}
	return existing, nil
}

// Delete removes a consultant.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// DisplayName resolves a consultant id to its display name. It satisfies the
// document pipeline's directory dependency.
func (s *Service) DisplayName(ctx context.Context, consultantID string) (string, error) {
	consultant, err := s.Repo.GetByID(ctx, consultantID)
	if err != nil {
		return "", err
	}
	return consultant.DisplayName(), nil
}
