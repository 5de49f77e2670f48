// Package managers manages the business managers who supervise consultants.
package managers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("manager not found")
	ErrInvalidInput = errors.New("invalid manager input")
)

// Manager is a business manager.
type Manager struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
}

// DisplayName returns the manager's full name.
func (m Manager) DisplayName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// Repo abstracts persistence for managers.
type Repo interface {
	Create(ctx context.Context, manager Manager) error
	GetByID(ctx context.Context, id string) (Manager, error)
	GetByEmail(ctx context.Context, email string) (Manager, error)
	List(ctx context.Context) ([]Manager, error)
	Update(ctx context.Context, manager Manager) error
	Delete(ctx context.Context, id string) error
}

const managerColumns = `id, first_name, last_name, email, created_at`

// PGRepo is the Postgres implementation of Repo.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, manager Manager) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO managers (id, first_name, last_name, email, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, manager.ID, manager.FirstName, manager.LastName, manager.Email, manager.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert manager: %w", err)
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Manager, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+managerColumns+` FROM managers WHERE id = $1
	`, id)
	return scanManager(row)
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (Manager, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+managerColumns+` FROM managers WHERE lower(email) = lower($1)
	`, email)
	return scanManager(row)
}

func (r *PGRepo) List(ctx context.Context) ([]Manager, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+managerColumns+` FROM managers ORDER BY last_name ASC, first_name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	defer rows.Close()

	var out []Manager
	for rows.Next() {
		manager, err := scanManager(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, manager)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, manager Manager) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE managers SET first_name = $2, last_name = $3, email = $4 WHERE id = $1
	`, manager.ID, manager.FirstName, manager.LastName, manager.Email)
	if err != nil {
		return fmt.Errorf("update manager: %w", err)
	}
	return requireRow(res)
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM managers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete manager: %w", err)
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanManager(row rowScanner) (Manager, error) {
	var manager Manager
	err := row.Scan(&manager.ID, &manager.FirstName, &manager.LastName, &manager.Email, &manager.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Manager{}, ErrNotFound
	}
	if err != nil {
		return Manager{}, fmt.Errorf("scan manager: %w", err)
	}
	return manager, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Manager
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Manager)}
}

func (r *MemoryRepo) Create(ctx context.Context, manager Manager) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[manager.ID] = manager
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Manager, error) {
	if err := ctx.Err(); err != nil {
		return Manager{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	manager, ok := r.data[id]
	if !ok {
		return Manager{}, ErrNotFound
	}
	return manager, nil
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (Manager, error) {
	if err := ctx.Err(); err != nil {
		return Manager{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, manager := range r.data {
		if strings.EqualFold(manager.Email, email) {
			return manager, nil
		}
	}
	return Manager{}, ErrNotFound
}

func (r *MemoryRepo) List(ctx context.Context) ([]Manager, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Manager, 0, len(r.data))
	for _, manager := range r.data {
		out = append(out, manager)
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

func (r *MemoryRepo) Update(ctx context.Context, manager Manager) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[manager.ID]; !ok {
		return ErrNotFound
	}
	r.data[manager.ID] = manager
	return nil
}

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

var (
	_ Repo = (*PGRepo)(nil)
	_ Repo = (*MemoryRepo)(nil)
)

// Service contains business logic for managers.
type Service struct {
	Repo Repo
}

// CreateInput carries the fields for a new or updated manager.
type CreateInput struct {
	FirstName string
	LastName  string
	Email     string
}

func (in CreateInput) validate() error {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Manager, error) {
	if err := in.validate(); err != nil {
		return Manager{}, err
	}
	manager := Manager{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, manager); err != nil {
		return Manager{}, err
	}
	return manager, nil
}

func (s *Service) Get(ctx context.Context, id string) (Manager, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetByEmail looks a manager up by email, case-insensitively. Used by the
// auth flow to map a Google identity to a manager account.
func (s *Service) GetByEmail(ctx context.Context, email string) (Manager, error) {
	return s.Repo.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]Manager, error) {
	return s.Repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Manager, error) {
	manager, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Manager{}, err
	}
	if err := in.validate(); err != nil {
		return Manager{}, err
	}
	manager.FirstName = strings.TrimSpace(in.FirstName)
	manager.LastName = strings.TrimSpace(in.LastName)
	manager.Email = strings.TrimSpace(in.Email)
	if err := s.Repo.Update(ctx, manager); err != nil {
		return Manager{}, err
	}
	return manager, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
