// Package practices manages the consulting practices consultants belong to.
package practices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("practice not found")
	ErrInvalidInput = errors.New("invalid practice input")
)

// Practice is a consulting practice (e.g. Data, Cloud).
type Practice struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// Repo abstracts persistence for practices.
type Repo interface {
	Create(ctx context.Context, practice Practice) error
	GetByID(ctx context.Context, id string) (Practice, error)
	List(ctx context.Context) ([]Practice, error)
	Update(ctx context.Context, practice Practice) error
	Delete(ctx context.Context, id string) error
}

// PGRepo is the Postgres implementation of Repo.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, practice Practice) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO practices (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`, practice.ID, practice.Name, nullString(practice.Description), practice.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert practice: %w", err)
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Practice, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, name, description, created_at FROM practices WHERE id = $1
	`, id)
	return scanPractice(row)
}

func (r *PGRepo) List(ctx context.Context) ([]Practice, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, description, created_at FROM practices ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list practices: %w", err)
	}
	defer rows.Close()

	var out []Practice
	for rows.Next() {
		practice, err := scanPractice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, practice)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, practice Practice) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE practices SET name = $2, description = $3 WHERE id = $1
	`, practice.ID, practice.Name, nullString(practice.Description))
	if err != nil {
		return fmt.Errorf("update practice: %w", err)
	}
	return requireRow(res)
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM practices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete practice: %w", err)
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPractice(row rowScanner) (Practice, error) {
	var (
		practice    Practice
		description sql.NullString
	)
	err := row.Scan(&practice.ID, &practice.Name, &description, &practice.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Practice{}, ErrNotFound
	}
	if err != nil {
		return Practice{}, fmt.Errorf("scan practice: %w", err)
	}
	practice.Description = description.String
	return practice, nil
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

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Practice
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Practice)}
}

func (r *MemoryRepo) Create(ctx context.Context, practice Practice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[practice.ID] = practice
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Practice, error) {
	if err := ctx.Err(); err != nil {
		return Practice{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	practice, ok := r.data[id]
	if !ok {
		return Practice{}, ErrNotFound
	}
	return practice, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Practice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Practice, 0, len(r.data))
	for _, practice := range r.data {
		out = append(out, practice)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, practice Practice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[practice.ID]; !ok {
		return ErrNotFound
	}
	r.data[practice.ID] = practice
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

// Service contains business logic for practices.
type Service struct {
	Repo Repo
}

func (s *Service) Create(ctx context.Context, name, description string) (Practice, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Practice{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	practice := Practice{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, practice); err != nil {
		return Practice{}, err
	}
	return practice, nil
}

func (s *Service) Get(ctx context.Context, id string) (Practice, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Practice, error) {
	return s.Repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id, name, description string) (Practice, error) {
	practice, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Practice{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Practice{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	practice.Name = name
	practice.Description = strings.TrimSpace(description)
	if err := s.Repo.Update(ctx, practice); err != nil {
		return Practice{}, err
	}
	return practice, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
