package consultants

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres. Skills and languages are stored as
// JSONB arrays.
type PGRepo struct {
	DB *sql.DB
}

const consultantColumns = `id, first_name, last_name, email, practice_id, manager_id, skills, languages, created_at`

// Create inserts a new consultant.
func (r *PGRepo) Create(ctx context.Context, consultant Consultant) error {
	const query = `
INSERT INTO consultants (
    id, first_name, last_name, email, practice_id, manager_id, skills, languages, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	skills, err := marshalList(consultant.Skills)
	if err != nil {
		return err
	}
	languages, err := marshalList(consultant.Languages)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		consultant.ID,
		consultant.FirstName,
		consultant.LastName,
		nullString(consultant.Email),
		nullStringPtr(consultant.PracticeID),
		nullStringPtr(consultant.ManagerID),
		skills,
		languages,
		consultant.CreatedAt,
	)
	return err
}

// GetByID fetches a consultant by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Consultant, error) {
	const query = `
SELECT ` + consultantColumns + `
FROM consultants
WHERE id = $1
LIMIT 1`
	return scanConsultant(r.DB.QueryRowContext(ctx, query, id))
}

// List returns all consultants ordered by last name.
func (r *PGRepo) List(ctx context.Context) ([]Consultant, error) {
	const query = `
SELECT ` + consultantColumns + `
FROM consultants
ORDER BY last_name, first_name`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Consultant
	for rows.Next() {
		consultant, err := scanConsultant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, consultant)
	}
	return out, rows.Err()
}

// Update replaces the consultant's mutable fields.
func (r *PGRepo) Update(ctx context.Context, consultant Consultant) error {
	const query = `
UPDATE consultants
SET first_name = $1, last_name = $2, email = $3, practice_id = $4, manager_id = $5, skills = $6, languages = $7
WHERE id = $8`

	skills, err := marshalList(consultant.Skills)
	if err != nil {
		return err
	}
	languages, err := marshalList(consultant.Languages)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		consultant.FirstName,
		consultant.LastName,
		nullString(consultant.Email),
		nullStringPtr(consultant.PracticeID),
		nullStringPtr(consultant.ManagerID),
		skills,
		languages,
		consultant.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a consultant.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM consultants WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConsultant(row rowScanner) (Consultant, error) {
	var c Consultant
	var email sql.NullString
	var practiceID sql.NullString
	var managerID sql.NullString
	var skills sql.NullString
	var languages sql.NullString
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&email,
		&practiceID,
		&managerID,
		&skills,
		&languages,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Consultant{}, ErrNotFound
		}
		return Consultant{}, err
	}
	if email.Valid {
		c.Email = email.String
	}
	if practiceID.Valid {
		v := practiceID.String
		c.PracticeID = &v
	}
	if managerID.Valid {
		v := managerID.String
		c.ManagerID = &v
	}
	if skills.Valid {
		if err := json.Unmarshal([]byte(skills.String), &c.Skills); err != nil {
			return Consultant{}, err
		}
	}
	if languages.Valid {
		if err := json.Unmarshal([]byte(languages.String), &c.Languages); err != nil {
			return Consultant{}, err
		}
	}
	return c, nil
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalList(list []string) (any, error) {
	if list == nil {
		return nil, nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
