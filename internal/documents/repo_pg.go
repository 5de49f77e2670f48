package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements DocumentsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const documentColumns = `id, consultant_id, doc_type, file_name, storage_path, size_bytes, mime_type, description, analysis, uploaded_at`

// Create inserts a new document record. Uniqueness of (consultant, type,
// file name) is deliberately not enforced: several documents of the same
// declared type may exist per consultant.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    consultant_id,
    doc_type,
    file_name,
    storage_path,
    size_bytes,
    mime_type,
    description,
    analysis,
    uploaded_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.ConsultantID,
		string(doc.DocType),
		doc.FileName,
		nullString(doc.StoragePath),
		doc.SizeBytes,
		nullString(doc.MimeType),
		nullString(doc.Description),
		nullStringPtr(doc.Analysis),
		doc.UploadedAt,
	)
	return err
}

// GetByID fetches a document record by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE id = $1
LIMIT 1`
	return scanDocument(r.DB.QueryRowContext(ctx, query, id))
}

// ListByConsultant returns a consultant's documents, newest first.
func (r *PGRepo) ListByConsultant(ctx context.Context, consultantID string) ([]Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE consultant_id = $1
ORDER BY uploaded_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, consultantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// LatestCV returns the most recent record of type cv for a consultant.
// Older CVs are kept; most recent by upload time wins.
func (r *PGRepo) LatestCV(ctx context.Context, consultantID string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE consultant_id = $1 AND doc_type = $2
ORDER BY uploaded_at DESC
LIMIT 1`
	return scanDocument(r.DB.QueryRowContext(ctx, query, consultantID, string(TypeCV)))
}

// UpdateAnalysis replaces the stored analysis payload wholesale.
func (r *PGRepo) UpdateAnalysis(ctx context.Context, id string, analysis *string) error {
	const query = `
UPDATE documents
SET analysis = $1
WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, nullStringPtr(analysis), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Rename updates file name and description only.
func (r *PGRepo) Rename(ctx context.Context, id, fileName string, description *string) error {
	const query = `
UPDATE documents
SET file_name = $1, description = $2
WHERE id = $3`
	res, err := r.DB.ExecContext(ctx, query, fileName, nullStringPtr(description), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes the record. Physical file removal is the caller's concern.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM documents WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var docType string
	var storagePath sql.NullString
	var mimeType sql.NullString
	var description sql.NullString
	var analysis sql.NullString
	err := row.Scan(
		&doc.ID,
		&doc.ConsultantID,
		&docType,
		&doc.FileName,
		&storagePath,
		&doc.SizeBytes,
		&mimeType,
		&description,
		&analysis,
		&doc.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	doc.DocType = DocType(docType)
	if storagePath.Valid {
		doc.StoragePath = storagePath.String
	}
	if mimeType.Valid {
		doc.MimeType = mimeType.String
	}
	if description.Valid {
		doc.Description = description.String
	}
	if analysis.Valid {
		payload := analysis.String
		doc.Analysis = &payload
	}
	return doc, nil
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

var _ DocumentsRepo = (*PGRepo)(nil)
