package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	payload := `{"summary":"ok"}`
	doc := Document{
		ID:           "doc-1",
		ConsultantID: "consultant-7",
		DocType:      TypeCV,
		FileName:     "alice_cv.pdf",
		StoragePath:  "data/uploads/consultant-7_cv_x.pdf",
		SizeBytes:    2048,
		MimeType:     "application/pdf",
		Description:  "CV 2024",
		Analysis:     &payload,
		UploadedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(
			doc.ID,
			doc.ConsultantID,
			"cv",
			doc.FileName,
			sqlmock.AnyArg(), // storage_path
			doc.SizeBytes,
			sqlmock.AnyArg(), // mime_type
			sqlmock.AnyArg(), // description
			sqlmock.AnyArg(), // analysis
			sqlmock.AnyArg(), // uploaded_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoLatestCV(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	uploadedAt := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "consultant_id", "doc_type", "file_name", "storage_path",
		"size_bytes", "mime_type", "description", "analysis", "uploaded_at",
	}).AddRow(
		"doc-1", "consultant-7", "cv", "alice_cv.pdf", "data/uploads/x.pdf",
		int64(2048), "application/pdf", nil, `{"summary":"ok"}`, uploadedAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs("consultant-7", "cv").
		WillReturnRows(rows)

	doc, err := repo.LatestCV(context.Background(), "consultant-7")
	if err != nil {
		t.Fatalf("LatestCV: %v", err)
	}
	if doc.ID != "doc-1" || doc.DocType != TypeCV {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.Description != "" {
		t.Fatalf("null description should map to empty string")
	}
	if doc.Analysis == nil || *doc.Analysis != `{"summary":"ok"}` {
		t.Fatalf("analysis not scanned: %+v", doc.Analysis)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoLatestCVNoMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs("consultant-7", "cv").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "consultant_id", "doc_type", "file_name", "storage_path",
			"size_bytes", "mime_type", "description", "analysis", "uploaded_at",
		}))

	if _, err := repo.LatestCV(context.Background(), "consultant-7"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateAnalysisNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	payload := `{}`
	mock.ExpectExec("UPDATE documents").
		WithArgs(sqlmock.AnyArg(), "missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateAnalysis(context.Background(), "missing-id", &payload); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("DELETE FROM documents").
		WithArgs("missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
