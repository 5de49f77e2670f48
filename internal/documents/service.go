package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"staffing-backend/internal/analysis"
	"staffing-backend/internal/shared/metrics"
	"staffing-backend/internal/shared/storage/files"
	"staffing-backend/internal/shared/telemetry"
	"staffing-backend/internal/shared/util"
)

// Extractor derives plain text from a stored file. A failed extraction is a
// soft condition, never fatal to the surrounding workflow.
type Extractor interface {
	File(path string) (string, error)
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc func(path string) (string, error)

// File implements Extractor.
func (f ExtractorFunc) File(path string) (string, error) { return f(path) }

// Analyzer turns CV text plus a consultant name hint into a structured
// result. It must tolerate any input without failing.
type Analyzer interface {
	Analyze(text, consultantName string) analysis.Result
}

// AnalyzerFunc adapts a plain function to the Analyzer interface.
type AnalyzerFunc func(text, consultantName string) analysis.Result

// Analyze implements Analyzer.
func (f AnalyzerFunc) Analyze(text, consultantName string) analysis.Result {
	return f(text, consultantName)
}

// ConsultantDirectory resolves a consultant id to a display name used for
// stored-file naming hints and report headers. The document pipeline never
// mutates consultant records.
type ConsultantDirectory interface {
	DisplayName(ctx context.Context, consultantID string) (string, error)
}

// Warning messages surfaced alongside still-successful results.
const (
	WarnExtractionFailed     = "text extraction failed; document saved without analysis"
	WarnAnalysisKeptOnFailed = "text extraction failed; previous analysis kept"
	WarnFileDeleteFailed     = "stored file could not be removed; record deleted"
)

// Service sequences the document workflows: upload, reanalyze, report,
// rename and delete.
type Service struct {
	files     *files.Store
	extractor Extractor
	analyzer  Analyzer
	repo      DocumentsRepo
	directory ConsultantDirectory
}

// NewService wires the pipeline. All collaborators are required: a missing
// dependency fails construction rather than being checked on every call.
func NewService(store *files.Store, extractor Extractor, analyzer Analyzer, repo DocumentsRepo, directory ConsultantDirectory) (*Service, error) {
	if store == nil {
		return nil, errors.New("documents: file store is required")
	}
	if extractor == nil {
		return nil, errors.New("documents: extractor is required")
	}
	if analyzer == nil {
		return nil, errors.New("documents: analyzer is required")
	}
	if repo == nil {
		return nil, errors.New("documents: repo is required")
	}
	if directory == nil {
		return nil, errors.New("documents: consultant directory is required")
	}
	return &Service{
		files:     store,
		extractor: extractor,
		analyzer:  analyzer,
		repo:      repo,
		directory: directory,
	}, nil
}

// UploadInput carries the raw upload payload and user-entered metadata.
type UploadInput struct {
	FileName    string
	DocType     DocType
	Description string
	Body        io.Reader
}

// UploadResult is the outcome of a successful upload. Warning is non-empty
// when a soft failure occurred along the way.
type UploadResult struct {
	Document Document
	Warning  string
}

// Upload validates the file, stores its bytes and persists the document
// record. CV uploads additionally run extraction and analysis; a failed
// extraction downgrades to a warning and the record is created with no
// analysis.
func (s *Service) Upload(ctx context.Context, consultantID string, in UploadInput) (UploadResult, error) {
	if consultantID == "" || in.Body == nil {
		return UploadResult{}, ErrInvalidInput
	}
	fileName, err := util.SanitizeFileName(in.FileName)
	if err != nil {
		return UploadResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !in.DocType.Valid() {
		return UploadResult{}, fmt.Errorf("%w: unknown document type %q", ErrInvalidInput, in.DocType)
	}
	if !files.IsAllowedFile(fileName) {
		return UploadResult{}, fmt.Errorf("%w: %s", ErrUnsupportedFileType, fileName)
	}

	consultantName, err := s.directory.DisplayName(ctx, consultantID)
	if err != nil {
		return UploadResult{}, fmt.Errorf("%w: %s", ErrConsultantNotFound, consultantID)
	}

	path, size, mimeType, err := s.files.Save(ctx, consultantID, string(in.DocType), fileName, in.Body)
	if err != nil {
		return UploadResult{}, err
	}

	var warning string
	var serialized *string
	if in.DocType == TypeCV {
		serialized, warning = s.runAnalysis(path, consultantName)
	}

	doc := Document{
		ID:           uuid.NewString(),
		ConsultantID: consultantID,
		DocType:      in.DocType,
		FileName:     fileName,
		StoragePath:  path,
		SizeBytes:    size,
		MimeType:     mimeType,
		Description:  in.Description,
		Analysis:     serialized,
		UploadedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		// The stored file becomes an orphan here; the repository is the
		// source of truth for which documents exist, so it is inert.
		return UploadResult{}, err
	}

	telemetry.Info("document.uploaded", map[string]any{
		"document_id":   doc.ID,
		"consultant_id": consultantID,
		"doc_type":      string(doc.DocType),
		"size_bytes":    size,
		"analyzed":      serialized != nil,
	})
	return UploadResult{Document: doc, Warning: warning}, nil
}

// Reanalyze re-runs extraction and analysis against the stored file and
// replaces the persisted analysis wholesale. With no file change and the
// deterministic analyzer, repeated calls store an identical payload.
func (s *Service) Reanalyze(ctx context.Context, documentID string) (UploadResult, error) {
	doc, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		return UploadResult{}, err
	}
	if !s.files.Exists(doc.StoragePath) {
		return UploadResult{}, fmt.Errorf("%w: %s", ErrFileMissing, doc.FileName)
	}

	consultantName, err := s.directory.DisplayName(ctx, doc.ConsultantID)
	if err != nil {
		consultantName = ""
	}

	serialized, warning := s.runAnalysis(doc.StoragePath, consultantName)
	if serialized == nil {
		// A record that reached Analyzed never transitions back: keep the
		// previous payload on soft extraction failure.
		if doc.Analysis != nil {
			warning = WarnAnalysisKeptOnFailed
		}
		return UploadResult{Document: doc, Warning: warning}, nil
	}

	if err := s.repo.UpdateAnalysis(ctx, doc.ID, serialized); err != nil {
		return UploadResult{}, err
	}
	doc.Analysis = serialized

	telemetry.Info("document.reanalyzed", map[string]any{
		"document_id":   doc.ID,
		"consultant_id": doc.ConsultantID,
	})
	return UploadResult{Document: doc, Warning: warning}, nil
}

// Analysis returns the deserialized analysis result for a document.
func (s *Service) Analysis(ctx context.Context, documentID string) (analysis.Result, error) {
	doc, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		return analysis.Result{}, err
	}
	if doc.Analysis == nil {
		return analysis.Result{}, ErrNoAnalysis
	}
	result, err := analysis.Deserialize(*doc.Analysis)
	if err != nil {
		return analysis.Result{}, fmt.Errorf("decode stored analysis: %w", err)
	}
	return result, nil
}

// Report renders the stored analysis of a document as Markdown. Pure
// formatting: no state is touched.
func (s *Service) Report(ctx context.Context, documentID string) (string, error) {
	doc, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		return "", err
	}
	if doc.Analysis == nil {
		return "", ErrNoAnalysis
	}
	result, err := analysis.Deserialize(*doc.Analysis)
	if err != nil {
		return "", fmt.Errorf("decode stored analysis: %w", err)
	}

	displayName, err := s.directory.DisplayName(ctx, doc.ConsultantID)
	if err != nil {
		displayName = ""
	}
	return analysis.RenderMarkdown(result, displayName), nil
}

// Rename updates the record's file name and description only.
func (s *Service) Rename(ctx context.Context, documentID, newFileName string, newDescription *string) (Document, error) {
	fileName, err := util.SanitizeFileName(newFileName)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Rename(ctx, documentID, fileName, newDescription); err != nil {
		return Document{}, err
	}
	return s.repo.GetByID(ctx, documentID)
}

// Delete removes the record and best-effort deletes the physical file. A
// failed unlink is downgraded to a warning; the record is gone regardless.
func (s *Service) Delete(ctx context.Context, documentID string) (string, error) {
	doc, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, documentID); err != nil {
		return "", err
	}

	var warning string
	if doc.StoragePath != "" {
		if err := s.files.Remove(doc.StoragePath); err != nil {
			warning = WarnFileDeleteFailed
			telemetry.Warn("document.file_delete_failed", map[string]any{
				"document_id": doc.ID,
				"path":        doc.StoragePath,
				"error":       err.Error(),
			})
		}
	}
	return warning, nil
}

// Get returns a document record by id.
func (s *Service) Get(ctx context.Context, documentID string) (Document, error) {
	return s.repo.GetByID(ctx, documentID)
}

// List returns a consultant's documents, newest first.
func (s *Service) List(ctx context.Context, consultantID string) ([]Document, error) {
	return s.repo.ListByConsultant(ctx, consultantID)
}

// LatestCV returns the most recent CV record for a consultant.
func (s *Service) LatestCV(ctx context.Context, consultantID string) (Document, error) {
	return s.repo.LatestCV(ctx, consultantID)
}

// runAnalysis extracts text from the stored file and analyzes it. It
// returns nil and a warning on soft extraction failure; an analyzer result
// with every field empty is still persisted.
func (s *Service) runAnalysis(path, consultantName string) (*string, string) {
	metrics.IncAnalysisStarted()
	started := metrics.NowMillis()

	text, err := s.extractor.File(path)
	if err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Warn("document.extraction_failed", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return nil, WarnExtractionFailed
	}

	result := s.analyzer.Analyze(text, consultantName)
	raw, err := analysis.Serialize(result)
	if err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Warn("document.analysis_encode_failed", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return nil, WarnExtractionFailed
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(metrics.NowMillis() - started)
	return &raw, ""
}
