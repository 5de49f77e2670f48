package documents

import "time"

// DocumentResponse is the outward-facing representation of a document record.
type DocumentResponse struct {
	DocumentID   string    `json:"documentId"`
	ConsultantID string    `json:"consultantId"`
	DocType      string    `json:"docType"`
	FileName     string    `json:"fileName"`
	MimeType     string    `json:"mimeType,omitempty"`
	SizeBytes    int64     `json:"sizeBytes"`
	Description  string    `json:"description,omitempty"`
	HasAnalysis  bool      `json:"hasAnalysis"`
	UploadedAt   time.Time `json:"uploadedAt"`
	Warning      string    `json:"warning,omitempty"`
}

func toResponse(doc Document, warning string) DocumentResponse {
	return DocumentResponse{
		DocumentID:   doc.ID,
		ConsultantID: doc.ConsultantID,
		DocType:      string(doc.DocType),
		FileName:     doc.FileName,
		MimeType:     doc.MimeType,
		SizeBytes:    doc.SizeBytes,
		Description:  doc.Description,
		HasAnalysis:  doc.Analysis != nil,
		UploadedAt:   doc.UploadedAt,
		Warning:      warning,
	}
}
