package documents

import "time"

// DocType is the user-declared category of an uploaded document,
// independent of the actual file format.
type DocType string

const (
	TypeCV            DocType = "cv"
	TypeCoverLetter   DocType = "cover_letter"
	TypeDiploma       DocType = "diploma"
	TypeCertification DocType = "certification"
	TypeContract      DocType = "contract"
	TypeEvaluation    DocType = "evaluation"
	TypeOther         DocType = "other"
)

var docTypes = map[DocType]struct{}{
	TypeCV:            {},
	TypeCoverLetter:   {},
	TypeDiploma:       {},
	TypeCertification: {},
	TypeContract:      {},
	TypeEvaluation:    {},
	TypeOther:         {},
}

// Valid reports whether the type belongs to the closed set.
func (t DocType) Valid() bool {
	_, ok := docTypes[t]
	return ok
}

// Document represents one uploaded file owned by exactly one consultant.
// Analysis holds the serialized analysis result, nil when none was attempted
// or extraction failed; it is replaced wholesale on reanalysis.
type Document struct {
	ID           string
	ConsultantID string
	DocType      DocType
	FileName     string
	StoragePath  string
	SizeBytes    int64
	MimeType     string
	Description  string
	Analysis     *string
	UploadedAt   time.Time
}
