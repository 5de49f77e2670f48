package consultants

import (
	"strings"
	"time"
)

// Consultant is a staffed consultant. Documents reference consultants by id;
// the document pipeline reads names for file naming and report headers only.
type Consultant struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	PracticeID *string
	ManagerID  *string
	Skills     []string
	Languages  []string
	CreatedAt  time.Time
}

// DisplayName returns "First Last", trimmed.
func (c Consultant) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}
