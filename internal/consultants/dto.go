package consultants

import "time"

// ConsultantRequest is the payload for creating or updating a consultant.
type ConsultantRequest struct {
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Email      string   `json:"email"`
	PracticeID *string  `json:"practiceId"`
	ManagerID  *string  `json:"managerId"`
	Skills     []string `json:"skills"`
	Languages  []string `json:"languages"`
}

// ConsultantResponse is the API shape of a consultant.
type ConsultantResponse struct {
	ConsultantID string    `json:"consultantId"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email,omitempty"`
	PracticeID   *string   `json:"practiceId,omitempty"`
	ManagerID    *string   `json:"managerId,omitempty"`
	Skills       []string  `json:"skills,omitempty"`
	Languages    []string  `json:"languages,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toResponse(c Consultant) ConsultantResponse {
	return ConsultantResponse{
		ConsultantID: c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		PracticeID:   c.PracticeID,
		ManagerID:    c.ManagerID,
		Skills:       c.Skills,
		Languages:    c.Languages,
		CreatedAt:    c.CreatedAt,
	}
}

func (in ConsultantRequest) toInput() CreateInput {
	return CreateInput{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		PracticeID: in.PracticeID,
		ManagerID:  in.ManagerID,
		Skills:     in.Skills,
		Languages:  in.Languages,
	}
}
