package analysis

import "encoding/json"

// Result is the structured outcome of analyzing a CV's text. An all-empty
// Result is valid and distinct from "no analysis attempted", which callers
// represent as a nil serialized payload.
type Result struct {
	Summary  string    `json:"summary,omitempty"`
	Missions []Mission `json:"missions,omitempty"`
	Skills   []string  `json:"skills,omitempty"`
	Contact  Contact   `json:"contact,omitzero"`
}

// Mission is one detected assignment. All fields are optional.
type Mission struct {
	Title       string `json:"title,omitempty"`
	Client      string `json:"client,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// Contact holds detected contact details.
type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// IsEmpty reports whether every field of the result is absent.
func (r Result) IsEmpty() bool {
	return r.Summary == "" &&
		len(r.Missions) == 0 &&
		len(r.Skills) == 0 &&
		r.Contact == Contact{}
}

// Serialize encodes the result to its persisted JSON form.
func Serialize(r Result) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Deserialize decodes a persisted payload back into a Result.
func Deserialize(raw string) (Result, error) {
	var r Result
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return Result{}, err
	}
	return r, nil
}
