// Package model contains the document schemas passed between layers.
//
// Documents in the store are schemaless; these types describe the required
// and optional keys each collection carries and convert validated input into
// store documents. Optional fields use pointers so that "omitted" and "zero"
// stay distinguishable: an omitted field never overwrites a stored value and
// never participates in aggregates.
package model

import (
	"fmt"

	"github.com/placewise/placewise/internal/adapters/docstore"
)

// Age bounds accepted on profile submission.
const (
	MinAge = 0
	MaxAge = 120
)

// Event is an immutable behavior fact. Anonymous events are allowed; only
// the type is required.
type Event struct {
	UserID     *string        `json:"user_id,omitempty"`
	EventType  string         `json:"event_type"`
	Page       *string        `json:"page,omitempty"`
	Service    *string        `json:"service,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Device     *string        `json:"device,omitempty"`
}

// Validate rejects malformed events before they reach the store.
func (e Event) Validate() error {
	if e.EventType == "" {
		return fmt.Errorf("%w: missing event_type", ErrValidation)
	}
	return nil
}

// Document renders the event for insertion. The type is stored under "type";
// omitted optionals are left out entirely.
func (e Event) Document() docstore.Document {
	doc := docstore.Document{"type": e.EventType}
	putString(doc, "user_id", e.UserID)
	putString(doc, "page", e.Page)
	putString(doc, "service", e.Service)
	putString(doc, "device", e.Device)
	if e.Properties != nil {
		doc["properties"] = e.Properties
	}
	return doc
}

// Profile is a user profile submission. All demographic fields are optional;
// user_id is the stable join key across collections.
type Profile struct {
	UserID          string   `json:"user_id"`
	Name            *string  `json:"name,omitempty"`
	Email           *string  `json:"email,omitempty"`
	Age             *int     `json:"age,omitempty"`
	Gender          *string  `json:"gender,omitempty"`
	Location        *string  `json:"location,omitempty"`
	Education       *string  `json:"education,omitempty"`
	ExperienceYears *float64 `json:"experience_years,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Channel         *string  `json:"channel,omitempty"`
}

// Validate rejects malformed profiles before they reach the store.
func (p Profile) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("%w: missing user_id", ErrValidation)
	}
	if p.Age != nil && (*p.Age < MinAge || *p.Age > MaxAge) {
		return fmt.Errorf("%w: age %d out of range [%d,%d]", ErrValidation, *p.Age, MinAge, MaxAge)
	}
	if p.ExperienceYears != nil && *p.ExperienceYears < 0 {
		return fmt.Errorf("%w: experience_years must be >= 0", ErrValidation)
	}
	return nil
}

// Fields renders only the supplied fields, so merging into an existing
// profile never erases previously stored values.
func (p Profile) Fields() docstore.Document {
	doc := docstore.Document{"user_id": p.UserID}
	putString(doc, "name", p.Name)
	putString(doc, "email", p.Email)
	putString(doc, "gender", p.Gender)
	putString(doc, "location", p.Location)
	putString(doc, "education", p.Education)
	putString(doc, "channel", p.Channel)
	if p.Age != nil {
		doc["age"] = *p.Age
	}
	if p.ExperienceYears != nil {
		doc["experience_years"] = *p.ExperienceYears
	}
	if p.Skills != nil {
		doc["skills"] = p.Skills
	}
	return doc
}

// Job is a posting. The job_id is treated as an external identifier; the
// core does not enforce its uniqueness.
type Job struct {
	JobID         string   `json:"job_id"`
	Title         string   `json:"title"`
	Company       *string  `json:"company,omitempty"`
	Location      *string  `json:"location,omitempty"`
	Requirements  []string `json:"requirements,omitempty"`
	MinExperience *float64 `json:"min_experience,omitempty"`
}

// Validate rejects malformed postings before they reach the store.
func (j Job) Validate() error {
	if j.JobID == "" {
		return fmt.Errorf("%w: missing job_id", ErrValidation)
	}
	if j.Title == "" {
		return fmt.Errorf("%w: missing title", ErrValidation)
	}
	if j.MinExperience != nil && *j.MinExperience < 0 {
		return fmt.Errorf("%w: min_experience must be >= 0", ErrValidation)
	}
	return nil
}

// Document renders the posting for insertion.
func (j Job) Document() docstore.Document {
	doc := docstore.Document{
		"job_id": j.JobID,
		"title":  j.Title,
	}
	putString(doc, "company", j.Company)
	putString(doc, "location", j.Location)
	if j.Requirements != nil {
		doc["requirements"] = j.Requirements
	}
	if j.MinExperience != nil {
		doc["min_experience"] = *j.MinExperience
	}
	return doc
}

// Outcome links a user and a job to an application result. The label is
// free text compared case-insensitively against "success" downstream.
type Outcome struct {
	UserID  string  `json:"user_id"`
	JobID   string  `json:"job_id"`
	Outcome string  `json:"outcome"`
	Notes   *string `json:"notes,omitempty"`
}

// Validate rejects malformed outcomes before they reach the store.
func (o Outcome) Validate() error {
	switch {
	case o.UserID == "":
		return fmt.Errorf("%w: missing user_id", ErrValidation)
	case o.JobID == "":
		return fmt.Errorf("%w: missing job_id", ErrValidation)
	case o.Outcome == "":
		return fmt.Errorf("%w: missing outcome", ErrValidation)
	}
	return nil
}

// Document renders the outcome for insertion.
func (o Outcome) Document() docstore.Document {
	doc := docstore.Document{
		"user_id": o.UserID,
		"job_id":  o.JobID,
		"outcome": o.Outcome,
	}
	putString(doc, "notes", o.Notes)
	return doc
}

func putString(doc docstore.Document, key string, val *string) {
	if val != nil {
		doc[key] = *val
	}
}
