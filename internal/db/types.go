package db

import (
	"time"

	"github.com/google/uuid"
)

// Upsert actions reported back to callers.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// DedupeKey identifies a pre-existing candidate row. The content hash is the
// most reliable key (same file re-uploaded); the email catches re-submissions
// of a revised CV. Either may be empty.
type DedupeKey struct {
	Email       string
	ContentHash string
}

// SaveMeta carries the per-upload context persisted alongside the extracted
// record.
type SaveMeta struct {
	Filename  string
	FileURL   string
	RawText   string
	Source    string
	WPUserID  string
	WPOfferID string
}

// UpsertResult reports what the store did with a record.
type UpsertResult struct {
	Action string    `json:"action"`
	ID     uuid.UUID `json:"candidate_id"`
}

// Candidate is a stored candidate row as returned by listings.
type Candidate struct {
	ID              uuid.UUID `json:"id"`
	LastName        string    `json:"nom"`
	FirstName       string    `json:"prenom"`
	Email           string    `json:"email"`
	Phone           string    `json:"telephone"`
	Location        string    `json:"adresse"`
	LinkedIn        string    `json:"linkedin"`
	Level           string    `json:"niveau"`
	YearsExperience int       `json:"annees_experience"`
	Filename        string    `json:"fichier"`
	FileHash        string    `json:"file_hash"`
	ConfidenceScore float64   `json:"confidence_score"`
	ParseStatus     string    `json:"parse_status"`
	Source          string    `json:"source"`
	ImportedAt      time.Time `json:"date_import"`
}
