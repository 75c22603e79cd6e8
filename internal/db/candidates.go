package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/truthtalent/cv-parser/internal/types"
)

const maxStoredRawText = 5000

// UpsertCandidate persists an extracted record, merging it with any existing
// row sharing the same content hash or email. It returns whether the row was
// created or updated, plus its id.
func (db *DB) UpsertCandidate(ctx context.Context, record *types.CandidateRecord, key DedupeKey, meta SaveMeta) (*UpsertResult, error) {
	skillsJSON, err := json.Marshal(record.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}
	positionsJSON, err := json.Marshal(record.Experience.Positions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal positions: %w", err)
	}
	educationJSON, err := json.Marshal(record.Education)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal education: %w", err)
	}
	languagesJSON, err := json.Marshal(record.Languages)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal languages: %w", err)
	}

	rawText := meta.RawText
	if len(rawText) > maxStoredRawText {
		rawText = rawText[:maxStoredRawText]
	}

	existingID, err := db.findExisting(ctx, key)
	if err != nil {
		return nil, err
	}

	args := []any{
		record.Personal.LastName,        // $1 nom
		record.Personal.FirstName,       // $2 prenom
		key.Email,                       // $3 email
		record.Personal.Phone,           // $4 telephone
		record.Personal.Location,        // $5 adresse
		record.Personal.LinkedIn,        // $6 linkedin
		skillsJSON,                      // $7 competences
		positionsJSON,                   // $8 experiences
		educationJSON,                   // $9 formations
		languagesJSON,                   // $10 langues
		record.Summary,                  // $11 profil
		string(record.Experience.Level), // $12 niveau
		record.Experience.Years,         // $13 annees_experience
		meta.Filename,                   // $14 fichier
		key.ContentHash,                 // $15 file_hash
		meta.FileURL,                    // $16 cv_url
		rawText,                         // $17 raw_text
		record.ConfidenceScore,          // $18 confidence_score
		meta.Source,                     // $19 source
		meta.WPUserID,                   // $20 wp_user_id
		meta.WPOfferID,                  // $21 wp_offer_id
	}

	if existingID != uuid.Nil {
		_, err := db.pool.Exec(ctx,
			`UPDATE candidats SET
			   nom = $1, prenom = $2, email = $3, telephone = $4, adresse = $5,
			   linkedin = $6, competences = $7, experiences = $8, formations = $9,
			   langues = $10, profil = $11, niveau = $12, annees_experience = $13,
			   fichier = $14, file_hash = $15, cv_url = $16, raw_text = $17,
			   confidence_score = $18, source = $19, wp_user_id = $20,
			   wp_offer_id = $21, parse_status = 'success', date_analyse = NOW()
			 WHERE id = $22`,
			append(args, existingID)...,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update candidate: %w", err)
		}
		return &UpsertResult{Action: ActionUpdated, ID: existingID}, nil
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO candidats (
		   nom, prenom, email, telephone, adresse, linkedin, competences,
		   experiences, formations, langues, profil, niveau, annees_experience,
		   fichier, file_hash, cv_url, raw_text, confidence_score, source,
		   wp_user_id, wp_offer_id, parse_status, date_import, date_analyse
		 ) VALUES (
		   $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		   $16, $17, $18, $19, $20, $21, 'success', NOW(), NOW()
		 ) RETURNING id`,
		args...,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to insert candidate: %w", err)
	}
	return &UpsertResult{Action: ActionCreated, ID: id}, nil
}

// findExisting looks up a candidate by content hash first (most reliable),
// then by email. uuid.Nil means no match.
func (db *DB) findExisting(ctx context.Context, key DedupeKey) (uuid.UUID, error) {
	if key.ContentHash != "" {
		id, err := db.lookupID(ctx, `SELECT id FROM candidats WHERE file_hash = $1 LIMIT 1`, key.ContentHash)
		if err != nil {
			return uuid.Nil, err
		}
		if id != uuid.Nil {
			return id, nil
		}
	}
	if key.Email != "" {
		return db.lookupID(ctx, `SELECT id FROM candidats WHERE email = $1 LIMIT 1`, key.Email)
	}
	return uuid.Nil, nil
}

func (db *DB) lookupID(ctx context.Context, query string, arg any) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx, query, arg).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return uuid.Nil, nil
		}
		return uuid.Nil, fmt.Errorf("failed to look up candidate: %w", err)
	}
	return id, nil
}

// ListCandidates returns stored candidates ordered by import date, newest
// first.
func (db *DB) ListCandidates(ctx context.Context, limit, offset int) ([]Candidate, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, nom, prenom, email, telephone, adresse, linkedin, niveau,
		        annees_experience, fichier, file_hash, confidence_score,
		        parse_status, source, date_import
		 FROM candidats
		 ORDER BY date_import DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []Candidate{}
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(
			&c.ID, &c.LastName, &c.FirstName, &c.Email, &c.Phone, &c.Location,
			&c.LinkedIn, &c.Level, &c.YearsExperience, &c.Filename, &c.FileHash,
			&c.ConfidenceScore, &c.ParseStatus, &c.Source, &c.ImportedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading candidate rows: %w", err)
	}
	return candidates, nil
}
