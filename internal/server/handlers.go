package server

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/truthtalent/cv-parser/internal/db"
	"github.com/truthtalent/cv-parser/internal/ingestion"
	"github.com/truthtalent/cv-parser/internal/logger"
	"github.com/truthtalent/cv-parser/internal/parsing"
	"github.com/truthtalent/cv-parser/internal/types"
)

// handleRoot returns service identification and the available endpoints.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"service": "TruthTalent CV Parser API",
		"version": Version,
		"status":  "online",
		"endpoints": map[string]string{
			"/extract":    "Analyze a CV",
			"/jobs":       "Process a CV upload with application context",
			"/candidates": "List stored candidates",
			"/health":     "Health check",
		},
	})
}

// handleHealth reports per-component status. Optional components report
// "disabled" rather than failing the check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	components := map[string]string{
		"api":       "operational",
		"extractor": "ready",
	}
	healthy := true

	switch {
	case s.store == nil:
		components["database"] = "disabled"
	case s.store.Ping(r.Context()) != nil:
		components["database"] = "unreachable"
		healthy = false
	default:
		components["database"] = "ready"
	}

	if s.files == nil {
		components["storage"] = "disabled"
	} else {
		components["storage"] = "ready"
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"healthy":    healthy,
		"timestamp":  time.Now().Format(time.RFC3339),
		"components": components,
	})
}

// handleExtract analyzes an uploaded CV and persists the result when a store
// is configured.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	filename, content, err := s.readUpload(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	record, text, err := s.analyze(r, filename, content)
	if err != nil {
		if parsing.IsInsufficientText(err) {
			s.insufficientTextResponse(w, filename, len(content))
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	contentHash := hashContent(content)
	response := map[string]any{
		"success":   true,
		"filename":  filename,
		"file_hash": contentHash,
		"extracted": record,
	}

	if s.store != nil {
		result, err := s.store.UpsertCandidate(r.Context(), record,
			db.DedupeKey{Email: record.Personal.Email, ContentHash: contentHash},
			db.SaveMeta{Filename: filename, RawText: text, Source: "api"})
		if err != nil {
			logger.Error().Err(err).Str("filename", filename).Msg("failed to save candidate")
			response["database"] = map[string]any{"success": false, "error": err.Error()}
		} else {
			response["database"] = map[string]any{
				"success":      true,
				"action":       result.Action,
				"candidate_id": result.ID,
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleProcessJob receives a CV upload with application context from the
// careers site form: optional email, user id, user name, offer id, message,
// and a source tag.
func (s *Server) handleProcessJob(w http.ResponseWriter, r *http.Request) {
	filename, content, err := s.readUpload(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	formEmail := r.FormValue("email")
	source := r.FormValue("source")
	if source == "" {
		source = "web"
	}

	contentHash := hashContent(content)

	record, text, err := s.analyze(r, filename, content)
	if err != nil {
		if parsing.IsInsufficientText(err) {
			s.jsonResponse(w, http.StatusOK, map[string]any{
				"success": true,
				"warning": "insufficient text for analysis",
				"extracted": map[string]any{
					"filename":  filename,
					"email":     formEmail,
					"phone":     "",
					"name":      types.PlaceholderName,
					"skills":    []string{},
					"languages": []string{},
					"level":     types.LevelIntern,
				},
			})
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// The form email wins over the extracted one. With neither, a synthetic
	// address derived from the content hash keeps the email dedupe key usable.
	email := record.Personal.Email
	if formEmail != "" {
		email = formEmail
	} else if email == "" {
		email = fmt.Sprintf("unknown_%s@example.com", contentHash[:8])
	}
	record.Personal.Email = email

	// Same for the applicant name: the form value fills in when extraction
	// found nothing.
	if userName := r.FormValue("user_name"); userName != "" && !record.Personal.HasName() {
		record.Personal.Name = userName
		record.Personal.FirstName, record.Personal.LastName = parsing.SplitName(userName)
	}

	response := map[string]any{
		"success":   true,
		"message":   "CV processed",
		"timestamp": time.Now().Format(time.RFC3339),
		"filename":  filename,
		"file_hash": contentHash,
		"file_size": len(content),
		"cv_data": map[string]any{
			"nom":               record.Personal.LastName,
			"prenom":            record.Personal.FirstName,
			"email":             email,
			"telephone":         record.Personal.Phone,
			"competences":       record.Skills,
			"niveau":            record.Experience.Level,
			"annees_experience": record.Experience.Years,
			"confidence_score":  record.ConfidenceScore,
		},
	}

	if r.FormValue("message") != "" {
		response["candidate_message"] = r.FormValue("message")
	}

	var fileURL string
	if s.files != nil {
		objectKey, err := s.files.StoreCV(r.Context(), contentHash, filename, content)
		if err != nil {
			logger.Error().Err(err).Str("filename", filename).Msg("failed to store CV file")
			response["storage"] = map[string]any{"success": false, "error": err.Error()}
		} else {
			fileURL = objectKey
			response["storage"] = map[string]any{"success": true, "object_key": objectKey}
		}
	}

	if s.store != nil {
		result, err := s.store.UpsertCandidate(r.Context(), record,
			db.DedupeKey{Email: email, ContentHash: contentHash},
			db.SaveMeta{
				Filename:  filename,
				FileURL:   fileURL,
				RawText:   text,
				Source:    source,
				WPUserID:  r.FormValue("user_id"),
				WPOfferID: r.FormValue("offer_id"),
			})
		if err != nil {
			logger.Error().Err(err).Str("filename", filename).Msg("failed to save candidate")
			response["database"] = map[string]any{"success": false, "error": err.Error()}
		} else {
			response["database"] = map[string]any{
				"success":      true,
				"action":       result.Action,
				"candidate_id": result.ID,
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleListCandidates returns stored candidates, newest first.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrStoreUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	candidates, err := s.store.ListCandidates(r.Context(), limit, offset)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":    true,
		"count":      len(candidates),
		"candidates": candidates,
	})
}

// readUpload pulls the "file" part out of a multipart request, enforcing the
// configured size limit.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+1)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			// The body was cut off at the limit; the declared request length
			// is the closest figure to the actual upload size.
			size := r.ContentLength
			if size < 0 {
				size = 0
			}
			return "", nil, &ErrFileTooLarge{Size: size, Max: s.maxUploadBytes}
		}
		return "", nil, &ErrMissingFile{}
	}
	defer file.Close()

	if header.Filename == "" {
		return "", nil, &ErrMissingFile{}
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(content) == 0 {
		return "", nil, &ErrEmptyFile{Filename: header.Filename}
	}
	if int64(len(content)) > s.maxUploadBytes {
		return "", nil, &ErrFileTooLarge{Size: int64(len(content)), Max: s.maxUploadBytes}
	}

	return header.Filename, content, nil
}

// analyze runs text extraction and field inference for an upload. The
// extracted text is returned alongside the record so callers can persist it.
func (s *Server) analyze(r *http.Request, filename string, content []byte) (*types.CandidateRecord, string, error) {
	text, err := s.extractor.ExtractText(r.Context(), filename, content)
	if err != nil {
		var unsupported *ingestion.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("text extraction failed: %w", err)
	}
	record, err := s.parser.ExtractCandidateDataFrom(text, filename)
	if err != nil {
		return nil, "", err
	}
	return record, text, nil
}

// insufficientTextResponse mirrors the degraded-but-successful path: scanned
// or image-only documents come back 200 with a warning rather than an error.
func (s *Server) insufficientTextResponse(w http.ResponseWriter, filename string, size int) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"warning": "insufficient text for analysis",
		"extracted": map[string]any{
			"filename": filename,
			"size":     size,
		},
	})
}

func hashContent(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])
}

func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
