package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/mfedotov/renderscope/pkg/db"
	"github.com/mfedotov/renderscope/pkg/gen"
	"github.com/mfedotov/renderscope/pkg/prompt"
	"github.com/mfedotov/renderscope/pkg/render"
)

// renderRequest is the JSON body of POST /api/v1/render
type renderRequest struct {
	Image    string         `json:"image"` // base64-encoded source image
	MimeType string         `json:"mime_type"`
	Options  prompt.Options `json:"options"`
}

// renderResponse is the JSON body returned by POST /api/v1/render
type renderResponse struct {
	Image      string `json:"image"` // base64-encoded render
	MimeType   string `json:"mime_type"`
	Commentary string `json:"commentary,omitempty"`
	RecordID   string `json:"record_id,omitempty"`
}

// feedbackRequest is the JSON body of POST /api/v1/render/{id}/feedback
type feedbackRequest struct {
	Rating int      `json:"rating"`
	Tags   []string `json:"tags"`
}

// analyzeRequest is the JSON body of POST /api/v1/analyze
type analyzeRequest struct {
	Image    string `json:"image"`
	MimeType string `json:"mime_type"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderHandler runs one generation request
func (s *Server) renderHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	img, err := decodeImage(req.Image, req.MimeType)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	resp, err := s.svc.Render(ctx, render.Request{Image: img, Options: req.Options})
	if err != nil {
		log.Printf("[ERROR] render failed: %v", err)
		// the real cause stays in the log, clients get a generic message
		renderError(w, r, fmt.Errorf("generation failed, please try again later"), http.StatusBadGateway)
		return
	}

	renderJSON(w, r, http.StatusOK, renderResponse{
		Image:      base64.StdEncoding.EncodeToString(resp.ImageData),
		MimeType:   resp.ImageMime,
		Commentary: resp.Commentary,
		RecordID:   resp.RecordID,
	})
}

// feedbackHandler attaches a rating and tags to a past render. Failures here
// are surfaced explicitly, distinct from generation errors.
func (s *Server) feedbackHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	recordID := r.PathValue("id")

	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		renderError(w, r, fmt.Errorf("rating must be between 1 and 5"), http.StatusBadRequest)
		return
	}

	if err := s.svc.SubmitFeedback(ctx, recordID, req.Rating, req.Tags); err != nil {
		log.Printf("[WARN] feedback rejected for %s: %v", recordID, err)
		code := http.StatusInternalServerError
		if errors.Is(err, db.ErrNotFound) {
			code = http.StatusNotFound
		}
		renderError(w, r, fmt.Errorf("feedback not saved: %v", err), code)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"result": "saved", "record_id": recordID})
}

// analyzeHandler runs the scene analysis pre-pass
func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	img, err := decodeImage(req.Image, req.MimeType)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	analysis, err := s.svc.Analyze(ctx, img)
	if err != nil {
		log.Printf("[ERROR] analyze failed: %v", err)
		renderError(w, r, fmt.Errorf("analysis failed, please try again later"), http.StatusBadGateway)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"analysis": analysis})
}

// listRendersHandler returns stored render records
func (s *Server) listRendersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 500 {
			limit = l
		}
	}

	renders, err := s.history.ListRenders(ctx, r.URL.Query().Get("category"), r.URL.Query().Get("style"), limit)
	if err != nil {
		log.Printf("[ERROR] failed to list renders: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	type renderInfo struct {
		ID        string    `json:"id"`
		Category  string    `json:"category"`
		Style     string    `json:"style"`
		Rating    *int64    `json:"rating,omitempty"`
		Tags      []string  `json:"tags,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}

	infos := make([]renderInfo, 0, len(renders))
	for _, rec := range renders {
		info := renderInfo{
			ID:        rec.GUID,
			Category:  rec.Category,
			Style:     rec.Style,
			Tags:      rec.Tags,
			CreatedAt: rec.CreatedAt,
		}
		if rec.Rating.Valid {
			rating := rec.Rating.Int64
			info.Rating = &rating
		}
		infos = append(infos, info)
	}

	renderJSON(w, r, http.StatusOK, infos)
}

// presetsHandler returns the photography preset catalog
func (s *Server) presetsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, prompt.Presets())
}

// statsHandler returns aggregate feedback statistics
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.history.FeedbackStats(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get stats: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// decodeImage validates and decodes a base64 image payload
func decodeImage(b64, mimeType string) (gen.Image, error) {
	if b64 == "" {
		return gen.Image{}, fmt.Errorf("image is required")
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return gen.Image{}, fmt.Errorf("invalid image encoding")
	}
	if mimeType == "" {
		mimeType = "image/png"
	}
	return gen.Image{Data: data, MimeType: mimeType}, nil
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
