// Package http exposes the fingerprint index over a JSON API.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/soleret/hamming"
	"github.com/soleret/hamming/internal/logging"
	"github.com/soleret/hamming/pkg/fingerprint"
	"github.com/soleret/hamming/pkg/index"
	"github.com/soleret/hamming/pkg/ports"
)

// Distance computation modes accepted by POST /v1/distance.
const (
	ModeBits = "bits"
	ModeText = "text"
)

// Server handles the HTTP API requests.
type Server struct {
	Index   *index.Index
	Logger  *slog.Logger
	Metrics *Metrics
}

// NewHandler creates a new HTTP handler over the index.
// Each handler carries its own metrics registry, exposed on /metrics.
func NewHandler(ix *index.Index, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	reg := prometheus.NewRegistry()
	server := &Server{
		Index:   ix,
		Logger:  logger,
		Metrics: NewMetrics(reg),
	}

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Post("/v1/distance", server.Distance)
	r.Put("/v1/fingerprints/{name}", server.PutFingerprint)
	r.Get("/v1/fingerprints", server.ListFingerprints)
	r.Get("/v1/fingerprints/{name}", server.GetFingerprint)
	r.Delete("/v1/fingerprints/{name}", server.DeleteFingerprint)
	r.Post("/v1/search", server.Search)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// -- Request / response bodies --

type distanceRequest struct {
	Mode string `json:"mode"`
	A    string `json:"a"`
	B    string `json:"b"`
}

type distanceResponse struct {
	Distance int `json:"distance"`
}

type putFingerprintRequest struct {
	Vector string `json:"vector"`
}

type fingerprintResponse struct {
	Name   string `json:"name"`
	Vector string `json:"vector"`
}

type listFingerprintsResponse struct {
	Names []string `json:"names"`
}

type searchRequest struct {
	Vector string `json:"vector"`
	Limit  int    `json:"limit"`
}

// Distance handles the POST /v1/distance request.
func (s *Server) Distance(w http.ResponseWriter, r *http.Request) {
	var body distanceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Distance: Invalid request body", "error", err)
		return
	}

	var (
		distance int
		err      error
	)
	switch body.Mode {
	case ModeBits:
		var a, b []byte
		a, err = fingerprint.DecodeVector(body.A)
		if err == nil {
			b, err = fingerprint.DecodeVector(body.B)
		}
		if err != nil {
			s.Metrics.DistanceRequests.WithLabelValues(ModeBits, "invalid").Inc()
			http.Error(w, fmt.Sprintf("Invalid vector: %v", err), http.StatusBadRequest)
			s.Logger.Warn("Distance: Invalid vector", "error", err)
			return
		}
		distance, err = hamming.Bytes(a, b)
	case ModeText:
		distance, err = hamming.Strings(body.A, body.B)
	default:
		http.Error(w, `Invalid mode: expected "bits" or "text"`, http.StatusBadRequest)
		return
	}

	if err != nil {
		if errors.Is(err, hamming.ErrLengthMismatch) {
			s.Metrics.DistanceRequests.WithLabelValues(body.Mode, "length_mismatch").Inc()
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		s.Metrics.DistanceRequests.WithLabelValues(body.Mode, "error").Inc()
		http.Error(w, fmt.Sprintf("Distance error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("Distance failed", "error", err)
		return
	}

	s.Metrics.DistanceRequests.WithLabelValues(body.Mode, "ok").Inc()
	s.writeJSON(w, distanceResponse{Distance: distance})
}

// PutFingerprint handles the PUT /v1/fingerprints/{name} request.
func (s *Server) PutFingerprint(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var body putFingerprintRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("PutFingerprint: Invalid request body", "error", err)
		return
	}

	vector, err := fingerprint.DecodeVector(body.Vector)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid vector: %v", err), http.StatusBadRequest)
		s.Logger.Warn("PutFingerprint: Invalid vector", "error", err)
		return
	}

	if err := s.Index.Add(r.Context(), name, vector); err != nil {
		if errors.Is(err, fingerprint.ErrEmptyName) || errors.Is(err, fingerprint.ErrEmptyVector) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Save error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("PutFingerprint failed", "error", err, "name", name)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetFingerprint handles the GET /v1/fingerprints/{name} request.
func (s *Server) GetFingerprint(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	fp, err := s.Index.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			http.Error(w, "Fingerprint not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Load error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("GetFingerprint failed", "error", err, "name", name)
		return
	}

	s.writeJSON(w, fingerprintResponse{Name: fp.Name, Vector: fp.Hex()})
}

// DeleteFingerprint handles the DELETE /v1/fingerprints/{name} request.
func (s *Server) DeleteFingerprint(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := s.Index.Remove(r.Context(), name); err != nil {
		http.Error(w, fmt.Sprintf("Delete error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("DeleteFingerprint failed", "error", err, "name", name)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListFingerprints handles the GET /v1/fingerprints request.
func (s *Server) ListFingerprints(w http.ResponseWriter, r *http.Request) {
	all, err := s.Index.All(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("List error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("ListFingerprints failed", "error", err)
		return
	}

	names := make([]string, 0, len(all))
	for _, fp := range all {
		names = append(names, fp.Name)
	}
	// Store order is unspecified; keep the API deterministic.
	sort.Strings(names)

	s.writeJSON(w, listFingerprintsResponse{Names: names})
}

// Search handles the POST /v1/search request.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var body searchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Search: Invalid request body", "error", err)
		return
	}

	probe, err := fingerprint.DecodeVector(body.Vector)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid vector: %v", err), http.StatusBadRequest)
		s.Logger.Warn("Search: Invalid vector", "error", err)
		return
	}

	res, err := s.Index.Search(r.Context(), probe, body.Limit)
	if err != nil {
		http.Error(w, fmt.Sprintf("Search error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("Search failed", "error", err)
		return
	}

	s.Metrics.SearchScanned.Add(float64(res.Scanned))
	s.writeJSON(w, res)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"app":     "hamming-http",
		"version": strings.TrimSpace(hamming.Version),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}
