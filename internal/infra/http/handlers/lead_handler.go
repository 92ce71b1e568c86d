package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/dealflow-pipeline/internal/infra/http/middleware"
	"github.com/xavierca1/dealflow-pipeline/internal/usecase"
)

type LeadHandler struct {
	ingestUC    *usecase.IngestLeadUseCase
	enrichUC    *usecase.EnrichLeadUseCase
	scoreUC     *usecase.ScoreLeadUseCase
	routeUC     *usecase.RouteLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(
	ingestUC *usecase.IngestLeadUseCase,
	enrichUC *usecase.EnrichLeadUseCase,
	scoreUC *usecase.ScoreLeadUseCase,
	routeUC *usecase.RouteLeadUseCase,
	rateLimit int,
) *LeadHandler {
	return &LeadHandler{
		ingestUC:    ingestUC,
		enrichUC:    enrichUC,
		scoreUC:     scoreUC,
		routeUC:     routeUC,
		rateLimiter: NewRateLimiter(rateLimit, time.Minute),
	}
}

func (h *LeadHandler) IngestLead(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Error:   "RATE_LIMITED",
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.IngestLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "INVALID_JSON",
			Message: "Invalid JSON",
		})
		return
	}

	lead, err := h.ingestUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadIngested(lead.Source)
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) EnrichLead(w http.ResponseWriter, r *http.Request) {
	leadID, ok := leadIDParam(w, r)
	if !ok {
		return
	}

	lead, err := h.enrichUC.Execute(r.Context(), leadID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) ScoreLead(w http.ResponseWriter, r *http.Request) {
	leadID, ok := leadIDParam(w, r)
	if !ok {
		return
	}

	lead, err := h.scoreUC.Execute(r.Context(), leadID)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadScored(lead.Score)
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) RouteLead(w http.ResponseWriter, r *http.Request) {
	leadID, ok := leadIDParam(w, r)
	if !ok {
		return
	}

	lead, err := h.routeUC.Execute(r.Context(), leadID)
	if err != nil {
		writeError(w, err)
		return
	}

	if lead.AssignedTo != nil {
		middleware.RecordLeadRouted(lead.AssignedTo.Name)
	}
	writeJSON(w, http.StatusOK, lead)
}

func leadIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	leadID, err := strconv.Atoi(chi.URLParam(r, "leadId"))
	if err != nil || leadID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "INVALID_LEAD_ID",
			Message: "leadId must be a positive integer",
		})
		return 0, false
	}
	return leadID, true
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
