package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/dealflow-pipeline/internal/usecase"
)

type ReportHandler struct {
	reportUC  *usecase.ReportPerformanceUseCase
	processUC *usecase.ProcessLeadUseCase
}

func NewReportHandler(reportUC *usecase.ReportPerformanceUseCase, processUC *usecase.ProcessLeadUseCase) *ReportHandler {
	return &ReportHandler{
		reportUC:  reportUC,
		processUC: processUC,
	}
}

// GetReport never fails: an empty store just yields all-zero counts.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUC.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// ProcessLead runs the full pipeline for one lead and returns the
// staged trace plus the fresh report.
func (h *ReportHandler) ProcessLead(w http.ResponseWriter, r *http.Request) {
	var input usecase.ProcessLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "INVALID_JSON",
			Message: "Invalid JSON",
		})
		return
	}

	output, err := h.processUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}
