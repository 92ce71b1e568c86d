package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/dealflow-pipeline/internal/entity"
	"github.com/xavierca1/dealflow-pipeline/internal/infra/memory"
)

// ============ REPORT TESTS ============

// TestReportEmptyStore - reporting never fails, empty store yields zeroed buckets
func TestReportEmptyStore(t *testing.T) {
	uc := NewReportPerformanceUseCase(memory.NewLeadStore(), entity.DefaultRoster())

	report, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, report.ReportData.TotalLeads)
	assert.Empty(t, report.ReportData.LeadsBySource)
	assert.Equal(t, map[string]int{"MQL": 0, "SQL": 0}, report.ReportData.LeadsByScore)
	assert.Equal(t, map[string]int{"Alice": 0, "Bob": 0, "Carol": 0}, report.ReportData.LeadsByRep)
	assert.Contains(t, report.ReportDocument, "**Total Leads:** 0")
}

// TestReportAggregation - counts per source/score/rep, unscored leads excluded
func TestReportAggregation(t *testing.T) {
	store := memory.NewLeadStore()
	roster := entity.DefaultRoster()
	uc := NewReportPerformanceUseCase(store, roster)
	ctx := context.Background()

	alice := roster.Pick(0)

	scored := seedLead(t, store, "Jane", "jane@x.com", "web_form", nil)
	_, err := store.Update(ctx, scored.ID, func(l *entity.Lead) error {
		l.Score = entity.ScoreSQL
		l.Status = entity.StatusAssigned
		l.AssignedTo = &alice
		return nil
	})
	assert.NoError(t, err)

	seedLead(t, store, "John", "john@x.com", "web_form", nil) // unscored
	seedLead(t, store, "Mary", "mary@x.com", "referral", nil) // unscored

	report, err := uc.Execute(ctx)
	assert.NoError(t, err)

	data := report.ReportData
	assert.Equal(t, 3, data.TotalLeads)
	assert.Equal(t, map[string]int{"web_form": 2, "referral": 1}, data.LeadsBySource)
	assert.Equal(t, map[string]int{"SQL": 1, "MQL": 0}, data.LeadsByScore)
	assert.Equal(t, map[string]int{"Alice": 1, "Bob": 0, "Carol": 0}, data.LeadsByRep)
}

// TestReportTotalsConsistent - sum(by_source) == total, sum(by_score) <= total
func TestReportTotalsConsistent(t *testing.T) {
	store := memory.NewLeadStore()
	uc := NewReportPerformanceUseCase(store, entity.DefaultRoster())

	sources := []string{"web_form", "referral", "web_form", "ads", "web_form"}
	for _, src := range sources {
		seedLead(t, store, "Lead", "lead@x.com", src, nil)
	}

	report, err := uc.Execute(context.Background())
	assert.NoError(t, err)

	data := report.ReportData
	sumBySource := 0
	for _, c := range data.LeadsBySource {
		sumBySource += c
	}
	sumByScore := 0
	for _, c := range data.LeadsByScore {
		sumByScore += c
	}

	assert.Equal(t, data.TotalLeads, sumBySource)
	assert.Equal(t, len(sources), data.TotalLeads)
	assert.LessOrEqual(t, sumByScore, data.TotalLeads)
}

// TestReportUnknownRepSkipped - a lead assigned to a rep outside the roster is not counted
func TestReportUnknownRepSkipped(t *testing.T) {
	store := memory.NewLeadStore()
	uc := NewReportPerformanceUseCase(store, entity.DefaultRoster())
	ctx := context.Background()

	lead := seedLead(t, store, "Jane", "jane@x.com", "web_form", nil)
	_, err := store.Update(ctx, lead.ID, func(l *entity.Lead) error {
		l.Status = entity.StatusAssigned
		l.AssignedTo = &entity.SalesRep{ID: 99, Name: "Ghost"}
		return nil
	})
	assert.NoError(t, err)

	report, err := uc.Execute(ctx)
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"Alice": 0, "Bob": 0, "Carol": 0}, report.ReportData.LeadsByRep)
}

// TestReportDocumentLayout - three tables in fixed order with deterministic rows
func TestReportDocumentLayout(t *testing.T) {
	store := memory.NewLeadStore()
	uc := NewReportPerformanceUseCase(store, entity.DefaultRoster())

	seedLead(t, store, "Jane", "jane@x.com", "web_form", nil)
	seedLead(t, store, "John", "john@x.com", "ads", nil)

	report, err := uc.Execute(context.Background())
	assert.NoError(t, err)

	md := report.ReportDocument
	assert.True(t, strings.HasPrefix(md, "# DealFlow Report"))

	bySource := strings.Index(md, "## Leads by Source")
	byScore := strings.Index(md, "## Leads by Score")
	byRep := strings.Index(md, "## Leads by Rep")
	assert.True(t, bySource < byScore && byScore < byRep)

	// Sources alphabetical: ads before web_form
	assert.Less(t, strings.Index(md, "| ads | 1 |"), strings.Index(md, "| web_form | 1 |"))
	// Scores MQL then SQL
	assert.Less(t, strings.Index(md, "| MQL | 0 |"), strings.Index(md, "| SQL | 0 |"))
	// Reps in roster order
	assert.Less(t, strings.Index(md, "| Alice | 0 |"), strings.Index(md, "| Bob | 0 |"))
	assert.Less(t, strings.Index(md, "| Bob | 0 |"), strings.Index(md, "| Carol | 0 |"))
}
