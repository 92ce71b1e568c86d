package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/xavierca1/dealflow-pipeline/internal/entity"
)

type ReportData struct {
	TotalLeads    int            `json:"total_leads"`
	LeadsBySource map[string]int `json:"leads_by_source"`
	LeadsByScore  map[string]int `json:"leads_by_score"`
	LeadsByRep    map[string]int `json:"leads_by_rep"`
}

type ReportOutput struct {
	ReportDocument string     `json:"report_document"`
	ReportData     ReportData `json:"report_data"`
}

type ReportPerformanceUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Roster *entity.Roster
}

func NewReportPerformanceUseCase(repo entity.LeadRepositoryInterface, roster *entity.Roster) *ReportPerformanceUseCase {
	return &ReportPerformanceUseCase{Repo: repo, Roster: roster}
}

// Execute aggregates the full store into counts plus a rendered
// markdown document. It tolerates an empty store (all-zero counts) and
// never fails.
func (uc *ReportPerformanceUseCase) Execute(ctx context.Context) (*ReportOutput, error) {
	leads := uc.Repo.Snapshot(ctx)

	data := ReportData{
		TotalLeads:    len(leads),
		LeadsBySource: map[string]int{},
		LeadsByScore:  map[string]int{entity.ScoreMQL: 0, entity.ScoreSQL: 0},
		LeadsByRep:    map[string]int{},
	}
	for _, rep := range uc.Roster.Reps() {
		data.LeadsByRep[rep.Name] = 0
	}

	for _, lead := range leads {
		data.LeadsBySource[lead.Source]++

		// Unscored leads are simply excluded from the score breakdown.
		if _, ok := data.LeadsByScore[lead.Score]; ok {
			data.LeadsByScore[lead.Score]++
		}

		// Assignments always copy a roster record, but a rep missing
		// from the current roster is skipped rather than counted.
		if lead.AssignedTo != nil {
			if _, ok := data.LeadsByRep[lead.AssignedTo.Name]; ok {
				data.LeadsByRep[lead.AssignedTo.Name]++
			}
		}
	}

	return &ReportOutput{
		ReportDocument: uc.formatReportDocument(data),
		ReportData:     data,
	}, nil
}

// formatReportDocument renders the three tables in a fixed order.
// Map iteration in Go is random, so each grouping gets an explicit row
// order: sources alphabetical, scores MQL then SQL, reps in roster order.
func (uc *ReportPerformanceUseCase) formatReportDocument(data ReportData) string {
	var md strings.Builder

	md.WriteString("# DealFlow Report\n\n")
	md.WriteString(fmt.Sprintf("**Total Leads:** %d\n\n", data.TotalLeads))

	md.WriteString("## Leads by Source\n| Source | Count |\n|--------|-------|\n")
	sources := make([]string, 0, len(data.LeadsBySource))
	for src := range data.LeadsBySource {
		sources = append(sources, src)
	}
	sort.Strings(sources)
	for _, src := range sources {
		md.WriteString(fmt.Sprintf("| %s | %d |\n", src, data.LeadsBySource[src]))
	}

	md.WriteString("\n## Leads by Score\n| Score | Count |\n|-------|-------|\n")
	for _, score := range []string{entity.ScoreMQL, entity.ScoreSQL} {
		md.WriteString(fmt.Sprintf("| %s | %d |\n", score, data.LeadsByScore[score]))
	}

	md.WriteString("\n## Leads by Rep\n| Rep | Count |\n|-----|-------|\n")
	for _, rep := range uc.Roster.Reps() {
		md.WriteString(fmt.Sprintf("| %s | %d |\n", rep.Name, data.LeadsByRep[rep.Name]))
	}

	return md.String()
}
