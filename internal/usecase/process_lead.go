package usecase

import (
	"context"
	"fmt"

	"github.com/xavierca1/dealflow-pipeline/internal/entity"
)

type ProcessLeadInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Source string `json:"source"`
}

type ProcessLeadOutput struct {
	ProcessTrace   string     `json:"process_trace"`
	ReportDocument string     `json:"report_document"`
	ReportData     ReportData `json:"report_data"`
}

// ProcessLeadUseCase drives one lead through the whole pipeline:
// ingest → enrich → score → route → report.
type ProcessLeadUseCase struct {
	Ingest *IngestLeadUseCase
	Enrich *EnrichLeadUseCase
	Score  *ScoreLeadUseCase
	Route  *RouteLeadUseCase
	Report *ReportPerformanceUseCase
}

func NewProcessLeadUseCase(
	ingest *IngestLeadUseCase,
	enrich *EnrichLeadUseCase,
	score *ScoreLeadUseCase,
	route *RouteLeadUseCase,
	report *ReportPerformanceUseCase,
) *ProcessLeadUseCase {
	return &ProcessLeadUseCase{
		Ingest: ingest,
		Enrich: enrich,
		Score:  score,
		Route:  route,
		Report: report,
	}
}

// Execute runs the stages in order. The first failing stage aborts the
// rest and its error propagates to the caller; a partial run is never
// reported as success.
func (uc *ProcessLeadUseCase) Execute(ctx context.Context, input ProcessLeadInput) (*ProcessLeadOutput, error) {
	var (
		lead     *entity.Lead
		enriched *entity.Lead
		scored   *entity.Lead
		routed   *entity.Lead
		report   *ReportOutput
	)

	pipeline := NewPipeline()

	pipeline.AddStage("ingest", func(ctx context.Context) error {
		var err error
		lead, err = uc.Ingest.Execute(ctx, IngestLeadInput{
			Name:   input.Name,
			Email:  input.Email,
			Source: input.Source,
		})
		return err
	})

	pipeline.AddStage("enrich", func(ctx context.Context) error {
		var err error
		enriched, err = uc.Enrich.Execute(ctx, lead.ID)
		return err
	})

	pipeline.AddStage("score", func(ctx context.Context) error {
		var err error
		scored, err = uc.Score.Execute(ctx, lead.ID)
		return err
	})

	pipeline.AddStage("route", func(ctx context.Context) error {
		var err error
		routed, err = uc.Route.Execute(ctx, lead.ID)
		return err
	})

	pipeline.AddStage("report", func(ctx context.Context) error {
		var err error
		report, err = uc.Report.Execute(ctx)
		return err
	})

	if err := pipeline.Execute(ctx); err != nil {
		return nil, err
	}

	return &ProcessLeadOutput{
		ProcessTrace:   buildTrace(input, enriched, scored, routed),
		ReportDocument: report.ReportDocument,
		ReportData:     report.ReportData,
	}, nil
}

func buildTrace(input ProcessLeadInput, enriched, scored, routed *entity.Lead) string {
	repName := "N/A"
	if routed.AssignedTo != nil {
		repName = routed.AssignedTo.Name
	}

	return fmt.Sprintf(`
📩 Lead Source: %s
        |
        V
📥 Ingest Lead (%s, %s, %s)
        |
        V
🧠 Enrich Lead (company: %v, LinkedIn: %v, industry: %v)
        |
        V
📈 Score Lead → %s
        |
        V
🔄 Route to Rep → %s
        |
        V
📊 Report → Source counts, score ratios, rep assignments
`,
		input.Source,
		input.Name, input.Email, input.Source,
		enriched.Extra["company"], enriched.Extra["linkedin"], enriched.Extra["industry"],
		scored.Score,
		repName,
	)
}
