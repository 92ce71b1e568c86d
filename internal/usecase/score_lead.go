package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/dealflow-pipeline/internal/entity"
)

// sourceWebForm is the only source the rule treats as sales-qualified.
const sourceWebForm = "web_form"

type ScoreLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewScoreLeadUseCase(repo entity.LeadRepositoryInterface) *ScoreLeadUseCase {
	return &ScoreLeadUseCase{Repo: repo}
}

// Execute classifies the lead as SQL or MQL. Total function: every lead
// gets a label, there is no unclassified branch.
func (uc *ScoreLeadUseCase) Execute(ctx context.Context, leadID int) (*entity.Lead, error) {
	updated, err := uc.Repo.Update(ctx, leadID, func(lead *entity.Lead) error {
		company, _ := lead.Extra["company"].(string)
		if company == EnrichmentCompany && lead.Source == sourceWebForm {
			lead.Score = entity.ScoreSQL
		} else {
			lead.Score = entity.ScoreMQL
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &NotFoundError{LeadID: leadID}
		}
		return nil, err
	}
	return updated, nil
}
