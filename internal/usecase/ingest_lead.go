package usecase

import (
	"context"

	"github.com/xavierca1/dealflow-pipeline/internal/entity"
)

type IngestLeadInput struct {
	Name   string         `json:"name"`
	Email  string         `json:"email"`
	Source string         `json:"source"`
	Extra  map[string]any `json:"extra,omitempty"`
}

type IngestLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewIngestLeadUseCase(repo entity.LeadRepositoryInterface) *IngestLeadUseCase {
	return &IngestLeadUseCase{Repo: repo}
}

// Execute validates the input, allocates a fresh id and stores the new
// lead with status "new", no score and no assignment.
func (uc *IngestLeadUseCase) Execute(ctx context.Context, input IngestLeadInput) (*entity.Lead, error) {
	if errs := ValidateIngestLeadInput(input); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	id := uc.Repo.NextID(ctx)
	lead := entity.NewLead(id, input.Name, input.Email, input.Source, input.Extra)

	if err := uc.Repo.Put(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "STORE_ERROR",
			Message: "failed to store lead: " + err.Error(),
		}
	}

	return lead, nil
}
