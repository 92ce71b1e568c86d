package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/xavierca1/dealflow-pipeline/internal/entity"
)

// Placeholder enrichment values. This stage stands in for a real data
// provider; the contract is the deterministic key set, not the values.
const (
	EnrichmentCompany  = "Acme Corp"
	EnrichmentIndustry = "Technology"
	EnrichmentLocation = "San Francisco, CA"
)

type EnrichLeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewEnrichLeadUseCase(repo entity.LeadRepositoryInterface) *EnrichLeadUseCase {
	return &EnrichLeadUseCase{Repo: repo}
}

// Execute merges the enrichment record into the lead's extra metadata.
// Keys it owns are overwritten, everything else is preserved, so the
// operation is idempotent for a given lead name.
func (uc *EnrichLeadUseCase) Execute(ctx context.Context, leadID int) (*entity.Lead, error) {
	updated, err := uc.Repo.Update(ctx, leadID, func(lead *entity.Lead) error {
		for k, v := range enrichmentFor(lead) {
			lead.Extra[k] = v
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

func enrichmentFor(lead *entity.Lead) map[string]any {
	handle := strings.ToLower(strings.ReplaceAll(lead.Name, " ", ""))
	return map[string]any{
		"company":  EnrichmentCompany,
		"linkedin": "https://linkedin.com/in/" + handle,
		"industry": EnrichmentIndustry,
		"location": EnrichmentLocation,
	}
}
