package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/dealflow-pipeline/internal/entity"
	"github.com/xavierca1/dealflow-pipeline/internal/infra/memory"
)

func seedLead(t *testing.T, store *memory.LeadStore, name, email, source string, extra map[string]any) *entity.Lead {
	t.Helper()
	lead := entity.NewLead(store.NextID(context.Background()), name, email, source, extra)
	assert.NoError(t, store.Put(context.Background(), lead))
	return lead
}

// ============ ENRICH TESTS ============

// TestEnrichLeadSuccess - the deterministic key set lands in extra
func TestEnrichLeadSuccess(t *testing.T) {
	store := memory.NewLeadStore()
	uc := NewEnrichLeadUseCase(store)
	lead := seedLead(t, store, "Jane Doe", "jane@x.com", "web_form", nil)

	enriched, err := uc.Execute(context.Background(), lead.ID)

	assert.NoError(t, err)
	assert.Equal(t, "Acme Corp", enriched.Extra["company"])
	assert.Equal(t, "https://linkedin.com/in/janedoe", enriched.Extra["linkedin"])
	assert.Equal(t, "Technology", enriched.Extra["industry"])
	assert.Equal(t, "San Francisco, CA", enriched.Extra["location"])
}

// TestEnrichLeadIdempotent - running twice yields the same values
func TestEnrichLeadIdempotent(t *testing.T) {
	store := memory.NewLeadStore()
	uc := NewEnrichLeadUseCase(store)
	lead := seedLead(t, store, "Jane Doe", "jane@x.com", "web_form", nil)

	first, err := uc.Execute(context.Background(), lead.ID)
	assert.NoError(t, err)

	second, err := uc.Execute(context.Background(), lead.ID)
	assert.NoError(t, err)

	assert.Equal(t, first.Extra, second.Extra)
}

// TestEnrichLeadPreservesUnrelatedKeys - pre-existing keys survive, owned keys are overwritten
func TestEnrichLeadPreservesUnrelatedKeys(t *testing.T) {
	store := memory.NewLeadStore()
	uc := NewEnrichLeadUseCase(store)
	lead := seedLead(t, store, "Jane Doe", "jane@x.com", "web_form", map[string]any{
		"campaign": "q3-launch",
		"company":  "Old Co", // overwritten by enrichment
	})

	enriched, err := uc.Execute(context.Background(), lead.ID)

	assert.NoError(t, err)
	assert.Equal(t, "q3-launch", enriched.Extra["campaign"])
	assert.Equal(t, "Acme Corp", enriched.Extra["company"])
}

// TestEnrichLeadNotFound - absent id fails and the store stays untouched
func TestEnrichLeadNotFound(t *testing.T) {
	store := memory.NewLeadStore()
	uc := NewEnrichLeadUseCase(store)

	_, err := uc.Execute(context.Background(), 99)

	assert.Error(t, err)
	assert.True(t, IsNotFoundError(err))
	assert.Equal(t, 0, store.Len(context.Background()))
}
