package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/xavierca1/dealflow-pipeline/internal/entity"
)

type RouteLeadUseCase struct {
	Repo     entity.LeadRepositoryInterface
	Roster   *entity.Roster
	Cursor   AssignmentCursor
	Notifier NotifierInterface
}

func NewRouteLeadUseCase(
	repo entity.LeadRepositoryInterface,
	roster *entity.Roster,
	cursor AssignmentCursor,
	notifier NotifierInterface,
) *RouteLeadUseCase {
	return &RouteLeadUseCase{
		Repo:     repo,
		Roster:   roster,
		Cursor:   cursor,
		Notifier: notifier,
	}
}

// Execute assigns the lead to the next rep in round-robin order.
// The cursor fetch-add gives each call a unique value, so concurrent
// routes never pick from the same position. A missing lead is rejected
// before the cursor moves: failed routes consume nothing.
func (uc *RouteLeadUseCase) Execute(ctx context.Context, leadID int) (*entity.Lead, error) {
	if _, err := uc.Repo.Get(ctx, leadID); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &NotFoundError{LeadID: leadID}
		}
		return nil, err
	}

	rep := uc.Roster.Pick(uc.Cursor.Next())

	updated, err := uc.Repo.Update(ctx, leadID, func(lead *entity.Lead) error {
		repCopy := rep
		lead.AssignedTo = &repCopy
		lead.Status = entity.StatusAssigned
		return nil
	})
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &NotFoundError{LeadID: leadID}
		}
		return nil, err
	}

	// Fire-and-forget. A slow or broken sink must never block or fail
	// the routing call.
	if uc.Notifier != nil {
		go func(leadID int, repName, email string) {
			if err := uc.Notifier.Notify(context.Background(), leadID, repName, email); err != nil {
				log.Printf("⚠️ [ROUTE] notification for lead %d failed: %v", leadID, err)
			}
		}(updated.ID, rep.Name, updated.Email)
	}

	return updated, nil
}
