package usecase

import "context"

// NotifierInterface is the sink for routing notifications. Delivery is
// fire-and-forget: routing never waits on it and never fails because of it.
type NotifierInterface interface {
	Notify(ctx context.Context, leadID int, repName, email string) error
}

// AssignmentCursor hands out strictly increasing cursor values, one per
// successful route call.
type AssignmentCursor interface {
	Next() uint64
}
