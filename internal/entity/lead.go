package entity

import (
	"context"
	"errors"
	"time"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

// Lead status values. A lead starts as "new" and only moves to
// "assigned" when routing picks a rep for it.
const (
	StatusNew      = "new"
	StatusAssigned = "assigned"
)

// Score labels (Sales-Qualified / Marketing-Qualified).
const (
	ScoreSQL = "SQL"
	ScoreMQL = "MQL"
)

// ErrLeadNotFound is returned by the store when a lead id does not exist.
var ErrLeadNotFound = errors.New("lead not found")

type Lead struct {
	ID        int            `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Source    string         `json:"source"`
	Extra     map[string]any `json:"extra"`
	Status    string         `json:"status"`
	Score     string         `json:"score,omitempty"`

	// AssignedTo holds a copy of the roster entry, not a reference.
	// Roster changes after assignment must not rewrite history.
	AssignedTo *SalesRep `json:"assigned_to,omitempty"`
}

// Factory
func NewLead(id int, name, email, source string, extra map[string]any) *Lead {
	if extra == nil {
		extra = map[string]any{}
	}
	return &Lead{
		ID:        id,
		CreatedAt: time.Now(),
		Name:      name,
		Email:     email,
		Source:    source,
		Extra:     extra,
		Status:    StatusNew,
	}
}

// Clone returns a deep copy of the lead so callers outside the store
// can never mutate shared state through a returned pointer.
func (l *Lead) Clone() *Lead {
	cp := *l
	cp.Extra = make(map[string]any, len(l.Extra))
	for k, v := range l.Extra {
		cp.Extra[k] = v
	}
	if l.AssignedTo != nil {
		rep := *l.AssignedTo
		cp.AssignedTo = &rep
	}
	return &cp
}

type LeadRepositoryInterface interface {

	// NextID allocates a new unique lead id. Monotonic, never reused,
	// safe under concurrent ingestion.
	NextID(ctx context.Context) int

	Put(ctx context.Context, lead *Lead) error

	// Get returns a copy of the lead or ErrLeadNotFound.
	Get(ctx context.Context, id int) (*Lead, error)

	// Update applies fn to the stored lead as one atomic read-modify-write
	// and returns a copy of the result. ErrLeadNotFound if id is absent.
	Update(ctx context.Context, id int, fn func(*Lead) error) (*Lead, error)

	// Snapshot returns a point-in-time copy of every lead.
	Snapshot(ctx context.Context) []*Lead
}
