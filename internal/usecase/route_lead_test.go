package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/dealflow-pipeline/internal/entity"
	"github.com/xavierca1/dealflow-pipeline/internal/infra/memory"
)

type notification struct {
	LeadID  int
	RepName string
	Email   string
}

// fakeNotifier records notifications on a channel so tests can wait for
// the fire-and-forget goroutine.
type fakeNotifier struct {
	received chan notification
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{received: make(chan notification, 16)}
}

func (f *fakeNotifier) Notify(ctx context.Context, leadID int, repName, email string) error {
	f.received <- notification{LeadID: leadID, RepName: repName, Email: email}
	return nil
}

func (f *fakeNotifier) wait(t *testing.T) notification {
	t.Helper()
	select {
	case n := <-f.received:
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("no notification received")
		return notification{}
	}
}

// ============ ROUTE TESTS ============

// TestRouteLeadAssignsAndNotifies - status and assignment change together, sink fires
func TestRouteLeadAssignsAndNotifies(t *testing.T) {
	store := memory.NewLeadStore()
	notifier := newFakeNotifier()
	uc := NewRouteLeadUseCase(store, entity.DefaultRoster(), memory.NewCursor(), notifier)
	lead := seedLead(t, store, "Jane Doe", "jane@x.com", "web_form", nil)

	routed, err := uc.Execute(context.Background(), lead.ID)

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusAssigned, routed.Status)
	assert.NotNil(t, routed.AssignedTo)
	assert.Equal(t, "Alice", routed.AssignedTo.Name)

	n := notifier.wait(t)
	assert.Equal(t, lead.ID, n.LeadID)
	assert.Equal(t, "Alice", n.RepName)
	assert.Equal(t, "jane@x.com", n.Email)
}

// TestRouteLeadRoundRobin - 7 sequential routes over 3 reps: [0,1,2,0,1,2,0], final cursor 7
func TestRouteLeadRoundRobin(t *testing.T) {
	store := memory.NewLeadStore()
	cursor := memory.NewCursor()
	uc := NewRouteLeadUseCase(store, entity.DefaultRoster(), cursor, nil)

	expected := []string{"Alice", "Bob", "Carol", "Alice", "Bob", "Carol", "Alice"}

	for i, want := range expected {
		lead := seedLead(t, store, "Lead", "lead@x.com", "web_form", nil)
		routed, err := uc.Execute(context.Background(), lead.ID)
		assert.NoError(t, err)
		assert.Equal(t, want, routed.AssignedTo.Name, "call %d", i)
	}

	assert.Equal(t, uint64(7), cursor.Value())
}

// TestRouteLeadAssignmentIsACopy - the lead keeps its own rep record
func TestRouteLeadAssignmentIsACopy(t *testing.T) {
	store := memory.NewLeadStore()
	uc := NewRouteLeadUseCase(store, entity.DefaultRoster(), memory.NewCursor(), nil)
	lead := seedLead(t, store, "Jane Doe", "jane@x.com", "web_form", nil)

	routed, err := uc.Execute(context.Background(), lead.ID)
	assert.NoError(t, err)

	// Mutating the returned record must not affect what is stored
	routed.AssignedTo.Name = "Mallory"

	stored, err := store.Get(context.Background(), lead.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", stored.AssignedTo.Name)
}

// TestRouteLeadNotFound - a failed route consumes no cursor value
func TestRouteLeadNotFound(t *testing.T) {
	store := memory.NewLeadStore()
	cursor := memory.NewCursor()
	notifier := newFakeNotifier()
	uc := NewRouteLeadUseCase(store, entity.DefaultRoster(), cursor, notifier)

	_, err := uc.Execute(context.Background(), 99)

	assert.Error(t, err)
	assert.True(t, IsNotFoundError(err))
	assert.Equal(t, uint64(0), cursor.Value())
	assert.Equal(t, 0, store.Len(context.Background()))
	assert.Empty(t, notifier.received)
}

// TestRouteLeadWithoutNotifier - routing works with no sink wired at all
func TestRouteLeadWithoutNotifier(t *testing.T) {
	store := memory.NewLeadStore()
	uc := NewRouteLeadUseCase(store, entity.DefaultRoster(), memory.NewCursor(), nil)
	lead := seedLead(t, store, "Jane Doe", "jane@x.com", "web_form", nil)

	routed, err := uc.Execute(context.Background(), lead.ID)

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusAssigned, routed.Status)
}
