package entity

// SalesRep is a roster entry. Static descriptive data only, read-only
// after the roster is built.
type SalesRep struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Comment   string `json:"comment"`
}

// Roster is the fixed, ordered list of assignable reps. It never grows
// at runtime, so it needs no locking.
type Roster struct {
	reps []SalesRep
}

func NewRoster(reps []SalesRep) *Roster {
	cp := make([]SalesRep, len(reps))
	copy(cp, reps)
	return &Roster{reps: cp}
}

// DefaultRoster is the team the pipeline ships with.
func DefaultRoster() *Roster {
	return NewRoster([]SalesRep{
		{ID: 1, Name: "Alice", Specialty: "Startup founders, corporate execs", Comment: "Great with high-value and target buyers"},
		{ID: 2, Name: "Bob", Specialty: "ML engineers, students, researchers", Comment: "Technical, connects with influencers and evangelists"},
		{ID: 3, Name: "Carol", Specialty: "Investors, VCs, referrals", Comment: "Understands investor mindset, builds relationships"},
	})
}

// Pick selects the rep for a given cursor value (round-robin).
// Returned by value: assignments must hold a copy, not a reference.
func (r *Roster) Pick(cursor uint64) SalesRep {
	return r.reps[cursor%uint64(len(r.reps))]
}

func (r *Roster) Size() int {
	return len(r.reps)
}

// Reps returns a copy of the roster entries in order.
func (r *Roster) Reps() []SalesRep {
	cp := make([]SalesRep, len(r.reps))
	copy(cp, r.reps)
	return cp
}
