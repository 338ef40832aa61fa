package progress

// Tracker is the view of a progress node handed to operations that fan
// out work. Passing nil to an operation is equivalent to passing Nop.
type Tracker interface {
	// CreateChild appends a new leaf under this tracker
	CreateChild() Tracker

	// CreateChildren appends count leaves under this tracker at once
	CreateChildren(count int) []Tracker

	// SetValue sets the normalized value of a leaf
	SetValue(v float64) error

	// MarkCompleted pins the tracker at 1
	MarkCompleted()
}

// Nop is a Tracker that records nothing.
var Nop Tracker = nopTracker{}

type nopTracker struct{}

func (nopTracker) CreateChild() Tracker { return Nop }

func (nopTracker) CreateChildren(count int) []Tracker {
	if count <= 0 {
		return nil
	}
	out := make([]Tracker, count)
	for i := range out {
		out[i] = Nop
	}
	return out
}

func (nopTracker) SetValue(float64) error { return nil }

func (nopTracker) MarkCompleted() {}

// OrNop returns t, or Nop when t is nil. A typed nil *Node also maps to Nop.
func OrNop(t Tracker) Tracker {
	if t == nil {
		return Nop
	}
	if n, ok := t.(*Node); ok && n == nil {
		return Nop
	}
	return t
}
