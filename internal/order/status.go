package order

import "time"

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// Progression is the ordered non-terminal sequence every order moves
// through. Both advancement drivers consume this one table — the server's
// elapsed-time derivation and the client's fixed-interval simulation — so
// the ordering can never disagree between the two.
var Progression = []Status{StatusPending, StatusConfirmed, StatusPreparing, StatusReady}

// Elapsed-time thresholds for DeriveStatus.
const (
	confirmedAfter = 30 * time.Second
	preparingAfter = 90 * time.Second
	readyAfter     = 180 * time.Second
)

// Terminal reports whether the status can never change again. Terminal
// statuses are set by an administrative path outside this service and must
// never be overwritten by derivation or simulation.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// Known reports whether s is one of the defined statuses.
func (s Status) Known() bool {
	if s.Terminal() {
		return true
	}
	for _, p := range Progression {
		if s == p {
			return true
		}
	}
	return false
}

// DeriveStatus maps an order's age at instant now onto the progression:
// under 30s pending, under 90s confirmed, under 180s preparing, then ready.
// A terminal current status is returned unchanged regardless of age.
//
// Pure function of its arguments — persistence of the result is the
// caller's business (see Service.Get).
func DeriveStatus(current Status, createdAt, now time.Time) Status {
	if current.Terminal() {
		return current
	}

	elapsed := now.Sub(createdAt)
	switch {
	case elapsed < confirmedAfter:
		return StatusPending
	case elapsed < preparingAfter:
		return StatusConfirmed
	case elapsed < readyAfter:
		return StatusPreparing
	default:
		return StatusReady
	}
}

// Next returns the status one step further along the progression. It never
// retreats, never advances past ready, and leaves terminal statuses alone.
// This is the stepper the client's offline simulation ticks through.
func Next(current Status) Status {
	if current.Terminal() {
		return current
	}
	for i, s := range Progression {
		if s == current {
			if i == len(Progression)-1 {
				return current
			}
			return Progression[i+1]
		}
	}
	// Unknown input: hold position rather than invent a transition.
	return current
}
