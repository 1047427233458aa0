// Package confirm is the two-step state machine gating destructive ledger
// operations: a deletion is requested, then either confirmed or cancelled.
package confirm

// AllTransactions is the sentinel target meaning "clear the entire ledger"
// rather than a single transaction id. Real ids are positive timestamps.
const AllTransactions int64 = -1

// Flow holds at most one pending confirmation. Issuing a new request while
// one is pending overwrites the previous target - last request wins. The
// zero value is idle and ready to use.
type Flow struct {
	target  int64
	pending bool
}

// Request moves the flow to pending for the given target.
func (f *Flow) Request(target int64) {
	f.target = target
	f.pending = true
}

// Pending returns the pending target, if any.
func (f *Flow) Pending() (int64, bool) {
	if !f.pending {
		return 0, false
	}

	return f.target, true
}

// Confirm resolves the pending request and returns its target. The caller
// performs the actual mutation; the flow returns to idle either way.
func (f *Flow) Confirm() (int64, bool) {
	if !f.pending {
		return 0, false
	}

	f.pending = false

	return f.target, true
}

// Cancel abandons the pending request without any mutation.
func (f *Flow) Cancel() {
	f.pending = false
	f.target = 0
}
