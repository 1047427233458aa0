// Package categories maintains the ordered list of category labels and the
// transient "currently selected" label that new transactions default to.
package categories

import (
	"strings"

	c "expense-tracker-tui/constants"
	"expense-tracker-tui/store"
)

// DefaultLabels seeds the registry the first time the application runs.
func DefaultLabels() []string {
	return []string{"General", "Salary", "Rent", "Groceries"}
}

// Registry is an ordered sequence of unique labels. Order is significant;
// it drives both display and the up/down controls. The selection is not
// persisted - it always points at an existing entry, or nothing when the
// registry is empty.
type Registry struct {
	store    store.Store
	labels   []string
	selected string
}

// New loads the persisted labels, falling back to the default set, and
// selects the first entry.
func New(s store.Store) *Registry {
	r := &Registry{
		store:  s,
		labels: store.LoadJSON(s, c.KeyCategories, DefaultLabels()),
	}

	if len(r.labels) > 0 {
		r.selected = r.labels[0]
	}

	return r
}

// Add appends a trimmed label, refusing empties and exact (case-sensitive)
// duplicates. The first label added to an empty registry becomes selected.
func (r *Registry) Add(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" || r.contains(label) {
		return false
	}

	r.labels = append(r.labels, label)

	if r.selected == "" {
		r.selected = label
	}

	r.persist()

	return true
}

// RemoveAt drops the label at the given position; out-of-range indices are
// ignored. When the selected label disappears, selection falls back to the
// new first entry, or clears when the registry is empty.
func (r *Registry) RemoveAt(i int) {
	if i < 0 || i >= len(r.labels) {
		return
	}

	r.labels = append(r.labels[:i], r.labels[i+1:]...)

	if !r.contains(r.selected) {
		if len(r.labels) > 0 {
			r.selected = r.labels[0]
		} else {
			r.selected = ""
		}
	}

	r.persist()
}

// Move repositions the label at from to position to. Any index outside
// [0, len) makes this a silent no-op. The up/down controls call this with
// i-1 and i+1.
func (r *Registry) Move(from, to int) {
	if from < 0 || from >= len(r.labels) || to < 0 || to >= len(r.labels) || from == to {
		return
	}

	label := r.labels[from]
	r.labels = append(r.labels[:from], r.labels[from+1:]...)

	rest := append([]string{label}, r.labels[to:]...)
	r.labels = append(r.labels[:to:to], rest...)

	r.persist()
}

// Select makes label the default for new transactions. Only labels that
// exist in the registry are selectable.
func (r *Registry) Select(label string) bool {
	if !r.contains(label) {
		return false
	}

	r.selected = label

	return true
}

// Selected returns the current default label, or "" when the registry is
// empty.
func (r *Registry) Selected() string {
	return r.selected
}

// All returns a copy of the labels in display order.
func (r *Registry) All() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)

	return out
}

// Len returns the number of labels.
func (r *Registry) Len() int {
	return len(r.labels)
}

func (r *Registry) contains(label string) bool {
	for i := range r.labels {
		if r.labels[i] == label {
			return true
		}
	}

	return false
}

func (r *Registry) persist() {
	// Nothing sensible can be done about a failed write mid-session; the
	// in-memory registry stays authoritative and the next mutation retries.
	_ = store.SaveJSON(r.store, c.KeyCategories, r.labels)
}
