// Package ledger holds the in-memory transaction list and its aggregation.
// Every mutation writes the full list back to the persistent store before
// returning, so the store never diverges from memory for longer than one
// operation.
package ledger

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	c "expense-tracker-tui/constants"
	m "expense-tracker-tui/models"
	"expense-tracker-tui/store"
)

var (
	// ErrEmptyDescription is returned by Add for blank descriptions. The
	// ledger is not mutated and nothing is persisted.
	ErrEmptyDescription = errors.New("description must not be blank")

	// ErrInvalidAmount is returned by Add when the amount does not parse
	// to a finite number.
	ErrInvalidAmount = errors.New("amount must be a finite number")

	// ErrInvalidDate is returned by Add for a date that is not a valid
	// YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
)

// Ledger is the ordered, newest-first list of transactions.
type Ledger struct {
	store store.Store
	txs   []m.Transaction
}

// New loads the persisted transaction list, falling back to an empty ledger
// when the key is absent or unreadable.
func New(s store.Store) *Ledger {
	return &Ledger{
		store: s,
		txs:   store.LoadJSON(s, c.KeyTransactions, []m.Transaction{}),
	}
}

// Add validates the input, prepends a new transaction and persists the
// list. An empty date defaults to today. The returned transaction carries
// the freshly assigned id.
func (l *Ledger) Add(description, amount, date, category string) (m.Transaction, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return m.Transaction{}, ErrEmptyDescription
	}

	amt, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil || math.IsNaN(amt) || math.IsInf(amt, 0) {
		return m.Transaction{}, ErrInvalidAmount
	}

	if date == "" {
		date = time.Now().Format(c.ISODateFormat)
	}

	parsed, err := time.Parse(c.ISODateFormat, date)
	if err != nil {
		return m.Transaction{}, ErrInvalidDate
	}

	tx := m.Transaction{
		ID:          l.nextID(),
		Description: description,
		Amount:      amt,
		Date:        parsed.Format(c.ISODateFormat),
		Category:    category,
	}

	l.txs = append([]m.Transaction{tx}, l.txs...)

	return tx, l.persist()
}

// nextID assigns a unix-millisecond creation timestamp. Two adds within the
// same millisecond must still get distinct ids, so the clock value is
// bumped past the newest existing id when it has not advanced.
func (l *Ledger) nextID() int64 {
	id := time.Now().UnixMilli()
	if len(l.txs) > 0 && id <= l.txs[0].ID {
		id = l.txs[0].ID + 1
	}

	return id
}

// Remove deletes the transaction with the matching id. An absent id is a
// no-op, and nothing is persisted in that case.
func (l *Ledger) Remove(id int64) error {
	for i := range l.txs {
		if l.txs[i].ID != id {
			continue
		}

		l.txs = append(l.txs[:i], l.txs[i+1:]...)

		return l.persist()
	}

	return nil
}

// Clear empties the ledger entirely. Destructive - callers gate this behind
// the confirmation flow.
func (l *Ledger) Clear() error {
	l.txs = []m.Transaction{}

	return l.persist()
}

// All returns a copy of the transactions, newest first.
func (l *Ledger) All() []m.Transaction {
	out := make([]m.Transaction, len(l.txs))
	copy(out, l.txs)

	return out
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	return len(l.txs)
}

func (l *Ledger) persist() error {
	return store.SaveJSON(l.store, c.KeyTransactions, l.txs)
}
