package models

// Transaction is a single income or expense record. The sign of Amount
// determines its classification: positive is income, negative is an
// expense. The JSON field names match the persisted store layout.
type Transaction struct {
	// Unix-millisecond creation timestamp; unique within the ledger and
	// never reused or mutated.
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	// ISO calendar date, YYYY-MM-DD.
	Date string `json:"date"`
	// Only tagged while the category feature is enabled; preserved on
	// historical records when the feature is turned off.
	Category string `json:"category,omitempty"`
}
