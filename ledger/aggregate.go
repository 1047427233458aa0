package ledger

import m "expense-tracker-tui/models"

// Summary is a pure derivation of a ledger snapshot. Income is the sum of
// positive amounts, Expenses the sum of negative amounts (so it is never
// positive), and Balance is their sum. Zero-amount transactions count
// toward neither subtotal but still appear in the balance by construction.
type Summary struct {
	Income   float64
	Expenses float64
	Balance  float64

	// Per-category subtotals, keyed by every category currently in the
	// registry. Categories with no matching transactions hold zero.
	ByCategory map[string]float64
}

// Summarize recomputes the full summary from scratch. Ledger sizes are
// small enough that incremental maintenance is not worth carrying.
func Summarize(txs []m.Transaction, categories []string) Summary {
	s := Summary{ByCategory: make(map[string]float64, len(categories))}

	for _, cat := range categories {
		s.ByCategory[cat] = 0
	}

	for i := range txs {
		amt := txs[i].Amount

		switch {
		case amt > 0:
			s.Income += amt
		case amt < 0:
			s.Expenses += amt
		}

		if _, ok := s.ByCategory[txs[i].Category]; ok {
			s.ByCategory[txs[i].Category] += amt
		}
	}

	s.Balance = s.Income + s.Expenses

	return s
}
