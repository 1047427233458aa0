package ledger

import (
	"testing"

	m "expense-tracker-tui/models"
)

func TestSummarize(t *testing.T) {
	txs := []m.Transaction{
		{ID: 3, Description: "Groceries", Amount: -55.5, Date: "2024-01-03", Category: "Groceries"},
		{ID: 2, Description: "Rent", Amount: -800, Date: "2024-01-02", Category: "Rent"},
		{ID: 1, Description: "Salary", Amount: 2000, Date: "2024-01-01", Category: "Salary"},
	}
	cats := []string{"Salary", "Rent", "Groceries", "Travel"}

	sum := Summarize(txs, cats)

	t.Run("totals", func(t *testing.T) {
		if sum.Income != 2000 {
			t.Fatalf("income = %v", sum.Income)
		}

		if sum.Expenses != -855.5 {
			t.Fatalf("expenses = %v", sum.Expenses)
		}

		if sum.Balance != sum.Income+sum.Expenses {
			t.Fatalf("balance %v != income %v + expenses %v", sum.Balance, sum.Income, sum.Expenses)
		}
	})

	t.Run("per-category subtotals cover every registry entry", func(t *testing.T) {
		if len(sum.ByCategory) != len(cats) {
			t.Fatalf("expected %d categories, got %d", len(cats), len(sum.ByCategory))
		}

		if sum.ByCategory["Salary"] != 2000 || sum.ByCategory["Rent"] != -800 ||
			sum.ByCategory["Groceries"] != -55.5 {
			t.Fatalf("unexpected subtotals: %v", sum.ByCategory)
		}

		// no matching transactions still yields an explicit zero
		if v, ok := sum.ByCategory["Travel"]; !ok || v != 0 {
			t.Fatalf("Travel = %v (present=%v)", v, ok)
		}
	})

	t.Run("uncategorized and unknown categories are excluded", func(t *testing.T) {
		extra := append(txs, m.Transaction{ID: 4, Description: "Misc", Amount: -10, Category: "Gone"})

		s := Summarize(extra, cats)
		if _, ok := s.ByCategory["Gone"]; ok {
			t.Fatal("category outside the registry appeared in the summary")
		}
	})
}

func TestSummarizeEmptyLedger(t *testing.T) {
	sum := Summarize(nil, []string{"Rent"})

	if sum.Income != 0 || sum.Expenses != 0 || sum.Balance != 0 {
		t.Fatalf("unexpected totals for empty ledger: %+v", sum)
	}

	if sum.ByCategory["Rent"] != 0 {
		t.Fatalf("Rent = %v", sum.ByCategory["Rent"])
	}
}

func TestSummarizeZeroAmount(t *testing.T) {
	txs := []m.Transaction{
		{ID: 1, Description: "Salary", Amount: 100},
		{ID: 2, Description: "Placeholder", Amount: 0},
		{ID: 3, Description: "Rent", Amount: -40},
	}

	sum := Summarize(txs, nil)

	// zero counts toward neither income nor expenses, and balance is still
	// exactly income + expenses
	if sum.Income != 100 || sum.Expenses != -40 || sum.Balance != 60 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestSummarizeSignInvariants(t *testing.T) {
	txs := []m.Transaction{
		{ID: 1, Amount: 12.34},
		{ID: 2, Amount: -0.01},
		{ID: 3, Amount: 99},
		{ID: 4, Amount: -45.67},
	}

	sum := Summarize(txs, nil)

	if sum.Income < 0 {
		t.Fatalf("income went negative: %v", sum.Income)
	}

	if sum.Expenses > 0 {
		t.Fatalf("expenses went positive: %v", sum.Expenses)
	}
}
