package store

import (
	"testing"

	m "expense-tracker-tui/models"
)

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}

	t.Run("missing key", func(t *testing.T) {
		if v, ok := s.Load("transactions"); ok {
			t.Fatalf("expected absent key, got %q", v)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		if err := s.Save("darkMode", "true"); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		v, ok := s.Load("darkMode")
		if !ok || v != "true" {
			t.Fatalf("expected \"true\", got %q (present=%v)", v, ok)
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		if err := s.Save("darkMode", "false"); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		if v, _ := s.Load("darkMode"); v != "false" {
			t.Fatalf("expected \"false\", got %q", v)
		}
	})
}

func TestLoadJSON(t *testing.T) {
	t.Run("absent key returns default", func(t *testing.T) {
		s := NewMemStore()

		got := LoadJSON(s, "showCategories", true)
		if !got {
			t.Fatal("expected the default value for an absent key")
		}
	})

	t.Run("corrupt value returns default and leaves the store alone", func(t *testing.T) {
		s := NewMemStore()
		if err := s.Save("transactions", "{not json"); err != nil {
			t.Fatal(err)
		}

		got := LoadJSON(s, "transactions", []m.Transaction{})
		if len(got) != 0 {
			t.Fatalf("expected the default, got %v", got)
		}

		// lazy repair: the bad value stays until the next explicit save
		if v, _ := s.Load("transactions"); v != "{not json" {
			t.Fatalf("store was modified on a failed load: %q", v)
		}
	})

	t.Run("transactions round trip preserves order and fields", func(t *testing.T) {
		s := NewMemStore()
		txs := []m.Transaction{
			{ID: 1700000000002, Description: "Rent", Amount: -800, Date: "2024-01-02", Category: "Rent"},
			{ID: 1700000000001, Description: "Salary", Amount: 2000, Date: "2024-01-01"},
		}

		if err := SaveJSON(s, "transactions", txs); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		got := LoadJSON(s, "transactions", []m.Transaction{})
		if len(got) != len(txs) {
			t.Fatalf("expected %d transactions, got %d", len(txs), len(got))
		}

		for i := range txs {
			if got[i] != txs[i] {
				t.Fatalf("transaction %d changed across the round trip: %+v vs %+v", i, got[i], txs[i])
			}
		}
	})
}
