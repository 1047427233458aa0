package tips

import "testing"

func TestForDate(t *testing.T) {
	t.Run("same date always yields the same tip", func(t *testing.T) {
		a := ForDate("2024-01-01")
		b := ForDate("2024-01-01")

		if a == "" || a != b {
			t.Fatalf("tip not deterministic: %q vs %q", a, b)
		}
	})

	t.Run("tips come from the fixed list", func(t *testing.T) {
		dates := []string{"2024-01-01", "2024-06-15", "2025-12-31", "1999-02-28"}

		for _, d := range dates {
			got := ForDate(d)

			found := false
			for _, tip := range tips {
				if tip == got {
					found = true

					break
				}
			}

			if !found {
				t.Fatalf("ForDate(%v) returned a string outside the tip list: %q", d, got)
			}
		}
	})

	t.Run("char code sum selects the index", func(t *testing.T) {
		date := "2024-01-01"

		sum := 0
		for _, b := range []byte(date) {
			sum += int(b)
		}

		if got := ForDate(date); got != tips[sum%len(tips)] {
			t.Fatalf("ForDate(%v) = %q, expected index %d", date, got, sum%len(tips))
		}
	})
}

func TestForToday(t *testing.T) {
	if ForToday() != ForToday() {
		t.Fatal("today's tip changed between calls")
	}
}
