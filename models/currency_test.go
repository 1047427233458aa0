package models

import "testing"

func TestParseCurrency(t *testing.T) {
	t.Run("known codes parse to themselves", func(t *testing.T) {
		for _, c := range Currencies() {
			if got := ParseCurrency(string(c)); got != c {
				t.Fatalf("ParseCurrency(%v) = %v", c, got)
			}
		}
	})

	t.Run("unknown code falls back to the default", func(t *testing.T) {
		for _, bad := range []string{"", "usd", "XYZ", "$"} {
			if got := ParseCurrency(bad); got != DefaultCurrency {
				t.Fatalf("ParseCurrency(%q) = %v, expected %v", bad, got, DefaultCurrency)
			}
		}
	})
}

func TestCurrencyFormat(t *testing.T) {
	if got := USD.Format(1234.5); got != "$1,234.50" {
		t.Fatalf("USD.Format(1234.5) = %q", got)
	}

	if got := EUR.Format(0); got != "€0.00" {
		t.Fatalf("EUR.Format(0) = %q", got)
	}

	if got := USD.FormatAbs(-800); got != "$800.00" {
		t.Fatalf("USD.FormatAbs(-800) = %q", got)
	}
}
