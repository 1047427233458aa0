package main

import (
	c "expense-tracker-tui/constants"
	m "expense-tracker-tui/models"
	"expense-tracker-tui/store"
)

// Settings are a handful of independent scalars, each persisted under its
// own key. Loading falls back to the documented defaults on missing or
// corrupt values; currency strings are parsed against the closed set.

func (t *Tracker) loadSettings() {
	t.DarkMode = store.LoadJSON(t.Store, c.KeyDarkMode, false)
	t.ShowCategories = store.LoadJSON(t.Store, c.KeyShowCategories, true)
	t.Currency = m.ParseCurrency(store.LoadJSON(t.Store, c.KeyCurrency, string(m.DefaultCurrency)))
}

func (t *Tracker) setDarkMode(v bool) {
	t.DarkMode = v
	_ = store.SaveJSON(t.Store, c.KeyDarkMode, v)
}

func (t *Tracker) setShowCategories(v bool) {
	t.ShowCategories = v
	_ = store.SaveJSON(t.Store, c.KeyShowCategories, v)
}

func (t *Tracker) setCurrency(cur m.Currency) {
	t.Currency = cur
	_ = store.SaveJSON(t.Store, c.KeyCurrency, string(cur))
}
