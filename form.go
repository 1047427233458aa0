package main

import (
	"errors"
	"time"

	c "expense-tracker-tui/constants"
	"expense-tracker-tui/ledger"
	m "expense-tracker-tui/models"

	"github.com/rivo/tview"
)

// getTrackerPage assembles the main page: the entry form and status line
// on the left, the filter and transactions table on the right, and the
// summary beneath the form.
func getTrackerPage() tview.Primitive {
	ET.DescField = tview.NewInputField().
		SetLabel(ET.T["FormDescriptionLabel"]).
		SetPlaceholder(ET.T["FormDescriptionPlaceholder"]).
		SetFieldWidth(24)

	ET.AmountField = tview.NewInputField().
		SetLabel(ET.T["FormAmountLabel"]).
		SetPlaceholder(ET.T["FormAmountPlaceholder"]).
		SetFieldWidth(12)

	ET.DateField = tview.NewInputField().
		SetLabel(ET.T["FormDateLabel"]).
		SetText(time.Now().Format(c.ISODateFormat)).
		SetFieldWidth(12)

	ET.Form = tview.NewForm()
	ET.Form.SetBorder(true).SetTitle(ET.T["FormTitle"])

	buildForm()

	ET.StatusText = tview.NewTextView()
	ET.StatusText.SetDynamicColors(true)

	ET.SummaryView = tview.NewTextView()
	ET.SummaryView.SetDynamicColors(true)
	ET.SummaryView.SetBorder(true).SetTitle(ET.T["SummaryTitle"])

	getTransactionsTable()

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ET.Form, 0, 3, true).
		AddItem(ET.StatusText, 1, 0, false).
		AddItem(ET.SummaryView, 0, 2, false)

	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ET.FilterField, 1, 0, false).
		AddItem(ET.TransactionsTable, 0, 1, false)

	return tview.NewFlex().
		AddItem(left, 0, 2, true).
		AddItem(right, 0, 3, false)
}

// buildForm (re)populates the entry form. It runs once at startup and
// again whenever the category feature is toggled or the registry changes,
// since the category dropdown's options live in the registry. Field values
// survive the rebuild because the input fields themselves are reused.
func buildForm() {
	ET.Form.Clear(true)

	ET.Form.AddFormItem(ET.DescField).
		AddFormItem(ET.AmountField).
		AddFormItem(ET.DateField)

	if ET.ShowCategories {
		labels := ET.Registry.All()

		selected := 0

		for i := range labels {
			if labels[i] == ET.Registry.Selected() {
				selected = i

				break
			}
		}

		ET.CategoryDrop = tview.NewDropDown().
			SetLabel(ET.T["FormCategoryLabel"]).
			SetOptions(labels, func(label string, _ int) {
				ET.Registry.Select(label)
			})

		if len(labels) > 0 {
			ET.CategoryDrop.SetCurrentOption(selected)
		}

		ET.Form.AddFormItem(ET.CategoryDrop)
	}

	codes := []string{}
	current := 0

	for i, cur := range m.Currencies() {
		codes = append(codes, string(cur)+" ("+cur.Symbol()+")")

		if cur == ET.Currency {
			current = i
		}
	}

	ET.CurrencyDrop = tview.NewDropDown().
		SetLabel(ET.T["FormCurrencyLabel"]).
		SetOptions(codes, func(_ string, index int) {
			if index < 0 {
				return
			}

			ET.setCurrency(m.Currencies()[index])
			renderSummary()
			renderTransactionsTable()
		})

	ET.CurrencyDrop.SetCurrentOption(current)

	ET.Form.AddFormItem(ET.CurrencyDrop)

	ET.Form.AddButton(ET.T["FormAddButton"], addTransaction)
}

// addTransaction submits the form. Validation failures leave every field
// untouched so the user can correct the input; on success the transient
// fields reset and the date returns to today.
func addTransaction() {
	category := ""
	if ET.ShowCategories {
		category = ET.Registry.Selected()
	}

	_, err := ET.Ledger.Add(
		ET.DescField.GetText(),
		ET.AmountField.GetText(),
		ET.DateField.GetText(),
		category,
	)

	switch {
	case errors.Is(err, ledger.ErrEmptyDescription):
		setStatus(ET.T["StatusEmptyDescription"])
		return
	case errors.Is(err, ledger.ErrInvalidAmount):
		setStatus(ET.T["StatusInvalidAmount"])
		return
	case errors.Is(err, ledger.ErrInvalidDate):
		setStatus(ET.T["StatusInvalidDate"])
		return
	case err != nil:
		// the entry is in memory; only the write-through failed
		setStatus(ET.T["StatusSaveFailed"])
	}

	ET.DescField.SetText("")
	ET.AmountField.SetText("")
	ET.DateField.SetText(time.Now().Format(c.ISODateFormat))

	setStatus(ET.T["StatusAdded"])
	render()
}
