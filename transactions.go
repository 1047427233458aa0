package main

import (
	"fmt"

	c "expense-tracker-tui/constants"
	"expense-tracker-tui/confirm"

	"github.com/gdamore/tcell/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rivo/tview"
)

// getTransactionsTable creates the newest-first transactions table and the
// fuzzy filter field above it.
func getTransactionsTable() {
	ET.FilterField = tview.NewInputField().
		SetLabel(ET.T["FilterLabel"]).
		SetPlaceholder(ET.T["FilterPlaceholder"])

	ET.FilterField.SetChangedFunc(func(text string) {
		ET.Filter = text
		renderTransactionsTable()
	})

	ET.FilterField.SetDoneFunc(func(_ tcell.Key) {
		ET.App.SetFocus(ET.TransactionsTable)
	})

	ET.TransactionsTable = tview.NewTable()
	ET.TransactionsTable.SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)

	ET.TransactionsTable.SetBorder(true).SetTitle(ET.T["TableTitle"])

	// row selection only matters for deletion; everything else is global
	ET.TransactionsTable.SetInputCapture(func(e *tcell.EventKey) *tcell.EventKey {
		if e.Key() == tcell.KeyDelete || e.Rune() == 'd' {
			row, _ := ET.TransactionsTable.GetSelection()

			i := row - 1 // skip the header row
			if i >= 0 && i < len(ET.VisibleIDs) {
				promptDelete(ET.VisibleIDs[i])
			}

			return nil
		}

		return e
	})
}

// renderTransactionsTable redraws every row from the current ledger
// snapshot, applying the fuzzy filter to descriptions. Filtering is
// display-only; totals always cover the full ledger.
func renderTransactionsTable() {
	if ET.TransactionsTable == nil {
		return
	}

	ET.TransactionsTable.Clear()

	headers := []string{
		ET.T["TableHeaderDate"],
		ET.T["TableHeaderDescription"],
		ET.T["TableHeaderAmount"],
	}
	if ET.ShowCategories {
		headers = append(headers, ET.T["TableHeaderCategory"])
	}

	for col, h := range headers {
		cell := tview.NewTableCell(fmt.Sprintf("[%v::b]%v%v", color("ColorTitle"), h, c.ResetStyle)).
			SetSelectable(false).
			SetExpansion(1)
		ET.TransactionsTable.SetCell(0, col, cell)
	}

	ET.VisibleIDs = ET.VisibleIDs[:0]

	row := 1

	for _, tx := range ET.Ledger.All() {
		if ET.Filter != "" && !fuzzy.MatchFold(ET.Filter, tx.Description) {
			continue
		}

		amountColor := color("ColorIncome")
		if tx.Amount < 0 {
			amountColor = color("ColorExpense")
		}

		ET.TransactionsTable.SetCell(row, 0,
			tview.NewTableCell(fmt.Sprintf("[%v]%v%v", color("ColorMuted"), tx.Date, c.ResetStyle)))
		ET.TransactionsTable.SetCell(row, 1,
			tview.NewTableCell(fmt.Sprintf("[%v]%v%v", color("ColorText"), tview.Escape(tx.Description), c.ResetStyle)).
				SetExpansion(2))
		ET.TransactionsTable.SetCell(row, 2,
			tview.NewTableCell(fmt.Sprintf("[%v]%v%v", amountColor, ET.Currency.Format(tx.Amount), c.ResetStyle)).
				SetAlign(tview.AlignRight))

		if ET.ShowCategories {
			ET.TransactionsTable.SetCell(row, 3,
				tview.NewTableCell(fmt.Sprintf("[%v]%v%v", color("ColorAccent"), tview.Escape(tx.Category), c.ResetStyle)))
		}

		ET.VisibleIDs = append(ET.VisibleIDs, tx.ID)
		row++
	}
}

// setBottomNavText renders the always-visible shortcut line.
func setBottomNavText() {
	if ET.BottomNav == nil {
		return
	}

	ET.BottomNav.SetText(fmt.Sprintf("[%v]%v%v", color("ColorMuted"), ET.T["BottomNavText"], c.ResetStyle))
}

// promptDelete starts the two-step confirmation for deleting the given
// transaction id, or the whole ledger when passed confirm.AllTransactions.
// A second request before the first is resolved simply replaces it.
func promptDelete(target int64) {
	ET.Confirm.Request(target)

	text := ET.T["PromptDeleteOneText"]
	if target == confirm.AllTransactions {
		text = ET.T["PromptDeleteAllText"]
	}

	currentPage, _ := ET.Pages.GetFrontPage()
	if currentPage != PagePrompt {
		ET.PrevPage = currentPage
	}

	ET.PromptBox.ClearButtons().AddButtons(
		[]string{
			ET.T["PromptDeleteButton"],
			ET.T["PromptCancelButton"],
		},
	).SetText(text).SetDoneFunc(
		func(buttonIndex int, buttonLabel string) {
			switch buttonIndex {
			case 0:
				resolved, ok := ET.Confirm.Confirm()
				if ok {
					if resolved == confirm.AllTransactions {
						_ = ET.Ledger.Clear()
						setStatus(ET.T["StatusCleared"])
					} else {
						_ = ET.Ledger.Remove(resolved)
						setStatus(ET.T["StatusDeleted"])
					}
				}
			default:
				ET.Confirm.Cancel()
			}

			ET.Pages.SwitchToPage(ET.PrevPage)
			render()
		},
	).SetBackgroundColor(tcell.ColorGoldenrod).
		SetTextColor(tcell.ColorBlack)

	ET.Pages.SwitchToPage(PagePrompt)
	ET.PromptBox.SetFocus(1)
	ET.App.SetFocus(ET.PromptBox)
}
