package main

import (
	"fmt"
	"strings"

	c "expense-tracker-tui/constants"
	"expense-tracker-tui/ledger"
	"expense-tracker-tui/tips"
)

// renderSummary recomputes the aggregates from the current ledger snapshot
// and rewrites the summary pane. Expense totals are non-positive in the
// data but displayed unsigned.
func renderSummary() {
	if ET.SummaryView == nil {
		return
	}

	sum := ledger.Summarize(ET.Ledger.All(), ET.Registry.All())

	b := new(strings.Builder)

	fmt.Fprintf(b, "[%v::b]%v %v%v\n",
		color("ColorBalance"), ET.T["SummaryBalance"], ET.Currency.Format(sum.Balance), c.ResetStyle)
	fmt.Fprintf(b, "[%v]%v %v%v\n",
		color("ColorIncome"), ET.T["SummaryIncome"], ET.Currency.Format(sum.Income), c.ResetStyle)
	fmt.Fprintf(b, "[%v]%v %v%v\n",
		color("ColorExpense"), ET.T["SummaryExpenses"], ET.Currency.FormatAbs(sum.Expenses), c.ResetStyle)

	if ET.ShowCategories && ET.Registry.Len() > 0 {
		fmt.Fprintf(b, "\n[%v::b]%v%v\n", color("ColorTitle"), ET.T["SummaryByCategory"], c.ResetStyle)

		// registry order, not map order
		for _, label := range ET.Registry.All() {
			fmt.Fprintf(b, "[%v]%v:%v %v\n",
				color("ColorAccent"), label, c.ResetStyle, ET.Currency.Format(sum.ByCategory[label]))
		}
	}

	fmt.Fprintf(b, "\n[%v]%v %v%v\n",
		color("ColorTip"), ET.T["SummaryTipPrefix"], tips.ForToday(), c.ResetStyle)

	ET.SummaryView.SetText(b.String())
}
