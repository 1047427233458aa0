package main

import (
	"fmt"

	c "expense-tracker-tui/constants"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// getCategoriesPage assembles the category manager: the ordered label list,
// an input field for new labels, and a hint line. Registry mutations
// persist immediately and flow back into the entry form's dropdown.
func getCategoriesPage() tview.Primitive {
	ET.CategoryList = tview.NewList().ShowSecondaryText(false)
	ET.CategoryList.SetBorder(true).SetTitle(ET.T["CategoriesTitle"])

	ET.CategoryInput = tview.NewInputField().
		SetLabel(ET.T["CategoriesAddLabel"]).
		SetPlaceholder(ET.T["CategoriesAddPlaceholder"])

	ET.CategoryInput.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}

		if !ET.Registry.Add(ET.CategoryInput.GetText()) {
			setStatus(ET.T["StatusCategoryRejected"])
			return
		}

		ET.CategoryInput.SetText("")
		renderCategoryList()
		buildForm()
		renderSummary()
	})

	ET.CategoryList.SetSelectedFunc(func(i int, _, _ string, _ rune) {
		// the list text may carry markup, so resolve the label by index
		labels := ET.Registry.All()
		if i >= 0 && i < len(labels) {
			ET.Registry.Select(labels[i])
		}

		renderCategoryList()
		buildForm()
	})

	ET.CategoryList.SetInputCapture(func(e *tcell.EventKey) *tcell.EventKey {
		i := ET.CategoryList.GetCurrentItem()

		switch e.Rune() {
		case 'd':
			ET.Registry.RemoveAt(i)
		case 'u':
			ET.Registry.Move(i, i-1)
		case 'n':
			ET.Registry.Move(i, i+1)
		case 'a':
			ET.App.SetFocus(ET.CategoryInput)
			return nil
		default:
			return e
		}

		renderCategoryList()
		buildForm()
		renderSummary()

		return nil
	})

	hint := tview.NewTextView().SetDynamicColors(true)
	hint.SetText(ET.T["CategoriesHint"])

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ET.CategoryList, 0, 1, true).
		AddItem(ET.CategoryInput, 1, 0, false).
		AddItem(hint, 2, 0, false)
}

// renderCategoryList redraws the list from the registry, marking the label
// that new transactions currently default to.
func renderCategoryList() {
	if ET.CategoryList == nil {
		return
	}

	current := ET.CategoryList.GetCurrentItem()

	ET.CategoryList.Clear()

	for _, label := range ET.Registry.All() {
		text := label
		if label == ET.Registry.Selected() {
			text = fmt.Sprintf("[%v::b]%v %v%v", color("ColorAccent"), label, ET.T["CategoriesDefaultMarker"], c.ResetStyle)
		}

		ET.CategoryList.AddItem(text, "", 0, nil)
	}

	if current >= ET.CategoryList.GetItemCount() {
		current = ET.CategoryList.GetItemCount() - 1
	}

	if current >= 0 {
		ET.CategoryList.SetCurrentItem(current)
	}
}
