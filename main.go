package main

import (
	"embed"
	"flag"
	"log"
	"path"

	"expense-tracker-tui/categories"
	"expense-tracker-tui/confirm"
	c "expense-tracker-tui/constants"
	"expense-tracker-tui/ledger"
	m "expense-tracker-tui/models"
	"expense-tracker-tui/store"
	"expense-tracker-tui/themes"
	"expense-tracker-tui/translations"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

//go:embed translations/*.yml
var AllTranslations embed.FS

//go:embed themes/*.yml
var AllThemes embed.FS

const (
	// PageTracker is not shown to the user ever, and is only used in the
	// code to determine the current page.
	PageTracker = "Tracker"
	// PageCategories is not shown to the user ever, and is only used in
	// the code to determine the current page.
	PageCategories = "Categories"
	// PageHelp is not shown to the user ever, and is only used in the code
	// to determine the current page.
	PageHelp = "Help"
	// PagePrompt is not shown to the user ever, and is only used in the
	// code to determine the current page.
	PagePrompt = "Prompt"
)

// Tracker is the explicit application-state object: every mutation of the
// ledger, the category registry, or the settings goes through its methods,
// each of which writes through to the persistent store and is followed by
// a full re-render.
type Tracker struct {
	// The tview/tcell terminal application.
	App *tview.Application

	// The primary page-switching primitive.
	Pages *tview.Pages

	// The primary primitive that the app uses as its root in the terminal.
	Layout *tview.Flex

	// Translations that are loaded at runtime.
	T map[string]string

	// The active color table, loaded from the embedded themes.
	Colors map[string]string

	// The local persistent store; the only durable boundary.
	Store store.Store

	// The ordered, newest-first transaction list.
	Ledger *ledger.Ledger

	// The ordered category labels plus the transient default selection.
	Registry *categories.Registry

	// Pending-confirmation state for destructive ledger operations.
	Confirm confirm.Flow

	// Independently persisted settings.
	DarkMode       bool
	ShowCategories bool
	Currency       m.Currency

	// Entry form and its fields. The category dropdown only exists while
	// the category feature is enabled.
	Form         *tview.Form
	DescField    *tview.InputField
	AmountField  *tview.InputField
	DateField    *tview.InputField
	CategoryDrop *tview.DropDown
	CurrencyDrop *tview.DropDown

	// Transactions table plus the fuzzy filter above it. VisibleIDs maps
	// table rows (minus the header) back to transaction ids.
	TransactionsTable *tview.Table
	FilterField       *tview.InputField
	Filter            string
	VisibleIDs        []int64

	// Derived totals and the tip of the day.
	SummaryView *tview.TextView

	// Status and error messages below the entry form.
	StatusText *tview.TextView

	// Always shown on every page - renders the keyboard shortcuts.
	BottomNav *tview.TextView

	// The gigantic help text.
	HelpView *tview.TextView

	// Confirmation modal for deleting one transaction or clearing all.
	PromptBox *tview.Modal

	// Category manager page primitives.
	CategoryList  *tview.List
	CategoryInput *tview.InputField

	// The previously shown page (via the primary pages primitive).
	PrevPage string

	// Overrides the xdg store directory when set by a flag at runtime.
	FlagDataDir string

	// Overrides the theme for this session only; dark mode still persists.
	FlagTheme string
}

// ET contains all shared data in a global. Avoid using globals where
// possible, but a tview application of this shape gets extremely messy
// without one.
//
//nolint:gochecknoglobals
var ET Tracker

// capture is the primary input capture handler for the app, and should be
// used like: app.SetInputCapture(capture)
func capture(e *tcell.EventKey) *tcell.EventKey {
	currentPage, _ := ET.Pages.GetFrontPage()
	if currentPage == PagePrompt {
		// the modal owns the keyboard until it is resolved
		return e
	}

	if e.Key() == tcell.KeyEscape {
		switch currentPage {
		case PageHelp, PageCategories:
			ET.Pages.SwitchToPage(PageTracker)
			return nil
		}

		return e
	}

	action, ok := c.DefaultMappings[e.Name()]
	if !ok {
		return e
	}

	return doAction(action, e)
}

// doAction executes a bound action, returning nil when the event was
// consumed.
func doAction(action string, e *tcell.EventKey) *tcell.EventKey {
	switch action {
	case c.ActionQuit:
		ET.App.Stop()
	case c.ActionHelp:
		currentPage, _ := ET.Pages.GetFrontPage()
		if currentPage == PageHelp {
			ET.Pages.SwitchToPage(PageTracker)
		} else {
			ET.Pages.SwitchToPage(PageHelp)
		}
	case c.ActionDarkMode:
		ET.setDarkMode(!ET.DarkMode)
		ET.applyTheme()
		render()
	case c.ActionToggleCategories:
		ET.setShowCategories(!ET.ShowCategories)
		buildForm()
		render()
	case c.ActionCategories:
		renderCategoryList()
		ET.Pages.SwitchToPage(PageCategories)
		ET.App.SetFocus(ET.CategoryList)
	case c.ActionFilter:
		ET.Pages.SwitchToPage(PageTracker)
		ET.App.SetFocus(ET.FilterField)
	case c.ActionClearAll:
		promptDelete(confirm.AllTransactions)
	default:
		return e
	}

	return nil
}

// render refreshes everything derived from current state. Rendering is a
// pure function of state and re-runs after every mutation.
func render() {
	renderTransactionsTable()
	renderSummary()
	setBottomNavText()
}

// bootstrap is the initialization function for the app, including all
// tview primitives. This function should only ever be run once.
func bootstrap() {
	ET.App = tview.NewApplication()
	ET.Pages = tview.NewPages()

	ET.PromptBox = tview.NewModal()

	getHelpPage()

	ET.Pages.AddPage(PageTracker, getTrackerPage(), true, true).
		AddPage(PageCategories, getCategoriesPage(), true, true).
		AddPage(PageHelp, ET.HelpView, true, true).
		AddPage(PagePrompt, ET.PromptBox, true, true)

	ET.Pages.SwitchToPage(PageTracker)

	ET.BottomNav = tview.NewTextView()
	ET.BottomNav.SetDynamicColors(true)

	ET.Layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ET.Pages, 0, 1, true).
		AddItem(ET.BottomNav, 1, 0, false)

	ET.applyTheme()
	render()

	ET.App.SetFocus(ET.Form)
	ET.App.SetInputCapture(capture)
}

// parseFlags parses the command line flags, using t as the translation map.
func parseFlags(t map[string]string) {
	flag.StringVar(&ET.FlagDataDir, "data", "", t["FlagDataDesc"])
	flag.StringVar(&ET.FlagTheme, "theme", "", t["FlagThemeDesc"])
	flag.Parse()
}

func main() {
	var err error

	ET.T, err = translations.Load(AllTranslations)
	if err != nil {
		log.Fatalf("failed to load translations: %v", err.Error())
	}

	parseFlags(ET.T)

	dir := ET.FlagDataDir
	if dir == "" {
		dir = path.Join(xdg.DataHome, c.DefaultDataParentDir)
	}

	ET.Store, err = store.NewFileStore(dir)
	if err != nil {
		log.Fatalf("%v: %v", ET.T["ErrorFailedToOpenStore"], err.Error())
	}

	ET.loadSettings()

	ET.Ledger = ledger.New(ET.Store)
	ET.Registry = categories.New(ET.Store)

	bootstrap()

	if err := ET.App.SetRoot(ET.Layout, true).EnableMouse(true).Run(); err != nil {
		panic(err)
	}
}

// applyTheme reloads the color table for the current dark mode setting
// (or the -theme override) and pushes background colors onto the
// primitives that were created before the change.
func (t *Tracker) applyTheme() {
	theme := themes.LightTheme
	if t.DarkMode {
		theme = themes.DarkTheme
	}

	if t.FlagTheme != "" {
		theme = t.FlagTheme
	}

	colors, err := themes.Load(AllThemes, theme)
	if err != nil {
		// a bad -theme value falls back to the defaults already merged in
		setStatus(t.T["StatusThemeFallback"])
	}

	t.Colors = colors

	bg := tcell.GetColor(t.Colors["Background"])
	fg := tcell.GetColor(t.Colors["Foreground"])

	tview.Styles.PrimitiveBackgroundColor = bg
	tview.Styles.PrimaryTextColor = fg
	tview.Styles.BorderColor = tcell.GetColor(t.Colors["Border"])

	for _, box := range []*tview.Box{
		t.Form.Box, t.TransactionsTable.Box, t.FilterField.Box,
		t.SummaryView.Box, t.StatusText.Box, t.BottomNav.Box,
		t.HelpView.Box, t.CategoryList.Box, t.CategoryInput.Box,
	} {
		box.SetBackgroundColor(bg)
	}

	t.Form.SetFieldTextColor(fg).SetLabelColor(fg)
	t.CategoryInput.SetFieldTextColor(fg).SetLabelColor(fg)
	t.FilterField.SetFieldTextColor(fg).SetLabelColor(fg)
}

// color returns the markup color name for a theme key, for use inside
// dynamic-color text like "[darkgreen]".
func color(key string) string {
	v, ok := ET.Colors[key]
	if !ok {
		return "white"
	}

	return v
}

// setStatus replaces the status line below the entry form.
func setStatus(msg string) {
	if ET.StatusText == nil {
		return
	}

	ET.StatusText.SetText("[" + color("ColorStatus") + "]" + msg + c.ResetStyle)
}
