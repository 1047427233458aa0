package constants

// Keys in the persistent store. The names match the original localStorage
// layout so an exported data directory stays readable by key name.
const (
	KeyDarkMode       = "darkMode"
	KeyCurrency       = "currency"
	KeyShowCategories = "showCategories"
	KeyTransactions   = "transactions"
	KeyCategories     = "categories"
)

// DefaultDataParentDir is the directory under the xdg data home that holds
// the per-key store files.
const DefaultDataParentDir = "expense-tracker-tui"

// ISODateFormat is the standard representation of a calendar date in this
// application: YYYY-MM-DD with zero-padding.
const ISODateFormat = "2006-01-02"

const ResetStyle = "[-:-:-:-]"

// Actions that can be triggered from the global keyboard capture.
const (
	ActionQuit             = "quit"
	ActionHelp             = "help"
	ActionDarkMode         = "darkmode"
	ActionToggleCategories = "togglecategories"
	ActionCategories       = "categories"
	ActionFilter           = "filter"
	ActionClearAll         = "clearall"
)

// DefaultMappings maps tcell event names to actions. There is no user
// keybinding config; the persisted settings surface is fixed.
var DefaultMappings = map[string]string{
	"Ctrl+C": ActionQuit,
	"F1":     ActionHelp,
	"Ctrl+H": ActionHelp,
	"Ctrl+D": ActionDarkMode,
	"Ctrl+T": ActionToggleCategories,
	"Ctrl+O": ActionCategories,
	"Ctrl+F": ActionFilter,
	"Ctrl+X": ActionClearAll,
}

// AllActions is the display order for the help page's keybinding list.
var AllActions = []string{
	ActionQuit,
	ActionHelp,
	ActionDarkMode,
	ActionToggleCategories,
	ActionCategories,
	ActionFilter,
	ActionClearAll,
}
