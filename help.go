package main

import (
	"bytes"
	"log"
	"sort"
	"strings"
	"text/template"

	c "expense-tracker-tui/constants"

	"github.com/rivo/tview"
)

const helpTextTemplate = `[lightgreen::b]Expense Tracker[-:-:-:-]

[white]{{ .T.HelpIntro }}

[lightgreen::b]{{ .T.HelpEntriesTitle }}[-:-:-:-]

[white]{{ .T.HelpEntriesText }}

[lightgreen::b]{{ .T.HelpCategoriesTitle }}[-:-:-:-]

[white]{{ .T.HelpCategoriesText }}

[lightgreen::b]{{ .T.HelpKeysTitle }}[-:-:-:-]
{{ range .Bindings }}
[gold]{{ .Keys }}[white]: {{ .Desc }}{{ end }}

[gray]{{ .T.HelpFooter }}[-:-:-:-]
`

type helpBinding struct {
	Keys string
	Desc string
}

// getHelpText renders the help page from the translation table and the
// default key mappings.
func getHelpText() string {
	type tmplDataShape struct {
		T        map[string]string
		Bindings []helpBinding
	}

	// invert the key->action map into action order for display
	actionKeys := make(map[string][]string)

	for key, action := range c.DefaultMappings {
		actionKeys[action] = append(actionKeys[action], key)
	}

	tmplData := tmplDataShape{T: ET.T}

	for _, action := range c.AllActions {
		keys := actionKeys[action]
		sort.Strings(keys)

		tmplData.Bindings = append(tmplData.Bindings, helpBinding{
			Keys: strings.Join(keys, ", "),
			Desc: ET.T["HelpAction_"+action],
		})
	}

	tmpl, err := template.New("help").Parse(helpTextTemplate)
	if err != nil {
		log.Fatalf("failed to parse help text template: %v", err.Error())
	}

	var b bytes.Buffer

	err = tmpl.Execute(&b, tmplData)
	if err != nil {
		log.Fatalf("failed to render help text: %v", err.Error())
	}

	return b.String()
}

func getHelpPage() {
	ET.HelpView = tview.NewTextView()
	ET.HelpView.SetDynamicColors(true)
	ET.HelpView.SetBorder(true).SetTitle(ET.T["HelpTitle"])
	ET.HelpView.SetText(getHelpText())
}
