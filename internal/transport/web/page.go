package web

import (
	"html/template"

	"github.com/sandevgo/csvrepl/internal/service/session"
)

const entryTimeLayout = "2006-01-02 15:04:05"

type pageEntry struct {
	Line   string
	At     string
	Output template.HTML
}

type pageData struct {
	Title        string
	LoggedIn     bool
	RequireLogin bool
	Verbose      bool
	Count        int
	Entries      []pageEntry
}

func newPageEntries(entries []session.Entry) []pageEntry {
	out := make([]pageEntry, len(entries))
	for i, e := range entries {
		out[i] = pageEntry{Line: e.Line, At: e.At.Format(entryTimeLayout), Output: e.Result.Render()}
	}
	return out
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.2rem 0.5rem; vertical-align: top; }
.command-table { width: 100%; }
</style>
</head>
<body>
{{- if .RequireLogin}}
<form method="post" action="{{if .LoggedIn}}/logout{{else}}/login{{end}}">
<button type="submit" aria-label="{{if .LoggedIn}}Sign Out{{else}}Login{{end}}">{{if .LoggedIn}}Sign Out{{else}}Login{{end}}</button>
</form>
{{- end}}
{{- if .LoggedIn}}
<div class="repl-history">
<table class="command-table">
<thead>{{if .Verbose}}<tr><th>Command</th><th>Output</th></tr>{{else}}<tr><th>Output</th></tr>{{end}}</thead>
<tbody>
{{- range .Entries}}
<tr class="table-row">{{if $.Verbose}}<td class="table-cell" title="{{.At}}">{{.Line}}</td>{{end}}<td class="table-cell">{{.Output}}</td></tr>
{{- end}}
</tbody>
</table>
</div>
<hr>
<form method="post" action="/submit" class="repl-input">
<fieldset>
<legend>Enter a command:</legend>
<input type="text" name="command" aria-label="Command input" autofocus>
</fieldset>
<button type="submit" aria-label="Submit button">Submit ({{.Count}} submissions)</button>
</form>
<form method="post" action="/mode" class="output-mode">
Output Mode:
<button type="submit" name="mode" value="verbose"{{if .Verbose}} disabled{{end}}>Verbose</button>
<button type="submit" name="mode" value="brief"{{if not .Verbose}} disabled{{end}}>Brief</button>
</form>
{{- end}}
</body>
</html>
`))
