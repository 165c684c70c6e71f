package report

import (
	"html/template"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
)

var htmlFuncs = template.FuncMap{
	"amount": formatAmount,
}

var resultTemplate = template.Must(template.New("result").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Amendment 13 Compliance Report</title>
<style>
body { font-family: sans-serif; max-width: 860px; margin: 2rem auto; color: #222; }
h1 { border-bottom: 2px solid #444; padding-bottom: .3rem; }
.score { font-size: 2.4rem; font-weight: bold; }
.level { display: inline-block; padding: .2rem .7rem; border-radius: .3rem; color: #fff; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: .45rem .6rem; text-align: left; }
.disclaimer { color: #777; font-size: .85rem; }
.compliant { color: #2e7d32; } .gap { color: #c62828; }
</style>
</head>
<body>
<h1>Amendment 13 Compliance Report</h1>
<p class="disclaimer">Heuristic estimate only; not a legal determination.</p>

<p><span class="score">{{.Score}}/100</span><br>
<span class="level" style="background:{{.Classification.Color}}">{{.Classification.Label}}</span>
{{.Classification.Description}} (act {{.Classification.ActionWindow}})</p>

<p>Questions answered: {{.AnsweredCount}} of {{.QuestionCount}}</p>

{{if .Violations}}
<h2>Violations</h2>
<table>
<tr><th>Severity</th><th>Description</th><th>Estimated fine</th><th>Citation</th></tr>
{{range .Violations}}
<tr><td>{{.Severity}}</td><td>{{.Description}}</td><td>₪{{amount .Fine}}</td><td>{{.Citation}}</td></tr>
{{end}}
</table>
<p><strong>Total fine exposure: ₪{{amount .TotalFine}}</strong></p>
{{end}}

<h2>Compliance matrix</h2>
<table>
<tr><th>Category</th><th>Status</th><th>Requirement</th></tr>
{{range .Matrix}}
<tr><td>{{.Category}}</td>
<td class="{{if .Compliant}}compliant{{else}}gap{{end}}">{{.Status}}</td>
<td>{{.Requirement}}</td></tr>
{{end}}
</table>

{{if .Recommendations}}
<h2>Recommendations</h2>
<table>
<tr><th>Priority</th><th>Action</th><th>Timeline</th></tr>
{{range .Recommendations}}
<tr><td>{{.Priority}}</td><td>{{.Action}}</td><td>{{.Timeline}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>
`))

var scanTemplate = template.Must(template.New("scan").Funcs(htmlFuncs).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Website Privacy Scan</title>
<style>
body { font-family: sans-serif; max-width: 860px; margin: 2rem auto; color: #222; }
h1 { border-bottom: 2px solid #444; padding-bottom: .3rem; }
.score { font-size: 2.4rem; font-weight: bold; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: .45rem .6rem; text-align: left; }
.disclaimer { color: #777; font-size: .85rem; }
.failed { color: #c62828; font-weight: bold; }
</style>
</head>
<body>
<h1>Website Privacy Scan</h1>
<p>{{.URL}} (scanned {{.ScannedAt.Format "2006-01-02 15:04"}})</p>
<p class="disclaimer">Heuristic estimate only; not a legal determination.</p>

{{if .Failed}}
<p class="failed">Scan failed: {{.Error}}</p>
{{else}}
<p><span class="score">{{.Score}}/100</span></p>

<h2>Checks</h2>
<table>
<tr><th>Check</th><th>Status</th><th>Weight</th><th>Detail</th></tr>
{{range .Checks}}
<tr><td>{{.Name}}</td><td>{{.Status}}</td><td>{{.Weight}}</td><td>{{.Detail}}</td></tr>
{{end}}
</table>

{{if .Violations}}
<h2>Potential violations</h2>
<table>
<tr><th>Severity</th><th>Description</th><th>Estimated fine range</th><th>Citation</th></tr>
{{range .Violations}}
<tr><td>{{.Severity}}</td><td>{{.Description}}</td><td>₪{{amount .FineMin}} - ₪{{amount .FineMax}}</td><td>{{.Citation}}</td></tr>
{{end}}
</table>
{{end}}

{{if .Recommendations}}
<h2>Recommendations</h2>
<table>
<tr><th>Priority</th><th>Action</th><th>Timeline</th></tr>
{{range .Recommendations}}
<tr><td>{{.Priority}}</td><td>{{.Action}}</td><td>{{.Timeline}}</td></tr>
{{end}}
</table>
{{end}}
{{end}}
</body>
</html>
`))

// RenderHTML writes an HTML report for a questionnaire evaluation
func RenderHTML(w io.Writer, result *model.Result) error {
	if err := resultTemplate.Execute(w, result); err != nil {
		return goerr.Wrap(err, "failed to render result report")
	}
	return nil
}

// RenderScanHTML writes an HTML report for a website scan
func RenderScanHTML(w io.Writer, result *model.WebScanResult) error {
	if err := scanTemplate.Execute(w, result); err != nil {
		return goerr.Wrap(err, "failed to render scan report")
	}
	return nil
}
