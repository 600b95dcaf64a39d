package web

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Results renders the printable award results page for an event. Print
// styling lives inline so the page works from a plain browser print dialog.
func Results(data ResultsPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <title>`+html.EscapeString(data.EventName)+` — Results</title>
    <style>
      body { font-family: Georgia, serif; margin: 2rem; }
      h1 { border-bottom: 2px solid #333; padding-bottom: .3rem; }
      h2 { margin-top: 2rem; }
      table { border-collapse: collapse; width: 100%; }
      th, td { border: 1px solid #999; padding: .4rem .6rem; text-align: left; }
      th { background: #eee; }
      @media print { h2 { page-break-before: always; } h2:first-of-type { page-break-before: avoid; } }
    </style>
  </head>
  <body>
    <h1>`+html.EscapeString(data.EventName)+`</h1>
`)
		for _, section := range data.Sections {
			_, _ = fmt.Fprintf(w, "    <h2>%s</h2>\n    <table>\n      <tr><th>Place</th><th>Model</th><th>Code</th><th>Average</th><th>Votes</th></tr>\n", html.EscapeString(section.CategoryName))
			for _, row := range section.Rows {
				_, _ = fmt.Fprintf(w, "      <tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td></tr>\n",
					row.Place, html.EscapeString(row.ModelName), html.EscapeString(row.Code), html.EscapeString(row.Average), row.Votes)
			}
			_, _ = io.WriteString(w, "    </table>\n")
		}
		_, _ = io.WriteString(w, `  </body>
</html>
`)
		return nil
	})
}
