package web

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	qrcode "github.com/skip2/go-qrcode"
)

// QRDataURI encodes content as a PNG QR code wrapped in a data URI.
func QRDataURI(content string, size int) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// Badges renders a printable badge sheet, one card per registration, laid
// out for A4 label paper.
func Badges(data BadgeSheetData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <title>`+html.EscapeString(data.EventName)+` — Badges</title>
    <style>
      body { font-family: Helvetica, Arial, sans-serif; margin: 1rem; }
      .sheet { display: grid; grid-template-columns: repeat(2, 1fr); gap: .5rem; }
      .badge { border: 1px dashed #666; padding: .8rem; display: flex; align-items: center; gap: .8rem; break-inside: avoid; }
      .badge img { width: 96px; height: 96px; }
      .badge .name { font-size: 1.2rem; font-weight: bold; }
      .badge .meta { color: #555; font-size: .9rem; }
    </style>
  </head>
  <body>
    <div class="sheet">
`)
		for _, badge := range data.Badges {
			_, _ = fmt.Fprintf(w, `      <div class="badge">
        <img src="%s" alt="QR"/>
        <div>
          <div class="name">%s</div>
          <div class="meta">%s</div>
          <div class="meta">%s</div>
        </div>
      </div>
`, badge.QRDataURI, html.EscapeString(badge.DisplayName), html.EscapeString(badge.EventName), html.EscapeString(badge.Code))
		}
		_, _ = io.WriteString(w, `    </div>
  </body>
</html>
`)
		return nil
	})
}
