// Package pages holds the full-page GUI components.
package pages

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/deploydrop/internal/adapter/driving/web/viewmodel"
)

// Form renders the deployment request form with the optional notification banner.
func Form(page vm.FormPageViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<main class="container"><h1>Deployment request</h1>`)

		if page.BannerHTML != "" {
			// BannerHTML is already sanitized by the handler.
			b.WriteString(`<section class="notification" id="notification">`)
			b.WriteString(page.BannerHTML)
			b.WriteString(`</section>`)
		}

		b.WriteString(`<form method="post" action="/">`)
		if page.CSRFField != "" {
			b.WriteString(`<input type="hidden" name="` + templ.EscapeString(page.CSRFField) +
				`" value="` + templ.EscapeString(page.CSRFToken) + `">`)
		}

		for _, f := range page.Fields {
			name := templ.EscapeString(f.Name)
			b.WriteString(`<div class="field"><label for="` + name + `">` + templ.EscapeString(f.Label) + `</label>`)
			b.WriteString(`<input id="` + name + `" name="` + name + `" type="` + templ.EscapeString(f.Type) + `" autocomplete="off">`)
			b.WriteString(`</div>`)
		}

		b.WriteString(`<button type="submit">Submit</button></form></main>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
