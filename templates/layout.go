// Package templates holds the server-rendered HTML views. Components are
// built directly on the templ runtime so handlers can compose and render
// them with a request context.
package templates

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

func writeEscaped(w io.Writer, s string) error {
	_, err := io.WriteString(w, html.EscapeString(s))
	return err
}

// Layout wraps a page body with the shared document shell and navigation.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`); err != nil {
			return err
		}
		if err := writeEscaped(w, title); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ` | NogaHub</title><link rel="stylesheet" href="/static/app.css"></head><body><nav class="navbar"><a href="/" class="brand">NogaHub</a><a href="/projects">Projects</a><a href="/equipment">Equipment</a></nav><main class="container">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
