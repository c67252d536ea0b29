// Package templates holds the view data structs and the templ components the
// handlers render. Components wrap html/template documents so pages and
// HTMX partials share one rendering interface.
package templates

import (
	"bytes"
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// component wraps an html/template in a templ.Component.
func component(t *template.Template, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return t.Execute(w, data)
	})
}

// ActiveCustomer is the customer selected via the sidebar, carried through
// the request context by the middleware.
type ActiveCustomer struct {
	ID   string
	Name string
}

type layoutData struct {
	Title          string
	ActiveCustomer *ActiveCustomer
	Body           template.HTML
}

var layoutTmpl = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="ko">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>{{.Title}} | 견적관리</title>
	<script src="/static/htmx.min.js"></script>
	<link rel="stylesheet" href="/static/app.css">
</head>
<body>
	<header class="topbar">
		<a href="/quotes" class="brand">견적관리</a>
		<nav>
			<a href="/customers">Customers</a>
			<a href="/quotes">Quotations</a>
		</nav>
		{{if .ActiveCustomer}}<span class="active-customer">{{.ActiveCustomer.Name}}</span>{{end}}
	</header>
	<main id="content">
{{.Body}}
	</main>
	<div id="toast-container"></div>
</body>
</html>
`))

// page renders content inside the full layout.
func page(title string, active *ActiveCustomer, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := content.Render(ctx, &buf); err != nil {
			return err
		}
		return layoutTmpl.Execute(w, layoutData{
			Title:          title,
			ActiveCustomer: active,
			Body:           template.HTML(buf.String()),
		})
	})
}
