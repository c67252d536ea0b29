package templates

import (
	"bytes"
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// QuoteListItem is one row of the quotation list.
type QuoteListItem struct {
	ID           string
	Title        string
	QuoteNumber  string
	CustomerName string
	CreatedDate  string
	Total        string
	LineCount    int
}

// QuoteListData feeds the quotation list page.
type QuoteListData struct {
	Items       []QuoteListItem
	TotalQuotes int
	SumTotal    string
}

var quoteListTmpl = template.Must(template.New("quote_list").Parse(`
<section class="list-page" id="quote-list">
	<div class="list-header">
		<h1>Quotations ({{.TotalQuotes}})</h1>
		<a href="/quotes/create" class="btn btn-primary">New Quotation</a>
	</div>
	{{if .Items}}
	<table class="data-table">
		<thead>
			<tr><th>No.</th><th>Title</th><th>Customer</th><th>Date</th><th>Lines</th><th class="num">Total</th><th></th></tr>
		</thead>
		<tbody>
		{{range .Items}}
			<tr>
				<td>{{.QuoteNumber}}</td>
				<td><a href="/quotes/{{.ID}}">{{.Title}}</a></td>
				<td>{{.CustomerName}}</td>
				<td>{{.CreatedDate}}</td>
				<td>{{.LineCount}}</td>
				<td class="num">{{.Total}}</td>
				<td>
					<button class="btn btn-sm btn-danger"
						hx-delete="/quotes/{{.ID}}"
						hx-confirm="Delete this quotation?"
						hx-target="#quote-list"
						hx-swap="outerHTML">Delete</button>
				</td>
			</tr>
		{{end}}
		</tbody>
	</table>
	<p class="list-footer">Combined total: <strong>{{.SumTotal}}</strong></p>
	{{else}}
	<p class="empty-state">No quotations yet.</p>
	{{end}}
</section>
`))

// QuoteListContent renders the quotation list partial (HTMX target).
func QuoteListContent(data QuoteListData) templ.Component {
	return component(quoteListTmpl, data)
}

// QuoteListPage renders the full quotation list page.
func QuoteListPage(data QuoteListData, active *ActiveCustomer) templ.Component {
	return page("Quotations", active, QuoteListContent(data))
}

// CustomerOption is a customer choice in the quotation form.
type CustomerOption struct {
	ID   string
	Name string
}

// CategoryOption is a formulation-category choice in the quotation form.
type CategoryOption struct {
	Value string
	Label string
}

// QuoteFormData feeds the quotation create/edit form.
type QuoteFormData struct {
	ID              string
	Title           string
	CustomerID      string
	Customers       []CustomerOption
	PricingMode     string
	Category        string
	Categories      []CategoryOption
	DiscountPercent float64
	Error           string
}

var quoteFormTmpl = template.Must(template.New("quote_form").Parse(`
<section class="form-page">
	<h1>{{if .ID}}Quotation Settings{{else}}New Quotation{{end}}</h1>
	{{if .Error}}<p class="form-error">{{.Error}}</p>{{end}}
	<form method="post" action="{{if .ID}}/quotes/{{.ID}}/save{{else}}/quotes{{end}}">
		<label>Title *<input type="text" name="title" value="{{.Title}}" required></label>
		{{if not .ID}}
		<label>Customer *
			<select name="customer" required>
				<option value="">— select —</option>
				{{$sel := .CustomerID}}
				{{range .Customers}}<option value="{{.ID}}" {{if eq .ID $sel}}selected{{end}}>{{.Name}}</option>{{end}}
			</select>
		</label>
		{{end}}
		<label>Pricing mode
			<select name="pricing_mode">
				<option value="standard" {{if eq .PricingMode "standard"}}selected{{end}}>Standard</option>
				<option value="oecd" {{if eq .PricingMode "oecd"}}selected{{end}}>OECD-adjusted (GLP)</option>
			</select>
		</label>
		<label>Product category
			<select name="category">
				{{$cat := .Category}}
				{{range .Categories}}<option value="{{.Value}}" {{if eq .Value $cat}}selected{{end}}>{{.Label}}</option>{{end}}
			</select>
		</label>
		<label>Discount %<input type="number" name="discount_percent" value="{{.DiscountPercent}}" min="0" max="100" step="0.1"></label>
		<div class="form-actions">
			<button type="submit" class="btn btn-primary">Save</button>
			<a href="{{if .ID}}/quotes/{{.ID}}{{else}}/quotes{{end}}" class="btn">Cancel</a>
		</div>
	</form>
</section>
`))

// QuoteFormPage renders the quotation create/edit form.
func QuoteFormPage(data QuoteFormData, active *ActiveCustomer) templ.Component {
	title := "New Quotation"
	if data.ID != "" {
		title = "Quotation Settings"
	}
	return page(title, active, component(quoteFormTmpl, data))
}

// QuoteLineView is one rendered quotation line.
type QuoteLineView struct {
	ID       string
	Index    string
	Name     string
	Category string
	Amount   string
	IsOption bool
}

// QuoteTotalsView is the rendered totals block.
type QuoteTotalsView struct {
	SubtotalTest        string
	SubtotalFormulation string
	HasFormulation      bool
	AssayBase           string
	ContentTotal        string
	HFFormulation       string
	DiscountLabel       string
	DiscountAmount      string
	HasDiscount         bool
	TotalAmount         string
	TotalShort          string
}

// CatalogItemView is one selectable catalog entry in the item picker.
type CatalogItemView struct {
	ItemID    int
	Name      string
	Category  string
	Duration  string
	PriceOral string
	PriceIV   string
	IsCombo   bool
}

// QuoteViewData feeds the quotation detail page.
type QuoteViewData struct {
	ID               string
	Title            string
	QuoteNumber      string
	CustomerName     string
	PricingModeLabel string
	CategoryLabel    string
	CreatedDate      string
	Lines            []QuoteLineView
	Totals           QuoteTotalsView
	Catalog          []CatalogItemView
}

var quoteLinesTmpl = template.Must(template.New("quote_lines").Parse(`
<div id="quote-lines">
	{{if .Lines}}
	<table class="data-table">
		<thead><tr><th>#</th><th>Study</th><th>Category</th><th class="num">Amount</th><th></th></tr></thead>
		<tbody>
		{{$quoteID := .ID}}
		{{range .Lines}}
			<tr class="{{if .IsOption}}line-option{{else}}line-primary{{end}}">
				<td>{{.Index}}</td>
				<td>{{.Name}}</td>
				<td>{{.Category}}</td>
				<td class="num">{{.Amount}}</td>
				<td>
					<button class="btn btn-sm"
						hx-post="/quotes/{{$quoteID}}/lines/{{.ID}}/toggle-option"
						hx-target="#quote-lines" hx-swap="outerHTML">{{if .IsOption}}Primary{{else}}Option{{end}}</button>
					<button class="btn btn-sm btn-danger"
						hx-delete="/quotes/{{$quoteID}}/lines/{{.ID}}"
						hx-target="#quote-lines" hx-swap="outerHTML">Remove</button>
				</td>
			</tr>
		{{end}}
		</tbody>
	</table>
	{{else}}
	<p class="empty-state">No studies selected.</p>
	{{end}}

	<div class="totals-block">
		<dl>
			<dt>Study subtotal</dt><dd>{{.Totals.SubtotalTest}}</dd>
			{{if .Totals.HasFormulation}}
			<dt>Formulation / assay</dt><dd>{{.Totals.SubtotalFormulation}}</dd>
			<dt class="sub">· Assay validation</dt><dd class="sub">{{.Totals.AssayBase}}</dd>
			<dt class="sub">· Content analysis</dt><dd class="sub">{{.Totals.ContentTotal}}</dd>
			<dt class="sub">· HF formulation</dt><dd class="sub">{{.Totals.HFFormulation}}</dd>
			{{end}}
			{{if .Totals.HasDiscount}}
			<dt>{{.Totals.DiscountLabel}}</dt><dd>-{{.Totals.DiscountAmount}}</dd>
			{{end}}
			<dt class="grand">Total</dt><dd class="grand">{{.Totals.TotalAmount}} <span class="short">({{.Totals.TotalShort}})</span></dd>
		</dl>
	</div>
</div>
`))

// QuoteLinesBlock renders the line table + totals partial (HTMX target).
func QuoteLinesBlock(data QuoteViewData) templ.Component {
	return component(quoteLinesTmpl, data)
}

var quoteViewTmpl = template.Must(template.New("quote_view").Parse(`
<section class="detail-page">
	<div class="detail-header">
		<h1>{{.Title}}</h1>
		<div class="detail-meta">
			<span>{{.QuoteNumber}}</span>
			<span>{{.CustomerName}}</span>
			<span>{{.PricingModeLabel}}</span>
			<span>{{.CategoryLabel}}</span>
			<span>{{.CreatedDate}}</span>
		</div>
		<div class="detail-actions">
			<a href="/quotes/{{.ID}}/edit" class="btn">Settings</a>
			<a href="/quotes/{{.ID}}/export?format=pdf" class="btn">PDF</a>
			<a href="/quotes/{{.ID}}/export?format=excel" class="btn">Excel</a>
		</div>
	</div>

	{{.LinesBlock}}

	<div class="catalog-picker">
		<h2>Add a study</h2>
		<table class="data-table">
			<thead><tr><th>Study</th><th>Duration</th><th class="num">Oral</th><th class="num">IV</th><th></th></tr></thead>
			<tbody>
			{{$quoteID := .ID}}
			{{range .Catalog}}
				<tr>
					<td>{{.Name}}</td>
					<td>{{.Duration}}</td>
					<td class="num">{{.PriceOral}}</td>
					<td class="num">{{.PriceIV}}</td>
					<td>
					{{if .IsCombo}}
						<form hx-post="/quotes/{{$quoteID}}/lines" hx-target="#quote-lines" hx-swap="outerHTML">
							<input type="hidden" name="item_id" value="{{.ItemID}}">
							<select name="arity">
								<option value="2">2제</option><option value="3">3제</option><option value="4">4제</option>
							</select>
							<button type="submit" class="btn btn-sm">Add</button>
						</form>
					{{else}}
						<button class="btn btn-sm"
							hx-post="/quotes/{{$quoteID}}/lines"
							hx-vals='{"item_id": "{{.ItemID}}", "route": "oral"}'
							hx-target="#quote-lines" hx-swap="outerHTML">Oral</button>
						<button class="btn btn-sm"
							hx-post="/quotes/{{$quoteID}}/lines"
							hx-vals='{"item_id": "{{.ItemID}}", "route": "iv"}'
							hx-target="#quote-lines" hx-swap="outerHTML">IV</button>
					{{end}}
					</td>
				</tr>
			{{end}}
			</tbody>
		</table>

		<form class="import-form" hx-post="/quotes/{{.ID}}/lines/import"
			hx-encoding="multipart/form-data"
			hx-target="#quote-lines" hx-swap="outerHTML">
			<label>Import lines (CSV/XLSX)
				<input type="file" name="file" accept=".csv,.xlsx" required>
			</label>
			<button type="submit" class="btn btn-sm">Import</button>
		</form>
	</div>
</section>
`))

type quoteViewRender struct {
	QuoteViewData
	LinesBlock template.HTML
}

// QuoteViewContent renders the quotation detail partial.
func QuoteViewContent(data QuoteViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := QuoteLinesBlock(data).Render(ctx, &buf); err != nil {
			return err
		}
		return quoteViewTmpl.Execute(w, quoteViewRender{
			QuoteViewData: data,
			LinesBlock:    template.HTML(buf.String()),
		})
	})
}

// QuoteViewPage renders the full quotation detail page.
func QuoteViewPage(data QuoteViewData, active *ActiveCustomer) templ.Component {
	return page(data.Title, active, QuoteViewContent(data))
}
