package templates

import (
	"html/template"

	"github.com/a-h/templ"
)

// CustomerListItem is one row of the customer list.
type CustomerListItem struct {
	ID         string
	Name       string
	Code       string
	Company    string
	Email      string
	QuoteCount int
}

// CustomerListData feeds the customer list page.
type CustomerListData struct {
	Items          []CustomerListItem
	TotalCustomers int
}

var customerListTmpl = template.Must(template.New("customer_list").Parse(`
<section class="list-page" id="customer-list">
	<div class="list-header">
		<h1>Customers ({{.TotalCustomers}})</h1>
		<a href="/customers/create" class="btn btn-primary">New Customer</a>
	</div>
	{{if .Items}}
	<table class="data-table">
		<thead>
			<tr><th>Name</th><th>Code</th><th>Company</th><th>Email</th><th>Quotes</th><th></th></tr>
		</thead>
		<tbody>
		{{range .Items}}
			<tr>
				<td><a href="/customers/{{.ID}}/edit">{{.Name}}</a></td>
				<td>{{.Code}}</td>
				<td>{{.Company}}</td>
				<td>{{.Email}}</td>
				<td>{{.QuoteCount}}</td>
				<td>
					<button class="btn btn-sm"
						hx-post="/customers/{{.ID}}/activate"
						hx-swap="none">Select</button>
					<button class="btn btn-sm btn-danger"
						hx-delete="/customers/{{.ID}}"
						hx-confirm="Delete this customer and all of their quotations?"
						hx-target="#customer-list"
						hx-swap="outerHTML">Delete</button>
				</td>
			</tr>
		{{end}}
		</tbody>
	</table>
	{{else}}
	<p class="empty-state">No customers yet.</p>
	{{end}}
</section>
`))

// CustomerListContent renders the list partial (HTMX target).
func CustomerListContent(data CustomerListData) templ.Component {
	return component(customerListTmpl, data)
}

// CustomerListPage renders the full customer list page.
func CustomerListPage(data CustomerListData, active *ActiveCustomer) templ.Component {
	return page("Customers", active, CustomerListContent(data))
}

// CustomerFormData feeds the create/edit customer form.
type CustomerFormData struct {
	ID      string
	Name    string
	Code    string
	Company string
	Email   string
	Phone   string
	Error   string
}

var customerFormTmpl = template.Must(template.New("customer_form").Parse(`
<section class="form-page">
	<h1>{{if .ID}}Edit Customer{{else}}New Customer{{end}}</h1>
	{{if .Error}}<p class="form-error">{{.Error}}</p>{{end}}
	<form method="post" action="{{if .ID}}/customers/{{.ID}}/save{{else}}/customers{{end}}">
		<label>Name *<input type="text" name="name" value="{{.Name}}" required></label>
		<label>Code<input type="text" name="code" value="{{.Code}}" placeholder="PHX"></label>
		<label>Company<input type="text" name="company" value="{{.Company}}"></label>
		<label>Email<input type="email" name="email" value="{{.Email}}"></label>
		<label>Phone<input type="text" name="phone" value="{{.Phone}}"></label>
		<div class="form-actions">
			<button type="submit" class="btn btn-primary">Save</button>
			<a href="/customers" class="btn">Cancel</a>
		</div>
	</form>
</section>
`))

// CustomerFormPage renders the customer create/edit form.
func CustomerFormPage(data CustomerFormData, active *ActiveCustomer) templ.Component {
	title := "New Customer"
	if data.ID != "" {
		title = "Edit Customer"
	}
	return page(title, active, component(customerFormTmpl, data))
}
