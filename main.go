package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"quotemanagement/collections"
	"quotemanagement/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed the study catalog on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Apply active customer middleware globally
		se.Router.BindFunc(handlers.ActiveCustomerMiddleware(app))

		// ── Customer activation ─────────────────────────────────
		se.Router.POST("/customers/{id}/activate", handlers.HandleCustomerActivate(app))
		se.Router.POST("/customers/deactivate", handlers.HandleCustomerDeactivate())

		// ── Customer CRUD ───────────────────────────────────────
		se.Router.GET("/customers", handlers.HandleCustomerList(app))
		se.Router.GET("/customers/create", handlers.HandleCustomerCreate(app))
		se.Router.POST("/customers", handlers.HandleCustomerSave(app))
		se.Router.GET("/customers/{id}/edit", handlers.HandleCustomerEdit(app))
		se.Router.POST("/customers/{id}/save", handlers.HandleCustomerUpdate(app))
		se.Router.DELETE("/customers/{id}", handlers.HandleCustomerDelete(app))

		// ── Quotation CRUD ──────────────────────────────────────
		se.Router.GET("/quotes", handlers.HandleQuoteList(app))
		se.Router.GET("/quotes/create", handlers.HandleQuoteCreate(app))
		se.Router.POST("/quotes", handlers.HandleQuoteSave(app))
		se.Router.GET("/quotes/{id}/edit", handlers.HandleQuoteEdit(app))
		se.Router.POST("/quotes/{id}/save", handlers.HandleQuoteUpdate(app))

		// ── Quotation lines ─────────────────────────────────────
		se.Router.POST("/quotes/{id}/lines", handlers.HandleLineAdd(app))
		se.Router.POST("/quotes/{id}/lines/import", handlers.HandleLineImport(app))
		se.Router.POST("/quotes/{id}/lines/{lineId}/toggle-option", handlers.HandleLineToggleOption(app))
		se.Router.DELETE("/quotes/{id}/lines/{lineId}", handlers.HandleLineDelete(app))

		// ── Export ──────────────────────────────────────────────
		se.Router.GET("/quotes/{id}/export", handlers.HandleQuoteExport(app))

		// ── Quotation view/delete (after specific /quotes/{id}/* routes) ──
		se.Router.GET("/quotes/{id}", handlers.HandleQuoteView(app))
		se.Router.DELETE("/quotes/{id}", handlers.HandleQuoteDelete(app))

		// Redirect home to the quotation list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotes")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
