package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/auth"
	"github.com/ghuser/backoffice/services/sales/application/handlers"
	appsvcs "github.com/ghuser/backoffice/services/sales/application/services"
)

// SalesRoutes registers sales, report and client endpoints on the provided chi router.
func SalesRoutes(r chi.Router, a *app.Application) {
	Mount(r, a, appsvcs.New(a))
}

// Mount registers the endpoints over already wired services. Mutating routes
// require a session when a session store is configured.
func Mount(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	reports := handlers.NewReportHandlers(svcs)
	clients := handlers.NewClientHandlers(svcs)

	r.Group(func(r chi.Router) {
		if a.SessionStore != nil {
			r.Use(auth.RequireAuthForWrites(a.SessionStore, a.Logger))
		}

		r.Route("/sales", func(r chi.Router) {
			r.Post("/", handlers.NewPostSaleHandler(svcs).Execute)
			r.Get("/", handlers.NewListSalesHandler(svcs).Execute)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/by-date", reports.SalesByDate)
				r.Get("/top-products", reports.TopProducts)
				r.Get("/top-clients", reports.TopClients)
				r.Get("/product-sales-by-date", reports.ProductSalesByDate)
				r.Get("/dashboard", reports.Dashboard)
			})

			r.Get("/{id}", handlers.NewGetSaleHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutSaleHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteSaleHandler(svcs).Execute)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/default", clients.Default)
			r.Delete("/{id}", clients.Delete)
		})
	})
}
