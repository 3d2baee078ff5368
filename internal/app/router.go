package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/botica-real/botica/internal/auth"
	"github.com/botica-real/botica/internal/masterdata/brands"
	"github.com/botica-real/botica/internal/masterdata/categories"
	"github.com/botica-real/botica/internal/masterdata/products"
	"github.com/botica-real/botica/internal/masterdata/providers"
	"github.com/botica-real/botica/internal/observability"
	"github.com/botica-real/botica/internal/sales/customers"
	"github.com/botica-real/botica/internal/sales/orders"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	AuthService *auth.Service
	AuthHandler *auth.Handler

	CategoriesHandler *categories.Handler
	BrandsHandler     *brands.Handler
	ProvidersHandler  *providers.Handler
	ProductsHandler   *products.Handler
	CustomersHandler  *customers.Handler
	SalesHandler      *orders.Handler

	Metrics *observability.Metrics
}

// NewRouter constructs the chi.Router with the default middleware stack.
// The token endpoints, health check and metrics stay public; every entity
// route sits behind the bearer-token guard.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/auth", params.AuthHandler.MountRoutes)

	r.Group(func(r chi.Router) {
		r.Use(params.AuthService.RequireToken)

		params.CategoriesHandler.MountRoutes(r)
		params.BrandsHandler.MountRoutes(r)
		params.ProvidersHandler.MountRoutes(r)
		params.ProductsHandler.MountRoutes(r)
		params.CustomersHandler.MountRoutes(r)
		params.SalesHandler.MountRoutes(r)
	})

	return r
}
