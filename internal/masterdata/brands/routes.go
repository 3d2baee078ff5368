package brands

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/brands", h.List)
	r.Post("/brands", h.Create)
}
