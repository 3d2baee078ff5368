package orders

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales", h.List)
	r.Post("/sales", h.Create)
	r.Get("/sales/{id}", h.Show)
}
