package providers

import "github.com/go-chi/chi/v5"

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/providers", h.List)
	r.Post("/providers", h.Create)
}
