package products

import (
	"github.com/botica-real/botica/internal/masterdata/brands"
	"github.com/botica-real/botica/internal/masterdata/categories"
	"github.com/botica-real/botica/internal/masterdata/providers"
)

// Product represents a sellable item. The read model embeds the related
// masterdata objects the way the dashboard consumes them.
type Product struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Stock       int                 `json:"stock"`
	Price       float64             `json:"price"`
	Category    categories.Category `json:"category"`
	Brand       brands.Brand        `json:"brand"`
	Provider    providers.Provider  `json:"provider"`
}
