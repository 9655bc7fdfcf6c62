package backend

import (
	"strconv"
	"strings"

	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/model"
)

// Inventory answers product availability queries against the stocked table.
type Inventory struct {
	products []model.Product
	catalog  *catalog.Catalog
}

func NewInventory(products []model.Product, cat *catalog.Catalog) *Inventory {
	return &Inventory{products: products, catalog: cat}
}

// Check reports the availability of the first product matching the item
// description. First match, not best match; table order decides when several
// products match. The three outcomes (available, out of stock, not sold) are
// mutually exclusive and exhaustive.
func (s *Inventory) Check(item string) string {
	item = strings.ToLower(item)
	for _, p := range s.products {
		if !p.Matches(item) {
			continue
		}
		if p.Quantity > 0 {
			return s.catalog.Render(catalog.CategoryProductAvailable, map[string]string{
				"item":     titleCase(p.Name),
				"quantity": strconv.Itoa(p.Quantity),
				"price":    "$" + strconv.FormatFloat(p.Price, 'f', 2, 64),
			})
		}
		return s.catalog.Render(catalog.CategoryNotAvailable, map[string]string{"item": titleCase(item)})
	}
	return s.catalog.Render(catalog.CategoryNotSold, map[string]string{"item": titleCase(item)})
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
