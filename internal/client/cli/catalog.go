package cli

import (
	"context"
	"fmt"
)

// Products lists the catalog. Available without a session.
func (a *App) Products(ctx context.Context) error {
	products, err := a.catalog.List(ctx)
	if err != nil {
		printlnFn("Could not load products:", err.Error())
		return err
	}
	if len(products) == 0 {
		printlnFn("No products available")
		return nil
	}

	for _, p := range products {
		printlnFn(fmt.Sprintf("%4d  %-30s %-12s $%.2f (stock %d)", p.ID, p.Name, p.Category, p.Price, p.Stock))
	}
	return nil
}
