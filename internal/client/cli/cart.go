package cli

import (
	"context"
	"fmt"
	"os"
)

// Cart lists the current user's cart with its total.
func (a *App) Cart(ctx context.Context) error {
	if !a.session.IsLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	items, total, err := a.cart.Items(ctx, a.session.User().Email)
	if err != nil {
		printlnFn("Could not load cart:", err.Error())
		return err
	}
	if len(items) == 0 {
		printlnFn("Cart is empty")
		return nil
	}

	for _, item := range items {
		printlnFn(fmt.Sprintf("%4d  %-30s x%-3d $%.2f", item.ID, item.ProductName, item.Quantity, item.TotalPrice))
	}
	printlnFn(fmt.Sprintf("Total: $%.2f", total))
	return nil
}

// AddToCart prompts for a product id and quantity and adds the line.
func (a *App) AddToCart(ctx context.Context) error {
	if !a.session.IsLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	productID, err := GetInt(a.reader, "Product id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	quantity, err := GetInt(a.reader, "Quantity", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	item, err := a.cart.Add(ctx, a.session.User().Email, productID, int(quantity))
	if err != nil {
		printlnFn("Could not add to cart:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Added %s x%d", item.ProductName, item.Quantity))
	return nil
}

// RemoveFromCart prompts for a cart line id and removes it.
func (a *App) RemoveFromCart(ctx context.Context) error {
	if !a.session.IsLoggedIn() {
		printlnFn("Please login first")
		return nil
	}

	itemID, err := GetInt(a.reader, "Cart item id", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.cart.Remove(ctx, itemID); err != nil {
		printlnFn("Could not remove item:", err.Error())
		return err
	}

	printlnFn("Removed")
	return nil
}
