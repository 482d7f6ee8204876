package app

import (
	"bistro/internal/domain"
)

// ============================================================
// Cart
// ============================================================

// AddToCart adds quantity of item; quantity below 1 means one.
func (a *App) AddToCart(item domain.ItemPayload, quantity int) domain.CartSnapshot {
	return a.svc.Cart.AddToCart(a.ctx, item, quantity)
}

func (a *App) RemoveFromCart(title string) domain.CartSnapshot {
	return a.svc.Cart.RemoveFromCart(a.ctx, title)
}

func (a *App) UpdateQuantity(title string, delta int) domain.CartSnapshot {
	return a.svc.Cart.UpdateQuantity(a.ctx, title, delta)
}

func (a *App) GetCart() domain.CartSnapshot {
	return a.svc.Cart.Snapshot()
}

func (a *App) GetCartTotal() float64 {
	return a.svc.Cart.Total()
}

func (a *App) GetCartCount() int {
	return a.svc.Cart.Count()
}

func (a *App) IsInCart(title string) bool {
	return a.svc.Cart.Contains(title)
}
