package models

// CartItem is a line in the user's cart as returned by the backend.
// UnitPrice and TotalPrice are server-computed.
type CartItem struct {
	ID          int64   `json:"id"`
	UserEmail   string  `json:"userEmail"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}
