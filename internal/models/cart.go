package models

type CartItemTotals struct {
	LineSubtotal      string `json:"line_subtotal"`
	LineTotal         string `json:"line_total"`
	CurrencyCode      string `json:"currency_code"`
	CurrencySymbol    string `json:"currency_symbol"`
	CurrencyMinorUnit int    `json:"currency_minor_unit"`
}

type CartItemVariation struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

type CartItem struct {
	Key              string              `json:"key"`
	ID               int                 `json:"id"`
	Name             string              `json:"name"`
	Quantity         int                 `json:"quantity"`
	Prices           Prices              `json:"prices"`
	Totals           CartItemTotals      `json:"totals"`
	Images           []Image             `json:"images"`
	Variation        []CartItemVariation `json:"variation"`
	ShortDescription string              `json:"short_description"`
}

type CartTotals struct {
	TotalItems        string `json:"total_items,omitempty"`
	TotalItemsTax     string `json:"total_items_tax,omitempty"`
	TotalPrice        string `json:"total_price"`
	TotalTax          string `json:"total_tax,omitempty"`
	CurrencyCode      string `json:"currency_code"`
	CurrencySymbol    string `json:"currency_symbol"`
	CurrencyMinorUnit int    `json:"currency_minor_unit"`
}

// Cart is the upstream cart-surface shape. The gateway never computes totals
// or mutates items itself; it relays whatever the upstream returns.
type Cart struct {
	Items           []CartItem        `json:"items"`
	ItemsCount      int               `json:"items_count"`
	Totals          CartTotals        `json:"totals"`
	ShippingAddress map[string]string `json:"shipping_address,omitempty"`
	BillingAddress  map[string]string `json:"billing_address,omitempty"`
	NeedsPayment    bool              `json:"needs_payment,omitempty"`
	NeedsShipping   bool              `json:"needs_shipping,omitempty"`
}

// EmptyCart is the synthetic response served for a cart read with no session
// token; the upstream is not consulted because there is nothing to fetch.
func EmptyCart() *Cart {
	return &Cart{
		Items:      []CartItem{},
		ItemsCount: 0,
		Totals: CartTotals{
			TotalPrice:        "0",
			CurrencyCode:      "USD",
			CurrencySymbol:    "$",
			CurrencyMinorUnit: 2,
		},
	}
}

type AddItemRequest struct {
	ProductID   int               `json:"productId" validate:"required,gt=0"`
	VariationID int               `json:"variationId,omitempty" validate:"omitempty,gt=0"`
	Quantity    int               `json:"quantity" validate:"omitempty,gte=1,lte=999"`
	Variation   map[string]string `json:"variation,omitempty"`
}

type UpdateItemRequest struct {
	Key      string `json:"key" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0,lte=999"`
}
