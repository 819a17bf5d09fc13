package models

type Address struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address1  string `json:"address_1" validate:"required,max=200"`
	Address2  string `json:"address_2,omitempty" validate:"omitempty,max=200"`
	City      string `json:"city" validate:"required,max=100"`
	State     string `json:"state,omitempty" validate:"omitempty,max=50"`
	Postcode  string `json:"postcode" validate:"required,max=20"`
	Country   string `json:"country" validate:"required,len=2"`
}

type CheckoutRequest struct {
	BillingAddress  Address  `json:"billing_address" validate:"required"`
	ShippingAddress *Address `json:"shipping_address,omitempty" validate:"omitempty"`
	PaymentMethod   string   `json:"payment_method" validate:"required"`
	CustomerNote    string   `json:"customer_note,omitempty" validate:"omitempty,max=500"`
	CreateAccount   bool     `json:"create_account,omitempty"`
}

// OrderConfirmation is the upstream checkout response; passed through as-is.
type OrderConfirmation struct {
	OrderID        int               `json:"order_id"`
	OrderKey       string            `json:"order_key"`
	Status         string            `json:"status"`
	PaymentMethod  string            `json:"payment_method"`
	CustomerNote   string            `json:"customer_note,omitempty"`
	Totals         CartTotals        `json:"totals"`
	PaymentResult  map[string]any    `json:"payment_result,omitempty"`
	BillingAddress map[string]string `json:"billing_address,omitempty"`
}
