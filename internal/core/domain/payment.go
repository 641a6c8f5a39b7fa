package domain

import "time"

// Payment is the record returned by the payment provider delegation
// endpoint. The provider reference is opaque to the client.
type Payment struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency,omitempty"`
	Status      string    `json:"status,omitempty"`
	ProviderRef string    `json:"provider_ref,omitempty"`
	CheckoutURL string    `json:"checkout_url,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// PaymentInput carries the fields needed to initiate a payment.
type PaymentInput struct {
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
	Method   string  `json:"method,omitempty"`
}
