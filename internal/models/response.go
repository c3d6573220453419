package models

// OrderAck is the intake response when no hosted checkout is configured.
type OrderAck struct {
	OK      bool   `json:"ok"`
	OrderID string `json:"orderId"`
}

// CheckoutRedirect is the intake response when a checkout session was
// created; the client is expected to navigate to CheckoutURL.
type CheckoutRedirect struct {
	CheckoutURL string `json:"checkoutUrl"`
}

// SubmitResult is the union of the two intake responses, used by clients
// to decode whichever shape the server returned.
type SubmitResult struct {
	CheckoutURL string `json:"checkoutUrl"`
	OK          bool   `json:"ok"`
	OrderID     string `json:"orderId"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
