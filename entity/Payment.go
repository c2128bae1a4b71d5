package entity

// PaymentRequest asks the gateway for a new payment order.
type PaymentRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

// PaymentVerification is the triple the checkout page posts back after the
// gateway widget completes.
type PaymentVerification struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}
