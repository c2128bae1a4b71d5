package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"

	"github.com/th3akash/taste-haven-backend/ws"
)

var (
	// ErrGateway wraps failures from the payment provider. Controllers map it
	// to 400 with the provider's message.
	ErrGateway = errors.New("payment gateway error")

	// ErrBadSignature means the client-supplied verification triple did not
	// pass the gateway's HMAC check. No event is broadcast.
	ErrBadSignature = errors.New("invalid payment signature")
)

// GatewayOrders is the slice of the Razorpay client we call. Satisfied by
// razorpay.Client.Order.
type GatewayOrders interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// PaymentIntent is what the checkout page needs to open the gateway widget.
type PaymentIntent struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

type PaymentService struct {
	Gateway   GatewayOrders
	Hub       Broadcaster
	KeyID     string
	KeySecret string
}

func NewPaymentService(gateway GatewayOrders, hub Broadcaster, keyID, keySecret string) *PaymentService {
	return &PaymentService{Gateway: gateway, Hub: hub, KeyID: keyID, KeySecret: keySecret}
}

// CreateIntent creates a gateway-side order for the given amount. The gateway
// wants minor units (paise), so 19.99 becomes 1999. Nothing is persisted
// locally; the gateway owns all payment state.
func (s *PaymentService) CreateIntent(amount float64, currency, receipt string) (*PaymentIntent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if currency == "" {
		currency = "INR"
	}

	data := map[string]interface{}{
		"amount":          int64(math.Round(amount * 100)),
		"currency":        currency,
		"payment_capture": 1,
	}
	if receipt != "" {
		data["receipt"] = receipt
	}

	order, err := s.Gateway.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	intent := &PaymentIntent{Key: s.KeyID}
	if id, ok := order["id"].(string); ok {
		intent.ID = id
	}
	if cur, ok := order["currency"].(string); ok {
		intent.Currency = cur
	}
	switch amt := order["amount"].(type) {
	case float64:
		intent.Amount = int64(amt)
	case int64:
		intent.Amount = amt
	case int:
		intent.Amount = int64(amt)
	}
	return intent, nil
}

// VerifyPayment checks the signature the gateway handed the client
// (HMAC-SHA256 of "<orderID>|<paymentID>" keyed with the API secret) and, only
// if it matches, tells the kitchen the payment went through.
func (s *PaymentService) VerifyPayment(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(s.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrBadSignature
	}

	s.Hub.Broadcast(ws.ChannelKitchen, map[string]any{
		"type":                "payment_success",
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  signature,
	})
	return nil
}
