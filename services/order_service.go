package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/th3akash/taste-haven-backend/entity"
	"github.com/th3akash/taste-haven-backend/ws"
)

// ErrValidation marks bad client input. Controllers map it to 400.
var ErrValidation = errors.New("validation failed")

// OrderRepo persists new orders in the external store.
type OrderRepo interface {
	CreateOrder(ctx context.Context, rec *entity.OrderRecord) (string, error)
}

// Broadcaster fans an event out to a realtime channel. Satisfied by *ws.Hub.
type Broadcaster interface {
	Broadcast(channel string, v any)
}

type OrderService struct {
	Repo OrderRepo
	Hub  Broadcaster

	now func() time.Time
}

func NewOrderService(repo OrderRepo, hub Broadcaster) *OrderService {
	return &OrderService{Repo: repo, Hub: hub, now: time.Now}
}

// Place persists the order snapshot and returns the store-assigned id. Online
// orders go straight to the kitchen channel; cash orders stay silent until an
// admin approves them.
func (s *OrderService) Place(ctx context.Context, order *entity.Order, method string) (string, error) {
	if err := validateOrder(order); err != nil {
		return "", err
	}

	status := entity.StatusOrderPlaced
	if method == entity.PaymentMethodCash {
		status = entity.StatusPendingPayment
	}

	rec := &entity.OrderRecord{
		Table:         order.Table,
		Items:         append([]entity.CartItem(nil), order.Items...),
		PaymentMethod: method,
		Status:        status,
		TotalAmount:   totalAmount(order.Items),
		Timestamp:     s.now().UnixMilli(),
		User:          order.User,
	}

	id, err := s.Repo.CreateOrder(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	if method == entity.PaymentMethodOnline {
		s.Hub.Broadcast(ws.ChannelKitchen, map[string]any{
			"type":    "new_order",
			"orderId": id,
			"table":   order.Table,
		})
	}

	return id, nil
}

func validateOrder(order *entity.Order) error {
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrValidation)
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive for %q", ErrValidation, item.Name)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: price must not be negative for %q", ErrValidation, item.Name)
		}
	}
	return nil
}

func totalAmount(items []entity.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
