package repository

import (
	"context"

	"firebase.google.com/go/v4/db"

	"github.com/th3akash/taste-haven-backend/entity"
)

// OrderRepository writes orders to the Realtime Database.
type OrderRepository struct {
	DB *db.Client
}

func NewOrderRepository(client *db.Client) *OrderRepository {
	return &OrderRepository{DB: client}
}

// CreateOrder pushes a new record under orders/ and returns the
// store-assigned key.
func (r *OrderRepository) CreateOrder(ctx context.Context, rec *entity.OrderRecord) (string, error) {
	ref, err := r.DB.NewRef("orders").Push(ctx, rec)
	if err != nil {
		return "", err
	}
	return ref.Key, nil
}
