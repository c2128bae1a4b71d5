package entity

// Order statuses. Terminal states (served, cancelled, approved) are set by the
// admin/kitchen tooling, never by this backend.
const (
	StatusPendingPayment = "pending_payment"
	StatusOrderPlaced    = "order_placed"
)

// Payment methods accepted on order placement.
const (
	PaymentMethodOnline = "online"
	PaymentMethodCash   = "cash"
)

// CartItem is one line of a customer's cart. Immutable once part of an order.
type CartItem struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"min=0"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

// Order is the request body for /place-order and /place-cod-order.
type Order struct {
	Table         int        `json:"table" binding:"required"`
	Items         []CartItem `json:"items"`
	PaymentMethod string     `json:"payment_method"`
	User          string     `json:"user,omitempty"` // used by the frontend to filter orders
}

// OrderRecord is the persisted shape under orders/<key>. TotalAmount is
// computed once from the item snapshot; later menu price changes never touch it.
type OrderRecord struct {
	Table         int        `json:"table"`
	Items         []CartItem `json:"items"`
	PaymentMethod string     `json:"payment_method"`
	Status        string     `json:"status"`
	TotalAmount   float64    `json:"total_amount"`
	Timestamp     int64      `json:"timestamp"` // creation instant, ms
	User          string     `json:"user,omitempty"`
}
