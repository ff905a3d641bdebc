package model

import "time"

// fulfillment statuses, mutated by admins or by non-approved payment updates
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
	// PaymentStatusStockError flags an approved payment whose stock could not
	// be reserved at settlement time. Not a lifecycle state: it blocks
	// shipment until an administrator resolves it.
	PaymentStatusStockError = "stock_error"
)

type Product struct {
	ID          string  `gorm:"primaryKey;size:64;not null" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Stock       int     `gorm:"not null" json:"stock"`
	ImageURL    string  `gorm:"size:512" json:"image_url"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Order struct {
	// ID is the payment-provider preference id: one row per checkout attempt.
	OrderID string `gorm:"primaryKey;size:64;not null" json:"id"`

	CustomerName    string `gorm:"size:255" json:"customer_name"`
	CustomerEmail   string `gorm:"size:255;index" json:"customer_email"`
	CustomerPhone   string `gorm:"size:64" json:"customer_phone"`
	ShippingAddress string `gorm:"size:512" json:"shipping_address"`
	ShippingCity    string `gorm:"size:128" json:"shipping_city"`
	ShippingRegion  string `gorm:"size:128" json:"shipping_region"`

	// Items is the serialized cart snapshot at creation time, kept verbatim
	// regardless of later catalog changes.
	Items        string  `gorm:"type:text;not null" json:"items"`
	TotalAmount  float64 `gorm:"not null" json:"total_amount"`
	ShippingCost float64 `gorm:"not null" json:"shipping_cost"`

	Status        string `gorm:"size:32;index;not null" json:"status"`
	PaymentStatus string `gorm:"size:32;index;not null" json:"payment_status"`
	PaymentID     string `gorm:"size:64;index" json:"payment_id"`
	PaymentDetail string `gorm:"size:512" json:"payment_detail"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is one line of the persisted cart snapshot.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
}

type WebhookEvent struct {
	EventID       string `gorm:"primaryKey;size:64;not null"`
	PaymentID     string `gorm:"size:64;index"`
	EventType     string `gorm:"size:64;index"`
	PaymentStatus string `gorm:"size:32"`
	CreatedAt     time.Time
}
