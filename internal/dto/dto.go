package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"imageUrl"`
	// Description is display-only and never affects money.
	Description string `json:"description"`

	// legacy shape: some clients attach the customer to the first cart item
	CustomerInfo *CustomerInfo `json:"customerInfo,omitempty"`
}

type CustomerInfo struct {
	Name           string `json:"name"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Commune        string `json:"commune"`
	RUT            string `json:"rut"`
	ShippingMethod string `json:"shippingMethod"`
}

// CheckoutRequest is the canonical shape both accepted bodies normalize into.
type CheckoutRequest struct {
	CartItems    []CartItem    `json:"cartItems"`
	CustomerInfo *CustomerInfo `json:"customerInfo"`
}

// ParseCheckoutRequest accepts either the wrapped object shape or the legacy
// bare-array shape and returns the canonical request. The rest of the flow
// never sees the legacy format.
func ParseCheckoutRequest(body []byte) (*CheckoutRequest, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty request body")
	}

	if trimmed[0] == '[' {
		var items []CartItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode cart items: %w", err)
		}

		req := &CheckoutRequest{CartItems: items}
		for i := range items {
			if items[i].CustomerInfo != nil {
				req.CustomerInfo = items[i].CustomerInfo
				items[i].CustomerInfo = nil
				break
			}
		}
		return req, nil
	}

	var req CheckoutRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, fmt.Errorf("decode checkout request: %w", err)
	}
	return &req, nil
}

type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
	OrderID     string `json:"orderId"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

type ProductRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	ImageURL    string  `json:"image_url"`
}
