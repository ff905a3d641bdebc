package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"joyeria-backend/internal/client"
	"joyeria-backend/internal/dto"
	"joyeria-backend/internal/model"
	"joyeria-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// ErrEmptyCart is the one client-input error of the checkout flow; the
// handler maps it to 400 and returns the message verbatim.
var ErrEmptyCart = errors.New("El carrito está vacío")

const currencyID = "CLP"

type CheckoutService interface {
	// CreatePreference re-prices the cart against the product store, creates
	// the hosted checkout session and persists a best-effort order record
	// keyed by the preference id. origin is the storefront origin used to
	// build the redirect URLs.
	CreatePreference(ctx context.Context, req *dto.CheckoutRequest, origin string) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	mpClient            client.MercadoPagoClient
	productRepo         repository.ProductRepository
	orderRepo           repository.OrderRepository
	serviceBaseURL      string
	statementDescriptor string
}

func NewCheckoutService(
	mpClient client.MercadoPagoClient,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	serviceBaseURL string,
	statementDescriptor string,
) CheckoutService {
	return &checkoutServiceImpl{
		mpClient:            mpClient,
		productRepo:         productRepo,
		orderRepo:           orderRepo,
		serviceBaseURL:      serviceBaseURL,
		statementDescriptor: statementDescriptor,
	}
}

func (s *checkoutServiceImpl) CreatePreference(ctx context.Context, req *dto.CheckoutRequest, origin string) (*dto.CheckoutResponse, error) {
	if len(req.CartItems) == 0 {
		return nil, ErrEmptyCart
	}

	// webhook-style callers carry no Origin header
	if origin == "" {
		origin = s.serviceBaseURL
	}

	productIDs := make([]string, len(req.CartItems))
	for i, item := range req.CartItems {
		productIDs[i] = item.ID
	}

	products, err := s.productRepo.FindMany(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("consultar productos: %w", err)
	}

	productByID := make(map[string]*model.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	// Validate every cart line against the store before touching the
	// provider: any missing or under-stocked product fails the whole request.
	prefItems := make([]model.PreferenceItem, len(req.CartItems))
	snapshot := make([]model.OrderItem, len(req.CartItems))
	for i, item := range req.CartItems {
		product, ok := productByID[item.ID]
		if !ok {
			name := item.Name
			if name == "" {
				name = item.ID
			}
			return nil, fmt.Errorf("Producto no encontrado: %s", name)
		}
		if product.Stock < item.Quantity {
			return nil, fmt.Errorf("Stock insuficiente para %s. Disponible: %d, solicitado: %d",
				product.Name, product.Stock, item.Quantity)
		}

		// price and name come from the store; image and description are
		// display-only and may come from the client
		prefItems[i] = model.PreferenceItem{
			ID:          product.ID,
			Title:       product.Name,
			Description: item.Description,
			PictureURL:  item.ImageURL,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			CurrencyID:  currencyID,
		}
		snapshot[i] = model.OrderItem{
			ID:       product.ID,
			Name:     product.Name,
			Quantity: item.Quantity,
			Price:    product.Price,
			Image:    item.ImageURL,
		}
	}

	prefReq := &model.PreferenceRequest{
		Items: prefItems,
		BackURLs: model.BackURLs{
			Success: origin + "/checkout/success",
			Failure: origin + "/checkout/failure",
			Pending: origin + "/checkout/pending",
		},
		AutoReturn:          "approved",
		StatementDescriptor: s.statementDescriptor,
		ExternalReference:   fmt.Sprintf("order-%d", time.Now().UnixMilli()),
		NotificationURL:     s.serviceBaseURL + "/api/payments/webhook",
	}
	if ci := req.CustomerInfo; ci != nil {
		prefReq.Payer = &model.PreferencePayer{
			Name:  ci.Name,
			Email: ci.Email,
		}
		if ci.Phone != "" {
			prefReq.Payer.Phone = &model.Phone{Number: ci.Phone}
		}
	}

	pref, err := s.mpClient.CreatePreference(ctx, prefReq)
	if err != nil {
		return nil, err
	}

	// Bookkeeping is best-effort: a failed insert must not stop the shopper
	// from paying, the checkout URL already exists on the provider's side.
	if err := s.orderRepo.Create(ctx, s.buildOrder(pref.ID, snapshot, req.CustomerInfo)); err != nil {
		slog.Error("persist order record", "order_id", pref.ID, "error", err)
	}

	return &dto.CheckoutResponse{
		CheckoutURL: pref.InitPoint,
		OrderID:     pref.ID,
	}, nil
}

func (s *checkoutServiceImpl) buildOrder(prefID string, snapshot []model.OrderItem, ci *dto.CustomerInfo) *model.Order {
	total := decimal.Zero
	for _, line := range snapshot {
		total = total.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	items, err := json.Marshal(snapshot)
	if err != nil {
		items = []byte("[]")
	}

	order := &model.Order{
		OrderID:       prefID,
		Items:         string(items),
		TotalAmount:   total.InexactFloat64(),
		ShippingCost:  0, // shipping is handled out-of-band
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusPending,
	}
	if ci != nil {
		order.CustomerName = ci.Name
		order.CustomerEmail = ci.Email
		order.CustomerPhone = ci.Phone
		order.ShippingAddress = ci.Address
		order.ShippingCity = ci.City
		order.ShippingRegion = ci.Commune
	}

	return order
}
