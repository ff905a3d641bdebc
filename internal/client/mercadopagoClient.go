package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"joyeria-backend/internal/config"
	"joyeria-backend/internal/model"
)

// ErrPaymentNotFound is returned when the provider has no payment for the id.
var ErrPaymentNotFound = errors.New("payment not found")

const preferenceErrorPrefix = "Error al crear preferencia de pago"

type MercadoPagoClient interface {
	CreatePreference(ctx context.Context, req *model.PreferenceRequest) (*model.Preference, error)
	GetPayment(ctx context.Context, paymentID string) (*model.Payment, error)
}

type mercadoPagoClientImpl struct {
	httpClient  *http.Client
	baseApiURL  string
	accessToken string
}

func NewMercadoPagoClient(mpCfg *config.MercadoPago) MercadoPagoClient {
	return &mercadoPagoClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL:  mpCfg.BaseApiURL,
		accessToken: mpCfg.AccessToken,
	}
}

func (c *mercadoPagoClientImpl) CreatePreference(ctx context.Context, prefReq *model.PreferenceRequest) (*model.Preference, error) {
	body, err := json.Marshal(prefReq)
	if err != nil {
		return nil, fmt.Errorf("marshal preference payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/checkout/preferences",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", preferenceErrorPrefix, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, preferenceError(resp.Body)
	}

	var pref model.Preference
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return nil, fmt.Errorf("decode preference response: %w", err)
	}

	return &pref, nil
}

func (c *mercadoPagoClientImpl) GetPayment(ctx context.Context, paymentID string) (*model.Payment, error) {
	url := fmt.Sprintf("%s/v1/payments/%s", c.baseApiURL, paymentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get payment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPaymentNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get payment %s: status=%d body=%s", paymentID, resp.StatusCode, string(b))
	}

	var payment model.Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("decode payment response: %w", err)
	}

	return &payment, nil
}

// preferenceError turns the provider's inconsistently shaped error body into
// a single error with the fixed prefix the callers return verbatim.
func preferenceError(body io.Reader) error {
	raw, _ := io.ReadAll(body)

	var apiErr model.APIError
	if err := json.Unmarshal(raw, &apiErr); err == nil {
		if detail := apiErr.Detail(); detail != "" {
			return fmt.Errorf("%s: %s", preferenceErrorPrefix, detail)
		}
	}

	return fmt.Errorf("%s: error desconocido del proveedor de pagos", preferenceErrorPrefix)
}
