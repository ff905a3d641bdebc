package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"joyeria-backend/internal/dto"
	"joyeria-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCheckoutService struct {
	resp    *dto.CheckoutResponse
	err     error
	lastReq *dto.CheckoutRequest
	origin  string
}

func (f *fakeCheckoutService) CreatePreference(ctx context.Context, req *dto.CheckoutRequest, origin string) (*dto.CheckoutResponse, error) {
	f.lastReq = req
	f.origin = origin
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func postCheckout(t *testing.T, svc service.CheckoutService, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/preference", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewCheckoutHandler(svc).CreatePreference(c))
	return rec
}

func TestCreatePreferenceHandlerSuccess(t *testing.T) {
	svc := &fakeCheckoutService{resp: &dto.CheckoutResponse{
		CheckoutURL: "https://mp.test/init/pref-1",
		OrderID:     "pref-1",
	}}

	rec := postCheckout(t, svc,
		`{"cartItems": [{"id": "A", "quantity": 1}]}`,
		map[string]string{"Origin": "https://tienda.test"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"checkoutUrl": "https://mp.test/init/pref-1", "orderId": "pref-1"}`, rec.Body.String())
	assert.Equal(t, "https://tienda.test", svc.origin)
}

func TestCreatePreferenceHandlerLegacyBody(t *testing.T) {
	svc := &fakeCheckoutService{resp: &dto.CheckoutResponse{CheckoutURL: "u", OrderID: "o"}}

	rec := postCheckout(t, svc, `[{"id": "A", "quantity": 2}]`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastReq)
	require.Len(t, svc.lastReq.CartItems, 1)
	assert.Equal(t, 2, svc.lastReq.CartItems[0].Quantity)
}

func TestCreatePreferenceHandlerEmptyCart(t *testing.T) {
	svc := &fakeCheckoutService{err: service.ErrEmptyCart}

	rec := postCheckout(t, svc, `{"cartItems": []}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "El carrito está vacío"}`, rec.Body.String())
}

func TestCreatePreferenceHandlerValidationError(t *testing.T) {
	svc := &fakeCheckoutService{err: errors.New("Stock insuficiente para Collar de oro. Disponible: 1, solicitado: 3")}

	rec := postCheckout(t, svc, `{"cartItems": [{"id": "B", "quantity": 3}]}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Stock insuficiente")
}

func TestCreatePreferenceHandlerMalformedBody(t *testing.T) {
	svc := &fakeCheckoutService{}

	rec := postCheckout(t, svc, `not json`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastReq)
}
