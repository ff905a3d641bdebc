package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"joyeria-backend/internal/config"
	"joyeria-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) MercadoPagoClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewMercadoPagoClient(&config.MercadoPago{
		BaseApiURL:  srv.URL,
		AccessToken: "TEST-TOKEN",
	})
}

func TestCreatePreference(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkout/preferences", r.URL.Path)
		assert.Equal(t, "Bearer TEST-TOKEN", r.Header.Get("Authorization"))

		var req model.PreferenceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 1)
		assert.Equal(t, 50000.0, req.Items[0].UnitPrice)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.Preference{
			ID:        "pref-9",
			InitPoint: "https://mp.test/init/pref-9",
		})
	})

	pref, err := c.CreatePreference(context.Background(), &model.PreferenceRequest{
		Items: []model.PreferenceItem{{ID: "A", Title: "Anillo", Quantity: 1, UnitPrice: 50000, CurrencyID: "CLP"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "pref-9", pref.ID)
	assert.Equal(t, "https://mp.test/init/pref-9", pref.InitPoint)
}

func TestCreatePreferenceErrorExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "cause data message",
			body: `{"message": "bad request", "cause": {"data": {"message": "unit_price invalid"}}}`,
			want: "unit_price invalid",
		},
		{
			name: "cause error string",
			body: `{"message": "bad request", "cause": {"error": "items required"}}`,
			want: "items required",
		},
		{
			name: "top level message",
			body: `{"message": "invalid access token"}`,
			want: "invalid access token",
		},
		{
			name: "unknown shape",
			body: `<html>bad gateway</html>`,
			want: "error desconocido del proveedor de pagos",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tc.body))
			})

			_, err := c.CreatePreference(context.Background(), &model.PreferenceRequest{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), "Error al crear preferencia de pago")
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestGetPayment(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payments/42", r.URL.Path)
		assert.Equal(t, "Bearer TEST-TOKEN", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(model.Payment{
			ID:           42,
			Status:       "approved",
			StatusDetail: "accredited",
			PreferenceID: "pref-9",
		})
	})

	payment, err := c.GetPayment(context.Background(), "42")

	require.NoError(t, err)
	assert.Equal(t, int64(42), payment.ID)
	assert.Equal(t, "approved", payment.Status)
	assert.Equal(t, "pref-9", payment.PreferenceID)
}

func TestGetPaymentNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Payment not found"}`))
	})

	_, err := c.GetPayment(context.Background(), "999")

	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
