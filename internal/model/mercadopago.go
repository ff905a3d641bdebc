package model

import "encoding/json"

type PreferenceItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	PictureURL  string  `json:"picture_url,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	CurrencyID  string  `json:"currency_id"`
}

type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type PreferencePayer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone *Phone `json:"phone,omitempty"`
}

type Phone struct {
	Number string `json:"number"`
}

type PreferenceRequest struct {
	Items               []PreferenceItem `json:"items"`
	Payer               *PreferencePayer `json:"payer,omitempty"`
	BackURLs            BackURLs         `json:"back_urls"`
	AutoReturn          string           `json:"auto_return,omitempty"`
	StatementDescriptor string           `json:"statement_descriptor,omitempty"`
	ExternalReference   string           `json:"external_reference,omitempty"`
	NotificationURL     string           `json:"notification_url,omitempty"`
}

type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// Payment is the authoritative payment object fetched from the provider.
// The webhook body's own status claims are never used; only this object is.
type Payment struct {
	ID                int64  `json:"id"`
	Status            string `json:"status"`
	StatusDetail      string `json:"status_detail"`
	PreferenceID      string `json:"preference_id"`
	ExternalReference string `json:"external_reference"`
}

// WebhookNotification is the provider's async callback body.
type WebhookNotification struct {
	Type string `json:"type"`
	Data struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

// APIError is the provider's error body. The shape is inconsistent across
// endpoints, so every nested field is optional and Detail walks them in a
// fixed order with an unknown-shape fallback.
type APIError struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Status  int             `json:"status"`
	Cause   json.RawMessage `json:"cause"`
}

type apiErrorCause struct {
	Data *struct {
		Message string `json:"message"`
	} `json:"data"`
	Error json.RawMessage `json:"error"`
}

// Detail extracts the most specific human-readable message available:
// cause.data.message, then cause.error as a string, then cause.error as raw
// JSON, then the top-level message. Empty string means no shape matched.
func (e *APIError) Detail() string {
	if cause := e.firstCause(); cause != nil {
		if cause.Data != nil && cause.Data.Message != "" {
			return cause.Data.Message
		}
		if len(cause.Error) > 0 {
			var s string
			if err := json.Unmarshal(cause.Error, &s); err == nil && s != "" {
				return s
			}
			if raw := string(cause.Error); raw != "null" {
				return raw
			}
		}
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Error != "" {
		return e.Error
	}
	return ""
}

// firstCause tolerates cause arriving as an object or as an array of objects.
func (e *APIError) firstCause() *apiErrorCause {
	if len(e.Cause) == 0 {
		return nil
	}

	var single apiErrorCause
	if err := json.Unmarshal(e.Cause, &single); err == nil {
		return &single
	}

	var many []apiErrorCause
	if err := json.Unmarshal(e.Cause, &many); err == nil && len(many) > 0 {
		return &many[0]
	}

	return nil
}
