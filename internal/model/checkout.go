package model

// UTMParams are marketing attribution parameters forwarded through the
// checkout flow for conversion analytics.
type UTMParams struct {
	Source   string `json:"utm_source,omitempty"`
	Medium   string `json:"utm_medium,omitempty"`
	Campaign string `json:"utm_campaign,omitempty"`
	Term     string `json:"utm_term,omitempty"`
	Content  string `json:"utm_content,omitempty"`
}

// CheckoutRequest starts a checkout for a service plan.
type CheckoutRequest struct {
	Plan      string     `json:"plan" binding:"required"`
	Source    string     `json:"source,omitempty"`
	UTMParams *UTMParams `json:"utmParams,omitempty"`
	ReturnURL string     `json:"returnUrl,omitempty"`
}

// CheckoutResponse is the session-creation result. For the zero-upfront
// plan no payment session exists: ClientSecret stays null, RedirectURL
// points straight at the app sign-up flow and NoPaymentRequired is set.
type CheckoutResponse struct {
	ClientSecret      *string `json:"clientSecret"`
	SessionID         string  `json:"sessionId,omitempty"`
	RedirectURL       string  `json:"redirectUrl,omitempty"`
	NoPaymentRequired bool    `json:"noPaymentRequired,omitempty"`
}
