package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"accessrealty/internal/config"
	"accessrealty/internal/model"

	"github.com/stripe/stripe-go/v78"
	"go.uber.org/zap"
)

// Checkout validation failures, surfaced to the handler as distinct
// HTTP statuses.
var (
	ErrInvalidPlan        = errors.New("invalid plan selected")
	ErrPriceNotConfigured = errors.New("payment price not configured")
)

// Plan is one entry of the fixed service-plan table.
type Plan struct {
	PriceID     string
	Name        string
	Tier        string
	AmountCents int64
}

// SessionCreator creates hosted/embedded payment sessions. It matches
// the stripe-go checkout session client so the real API can be plugged
// in directly.
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// CheckoutService maps plan selections to payment sessions. It holds no
// local state about created sessions; the processor is the system of
// record.
type CheckoutService struct {
	sessions SessionCreator
	plans    map[string]Plan
	appURL   string
	log      *zap.Logger
}

// NewCheckoutService builds the plan table from configuration.
func NewCheckoutService(cfg config.StripeConfig, sessions SessionCreator, log *zap.Logger) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		appURL:   cfg.AppURL,
		log:      log,
		plans: map[string]Plan{
			"direct-list": {
				PriceID:     cfg.PriceDirectList,
				Name:        "DirectList",
				Tier:        "direct_list",
				AmountCents: 49500, // $495 upfront
			},
			"direct-list-plus": {
				PriceID:     cfg.PriceDirectListPlus,
				Name:        "DirectList+",
				Tier:        "direct_list_plus",
				AmountCents: 99500, // $995 upfront
			},
			"full-service": {
				Name:        "Full Service",
				Tier:        "full_service",
				AmountCents: 0, // no upfront, 3% at closing
			},
		},
	}
}

// appBaseURL maps the marketing-site host to the corresponding app
// domain: production serves app.access.realty, preview deployments the
// preview app, and localhost the local dev app.
func (s *CheckoutService) appBaseURL(host string) string {
	if strings.Contains(host, "localhost") {
		return "http://localhost:3000"
	}
	if strings.HasPrefix(host, "preview.") || strings.Contains(host, "vercel.app") {
		return "https://preview.app.access.realty"
	}
	if s.appURL != "" {
		return s.appURL
	}
	return "https://app.access.realty"
}

// StartCheckout validates the plan and either returns a direct sign-up
// redirect (zero-upfront plans) or creates an embedded payment session
// and returns its client secret. Creating a session is a billable side
// effect in the processor's system.
func (s *CheckoutService) StartCheckout(ctx context.Context, req *model.CheckoutRequest, host string) (*model.CheckoutResponse, error) {
	plan, ok := s.plans[req.Plan]
	if !ok {
		return nil, ErrInvalidPlan
	}

	appBaseURL := s.appBaseURL(host)

	// Zero-upfront plans skip payment entirely and go straight to the
	// app sign-up flow with attribution intact.
	if plan.AmountCents == 0 {
		signupURL, err := url.Parse(appBaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid app URL %q: %w", appBaseURL, err)
		}
		q := signupURL.Query()
		q.Set("tier", plan.Tier)
		if req.Source != "" {
			q.Set("ref", req.Source)
		}
		for _, kv := range utmPairs(req.UTMParams) {
			q.Set(kv[0], kv[1])
		}
		signupURL.RawQuery = q.Encode()

		return &model.CheckoutResponse{
			RedirectURL:       signupURL.String(),
			NoPaymentRequired: true,
		}, nil
	}

	if plan.PriceID == "" || s.sessions == nil {
		s.log.Error("missing payment price for plan", zap.String("plan", req.Plan))
		return nil, ErrPriceNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode:   stripe.String(string(stripe.CheckoutSessionModePayment)),
		UIMode: stripe.String(string(stripe.CheckoutSessionUIModeEmbedded)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(plan.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		ReturnURL: stripe.String(checkoutReturnURL(appBaseURL, plan.Tier, req.Source, req.UTMParams)),
		// Collect billing address for compliance
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
	}
	params.Context = ctx
	params.AddMetadata("plan", req.Plan)
	if req.Source != "" {
		params.AddMetadata("source", req.Source)
	} else {
		params.AddMetadata("source", "services-page")
	}
	params.AddMetadata("created_from", "marketing-site")
	for _, kv := range utmPairs(req.UTMParams) {
		params.AddMetadata(kv[0], kv[1])
	}

	session, err := s.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &model.CheckoutResponse{
		ClientSecret: stripe.String(session.ClientSecret),
		SessionID:    session.ID,
	}, nil
}

// checkoutReturnURL builds the post-payment return target. The
// {CHECKOUT_SESSION_ID} token must stay unencoded or the processor will
// not substitute the real session id.
func checkoutReturnURL(appBaseURL, tier, source string, utm *model.UTMParams) string {
	queryParams := []string{
		"stripe_session_id={CHECKOUT_SESSION_ID}",
		"tier=" + url.QueryEscape(tier),
	}
	if source != "" {
		queryParams = append(queryParams, "ref="+url.QueryEscape(source))
	}
	for _, kv := range utmPairs(utm) {
		queryParams = append(queryParams, url.QueryEscape(kv[0])+"="+url.QueryEscape(kv[1]))
	}
	return appBaseURL + "/?" + strings.Join(queryParams, "&")
}

// utmPairs flattens the attribution params in a fixed order, skipping
// empty values.
func utmPairs(utm *model.UTMParams) [][2]string {
	if utm == nil {
		return nil
	}
	candidates := [][2]string{
		{"utm_source", utm.Source},
		{"utm_medium", utm.Medium},
		{"utm_campaign", utm.Campaign},
		{"utm_term", utm.Term},
		{"utm_content", utm.Content},
	}
	pairs := make([][2]string, 0, len(candidates))
	for _, kv := range candidates {
		if kv[1] != "" {
			pairs = append(pairs, kv)
		}
	}
	return pairs
}
