package model

// StatusActive is the default status category. It expands to the
// "active-like" set {Active, Pending, Active Under Contract} at query
// time; any other status string is matched literally.
const StatusActive = "Active"

// StatusClosed marks sold listings.
const StatusClosed = "Closed"

// PropertyTypeRental is never surfaced; the site only shows for-sale
// inventory.
const PropertyTypeRental = "Residential Lease"

// ListingsFilter expresses query intent for the listings browser.
// All fields are optional.
type ListingsFilter struct {
	OfficeIDs    []string `json:"office_ids,omitempty"`
	AgentKey     *string  `json:"agent_key,omitempty"`
	Status       string   `json:"status,omitempty"`
	MinPrice     *float64 `json:"min_price,omitempty"`
	MaxPrice     *float64 `json:"max_price,omitempty"`
	MinBeds      *int     `json:"min_beds,omitempty"`
	MinBaths     *float64 `json:"min_baths,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
}

// Statuses returns the set of standard_status values the filter matches.
func (f *ListingsFilter) Statuses() []string {
	if f.Status == "" || f.Status == StatusActive {
		return []string{"Active", "Pending", "Active Under Contract"}
	}
	return []string{f.Status}
}

// ListingsPage is the pagination envelope for listing queries. Total
// reflects the full filtered set regardless of the window.
type ListingsPage struct {
	Listings []Listing `json:"listings"`
	Total    int       `json:"total"`
	HasMore  bool      `json:"hasMore"`
}

// EmptyListingsPage is returned for unresolvable office scopes and for
// swallowed store failures, so callers always render an empty section
// rather than an error state.
func EmptyListingsPage() *ListingsPage {
	return &ListingsPage{Listings: []Listing{}, Total: 0, HasMore: false}
}
