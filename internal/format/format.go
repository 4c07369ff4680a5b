// Package format holds pure display-formatting helpers for listing
// fields. Every function is total: nil inputs render a placeholder or
// an empty string, never an error.
package format

import (
	"math"
	"strconv"
	"strings"

	"accessrealty/internal/model"

	"github.com/dustin/go-humanize"
)

// PriceTBD is rendered when a listing has no price on the feed.
const PriceTBD = "Price TBD"

// AddressUnavailable is rendered when no address parts are present.
const AddressUnavailable = "Address Not Available"

// PlaceholderPhoto is served when a listing has no photos.
const PlaceholderPhoto = "/placeholder-home.jpg"

// Price renders a whole-dollar currency string, e.g. 425000 -> "$425,000".
func Price(price *float64) string {
	if price == nil {
		return PriceTBD
	}
	return "$" + humanize.Comma(int64(math.Round(*price)))
}

// BedsBaths renders whichever of the counts are present, e.g.
// "3 bd | 2 ba". Returns "" when neither is present.
func BedsBaths(beds *int, baths *float64) string {
	var parts []string
	if beds != nil {
		parts = append(parts, strconv.Itoa(*beds)+" bd")
	}
	if baths != nil {
		parts = append(parts, strconv.FormatFloat(*baths, 'f', -1, 64)+" ba")
	}
	return strings.Join(parts, " | ")
}

// Sqft renders a thousands-grouped square footage, e.g. "2,450 sqft".
func Sqft(sqft *float64) string {
	if sqft == nil {
		return ""
	}
	return humanize.Comma(int64(math.Round(*sqft))) + " sqft"
}

// Address prefers the feed's pre-composed address and falls back to
// joining the discrete street parts.
func Address(l *model.Listing) string {
	if l.UnparsedAddress != nil && *l.UnparsedAddress != "" {
		return *l.UnparsedAddress
	}

	var parts []string
	for _, p := range []*string{l.StreetNumber, l.StreetName, l.StreetSuffix} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	if len(parts) == 0 {
		return AddressUnavailable
	}
	return strings.Join(parts, " ")
}

// CityState joins present city and state values, e.g. "Austin, TX".
// Absent values are omitted entirely, never leaving a dangling comma.
func CityState(l *model.Listing) string {
	var parts []string
	for _, p := range []*string{l.City, l.StateOrProvince} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, ", ")
}

// PrimaryPhoto returns the first photo URL, or a placeholder.
func PrimaryPhoto(l *model.Listing) string {
	if len(l.PhotoURLs) > 0 {
		return l.PhotoURLs[0]
	}
	return PlaceholderPhoto
}

// propertyTypeLabels maps feed property types to display badges.
var propertyTypeLabels = map[string]string{
	"Residential":       "Home",
	"Residential Lease": "For Rent",
	"Land":              "Land",
	"Commercial":        "Commercial",
	"Multi-Family":      "Multi-Family",
}

// PropertyType renders the display badge for a feed property type,
// falling back to the raw value for unmapped types.
func PropertyType(t *string) string {
	if t == nil || *t == "" {
		return ""
	}
	if label, ok := propertyTypeLabels[*t]; ok {
		return label
	}
	return *t
}
