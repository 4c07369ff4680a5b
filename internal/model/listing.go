package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Listing represents one row of the MLS listing feed as surfaced on the
// marketing site. The feed ingestion process owns these records; this
// service only reads them. Nullable columns map to pointer fields.
type Listing struct {
	ID         string  `json:"id" db:"id"`
	ListingID  *string `json:"listing_id,omitempty" db:"listing_id"`
	ListingKey string  `json:"listing_key" db:"listing_key"`

	// Pricing
	ListPrice         *float64 `json:"list_price,omitempty" db:"list_price"`
	OriginalListPrice *float64 `json:"original_list_price,omitempty" db:"original_list_price"`

	// Structure
	BedroomsTotal         *int     `json:"bedrooms_total,omitempty" db:"bedrooms_total"`
	BathroomsTotalDecimal *float64 `json:"bathrooms_total_decimal,omitempty" db:"bathrooms_total_decimal"`
	BathroomsFull         *int     `json:"bathrooms_full,omitempty" db:"bathrooms_full"`
	BathroomsHalf         *int     `json:"bathrooms_half,omitempty" db:"bathrooms_half"`
	LivingArea            *float64 `json:"living_area,omitempty" db:"living_area"`
	LotSizeAcres          *float64 `json:"lot_size_acres,omitempty" db:"lot_size_acres"`
	LotSizeSqft           *float64 `json:"lot_size_sqft,omitempty" db:"lot_size_sqft"`
	YearBuilt             *int     `json:"year_built,omitempty" db:"year_built"`
	Stories               *int     `json:"stories,omitempty" db:"stories"`
	GarageSpaces          *int     `json:"garage_spaces,omitempty" db:"garage_spaces"`
	ParkingTotal          *int     `json:"parking_total,omitempty" db:"parking_total"`
	PoolPrivateYN         *bool    `json:"pool_private_yn,omitempty" db:"pool_private_yn"`
	AssociationYN         *bool    `json:"association_yn,omitempty" db:"association_yn"`
	FireplacesTotal       *int     `json:"fireplaces_total,omitempty" db:"fireplaces_total"`

	// Location
	CountyOrParish  *string  `json:"county_or_parish,omitempty" db:"county_or_parish"`
	UnparsedAddress *string  `json:"unparsed_address,omitempty" db:"unparsed_address"`
	StreetNumber    *string  `json:"street_number,omitempty" db:"street_number"`
	StreetName      *string  `json:"street_name,omitempty" db:"street_name"`
	StreetSuffix    *string  `json:"street_suffix,omitempty" db:"street_suffix"`
	City            *string  `json:"city,omitempty" db:"city"`
	StateOrProvince *string  `json:"state_or_province,omitempty" db:"state_or_province"`
	PostalCode      *string  `json:"postal_code,omitempty" db:"postal_code"`
	SubdivisionName *string  `json:"subdivision_name,omitempty" db:"subdivision_name"`
	Latitude        *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude       *float64 `json:"longitude,omitempty" db:"longitude"`

	// Schools
	ElementarySchool     *string `json:"elementary_school,omitempty" db:"elementary_school"`
	MiddleOrJuniorSchool *string `json:"middle_or_junior_school,omitempty" db:"middle_or_junior_school"`
	HighSchool           *string `json:"high_school,omitempty" db:"high_school"`

	// Status and classification
	StandardStatus  *string `json:"standard_status,omitempty" db:"standard_status"`
	PropertyType    *string `json:"property_type,omitempty" db:"property_type"`
	PropertySubType *string `json:"property_sub_type,omitempty" db:"property_sub_type"`

	// Media
	PhotoURLs     StringArray `json:"photo_urls,omitempty" db:"photo_urls"`
	ThumbnailURLs StringArray `json:"thumbnail_urls,omitempty" db:"thumbnail_urls"`
	PhotosCount   *int        `json:"photos_count,omitempty" db:"photos_count"`

	// Description
	PublicRemarks *string `json:"public_remarks,omitempty" db:"public_remarks"`

	// Attribution
	ListAgentKey    *string `json:"list_agent_key,omitempty" db:"list_agent_key"`
	ListAgentMLSID  *string `json:"list_agent_mls_id,omitempty" db:"list_agent_mls_id"`
	ListOfficeMLSID *string `json:"list_office_mls_id,omitempty" db:"list_office_mls_id"`

	OnMarketDate *time.Time `json:"on_market_date,omitempty" db:"on_market_date"`
}

// DealSide denotes which party the agent represented in a closed deal.
type DealSide string

const (
	DealSideListing DealSide = "listing"
	DealSideBuyer   DealSide = "buyer"
)

// ClosedDeal is a sold listing tagged with the side the agent worked.
// Derived at query time, never persisted on its own.
type ClosedDeal struct {
	Listing
	Side DealSide `json:"side"`
}

// ClosedDealsSummary carries the combined deals plus per-side stats for
// the agent track-record section.
type ClosedDealsSummary struct {
	Deals         []ClosedDeal `json:"deals"`
	ListingCount  int          `json:"listing_count"`
	BuyerCount    int          `json:"buyer_count"`
	ListingVolume float64      `json:"listing_volume"`
	BuyerVolume   float64      `json:"buyer_volume"`
}

// StringArray represents a JSON array column of strings (photo URLs).
type StringArray []string

// Value implements driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), a)
	}
	return json.Unmarshal(bytes, a)
}
