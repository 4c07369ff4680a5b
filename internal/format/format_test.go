package format

import (
	"testing"

	"accessrealty/internal/model"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name  string
		price *float64
		want  string
	}{
		{name: "whole dollars", price: float64Ptr(425000), want: "$425,000"},
		{name: "small price", price: float64Ptr(950), want: "$950"},
		{name: "rounds cents", price: float64Ptr(425000.75), want: "$425,001"},
		{name: "absent price", price: nil, want: "Price TBD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Price(tt.price); got != tt.want {
				t.Errorf("Price() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBedsBaths(t *testing.T) {
	tests := []struct {
		name  string
		beds  *int
		baths *float64
		want  string
	}{
		{name: "both present", beds: intPtr(3), baths: float64Ptr(2), want: "3 bd | 2 ba"},
		{name: "half bath", beds: intPtr(4), baths: float64Ptr(2.5), want: "4 bd | 2.5 ba"},
		{name: "beds only", beds: intPtr(3), baths: nil, want: "3 bd"},
		{name: "baths only", beds: nil, baths: float64Ptr(2), want: "2 ba"},
		{name: "neither", beds: nil, baths: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BedsBaths(tt.beds, tt.baths); got != tt.want {
				t.Errorf("BedsBaths() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSqft(t *testing.T) {
	tests := []struct {
		name string
		sqft *float64
		want string
	}{
		{name: "grouped", sqft: float64Ptr(2450), want: "2,450 sqft"},
		{name: "absent", sqft: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sqft(tt.sqft); got != tt.want {
				t.Errorf("Sqft() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	tests := []struct {
		name    string
		listing model.Listing
		want    string
	}{
		{
			name:    "prefers unparsed address",
			listing: model.Listing{UnparsedAddress: strPtr("123 Main St, Austin, TX"), StreetNumber: strPtr("999")},
			want:    "123 Main St, Austin, TX",
		},
		{
			name: "falls back to parts",
			listing: model.Listing{
				StreetNumber: strPtr("123"),
				StreetName:   strPtr("Main"),
				StreetSuffix: strPtr("St"),
			},
			want: "123 Main St",
		},
		{
			name:    "skips absent parts",
			listing: model.Listing{StreetNumber: strPtr("123"), StreetName: strPtr("Main")},
			want:    "123 Main",
		},
		{
			name:    "no parts at all",
			listing: model.Listing{},
			want:    "Address Not Available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Address(&tt.listing); got != tt.want {
				t.Errorf("Address() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCityState(t *testing.T) {
	tests := []struct {
		name    string
		listing model.Listing
		want    string
	}{
		{name: "both", listing: model.Listing{City: strPtr("Austin"), StateOrProvince: strPtr("TX")}, want: "Austin, TX"},
		{name: "city only", listing: model.Listing{City: strPtr("Austin")}, want: "Austin"},
		{name: "state only", listing: model.Listing{StateOrProvince: strPtr("TX")}, want: "TX"},
		{name: "neither", listing: model.Listing{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CityState(&tt.listing); got != tt.want {
				t.Errorf("CityState() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrimaryPhoto(t *testing.T) {
	withPhotos := model.Listing{PhotoURLs: model.StringArray{"a.jpg", "b.jpg"}}
	if got := PrimaryPhoto(&withPhotos); got != "a.jpg" {
		t.Errorf("PrimaryPhoto() = %q, want %q", got, "a.jpg")
	}

	empty := model.Listing{}
	if got := PrimaryPhoto(&empty); got != PlaceholderPhoto {
		t.Errorf("PrimaryPhoto() = %q, want placeholder", got)
	}
}

func TestPropertyType(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want string
	}{
		{name: "mapped", in: strPtr("Residential"), want: "Home"},
		{name: "unmapped passes through", in: strPtr("Farm"), want: "Farm"},
		{name: "absent", in: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PropertyType(tt.in); got != tt.want {
				t.Errorf("PropertyType() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Helper functions

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }
func strPtr(v string) *string       { return &v }
