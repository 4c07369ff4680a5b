package service

import (
	"context"
	"errors"
	"testing"

	"accessrealty/internal/model"

	"go.uber.org/zap"
)

// fakeStore implements ListingStore in memory.
type fakeStore struct {
	listings    []model.Listing
	total       int
	searchErr   error
	single      *model.Listing
	singleErr   error
	listingSide []model.Listing
	listingErr  error
	buyerSide   []model.Listing
	buyerErr    error
	memberKey   string
	memberErr   error

	searchCalls int
	gotOffice   []string
	gotLimit    int
	gotOffset   int
}

func (f *fakeStore) SearchListings(_ context.Context, _ *model.ListingsFilter, officeKeys []string, limit, offset int) ([]model.Listing, int, error) {
	f.searchCalls++
	f.gotOffice = officeKeys
	f.gotLimit = limit
	f.gotOffset = offset
	return f.listings, f.total, f.searchErr
}

func (f *fakeStore) GetListingByID(_ context.Context, _ string) (*model.Listing, error) {
	return f.single, f.singleErr
}

func (f *fakeStore) ClosedListingSideDeals(_ context.Context, _ string) ([]model.Listing, error) {
	return f.listingSide, f.listingErr
}

func (f *fakeStore) ClosedBuyerSideDeals(_ context.Context, _ string) ([]model.Listing, error) {
	return f.buyerSide, f.buyerErr
}

func (f *fakeStore) ResolveMemberKey(_ context.Context, _ string) (string, error) {
	return f.memberKey, f.memberErr
}

func listingWithPrice(id string, price float64) model.Listing {
	return model.Listing{ID: id, ListPrice: &price}
}

func TestFetchDefaultsToBrokerageOffices(t *testing.T) {
	store := &fakeStore{listings: []model.Listing{listingWithPrice("a", 500000)}, total: 1}
	svc := NewListingsService(store, zap.NewNop())

	page, err := svc.Fetch(context.Background(), nil, 12, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.searchCalls != 1 {
		t.Fatalf("expected one store call, got %d", store.searchCalls)
	}
	if len(store.gotOffice) != 1 || store.gotOffice[0] != brokerageOffices["PRSG01"] {
		t.Errorf("office keys = %v, want resolved default set", store.gotOffice)
	}
	if page.Total != 1 || page.HasMore {
		t.Errorf("page = %+v", page)
	}
}

func TestFetchUnresolvableOfficeScope(t *testing.T) {
	store := &fakeStore{listings: []model.Listing{listingWithPrice("a", 1)}, total: 99}
	svc := NewListingsService(store, zap.NewNop())

	filter := &model.ListingsFilter{OfficeIDs: []string{"NOPE01", "NOPE02"}}
	page, err := svc.Fetch(context.Background(), filter, 12, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.searchCalls != 0 {
		t.Error("store must not be queried when no office keys resolve")
	}
	if len(page.Listings) != 0 || page.Total != 0 || page.HasMore {
		t.Errorf("expected empty page, got %+v", page)
	}
}

func TestFetchHasMore(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		limit   int
		offset  int
		hasMore bool
	}{
		{name: "first page of many", total: 30, limit: 12, offset: 0, hasMore: true},
		{name: "exact last page", total: 24, limit: 12, offset: 12, hasMore: false},
		{name: "past the end", total: 10, limit: 12, offset: 12, hasMore: false},
		{name: "boundary", total: 13, limit: 12, offset: 0, hasMore: true},
		{name: "single page", total: 5, limit: 12, offset: 0, hasMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{total: tt.total}
			svc := NewListingsService(store, zap.NewNop())

			page, err := svc.Fetch(context.Background(), nil, tt.limit, tt.offset)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page.HasMore != tt.hasMore {
				t.Errorf("HasMore = %v, want %v", page.HasMore, tt.hasMore)
			}
		})
	}
}

func TestFetchSwallowsStoreFailure(t *testing.T) {
	store := &fakeStore{searchErr: errors.New("connection refused")}
	svc := NewListingsService(store, zap.NewNop())

	page, err := svc.Fetch(context.Background(), nil, 12, 0)
	if err == nil {
		t.Error("expected side-channel error for store failure")
	}
	if len(page.Listings) != 0 || page.Total != 0 || page.HasMore {
		t.Errorf("expected empty page on store failure, got %+v", page)
	}
}

func TestFetchOne(t *testing.T) {
	want := listingWithPrice("abc", 300000)
	store := &fakeStore{single: &want}
	svc := NewListingsService(store, zap.NewNop())

	got, err := svc.FetchOne(context.Background(), "20512345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != "abc" {
		t.Errorf("got %+v", got)
	}

	store = &fakeStore{singleErr: errors.New("timeout")}
	svc = NewListingsService(store, zap.NewNop())
	got, err = svc.FetchOne(context.Background(), "20512345")
	if got != nil {
		t.Error("store failure should map to absent")
	}
	if err == nil {
		t.Error("expected side-channel error")
	}
}

func TestClosedDealsCombination(t *testing.T) {
	store := &fakeStore{
		listingSide: []model.Listing{
			listingWithPrice("l1", 400000),
			listingWithPrice("shared", 900000),
		},
		buyerSide: []model.Listing{
			listingWithPrice("b1", 650000),
			listingWithPrice("shared", 900000), // agent on both sides
		},
		memberKey: "member-123",
	}
	svc := NewListingsService(store, zap.NewNop())

	summary, err := svc.ClosedDeals(context.Background(), "0591234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summary.Deals) != 3 {
		t.Fatalf("expected 3 deduped deals, got %d", len(summary.Deals))
	}

	// Sorted by price descending, duplicate kept with first-seen side.
	wantOrder := []struct {
		id   string
		side model.DealSide
	}{
		{"shared", model.DealSideListing},
		{"b1", model.DealSideBuyer},
		{"l1", model.DealSideListing},
	}
	for i, want := range wantOrder {
		if summary.Deals[i].ID != want.id || summary.Deals[i].Side != want.side {
			t.Errorf("deal[%d] = %s/%s, want %s/%s",
				i, summary.Deals[i].ID, summary.Deals[i].Side, want.id, want.side)
		}
	}

	if summary.ListingCount != 2 || summary.BuyerCount != 1 {
		t.Errorf("counts = %d/%d, want 2/1", summary.ListingCount, summary.BuyerCount)
	}
	if summary.ListingVolume != 1300000 || summary.BuyerVolume != 650000 {
		t.Errorf("volumes = %f/%f", summary.ListingVolume, summary.BuyerVolume)
	}
}

func TestClosedDealsDegradesWithoutMemberKey(t *testing.T) {
	store := &fakeStore{
		listingSide: []model.Listing{listingWithPrice("l1", 400000)},
		buyerSide:   []model.Listing{listingWithPrice("b1", 650000)},
		memberKey:   "",
	}
	svc := NewListingsService(store, zap.NewNop())

	summary, err := svc.ClosedDeals(context.Background(), "0591234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary.Deals) != 1 || summary.Deals[0].ID != "l1" {
		t.Errorf("expected listing-side only, got %+v", summary.Deals)
	}
}

func TestClosedDealsDegradesOnResolutionFailure(t *testing.T) {
	store := &fakeStore{
		listingSide: []model.Listing{listingWithPrice("l1", 400000)},
		memberErr:   errors.New("roster unavailable"),
	}
	svc := NewListingsService(store, zap.NewNop())

	summary, err := svc.ClosedDeals(context.Background(), "0591234")
	if err != nil {
		t.Fatalf("member resolution failure must not fail the operation: %v", err)
	}
	if len(summary.Deals) != 1 {
		t.Errorf("expected listing-side only, got %+v", summary.Deals)
	}
}

func TestResolveOfficeKeysDropsUnknown(t *testing.T) {
	keys := resolveOfficeKeys([]string{"PRSG01", "UNKNOWN"})
	if len(keys) != 1 || keys[0] != brokerageOffices["PRSG01"] {
		t.Errorf("resolveOfficeKeys = %v", keys)
	}
}
