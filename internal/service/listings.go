package service

import (
	"context"

	"accessrealty/internal/model"

	"go.uber.org/zap"
)

// ListingStore is the read-only query surface the listings service
// needs from the record store.
type ListingStore interface {
	SearchListings(ctx context.Context, filter *model.ListingsFilter, officeKeys []string, limit, offset int) ([]model.Listing, int, error)
	GetListingByID(ctx context.Context, listingID string) (*model.Listing, error)
	ClosedListingSideDeals(ctx context.Context, agentMLSID string) ([]model.Listing, error)
	ClosedBuyerSideDeals(ctx context.Context, memberKey string) ([]model.Listing, error)
	ResolveMemberKey(ctx context.Context, agentMLSID string) (string, error)
}

// ListingsService produces paginated, filtered views of listing records
// for a given office/agent scope. Store failures are converted to empty
// results so listing sections render nothing instead of an error state;
// the returned error is a side channel for logging only and never
// changes the rendered result.
type ListingsService struct {
	store ListingStore
	log   *zap.Logger
}

// NewListingsService creates a new listings service
func NewListingsService(store ListingStore, log *zap.Logger) *ListingsService {
	return &ListingsService{store: store, log: log}
}

// Fetch returns one page of listings matching the filter. An
// unspecified office scope defaults to all brokerage-owned offices;
// a scope that resolves to zero internal keys short-circuits to an
// empty page without touching the store.
func (s *ListingsService) Fetch(ctx context.Context, filter *model.ListingsFilter, limit, offset int) (*model.ListingsPage, error) {
	if filter == nil {
		filter = &model.ListingsFilter{}
	}

	officeIDs := filter.OfficeIDs
	if len(officeIDs) == 0 {
		officeIDs = DefaultOfficeMLSIDs
	}

	officeKeys := resolveOfficeKeys(officeIDs)
	if len(officeKeys) == 0 {
		s.log.Warn("no office keys resolved", zap.Strings("office_ids", officeIDs))
		return model.EmptyListingsPage(), nil
	}

	listings, total, err := s.store.SearchListings(ctx, filter, officeKeys, limit, offset)
	if err != nil {
		s.log.Error("listings query failed",
			zap.Strings("office_ids", officeIDs),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.Error(err))
		return model.EmptyListingsPage(), err
	}

	if listings == nil {
		listings = []model.Listing{}
	}

	return &model.ListingsPage{
		Listings: listings,
		Total:    total,
		HasMore:  offset+limit < total,
	}, nil
}

// FetchOne looks up a single listing by its stable listing id. Absent
// records and store failures both yield nil; the error distinguishes
// the two for the log side channel.
func (s *ListingsService) FetchOne(ctx context.Context, listingID string) (*model.Listing, error) {
	listing, err := s.store.GetListingByID(ctx, listingID)
	if err != nil {
		s.log.Error("listing lookup failed", zap.String("listing_id", listingID), zap.Error(err))
		return nil, err
	}
	return listing, nil
}
