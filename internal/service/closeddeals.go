package service

import (
	"context"
	"sort"

	"accessrealty/internal/model"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ClosedDeals returns an agent's closed transactions, combining the
// listing side (queried by the agent's MLS id) with the buyer side
// (queried by the resolved internal member key). If the member key
// cannot be resolved the buyer side is skipped and the result degrades
// to listing-side deals only. Records appearing on both sides are kept
// once, tagged with the side seen first.
func (s *ListingsService) ClosedDeals(ctx context.Context, agentMLSID string) (*model.ClosedDealsSummary, error) {
	var listingSide, buyerSide []model.Listing

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		listingSide, err = s.store.ClosedListingSideDeals(gctx, agentMLSID)
		return err
	})

	g.Go(func() error {
		memberKey, err := s.store.ResolveMemberKey(gctx, agentMLSID)
		if err != nil || memberKey == "" {
			// Unresolved member key is not an error; degrade to
			// listing-side results.
			if err != nil {
				s.log.Warn("member key resolution failed", zap.String("agent_mls_id", agentMLSID), zap.Error(err))
			}
			return nil
		}
		buyerSide, err = s.store.ClosedBuyerSideDeals(gctx, memberKey)
		if err != nil {
			s.log.Warn("buyer-side deals query failed", zap.String("agent_mls_id", agentMLSID), zap.Error(err))
			buyerSide = nil
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error("closed deals query failed", zap.String("agent_mls_id", agentMLSID), zap.Error(err))
		return &model.ClosedDealsSummary{Deals: []model.ClosedDeal{}}, err
	}

	deals := combineDeals(listingSide, buyerSide)

	summary := &model.ClosedDealsSummary{Deals: deals}
	for _, d := range deals {
		price := 0.0
		if d.ListPrice != nil {
			price = *d.ListPrice
		}
		switch d.Side {
		case model.DealSideListing:
			summary.ListingCount++
			summary.ListingVolume += price
		case model.DealSideBuyer:
			summary.BuyerCount++
			summary.BuyerVolume += price
		}
	}

	return summary, nil
}

// combineDeals unions both sides, dedupes by internal record id keeping
// the first occurrence, and sorts by list price descending.
func combineDeals(listingSide, buyerSide []model.Listing) []model.ClosedDeal {
	deals := make([]model.ClosedDeal, 0, len(listingSide)+len(buyerSide))
	seen := make(map[string]struct{}, len(listingSide)+len(buyerSide))

	for _, l := range listingSide {
		if _, ok := seen[l.ID]; ok {
			continue
		}
		seen[l.ID] = struct{}{}
		deals = append(deals, model.ClosedDeal{Listing: l, Side: model.DealSideListing})
	}
	for _, l := range buyerSide {
		if _, ok := seen[l.ID]; ok {
			continue
		}
		seen[l.ID] = struct{}{}
		deals = append(deals, model.ClosedDeal{Listing: l, Side: model.DealSideBuyer})
	}

	sort.SliceStable(deals, func(i, j int) bool {
		return dealPrice(deals[i]) > dealPrice(deals[j])
	})

	return deals
}

func dealPrice(d model.ClosedDeal) float64 {
	if d.ListPrice == nil {
		return 0
	}
	return *d.ListPrice
}
