package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"accessrealty/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// listingColumns keeps listing queries lean; the feed table carries far
// more columns than the site ever renders.
const listingColumns = `
	id, listing_id, listing_key, list_price, original_list_price,
	bedrooms_total, bathrooms_total_decimal, bathrooms_full, bathrooms_half,
	living_area, lot_size_acres, lot_size_sqft, year_built, stories,
	garage_spaces, parking_total, pool_private_yn, association_yn,
	fireplaces_total, county_or_parish, elementary_school,
	middle_or_junior_school, high_school, unparsed_address, street_number,
	street_name, street_suffix, city, state_or_province, postal_code,
	subdivision_name, standard_status, property_type, property_sub_type,
	photo_urls, thumbnail_urls, photos_count, public_remarks,
	list_agent_key, list_agent_mls_id, list_office_mls_id,
	latitude, longitude, on_market_date`

// PostgresRepository handles database operations against the MLS feed
// tables. All access is read-only; the ingestion pipeline owns writes.
type PostgresRepository struct {
	db      *sqlx.DB
	mlsName string
}

// NewPostgresRepository creates a new PostgreSQL repository scoped to a
// single MLS namespace.
func NewPostgresRepository(dsn, mlsName string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db, mlsName: mlsName}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// searchConditions builds the WHERE clause for a filtered listings
// query. The office-key set must already be resolved; rentals are
// excluded unconditionally.
func searchConditions(filter *model.ListingsFilter, mlsName string, officeKeys []string) ([]string, []interface{}) {
	whereClauses := []string{"mls_name = $1"}
	args := []interface{}{mlsName}
	argIndex := 2

	whereClauses = append(whereClauses, fmt.Sprintf("list_office_key = ANY($%d)", argIndex))
	args = append(args, pq.Array(officeKeys))
	argIndex++

	whereClauses = append(whereClauses, fmt.Sprintf("standard_status = ANY($%d)", argIndex))
	args = append(args, pq.Array(filter.Statuses()))
	argIndex++

	whereClauses = append(whereClauses, fmt.Sprintf("property_type <> $%d", argIndex))
	args = append(args, model.PropertyTypeRental)
	argIndex++

	if filter.AgentKey != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("list_agent_mls_id = $%d", argIndex))
		args = append(args, *filter.AgentKey)
		argIndex++
	}
	if filter.MinPrice != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("list_price >= $%d", argIndex))
		args = append(args, *filter.MinPrice)
		argIndex++
	}
	if filter.MaxPrice != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("list_price <= $%d", argIndex))
		args = append(args, *filter.MaxPrice)
		argIndex++
	}
	if filter.MinBeds != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("bedrooms_total >= $%d", argIndex))
		args = append(args, *filter.MinBeds)
		argIndex++
	}
	if filter.MinBaths != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("bathrooms_total_decimal >= $%d", argIndex))
		args = append(args, *filter.MinBaths)
		argIndex++
	}
	if filter.PropertyType != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("property_type = $%d", argIndex))
		args = append(args, *filter.PropertyType)
		argIndex++
	}

	return whereClauses, args
}

// SearchListings performs a filtered, paginated query against the
// listings table. It returns the requested window plus the total count
// of the full filtered set.
func (r *PostgresRepository) SearchListings(
	ctx context.Context,
	filter *model.ListingsFilter,
	officeKeys []string,
	limit, offset int,
) ([]model.Listing, int, error) {
	whereClauses, args := searchConditions(filter, r.mlsName, officeKeys)
	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM mls_listings WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM mls_listings
		WHERE %s
		ORDER BY list_price DESC
		LIMIT $%d OFFSET $%d
	`, listingColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var listings []model.Listing
	if err := r.db.SelectContext(ctx, &listings, selectQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to fetch listings: %w", err)
	}

	return listings, total, nil
}

// GetListingByID retrieves a single listing by its externally stable
// listing_id. Returns (nil, nil) when no record matches.
func (r *PostgresRepository) GetListingByID(ctx context.Context, listingID string) (*model.Listing, error) {
	var listing model.Listing
	query := fmt.Sprintf(`
		SELECT %s
		FROM mls_listings
		WHERE mls_name = $1 AND listing_id = $2
	`, listingColumns)
	err := r.db.GetContext(ctx, &listing, query, r.mlsName, listingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// ClosedListingSideDeals returns closed deals where the agent
// represented the seller. Records without geocoding are excluded since
// they cannot be mapped.
func (r *PostgresRepository) ClosedListingSideDeals(ctx context.Context, agentMLSID string) ([]model.Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM mls_listings
		WHERE mls_name = $1
		  AND list_agent_mls_id = $2
		  AND standard_status = $3
		  AND latitude IS NOT NULL
		  AND longitude IS NOT NULL
		  AND property_type <> $4
		ORDER BY list_price DESC
	`, listingColumns)

	var listings []model.Listing
	err := r.db.SelectContext(ctx, &listings, query, r.mlsName, agentMLSID, model.StatusClosed, model.PropertyTypeRental)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing-side deals: %w", err)
	}
	return listings, nil
}

// ClosedBuyerSideDeals returns closed deals where the agent, identified
// by internal member key, represented the buyer.
func (r *PostgresRepository) ClosedBuyerSideDeals(ctx context.Context, memberKey string) ([]model.Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM mls_listings
		WHERE mls_name = $1
		  AND buyer_agent_key = $2
		  AND standard_status = $3
		  AND latitude IS NOT NULL
		  AND longitude IS NOT NULL
		  AND property_type <> $4
		ORDER BY list_price DESC
	`, listingColumns)

	var listings []model.Listing
	err := r.db.SelectContext(ctx, &listings, query, r.mlsName, memberKey, model.StatusClosed, model.PropertyTypeRental)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch buyer-side deals: %w", err)
	}
	return listings, nil
}

// ResolveMemberKey maps an agent's MLS id to the internal member key
// used on the buyer side of closed records. Returns "" when the member
// roster has no matching row.
func (r *PostgresRepository) ResolveMemberKey(ctx context.Context, agentMLSID string) (string, error) {
	var memberKey string
	query := `SELECT member_key FROM mls_members WHERE mls_name = $1 AND member_mls_id = $2`
	err := r.db.GetContext(ctx, &memberKey, query, r.mlsName, agentMLSID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve member key: %w", err)
	}
	return memberKey, nil
}
