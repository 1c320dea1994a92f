package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/billing_backoffice/internal/apperrors"
	"github.com/finbooks/billing_backoffice/internal/core/domain"
	portsrepo "github.com/finbooks/billing_backoffice/internal/core/ports/repositories"
	"github.com/finbooks/billing_backoffice/internal/models"
	"github.com/finbooks/billing_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCatalogItemRepository struct {
	BaseRepository
}

// newPgxCatalogItemRepository creates a new repository for catalog items.
func newPgxCatalogItemRepository(pool *pgxpool.Pool) portsrepo.CatalogItemRepositoryFacade {
	return &PgxCatalogItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogItemRepositoryFacade = (*PgxCatalogItemRepository)(nil)

const catalogItemColumns = `item_id, owner_id, name, description, item_type, unit_price, quantity, created_at, created_by, last_updated_at, last_updated_by`

func scanCatalogItem(row pgx.Row) (models.CatalogItem, error) {
	var m models.CatalogItem
	err := row.Scan(
		&m.ItemID,
		&m.OwnerID,
		&m.Name,
		&m.Description,
		&m.ItemType,
		&m.UnitPrice,
		&m.Quantity,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCatalogItem inserts a new catalog item.
func (r *PgxCatalogItemRepository) SaveCatalogItem(ctx context.Context, item domain.CatalogItem) error {
	m := mapping.ToModelCatalogItem(item)

	query := `
		INSERT INTO catalog_items (` + catalogItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.OwnerID,
		m.Name,
		m.Description,
		m.ItemType,
		m.UnitPrice,
		m.Quantity,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: catalog item %s already exists", apperrors.ErrDuplicate, m.ItemID)
		}
		return fmt.Errorf("failed to save catalog item %s: %w", m.ItemID, err)
	}
	return nil
}

// FindCatalogItemByID retrieves a catalog item by its ID.
func (r *PgxCatalogItemRepository) FindCatalogItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	query := `
		SELECT ` + catalogItemColumns + `
		FROM catalog_items
		WHERE item_id = $1;
	`
	m, err := scanCatalogItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find catalog item %s: %w", itemID, err)
	}
	item := mapping.ToDomainCatalogItem(m)
	return &item, nil
}

// FindCatalogItemsByIDs retrieves multiple catalog items keyed by ID. Missing
// IDs are simply absent from the map; the caller decides whether that matters.
func (r *PgxCatalogItemRepository) FindCatalogItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.CatalogItem, error) {
	if len(itemIDs) == 0 {
		return map[string]domain.CatalogItem{}, nil
	}

	query := `
		SELECT ` + catalogItemColumns + `
		FROM catalog_items
		WHERE item_id = ANY($1);
	`
	rows, err := r.Pool.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items by IDs: %w", err)
	}
	defer rows.Close()

	itemsMap := make(map[string]domain.CatalogItem)
	for rows.Next() {
		m, err := scanCatalogItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog item row during batch fetch: %w", err)
		}
		itemsMap[m.ItemID] = mapping.ToDomainCatalogItem(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog item rows during batch fetch: %w", err)
	}

	return itemsMap, nil
}

// ListCatalogItemsByOwner retrieves all catalog items belonging to an owner.
func (r *PgxCatalogItemRepository) ListCatalogItemsByOwner(ctx context.Context, ownerID string) ([]domain.CatalogItem, error) {
	query := `
		SELECT ` + catalogItemColumns + `
		FROM catalog_items
		WHERE owner_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	items := []domain.CatalogItem{}
	for rows.Next() {
		m, err := scanCatalogItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog item row for owner %s: %w", ownerID, err)
		}
		items = append(items, mapping.ToDomainCatalogItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog item rows for owner %s: %w", ownerID, err)
	}

	return items, nil
}
