package postgres

import (
	"context"
	"errors"
	"fmt"

	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

var _ ports.CatalogRepository = (*CatalogRepo)(nil)

const productColumns = `p.id, p.parent_id, p.child_count, p.active, COALESCE(p.name, ''), COALESCE(p.product_number, ''),
	p.price, p.cover_image_url, p.updated_at`

// CatalogRepo reads products, variants and their translations from the shop
// database.
type CatalogRepo struct {
	pool Pool
}

func NewCatalogRepo(pool Pool) *CatalogRepo {
	return &CatalogRepo{pool: pool}
}

// ListActiveTopLevel pages through active items without a parent. The total
// is taken from a window count over the same filter.
func (r *CatalogRepo) ListActiveTopLevel(ctx context.Context, offset, limit int) ([]domain.CatalogItem, int, error) {
	query := `SELECT ` + productColumns + `, COUNT(*) OVER() AS total
		FROM products p
		WHERE p.active AND p.parent_id IS NULL
		ORDER BY p.id
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list top-level products: %w", err)
	}
	defer rows.Close()

	var items []domain.CatalogItem
	total := 0
	for rows.Next() {
		var item domain.CatalogItem
		dest := append(itemDest(&item), &total)
		if err := rows.Scan(dest...); err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list top-level products: %w", err)
	}

	if err := r.attachTranslations(ctx, items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *CatalogRepo) ListActiveVariantsByParentIDs(ctx context.Context, parentIDs []string) ([]domain.CatalogItem, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + `
		FROM products p
		WHERE p.active AND p.parent_id = ANY($1)
		ORDER BY p.parent_id, p.id`

	return r.list(ctx, "list variants", query, parentIDs)
}

func (r *CatalogRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.CatalogItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + productColumns + `
		FROM products p
		WHERE p.id = ANY($1)`

	return r.list(ctx, "get products by ids", query, ids)
}

func (r *CatalogRepo) GetByID(ctx context.Context, id string) (*domain.CatalogItem, error) {
	query := `SELECT ` + productColumns + `
		FROM products p
		WHERE p.id = $1`

	var item domain.CatalogItem
	if err := r.pool.QueryRow(ctx, query, id).Scan(itemDest(&item)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}

	items := []domain.CatalogItem{item}
	if err := r.attachTranslations(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (r *CatalogRepo) list(ctx context.Context, op, query string, args ...any) ([]domain.CatalogItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []domain.CatalogItem
	for rows.Next() {
		var item domain.CatalogItem
		if err := rows.Scan(itemDest(&item)...); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.attachTranslations(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// attachTranslations loads every translation of items in one query. Language
// and locale are left joined so broken references surface as nil.
func (r *CatalogRepo) attachTranslations(ctx context.Context, items []domain.CatalogItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, len(items))
	index := make(map[string]int, len(items))
	for i := range items {
		ids[i] = items[i].ID
		index[items[i].ID] = i
	}

	query := `SELECT pt.product_id, lang.id, loc.code, COALESCE(pt.name, '')
		FROM product_translations pt
		LEFT JOIN languages lang ON lang.id = pt.language_id
		LEFT JOIN locales loc ON loc.id = lang.locale_id
		WHERE pt.product_id = ANY($1)
		ORDER BY pt.product_id`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID, name string
		var languageID, code *string
		if err := rows.Scan(&productID, &languageID, &code, &name); err != nil {
			return fmt.Errorf("scan translation: %w", err)
		}

		t := domain.Translation{Name: name}
		if languageID != nil {
			t.Language = &domain.Language{}
			if code != nil {
				t.Language.Locale = &domain.Locale{Code: *code}
			}
		}

		if i, ok := index[productID]; ok {
			items[i].Translations = append(items[i].Translations, t)
		}
	}
	return rows.Err()
}

func itemDest(item *domain.CatalogItem) []any {
	return []any{
		&item.ID, &item.ParentID, &item.ChildCount, &item.Active, &item.Name, &item.SKU,
		&item.Price, &item.CoverImageURL, &item.UpdatedAt,
	}
}
