package filter

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// DataSource is the relational lookup seam the engine depends on. Production
// code uses the GORM-backed implementation below; tests substitute fakes.
type DataSource interface {
	// EntityExists reports whether a row with the given key exists.
	EntityExists(ctx context.Context, table, keyColumn string, id int) (bool, error)
	// EntityName returns the display name of an entity, "" when missing.
	EntityName(ctx context.Context, table, keyColumn, nameColumn string, id int) (string, error)
	// Slug resolves the SEO slug registered for an entity in a language.
	Slug(ctx context.Context, keyName string, id, languageID int) (string, error)
	// CharacteristicGroups maps characteristic-value ids to their group id
	// (kMerkmal) with a single IN-query against the attached value table.
	CharacteristicGroups(ctx context.Context, valueIDs []int) (map[int]int, error)
	// ProductKeys executes a compiled listing query and returns the ordered
	// product ids.
	ProductKeys(ctx context.Context, query string, args []any) ([]int, error)
	// OptionRows executes a facet-count query.
	OptionRows(ctx context.Context, query string, args []any) ([]OptionRow, error)
}

// GormDataSource implements DataSource on a *gorm.DB with raw SQL.
type GormDataSource struct {
	DB *gorm.DB
}

func NewGormDataSource(db *gorm.DB) *GormDataSource {
	return &GormDataSource{DB: db}
}

func (ds *GormDataSource) EntityExists(ctx context.Context, table, keyColumn string, id int) (bool, error) {
	var n int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", table, keyColumn)
	if err := ds.DB.WithContext(ctx).Raw(query, id).Scan(&n).Error; err != nil {
		return false, fmt.Errorf("entity lookup on %s failed: %w", table, err)
	}
	return n > 0, nil
}

func (ds *GormDataSource) EntityName(ctx context.Context, table, keyColumn, nameColumn string, id int) (string, error) {
	var name string
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", nameColumn, table, keyColumn)
	if err := ds.DB.WithContext(ctx).Raw(query, id).Scan(&name).Error; err != nil {
		return "", fmt.Errorf("name lookup on %s failed: %w", table, err)
	}
	return name, nil
}

func (ds *GormDataSource) Slug(ctx context.Context, keyName string, id, languageID int) (string, error) {
	var slug string
	query := `
		SELECT cSeo
		FROM tseo
		WHERE cKey = ? AND kKey = ? AND kSprache = ?
	`
	if err := ds.DB.WithContext(ctx).Raw(query, keyName, id, languageID).Scan(&slug).Error; err != nil {
		return "", fmt.Errorf("slug lookup for %s/%d failed: %w", keyName, id, err)
	}
	return slug, nil
}

func (ds *GormDataSource) CharacteristicGroups(ctx context.Context, valueIDs []int) (map[int]int, error) {
	if len(valueIDs) == 0 {
		return map[int]int{}, nil
	}

	query := fmt.Sprintf(`
		SELECT kMerkmalWert, kMerkmal
		FROM tmerkmalwert
		WHERE kMerkmalWert IN (%s)
	`, intPlaceholders(len(valueIDs)))

	var rows []struct {
		KMerkmalWert int `gorm:"column:kmerkmalwert"`
		KMerkmal     int `gorm:"column:kmerkmal"`
	}
	if err := ds.DB.WithContext(ctx).Raw(query, intArgs(valueIDs)...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("characteristic group lookup failed: %w", err)
	}

	groups := make(map[int]int, len(rows))
	for _, r := range rows {
		groups[r.KMerkmalWert] = r.KMerkmal
	}
	return groups, nil
}

func (ds *GormDataSource) ProductKeys(ctx context.Context, query string, args []any) ([]int, error) {
	var keys []int
	if err := ds.DB.WithContext(ctx).Raw(query, args...).Scan(&keys).Error; err != nil {
		return nil, fmt.Errorf("listing query failed: %w", err)
	}
	return keys, nil
}

func (ds *GormDataSource) OptionRows(ctx context.Context, query string, args []any) ([]OptionRow, error) {
	var rows []struct {
		ID    int    `gorm:"column:id"`
		Label string `gorm:"column:label"`
		Count int    `gorm:"column:cnt"`
	}
	if err := ds.DB.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("facet count query failed: %w", err)
	}
	out := make([]OptionRow, len(rows))
	for i, r := range rows {
		out[i] = OptionRow{ID: r.ID, Label: r.Label, Count: r.Count}
	}
	return out, nil
}
