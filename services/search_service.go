package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/filter"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	// minSearchLength is the shortest accepted search term.
	minSearchLength = 3
	// maxSearchLength caps pathological input before it reaches the cache
	// tables.
	maxSearchLength = 64
	// cacheLifetime is how long a materialized hit list stays valid.
	cacheLifetime = time.Hour
)

// SearchService finds or builds search-cache entries for free-text searches.
// Cache ids are memoized in Redis so repeated searches for a hot term skip
// the database entirely.
type SearchService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewSearchService() *SearchService {
	return &SearchService{db: config.StoreGorm, rdb: config.RedisClient}
}

// sanitizeTerm collapses whitespace and strips quoting characters from a raw
// search term.
func sanitizeTerm(term string) string {
	term = strings.Join(strings.Fields(term), " ")
	term = strings.NewReplacer("'", "", `"`, "", "\\", "", "\x00", "", "%", "", "_", " ").Replace(term)
	term = strings.TrimSpace(term)
	if len(term) > maxSearchLength {
		term = term[:maxSearchLength]
	}
	return strings.ToLower(term)
}

func (s *SearchService) memoKey(term string, languageID int) string {
	return fmt.Sprintf("search:cache:%d:%s", languageID, term)
}

// EnsureCache resolves a raw term into a live search-cache entry, building
// the hit list when no valid cache row exists.
func (s *SearchService) EnsureCache(ctx context.Context, term string, languageID int) (filter.SearchEntry, error) {
	raw := term
	term = sanitizeTerm(term)
	if len(term) < minSearchLength {
		return filter.SearchEntry{
			Term: raw,
			Err:  fmt.Sprintf("search term must have at least %d characters", minSearchLength),
		}, nil
	}

	queryID, err := s.upsertQuery(ctx, term, languageID)
	if err != nil {
		return filter.SearchEntry{}, err
	}

	// Hot path: cache id memoized in Redis.
	if s.rdb != nil {
		if memo, err := s.rdb.Get(ctx, s.memoKey(term, languageID)).Result(); err == nil {
			if cacheID, err := strconv.Atoi(memo); err == nil && cacheID > 0 {
				return filter.SearchEntry{QueryID: queryID, CacheID: cacheID, Term: term}, nil
			}
		}
	}

	cacheID, err := s.liveCacheID(ctx, term, languageID)
	if err != nil {
		return filter.SearchEntry{}, err
	}
	if cacheID == 0 {
		if cacheID, err = s.buildCache(ctx, term, languageID); err != nil {
			return filter.SearchEntry{}, err
		}
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, s.memoKey(term, languageID), cacheID, cacheLifetime).Err(); err != nil {
			log.Printf("[search] failed to memoize cache id for %q: %v", term, err)
		}
	}
	return filter.SearchEntry{QueryID: queryID, CacheID: cacheID, Term: term}, nil
}

// LoadSaved resolves a saved query id back into a live cache entry,
// rebuilding the hit list when the cache has expired since the query was
// saved.
func (s *SearchService) LoadSaved(ctx context.Context, queryID int, languageID int) (filter.SearchEntry, error) {
	var term string
	err := s.db.WithContext(ctx).
		Raw("SELECT cSuche FROM tsuchanfrage WHERE kSuchanfrage = ? AND kSprache = ?", queryID, languageID).
		Scan(&term).Error
	if err != nil {
		return filter.SearchEntry{}, fmt.Errorf("saved query %d lookup failed: %w", queryID, err)
	}
	if term == "" {
		return filter.SearchEntry{Err: "unknown search query"}, nil
	}

	entry, err := s.EnsureCache(ctx, term, languageID)
	if err != nil {
		return filter.SearchEntry{}, err
	}
	entry.QueryID = queryID
	return entry, nil
}

// RecordHitCount persists the result count on the saved query row.
func (s *SearchService) RecordHitCount(ctx context.Context, queryID, hits int) error {
	err := s.db.WithContext(ctx).
		Exec("UPDATE tsuchanfrage SET nAnzahlTreffer = ? WHERE kSuchanfrage = ?", hits, queryID).Error
	if err != nil {
		log.Printf("[search] failed to record hit count for query %d: %v", queryID, err)
	}
	return err
}

// upsertQuery finds or creates the tsuchanfrage row of a term, bumping its
// search counter.
func (s *SearchService) upsertQuery(ctx context.Context, term string, languageID int) (int, error) {
	var queryID int
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO tsuchanfrage (kSprache, cSuche, nAnzahlGesuche, dZuletztGesucht)
		VALUES (?, ?, 1, NOW())
		ON CONFLICT (kSprache, cSuche)
		DO UPDATE SET nAnzahlGesuche = tsuchanfrage.nAnzahlGesuche + 1, dZuletztGesucht = NOW()
		RETURNING kSuchanfrage
	`, languageID, term).Scan(&queryID).Error
	if err != nil {
		return 0, fmt.Errorf("search query upsert for %q failed: %w", term, err)
	}
	return queryID, nil
}

// liveCacheID returns the id of a non-expired cache entry, 0 when absent.
func (s *SearchService) liveCacheID(ctx context.Context, term string, languageID int) (int, error) {
	var cacheID int
	err := s.db.WithContext(ctx).Raw(`
		SELECT kSuchCache
		FROM tsuchcache
		WHERE kSprache = ? AND cSuche = ? AND dErstellt > NOW() - INTERVAL '1 hour'
		ORDER BY kSuchCache DESC
		LIMIT 1
	`, languageID, term).Scan(&cacheID).Error
	if err != nil {
		return 0, fmt.Errorf("search cache lookup for %q failed: %w", term, err)
	}
	return cacheID, nil
}

// buildCache materializes the hit list of a term: one tsuchcache row plus
// one tsuchcachetreffer row per matching product. The hot path runs on the
// pgx pool inside a transaction so a half-built cache never becomes visible.
func (s *SearchService) buildCache(ctx context.Context, term string, languageID int) (int, error) {
	tx, err := config.StoreDB.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("search cache build for %q failed: %w", term, err)
	}
	defer tx.Rollback(ctx)

	var cacheID int
	err = tx.QueryRow(ctx, `
		INSERT INTO tsuchcache (kSprache, cSuche, dErstellt)
		VALUES ($1, $2, NOW())
		RETURNING kSuchCache
	`, languageID, term).Scan(&cacheID)
	if err != nil {
		return 0, fmt.Errorf("search cache insert for %q failed: %w", term, err)
	}

	// Name matches rank above description matches.
	pattern := "%" + term + "%"
	_, err = tx.Exec(ctx, `
		INSERT INTO tsuchcachetreffer (kSuchCache, kArtikel, nSort)
		SELECT $1, kArtikel,
			CASE WHEN cName ILIKE $2 THEN 1 ELSE 10 END
		FROM tartikel
		WHERE cName ILIKE $2 OR cBeschreibung ILIKE $2
	`, cacheID, pattern)
	if err != nil {
		return 0, fmt.Errorf("search hit insert for %q failed: %w", term, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("search cache build for %q failed: %w", term, err)
	}

	log.Printf("[search] built cache %d for %q (language %d)", cacheID, term, languageID)
	return cacheID, nil
}
