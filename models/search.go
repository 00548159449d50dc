package models

import "time"

// SearchQuery is one saved free-text search (tsuchanfrage). Hits is the
// result count of the latest run.
type SearchQuery struct {
	ID         int       `json:"id" gorm:"column:kSuchanfrage;primaryKey;autoIncrement"`
	LanguageID int       `json:"language_id" gorm:"column:kSprache;not null;uniqueIndex:idx_suchanfrage_term"`
	Term       string    `json:"term" gorm:"column:cSuche;not null;uniqueIndex:idx_suchanfrage_term"`
	Hits       int       `json:"hits" gorm:"column:nAnzahlTreffer;default:0"`
	Count      int       `json:"count" gorm:"column:nAnzahlGesuche;default:1"`
	LastSearch time.Time `json:"last_search" gorm:"column:dZuletztGesucht;autoUpdateTime"`
}

func (SearchQuery) TableName() string {
	return "tsuchanfrage"
}

// SearchCache is the materialized hit list of one search term and language.
// Expired entries are rebuilt on the next request for the term.
type SearchCache struct {
	ID         int       `json:"id" gorm:"column:kSuchCache;primaryKey;autoIncrement"`
	LanguageID int       `json:"language_id" gorm:"column:kSprache;not null;index:idx_suchcache_term"`
	Term       string    `json:"term" gorm:"column:cSuche;not null;index:idx_suchcache_term"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:dErstellt;autoCreateTime"`
}

func (SearchCache) TableName() string {
	return "tsuchcache"
}

// SearchCacheHit is one product matched by a cached search, ranked by match
// quality.
type SearchCacheHit struct {
	CacheID   int `json:"cache_id" gorm:"column:kSuchCache;primaryKey"`
	ProductID int `json:"product_id" gorm:"column:kArtikel;primaryKey"`
	Rank      int `json:"rank" gorm:"column:nSort;default:0"`
}

func (SearchCacheHit) TableName() string {
	return "tsuchcachetreffer"
}
