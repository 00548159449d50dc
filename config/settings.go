// ════════════════════════════════════════════════════════════
// Path: config/settings.go
// Storefront listing settings
// ════════════════════════════════════════════════════════════

package config

import (
	"log"
	"os"
	"strconv"
)

// StoreSettings are the shop-wide knobs of the listing engine, loaded once
// from the environment at startup.
type StoreSettings struct {
	// CustomerGroupID is the group anonymous visitors browse as.
	CustomerGroupID int
	// LanguageID selects the tseo slug language.
	LanguageID int
	// BaseURL prefixes every generated storefront link.
	BaseURL string
	// ChildProductMode: 0 parents only, 1 variants while filtering, 2 always
	// variants.
	ChildProductMode int
	// StockFilterMode: 0 show everything, 1 hide out of stock, 2 respect
	// backorder flags.
	StockFilterMode int
	// VisibilityCheck toggles the per-customer-group visibility join.
	VisibilityCheck bool
	// PageSize is the default nArtikelProSeite.
	PageSize int
}

var Settings StoreSettings

// InitSettings loads the listing settings. Every knob has a working default,
// so a bare .env still boots.
func InitSettings() {
	Settings = StoreSettings{
		CustomerGroupID:  getEnvInt("STORE_CUSTOMER_GROUP", 1),
		LanguageID:       getEnvInt("STORE_LANGUAGE", 1),
		BaseURL:          getEnv("STORE_BASE_URL", "http://localhost:3001/"),
		ChildProductMode: getEnvInt("STORE_CHILD_PRODUCTS", 1),
		StockFilterMode:  getEnvInt("STORE_STOCK_FILTER", 2),
		VisibilityCheck:  getEnv("STORE_VISIBILITY_CHECK", "true") != "false",
		PageSize:         getEnvInt("STORE_PAGE_SIZE", 20),
	}
	log.Printf("✅ Store settings loaded (group=%d, language=%d, page size=%d)",
		Settings.CustomerGroupID, Settings.LanguageID, Settings.PageSize)
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️ %s is not a number (%q), using %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}
