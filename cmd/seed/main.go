package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo catalog: categories, manufacturers, characteristics and
// a few hundred products wired into all of them.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VELORA STOREFRONT - Demo Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	config.InitSettings()
	log.Println("✓ Connected to database")

	db := config.StoreGorm

	if err := db.AutoMigrate(
		&models.Category{}, &models.CategoryProduct{},
		&models.Manufacturer{},
		&models.Characteristic{}, &models.CharacteristicValue{}, &models.ProductCharacteristic{},
		&models.Product{}, &models.ProductExt{}, &models.ProductVisibility{}, &models.Bestseller{},
		&models.SeoEntry{},
		&models.SearchQuery{}, &models.SearchCache{}, &models.SearchCacheHit{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✓ Schema migrated")

	rng := rand.New(rand.NewSource(42))
	languageID := config.Settings.LanguageID

	// Categories: a two-level tree.
	parents := []string{"Shoes", "Clothing", "Accessories"}
	children := map[string][]string{
		"Shoes":       {"Sneakers", "Boots", "Sandals"},
		"Clothing":    {"Shirts", "Jackets"},
		"Accessories": {"Bags", "Belts"},
	}
	var leafIDs []int
	for i, name := range parents {
		parent := models.Category{Name: name, Sort: i}
		if err := db.Create(&parent).Error; err != nil {
			log.Fatalf("❌ Category seed failed: %v", err)
		}
		seedSlug(languageID, "kKategorie", parent.ID, name)
		for j, childName := range children[name] {
			child := models.Category{Name: childName, ParentID: parent.ID, Sort: j}
			if err := db.Create(&child).Error; err != nil {
				log.Fatalf("❌ Category seed failed: %v", err)
			}
			seedSlug(languageID, "kKategorie", child.ID, childName)
			leafIDs = append(leafIDs, child.ID)
		}
	}
	log.Printf("✓ Seeded %d categories", len(parents)+len(leafIDs))

	// Manufacturers.
	brands := []string{"Northwind", "Cloudstep", "Veldt & Co", "Arcline"}
	var brandIDs []int
	for i, name := range brands {
		brand := models.Manufacturer{Name: name, Sort: i}
		if err := db.Create(&brand).Error; err != nil {
			log.Fatalf("❌ Manufacturer seed failed: %v", err)
		}
		seedSlug(languageID, "kHersteller", brand.ID, name)
		brandIDs = append(brandIDs, brand.ID)
	}
	log.Printf("✓ Seeded %d manufacturers", len(brandIDs))

	// Characteristics with values.
	axes := []struct {
		name   string
		values []string
	}{
		{"Color", []string{"Black", "White", "Red", "Blue"}},
		{"Material", []string{"Leather", "Cotton", "Canvas"}},
	}
	var valueIDs []int
	for axisSort, axis := range axes {
		ch := models.Characteristic{Name: axis.name, Sort: axisSort}
		if err := db.Create(&ch).Error; err != nil {
			log.Fatalf("❌ Characteristic seed failed: %v", err)
		}
		for i, v := range axis.values {
			cv := models.CharacteristicValue{CharacteristicID: ch.ID, Value: v, Sort: i}
			if err := db.Create(&cv).Error; err != nil {
				log.Fatalf("❌ Characteristic value seed failed: %v", err)
			}
			seedSlug(languageID, "kMerkmalWert", cv.ID, v)
			valueIDs = append(valueIDs, cv.ID)
		}
	}
	log.Printf("✓ Seeded %d characteristic values", len(valueIDs))

	// Products. SKUs come from the BeforeCreate UUID hook.
	const productCount = 300
	for i := 0; i < productCount; i++ {
		price := 10 + rng.Float64()*240
		product := models.Product{
			Name:           fmt.Sprintf("%s %s %d", brands[i%len(brands)], parents[i%len(parents)], i+1),
			Description:    "Demo catalog product",
			Price:          float64(int(price*100)) / 100,
			Stock:          float64(rng.Intn(30)),
			TrackStock:     "Y",
			AllowBackorder: pick(rng, "N", "N", "Y"),
			ManufacturerID: brandIDs[rng.Intn(len(brandIDs))],
			IsTopProduct:   boolToInt(rng.Intn(10) == 0),
			Sort:           i,
			CreatedAt:      time.Now().AddDate(0, 0, -rng.Intn(120)),
		}
		if i%20 == 0 {
			product.RRP = product.Price * 1.25
		}
		if err := db.Create(&product).Error; err != nil {
			log.Fatalf("❌ Product seed failed: %v", err)
		}
		seedSlug(languageID, "kArtikel", product.ID, product.Name)

		db.Create(&models.CategoryProduct{
			CategoryID: leafIDs[rng.Intn(len(leafIDs))],
			ProductID:  product.ID,
		})
		db.Create(&models.ProductCharacteristic{
			ProductID:             product.ID,
			CharacteristicValueID: valueIDs[rng.Intn(len(valueIDs))],
		})
		db.Create(&models.ProductExt{
			ProductID: product.ID,
			Rating:    float64(rng.Intn(9)+2) / 2,
		})
		if rng.Intn(4) == 0 {
			db.Create(&models.Bestseller{ProductID: product.ID, Sold: float64(rng.Intn(200))})
		}
	}
	log.Printf("✓ Seeded %d products", productCount)

	fmt.Println()
	fmt.Println("✅ Demo catalog ready")
}

// seedSlug writes one tseo row, slugified from the display name.
func seedSlug(languageID int, keyName string, keyID int, name string) {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	slug = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, slug)
	entry := models.SeoEntry{
		Slug:       fmt.Sprintf("%s-%d", slug, keyID),
		KeyName:    keyName,
		KeyID:      keyID,
		LanguageID: languageID,
	}
	if err := config.StoreGorm.Create(&entry).Error; err != nil {
		log.Printf("⚠️ Slug seed for %s/%d failed: %v", keyName, keyID, err)
	}
}

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
