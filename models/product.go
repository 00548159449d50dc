package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is one catalog row. Variant children reference their parent via
// ParentID; a parent shell carries IsParent = 1 and never sells directly.
type Product struct {
	ID             int            `json:"id" gorm:"column:kArtikel;primaryKey;autoIncrement"`
	SKU            uuid.UUID      `json:"sku" gorm:"column:cArtNr;type:uuid;uniqueIndex"`
	Name           string         `json:"name" gorm:"column:cName;not null;index"`
	Description    string         `json:"description" gorm:"column:cBeschreibung"`
	Price          float64        `json:"price" gorm:"column:fVKNetto;type:numeric(12,2);not null;check:\"fVKNetto\" >= 0"`
	RRP            float64        `json:"rrp" gorm:"column:fUVP;type:numeric(12,2);default:0"`
	Stock          float64        `json:"stock" gorm:"column:fLagerbestand;default:0"`
	TrackStock     string         `json:"track_stock" gorm:"column:cLagerBeachten;type:char(1);default:'Y'"`
	AllowBackorder string         `json:"allow_backorder" gorm:"column:cLagerKleinerNull;type:char(1);default:'N'"`
	ManufacturerID int            `json:"manufacturer_id" gorm:"column:kHersteller;index"`
	ParentID       int            `json:"parent_id" gorm:"column:kVaterArtikel;index;default:0"`
	IsParent       int            `json:"is_parent" gorm:"column:nIstVater;default:0"`
	IsTopProduct   int            `json:"is_top_product" gorm:"column:nIstTopArtikel;default:0"`
	Sort           int            `json:"sort" gorm:"column:nSort;default:0"`
	Media          datatypes.JSON `json:"media" gorm:"column:cMedia;type:jsonb;default:'[]'"`
	CreatedAt      time.Time      `json:"created_at" gorm:"column:dErstellt;autoCreateTime"`
	ReleaseDate    *time.Time     `json:"release_date,omitempty" gorm:"column:dErscheinungsdatum"`
}

// BeforeCreate hook - auto-generate a UUID v7 SKU
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.SKU == uuid.Nil {
		p.SKU = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "tartikel"
}

// ProductExt holds the computed extras of a product, maintained out of band
// (review aggregation, import runs).
type ProductExt struct {
	ProductID int     `json:"product_id" gorm:"column:kArtikel;primaryKey"`
	Rating    float64 `json:"rating" gorm:"column:fDurchschnittsBewertung;default:0"`
}

func (ProductExt) TableName() string {
	return "tartikelext"
}

// ProductVisibility hides a product from one customer group. Listings join
// it LEFT and keep rows without a match.
type ProductVisibility struct {
	ProductID       int `json:"product_id" gorm:"column:kArtikel;primaryKey"`
	CustomerGroupID int `json:"customer_group_id" gorm:"column:kKundengruppe;primaryKey"`
}

func (ProductVisibility) TableName() string {
	return "tartikelsichtbarkeit"
}

// Bestseller is the rolling sales count feeding the bestseller special and
// the bestseller sort order.
type Bestseller struct {
	ProductID int     `json:"product_id" gorm:"column:kArtikel;primaryKey"`
	Sold      float64 `json:"sold" gorm:"column:fAnzahl;default:0"`
}

func (Bestseller) TableName() string {
	return "tbestseller"
}
