package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/jackc/pgx/v5"
)

// ProductFillService hydrates listing product ids into display-ready
// products. It runs on the pgx pool; one page of a listing fires a handful
// of these lookups.
type ProductFillService struct {
	languageID int
}

func NewProductFillService(languageID int) *ProductFillService {
	return &ProductFillService{languageID: languageID}
}

// FillProduct loads one product with its rating, manufacturer and slug. A
// nil product with a nil error means the row vanished since the listing
// query ran; the caller drops it from the page.
func (s *ProductFillService) FillProduct(ctx context.Context, productID int) (*models.StorefrontProduct, error) {
	row := config.StoreDB.QueryRow(ctx, `
		SELECT
			a.kArtikel,
			a.cArtNr,
			a.cName,
			a.cBeschreibung,
			a.fVKNetto,
			a.fUVP,
			a.fLagerbestand,
			a.cLagerBeachten,
			a.cMedia,
			a.dErscheinungsdatum,
			COALESCE(ext.fDurchschnittsBewertung, 0),
			COALESCE(h.cName, ''),
			COALESCE(seo.cSeo, '')
		FROM tartikel a
		LEFT JOIN tartikelext ext ON ext.kArtikel = a.kArtikel
		LEFT JOIN thersteller h ON h.kHersteller = a.kHersteller
		LEFT JOIN tseo seo ON seo.cKey = 'kArtikel' AND seo.kKey = a.kArtikel AND seo.kSprache = $2
		WHERE a.kArtikel = $1
	`, productID, s.languageID)

	var (
		p          models.StorefrontProduct
		stock      float64
		trackStock string
		media      []byte
	)
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description,
		&p.Price, &p.RRP, &stock, &trackStock,
		&media, &p.ReleaseDate,
		&p.Rating, &p.Manufacturer, &p.Slug,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("product %d hydration failed: %w", productID, err)
	}

	p.InStock = stock > 0 || trackStock == "N"
	p.OnSale = p.RRP > 0 && p.Price < p.RRP
	if len(media) > 0 && string(media) != "[]" {
		p.Media = json.RawMessage(media)
	}
	return &p, nil
}
