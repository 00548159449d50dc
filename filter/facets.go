package filter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Facet-option queries. Each facet counts its selectable values against the
// current state with its own filter class left out, so selecting an option
// never hides the sibling options of the same facet.

// priceRangeSteps are the fixed net-price brackets offered as options.
var priceRangeSteps = []struct {
	min, max float64
	value    string
}{
	{0, 50, "0_50"},
	{50, 100, "50_100"},
	{100, 250, "100_250"},
	{250, 0, "250_"},
}

// facetRows compiles one facet-count query and runs it. The explicit order
// keeps the sort fallback and its joins out of count queries.
func (pf *ProductFilter) facetRows(ctx context.Context, ignore Kind, sel, groupBy []string, orderBy string, joins ...Join) ([]OptionRow, error) {
	state := pf.CurrentStateData(ignore)
	state.Select = sel
	state.GroupBy = groupBy
	state.OrderBy = orderBy
	state.AddJoin(joins...)

	qb := NewQueryBuilder(pf.ctx, pf.sort)
	query, args := qb.BaseQuery(state, ModeFilter, pf.HasActiveFilters())
	return pf.ds.OptionRows(ctx, query, args)
}

// CategoryOptions counts the matching products per category of the current
// state.
func (pf *ProductFilter) CategoryOptions(ctx context.Context) ([]Option, error) {
	rows, err := pf.facetRows(ctx, KindCategory,
		[]string{
			"tkategorie.kKategorie AS id",
			"tkategorie.cName AS label",
			"COUNT(DISTINCT tartikel.kArtikel) AS cnt",
		},
		[]string{"tkategorie.kKategorie", "tkategorie.cName"},
		"tkategorie.cName",
		Join{
			Table:  "tkategorieartikel",
			Type:   "JOIN",
			On:     "tkategorieartikel.kArtikel = tartikel.kArtikel",
			Origin: "facet:category",
		},
		Join{
			Table:  "tkategorie",
			Type:   "JOIN",
			On:     "tkategorie.kKategorie = tkategorieartikel.kKategorie",
			Origin: "facet:category",
		},
	)
	if err != nil {
		return nil, err
	}
	return pf.rowsToOptions(rows, KindCategory, "kKategorieFilter"), nil
}

// ManufacturerOptions counts the matching products per manufacturer.
func (pf *ProductFilter) ManufacturerOptions(ctx context.Context) ([]Option, error) {
	rows, err := pf.facetRows(ctx, KindManufacturer,
		[]string{
			"thersteller.kHersteller AS id",
			"thersteller.cName AS label",
			"COUNT(DISTINCT tartikel.kArtikel) AS cnt",
		},
		[]string{"thersteller.kHersteller", "thersteller.cName"},
		"thersteller.cName",
		Join{
			Table:  "thersteller",
			Type:   "JOIN",
			On:     "thersteller.kHersteller = tartikel.kHersteller",
			Origin: "facet:manufacturer",
		},
	)
	if err != nil {
		return nil, err
	}
	return pf.rowsToOptions(rows, KindManufacturer, "kHerstellerFilter"), nil
}

// CharacteristicOptions counts the matching products per characteristic
// value, ordered by characteristic and value sort.
func (pf *ProductFilter) CharacteristicOptions(ctx context.Context) ([]Option, error) {
	rows, err := pf.facetRows(ctx, KindCharacteristic,
		[]string{
			"tmerkmalwert.kMerkmalWert AS id",
			"tmerkmalwert.cWert AS label",
			"COUNT(DISTINCT tartikel.kArtikel) AS cnt",
		},
		[]string{"tmerkmalwert.kMerkmalWert", "tmerkmalwert.cWert", "tmerkmal.nSort", "tmerkmalwert.nSort"},
		"tmerkmal.nSort, tmerkmalwert.nSort",
		Join{
			Table:  "tartikelmerkmal",
			Type:   "JOIN",
			On:     "tartikelmerkmal.kArtikel = tartikel.kArtikel",
			Origin: "facet:characteristic",
		},
		Join{
			Table:  "tmerkmalwert",
			Type:   "JOIN",
			On:     "tmerkmalwert.kMerkmalWert = tartikelmerkmal.kMerkmalWert",
			Origin: "facet:characteristic",
		},
		Join{
			Table:  "tmerkmal",
			Type:   "JOIN",
			On:     "tmerkmal.kMerkmal = tmerkmalwert.kMerkmal",
			Origin: "facet:characteristic",
		},
	)
	if err != nil {
		return nil, err
	}
	return pf.rowsToOptions(rows, KindCharacteristic, "MerkmalFilter_arr"), nil
}

// RatingOptions counts products per minimum star rating. Counts accumulate
// downwards: the "3 stars and up" option includes the 4- and 5-star products.
func (pf *ProductFilter) RatingOptions(ctx context.Context) ([]Option, error) {
	rows, err := pf.facetRows(ctx, KindRating,
		[]string{
			"FLOOR(tartikelext.fDurchschnittsBewertung) AS id",
			"'' AS label",
			"COUNT(DISTINCT tartikel.kArtikel) AS cnt",
		},
		[]string{"FLOOR(tartikelext.fDurchschnittsBewertung)"},
		"id DESC",
		Join{
			Table:  "tartikelext",
			Type:   "JOIN",
			On:     "tartikelext.kArtikel = tartikel.kArtikel",
			Origin: "facet:rating",
		},
	)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int, 5)
	for _, r := range rows {
		counts[r.ID] = r.Count
	}
	active := pf.activeOfKind(KindRating)

	opts := make([]Option, 0, 5)
	cumulative := 0
	for stars := 5; stars >= 1; stars-- {
		cumulative += counts[stars]
		if cumulative == 0 {
			continue
		}
		value := strconv.Itoa(stars)
		opts = append(opts, Option{
			Label:  fmt.Sprintf("%d stars & up", stars),
			URL:    pf.optionURL("nBewertungSterneFilter", value),
			Value:  value,
			Count:  cumulative,
			Sort:   5 - stars,
			Active: active != nil && active.Value().Int == stars,
			Kind:   KindRating,
		})
	}
	return opts, nil
}

// SearchSpecialOptions counts the matching products per search special. Each
// special needs its own pass, the conditions share no table.
func (pf *ProductFilter) SearchSpecialOptions(ctx context.Context) ([]Option, error) {
	active := pf.activeOfKind(KindSearchSpecial)
	activeIDs := map[int]bool{}
	if active != nil {
		for _, id := range active.Value().Ints() {
			activeIDs[id] = true
		}
	}

	var opts []Option
	for _, id := range []int{SpecialBestseller, SpecialSpecialOffers, SpecialNewProducts, SpecialTopOffers, SpecialUpcoming} {
		state := pf.CurrentStateData(KindSearchSpecial)
		state.Select = []string{
			fmt.Sprintf("%d AS id", id),
			"'' AS label",
			"COUNT(DISTINCT tartikel.kArtikel) AS cnt",
		}
		state.GroupBy = nil
		state.OrderBy = "id"
		state.AddCondition(specialCondition(id))

		qb := NewQueryBuilder(pf.ctx, pf.sort)
		query, args := qb.BaseQuery(state, ModeFilter, pf.HasActiveFilters())
		rows, err := pf.ds.OptionRows(ctx, query, args)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 || rows[0].Count == 0 {
			continue
		}
		value := strconv.Itoa(id)
		opts = append(opts, Option{
			Label:  specialNames[id],
			URL:    pf.optionURL("kSuchspecialFilter", value),
			Value:  value,
			Count:  rows[0].Count,
			Sort:   id,
			Active: activeIDs[id],
			Kind:   KindSearchSpecial,
		})
	}
	return opts, nil
}

// PriceRangeOptions counts the matching products per fixed price bracket.
func (pf *ProductFilter) PriceRangeOptions(ctx context.Context) ([]Option, error) {
	active := pf.activeOfKind(KindPriceRange)

	var opts []Option
	for i, step := range priceRangeSteps {
		state := pf.CurrentStateData(KindPriceRange)
		state.Select = []string{
			fmt.Sprintf("%d AS id", i),
			"'' AS label",
			"COUNT(DISTINCT tartikel.kArtikel) AS cnt",
		}
		state.GroupBy = nil
		state.OrderBy = "id"
		if step.max > 0 {
			state.AddCondition(&ParamCondition{
				Where: "(tartikel.fVKNetto >= ? AND tartikel.fVKNetto < ?)",
				Args:  []any{step.min, step.max},
			})
		} else {
			state.AddCondition(&ParamCondition{
				Where: "tartikel.fVKNetto >= ?",
				Args:  []any{step.min},
			})
		}

		qb := NewQueryBuilder(pf.ctx, pf.sort)
		query, args := qb.BaseQuery(state, ModeFilter, pf.HasActiveFilters())
		rows, err := pf.ds.OptionRows(ctx, query, args)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 || rows[0].Count == 0 {
			continue
		}

		label := fmt.Sprintf("%.0f – %.0f", step.min, step.max)
		if step.max == 0 {
			label = fmt.Sprintf("from %.0f", step.min)
		}
		opts = append(opts, Option{
			Label:  label,
			URL:    pf.optionURL("cPreisspannenFilter", step.value),
			Value:  step.value,
			Count:  rows[0].Count,
			Sort:   i,
			Active: active != nil && active.Value().Str == step.value,
			Kind:   KindPriceRange,
		})
	}
	return opts, nil
}

// ActiveSelections expands every active filter into its selected options, in
// activation order. The facet endpoint renders these as removable chips.
func (pf *ProductFilter) ActiveSelections() []Option {
	var opts []Option
	for _, f := range pf.active {
		opts = append(opts, f.ActiveOptions()...)
	}
	return opts
}

// rowsToOptions converts facet-count rows into display options, marking the
// currently selected values.
func (pf *ProductFilter) rowsToOptions(rows []OptionRow, kind Kind, param string) []Option {
	activeIDs := map[int]bool{}
	for _, f := range pf.active {
		if f.Kind() != kind {
			continue
		}
		for _, id := range f.Value().Ints() {
			activeIDs[id] = true
		}
	}

	opts := make([]Option, 0, len(rows))
	for i, r := range rows {
		value := strconv.Itoa(r.ID)
		opts = append(opts, Option{
			Label:  r.Label,
			URL:    pf.optionURL(param, value),
			Value:  value,
			Count:  r.Count,
			Sort:   i,
			Active: activeIDs[r.ID],
			Kind:   kind,
		})
	}
	return opts
}

// optionURL renders the link selecting one facet option on top of the
// current base state.
func (pf *ProductFilter) optionURL(param, value string) string {
	q := url.Values{}
	if bs := pf.baseState; bs != nil && bs.URLParam() != "" && bs.IsInitialized() {
		q.Set(bs.URLParam(), strconv.Itoa(bs.Value().Int))
	}
	q.Set(param, value)
	return pf.ctx.BaseURL + "?" + q.Encode()
}
