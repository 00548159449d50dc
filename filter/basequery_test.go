package filter

import (
	"reflect"
	"strings"
	"testing"
)

func TestChildProductCondition(t *testing.T) {
	tests := []struct {
		name       string
		mode       int
		queryMode  QueryMode
		hasFilters bool
		want       string
	}{
		{"parents only", ChildProductsParentsOnly, ModeListing, true, "tartikel.kVaterArtikel = 0"},
		{"when filtered, filtering", ChildProductsWhenFiltered, ModeFilter, true, "tartikel.nIstVater = 0"},
		{"when filtered, plain facet count", ChildProductsWhenFiltered, ModeFilter, false, "tartikel.kVaterArtikel = 0"},
		{"when filtered, listing", ChildProductsWhenFiltered, ModeListing, false, "tartikel.nIstVater = 0"},
		{"always", ChildProductsAlways, ModeFilter, false, "tartikel.nIstVater = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := DefaultContext()
			ctx.ChildProductMode = tt.mode
			qb := NewQueryBuilder(ctx, nil)
			if got := qb.childProductCondition(tt.queryMode, tt.hasFilters); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStockCondition(t *testing.T) {
	ctx := DefaultContext()
	qb := NewQueryBuilder(ctx, nil)
	if got := qb.stockCondition(); got != "" {
		t.Errorf("no stock filter should yield no condition, got %q", got)
	}

	ctx.StockFilterMode = StockFilterHideOutOfStock
	qb = NewQueryBuilder(ctx, nil)
	want := "(tartikel.fLagerbestand > 0 OR tartikel.cLagerBeachten = 'N')"
	if got := qb.stockCondition(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	ctx.StockFilterMode = StockFilterNegativeAware
	qb = NewQueryBuilder(ctx, nil)
	got := qb.stockCondition()
	for _, fragment := range []string{
		"tartikel.cLagerKleinerNull = 'Y'",
		"EXISTS (SELECT 1 FROM tartikel variante",
		"variante.kVaterArtikel = tartikel.kArtikel",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("negative-aware condition missing %q:\n%s", fragment, got)
		}
	}
}

func TestBaseQueryRendersFullListingSQL(t *testing.T) {
	ctx := DefaultContext() // customer group 1, visibility check on, no stock filter

	state := NewStateSQL()
	state.AddSelect(ProductKeyColumn)
	state.AddGroupBy(ProductKeyColumn)
	state.AddJoin(Join{
		Table: "tkategorieartikel",
		Type:  "JOIN",
		On:    "tkategorieartikel.kArtikel = tartikel.kArtikel",
	})
	state.AddCondition(&ParamCondition{Where: "tkategorieartikel.kKategorie = ?", Args: []any{5}})

	qb := NewQueryBuilder(ctx, nil)
	query, args := qb.BaseQuery(state, ModeListing, false)

	want := "SELECT tartikel.kArtikel\n" +
		"FROM tartikel\n" +
		"JOIN tkategorieartikel ON tkategorieartikel.kArtikel = tartikel.kArtikel\n" +
		"LEFT JOIN tartikelsichtbarkeit ON tartikelsichtbarkeit.kArtikel = tartikel.kArtikel AND tartikelsichtbarkeit.kKundengruppe = 1\n" +
		"WHERE tkategorieartikel.kKategorie = ?\n" +
		"	AND tartikelsichtbarkeit.kArtikel IS NULL\n" +
		"	AND tartikel.nIstVater = 0\n" +
		"GROUP BY tartikel.kArtikel\n" +
		"ORDER BY tartikel.nSort, tartikel.cName"
	if query != want {
		t.Errorf("unexpected SQL:\n%s\nwant:\n%s", query, want)
	}
	if !reflect.DeepEqual(args, []any{5}) {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBaseQuerySortFallbackAddsJoins(t *testing.T) {
	ctx := DefaultContext()
	ctx.VisibilityCheck = false
	sort := NewSort(ctx).Set(SortBestseller)

	state := NewStateSQL()
	qb := NewQueryBuilder(ctx, sort)
	query, _ := qb.BaseQuery(state, ModeListing, false)

	if !strings.Contains(query, "LEFT JOIN tbestseller ON tbestseller.kArtikel = tartikel.kArtikel") {
		t.Errorf("bestseller sort did not add its join:\n%s", query)
	}
	if !strings.Contains(query, "ORDER BY tbestseller.fAnzahl DESC") {
		t.Errorf("bestseller sort order missing:\n%s", query)
	}
}

func TestBaseQueryKeepsExplicitOrder(t *testing.T) {
	ctx := DefaultContext()
	ctx.VisibilityCheck = false

	state := NewStateSQL()
	state.OrderBy = "cnt DESC"
	qb := NewQueryBuilder(ctx, NewSort(ctx).Set(SortBestseller))
	query, _ := qb.BaseQuery(state, ModeFilter, false)

	if strings.Contains(query, "tbestseller") {
		t.Errorf("explicit order must suppress sort joins:\n%s", query)
	}
	if !strings.Contains(query, "ORDER BY cnt DESC") {
		t.Errorf("explicit order missing:\n%s", query)
	}
}
