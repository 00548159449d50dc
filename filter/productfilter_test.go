package filter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
)

// ── Fakes ───────────────────────────────────────────────────────────────────

type fakeDataSource struct {
	entities map[string]map[int]string // table -> id -> name
	slugs    map[string]string         // "keyName/id" -> slug
	groups   map[int]int               // characteristic value -> group
	keys     []int
	queries  []string
	argsLog  [][]any
	rows     []OptionRow
}

func (f *fakeDataSource) EntityExists(_ context.Context, table, _ string, id int) (bool, error) {
	_, ok := f.entities[table][id]
	return ok, nil
}

func (f *fakeDataSource) EntityName(_ context.Context, table, _, _ string, id int) (string, error) {
	return f.entities[table][id], nil
}

func (f *fakeDataSource) Slug(_ context.Context, keyName string, id, _ int) (string, error) {
	return f.slugs[fmt.Sprintf("%s/%d", keyName, id)], nil
}

func (f *fakeDataSource) CharacteristicGroups(_ context.Context, valueIDs []int) (map[int]int, error) {
	out := make(map[int]int)
	for _, id := range valueIDs {
		if g, ok := f.groups[id]; ok {
			out[id] = g
		}
	}
	return out, nil
}

func (f *fakeDataSource) ProductKeys(_ context.Context, query string, args []any) ([]int, error) {
	f.queries = append(f.queries, query)
	f.argsLog = append(f.argsLog, args)
	return f.keys, nil
}

func (f *fakeDataSource) OptionRows(_ context.Context, query string, args []any) ([]OptionRow, error) {
	f.queries = append(f.queries, query)
	f.argsLog = append(f.argsLog, args)
	return f.rows, nil
}

type fakeSearch struct {
	entries map[string]SearchEntry
	saved   map[int]SearchEntry
	hits    map[int]int
}

func (f *fakeSearch) EnsureCache(_ context.Context, term string, _ int) (SearchEntry, error) {
	if e, ok := f.entries[term]; ok {
		return e, nil
	}
	return SearchEntry{Term: term, Err: "search term must have at least 3 characters"}, nil
}

func (f *fakeSearch) LoadSaved(_ context.Context, queryID int, _ int) (SearchEntry, error) {
	return f.saved[queryID], nil
}

func (f *fakeSearch) RecordHitCount(_ context.Context, queryID, hits int) error {
	if f.hits == nil {
		f.hits = make(map[int]int)
	}
	f.hits[queryID] = hits
	return nil
}

type fakeHydrator struct {
	hidden map[int]bool
}

func (f *fakeHydrator) FillProduct(_ context.Context, productID int) (*models.StorefrontProduct, error) {
	if f.hidden[productID] {
		return nil, nil
	}
	return &models.StorefrontProduct{ID: productID, Name: fmt.Sprintf("Product %d", productID)}, nil
}

func testEngine(ds *fakeDataSource, search *fakeSearch) *ProductFilter {
	fctx := DefaultContext()
	fctx.VisibilityCheck = false
	if search == nil {
		search = &fakeSearch{}
	}
	return NewProductFilter(fctx, ds, search, &fakeHydrator{})
}

func parseQuery(t *testing.T, rawQuery string) url.Values {
	t.Helper()
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		t.Fatalf("bad query %q: %v", rawQuery, err)
	}
	return q
}

func mustInit(t *testing.T, pf *ProductFilter, rawQuery string, validate bool) ValidationOutcome {
	t.Helper()
	params := ParseParams(parseQuery(t, rawQuery))
	outcome, err := pf.InitStates(context.Background(), params, validate)
	if err != nil {
		t.Fatalf("InitStates(%q) failed: %v", rawQuery, err)
	}
	return outcome
}

// ── Tests ───────────────────────────────────────────────────────────────────

func TestCategoryPageWithCharacteristicValues(t *testing.T) {
	ds := &fakeDataSource{
		entities: map[string]map[int]string{"tkategorie": {5: "Sneakers"}},
		groups:   map[int]int{12: 3, 13: 3},
		keys:     []int{101, 102},
	}
	pf := testEngine(ds, nil)
	mustInit(t, pf, "kKategorie=5&MerkmalFilter_arr=12&MerkmalFilter_arr=13", false)

	if pf.IsNotFound() {
		t.Fatal("existing category reported as not found")
	}
	if len(pf.ActiveFilters()) != 2 {
		t.Fatalf("expected 2 active characteristic filters, got %d", len(pf.ActiveFilters()))
	}

	query, args := pf.ListingQuery()

	want := "SELECT tartikel.kArtikel\n" +
		"FROM tartikel\n" +
		"JOIN tkategorieartikel ON tkategorieartikel.kArtikel = tartikel.kArtikel\n" +
		"WHERE tkategorieartikel.kKategorie = ?\n" +
		"	AND tartikel.kArtikel IN (SELECT kArtikel FROM tartikelmerkmal WHERE kMerkmalWert IN (12, 13))\n" +
		"	AND tartikel.nIstVater = 0\n" +
		"GROUP BY tartikel.kArtikel\n" +
		"ORDER BY tartikel.nSort, tartikel.cName"
	if query != want {
		t.Errorf("unexpected SQL:\n%s\nwant:\n%s", query, want)
	}
	if len(args) != 1 || args[0] != 5 {
		t.Errorf("unexpected args: %v", args)
	}

	// Compilation is idempotent: a second pass yields the identical query.
	again, againArgs := pf.ListingQuery()
	if again != query || len(againArgs) != len(args) {
		t.Errorf("second compilation differs:\n%s", again)
	}
}

func TestCharacteristicGroupsCompileSeparately(t *testing.T) {
	ds := &fakeDataSource{
		groups: map[int]int{12: 3, 13: 7},
	}
	pf := testEngine(ds, nil)
	mustInit(t, pf, "MerkmalFilter_arr=12,13", false)

	query, _ := pf.ListingQuery()

	// Values from different characteristic groups AND together, each through
	// its own sub-select.
	first := "tartikel.kArtikel IN (SELECT kArtikel FROM tartikelmerkmal WHERE kMerkmalWert IN (12))"
	second := "tartikel.kArtikel IN (SELECT kArtikel FROM tartikelmerkmal WHERE kMerkmalWert IN (13))"
	if !strings.Contains(query, first) || !strings.Contains(query, second) {
		t.Errorf("expected two per-group sub-selects:\n%s", query)
	}
	if strings.Index(query, first) > strings.Index(query, second) {
		t.Errorf("sub-selects out of activation order:\n%s", query)
	}
}

func TestUnknownCharacteristicValuesAreDropped(t *testing.T) {
	ds := &fakeDataSource{groups: map[int]int{12: 3}}
	pf := testEngine(ds, nil)
	mustInit(t, pf, "MerkmalFilter_arr=12&MerkmalFilter_arr=999", false)

	if len(pf.ActiveFilters()) != 1 {
		t.Fatalf("unknown value id must be dropped, got %d filters", len(pf.ActiveFilters()))
	}
}

func TestDuplicateSearchFiltersCollapse(t *testing.T) {
	ds := &fakeDataSource{}
	pf := testEngine(ds, nil)
	mustInit(t, pf, "SuchFilter_arr=4&SuchFilter_arr=4&SuchFilter_arr=7", false)

	query, _ := pf.ListingQuery()
	want := "tartikel.kArtikel IN (SELECT kArtikel FROM tsuchcachetreffer WHERE kSuchCache IN (4, 7))"
	if !strings.Contains(query, want) {
		t.Errorf("expected collapsed search sub-select:\n%s", query)
	}
	if strings.Count(query, "tsuchcachetreffer") != 1 {
		t.Errorf("search table referenced more than once:\n%s", query)
	}
}

func TestUnknownCategoryIsNotFound(t *testing.T) {
	ds := &fakeDataSource{entities: map[string]map[int]string{"tkategorie": {}}}
	pf := testEngine(ds, nil)
	mustInit(t, pf, "kKategorie=99", false)

	if !pf.IsNotFound() {
		t.Fatal("missing category must mark the request as not found")
	}
}

func TestBaseStatePriorityOrder(t *testing.T) {
	ds := &fakeDataSource{
		entities: map[string]map[int]string{
			"tkategorie":  {5: "Sneakers"},
			"thersteller": {7: "Cloudstep"},
		},
	}
	pf := testEngine(ds, nil)
	mustInit(t, pf, "kKategorie=5&kHersteller=7", false)

	if pf.BaseState().Kind() != KindBaseCategory {
		t.Fatalf("category must win over manufacturer, got %s", pf.BaseState().Kind())
	}
}

func TestSearchBecomesBaseStateOnPlainListing(t *testing.T) {
	ds := &fakeDataSource{keys: []int{1, 2, 3, 4, 5}}
	search := &fakeSearch{
		entries: map[string]SearchEntry{
			"red shoes": {QueryID: 9, CacheID: 4, Term: "red shoes"},
		},
	}
	pf := testEngine(ds, search)
	mustInit(t, pf, "cSuche=red+shoes", false)

	if pf.BaseState().Kind() != KindBaseSearchQuery {
		t.Fatalf("expected search query base state, got %s", pf.BaseState().Kind())
	}
	if !pf.HasSearch() {
		t.Fatal("resolved search not reported")
	}
	if pf.activeOfKind(KindSearch) == nil {
		t.Fatal("search filter not activated alongside the base state")
	}

	query, args := pf.ListingQuery()
	if strings.Count(query, "tsuchcachetreffer.kSuchCache") != 1 {
		t.Errorf("base-state and filter conditions did not collapse:\n%s", query)
	}
	if !strings.Contains(query, "JOIN tsuchcachetreffer ON tsuchcachetreffer.kArtikel = tartikel.kArtikel") {
		t.Errorf("search join missing:\n%s", query)
	}
	if !strings.Contains(query, "tsuchcachetreffer.kSuchCache = ?") || len(args) != 1 || args[0] != 4 {
		t.Errorf("search condition missing or wrong args %v:\n%s", args, query)
	}

	results, err := pf.SearchResults(context.Background(), false)
	if err != nil {
		t.Fatalf("SearchResults failed: %v", err)
	}
	if results.ProductCount != 5 || results.SearchTerm != "red shoes" {
		t.Errorf("unexpected results: %+v", results)
	}
	if search.hits[9] != 5 {
		t.Errorf("hit count not recorded, got %v", search.hits)
	}
}

func TestSearchJoinsAsFilterUnderCategory(t *testing.T) {
	ds := &fakeDataSource{
		entities: map[string]map[int]string{"tkategorie": {5: "Sneakers"}},
	}
	search := &fakeSearch{
		entries: map[string]SearchEntry{"boots": {QueryID: 2, CacheID: 8, Term: "boots"}},
	}
	pf := testEngine(ds, search)
	mustInit(t, pf, "kKategorie=5&cSuche=boots", false)

	if pf.BaseState().Kind() != KindBaseCategory {
		t.Fatalf("category base state must survive a search, got %s", pf.BaseState().Kind())
	}
	query, _ := pf.ListingQuery()
	if !strings.Contains(query, "tsuchcachetreffer") {
		t.Errorf("search filter not compiled:\n%s", query)
	}
}

func TestFailedSearchYieldsExplainedEmptyResult(t *testing.T) {
	ds := &fakeDataSource{keys: []int{1, 2, 3}}
	pf := testEngine(ds, &fakeSearch{})
	mustInit(t, pf, "cSuche=ab", false)

	results, err := pf.SearchResults(context.Background(), true)
	if err != nil {
		t.Fatalf("SearchResults failed: %v", err)
	}
	if results.Error == "" {
		t.Fatal("failed search must carry an error message")
	}
	if results.ProductCount != 0 || len(results.ProductIDs) != 0 {
		t.Errorf("failed search must be empty: %+v", results)
	}
	if len(ds.queries) != 0 {
		t.Errorf("failed search must not hit the database, ran %d queries", len(ds.queries))
	}
}

func TestSearchResultsHydratesCurrentPage(t *testing.T) {
	keys := make([]int, 47)
	for i := range keys {
		keys[i] = i + 1
	}
	ds := &fakeDataSource{keys: keys}
	fctx := DefaultContext()
	fctx.VisibilityCheck = false
	pf := NewProductFilter(fctx, ds, &fakeSearch{}, &fakeHydrator{hidden: map[int]bool{25: true}})
	mustInit(t, pf, "seite=2", false)

	results, err := pf.SearchResults(context.Background(), true)
	if err != nil {
		t.Fatalf("SearchResults failed: %v", err)
	}
	if results.Page != 2 || results.PageCount != 3 {
		t.Errorf("unexpected paging: page=%d pages=%d", results.Page, results.PageCount)
	}
	if results.Offset.Start != 21 || results.Offset.End != 40 {
		t.Errorf("unexpected offsets: %+v", results.Offset)
	}
	if len(results.Products) != 19 {
		t.Errorf("hidden product not dropped: got %d products", len(results.Products))
	}
	if results.VisibleCount != 46 {
		t.Errorf("visible count not reduced: %d", results.VisibleCount)
	}
	if results.Products[0].ID != 21 {
		t.Errorf("page slice starts at %d, want 21", results.Products[0].ID)
	}
}

func TestSearchSpecialFiltersUseRawOrPath(t *testing.T) {
	ds := &fakeDataSource{}
	pf := testEngine(ds, nil)
	mustInit(t, pf, "kSuchspecialFilter=1&kSuchspecialFilter=4", false)

	query, _ := pf.ListingQuery()
	if !strings.Contains(query, "(tartikel.kArtikel IN (SELECT kArtikel FROM tbestseller WHERE fAnzahl >= 10)) OR (tartikel.nIstTopArtikel = 1)") {
		t.Errorf("search specials must OR their raw conditions:\n%s", query)
	}
}

func TestActiveSelectionsExpandArrayFilters(t *testing.T) {
	ds := &fakeDataSource{
		entities: map[string]map[int]string{"thersteller": {}},
		groups:   map[int]int{12: 3},
	}
	pf := testEngine(ds, nil)
	mustInit(t, pf, "kHerstellerFilter=3&kHerstellerFilter=4&MerkmalFilter_arr=12", false)

	opts := pf.ActiveSelections()
	if len(opts) != 3 {
		t.Fatalf("expected 3 selection chips, got %d: %+v", len(opts), opts)
	}
	for _, o := range opts {
		if !o.Active {
			t.Errorf("selection chip not marked active: %+v", o)
		}
	}
	if opts[0].Value != "3" || opts[1].Value != "4" || opts[2].Value != "12" {
		t.Errorf("chips out of activation order: %+v", opts)
	}
}

func TestRegisterFilterRejectsReservedParams(t *testing.T) {
	pf := testEngine(&fakeDataSource{}, nil)

	if err := pf.RegisterFilter(func(fctx FilterContext) Filter {
		f := NewCategoryFilter(fctx)
		f.custom = true
		return f
	}); err == nil {
		t.Fatal("reserved parameter registration must fail")
	}

	if err := pf.RegisterFilter(func(fctx FilterContext) Filter {
		return NewManufacturerFilter(fctx)
	}); err == nil {
		t.Fatal("non-custom filter registration must fail")
	}
}
