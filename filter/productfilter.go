package filter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
)

// FilterFactory builds a custom filter bound to the request context. Custom
// filters register once at startup and are instantiated per request.
type FilterFactory func(ctx FilterContext) Filter

// reservedParams are the wire names claimed by the built-in filter set; a
// custom filter cannot register under any of them.
var reservedParams = map[string]bool{
	"kKategorie":             true,
	"kHersteller":            true,
	"kMerkmalWert":           true,
	"kSuchspecial":           true,
	"kKategorieFilter":       true,
	"categoryFilters":        true,
	"kHerstellerFilter":      true,
	"manufacturerFilters":    true,
	"nBewertungSterneFilter": true,
	"cPreisspannenFilter":    true,
	"MerkmalFilter_arr":      true,
	"kSuchspecialFilter":     true,
	"searchSpecialFilters":   true,
	"SuchFilter_arr":         true,
	"availability":           true,
	"kSuchanfrage":           true,
	"cSuche":                 true,
	"nSortierung":            true,
	"nArtikelProSeite":       true,
	"seite":                  true,
}

// ProductFilter orchestrates one listing request: it resolves the base state,
// activates filters from the request parameters, compiles the listing query
// and assembles the paginated result set.
//
// A ProductFilter is built once per request and is not safe for concurrent
// use; the registered custom-filter factories may be shared.
type ProductFilter struct {
	ctx      FilterContext
	ds       DataSource
	search   SearchProvider
	hydrator ProductHydrator

	customFactories []FilterFactory

	baseState BaseState
	active    []Filter

	sort  *Sort
	limit *Limit
	page  int

	notFound    bool
	searchEntry *SearchEntry
	searchErr   string
	results     *SearchResults
}

func NewProductFilter(ctx FilterContext, ds DataSource, search SearchProvider, hydrator ProductHydrator) *ProductFilter {
	return &ProductFilter{
		ctx:       ctx,
		ds:        ds,
		search:    search,
		hydrator:  hydrator,
		baseState: NewDummyBaseState(ctx),
		sort:      NewSort(ctx),
		limit:     NewLimit(ctx),
		page:      1,
	}
}

// RegisterFilter adds a custom filter factory. The produced filter must
// report IsCustom and claim a URL parameter outside the built-in set.
func (pf *ProductFilter) RegisterFilter(factory FilterFactory) error {
	probe := factory(pf.ctx)
	if !probe.IsCustom() {
		return fmt.Errorf("filter %q is not a custom filter", probe.Kind())
	}
	param := probe.URLParam()
	if param == "" {
		return fmt.Errorf("custom filter %q has no URL parameter", probe.Kind())
	}
	if reservedParams[param] {
		return fmt.Errorf("custom filter parameter %q collides with a built-in filter", param)
	}
	for _, f := range pf.customFactories {
		if f(pf.ctx).URLParam() == param {
			return fmt.Errorf("custom filter parameter %q registered twice", param)
		}
	}
	pf.customFactories = append(pf.customFactories, factory)
	return nil
}

func (pf *ProductFilter) fail() { pf.notFound = true }

// IsNotFound reports whether the base-state entity of the request does not
// exist; the handler answers such requests with a 404.
func (pf *ProductFilter) IsNotFound() bool { return pf.notFound }

func (pf *ProductFilter) BaseState() BaseState    { return pf.baseState }
func (pf *ProductFilter) ActiveFilters() []Filter { return pf.active }
func (pf *ProductFilter) HasActiveFilters() bool  { return len(pf.active) > 0 }
func (pf *ProductFilter) Page() int               { return pf.page }
func (pf *ProductFilter) PageSize() int           { return pf.limit.PageSize() }

// HasSearch reports whether the request carries a resolved free-text search.
func (pf *ProductFilter) HasSearch() bool {
	return pf.searchEntry != nil && pf.searchErr == ""
}

func (pf *ProductFilter) activeOfKind(kind Kind) Filter {
	for _, f := range pf.active {
		if f.Kind() == kind {
			return f
		}
	}
	return nil
}

// AddActiveFilter initializes a filter with a value and, when the value is
// not empty, adds it to the active set.
func (pf *ProductFilter) AddActiveFilter(f Filter, v Value) Filter {
	f = f.Init(v)
	if f.IsInitialized() {
		pf.active = append(pf.active, f)
	}
	return f
}

// InitStates resets the engine and loads one request's parameters: base
// state, active filters, search resolution, sorting and pagination. With
// validateURL set, it afterwards checks whether the request belongs on a
// canonical page and returns the redirect target.
func (pf *ProductFilter) InitStates(ctx context.Context, p Params, validateURL bool) (ValidationOutcome, error) {
	pf.active = nil
	pf.notFound = false
	pf.searchEntry = nil
	pf.searchErr = ""
	pf.results = nil

	pf.sort = NewSort(pf.ctx).Set(p.Sort)
	pf.limit = NewLimit(pf.ctx).Set(p.PageSize)
	pf.page = p.Page

	if ok, err := pf.initBaseState(ctx, p); err != nil {
		return Ok(), err
	} else if !ok {
		pf.fail()
		return Ok(), nil
	}

	if err := pf.activateFilters(ctx, p); err != nil {
		return Ok(), err
	}
	if err := pf.resolveSearch(ctx, p); err != nil {
		return Ok(), err
	}
	pf.activateCustomFilters(p)

	if validateURL {
		return pf.validate(ctx)
	}
	return Ok(), nil
}

// initBaseState picks the primary navigation context. The selectors are
// mutually exclusive; kKategorie wins over kHersteller over kMerkmalWert over
// kSuchspecial. A false return is the not-found terminal condition.
func (pf *ProductFilter) initBaseState(ctx context.Context, p Params) (bool, error) {
	var bs BaseState
	switch {
	case p.CategoryID > 0:
		bs = NewCategoryBaseState(pf.ctx)
		bs.Init(IntValue(p.CategoryID))
	case p.ManufacturerID > 0:
		bs = NewManufacturerBaseState(pf.ctx)
		bs.Init(IntValue(p.ManufacturerID))
	case p.CharacteristicValueID > 0:
		bs = NewCharacteristicValueBaseState(pf.ctx)
		bs.Init(IntValue(p.CharacteristicValueID))
	case p.SearchSpecialID > 0:
		bs = NewSearchSpecialBaseState(pf.ctx)
		bs.Init(IntValue(p.SearchSpecialID))
	default:
		pf.baseState = NewDummyBaseState(pf.ctx)
		return true, nil
	}

	ok, err := bs.Resolve(ctx, pf.ds)
	if err != nil || !ok {
		return false, err
	}
	pf.baseState = bs
	return true, nil
}

func (pf *ProductFilter) activateFilters(ctx context.Context, p Params) error {
	if len(p.CategoryFilterIDs) > 0 {
		pf.AddActiveFilter(NewCategoryFilter(pf.ctx), IntsValue(p.CategoryFilterIDs))
	}
	if len(p.ManufacturerFilterIDs) > 0 {
		pf.AddActiveFilter(NewManufacturerFilter(pf.ctx), IntsValue(p.ManufacturerFilterIDs))
	}
	if p.RatingFilter > 0 {
		pf.AddActiveFilter(NewRatingFilter(pf.ctx), IntValue(p.RatingFilter))
	}
	if p.PriceRangeFilter != "" {
		pf.AddActiveFilter(NewPriceRangeFilter(pf.ctx), StringValue(p.PriceRangeFilter))
	}

	// One characteristic filter per selected value; its group id decides
	// which selections OR together. Unknown value ids are dropped.
	if len(p.CharacteristicFilterIDs) > 0 {
		groups, err := pf.ds.CharacteristicGroups(ctx, p.CharacteristicFilterIDs)
		if err != nil {
			return err
		}
		for _, id := range p.CharacteristicFilterIDs {
			group, ok := groups[id]
			if !ok {
				continue
			}
			pf.AddActiveFilter(NewCharacteristicFilter(pf.ctx).SetGroup(group), IntValue(id))
		}
	}

	if len(p.SearchSpecialFilterIDs) > 0 {
		pf.AddActiveFilter(NewSearchSpecialFilter(pf.ctx), IntsValue(p.SearchSpecialFilterIDs))
	}
	for _, id := range p.SearchFilterIDs {
		pf.AddActiveFilter(NewSearchFilter(pf.ctx), IntValue(id))
	}
	if p.Availability != "" {
		pf.AddActiveFilter(NewAvailabilityFilter(pf.ctx), StringValue(p.Availability))
	}
	return nil
}

// resolveSearch turns cSuche / kSuchanfrage into a search-cache reference.
// On a plain listing the search becomes the base state; under a category or
// manufacturer page it joins in as an additional filter. A failed search is
// remembered and later produces an explained empty result set.
func (pf *ProductFilter) resolveSearch(ctx context.Context, p Params) error {
	if p.SearchQueryID == 0 && p.SearchTerm == "" {
		return nil
	}

	var (
		entry SearchEntry
		err   error
	)
	if p.SearchQueryID > 0 {
		entry, err = pf.search.LoadSaved(ctx, p.SearchQueryID, pf.ctx.LanguageID)
	} else {
		entry, err = pf.search.EnsureCache(ctx, p.SearchTerm, pf.ctx.LanguageID)
	}
	if err != nil {
		return err
	}
	if entry.Term == "" {
		entry.Term = p.SearchTerm
	}
	pf.searchEntry = &entry

	if entry.Err != "" {
		pf.searchErr = entry.Err
		return nil
	}

	if pf.baseState.Kind() == KindBaseDummy {
		sq := NewSearchQueryBaseState(pf.ctx).SetQuery(entry.QueryID, entry.Term)
		sq.Init(IntValue(entry.CacheID))
		pf.baseState = sq
	}
	// The search always joins the active set too; on a search page its
	// condition collapses into the base state's during compilation.
	pf.AddActiveFilter(NewSearchFilter(pf.ctx), IntValue(entry.CacheID))
	return nil
}

// activateCustomFilters scans the leftover request parameters for registered
// custom filters. OR-combining custom filters always receive an array value.
func (pf *ProductFilter) activateCustomFilters(p Params) {
	if p.Extra == nil {
		return
	}
	for _, factory := range pf.customFactories {
		f := factory(pf.ctx)
		raw := append(append([]string(nil), p.Extra[f.URLParam()]...), p.Extra[f.URLParam()+"[]"]...)
		if len(raw) == 0 {
			continue
		}
		v := coerceValue(raw)
		if f.CombinationType() == CombineOR {
			v = v.AsMany()
		}
		pf.AddActiveFilter(f, v)
	}
}

// CurrentStateData compiles the base state and the active filters into a
// StateSQL. A non-empty ignore kind leaves that filter class out, which the
// facet queries use to count options against the rest of the state.
func (pf *ProductFilter) CurrentStateData(ignore Kind) *StateSQL {
	s := NewStateSQL()
	s.AddSelect(ProductKeyColumn)
	s.AddGroupBy(ProductKeyColumn)

	if pf.baseState != nil && pf.baseState.IsInitialized() {
		s.AddJoin(pf.baseState.SQLJoin()...)
		addFilterCondition(s, pf.baseState.SQLCondition())
	}

	for _, g := range pf.groupActive(ignore) {
		if g[0].CombinationType() == CombineOR {
			orMerge(s, g)
			continue
		}
		for _, f := range g {
			s.AddJoin(f.SQLJoin()...)
			addFilterCondition(s, f.SQLCondition())
		}
	}
	return s
}

// groupActive partitions the active filters by kind and URL parameter,
// preserving activation order.
func (pf *ProductFilter) groupActive(ignore Kind) [][]Filter {
	var order []string
	groups := make(map[string][]Filter)
	for _, f := range pf.active {
		if ignore != KindNone && f.Kind() == ignore {
			continue
		}
		key := string(f.Kind()) + "|" + f.URLParam()
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], f)
	}
	out := make([][]Filter, 0, len(order))
	for _, key := range order {
		out = append(out, groups[key])
	}
	return out
}

// orMerge compiles a group of OR-combining filters. Members sharing a table
// and group id collapse into one sub-select over that table; distinct groups
// AND against each other through their own sub-selects, so the listing never
// depends on one shared join carrying conflicting equality conditions.
// Members without a backing table fall back to a raw OR of their conditions.
func orMerge(s *StateSQL, filters []Filter) {
	type partKey struct {
		table string
		group int
	}
	var order []partKey
	parts := make(map[partKey][]Filter)
	for _, f := range filters {
		key := partKey{table: f.TableName(), group: f.GroupID()}
		if _, ok := parts[key]; !ok {
			order = append(order, key)
		}
		parts[key] = append(parts[key], f)
	}

	single := len(order) == 1 && len(parts[order[0]]) == 1

	for _, key := range order {
		members := parts[key]

		if key.table == "" {
			raw := make([]string, 0, len(members))
			for _, f := range members {
				if c := f.SQLCondition(); c.Where != "" {
					raw = append(raw, "("+c.Where+")")
				}
			}
			if len(raw) > 0 {
				s.AddCondition(strings.Join(raw, " OR "))
			}
			continue
		}

		// A lone member keeps its direct condition and join.
		if single {
			s.AddJoin(members[0].SQLJoin()...)
			addFilterCondition(s, members[0].SQLCondition())
			continue
		}

		ids := memberIDs(members)
		if len(ids) == 0 {
			continue
		}
		s.AddCondition(fmt.Sprintf(
			"%s IN (SELECT %s FROM %s WHERE %s IN (%s))",
			ProductKeyColumn, ProductKey, key.table, members[0].PrimaryKeyColumn(), joinInts(ids)))
	}
}

// memberIDs unions the integer values of the given filters, first occurrence
// first.
func memberIDs(filters []Filter) []int {
	seen := make(map[int]bool)
	var ids []int
	for _, f := range filters {
		for _, id := range f.Value().Ints() {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

func joinInts(ids []int) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

func addFilterCondition(s *StateSQL, c Condition) {
	if c.Where == "" {
		return
	}
	if len(c.Args) > 0 {
		s.AddCondition(&ParamCondition{Where: c.Where, Args: c.Args})
		return
	}
	s.AddCondition(c.Where)
}

// ProductKeys compiles and runs the listing query, returning every matching
// product id in sort order. The compilation starts from a fresh StateSQL, so
// repeated calls produce identical SQL.
func (pf *ProductFilter) ProductKeys(ctx context.Context) ([]int, error) {
	query, args := pf.ListingQuery()
	return pf.ds.ProductKeys(ctx, query, args)
}

// ListingQuery renders the current state into the final listing SQL.
func (pf *ProductFilter) ListingQuery() (string, []any) {
	state := pf.CurrentStateData(KindNone)
	qb := NewQueryBuilder(pf.ctx, pf.sort)
	return qb.BaseQuery(state, ModeListing, pf.HasActiveFilters())
}

// SearchResults runs the listing end to end: product keys, hit-count
// bookkeeping, pagination and - when fill is set - hydration of the current
// page. The result is memoized for the lifetime of the request.
func (pf *ProductFilter) SearchResults(ctx context.Context, fill bool) (*SearchResults, error) {
	if pf.results != nil {
		return pf.results, nil
	}

	if pf.searchErr != "" {
		pf.results = failedSearch(pf.searchEntry.Term, pf.searchErr)
		return pf.results, nil
	}

	keys, err := pf.ProductKeys(ctx)
	if err != nil {
		return nil, err
	}
	total := len(keys)

	if pf.searchEntry != nil && pf.searchEntry.QueryID > 0 {
		// Statistics only; a failed write never fails the listing.
		_ = pf.search.RecordHitCount(ctx, pf.searchEntry.QueryID, total)
	}

	offset, pageCount := paginate(total, pf.limit.PageSize(), pf.page)
	page := pf.page
	if pageCount > 0 && page > pageCount {
		page = pageCount
	}

	res := &SearchResults{
		ProductIDs:   keys,
		Products:     []models.StorefrontProduct{},
		ProductCount: total,
		VisibleCount: total,
		Offset:       offset,
		Page:         page,
		PageCount:    pageCount,
		PageSize:     pf.limit.PageSize(),
	}
	if pf.searchEntry != nil {
		res.SearchTerm = pf.searchEntry.Term
	}

	if fill && total > 0 && pf.hydrator != nil {
		for _, id := range keys[offset.Start-1 : offset.End] {
			product, err := pf.hydrator.FillProduct(ctx, id)
			if err != nil {
				return nil, err
			}
			if product == nil {
				res.VisibleCount--
				continue
			}
			res.Products = append(res.Products, *product)
		}
	}

	pf.results = res
	return res, nil
}
