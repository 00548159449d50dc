package filter

import "context"

// BaseState is the primary navigation context of a listing page. Exactly one
// base state is active per request; it seeds the compiled query before any
// active filter is applied.
//
// Resolve checks that the referenced entity still exists and loads its
// display name and SEO slug for the context language. A false return is the
// not-found terminal condition for the request.
type BaseState interface {
	Filter
	Resolve(ctx context.Context, ds DataSource) (bool, error)
}

// ── Category ────────────────────────────────────────────────────────────────

type CategoryBaseState struct {
	baseFilter
}

func NewCategoryBaseState(ctx FilterContext) *CategoryBaseState {
	return &CategoryBaseState{baseFilter{ctx: ctx}}
}

func (b *CategoryBaseState) Kind() Kind                   { return KindBaseCategory }
func (b *CategoryBaseState) Name() string                 { return b.name }
func (b *CategoryBaseState) URLParam() string             { return "kKategorie" }
func (b *CategoryBaseState) CombinationType() Combination { return CombineAND }
func (b *CategoryBaseState) Visibility() Visibility       { return ShowNever }

func (b *CategoryBaseState) Init(v Value) Filter {
	b.init(v)
	return b
}

func (b *CategoryBaseState) Resolve(ctx context.Context, ds DataSource) (bool, error) {
	id := b.value.Int
	ok, err := ds.EntityExists(ctx, "tkategorie", "kKategorie", id)
	if err != nil || !ok {
		return false, err
	}
	if b.name, err = ds.EntityName(ctx, "tkategorie", "kKategorie", "cName", id); err != nil {
		return false, err
	}
	if b.slug, err = ds.Slug(ctx, "kKategorie", id, b.ctx.LanguageID); err != nil {
		return false, err
	}
	return true, nil
}

func (b *CategoryBaseState) SQLCondition() Condition {
	if !b.initialized {
		return Condition{}
	}
	return Condition{Where: "tkategorieartikel.kKategorie = ?", Args: []any{b.value.Int}}
}

func (b *CategoryBaseState) SQLJoin() []Join {
	if !b.initialized {
		return nil
	}
	return []Join{{
		Table:  "tkategorieartikel",
		Type:   "JOIN",
		On:     "tkategorieartikel.kArtikel = tartikel.kArtikel",
		Origin: string(KindBaseCategory),
	}}
}

func (b *CategoryBaseState) TableName() string        { return "tkategorieartikel" }
func (b *CategoryBaseState) PrimaryKeyColumn() string { return "kKategorie" }
func (b *CategoryBaseState) ActiveOptions() []Option  { return nil }

func (b *CategoryBaseState) Clone(v Value) Filter {
	c := NewCategoryBaseState(b.ctx)
	c.name = b.name
	c.slug = b.slug
	return c.Init(v)
}

// ── Manufacturer ────────────────────────────────────────────────────────────

type ManufacturerBaseState struct {
	baseFilter
}

func NewManufacturerBaseState(ctx FilterContext) *ManufacturerBaseState {
	return &ManufacturerBaseState{baseFilter{ctx: ctx}}
}

func (b *ManufacturerBaseState) Kind() Kind                   { return KindBaseManufacturer }
func (b *ManufacturerBaseState) Name() string                 { return b.name }
func (b *ManufacturerBaseState) URLParam() string             { return "kHersteller" }
func (b *ManufacturerBaseState) CombinationType() Combination { return CombineAND }
func (b *ManufacturerBaseState) Visibility() Visibility       { return ShowNever }

func (b *ManufacturerBaseState) Init(v Value) Filter {
	b.init(v)
	return b
}

func (b *ManufacturerBaseState) Resolve(ctx context.Context, ds DataSource) (bool, error) {
	id := b.value.Int
	ok, err := ds.EntityExists(ctx, "thersteller", "kHersteller", id)
	if err != nil || !ok {
		return false, err
	}
	if b.name, err = ds.EntityName(ctx, "thersteller", "kHersteller", "cName", id); err != nil {
		return false, err
	}
	if b.slug, err = ds.Slug(ctx, "kHersteller", id, b.ctx.LanguageID); err != nil {
		return false, err
	}
	return true, nil
}

func (b *ManufacturerBaseState) SQLCondition() Condition {
	if !b.initialized {
		return Condition{}
	}
	return Condition{Where: "tartikel.kHersteller = ?", Args: []any{b.value.Int}}
}

func (b *ManufacturerBaseState) SQLJoin() []Join { return nil }

func (b *ManufacturerBaseState) TableName() string        { return ProductTable }
func (b *ManufacturerBaseState) PrimaryKeyColumn() string { return "kHersteller" }
func (b *ManufacturerBaseState) ActiveOptions() []Option  { return nil }

func (b *ManufacturerBaseState) Clone(v Value) Filter {
	c := NewManufacturerBaseState(b.ctx)
	c.name = b.name
	c.slug = b.slug
	return c.Init(v)
}

// ── Characteristic value ────────────────────────────────────────────────────

type CharacteristicValueBaseState struct {
	baseFilter
	groupID int
}

func NewCharacteristicValueBaseState(ctx FilterContext) *CharacteristicValueBaseState {
	return &CharacteristicValueBaseState{baseFilter: baseFilter{ctx: ctx}}
}

func (b *CharacteristicValueBaseState) Kind() Kind                   { return KindBaseCharacteristic }
func (b *CharacteristicValueBaseState) Name() string                 { return b.name }
func (b *CharacteristicValueBaseState) URLParam() string             { return "kMerkmalWert" }
func (b *CharacteristicValueBaseState) CombinationType() Combination { return CombineAND }
func (b *CharacteristicValueBaseState) Visibility() Visibility       { return ShowNever }
func (b *CharacteristicValueBaseState) GroupID() int                 { return b.groupID }

func (b *CharacteristicValueBaseState) Init(v Value) Filter {
	b.init(v)
	return b
}

func (b *CharacteristicValueBaseState) Resolve(ctx context.Context, ds DataSource) (bool, error) {
	id := b.value.Int
	groups, err := ds.CharacteristicGroups(ctx, []int{id})
	if err != nil {
		return false, err
	}
	group, ok := groups[id]
	if !ok {
		return false, nil
	}
	b.groupID = group
	if b.name, err = ds.EntityName(ctx, "tmerkmalwert", "kMerkmalWert", "cWert", id); err != nil {
		return false, err
	}
	if b.slug, err = ds.Slug(ctx, "kMerkmalWert", id, b.ctx.LanguageID); err != nil {
		return false, err
	}
	return true, nil
}

func (b *CharacteristicValueBaseState) SQLCondition() Condition {
	if !b.initialized {
		return Condition{}
	}
	return Condition{Where: "tartikelmerkmal.kMerkmalWert = ?", Args: []any{b.value.Int}}
}

func (b *CharacteristicValueBaseState) SQLJoin() []Join {
	if !b.initialized {
		return nil
	}
	return []Join{{
		Table:  "tartikelmerkmal",
		Type:   "JOIN",
		On:     "tartikelmerkmal.kArtikel = tartikel.kArtikel",
		Origin: string(KindBaseCharacteristic),
	}}
}

func (b *CharacteristicValueBaseState) TableName() string        { return "tartikelmerkmal" }
func (b *CharacteristicValueBaseState) PrimaryKeyColumn() string { return "kMerkmalWert" }
func (b *CharacteristicValueBaseState) ActiveOptions() []Option  { return nil }

func (b *CharacteristicValueBaseState) Clone(v Value) Filter {
	c := NewCharacteristicValueBaseState(b.ctx)
	c.name = b.name
	c.slug = b.slug
	c.groupID = b.groupID
	return c.Init(v)
}

// ── Search special ──────────────────────────────────────────────────────────

type SearchSpecialBaseState struct {
	baseFilter
}

func NewSearchSpecialBaseState(ctx FilterContext) *SearchSpecialBaseState {
	return &SearchSpecialBaseState{baseFilter{ctx: ctx}}
}

func (b *SearchSpecialBaseState) Kind() Kind                   { return KindBaseSearchSpecial }
func (b *SearchSpecialBaseState) URLParam() string             { return "kSuchspecial" }
func (b *SearchSpecialBaseState) CombinationType() Combination { return CombineAND }
func (b *SearchSpecialBaseState) Visibility() Visibility       { return ShowNever }

func (b *SearchSpecialBaseState) Name() string {
	if b.name != "" {
		return b.name
	}
	return specialNames[b.value.Int]
}

func (b *SearchSpecialBaseState) Init(v Value) Filter {
	b.init(v)
	return b
}

func (b *SearchSpecialBaseState) Resolve(ctx context.Context, ds DataSource) (bool, error) {
	if specialCondition(b.value.Int) == "" {
		return false, nil
	}
	slug, err := ds.Slug(ctx, "kSuchspecial", b.value.Int, b.ctx.LanguageID)
	if err != nil {
		return false, err
	}
	b.slug = slug
	return true, nil
}

func (b *SearchSpecialBaseState) SQLCondition() Condition {
	if !b.initialized {
		return Condition{}
	}
	return Condition{Where: specialCondition(b.value.Int)}
}

func (b *SearchSpecialBaseState) SQLJoin() []Join { return nil }

func (b *SearchSpecialBaseState) TableName() string        { return "" }
func (b *SearchSpecialBaseState) PrimaryKeyColumn() string { return "" }
func (b *SearchSpecialBaseState) ActiveOptions() []Option  { return nil }

func (b *SearchSpecialBaseState) Clone(v Value) Filter {
	c := NewSearchSpecialBaseState(b.ctx)
	c.name = b.name
	c.slug = b.slug
	return c.Init(v)
}

// ── Search query ────────────────────────────────────────────────────────────

// SearchQueryBaseState is the base state of a free-text search page. Its
// value is the search-cache id; the query id and raw term come from the
// search provider.
type SearchQueryBaseState struct {
	baseFilter
	term    string
	queryID int
}

func NewSearchQueryBaseState(ctx FilterContext) *SearchQueryBaseState {
	return &SearchQueryBaseState{baseFilter: baseFilter{ctx: ctx}}
}

func (b *SearchQueryBaseState) Kind() Kind                   { return KindBaseSearchQuery }
func (b *SearchQueryBaseState) Name() string                 { return b.term }
func (b *SearchQueryBaseState) URLParam() string             { return "kSuchanfrage" }
func (b *SearchQueryBaseState) CombinationType() Combination { return CombineAND }
func (b *SearchQueryBaseState) Visibility() Visibility       { return ShowNever }

func (b *SearchQueryBaseState) Init(v Value) Filter {
	b.init(v)
	return b
}

// SetQuery records the saved-query identity matching the cache entry.
func (b *SearchQueryBaseState) SetQuery(queryID int, term string) *SearchQueryBaseState {
	b.queryID = queryID
	b.term = term
	return b
}

func (b *SearchQueryBaseState) QueryID() int { return b.queryID }
func (b *SearchQueryBaseState) Term() string { return b.term }

func (b *SearchQueryBaseState) Resolve(ctx context.Context, ds DataSource) (bool, error) {
	// The search provider already validated the cache entry.
	return b.initialized, nil
}

func (b *SearchQueryBaseState) SQLCondition() Condition {
	if !b.initialized {
		return Condition{}
	}
	return Condition{Where: "tsuchcachetreffer.kSuchCache = ?", Args: []any{b.value.Int}}
}

func (b *SearchQueryBaseState) SQLJoin() []Join {
	if !b.initialized {
		return nil
	}
	return []Join{{
		Table:  "tsuchcachetreffer",
		Type:   "JOIN",
		On:     "tsuchcachetreffer.kArtikel = tartikel.kArtikel",
		Origin: string(KindBaseSearchQuery),
	}}
}

func (b *SearchQueryBaseState) TableName() string        { return "tsuchcachetreffer" }
func (b *SearchQueryBaseState) PrimaryKeyColumn() string { return "kSuchCache" }
func (b *SearchQueryBaseState) ActiveOptions() []Option  { return nil }

func (b *SearchQueryBaseState) Clone(v Value) Filter {
	c := NewSearchQueryBaseState(b.ctx)
	c.term = b.term
	c.queryID = b.queryID
	return c.Init(v)
}

// ── Dummy ───────────────────────────────────────────────────────────────────

// DummyBaseState is the no-navigation context: a plain listing over the
// whole catalog.
type DummyBaseState struct {
	baseFilter
}

func NewDummyBaseState(ctx FilterContext) *DummyBaseState {
	d := &DummyBaseState{baseFilter{ctx: ctx}}
	d.initialized = true
	return d
}

func (b *DummyBaseState) Kind() Kind                   { return KindBaseDummy }
func (b *DummyBaseState) Name() string                 { return "" }
func (b *DummyBaseState) URLParam() string             { return "" }
func (b *DummyBaseState) CombinationType() Combination { return CombineAND }
func (b *DummyBaseState) Visibility() Visibility       { return ShowNever }

func (b *DummyBaseState) Init(v Value) Filter { return b }

func (b *DummyBaseState) Resolve(ctx context.Context, ds DataSource) (bool, error) {
	return true, nil
}

func (b *DummyBaseState) SQLCondition() Condition     { return Condition{} }
func (b *DummyBaseState) SQLJoin() []Join             { return nil }
func (b *DummyBaseState) TableName() string           { return "" }
func (b *DummyBaseState) PrimaryKeyColumn() string    { return "" }
func (b *DummyBaseState) ActiveOptions() []Option     { return nil }
func (b *DummyBaseState) Clone(v Value) Filter        { return NewDummyBaseState(b.ctx) }
