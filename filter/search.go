package filter

// SearchFilter restricts the listing to the hits of one cached search
// (tsuchcache). Several active search filters OR together: a product
// matching any of the selected searches stays in the result.
type SearchFilter struct {
	baseFilter
}

func NewSearchFilter(ctx FilterContext) *SearchFilter {
	return &SearchFilter{baseFilter{ctx: ctx}}
}

func (f *SearchFilter) Kind() Kind { return KindSearch }

func (f *SearchFilter) Name() string {
	if f.name != "" {
		return f.name
	}
	return "Search"
}

func (f *SearchFilter) URLParam() string             { return "SuchFilter_arr" }
func (f *SearchFilter) CombinationType() Combination { return CombineOR }
func (f *SearchFilter) Visibility() Visibility       { return ShowContent }

func (f *SearchFilter) Init(v Value) Filter {
	f.init(v)
	return f
}

func (f *SearchFilter) SQLCondition() Condition {
	if !f.initialized {
		return Condition{}
	}
	ids := f.value.Ints()
	if len(ids) == 0 {
		return Condition{}
	}
	return Condition{
		Where: "tsuchcachetreffer.kSuchCache = ?",
		Args:  []any{ids[0]},
	}
}

func (f *SearchFilter) SQLJoin() []Join {
	if !f.initialized {
		return nil
	}
	return []Join{{
		Table:  "tsuchcachetreffer",
		Type:   "JOIN",
		On:     "tsuchcachetreffer.kArtikel = tartikel.kArtikel",
		Origin: string(KindSearch),
	}}
}

func (f *SearchFilter) TableName() string        { return "tsuchcachetreffer" }
func (f *SearchFilter) PrimaryKeyColumn() string { return "kSuchCache" }

func (f *SearchFilter) ActiveOptions() []Option { return activeOptions(f) }

func (f *SearchFilter) Clone(v Value) Filter {
	c := NewSearchFilter(f.ctx)
	c.name = f.name
	return c.Init(v)
}
