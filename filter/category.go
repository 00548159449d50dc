package filter

import "fmt"

// CategoryFilter narrows the listing to one or more categories inside the
// current navigation context (sub-filtering, e.g. within a search).
type CategoryFilter struct {
	baseFilter
}

func NewCategoryFilter(ctx FilterContext) *CategoryFilter {
	return &CategoryFilter{baseFilter{ctx: ctx}}
}

func (f *CategoryFilter) Kind() Kind { return KindCategory }

func (f *CategoryFilter) Name() string {
	if f.name != "" {
		return f.name
	}
	return "Category"
}

func (f *CategoryFilter) URLParam() string             { return "kKategorieFilter" }
func (f *CategoryFilter) CombinationType() Combination { return CombineAND }
func (f *CategoryFilter) Visibility() Visibility       { return ShowAlways }

func (f *CategoryFilter) Init(v Value) Filter {
	f.init(v)
	return f
}

func (f *CategoryFilter) SQLCondition() Condition {
	if !f.initialized {
		return Condition{}
	}
	ids := f.value.Ints()
	if len(ids) == 0 {
		return Condition{}
	}
	return Condition{
		Where: fmt.Sprintf("tkategorieartikel.kKategorie IN (%s)", intPlaceholders(len(ids))),
		Args:  intArgs(ids),
	}
}

func (f *CategoryFilter) SQLJoin() []Join {
	if !f.initialized {
		return nil
	}
	return []Join{{
		Table:  "tkategorieartikel",
		Type:   "JOIN",
		On:     "tkategorieartikel.kArtikel = tartikel.kArtikel",
		Origin: string(KindCategory),
	}}
}

func (f *CategoryFilter) TableName() string        { return "tkategorieartikel" }
func (f *CategoryFilter) PrimaryKeyColumn() string { return "kKategorie" }

func (f *CategoryFilter) ActiveOptions() []Option { return activeOptions(f) }

func (f *CategoryFilter) Clone(v Value) Filter {
	c := NewCategoryFilter(f.ctx)
	c.name = f.name
	c.slug = f.slug
	return c.Init(v)
}
