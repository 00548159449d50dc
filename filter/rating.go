package filter

import "fmt"

// RatingFilter keeps products whose rounded average review rating reaches
// the selected number of stars.
type RatingFilter struct {
	baseFilter
}

func NewRatingFilter(ctx FilterContext) *RatingFilter {
	return &RatingFilter{baseFilter{ctx: ctx}}
}

func (f *RatingFilter) Kind() Kind { return KindRating }

func (f *RatingFilter) Name() string {
	if f.name != "" {
		return f.name
	}
	return "Rating"
}

func (f *RatingFilter) URLParam() string             { return "nBewertungSterneFilter" }
func (f *RatingFilter) CombinationType() Combination { return CombineAND }
func (f *RatingFilter) Visibility() Visibility       { return ShowAlways }

func (f *RatingFilter) Init(v Value) Filter {
	f.init(v)
	return f
}

func (f *RatingFilter) SQLCondition() Condition {
	if !f.initialized || f.value.Kind != ValueInt {
		return Condition{}
	}
	return Condition{
		Where: "ROUND(tartikelext.fDurchschnittsBewertung) >= ?",
		Args:  []any{f.value.Int},
	}
}

func (f *RatingFilter) SQLJoin() []Join {
	if !f.initialized {
		return nil
	}
	return []Join{{
		Table:  "tartikelext",
		Type:   "JOIN",
		On:     "tartikelext.kArtikel = tartikel.kArtikel",
		Origin: string(KindRating),
	}}
}

func (f *RatingFilter) TableName() string        { return "tartikelext" }
func (f *RatingFilter) PrimaryKeyColumn() string { return "fDurchschnittsBewertung" }

func (f *RatingFilter) ActiveOptions() []Option {
	if !f.initialized {
		return nil
	}
	return []Option{{
		Label:  fmt.Sprintf("%d stars & up", f.value.Int),
		Value:  f.value.String(),
		Active: true,
		Kind:   KindRating,
	}}
}

func (f *RatingFilter) Clone(v Value) Filter {
	c := NewRatingFilter(f.ctx)
	c.name = f.name
	return c.Init(v)
}
