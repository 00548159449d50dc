package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// PriceRangeFilter restricts the listing to a net price interval. The wire
// format is "<min>_<max>"; either side may be empty for an open interval.
type PriceRangeFilter struct {
	baseFilter
}

func NewPriceRangeFilter(ctx FilterContext) *PriceRangeFilter {
	return &PriceRangeFilter{baseFilter{ctx: ctx}}
}

func (f *PriceRangeFilter) Kind() Kind { return KindPriceRange }

func (f *PriceRangeFilter) Name() string {
	if f.name != "" {
		return f.name
	}
	return "Price range"
}

func (f *PriceRangeFilter) URLParam() string             { return "cPreisspannenFilter" }
func (f *PriceRangeFilter) CombinationType() Combination { return CombineAND }
func (f *PriceRangeFilter) Visibility() Visibility       { return ShowAlways }

func (f *PriceRangeFilter) Init(v Value) Filter {
	f.init(v)
	return f
}

// Range parses the current value into its bounds. ok is false when the
// value does not follow the "<min>_<max>" format.
func (f *PriceRangeFilter) Range() (min, max float64, hasMin, hasMax, ok bool) {
	if f.value.Kind != ValueString {
		return 0, 0, false, false, false
	}
	parts := strings.SplitN(f.value.Str, "_", 2)
	if len(parts) != 2 {
		return 0, 0, false, false, false
	}
	var err error
	if parts[0] != "" {
		if min, err = strconv.ParseFloat(parts[0], 64); err != nil {
			return 0, 0, false, false, false
		}
		hasMin = true
	}
	if parts[1] != "" {
		if max, err = strconv.ParseFloat(parts[1], 64); err != nil {
			return 0, 0, false, false, false
		}
		hasMax = true
	}
	return min, max, hasMin, hasMax, hasMin || hasMax
}

func (f *PriceRangeFilter) SQLCondition() Condition {
	if !f.initialized {
		return Condition{}
	}
	min, max, hasMin, hasMax, ok := f.Range()
	if !ok {
		return Condition{}
	}
	switch {
	case hasMin && hasMax:
		return Condition{
			Where: "(tartikel.fVKNetto >= ? AND tartikel.fVKNetto < ?)",
			Args:  []any{min, max},
		}
	case hasMin:
		return Condition{Where: "tartikel.fVKNetto >= ?", Args: []any{min}}
	default:
		return Condition{Where: "tartikel.fVKNetto < ?", Args: []any{max}}
	}
}

func (f *PriceRangeFilter) SQLJoin() []Join { return nil }

func (f *PriceRangeFilter) TableName() string        { return ProductTable }
func (f *PriceRangeFilter) PrimaryKeyColumn() string { return "fVKNetto" }

func (f *PriceRangeFilter) ActiveOptions() []Option {
	if !f.initialized {
		return nil
	}
	min, max, hasMin, hasMax, ok := f.Range()
	if !ok {
		return nil
	}
	label := ""
	switch {
	case hasMin && hasMax:
		label = fmt.Sprintf("%.2f – %.2f", min, max)
	case hasMin:
		label = fmt.Sprintf("from %.2f", min)
	default:
		label = fmt.Sprintf("up to %.2f", max)
	}
	return []Option{{
		Label:  label,
		Value:  f.value.Str,
		Active: true,
		Kind:   KindPriceRange,
	}}
}

func (f *PriceRangeFilter) Clone(v Value) Filter {
	c := NewPriceRangeFilter(f.ctx)
	c.name = f.name
	return c.Init(v)
}
