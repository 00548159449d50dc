package filter

// Availability wire values.
const (
	AvailabilityInStock    = "in_stock"
	AvailabilityOutOfStock = "out_of_stock"
)

// AvailabilityFilter keeps products by stock state. Products that do not
// track stock (cLagerBeachten = 'N') always count as available.
type AvailabilityFilter struct {
	baseFilter
}

func NewAvailabilityFilter(ctx FilterContext) *AvailabilityFilter {
	return &AvailabilityFilter{baseFilter{ctx: ctx}}
}

func (f *AvailabilityFilter) Kind() Kind { return KindAvailability }

func (f *AvailabilityFilter) Name() string {
	if f.name != "" {
		return f.name
	}
	return "Availability"
}

func (f *AvailabilityFilter) URLParam() string             { return "availability" }
func (f *AvailabilityFilter) CombinationType() Combination { return CombineAND }
func (f *AvailabilityFilter) Visibility() Visibility       { return ShowAlways }

func (f *AvailabilityFilter) Init(v Value) Filter {
	f.init(v)
	return f
}

func (f *AvailabilityFilter) SQLCondition() Condition {
	if !f.initialized || f.value.Kind != ValueString {
		return Condition{}
	}
	inStock := "(tartikel.fLagerbestand > 0 OR tartikel.cLagerBeachten = 'N')"
	switch f.value.Str {
	case AvailabilityInStock:
		return Condition{Where: inStock}
	case AvailabilityOutOfStock:
		return Condition{Where: "NOT " + inStock}
	default:
		return Condition{}
	}
}

func (f *AvailabilityFilter) SQLJoin() []Join { return nil }

func (f *AvailabilityFilter) TableName() string        { return ProductTable }
func (f *AvailabilityFilter) PrimaryKeyColumn() string { return "fLagerbestand" }

func (f *AvailabilityFilter) ActiveOptions() []Option {
	if !f.initialized {
		return nil
	}
	label := "In stock"
	if f.value.Str == AvailabilityOutOfStock {
		label = "Out of stock"
	}
	return []Option{{
		Label:  label,
		Value:  f.value.Str,
		Active: true,
		Kind:   KindAvailability,
	}}
}

func (f *AvailabilityFilter) Clone(v Value) Filter {
	c := NewAvailabilityFilter(f.ctx)
	c.name = f.name
	return c.Init(v)
}
