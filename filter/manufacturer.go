package filter

import "fmt"

// ManufacturerFilter restricts the listing to products of the selected
// manufacturers. The manufacturer key lives on the product row itself, so no
// join is required.
type ManufacturerFilter struct {
	baseFilter
}

func NewManufacturerFilter(ctx FilterContext) *ManufacturerFilter {
	return &ManufacturerFilter{baseFilter{ctx: ctx}}
}

func (f *ManufacturerFilter) Kind() Kind { return KindManufacturer }

func (f *ManufacturerFilter) Name() string {
	if f.name != "" {
		return f.name
	}
	return "Manufacturer"
}

func (f *ManufacturerFilter) URLParam() string             { return "kHerstellerFilter" }
func (f *ManufacturerFilter) CombinationType() Combination { return CombineAND }
func (f *ManufacturerFilter) Visibility() Visibility       { return ShowAlways }

func (f *ManufacturerFilter) Init(v Value) Filter {
	f.init(v)
	return f
}

func (f *ManufacturerFilter) SQLCondition() Condition {
	if !f.initialized {
		return Condition{}
	}
	ids := f.value.Ints()
	if len(ids) == 0 {
		return Condition{}
	}
	return Condition{
		Where: fmt.Sprintf("tartikel.kHersteller IN (%s)", intPlaceholders(len(ids))),
		Args:  intArgs(ids),
	}
}

func (f *ManufacturerFilter) SQLJoin() []Join { return nil }

func (f *ManufacturerFilter) TableName() string        { return ProductTable }
func (f *ManufacturerFilter) PrimaryKeyColumn() string { return "kHersteller" }

func (f *ManufacturerFilter) ActiveOptions() []Option { return activeOptions(f) }

func (f *ManufacturerFilter) Clone(v Value) Filter {
	c := NewManufacturerFilter(f.ctx)
	c.name = f.name
	c.slug = f.slug
	return c.Init(v)
}
