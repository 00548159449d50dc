package filter

import "strings"

// Search specials: curated virtual listings computed from catalog data.
const (
	SpecialBestseller    = 1
	SpecialSpecialOffers = 2
	SpecialNewProducts   = 3
	SpecialTopOffers     = 4
	SpecialUpcoming      = 5
)

var specialNames = map[int]string{
	SpecialBestseller:    "Bestsellers",
	SpecialSpecialOffers: "Special offers",
	SpecialNewProducts:   "New products",
	SpecialTopOffers:     "Top offers",
	SpecialUpcoming:      "Coming soon",
}

// specialCondition returns the WHERE fragment selecting the products of one
// search special. Unknown ids produce no fragment.
func specialCondition(id int) string {
	switch id {
	case SpecialBestseller:
		return "tartikel.kArtikel IN (SELECT kArtikel FROM tbestseller WHERE fAnzahl >= 10)"
	case SpecialSpecialOffers:
		return "tartikel.fVKNetto < tartikel.fUVP AND tartikel.fUVP > 0"
	case SpecialNewProducts:
		return "tartikel.dErstellt >= NOW() - INTERVAL '31 days'"
	case SpecialTopOffers:
		return "tartikel.nIstTopArtikel = 1"
	case SpecialUpcoming:
		return "tartikel.dErscheinungsdatum > NOW()"
	default:
		return ""
	}
}

// SearchSpecialFilter restricts the listing to one or more search specials.
// Several selected specials OR together ("any of these lists").
type SearchSpecialFilter struct {
	baseFilter
}

func NewSearchSpecialFilter(ctx FilterContext) *SearchSpecialFilter {
	return &SearchSpecialFilter{baseFilter{ctx: ctx}}
}

func (f *SearchSpecialFilter) Kind() Kind { return KindSearchSpecial }

func (f *SearchSpecialFilter) Name() string {
	if f.name != "" {
		return f.name
	}
	ids := f.value.Ints()
	if len(ids) == 1 {
		if n, ok := specialNames[ids[0]]; ok {
			return n
		}
	}
	return "Search special"
}

func (f *SearchSpecialFilter) URLParam() string             { return "kSuchspecialFilter" }
func (f *SearchSpecialFilter) CombinationType() Combination { return CombineOR }
func (f *SearchSpecialFilter) Visibility() Visibility       { return ShowBox }

func (f *SearchSpecialFilter) Init(v Value) Filter {
	f.init(v)
	return f
}

func (f *SearchSpecialFilter) SQLCondition() Condition {
	if !f.initialized {
		return Condition{}
	}
	parts := make([]string, 0, 2)
	for _, id := range f.value.Ints() {
		if c := specialCondition(id); c != "" {
			parts = append(parts, "("+c+")")
		}
	}
	if len(parts) == 0 {
		return Condition{}
	}
	return Condition{Where: strings.Join(parts, " OR ")}
}

func (f *SearchSpecialFilter) SQLJoin() []Join { return nil }

// Search specials cannot be merged through an IN-subselect; the empty table
// name routes them through the raw OR path during compilation.
func (f *SearchSpecialFilter) TableName() string        { return "" }
func (f *SearchSpecialFilter) PrimaryKeyColumn() string { return "" }

func (f *SearchSpecialFilter) ActiveOptions() []Option { return activeOptions(f) }

func (f *SearchSpecialFilter) Clone(v Value) Filter {
	c := NewSearchSpecialFilter(f.ctx)
	c.name = f.name
	return c.Init(v)
}
