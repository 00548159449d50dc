package filter

// Product table identifiers shared by every filter.
const (
	ProductTable     = "tartikel"
	ProductKey       = "kArtikel"
	ProductKeyColumn = ProductTable + "." + ProductKey
)

// Combination decides how several active filters of the same kind combine in
// the compiled WHERE clause.
type Combination int

const (
	CombineAND Combination = iota
	CombineOR
)

// Visibility is facet-display metadata; it is never evaluated during query
// compilation.
type Visibility int

const (
	ShowAlways Visibility = iota
	ShowContent
	ShowBox
	ShowNever
)

// Kind identifies a filter class. Custom (user-registered) filters use their
// own keys; the built-ins form a closed set.
type Kind string

const (
	KindNone                Kind = ""
	KindCategory            Kind = "category"
	KindManufacturer        Kind = "manufacturer"
	KindCharacteristic      Kind = "characteristic"
	KindPriceRange          Kind = "priceRange"
	KindRating              Kind = "rating"
	KindSearchSpecial       Kind = "searchSpecial"
	KindSearch              Kind = "search"
	KindAvailability        Kind = "availability"
	KindBaseCategory        Kind = "baseCategory"
	KindBaseManufacturer    Kind = "baseManufacturer"
	KindBaseCharacteristic  Kind = "baseCharacteristicValue"
	KindBaseSearchSpecial   Kind = "baseSearchSpecial"
	KindBaseSearchQuery     Kind = "baseSearchQuery"
	KindBaseDummy           Kind = "baseDummy"
)

// Condition is a WHERE fragment contributed by a single filter. An empty
// Where means the filter contributes no row restriction.
type Condition struct {
	Where string
	Args  []any
}

// Filter is one facet of the product listing: its identity, current value,
// and its contribution to the compiled query. A filter that has not been
// initialized contributes neither a condition nor a join.
type Filter interface {
	Kind() Kind
	Name() string
	URLParam() string
	CombinationType() Combination
	Visibility() Visibility
	IsCustom() bool

	// Init sets the value and marks the filter initialized. Init with a
	// None value is a no-op that leaves the filter uninitialized.
	Init(v Value) Filter
	IsInitialized() bool
	Value() Value

	// SQLCondition restricts rows to this filter's current value. Derivable
	// from the filter's own state plus its FilterContext only.
	SQLCondition() Condition
	// SQLJoin returns the joins required to evaluate the condition. A filter
	// may require a join even when it contributes no condition.
	SQLJoin() []Join

	// TableName, PrimaryKeyColumn and GroupID drive the OR-merge: active
	// OR-filters sharing table and group id collapse into one
	// "kArtikel IN (SELECT kArtikel FROM table WHERE pk IN (...))" clause.
	TableName() string
	PrimaryKeyColumn() string
	GroupID() int

	// ActiveOptions expands an array-valued filter into one display Option
	// per selected value.
	ActiveOptions() []Option
	// Clone re-instantiates the filter initialized with a single value.
	Clone(v Value) Filter
}

// baseFilter carries the state shared by every filter implementation.
type baseFilter struct {
	ctx         FilterContext
	value       Value
	initialized bool
	custom      bool
	name        string
	slug        string
}

// SetName sets the resolved display name (entity name from the catalog).
func (b *baseFilter) SetName(name string) { b.name = name }

// SetSlug sets the SEO slug resolved for the current language.
func (b *baseFilter) SetSlug(slug string) { b.slug = slug }

// Slug returns the SEO slug resolved for the current language, if any.
func (b *baseFilter) Slug() string { return b.slug }

func (b *baseFilter) init(v Value) {
	if v.IsNone() {
		return
	}
	b.value = v
	b.initialized = true
}

func (b *baseFilter) IsInitialized() bool { return b.initialized }
func (b *baseFilter) Value() Value        { return b.value }
func (b *baseFilter) IsCustom() bool      { return b.custom }
func (b *baseFilter) GroupID() int        { return 0 }

// activeOptions builds one Option per selected scalar by cloning the filter
// with that single value, so options never share mutable state.
func activeOptions(f Filter) []Option {
	if !f.IsInitialized() {
		return nil
	}
	scalars := f.Value().Scalars()
	opts := make([]Option, 0, len(scalars))
	for i, s := range scalars {
		single := f.Clone(s)
		opts = append(opts, Option{
			Label:  single.Name(),
			Value:  s.String(),
			Sort:   i,
			Active: true,
			Kind:   f.Kind(),
		})
	}
	return opts
}

// intPlaceholders renders "?, ?, ?" for n values.
func intPlaceholders(n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n*3)
	for i := 0; i < n; i++ {
		if i > 0 {
			out = append(out, ", "...)
		}
		out = append(out, '?')
	}
	return string(out)
}

func intArgs(ids []int) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
