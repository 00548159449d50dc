package filter

import "testing"

func TestUninitializedFiltersContributeNothing(t *testing.T) {
	ctx := DefaultContext()
	filters := []Filter{
		NewCategoryFilter(ctx),
		NewManufacturerFilter(ctx),
		NewCharacteristicFilter(ctx),
		NewPriceRangeFilter(ctx),
		NewRatingFilter(ctx),
		NewSearchSpecialFilter(ctx),
		NewSearchFilter(ctx),
		NewAvailabilityFilter(ctx),
	}
	for _, f := range filters {
		if f.IsInitialized() {
			t.Errorf("%s starts initialized", f.Kind())
		}
		if c := f.SQLCondition(); c.Where != "" || len(c.Args) != 0 {
			t.Errorf("%s contributes a condition before Init: %+v", f.Kind(), c)
		}
		if j := f.SQLJoin(); len(j) != 0 {
			t.Errorf("%s contributes joins before Init: %+v", f.Kind(), j)
		}
		if opts := f.ActiveOptions(); len(opts) != 0 {
			t.Errorf("%s exposes options before Init: %+v", f.Kind(), opts)
		}
	}
}

func TestInitWithNoneValueIsNoOp(t *testing.T) {
	f := NewCategoryFilter(DefaultContext())
	f.Init(NoValue())
	if f.IsInitialized() {
		t.Error("Init with a none value must leave the filter uninitialized")
	}
	f.Init(IntsValue(nil))
	if f.IsInitialized() {
		t.Error("Init with an empty list must leave the filter uninitialized")
	}
}

func TestActiveOptionsCloneOneOptionPerScalar(t *testing.T) {
	f := NewManufacturerFilter(DefaultContext())
	f.Init(IntsValue([]int{3, 4}))

	opts := f.ActiveOptions()
	if len(opts) != 2 {
		t.Fatalf("expected one option per selected value, got %d", len(opts))
	}
	if opts[0].Value != "3" || opts[1].Value != "4" {
		t.Errorf("unexpected option values: %+v", opts)
	}
	for _, o := range opts {
		if !o.Active || o.Kind != KindManufacturer {
			t.Errorf("option not marked active for its kind: %+v", o)
		}
	}
}

func TestValueString(t *testing.T) {
	if got := IntsValue([]int{1, 2, 3}).String(); got != "1_2_3" {
		t.Errorf("many value renders %q", got)
	}
	if got := StringValue("50_100").String(); got != "50_100" {
		t.Errorf("string value renders %q", got)
	}
	if got := NoValue().String(); got != "" {
		t.Errorf("none value renders %q", got)
	}
}
