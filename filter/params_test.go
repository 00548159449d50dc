package filter

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParseParamsAcceptsAllArraySpellings(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"repeated", "MerkmalFilter_arr=1&MerkmalFilter_arr=2", []int{1, 2}},
		{"bracketed", "MerkmalFilter_arr[]=1&MerkmalFilter_arr[]=2", []int{1, 2}},
		{"comma separated", "MerkmalFilter_arr=1,2,3", []int{1, 2, 3}},
		{"mixed", "MerkmalFilter_arr=1&MerkmalFilter_arr[]=2,3", []int{1, 2, 3}},
		{"garbage dropped", "MerkmalFilter_arr=1&MerkmalFilter_arr=x&MerkmalFilter_arr=0&MerkmalFilter_arr=-4", []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseParams(parseQuery(t, tt.query))
			if !reflect.DeepEqual(p.CharacteristicFilterIDs, tt.want) {
				t.Errorf("got %v, want %v", p.CharacteristicFilterIDs, tt.want)
			}
		})
	}
}

func TestParseParamsAliasNames(t *testing.T) {
	p := ParseParams(parseQuery(t, "kHerstellerFilter=3&manufacturerFilters=4"))
	if !reflect.DeepEqual(p.ManufacturerFilterIDs, []int{3, 4}) {
		t.Errorf("alias parameter not merged: %v", p.ManufacturerFilterIDs)
	}
}

func TestParseParamsClampsPage(t *testing.T) {
	for _, query := range []string{"", "seite=0", "seite=-3", "seite=x"} {
		if p := ParseParams(parseQuery(t, query)); p.Page != 1 {
			t.Errorf("query %q: page %d, want 1", query, p.Page)
		}
	}
	if p := ParseParams(parseQuery(t, "seite=7")); p.Page != 7 {
		t.Errorf("page %d, want 7", p.Page)
	}
}

func TestParseParamsTrimsStrings(t *testing.T) {
	p := ParseParams(parseQuery(t, "cSuche=+boots+&cPreisspannenFilter=+50_100+"))
	if p.SearchTerm != "boots" {
		t.Errorf("search term %q", p.SearchTerm)
	}
	if p.PriceRangeFilter != "50_100" {
		t.Errorf("price range %q", p.PriceRangeFilter)
	}
}

func TestCoerceValue(t *testing.T) {
	if v := coerceValue(nil); !v.IsNone() {
		t.Errorf("empty input must coerce to none, got %+v", v)
	}
	if v := coerceValue([]string{"42"}); v.Kind != ValueInt || v.Int != 42 {
		t.Errorf("single int coerced to %+v", v)
	}
	if v := coerceValue([]string{"7", "red"}); v.Kind != ValueMany || len(v.Many) != 2 {
		t.Errorf("mixed input coerced to %+v", v)
	}
	v := coerceValue([]string{"o'neill"})
	if v.Str != "o''neill" {
		t.Errorf("quote not escaped: %q", v.Str)
	}
}

func TestURLValuesRoundTrip(t *testing.T) {
	// The engine sees exactly what a PHP-era storefront URL carries.
	raw := "kKategorie=5&MerkmalFilter_arr%5B%5D=12&seite=2&nSortierung=3"
	q, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	p := ParseParams(q)
	if p.CategoryID != 5 || p.Page != 2 || p.Sort != 3 {
		t.Errorf("unexpected params: %+v", p)
	}
	if !reflect.DeepEqual(p.CharacteristicFilterIDs, []int{12}) {
		t.Errorf("bracketed array not decoded: %v", p.CharacteristicFilterIDs)
	}
}
