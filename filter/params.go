package filter

import (
	"net/url"
	"strconv"
	"strings"
)

// Params holds the decoded request parameters of one listing request. The
// wire names below are a compatibility contract and must not change.
type Params struct {
	// Base-state selectors, mutually exclusive, first match wins.
	CategoryID            int // kKategorie
	ManufacturerID        int // kHersteller
	CharacteristicValueID int // kMerkmalWert
	SearchSpecialID       int // kSuchspecial

	// Active-filter values.
	CategoryFilterIDs       []int  // kKategorieFilter / categoryFilters
	ManufacturerFilterIDs   []int  // kHerstellerFilter / manufacturerFilters
	RatingFilter            int    // nBewertungSterneFilter
	PriceRangeFilter        string // cPreisspannenFilter
	CharacteristicFilterIDs []int  // MerkmalFilter_arr
	SearchSpecialFilterIDs  []int  // kSuchspecialFilter / searchSpecialFilters
	SearchFilterIDs         []int  // SuchFilter_arr
	Availability            string // availability

	// Search selectors.
	SearchQueryID int    // kSuchanfrage
	SearchTerm    string // cSuche

	// Presentation.
	Sort     int // nSortierung
	PageSize int // nArtikelProSeite
	Page     int // seite, minimum 1

	// Everything else, scanned for registered custom filters.
	Extra url.Values
}

// ParseParams decodes a query string into Params. Unparsable numbers count
// as absent; the page number is clamped to a minimum of 1.
func ParseParams(q url.Values) Params {
	p := Params{
		CategoryID:            intParam(q, "kKategorie"),
		ManufacturerID:        intParam(q, "kHersteller"),
		CharacteristicValueID: intParam(q, "kMerkmalWert"),
		SearchSpecialID:       intParam(q, "kSuchspecial"),

		CategoryFilterIDs:       intsParam(q, "kKategorieFilter", "categoryFilters"),
		ManufacturerFilterIDs:   intsParam(q, "kHerstellerFilter", "manufacturerFilters"),
		RatingFilter:            intParam(q, "nBewertungSterneFilter"),
		PriceRangeFilter:        strings.TrimSpace(q.Get("cPreisspannenFilter")),
		CharacteristicFilterIDs: intsParam(q, "MerkmalFilter_arr"),
		SearchSpecialFilterIDs:  intsParam(q, "kSuchspecialFilter", "searchSpecialFilters"),
		SearchFilterIDs:         intsParam(q, "SuchFilter_arr"),
		Availability:            strings.TrimSpace(q.Get("availability")),

		SearchQueryID: intParam(q, "kSuchanfrage"),
		SearchTerm:    strings.TrimSpace(q.Get("cSuche")),

		Sort:     intParam(q, "nSortierung"),
		PageSize: intParam(q, "nArtikelProSeite"),
		Page:     intParam(q, "seite"),

		Extra: q,
	}
	if p.Page < 1 {
		p.Page = 1
	}
	return p
}

func intParam(q url.Values, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(q.Get(name)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// intsParam collects integer values under any of the given names, accepting
// both "name" and the PHP-style "name[]" spelling, repeated or
// comma-separated.
func intsParam(q url.Values, names ...string) []int {
	var out []int
	for _, name := range names {
		for _, key := range []string{name, name + "[]"} {
			for _, raw := range q[key] {
				for _, part := range strings.Split(raw, ",") {
					n, err := strconv.Atoi(strings.TrimSpace(part))
					if err != nil || n <= 0 {
						continue
					}
					out = append(out, n)
				}
			}
		}
	}
	return out
}

// coerceValue turns raw request values into a filter Value: integers stay
// integers, everything else is kept as an escaped string.
func coerceValue(raw []string) Value {
	vals := make([]Value, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if n, err := strconv.Atoi(r); err == nil {
			vals = append(vals, IntValue(n))
			continue
		}
		vals = append(vals, StringValue(escapeString(r)))
	}
	switch len(vals) {
	case 0:
		return NoValue()
	case 1:
		return vals[0]
	default:
		return ManyValue(vals...)
	}
}

// escapeString neutralizes quote characters in user-supplied filter values.
// Conditions built from strings still go through placeholders; this is a
// second line of defense for custom filters assembling raw fragments.
func escapeString(s string) string {
	r := strings.NewReplacer("'", "''", `"`, `\"`, "\\", "\\\\", "\x00", "")
	return r.Replace(s)
}
