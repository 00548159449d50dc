package filter

// Sort orders understood by nSortierung.
const (
	SortDefault    = 100
	SortNameASC    = 1
	SortNameDESC   = 2
	SortPriceASC   = 3
	SortPriceDESC  = 4
	SortNewest     = 5
	SortTopRated   = 6
	SortBestseller = 7
)

// Sort resolves the active nSortierung into the order-by clause and the
// join(s) that clause needs. It is part of the filter set but contributes no
// WHERE condition.
type Sort struct {
	ctx FilterContext
	id  int
}

func NewSort(ctx FilterContext) *Sort {
	return &Sort{ctx: ctx, id: SortDefault}
}

func (s *Sort) Set(id int) *Sort {
	if _, ok := sortOrders[id]; ok {
		s.id = id
	}
	return s
}

func (s *Sort) ID() int { return s.id }

var sortOrders = map[int]string{
	SortDefault:    "tartikel.nSort, tartikel.cName",
	SortNameASC:    "tartikel.cName ASC",
	SortNameDESC:   "tartikel.cName DESC",
	SortPriceASC:   "tartikel.fVKNetto ASC",
	SortPriceDESC:  "tartikel.fVKNetto DESC",
	SortNewest:     "tartikel.dErstellt DESC",
	SortTopRated:   "tartikelext.fDurchschnittsBewertung DESC",
	SortBestseller: "tbestseller.fAnzahl DESC",
}

func (s *Sort) OrderBy() string {
	return sortOrders[s.id]
}

func (s *Sort) SQLJoin() []Join {
	switch s.id {
	case SortTopRated:
		return []Join{{
			Table:  "tartikelext",
			Type:   "LEFT JOIN",
			On:     "tartikelext.kArtikel = tartikel.kArtikel",
			Origin: "sort",
		}}
	case SortBestseller:
		return []Join{{
			Table:  "tbestseller",
			Type:   "LEFT JOIN",
			On:     "tbestseller.kArtikel = tartikel.kArtikel",
			Origin: "sort",
		}}
	default:
		return nil
	}
}
