package filter

import (
	"fmt"
	"reflect"
	"strings"
)

// QueryMode distinguishes facet-count compilations from product listings.
type QueryMode int

const (
	ModeFilter QueryMode = iota
	ModeListing
)

// QueryBuilder renders a StateSQL into the final listing SQL. It owns the
// baseline conditions every storefront query carries: customer-group
// visibility, child-product handling and the stock filter.
type QueryBuilder struct {
	ctx  FilterContext
	sort *Sort
}

func NewQueryBuilder(ctx FilterContext, sort *Sort) *QueryBuilder {
	if sort == nil {
		sort = NewSort(ctx)
	}
	return &QueryBuilder{ctx: ctx, sort: sort}
}

// BaseQuery assembles the final SQL string and its argument list.
// hasActiveFilters feeds the tri-state child-product setting.
func (qb *QueryBuilder) BaseQuery(state *StateSQL, mode QueryMode, hasActiveFilters bool) (string, []any) {
	s := NewStateSQL().From(state)
	s.GroupBy = append([]string(nil), state.GroupBy...)
	s.OrderBy = state.OrderBy
	s.Limit = state.Limit

	if len(s.Select) == 0 {
		s.Select = []string{ProductKeyColumn}
	}

	// Order fallback: no explicit order-by means the active sort decides.
	if s.OrderBy == "" {
		s.OrderBy = qb.sort.OrderBy()
		s.AddJoin(qb.sort.SQLJoin()...)
	}

	if qb.ctx.VisibilityCheck {
		s.AddJoin(Join{
			Table: "tartikelsichtbarkeit",
			Type:  "LEFT JOIN",
			On: fmt.Sprintf(
				"tartikelsichtbarkeit.kArtikel = tartikel.kArtikel AND tartikelsichtbarkeit.kKundengruppe = %d",
				qb.ctx.CustomerGroupID),
			Origin: "visibility",
		})
		s.AddCondition("tartikelsichtbarkeit.kArtikel IS NULL")
	}

	s.AddCondition(qb.childProductCondition(mode, hasActiveFilters))
	s.AddCondition(qb.stockCondition())

	return qb.render(s)
}

// childProductCondition implements the tri-state child-product setting:
// 0 parents only, 1 children while filtering or listing, 2 always children.
func (qb *QueryBuilder) childProductCondition(mode QueryMode, hasActiveFilters bool) string {
	includeChildren := false
	switch qb.ctx.ChildProductMode {
	case ChildProductsAlways:
		includeChildren = true
	case ChildProductsWhenFiltered:
		includeChildren = hasActiveFilters || mode == ModeListing
	}
	if includeChildren {
		// Concrete variants replace their parent shells in the listing.
		return "tartikel.nIstVater = 0"
	}
	return "tartikel.kVaterArtikel = 0"
}

func (qb *QueryBuilder) stockCondition() string {
	switch qb.ctx.StockFilterMode {
	case StockFilterHideOutOfStock:
		return "(tartikel.fLagerbestand > 0 OR tartikel.cLagerBeachten = 'N')"
	case StockFilterNegativeAware:
		return "(tartikel.fLagerbestand > 0" +
			" OR tartikel.cLagerBeachten = 'N'" +
			" OR tartikel.cLagerKleinerNull = 'Y'" +
			" OR (tartikel.nIstVater = 1 AND EXISTS (" +
			"SELECT 1 FROM tartikel variante" +
			" WHERE variante.kVaterArtikel = tartikel.kArtikel" +
			" AND (variante.fLagerbestand > 0 OR variante.cLagerKleinerNull = 'Y')))"
	default:
		return ""
	}
}

// mergeConditions collapses structurally identical parameterized fragments:
// duplicate ParamConditions disappear, InConditions on the same expression
// union their value sets.
func mergeConditions(conds []any) []any {
	out := make([]any, 0, len(conds))
	params := make(map[string]*ParamCondition)
	ins := make(map[string]*InCondition)

	for _, c := range conds {
		switch c := c.(type) {
		case *ParamCondition:
			if prev, ok := params[c.Where]; ok && reflect.DeepEqual(prev.Args, c.Args) {
				continue
			}
			cp := &ParamCondition{Where: c.Where, Args: append([]any(nil), c.Args...)}
			params[c.Where] = cp
			out = append(out, cp)
		case *InCondition:
			if prev, ok := ins[c.Expr]; ok {
				prev.Args = unionArgs(prev.Args, c.Args)
				continue
			}
			cp := &InCondition{Expr: c.Expr, Args: append([]any(nil), c.Args...)}
			ins[c.Expr] = cp
			out = append(out, cp)
		default:
			out = append(out, c)
		}
	}
	return out
}

func unionArgs(a, b []any) []any {
	for _, v := range b {
		found := false
		for _, w := range a {
			if w == v {
				found = true
				break
			}
		}
		if !found {
			a = append(a, v)
		}
	}
	return a
}

// render joins select/joins/where/group-by/having/order/limit into one
// query string, collecting placeholder arguments in condition order.
func (qb *QueryBuilder) render(s *StateSQL) (string, []any) {
	var b strings.Builder
	var args []any

	b.WriteString("SELECT ")
	b.WriteString(strings.Join(s.Select, ", "))
	b.WriteString("\nFROM ")
	b.WriteString(ProductTable)

	for _, j := range s.DeduplicatedJoins() {
		b.WriteString("\n")
		b.WriteString(j.SQL())
	}

	conds := mergeConditions(s.Conditions)
	if len(conds) > 0 {
		b.WriteString("\nWHERE ")
		for i, c := range conds {
			if i > 0 {
				b.WriteString("\n	AND ")
			}
			switch c := c.(type) {
			case string:
				b.WriteString(c)
			case *ParamCondition:
				b.WriteString(c.Where)
				args = append(args, c.Args...)
			case *InCondition:
				b.WriteString(fmt.Sprintf("%s IN (%s)", c.Expr, intPlaceholders(len(c.Args))))
				args = append(args, c.Args...)
			case []string:
				// A raw list of alternatives becomes one parenthesized,
				// AND-joined group.
				b.WriteString("(")
				b.WriteString(strings.Join(c, " AND "))
				b.WriteString(")")
			}
		}
	}

	if len(s.GroupBy) > 0 {
		b.WriteString("\nGROUP BY ")
		b.WriteString(strings.Join(s.GroupBy, ", "))
	}
	if len(s.Having) > 0 {
		b.WriteString("\nHAVING ")
		b.WriteString(strings.Join(s.Having, " AND "))
	}
	if s.OrderBy != "" {
		b.WriteString("\nORDER BY ")
		b.WriteString(s.OrderBy)
	}
	if s.Limit != "" {
		b.WriteString("\n")
		b.WriteString(s.Limit)
	}

	return b.String(), args
}
