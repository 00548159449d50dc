package filter

// ParamCondition is a parameterized WHERE fragment. Two ParamConditions with
// identical Where text and identical arguments are structurally identical;
// the compiler drops the duplicate.
type ParamCondition struct {
	Where string
	Args  []any
}

// InCondition is an expression restricted to a set of values, rendered as
// "Expr IN (?, ...)". Two InConditions on the same expression merge by
// unioning their value sets, which keeps repeated identical sub-conditions
// from stacking up.
type InCondition struct {
	Expr string
	Args []any
}

// StateSQL accumulates the query fragments contributed by the base state and
// the active filters. It is freshly constructed for every compilation pass
// and carries no logic beyond list management and join deduplication.
//
// Conditions elements are one of:
//   - string: a raw WHERE fragment
//   - *ParamCondition: a parameterized fragment
//   - []string: a group of fragments rendered as one parenthesized,
//     AND-joined unit
type StateSQL struct {
	Select     []string
	Joins      []Join
	Conditions []any
	Having     []string
	GroupBy    []string
	OrderBy    string
	Limit      string
}

func NewStateSQL() *StateSQL {
	return &StateSQL{}
}

// From copies select/joins/conditions/having from another state. Order-by,
// limit and group-by are reset; the caller sets them per compilation.
func (s *StateSQL) From(src *StateSQL) *StateSQL {
	s.Select = append([]string(nil), src.Select...)
	s.Joins = append([]Join(nil), src.Joins...)
	s.Conditions = append([]any(nil), src.Conditions...)
	s.Having = append([]string(nil), src.Having...)
	s.GroupBy = nil
	s.OrderBy = ""
	s.Limit = ""
	return s
}

func (s *StateSQL) AddSelect(cols ...string) *StateSQL {
	s.Select = append(s.Select, cols...)
	return s
}

func (s *StateSQL) AddJoin(joins ...Join) *StateSQL {
	s.Joins = append(s.Joins, joins...)
	return s
}

func (s *StateSQL) AddCondition(cond any) *StateSQL {
	switch c := cond.(type) {
	case string:
		if c == "" {
			return s
		}
	case *ParamCondition:
		if c == nil || c.Where == "" {
			return s
		}
	case *InCondition:
		if c == nil || c.Expr == "" || len(c.Args) == 0 {
			return s
		}
	case []string:
		if len(c) == 0 {
			return s
		}
	}
	s.Conditions = append(s.Conditions, cond)
	return s
}

func (s *StateSQL) AddGroupBy(cols ...string) *StateSQL {
	s.GroupBy = append(s.GroupBy, cols...)
	return s
}

func (s *StateSQL) AddHaving(conds ...string) *StateSQL {
	s.Having = append(s.Having, conds...)
	return s
}

// DeduplicatedJoins returns the join list with later joins on an already
// seen table dropped. A later join with a different ON clause is dropped as
// well; the first occurrence wins.
func (s *StateSQL) DeduplicatedJoins() []Join {
	seen := make(map[string]bool, len(s.Joins))
	out := make([]Join, 0, len(s.Joins))
	for _, j := range s.Joins {
		if seen[j.Table] {
			continue
		}
		seen[j.Table] = true
		out = append(out, j)
	}
	return out
}
